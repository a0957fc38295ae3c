package httpserver

import (
	"sync/atomic"

	"github.com/labstack/echo/v4"
)

const requestNumberKey = "requestNumber"

// requestCounter numbers requests in arrival order, starting at 1.
type requestCounter struct {
	n atomic.Int64
}

func (rc *requestCounter) next() int64 {
	return rc.n.Add(1)
}

func (rc *requestCounter) current() int64 {
	return rc.n.Load()
}

// countRequests assigns the request number before routing or validation.
func (s *Server) countRequests(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		c.Set(requestNumberKey, s.requests.next())
		s.observer.RequestReceived()
		return next(c)
	}
}

func requestNumber(c echo.Context) int64 {
	n, _ := c.Get(requestNumberKey).(int64)
	return n
}
