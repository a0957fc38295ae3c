package httpserver

import (
	"fmt"

	"github.com/labstack/echo/v4"
)

// sendJSON writes payload as a JSON body with a JSON content type and the given status.
func sendJSON(c echo.Context, status int, payload any) error {
	if err := c.JSON(status, payload); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}
