package httpserver

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueryValue(t *testing.T) {
	tests := []struct {
		name     string
		rawQuery string
		want     string
	}{
		{"plain", "word=cat", "cat"},
		{"absent", "other=cat", ""},
		{"empty query", "", ""},
		{"empty value", "word=", ""},
		{"key without value", "word", ""},
		{"first value wins", "word=cat&word=dog", "cat"},
		{"semicolon kept", "word=a;b", "a;b"},
		{"plus is space", "word=ice+cream", "ice cream"},
		{"percent escapes", "word=caf%C3%A9%20noir", "café noir"},
		{"escaped plus", "word=a%2Bb", "a+b"},
		{"malformed escape kept", "word=100%zz", "100%zz"},
		{"trailing percent kept", "word=cat%", "cat%"},
		{"escaped key", "w%6Frd=cat", "cat"},
		{"empty pairs skipped", "&&word=cat&", "cat"},
		{"equals in value", "word=a=b", "a=b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, queryValue(tt.rawQuery, "word"))
		})
	}
}
