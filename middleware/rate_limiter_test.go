package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestClientIP(t *testing.T) {
	cases := []struct {
		name      string
		remote    string
		forwarded string
		realIP    string
		want      string
	}{
		{"remote addr with port", "10.0.0.5:51234", "", "", "10.0.0.5"},
		{"remote addr without port", "10.0.0.5", "", "", "10.0.0.5"},
		{"x-forwarded-for single", "10.0.0.5:51234", "203.0.113.7", "", "203.0.113.7"},
		{"x-forwarded-for chain", "10.0.0.5:51234", " 203.0.113.7 , 198.51.100.1", "", "203.0.113.7"},
		{"x-real-ip fallback", "10.0.0.5:51234", "", "203.0.113.9", "203.0.113.9"},
		{"forwarded wins over real-ip", "10.0.0.5:51234", "203.0.113.7", "203.0.113.9", "203.0.113.7"},
	}

	gin.SetMode(gin.TestMode)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest("GET", "/", nil)
			c.Request.RemoteAddr = tc.remote
			if tc.forwarded != "" {
				c.Request.Header.Set("X-Forwarded-For", tc.forwarded)
			}
			if tc.realIP != "" {
				c.Request.Header.Set("X-Real-IP", tc.realIP)
			}
			if got := clientIP(c); got != tc.want {
				t.Errorf("clientIP() = %q, want %q", got, tc.want)
			}
		})
	}
}
