package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func serveWithRequestID(t *testing.T, header string, h gin.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", h)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("X-Request-ID", header)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequestIDReusesIncoming(t *testing.T) {
	var seen string
	w := serveWithRequestID(t, "abc-123", func(c *gin.Context) {
		seen = GetRequestID(c)
		c.Status(http.StatusOK)
	})
	if seen != "abc-123" || w.Header().Get("X-Request-ID") != "abc-123" {
		t.Fatalf("context id %q, header %q", seen, w.Header().Get("X-Request-ID"))
	}
}

func TestRequestIDReplacesMalformed(t *testing.T) {
	for _, incoming := range []string{"", "has space", strings.Repeat("a", maxRequestIDLen+1), "bad\x01id"} {
		var seen string
		w := serveWithRequestID(t, incoming, func(c *gin.Context) {
			seen = GetRequestID(c)
			c.Status(http.StatusOK)
		})
		if _, err := uuid.Parse(seen); err != nil {
			t.Fatalf("incoming %q: expected generated uuid, got %q", incoming, seen)
		}
		if w.Header().Get("X-Request-ID") != seen {
			t.Fatalf("incoming %q: header %q differs from %q", incoming, w.Header().Get("X-Request-ID"), seen)
		}
	}
}

func TestRequestIDContextLogger(t *testing.T) {
	var buf bytes.Buffer
	prev := log.Logger
	log.Logger = zerolog.New(&buf)
	defer func() { log.Logger = prev }()

	serveWithRequestID(t, "trace-7", func(c *gin.Context) {
		zerolog.Ctx(c.Request.Context()).Info().Msg("inside handler")
		c.Status(http.StatusOK)
	})
	if !strings.Contains(buf.String(), `"request_id":"trace-7"`) {
		t.Fatalf("context logger missing request id: %s", buf.String())
	}
}

func TestGetRequestIDOutsideMiddleware(t *testing.T) {
	if GetRequestID(nil) != "" {
		t.Fatalf("nil context should yield empty id")
	}
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	if GetRequestID(c) != "" {
		t.Fatalf("expected empty id without middleware")
	}
}
