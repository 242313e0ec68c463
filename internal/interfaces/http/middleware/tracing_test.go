package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func newTracedEngine(t *testing.T) (*gin.Engine, *tracetest.SpanRecorder) {
	t.Helper()
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	t.Cleanup(func() { _ = tp.Shutdown(t.Context()) })

	r := gin.New()
	r.Use(RequestID(), Tracing(TracingConfig{
		ServiceName:    "bizdesk-test",
		Enabled:        true,
		TracerProvider: tp,
		SkipPaths:      []string{"/health"},
	}), SpanAttributes())
	r.GET("/api/personnel/role", func(c *gin.Context) { c.JSON(http.StatusOK, []any{}) })
	r.GET("/api/poi/category", func(c *gin.Context) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user details"})
	})
	r.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r, sr
}

func spanAttr(span sdktrace.ReadOnlySpan, key string) (attribute.Value, bool) {
	for _, kv := range span.Attributes() {
		if string(kv.Key) == key {
			return kv.Value, true
		}
	}
	return attribute.Value{}, false
}

func TestTracing(t *testing.T) {
	t.Run("span per request with route name", func(t *testing.T) {
		r, sr := newTracedEngine(t)
		req := httptest.NewRequest(http.MethodGet, "/api/personnel/role", nil)
		req.Header.Set(RequestIDHeader, "req-1")
		r.ServeHTTP(httptest.NewRecorder(), req)

		spans := sr.Ended()
		require.Len(t, spans, 1)
		assert.Contains(t, spans[0].Name(), "/api/personnel/role")

		v, ok := spanAttr(spans[0], "request_id")
		require.True(t, ok)
		assert.Equal(t, "req-1", v.AsString())
		v, ok = spanAttr(spans[0], "resource.group")
		require.True(t, ok)
		assert.Equal(t, "personnel", v.AsString())
	})

	t.Run("server error marks span", func(t *testing.T) {
		r, sr := newTracedEngine(t)
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/poi/category", nil))

		spans := sr.Ended()
		require.Len(t, spans, 1)
		assert.Equal(t, codes.Error, spans[0].Status().Code)
	})

	t.Run("skipped path has no span", func(t *testing.T) {
		r, sr := newTracedEngine(t)
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Empty(t, sr.Ended())
	})

	t.Run("disabled passes through", func(t *testing.T) {
		r := gin.New()
		r.Use(Tracing(TracingConfig{}), SpanAttributes())
		r.GET("/x", func(c *gin.Context) { c.Status(http.StatusAccepted) })

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
		assert.Equal(t, http.StatusAccepted, w.Code)
	})
}

func TestRouteGroup(t *testing.T) {
	tests := map[string]string{
		"/api/personnel/role":             "personnel",
		"/api/poi/category/delete/:id":    "poi",
		"/api/custom/dashboard/inventory": "custom",
		"/health":                         "",
		"":                                "",
		"/metrics/x":                      "",
	}
	for route, want := range tests {
		assert.Equal(t, want, RouteGroup(route), route)
	}
}
