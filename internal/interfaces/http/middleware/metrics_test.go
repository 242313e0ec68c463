package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func TestHTTPMetrics_Prometheus(t *testing.T) {
	reg := prometheus.NewRegistry()
	mw, err := HTTPMetrics(HTTPMetricsConfig{Registerer: reg, SkipPaths: []string{"/metrics"}})
	require.NoError(t, err)

	r := gin.New()
	r.Use(mw)
	r.GET("/api/poi/category", func(c *gin.Context) { c.JSON(http.StatusOK, []any{}) })
	r.GET("/metrics", func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 2; i++ {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/poi/category", nil))
	}
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nope", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/metrics", nil))

	expected := `
# HELP bizdesk_http_requests_total Total number of HTTP requests
# TYPE bizdesk_http_requests_total counter
bizdesk_http_requests_total{method="GET",route="/api/poi/category",status="200"} 2
bizdesk_http_requests_total{method="GET",route="unmatched",status="404"} 1
`
	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "bizdesk_http_requests_total"))
	assert.Equal(t, 2, testutil.CollectAndCount(reg, "bizdesk_http_request_duration_seconds"))
}

func TestHTTPMetrics_OTel(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })

	mw, err := HTTPMetrics(HTTPMetricsConfig{Meter: provider.Meter("test")})
	require.NoError(t, err)

	r := gin.New()
	r.Use(mw)
	r.POST("/api/oap/orders/add", func(c *gin.Context) { c.Status(http.StatusCreated) })
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/oap/orders/add", nil))

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))
	require.Len(t, rm.ScopeMetrics, 1)

	names := make([]string, 0)
	for _, m := range rm.ScopeMetrics[0].Metrics {
		names = append(names, m.Name)
	}
	assert.ElementsMatch(t, []string{"http_server_request_total", "http_server_request_duration_seconds"}, names)
}

func TestHTTPMetrics_NoSinks(t *testing.T) {
	mw, err := HTTPMetrics(HTTPMetricsConfig{})
	require.NoError(t, err)

	r := gin.New()
	r.Use(mw)
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
