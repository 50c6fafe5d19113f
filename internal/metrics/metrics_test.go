package metrics_test

import (
	"io"
	"net/http/httptest"
	"testing"

	"outfitrental/internal/metrics"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsHandlerExposesCounters(t *testing.T) {
	m := metrics.New()
	m.ObserveRequest("GET", "/items", 200)
	m.EntityCreated("item")
	m.EntityCreated("item")
	m.SigninFailed()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	require.Equal(t, 200, rec.Code)

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `http_requests_total{method="GET",route="/items",status="200"} 1`)
	assert.Contains(t, string(body), `entities_created_total{entity="item"} 2`)
	assert.Contains(t, string(body), "signin_failures_total 1")
}

func TestNilMetricsIsSafe(t *testing.T) {
	var m *metrics.Metrics
	assert.NotPanics(t, func() {
		m.ObserveRequest("GET", "/", 200)
		m.EntityCreated("item")
		m.SigninFailed()
	})
}

func TestSeparateRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		metrics.New()
		metrics.New()
	})
}
