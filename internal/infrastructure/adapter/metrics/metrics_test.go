package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scrape(t *testing.T, m *Metrics) string {
	t.Helper()
	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	return rec.Body.String()
}

func TestMetrics_Counters(t *testing.T) {
	m := New()

	done := m.RequestStarted()
	assert.Contains(t, scrape(t, m), "payment_api_http_inflight_requests 1")
	done("GET", "/v1/movies", http.StatusOK, 20*time.Millisecond)

	m.CacheLookup(CacheHit)
	m.CacheLookup(CacheHit)
	m.CacheLookup(CacheMiss)
	m.RateLimited()
	m.AuthFailed("jwt")
	m.JobRan("db_pool_stats")

	body := scrape(t, m)
	assert.Contains(t, body, "payment_api_http_inflight_requests 0")
	assert.Contains(t, body, `payment_api_http_requests_total{method="GET",route="/v1/movies",status="200"} 1`)
	assert.Contains(t, body, `payment_api_cache_requests_total{result="hit"} 2`)
	assert.Contains(t, body, `payment_api_cache_requests_total{result="miss"} 1`)
	assert.Contains(t, body, "payment_api_http_rate_limited_total 1")
	assert.Contains(t, body, `payment_api_auth_failures_total{credential="jwt"} 1`)
	assert.Contains(t, body, `payment_api_scheduler_job_runs_total{job="db_pool_stats"} 1`)
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.RequestStarted()("GET", "/", 200, time.Millisecond)
		m.CacheLookup(CacheMiss)
		m.RateLimited()
		m.AuthFailed("api_key")
		m.JobRan("x")
		assert.NoError(t, m.RegisterDBStats(nil, "db"))
	})
}

func TestMetrics_RegisterDBStats(t *testing.T) {
	m := New()
	sqlDB, _, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	require.NoError(t, m.RegisterDBStats(sqlDB, "payment_api"))
	assert.Contains(t, scrape(t, m), `go_sql_open_connections{db_name="payment_api"}`)
}
