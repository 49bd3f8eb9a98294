package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/2beens/fittrack/internal/telemetry/metrics"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestMetrics(t *testing.T) {
	metricsManager, reg := metrics.NewTestManagerAndRegistry()

	r := mux.NewRouter()
	r.HandleFunc("/activities/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}).Methods(http.MethodDelete)
	r.Use(RequestMetrics(metricsManager))

	for _, id := range []string{"1", "2"} {
		req := httptest.NewRequest(http.MethodDelete, "/activities/"+id, nil)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusNotFound, rr.Code)
	}

	assert.Equal(t, float64(2), testutil.ToFloat64(metricsManager.CounterRequests.With(prometheus.Labels{
		"method": http.MethodDelete,
		"status": "404",
	})))

	// both requests land in the same route template series
	count, err := testutil.GatherAndCount(reg, "fittrack_test_server_request_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestDrainAndCloseRequest(t *testing.T) {
	body := io.NopCloser(strings.NewReader("some leftover body"))
	req := httptest.NewRequest(http.MethodPost, "/activities", body)
	rr := httptest.NewRecorder()

	DrainAndCloseRequest()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})).ServeHTTP(rr, req)

	n, _ := req.Body.Read(make([]byte, 8))
	assert.Equal(t, 0, n)
}

func TestRequestMetrics_Flush(t *testing.T) {
	metricsManager := metrics.NewTestManager()

	handler := RequestMetrics(metricsManager)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		flusher, ok := w.(http.Flusher)
		require.True(t, ok)
		_, _ = w.Write([]byte("event: ping\n\n"))
		flusher.Flush()
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/mcp", nil))

	assert.True(t, rr.Flushed)
	assert.Equal(t, "event: ping\n\n", rr.Body.String())
}

func TestDrainAndCloseRequest_LargeBody(t *testing.T) {
	body := strings.NewReader(strings.Repeat("x", maxDrainBytes+10))
	req := httptest.NewRequest(http.MethodPost, "/activity_logs/bulk", io.NopCloser(body))
	rr := httptest.NewRecorder()

	DrainAndCloseRequest()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})).ServeHTTP(rr, req)

	assert.Equal(t, 10, body.Len())
}
