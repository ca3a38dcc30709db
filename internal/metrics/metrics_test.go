package metrics

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveRequest(t *testing.T) {
	t.Run("should count requests by route method and status", func(t *testing.T) {
		before := testutil.ToFloat64(requestsTotal.WithLabelValues("/create-pull-request", "POST", "201"))

		ObserveRequest("/create-pull-request", "POST", 201, 120*time.Millisecond)
		ObserveRequest("/create-pull-request", "POST", 201, 80*time.Millisecond)

		after := testutil.ToFloat64(requestsTotal.WithLabelValues("/create-pull-request", "POST", "201"))
		assert.Equal(t, float64(2), after-before)
	})

	t.Run("should keep statuses apart", func(t *testing.T) {
		before := testutil.ToFloat64(requestsTotal.WithLabelValues("/health", "GET", "200"))

		ObserveRequest("/health", "GET", 200, time.Millisecond)
		ObserveRequest("/health", "GET", 500, time.Millisecond)

		after := testutil.ToFloat64(requestsTotal.WithLabelValues("/health", "GET", "200"))
		assert.Equal(t, float64(1), after-before)
	})
}

func TestRecordStepFailure(t *testing.T) {
	t.Run("should count failures per step", func(t *testing.T) {
		before := testutil.ToFloat64(stepFailures.WithLabelValues("/create-pull-request", "CreateBranch"))

		RecordStepFailure("/create-pull-request", "CreateBranch")

		after := testutil.ToFloat64(stepFailures.WithLabelValues("/create-pull-request", "CreateBranch"))
		assert.Equal(t, float64(1), after-before)
	})
}

func TestHandler(t *testing.T) {
	t.Run("should expose metrics in text format", func(t *testing.T) {
		ObserveRequest("/health", "GET", 200, time.Millisecond)

		recorder := httptest.NewRecorder()
		request := httptest.NewRequest("GET", "/metrics", nil)
		Handler().ServeHTTP(recorder, request)

		require.Equal(t, 200, recorder.Code)
		body := recorder.Body.String()
		assert.Contains(t, body, "mateforge_http_requests_total")
		assert.Contains(t, body, "mateforge_http_request_duration_seconds")
	})
}
