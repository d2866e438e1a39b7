package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestPrometheusCollector_Exposition(t *testing.T) {
	c := NewPrometheusCollector()

	c.RequestStarted()
	c.RequestCompleted(http.MethodGet, "/health", 200, 5*time.Millisecond)

	rr := httptest.NewRecorder()
	c.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rr.Code)
	}

	body := rr.Body.String()
	for _, metric := range []string{
		"pulsed_http_requests_total",
		"pulsed_http_request_duration_seconds",
		"pulsed_http_in_flight_requests",
	} {
		if !strings.Contains(body, metric) {
			t.Errorf("exposition missing %s", metric)
		}
	}
}

func TestPrometheusCollector_IndependentRegistries(t *testing.T) {
	// Two collectors must not clash on registration.
	a := NewPrometheusCollector()
	b := NewPrometheusCollector()

	a.RequestCompleted(http.MethodGet, "/", 200, time.Millisecond)
	b.RequestCompleted(http.MethodGet, "/", 200, time.Millisecond)
}
