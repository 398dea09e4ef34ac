package main

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestRenderMetricsReportsInFlightRequests(t *testing.T) {
	const sampleSize = 3
	for i := 0; i < sampleSize; i++ {
		inFlight.Store(uint64(1000+i), struct{}{})
	}
	t.Cleanup(func() {
		for i := 0; i < sampleSize; i++ {
			inFlight.Delete(uint64(1000 + i))
		}
	})

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()

	renderMetrics(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	body := rec.Body.String()
	if !strings.Contains(body, "http_requests_in_flight 3") {
		t.Fatalf("expected metric output to contain in-flight size 3, got %q", body)
	}
	if !strings.Contains(body, "landing_pages_rendered_total") {
		t.Fatalf("expected metric output to contain the pages rendered counter, got %q", body)
	}
}
