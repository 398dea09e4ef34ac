package main

import (
	"fmt"
	"net/http"
	"sync/atomic"
)

var pagesRendered atomic.Uint64

func renderMetrics(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; version=0.0.4")
	w.Header().Set("Cache-Control", "no-store")

	fmt.Fprintln(w, "# HELP http_requests_in_flight Number of in-flight requests tracked by the queue middleware.")
	fmt.Fprintln(w, "# TYPE http_requests_in_flight gauge")
	fmt.Fprintf(w, "http_requests_in_flight %d\n", inFlight.Size())

	fmt.Fprintln(w, "# HELP landing_pages_rendered_total Number of landing pages rendered since start.")
	fmt.Fprintln(w, "# TYPE landing_pages_rendered_total counter")
	fmt.Fprintf(w, "landing_pages_rendered_total %d\n", pagesRendered.Load())
}
