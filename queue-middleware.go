package main

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"github.com/puzpuzpuz/xsync/v3"
	"github.com/segmentio/fasthash/fnv1a"

	"golang.org/x/sync/semaphore"
)

// One semaphore per path bucket so concurrent renders of the same page are
// serialized while unrelated pages proceed.
var buckets = func() [52]*semaphore.Weighted {
	var s [52]*semaphore.Weighted
	for i := range s {
		s[i] = semaphore.NewWeighted(1)
	}
	return s
}()

var queueAcquireTimeout = 6 * time.Second

var inFlight = xsync.NewMapOf[uint64, struct{}]()

var reqNumSource atomic.Uint64

func queueMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasPrefix(r.URL.Path, "/static/"),
			r.URL.Path == "/favicon.ico",
			r.URL.Path == "/health",
			r.URL.Path == "/metrics":
			next.ServeHTTP(w, r)
			return
		}

		reqNum := reqNumSource.Add(1)
		inFlight.Store(reqNum, struct{}{})
		defer inFlight.Delete(reqNum)

		bucket := buckets[fnv1a.HashString64(r.URL.Path)%uint64(len(buckets))]

		acquireCtx, cancel := context.WithTimeout(r.Context(), queueAcquireTimeout)
		defer cancel()

		if err := bucket.Acquire(acquireCtx, 1); err != nil {
			if r.Context().Err() != nil {
				// client is gone, nothing to answer
				return
			}
			w.WriteHeader(http.StatusGatewayTimeout)
			fmt.Fprint(w, "server under heavy load, please try again in a couple of seconds")
			return
		}
		defer bucket.Release(1)

		next.ServeHTTP(w, r)
	}
}
