// Copyright 2026 LandlordOS Ltd
// SPDX-License-Identifier: AGPL-3.0

package gatekeeper

import (
	"net"
	"net/http"
	"strings"
	"time"

	httptypes "github.com/landlordos/property-service/internal/http/types"
	"github.com/landlordos/property-service/internal/logging"
)

// Limit is a fixed-window budget. The counter resets completely at the
// window boundary.
type Limit struct {
	Requests int64
	Window   time.Duration
}

var (
	// AuthLimit guards credential endpoints against brute force.
	AuthLimit = Limit{Requests: 5, Window: 15 * time.Minute}
	// APILimit is the general per-client budget.
	APILimit = Limit{Requests: 100, Window: time.Minute}
)

type RateLimiter struct {
	store  CounterStore
	logger logging.LoggerInterface
}

func NewRateLimiter(store CounterStore, logger logging.LoggerInterface) *RateLimiter {
	return &RateLimiter{store: store, logger: logger}
}

// Limit returns a middleware enforcing the given budget. The name
// separates counters so auth and general traffic do not share windows.
func (rl *RateLimiter) Limit(name string, limit Limit) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identifier := clientIdentifier(r)
			key := "ratelimit:" + name + ":" + identifier

			count, resetAt, err := rl.store.Incr(r.Context(), key, limit.Window)
			if err != nil {
				// A broken counter store must not take the API down.
				rl.logger.Errorf("rate limit store unavailable: %v", err)
				next.ServeHTTP(w, r)
				return
			}

			if count > limit.Requests {
				rl.logger.Security().RateLimited(identifier, r.URL.Path)
				httptypes.WriteRateLimited(w, resetAt)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// clientIdentifier resolves the client IP from proxy headers, most
// trusted first, falling back to the socket address.
func clientIdentifier(r *http.Request) string {
	if ip := r.Header.Get("CF-Connecting-IP"); ip != "" {
		return ip
	}
	if ip := r.Header.Get("X-Real-IP"); ip != "" {
		return ip
	}
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil && host != "" {
		return host
	}
	return "unknown"
}
