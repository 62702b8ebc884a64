// Copyright 2026 LandlordOS Ltd
// SPDX-License-Identifier: AGPL-3.0

package gatekeeper

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"net/http"

	httptypes "github.com/landlordos/property-service/internal/http/types"
	"github.com/landlordos/property-service/internal/logging"
)

const (
	// CSRFCookieName holds the server-side half, never exposed to
	// scripts.
	CSRFCookieName = "csrf-token"
	// CSRFReadableCookieName is the script-readable copy the client
	// echoes back in the header.
	CSRFReadableCookieName = "csrf-secret"
	CSRFHeaderName         = "X-CSRF-Token"
)

// CSRF enforces the double-submit cookie scheme on mutating requests.
// Exempt paths are authenticated by other means (webhook signatures)
// or have no session to bind a token to yet (signup, login, password
// reset).
type CSRF struct {
	exempt map[string]struct{}
	secure bool
	logger logging.LoggerInterface
}

func NewCSRF(secure bool, logger logging.LoggerInterface, exemptPaths ...string) *CSRF {
	exempt := make(map[string]struct{}, len(exemptPaths))
	for _, path := range exemptPaths {
		exempt[path] = struct{}{}
	}
	return &CSRF{exempt: exempt, secure: secure, logger: logger}
}

func (c *CSRF) Protect(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		secret, err := r.Cookie(CSRFCookieName)
		if err != nil {
			secret = nil
		}

		if !isMutating(r.Method) {
			// Mint on first contact so the client has a token ready
			// before its first mutation.
			if secret == nil {
				c.mint(w)
			}
			next.ServeHTTP(w, r)
			return
		}

		if _, ok := c.exempt[r.URL.Path]; ok {
			next.ServeHTTP(w, r)
			return
		}

		header := r.Header.Get(CSRFHeaderName)
		if secret == nil || header == "" ||
			subtle.ConstantTimeCompare([]byte(secret.Value), []byte(header)) != 1 {
			c.logger.Security().CsrfRejected(r.URL.Path)
			httptypes.WriteForbidden(w, "missing or invalid CSRF token")
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (c *CSRF) mint(w http.ResponseWriter) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		c.logger.Errorf("failed to mint CSRF token: %v", err)
		return
	}
	token := hex.EncodeToString(buf)

	http.SetCookie(w, &http.Cookie{
		Name:     CSRFCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: http.SameSiteLaxMode,
	})
	http.SetCookie(w, &http.Cookie{
		Name:     CSRFReadableCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: false,
		Secure:   c.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func isMutating(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions, http.MethodTrace:
		return false
	default:
		return true
	}
}
