// Copyright 2026 LandlordOS Ltd
// SPDX-License-Identifier: AGPL-3.0

package gatekeeper

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/landlordos/property-service/internal/logging"
)

func newTestCSRF() *CSRF {
	return NewCSRF(false, logging.NewNoopLogger(),
		"/api/billing/webhook",
		"/api/auth/signup",
		"/api/auth/login",
	)
}

func countingHandler(hits *int) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*hits++
		w.WriteHeader(http.StatusOK)
	})
}

func findCookie(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestCSRFMintsTokenOnFirstSafeRequest(t *testing.T) {
	handler := newTestCSRF().Protect(countingHandler(new(int)))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/properties", nil))

	secret := findCookie(rec, CSRFCookieName)
	token := findCookie(rec, CSRFReadableCookieName)
	require.NotNil(t, secret)
	require.NotNil(t, token)
	assert.True(t, secret.HttpOnly)
	assert.False(t, token.HttpOnly)
	assert.Equal(t, secret.Value, token.Value)
	assert.Len(t, secret.Value, 64)
}

func TestCSRFDoesNotRemintExistingToken(t *testing.T) {
	handler := newTestCSRF().Protect(countingHandler(new(int)))

	req := httptest.NewRequest(http.MethodGet, "/api/properties", nil)
	req.AddCookie(&http.Cookie{Name: CSRFCookieName, Value: "existing"})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Nil(t, findCookie(rec, CSRFCookieName))
}

func TestCSRFRejectsBeforeHandlerRuns(t *testing.T) {
	tests := []struct {
		name   string
		cookie string
		header string
	}{
		{name: "no cookie and no header"},
		{name: "cookie without header", cookie: "token-a"},
		{name: "header without cookie", header: "token-a"},
		{name: "mismatched pair", cookie: "token-a", header: "token-b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hits := 0
			handler := newTestCSRF().Protect(countingHandler(&hits))

			req := httptest.NewRequest(http.MethodPost, "/api/properties", nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: CSRFCookieName, Value: tt.cookie})
			}
			if tt.header != "" {
				req.Header.Set(CSRFHeaderName, tt.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusForbidden, rec.Code)
			assert.Equal(t, 0, hits, "handler must not run on rejected request")
		})
	}
}

func TestCSRFAcceptsMatchingPair(t *testing.T) {
	hits := 0
	handler := newTestCSRF().Protect(countingHandler(&hits))

	req := httptest.NewRequest(http.MethodDelete, "/api/properties/p1", nil)
	req.AddCookie(&http.Cookie{Name: CSRFCookieName, Value: "token-a"})
	req.Header.Set(CSRFHeaderName, "token-a")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, hits)
}

func TestCSRFExemptions(t *testing.T) {
	for _, path := range []string{"/api/billing/webhook", "/api/auth/signup", "/api/auth/login"} {
		t.Run(path, func(t *testing.T) {
			hits := 0
			handler := newTestCSRF().Protect(countingHandler(&hits))

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, path, nil))

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, 1, hits)
		})
	}
}

func TestCSRFIgnoresSafeMethods(t *testing.T) {
	hits := 0
	handler := newTestCSRF().Protect(countingHandler(&hits))

	for _, method := range []string{http.MethodGet, http.MethodHead, http.MethodOptions} {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(method, "/api/properties", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	}
	assert.Equal(t, 3, hits)
}
