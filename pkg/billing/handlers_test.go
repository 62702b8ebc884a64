// Copyright 2026 LandlordOS Ltd
// SPDX-License-Identifier: AGPL-3.0

package billing

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stripe/stripe-go/v82"
	"go.uber.org/mock/gomock"

	"github.com/landlordos/property-service/internal/logging"
	"github.com/landlordos/property-service/internal/types"
	"github.com/landlordos/property-service/pkg/authentication"
)

func newTestAPI(t *testing.T) (*API, *MockServiceInterface, *MockWebhookVerifierInterface) {
	ctrl := gomock.NewController(t)
	mockService := NewMockServiceInterface(ctrl)
	mockVerifier := NewMockWebhookVerifierInterface(ctrl)
	return NewAPI(mockService, mockVerifier, logging.NewNoopLogger()), mockService, mockVerifier
}

func serveAs(api *API, userID, method, path, body string) *httptest.ResponseRecorder {
	mux := chi.NewMux()
	if userID != "" {
		mux.Use(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				next.ServeHTTP(w, r.WithContext(authentication.WithUserID(r.Context(), userID)))
			})
		})
	}
	api.RegisterEndpoints(mux)
	api.RegisterWebhook(mux)

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func TestAPI_Checkout(t *testing.T) {
	t.Run("returns redirect URL", func(t *testing.T) {
		api, mockService, _ := newTestAPI(t)

		mockService.EXPECT().CreateCheckout(gomock.Any(), "user-123", "pro").
			Return("https://checkout.example.com/s1", nil)

		rec := serveAs(api, "user-123", http.MethodPost, "/api/billing/checkout", `{"tier": "pro"}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", rec.Code)
		}
		var resp CheckoutResponse
		if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if resp.URL != "https://checkout.example.com/s1" {
			t.Errorf("unexpected URL %q", resp.URL)
		}
	})

	t.Run("rejects tier outside the catalog", func(t *testing.T) {
		api, _, _ := newTestAPI(t)

		rec := serveAs(api, "user-123", http.MethodPost, "/api/billing/checkout", `{"tier": "platinum"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected status 400, got %d", rec.Code)
		}
	})

	t.Run("requires authentication", func(t *testing.T) {
		api, _, _ := newTestAPI(t)

		rec := serveAs(api, "", http.MethodPost, "/api/billing/checkout", `{"tier": "pro"}`)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected status 401, got %d", rec.Code)
		}
	})
}

func TestAPI_Subscription(t *testing.T) {
	api, mockService, _ := newTestAPI(t)
	periodEnd := time.Now().Add(24 * time.Hour).UTC()

	mockService.EXPECT().GetSubscription(gomock.Any(), "user-123").Return(&types.Subscription{
		Tier:      types.TierPro,
		Status:    types.SubscriptionStatusActive,
		PeriodEnd: &periodEnd,
	}, nil)

	rec := serveAs(api, "user-123", http.MethodGet, "/api/billing/subscription", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	var sub types.Subscription
	if err := json.NewDecoder(rec.Body).Decode(&sub); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if sub.Tier != types.TierPro || sub.Status != types.SubscriptionStatusActive {
		t.Errorf("unexpected subscription %+v", sub)
	}
}

func TestAPI_Invoices(t *testing.T) {
	t.Run("empty ledger yields empty array", func(t *testing.T) {
		api, mockService, _ := newTestAPI(t)

		mockService.EXPECT().ListInvoices(gomock.Any(), "user-123").Return(nil, nil)

		rec := serveAs(api, "user-123", http.MethodGet, "/api/billing/invoices", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", rec.Code)
		}
		if body := strings.TrimSpace(rec.Body.String()); body != "[]" {
			t.Errorf("expected empty array, got %q", body)
		}
	})
}

func TestAPI_Webhook(t *testing.T) {
	payload := `{"id": "evt_1", "type": "invoice.paid"}`

	t.Run("bad signature is the only 400", func(t *testing.T) {
		api, _, mockVerifier := newTestAPI(t)

		mockVerifier.EXPECT().ConstructEvent([]byte(payload), "t=1,v1=bad").
			Return(stripe.Event{}, errors.New("signature mismatch"))

		mux := chi.NewMux()
		api.RegisterWebhook(mux)
		req := httptest.NewRequest(http.MethodPost, "/api/billing/webhook", strings.NewReader(payload))
		req.Header.Set("Stripe-Signature", "t=1,v1=bad")
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected status 400, got %d", rec.Code)
		}
	})

	t.Run("verified event is dispatched and acknowledged", func(t *testing.T) {
		api, mockService, mockVerifier := newTestAPI(t)

		event := stripe.Event{ID: "evt_1", Type: "invoice.paid"}
		mockVerifier.EXPECT().ConstructEvent([]byte(payload), "t=1,v1=good").Return(event, nil)
		mockService.EXPECT().HandleEvent(gomock.Any(), event).Return(nil)

		rec := serveWebhook(api, payload, "t=1,v1=good")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", rec.Code)
		}
	})

	t.Run("processing failure still acknowledges", func(t *testing.T) {
		api, mockService, mockVerifier := newTestAPI(t)

		event := stripe.Event{ID: "evt_1", Type: "invoice.paid"}
		mockVerifier.EXPECT().ConstructEvent(gomock.Any(), gomock.Any()).Return(event, nil)
		mockService.EXPECT().HandleEvent(gomock.Any(), event).Return(errors.New("db down"))

		rec := serveWebhook(api, payload, "t=1,v1=good")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", rec.Code)
		}
	})

	t.Run("does not require a session", func(t *testing.T) {
		api, mockService, mockVerifier := newTestAPI(t)

		event := stripe.Event{ID: "evt_1", Type: "invoice.paid"}
		mockVerifier.EXPECT().ConstructEvent(gomock.Any(), gomock.Any()).Return(event, nil)
		mockService.EXPECT().HandleEvent(gomock.Any(), event).Return(nil)

		rec := serveAs(api, "", http.MethodPost, "/api/billing/webhook", payload)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", rec.Code)
		}
	})
}

func serveWebhook(api *API, payload, signature string) *httptest.ResponseRecorder {
	mux := chi.NewMux()
	api.RegisterWebhook(mux)
	req := httptest.NewRequest(http.MethodPost, "/api/billing/webhook", strings.NewReader(payload))
	req.Header.Set("Stripe-Signature", signature)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}
