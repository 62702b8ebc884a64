// Copyright 2026 LandlordOS Ltd
// SPDX-License-Identifier: AGPL-3.0

package payments

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"github.com/landlordos/property-service/internal/logging"
	"github.com/landlordos/property-service/internal/storage"
	"github.com/landlordos/property-service/internal/types"
	"github.com/landlordos/property-service/pkg/authentication"
)

func newTestAPI(t *testing.T) (*API, *MockServiceInterface) {
	ctrl := gomock.NewController(t)
	mockService := NewMockServiceInterface(ctrl)
	return NewAPI(mockService, logging.NewNoopLogger()), mockService
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

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func TestAPI_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		api, mockService := newTestAPI(t)
		mockService.EXPECT().CreatePayment(gomock.Any(), "user-123", gomock.Any()).DoAndReturn(
			func(_ interface{}, _ string, p *types.Payment) (*types.Payment, error) {
				if p.PaymentDate.Format(dateLayout) != "2026-08-01" {
					t.Errorf("unexpected payment date: %v", p.PaymentDate)
				}
				return p, nil
			})

		rec := serveAs(api, "user-123", http.MethodPost, "/api/payments",
			`{"tenantId":"tenant-1","amount":"1200.00","paymentDate":"2026-08-01","paymentMethod":"bank transfer"}`)

		if rec.Code != http.StatusCreated {
			t.Errorf("expected status 201, got %d: %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("foreign tenant returns 404", func(t *testing.T) {
		api, mockService := newTestAPI(t)
		mockService.EXPECT().CreatePayment(gomock.Any(), "user-123", gomock.Any()).Return(nil, ErrTenantNotFound)

		rec := serveAs(api, "user-123", http.MethodPost, "/api/payments",
			`{"tenantId":"tenant-other","amount":"1200.00","paymentDate":"2026-08-01"}`)

		if rec.Code != http.StatusNotFound {
			t.Errorf("expected status 404, got %d", rec.Code)
		}
	})

	t.Run("malformed date returns 400", func(t *testing.T) {
		api, _ := newTestAPI(t)

		rec := serveAs(api, "user-123", http.MethodPost, "/api/payments",
			`{"tenantId":"tenant-1","amount":"1200.00","paymentDate":"08/01/2026"}`)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected status 400, got %d", rec.Code)
		}
	})
}

func TestAPI_List(t *testing.T) {
	api, mockService := newTestAPI(t)
	mockService.EXPECT().ListPayments(gomock.Any(), "user-123", int64(1), int64(50)).
		Return([]*types.Payment{{ID: "pay-1"}}, nil)

	rec := serveAs(api, "user-123", http.MethodGet, "/api/payments", "")

	if rec.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rec.Code)
	}
}

func TestAPI_Get(t *testing.T) {
	api, mockService := newTestAPI(t)
	mockService.EXPECT().GetPayment(gomock.Any(), "pay-1", "intruder").Return(nil, storage.ErrNotFound)

	rec := serveAs(api, "intruder", http.MethodGet, "/api/payments/pay-1", "")

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", rec.Code)
	}
}

func TestAPI_Update(t *testing.T) {
	api, mockService := newTestAPI(t)
	mockService.EXPECT().UpdatePayment(gomock.Any(), "user-123", gomock.Any(), []string{"notes"}).
		Return(&types.Payment{ID: "pay-1"}, nil)

	rec := serveAs(api, "user-123", http.MethodPatch, "/api/payments/pay-1", `{"notes":"late fee waived"}`)

	if rec.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestAPI_Delete(t *testing.T) {
	api, mockService := newTestAPI(t)
	mockService.EXPECT().DeletePayment(gomock.Any(), "pay-1", "user-123").Return(nil)

	rec := serveAs(api, "user-123", http.MethodDelete, "/api/payments/pay-1", "")

	if rec.Code != http.StatusNoContent {
		t.Errorf("expected status 204, got %d", rec.Code)
	}
}
