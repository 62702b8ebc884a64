// Copyright 2026 LandlordOS Ltd
// SPDX-License-Identifier: AGPL-3.0

package tenants

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
	t.Run("success with lease dates", func(t *testing.T) {
		api, mockService := newTestAPI(t)
		mockService.EXPECT().CreateTenant(gomock.Any(), "user-123", gomock.Any()).DoAndReturn(
			func(_ interface{}, _ string, tn *types.Tenant) (*types.Tenant, error) {
				if tn.LeaseStart == nil || tn.LeaseStart.Format(dateLayout) != "2026-09-01" {
					t.Errorf("unexpected lease start: %v", tn.LeaseStart)
				}
				return tn, nil
			})

		rec := serveAs(api, "user-123", http.MethodPost, "/api/tenants",
			`{"name":"Jordan Reyes","leaseStart":"2026-09-01","leaseEnd":"2027-08-31"}`)

		if rec.Code != http.StatusCreated {
			t.Errorf("expected status 201, got %d: %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("malformed date returns 400", func(t *testing.T) {
		api, _ := newTestAPI(t)

		rec := serveAs(api, "user-123", http.MethodPost, "/api/tenants",
			`{"name":"Jordan Reyes","leaseStart":"09/01/2026"}`)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected status 400, got %d", rec.Code)
		}
	})

	t.Run("foreign unit returns 404", func(t *testing.T) {
		api, mockService := newTestAPI(t)
		mockService.EXPECT().CreateTenant(gomock.Any(), "user-123", gomock.Any()).Return(nil, ErrUnitNotFound)

		rec := serveAs(api, "user-123", http.MethodPost, "/api/tenants",
			`{"name":"Jordan Reyes","unitId":"unit-other"}`)

		if rec.Code != http.StatusNotFound {
			t.Errorf("expected status 404, got %d", rec.Code)
		}
	})
}

func TestAPI_Update(t *testing.T) {
	t.Run("clearing a unit sends a nil assignment", func(t *testing.T) {
		api, mockService := newTestAPI(t)
		mockService.EXPECT().UpdateTenant(gomock.Any(), "user-123", gomock.Any(), []string{"unit_id"}).DoAndReturn(
			func(_ interface{}, _ string, tn *types.Tenant, _ []string) (*types.Tenant, error) {
				if tn.UnitID != nil {
					t.Error("expected nil unit assignment")
				}
				return tn, nil
			})

		rec := serveAs(api, "user-123", http.MethodPatch, "/api/tenants/tenant-1", `{"unitId":""}`)

		if rec.Code != http.StatusOK {
			t.Errorf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("explicit null also clears the unit", func(t *testing.T) {
		api, mockService := newTestAPI(t)
		mockService.EXPECT().UpdateTenant(gomock.Any(), "user-123", gomock.Any(), []string{"unit_id"}).DoAndReturn(
			func(_ interface{}, _ string, tn *types.Tenant, _ []string) (*types.Tenant, error) {
				if tn.UnitID != nil {
					t.Error("expected nil unit assignment")
				}
				return tn, nil
			})

		rec := serveAs(api, "user-123", http.MethodPatch, "/api/tenants/tenant-1", `{"unitId":null}`)

		if rec.Code != http.StatusOK {
			t.Errorf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("unknown tenant returns 404", func(t *testing.T) {
		api, mockService := newTestAPI(t)
		mockService.EXPECT().UpdateTenant(gomock.Any(), "user-123", gomock.Any(), []string{"status"}).
			Return(nil, storage.ErrNotFound)

		rec := serveAs(api, "user-123", http.MethodPatch, "/api/tenants/tenant-1", `{"status":"past"}`)

		if rec.Code != http.StatusNotFound {
			t.Errorf("expected status 404, got %d", rec.Code)
		}
	})
}

func TestAPI_List(t *testing.T) {
	api, mockService := newTestAPI(t)
	mockService.EXPECT().ListTenants(gomock.Any(), "user-123").Return(nil, nil)

	rec := serveAs(api, "user-123", http.MethodGet, "/api/tenants", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if !strings.HasPrefix(rec.Body.String(), "[]") {
		t.Errorf("expected empty array body, got %q", rec.Body.String())
	}
}

func TestAPI_Delete(t *testing.T) {
	api, mockService := newTestAPI(t)
	mockService.EXPECT().DeleteTenant(gomock.Any(), "tenant-1", "user-123").Return(nil)

	rec := serveAs(api, "user-123", http.MethodDelete, "/api/tenants/tenant-1", "")

	if rec.Code != http.StatusNoContent {
		t.Errorf("expected status 204, got %d", rec.Code)
	}
}
