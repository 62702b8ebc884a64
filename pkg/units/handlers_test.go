// Copyright 2026 LandlordOS Ltd
// SPDX-License-Identifier: AGPL-3.0

package units

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
		mockService.EXPECT().CreateUnit(gomock.Any(), "user-123", gomock.Any()).
			Return(&types.Unit{ID: "unit-1"}, nil)

		rec := serveAs(api, "user-123", http.MethodPost, "/api/units",
			`{"propertyId":"prop-1","unitNumber":"2B","rentAmount":"1200.00"}`)

		if rec.Code != http.StatusCreated {
			t.Errorf("expected status 201, got %d: %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("missing parent property returns 404", func(t *testing.T) {
		api, mockService := newTestAPI(t)
		mockService.EXPECT().CreateUnit(gomock.Any(), "user-123", gomock.Any()).
			Return(nil, ErrPropertyNotFound)

		rec := serveAs(api, "user-123", http.MethodPost, "/api/units",
			`{"propertyId":"prop-other","unitNumber":"2B"}`)

		if rec.Code != http.StatusNotFound {
			t.Errorf("expected status 404, got %d", rec.Code)
		}
	})

	t.Run("bad status value returns 400", func(t *testing.T) {
		api, _ := newTestAPI(t)

		rec := serveAs(api, "user-123", http.MethodPost, "/api/units",
			`{"propertyId":"prop-1","unitNumber":"2B","status":"demolished"}`)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected status 400, got %d", rec.Code)
		}
	})
}

func TestAPI_List(t *testing.T) {
	api, mockService := newTestAPI(t)
	propertyID := "prop-1"

	mockService.EXPECT().ListUnits(gomock.Any(), "user-123", &propertyID).
		Return([]*types.Unit{{ID: "unit-1"}}, nil)

	rec := serveAs(api, "user-123", http.MethodGet, "/api/units?propertyId=prop-1", "")

	if rec.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rec.Code)
	}
}

func TestAPI_Get(t *testing.T) {
	api, mockService := newTestAPI(t)
	mockService.EXPECT().GetUnit(gomock.Any(), "unit-1", "intruder").Return(nil, storage.ErrNotFound)

	rec := serveAs(api, "intruder", http.MethodGet, "/api/units/unit-1", "")

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", rec.Code)
	}
}

func TestAPI_Update(t *testing.T) {
	api, mockService := newTestAPI(t)
	mockService.EXPECT().UpdateUnit(gomock.Any(), "user-123", gomock.Any(), []string{"status"}).
		Return(&types.Unit{ID: "unit-1", Status: types.UnitStatusOccupied}, nil)

	rec := serveAs(api, "user-123", http.MethodPatch, "/api/units/unit-1", `{"status":"occupied"}`)

	if rec.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestAPI_Delete(t *testing.T) {
	api, mockService := newTestAPI(t)
	mockService.EXPECT().DeleteUnit(gomock.Any(), "unit-1", "user-123").Return(nil)

	rec := serveAs(api, "user-123", http.MethodDelete, "/api/units/unit-1", "")

	if rec.Code != http.StatusNoContent {
		t.Errorf("expected status 204, got %d", rec.Code)
	}
}
