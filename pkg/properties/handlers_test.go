// Copyright 2026 LandlordOS Ltd
// SPDX-License-Identifier: AGPL-3.0

package properties

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	httptypes "github.com/landlordos/property-service/internal/http/types"
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

func TestAPI_List(t *testing.T) {
	t.Run("pages through results", func(t *testing.T) {
		api, mockService := newTestAPI(t)
		mockService.EXPECT().ListProperties(gomock.Any(), "user-123", int64(2), int64(10)).
			Return([]*types.Property{{ID: "prop-1"}}, int64(25), nil)

		rec := serveAs(api, "user-123", http.MethodGet, "/api/properties?page=2&limit=10", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", rec.Code)
		}

		var resp httptypes.PaginatedResponse
		if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if !resp.Pagination.HasMore {
			t.Error("expected hasMore with 25 total rows and page 2 of 10")
		}
	})

	t.Run("oversized limit is capped", func(t *testing.T) {
		api, mockService := newTestAPI(t)
		mockService.EXPECT().ListProperties(gomock.Any(), "user-123", int64(1), int64(100)).
			Return(nil, int64(0), nil)

		rec := serveAs(api, "user-123", http.MethodGet, "/api/properties?limit=500", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", rec.Code)
		}

		var resp httptypes.PaginatedResponse
		if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if resp.Pagination.Limit != 100 {
			t.Errorf("expected limit capped at 100, got %d", resp.Pagination.Limit)
		}
	})
}

func TestAPI_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		api, mockService := newTestAPI(t)
		mockService.EXPECT().CreateProperty(gomock.Any(), "user-123", gomock.Any()).
			Return(&types.Property{ID: "prop-1", Name: "Elm Street Duplex"}, nil)

		rec := serveAs(api, "user-123", http.MethodPost, "/api/properties", `{"name":"Elm Street Duplex"}`)

		if rec.Code != http.StatusCreated {
			t.Errorf("expected status 201, got %d: %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("missing name returns 400", func(t *testing.T) {
		api, _ := newTestAPI(t)

		rec := serveAs(api, "user-123", http.MethodPost, "/api/properties", `{"address":"12 Elm St"}`)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected status 400, got %d", rec.Code)
		}
	})

	t.Run("plan limit returns 403", func(t *testing.T) {
		api, mockService := newTestAPI(t)
		mockService.EXPECT().CreateProperty(gomock.Any(), "user-123", gomock.Any()).
			Return(nil, ErrPropertyLimitReached)

		rec := serveAs(api, "user-123", http.MethodPost, "/api/properties", `{"name":"One Too Many"}`)

		if rec.Code != http.StatusForbidden {
			t.Errorf("expected status 403, got %d", rec.Code)
		}
	})

	t.Run("unauthenticated returns 401", func(t *testing.T) {
		api, _ := newTestAPI(t)

		rec := serveAs(api, "", http.MethodPost, "/api/properties", `{"name":"Elm Street Duplex"}`)

		if rec.Code != http.StatusUnauthorized {
			t.Errorf("expected status 401, got %d", rec.Code)
		}
	})
}

func TestAPI_Get(t *testing.T) {
	t.Run("another user's property is a 404", func(t *testing.T) {
		api, mockService := newTestAPI(t)
		mockService.EXPECT().GetProperty(gomock.Any(), "prop-1", "intruder").Return(nil, storage.ErrNotFound)

		rec := serveAs(api, "intruder", http.MethodGet, "/api/properties/prop-1", "")

		if rec.Code != http.StatusNotFound {
			t.Errorf("expected status 404, got %d", rec.Code)
		}
	})
}

func TestAPI_Update(t *testing.T) {
	t.Run("only sent fields are updated", func(t *testing.T) {
		api, mockService := newTestAPI(t)
		mockService.EXPECT().UpdateProperty(gomock.Any(), "user-123", gomock.Any(), []string{"notes"}).
			Return(&types.Property{ID: "prop-1"}, nil)

		rec := serveAs(api, "user-123", http.MethodPatch, "/api/properties/prop-1", `{"notes":"new tenant moving in"}`)

		if rec.Code != http.StatusOK {
			t.Errorf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("empty patch returns 400", func(t *testing.T) {
		api, _ := newTestAPI(t)

		rec := serveAs(api, "user-123", http.MethodPatch, "/api/properties/prop-1", `{}`)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected status 400, got %d", rec.Code)
		}
	})

	t.Run("explicit null clears notes", func(t *testing.T) {
		api, mockService := newTestAPI(t)
		mockService.EXPECT().UpdateProperty(gomock.Any(), "user-123", gomock.Any(), []string{"notes"}).DoAndReturn(
			func(_ interface{}, _ string, p *types.Property, _ []string) (*types.Property, error) {
				if p.Notes != nil {
					t.Errorf("expected nil notes, got %q", *p.Notes)
				}
				return p, nil
			})

		rec := serveAs(api, "user-123", http.MethodPatch, "/api/properties/prop-1", `{"notes":null}`)

		if rec.Code != http.StatusOK {
			t.Errorf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("empty string collapses to null", func(t *testing.T) {
		api, mockService := newTestAPI(t)
		mockService.EXPECT().UpdateProperty(gomock.Any(), "user-123", gomock.Any(), []string{"notes"}).DoAndReturn(
			func(_ interface{}, _ string, p *types.Property, _ []string) (*types.Property, error) {
				if p.Notes != nil {
					t.Errorf("expected nil notes, got %q", *p.Notes)
				}
				return p, nil
			})

		rec := serveAs(api, "user-123", http.MethodPatch, "/api/properties/prop-1", `{"notes":"   "}`)

		if rec.Code != http.StatusOK {
			t.Errorf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("values are trimmed", func(t *testing.T) {
		api, mockService := newTestAPI(t)
		mockService.EXPECT().UpdateProperty(gomock.Any(), "user-123", gomock.Any(), []string{"address"}).DoAndReturn(
			func(_ interface{}, _ string, p *types.Property, _ []string) (*types.Property, error) {
				if p.Address == nil || *p.Address != "12 Elm St" {
					t.Errorf("expected trimmed address, got %v", p.Address)
				}
				return p, nil
			})

		rec := serveAs(api, "user-123", http.MethodPatch, "/api/properties/prop-1", `{"address":"  12 Elm St  "}`)

		if rec.Code != http.StatusOK {
			t.Errorf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("name cannot be cleared", func(t *testing.T) {
		api, _ := newTestAPI(t)

		rec := serveAs(api, "user-123", http.MethodPatch, "/api/properties/prop-1", `{"name":null}`)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected status 400, got %d", rec.Code)
		}
	})
}

func TestAPI_Delete(t *testing.T) {
	api, mockService := newTestAPI(t)
	mockService.EXPECT().DeleteProperty(gomock.Any(), "prop-1", "user-123").Return(nil)

	rec := serveAs(api, "user-123", http.MethodDelete, "/api/properties/prop-1", "")

	if rec.Code != http.StatusNoContent {
		t.Errorf("expected status 204, got %d", rec.Code)
	}
}
