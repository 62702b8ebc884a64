// Copyright 2026 LandlordOS Ltd
// SPDX-License-Identifier: AGPL-3.0

package properties

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/landlordos/property-service/internal/db"
	httptypes "github.com/landlordos/property-service/internal/http/types"
	"github.com/landlordos/property-service/internal/logging"
	"github.com/landlordos/property-service/internal/storage"
	"github.com/landlordos/property-service/internal/types"
	"github.com/landlordos/property-service/pkg/authentication"
)

type CreatePropertyRequest struct {
	Name    httptypes.NullableText `json:"name" validate:"required,max=200"`
	Address httptypes.NullableText `json:"address" validate:"omitempty,max=500"`
	Notes   httptypes.NullableText `json:"notes"`
}

// UpdatePropertyRequest carries only the fields the caller wants to
// change. Absent fields keep their stored value; an explicit null
// clears an optional field.
type UpdatePropertyRequest struct {
	Name    httptypes.NullableText `json:"name" validate:"omitempty,max=200"`
	Address httptypes.NullableText `json:"address" validate:"omitempty,max=500"`
	Notes   httptypes.NullableText `json:"notes"`
}

type API struct {
	service  ServiceInterface
	validate *validator.Validate
	logger   logging.LoggerInterface
}

func NewAPI(service ServiceInterface, logger logging.LoggerInterface) *API {
	return &API{
		service:  service,
		validate: httptypes.NewValidator(),
		logger:   logger,
	}
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Get("/api/properties", a.list)
	mux.Post("/api/properties", a.create)
	mux.Get("/api/properties/{id}", a.get)
	mux.Patch("/api/properties/{id}", a.update)
	mux.Delete("/api/properties/{id}", a.delete)
}

func (a *API) list(w http.ResponseWriter, r *http.Request) {
	userID, ok := authentication.GetUserID(r.Context())
	if !ok {
		httptypes.WriteUnauthorized(w, "authentication required")
		return
	}

	page, limit := parsePage(r)
	limit = int64(db.PageSize(limit))

	properties, total, err := a.service.ListProperties(r.Context(), userID, page, limit)
	if err != nil {
		a.logger.Errorf("failed to list properties: %v", err)
		httptypes.WriteInternalError(w)
		return
	}
	if properties == nil {
		properties = []*types.Property{}
	}

	httptypes.WriteJSON(w, http.StatusOK, httptypes.PaginatedResponse{
		Data: properties,
		Pagination: httptypes.Pagination{
			Page:    int(page),
			Limit:   int(limit),
			HasMore: page*limit < total,
		},
	})
}

func (a *API) create(w http.ResponseWriter, r *http.Request) {
	userID, ok := authentication.GetUserID(r.Context())
	if !ok {
		httptypes.WriteUnauthorized(w, "authentication required")
		return
	}

	var req CreatePropertyRequest
	if !decode(a.validate, w, r, &req) {
		return
	}

	property, err := a.service.CreateProperty(r.Context(), userID, &types.Property{
		Name:    req.Name.String(),
		Address: req.Address.Value,
		Notes:   req.Notes.Value,
	})
	if err != nil {
		if errors.Is(err, ErrPropertyLimitReached) {
			httptypes.WriteForbidden(w, err.Error())
			return
		}
		a.logger.Errorf("failed to create property: %v", err)
		httptypes.WriteInternalError(w)
		return
	}

	httptypes.WriteJSON(w, http.StatusCreated, property)
}

func (a *API) get(w http.ResponseWriter, r *http.Request) {
	userID, ok := authentication.GetUserID(r.Context())
	if !ok {
		httptypes.WriteUnauthorized(w, "authentication required")
		return
	}

	property, err := a.service.GetProperty(r.Context(), chi.URLParam(r, "id"), userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			httptypes.WriteNotFound(w, "property")
			return
		}
		a.logger.Errorf("failed to fetch property: %v", err)
		httptypes.WriteInternalError(w)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, property)
}

func (a *API) update(w http.ResponseWriter, r *http.Request) {
	userID, ok := authentication.GetUserID(r.Context())
	if !ok {
		httptypes.WriteUnauthorized(w, "authentication required")
		return
	}

	var req UpdatePropertyRequest
	if !decode(a.validate, w, r, &req) {
		return
	}

	property := &types.Property{ID: chi.URLParam(r, "id")}
	var paths []string
	if req.Name.Set {
		if req.Name.Value == nil {
			httptypes.WriteValidationError(w, "invalid request", map[string]string{"name": "required"})
			return
		}
		property.Name = *req.Name.Value
		paths = append(paths, "name")
	}
	if req.Address.Set {
		property.Address = req.Address.Value
		paths = append(paths, "address")
	}
	if req.Notes.Set {
		property.Notes = req.Notes.Value
		paths = append(paths, "notes")
	}
	if len(paths) == 0 {
		httptypes.WriteValidationError(w, "no fields to update", nil)
		return
	}

	updated, err := a.service.UpdateProperty(r.Context(), userID, property, paths)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			httptypes.WriteNotFound(w, "property")
			return
		}
		a.logger.Errorf("failed to update property: %v", err)
		httptypes.WriteInternalError(w)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, updated)
}

func (a *API) delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := authentication.GetUserID(r.Context())
	if !ok {
		httptypes.WriteUnauthorized(w, "authentication required")
		return
	}

	if err := a.service.DeleteProperty(r.Context(), chi.URLParam(r, "id"), userID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			httptypes.WriteNotFound(w, "property")
			return
		}
		a.logger.Errorf("failed to delete property: %v", err)
		httptypes.WriteInternalError(w)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func parsePage(r *http.Request) (int64, int64) {
	page, err := strconv.ParseInt(r.URL.Query().Get("page"), 10, 64)
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.ParseInt(r.URL.Query().Get("limit"), 10, 64)
	if err != nil {
		limit = 0
	}
	return page, limit
}

func decode(validate *validator.Validate, w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		httptypes.WriteValidationError(w, "invalid request body", nil)
		return false
	}

	if err := validate.Struct(dst); err != nil {
		fields := make(map[string]string)
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				fields[fe.Field()] = fe.Tag()
			}
		}
		httptypes.WriteValidationError(w, "invalid request", fields)
		return false
	}

	return true
}
