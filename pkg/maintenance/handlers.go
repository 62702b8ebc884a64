// Copyright 2026 LandlordOS Ltd
// SPDX-License-Identifier: AGPL-3.0

package maintenance

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	httptypes "github.com/landlordos/property-service/internal/http/types"
	"github.com/landlordos/property-service/internal/logging"
	"github.com/landlordos/property-service/internal/storage"
	"github.com/landlordos/property-service/internal/types"
	"github.com/landlordos/property-service/pkg/authentication"
)

type CreateRequestRequest struct {
	UnitID      httptypes.NullableText `json:"unitId" validate:"required"`
	Title       httptypes.NullableText `json:"title" validate:"required,max=200"`
	Description httptypes.NullableText `json:"description" validate:"required,max=5000"`
	Priority    httptypes.NullableText `json:"priority" validate:"omitempty,oneof=low medium high"`
}

type UpdateRequestRequest struct {
	Title           httptypes.NullableText `json:"title" validate:"omitempty,max=200"`
	Description     httptypes.NullableText `json:"description" validate:"omitempty,max=5000"`
	Status          httptypes.NullableText `json:"status" validate:"omitempty,oneof=open in_progress resolved"`
	Priority        httptypes.NullableText `json:"priority" validate:"omitempty,oneof=low medium high"`
	ResolutionNotes httptypes.NullableText `json:"resolutionNotes"`
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
	mux.Get("/api/maintenance", a.list)
	mux.Post("/api/maintenance", a.create)
	mux.Get("/api/maintenance/{id}", a.get)
	mux.Patch("/api/maintenance/{id}", a.update)
	mux.Delete("/api/maintenance/{id}", a.delete)
}

func (a *API) list(w http.ResponseWriter, r *http.Request) {
	userID, ok := authentication.GetUserID(r.Context())
	if !ok {
		httptypes.WriteUnauthorized(w, "authentication required")
		return
	}

	requests, err := a.service.ListRequests(r.Context(), userID)
	if err != nil {
		a.logger.Errorf("failed to list maintenance requests: %v", err)
		httptypes.WriteInternalError(w)
		return
	}
	if requests == nil {
		requests = []*types.MaintenanceRequest{}
	}

	httptypes.WriteJSON(w, http.StatusOK, requests)
}

func (a *API) create(w http.ResponseWriter, r *http.Request) {
	userID, ok := authentication.GetUserID(r.Context())
	if !ok {
		httptypes.WriteUnauthorized(w, "authentication required")
		return
	}

	var req CreateRequestRequest
	if !a.decode(w, r, &req) {
		return
	}

	request, err := a.service.CreateRequest(r.Context(), userID, &types.MaintenanceRequest{
		UnitID:      req.UnitID.String(),
		Title:       req.Title.String(),
		Description: req.Description.String(),
		Priority:    req.Priority.String(),
	})
	if err != nil {
		if errors.Is(err, ErrUnitNotFound) {
			httptypes.WriteNotFound(w, "unit")
			return
		}
		a.logger.Errorf("failed to create maintenance request: %v", err)
		httptypes.WriteInternalError(w)
		return
	}

	httptypes.WriteJSON(w, http.StatusCreated, request)
}

func (a *API) get(w http.ResponseWriter, r *http.Request) {
	userID, ok := authentication.GetUserID(r.Context())
	if !ok {
		httptypes.WriteUnauthorized(w, "authentication required")
		return
	}

	request, err := a.service.GetRequest(r.Context(), chi.URLParam(r, "id"), userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			httptypes.WriteNotFound(w, "maintenance request")
			return
		}
		a.logger.Errorf("failed to fetch maintenance request: %v", err)
		httptypes.WriteInternalError(w)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, request)
}

func (a *API) update(w http.ResponseWriter, r *http.Request) {
	userID, ok := authentication.GetUserID(r.Context())
	if !ok {
		httptypes.WriteUnauthorized(w, "authentication required")
		return
	}

	var req UpdateRequestRequest
	if !a.decode(w, r, &req) {
		return
	}

	request := &types.MaintenanceRequest{ID: chi.URLParam(r, "id")}
	var paths []string
	if req.Title.Set {
		if req.Title.Value == nil {
			httptypes.WriteValidationError(w, "invalid request", map[string]string{"title": "required"})
			return
		}
		request.Title = *req.Title.Value
		paths = append(paths, "title")
	}
	if req.Description.Set {
		if req.Description.Value == nil {
			httptypes.WriteValidationError(w, "invalid request", map[string]string{"description": "required"})
			return
		}
		request.Description = *req.Description.Value
		paths = append(paths, "description")
	}
	if req.Status.Set {
		if req.Status.Value == nil {
			httptypes.WriteValidationError(w, "invalid request", map[string]string{"status": "required"})
			return
		}
		request.Status = *req.Status.Value
		paths = append(paths, "status")
	}
	if req.Priority.Set {
		if req.Priority.Value == nil {
			httptypes.WriteValidationError(w, "invalid request", map[string]string{"priority": "required"})
			return
		}
		request.Priority = *req.Priority.Value
		paths = append(paths, "priority")
	}
	if req.ResolutionNotes.Set {
		request.ResolutionNotes = req.ResolutionNotes.Value
		paths = append(paths, "resolution_notes")
	}
	if len(paths) == 0 {
		httptypes.WriteValidationError(w, "no fields to update", nil)
		return
	}

	updated, err := a.service.UpdateRequest(r.Context(), userID, request, paths)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			httptypes.WriteNotFound(w, "maintenance request")
			return
		}
		a.logger.Errorf("failed to update maintenance request: %v", err)
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

	if err := a.service.DeleteRequest(r.Context(), chi.URLParam(r, "id"), userID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			httptypes.WriteNotFound(w, "maintenance request")
			return
		}
		a.logger.Errorf("failed to delete maintenance request: %v", err)
		httptypes.WriteInternalError(w)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *API) decode(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		httptypes.WriteValidationError(w, "invalid request body", nil)
		return false
	}

	if err := a.validate.Struct(dst); err != nil {
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
