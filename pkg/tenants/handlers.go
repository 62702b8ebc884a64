// Copyright 2026 LandlordOS Ltd
// SPDX-License-Identifier: AGPL-3.0

package tenants

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	httptypes "github.com/landlordos/property-service/internal/http/types"
	"github.com/landlordos/property-service/internal/logging"
	"github.com/landlordos/property-service/internal/storage"
	"github.com/landlordos/property-service/internal/types"
	"github.com/landlordos/property-service/pkg/authentication"
)

const dateLayout = "2006-01-02"

type CreateTenantRequest struct {
	Name       httptypes.NullableText `json:"name" validate:"required,max=200"`
	UnitID     httptypes.NullableText `json:"unitId"`
	Email      httptypes.NullableText `json:"email" validate:"omitempty,email"`
	Phone      httptypes.NullableText `json:"phone" validate:"omitempty,max=50"`
	LeaseStart httptypes.NullableText `json:"leaseStart"`
	LeaseEnd   httptypes.NullableText `json:"leaseEnd"`
	Status     httptypes.NullableText `json:"status" validate:"omitempty,oneof=active past notice"`
	Notes      httptypes.NullableText `json:"notes"`
}

type UpdateTenantRequest struct {
	Name        httptypes.NullableText `json:"name" validate:"omitempty,max=200"`
	UnitID      httptypes.NullableText `json:"unitId"`
	Email       httptypes.NullableText `json:"email" validate:"omitempty,email"`
	Phone       httptypes.NullableText `json:"phone" validate:"omitempty,max=50"`
	LeaseStart  httptypes.NullableText `json:"leaseStart"`
	LeaseEnd    httptypes.NullableText `json:"leaseEnd"`
	Status      httptypes.NullableText `json:"status" validate:"omitempty,oneof=active past notice"`
	MoveOutDate httptypes.NullableText `json:"moveOutDate"`
	Notes       httptypes.NullableText `json:"notes"`
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
	mux.Get("/api/tenants", a.list)
	mux.Post("/api/tenants", a.create)
	mux.Get("/api/tenants/{id}", a.get)
	mux.Patch("/api/tenants/{id}", a.update)
	mux.Delete("/api/tenants/{id}", a.delete)
}

func (a *API) list(w http.ResponseWriter, r *http.Request) {
	userID, ok := authentication.GetUserID(r.Context())
	if !ok {
		httptypes.WriteUnauthorized(w, "authentication required")
		return
	}

	tenants, err := a.service.ListTenants(r.Context(), userID)
	if err != nil {
		a.logger.Errorf("failed to list tenants: %v", err)
		httptypes.WriteInternalError(w)
		return
	}
	if tenants == nil {
		tenants = []*types.Tenant{}
	}

	httptypes.WriteJSON(w, http.StatusOK, tenants)
}

func (a *API) create(w http.ResponseWriter, r *http.Request) {
	userID, ok := authentication.GetUserID(r.Context())
	if !ok {
		httptypes.WriteUnauthorized(w, "authentication required")
		return
	}

	var req CreateTenantRequest
	if !a.decode(w, r, &req) {
		return
	}

	tenant := &types.Tenant{
		Name:   req.Name.String(),
		UnitID: req.UnitID.Value,
		Email:  req.Email.Value,
		Phone:  req.Phone.Value,
		Status: req.Status.String(),
		Notes:  req.Notes.Value,
	}

	var ok2 bool
	if tenant.LeaseStart, ok2 = parseDate(w, "leaseStart", req.LeaseStart.Value); !ok2 {
		return
	}
	if tenant.LeaseEnd, ok2 = parseDate(w, "leaseEnd", req.LeaseEnd.Value); !ok2 {
		return
	}

	created, err := a.service.CreateTenant(r.Context(), userID, tenant)
	if err != nil {
		if errors.Is(err, ErrUnitNotFound) {
			httptypes.WriteNotFound(w, "unit")
			return
		}
		a.logger.Errorf("failed to create tenant: %v", err)
		httptypes.WriteInternalError(w)
		return
	}

	httptypes.WriteJSON(w, http.StatusCreated, created)
}

func (a *API) get(w http.ResponseWriter, r *http.Request) {
	userID, ok := authentication.GetUserID(r.Context())
	if !ok {
		httptypes.WriteUnauthorized(w, "authentication required")
		return
	}

	tenant, err := a.service.GetTenant(r.Context(), chi.URLParam(r, "id"), userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			httptypes.WriteNotFound(w, "tenant")
			return
		}
		a.logger.Errorf("failed to fetch tenant: %v", err)
		httptypes.WriteInternalError(w)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, tenant)
}

func (a *API) update(w http.ResponseWriter, r *http.Request) {
	userID, ok := authentication.GetUserID(r.Context())
	if !ok {
		httptypes.WriteUnauthorized(w, "authentication required")
		return
	}

	var req UpdateTenantRequest
	if !a.decode(w, r, &req) {
		return
	}

	tenant := &types.Tenant{ID: chi.URLParam(r, "id")}
	var paths []string
	if req.Name.Set {
		if req.Name.Value == nil {
			httptypes.WriteValidationError(w, "invalid request", map[string]string{"name": "required"})
			return
		}
		tenant.Name = *req.Name.Value
		paths = append(paths, "name")
	}
	if req.UnitID.Set {
		// Null clears the assignment.
		tenant.UnitID = req.UnitID.Value
		paths = append(paths, "unit_id")
	}
	if req.Email.Set {
		tenant.Email = req.Email.Value
		paths = append(paths, "email")
	}
	if req.Phone.Set {
		tenant.Phone = req.Phone.Value
		paths = append(paths, "phone")
	}
	if req.LeaseStart.Set {
		var ok2 bool
		if tenant.LeaseStart, ok2 = parseDate(w, "leaseStart", req.LeaseStart.Value); !ok2 {
			return
		}
		paths = append(paths, "lease_start")
	}
	if req.LeaseEnd.Set {
		var ok2 bool
		if tenant.LeaseEnd, ok2 = parseDate(w, "leaseEnd", req.LeaseEnd.Value); !ok2 {
			return
		}
		paths = append(paths, "lease_end")
	}
	if req.Status.Set {
		if req.Status.Value == nil {
			httptypes.WriteValidationError(w, "invalid request", map[string]string{"status": "required"})
			return
		}
		tenant.Status = *req.Status.Value
		paths = append(paths, "status")
	}
	if req.MoveOutDate.Set {
		var ok2 bool
		if tenant.MoveOutDate, ok2 = parseDate(w, "moveOutDate", req.MoveOutDate.Value); !ok2 {
			return
		}
		paths = append(paths, "move_out_date")
	}
	if req.Notes.Set {
		tenant.Notes = req.Notes.Value
		paths = append(paths, "notes")
	}
	if len(paths) == 0 {
		httptypes.WriteValidationError(w, "no fields to update", nil)
		return
	}

	updated, err := a.service.UpdateTenant(r.Context(), userID, tenant, paths)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			httptypes.WriteNotFound(w, "tenant")
		case errors.Is(err, ErrUnitNotFound):
			httptypes.WriteNotFound(w, "unit")
		default:
			a.logger.Errorf("failed to update tenant: %v", err)
			httptypes.WriteInternalError(w)
		}
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

	if err := a.service.DeleteTenant(r.Context(), chi.URLParam(r, "id"), userID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			httptypes.WriteNotFound(w, "tenant")
			return
		}
		a.logger.Errorf("failed to delete tenant: %v", err)
		httptypes.WriteInternalError(w)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// parseDate turns an optional yyyy-mm-dd string into a timestamp. It
// writes a validation error and reports false on malformed input.
func parseDate(w http.ResponseWriter, field string, value *string) (*time.Time, bool) {
	if value == nil || *value == "" {
		return nil, true
	}
	t, err := time.Parse(dateLayout, *value)
	if err != nil {
		httptypes.WriteValidationError(w, "invalid date", map[string]string{field: "expected yyyy-mm-dd"})
		return nil, false
	}
	return &t, true
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
