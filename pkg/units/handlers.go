// Copyright 2026 LandlordOS Ltd
// SPDX-License-Identifier: AGPL-3.0

package units

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	httptypes "github.com/landlordos/property-service/internal/http/types"
	"github.com/landlordos/property-service/internal/logging"
	"github.com/landlordos/property-service/internal/storage"
	"github.com/landlordos/property-service/internal/types"
	"github.com/landlordos/property-service/pkg/authentication"
)

type CreateUnitRequest struct {
	PropertyID httptypes.NullableText `json:"propertyId" validate:"required"`
	UnitNumber httptypes.NullableText `json:"unitNumber" validate:"required,max=50"`
	RentAmount decimal.Decimal        `json:"rentAmount"`
	Status     httptypes.NullableText `json:"status" validate:"omitempty,oneof=vacant occupied maintenance"`
}

type UpdateUnitRequest struct {
	UnitNumber httptypes.NullableText `json:"unitNumber" validate:"omitempty,max=50"`
	RentAmount *decimal.Decimal       `json:"rentAmount"`
	Status     httptypes.NullableText `json:"status" validate:"omitempty,oneof=vacant occupied maintenance"`
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
	mux.Get("/api/units", a.list)
	mux.Post("/api/units", a.create)
	mux.Get("/api/units/{id}", a.get)
	mux.Patch("/api/units/{id}", a.update)
	mux.Delete("/api/units/{id}", a.delete)
}

func (a *API) list(w http.ResponseWriter, r *http.Request) {
	userID, ok := authentication.GetUserID(r.Context())
	if !ok {
		httptypes.WriteUnauthorized(w, "authentication required")
		return
	}

	var propertyID *string
	if v := r.URL.Query().Get("propertyId"); v != "" {
		propertyID = &v
	}

	units, err := a.service.ListUnits(r.Context(), userID, propertyID)
	if err != nil {
		a.logger.Errorf("failed to list units: %v", err)
		httptypes.WriteInternalError(w)
		return
	}
	if units == nil {
		units = []*types.Unit{}
	}

	httptypes.WriteJSON(w, http.StatusOK, units)
}

func (a *API) create(w http.ResponseWriter, r *http.Request) {
	userID, ok := authentication.GetUserID(r.Context())
	if !ok {
		httptypes.WriteUnauthorized(w, "authentication required")
		return
	}

	var req CreateUnitRequest
	if !a.decode(w, r, &req) {
		return
	}

	unit, err := a.service.CreateUnit(r.Context(), userID, &types.Unit{
		PropertyID: req.PropertyID.String(),
		UnitNumber: req.UnitNumber.String(),
		RentAmount: req.RentAmount,
		Status:     req.Status.String(),
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrPropertyNotFound):
			httptypes.WriteNotFound(w, "property")
		case errors.Is(err, ErrNegativeRent):
			httptypes.WriteValidationError(w, err.Error(), nil)
		default:
			a.logger.Errorf("failed to create unit: %v", err)
			httptypes.WriteInternalError(w)
		}
		return
	}

	httptypes.WriteJSON(w, http.StatusCreated, unit)
}

func (a *API) get(w http.ResponseWriter, r *http.Request) {
	userID, ok := authentication.GetUserID(r.Context())
	if !ok {
		httptypes.WriteUnauthorized(w, "authentication required")
		return
	}

	unit, err := a.service.GetUnit(r.Context(), chi.URLParam(r, "id"), userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			httptypes.WriteNotFound(w, "unit")
			return
		}
		a.logger.Errorf("failed to fetch unit: %v", err)
		httptypes.WriteInternalError(w)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, unit)
}

func (a *API) update(w http.ResponseWriter, r *http.Request) {
	userID, ok := authentication.GetUserID(r.Context())
	if !ok {
		httptypes.WriteUnauthorized(w, "authentication required")
		return
	}

	var req UpdateUnitRequest
	if !a.decode(w, r, &req) {
		return
	}

	unit := &types.Unit{ID: chi.URLParam(r, "id")}
	var paths []string
	if req.UnitNumber.Set {
		if req.UnitNumber.Value == nil {
			httptypes.WriteValidationError(w, "invalid request", map[string]string{"unitNumber": "required"})
			return
		}
		unit.UnitNumber = *req.UnitNumber.Value
		paths = append(paths, "unit_number")
	}
	if req.RentAmount != nil {
		unit.RentAmount = *req.RentAmount
		paths = append(paths, "rent_amount")
	}
	if req.Status.Set {
		if req.Status.Value == nil {
			httptypes.WriteValidationError(w, "invalid request", map[string]string{"status": "required"})
			return
		}
		unit.Status = *req.Status.Value
		paths = append(paths, "status")
	}
	if len(paths) == 0 {
		httptypes.WriteValidationError(w, "no fields to update", nil)
		return
	}

	updated, err := a.service.UpdateUnit(r.Context(), userID, unit, paths)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			httptypes.WriteNotFound(w, "unit")
		case errors.Is(err, ErrNegativeRent):
			httptypes.WriteValidationError(w, err.Error(), nil)
		default:
			a.logger.Errorf("failed to update unit: %v", err)
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

	if err := a.service.DeleteUnit(r.Context(), chi.URLParam(r, "id"), userID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			httptypes.WriteNotFound(w, "unit")
			return
		}
		a.logger.Errorf("failed to delete unit: %v", err)
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
