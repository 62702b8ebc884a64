// Copyright 2026 LandlordOS Ltd
// SPDX-License-Identifier: AGPL-3.0

package payments

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/landlordos/property-service/internal/db"
	httptypes "github.com/landlordos/property-service/internal/http/types"
	"github.com/landlordos/property-service/internal/logging"
	"github.com/landlordos/property-service/internal/storage"
	"github.com/landlordos/property-service/internal/types"
	"github.com/landlordos/property-service/pkg/authentication"
)

const dateLayout = "2006-01-02"

type CreatePaymentRequest struct {
	TenantID      httptypes.NullableText `json:"tenantId" validate:"required"`
	Amount        decimal.Decimal        `json:"amount"`
	PaymentDate   httptypes.NullableText `json:"paymentDate" validate:"required"`
	PaymentMethod httptypes.NullableText `json:"paymentMethod" validate:"omitempty,max=50"`
	Notes         httptypes.NullableText `json:"notes"`
}

type UpdatePaymentRequest struct {
	Amount        *decimal.Decimal       `json:"amount"`
	PaymentDate   httptypes.NullableText `json:"paymentDate"`
	PaymentMethod httptypes.NullableText `json:"paymentMethod" validate:"omitempty,max=50"`
	Notes         httptypes.NullableText `json:"notes"`
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
	mux.Get("/api/payments", a.list)
	mux.Post("/api/payments", a.create)
	mux.Get("/api/payments/{id}", a.get)
	mux.Patch("/api/payments/{id}", a.update)
	mux.Delete("/api/payments/{id}", a.delete)
}

func (a *API) list(w http.ResponseWriter, r *http.Request) {
	userID, ok := authentication.GetUserID(r.Context())
	if !ok {
		httptypes.WriteUnauthorized(w, "authentication required")
		return
	}

	page, err := strconv.ParseInt(r.URL.Query().Get("page"), 10, 64)
	if err != nil || page < 1 {
		page = 1
	}
	rawLimit, err := strconv.ParseInt(r.URL.Query().Get("limit"), 10, 64)
	if err != nil {
		rawLimit = 0
	}
	limit := int64(db.PageSize(rawLimit))

	payments, err := a.service.ListPayments(r.Context(), userID, page, limit)
	if err != nil {
		a.logger.Errorf("failed to list payments: %v", err)
		httptypes.WriteInternalError(w)
		return
	}
	if payments == nil {
		payments = []*types.Payment{}
	}

	hasMore := int64(len(payments)) == limit
	httptypes.WriteJSON(w, http.StatusOK, httptypes.PaginatedResponse{
		Data: payments,
		Pagination: httptypes.Pagination{
			Page:    int(page),
			Limit:   int(limit),
			HasMore: hasMore,
		},
	})
}

func (a *API) create(w http.ResponseWriter, r *http.Request) {
	userID, ok := authentication.GetUserID(r.Context())
	if !ok {
		httptypes.WriteUnauthorized(w, "authentication required")
		return
	}

	var req CreatePaymentRequest
	if !a.decode(w, r, &req) {
		return
	}

	paymentDate, err := time.Parse(dateLayout, req.PaymentDate.String())
	if err != nil {
		httptypes.WriteValidationError(w, "invalid date", map[string]string{"paymentDate": "expected yyyy-mm-dd"})
		return
	}

	payment, err := a.service.CreatePayment(r.Context(), userID, &types.Payment{
		TenantID:      req.TenantID.String(),
		Amount:        req.Amount,
		PaymentDate:   paymentDate,
		PaymentMethod: req.PaymentMethod.Value,
		Notes:         req.Notes.Value,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrTenantNotFound):
			httptypes.WriteNotFound(w, "tenant")
		case errors.Is(err, ErrNonPositiveAmount):
			httptypes.WriteValidationError(w, err.Error(), nil)
		default:
			a.logger.Errorf("failed to create payment: %v", err)
			httptypes.WriteInternalError(w)
		}
		return
	}

	httptypes.WriteJSON(w, http.StatusCreated, payment)
}

func (a *API) get(w http.ResponseWriter, r *http.Request) {
	userID, ok := authentication.GetUserID(r.Context())
	if !ok {
		httptypes.WriteUnauthorized(w, "authentication required")
		return
	}

	payment, err := a.service.GetPayment(r.Context(), chi.URLParam(r, "id"), userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			httptypes.WriteNotFound(w, "payment")
			return
		}
		a.logger.Errorf("failed to fetch payment: %v", err)
		httptypes.WriteInternalError(w)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, payment)
}

func (a *API) update(w http.ResponseWriter, r *http.Request) {
	userID, ok := authentication.GetUserID(r.Context())
	if !ok {
		httptypes.WriteUnauthorized(w, "authentication required")
		return
	}

	var req UpdatePaymentRequest
	if !a.decode(w, r, &req) {
		return
	}

	payment := &types.Payment{ID: chi.URLParam(r, "id")}
	var paths []string
	if req.Amount != nil {
		payment.Amount = *req.Amount
		paths = append(paths, "amount")
	}
	if req.PaymentDate.Set {
		if req.PaymentDate.Value == nil {
			httptypes.WriteValidationError(w, "invalid request", map[string]string{"paymentDate": "required"})
			return
		}
		paymentDate, err := time.Parse(dateLayout, *req.PaymentDate.Value)
		if err != nil {
			httptypes.WriteValidationError(w, "invalid date", map[string]string{"paymentDate": "expected yyyy-mm-dd"})
			return
		}
		payment.PaymentDate = paymentDate
		paths = append(paths, "payment_date")
	}
	if req.PaymentMethod.Set {
		payment.PaymentMethod = req.PaymentMethod.Value
		paths = append(paths, "payment_method")
	}
	if req.Notes.Set {
		payment.Notes = req.Notes.Value
		paths = append(paths, "notes")
	}
	if len(paths) == 0 {
		httptypes.WriteValidationError(w, "no fields to update", nil)
		return
	}

	updated, err := a.service.UpdatePayment(r.Context(), userID, payment, paths)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			httptypes.WriteNotFound(w, "payment")
		case errors.Is(err, ErrNonPositiveAmount):
			httptypes.WriteValidationError(w, err.Error(), nil)
		default:
			a.logger.Errorf("failed to update payment: %v", err)
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

	if err := a.service.DeletePayment(r.Context(), chi.URLParam(r, "id"), userID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			httptypes.WriteNotFound(w, "payment")
			return
		}
		a.logger.Errorf("failed to delete payment: %v", err)
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
