// Copyright 2026 LandlordOS Ltd
// SPDX-License-Identifier: AGPL-3.0

package billing

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	httptypes "github.com/landlordos/property-service/internal/http/types"
	"github.com/landlordos/property-service/internal/logging"
	"github.com/landlordos/property-service/internal/types"
	"github.com/landlordos/property-service/pkg/authentication"
)

// maxWebhookBody caps provider payloads. Stripe documents 64KB events.
const maxWebhookBody = 1 << 16

type CreateCheckoutRequest struct {
	Tier string `json:"tier" validate:"required,oneof=starter pro"`
}

type CheckoutResponse struct {
	URL string `json:"url"`
}

type API struct {
	service  ServiceInterface
	verifier WebhookVerifierInterface
	validate *validator.Validate
	logger   logging.LoggerInterface
}

func NewAPI(service ServiceInterface, verifier WebhookVerifierInterface, logger logging.LoggerInterface) *API {
	return &API{
		service:  service,
		verifier: verifier,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		logger:   logger,
	}
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Post("/api/billing/checkout", a.checkout)
	mux.Get("/api/billing/subscription", a.subscription)
	mux.Get("/api/billing/invoices", a.invoices)
}

// RegisterWebhook mounts the provider callback. It is registered
// separately because it must bypass session auth and CSRF checks.
func (a *API) RegisterWebhook(mux chi.Router) {
	mux.Post("/api/billing/webhook", a.webhook)
}

func (a *API) checkout(w http.ResponseWriter, r *http.Request) {
	userID, ok := authentication.GetUserID(r.Context())
	if !ok {
		httptypes.WriteUnauthorized(w, "authentication required")
		return
	}

	var req CreateCheckoutRequest
	if !a.decode(w, r, &req) {
		return
	}

	url, err := a.service.CreateCheckout(r.Context(), userID, req.Tier)
	if err != nil {
		if errors.Is(err, ErrUnknownTier) {
			httptypes.WriteValidationError(w, "unknown subscription tier", nil)
			return
		}
		a.logger.Errorf("failed to create checkout session: %v", err)
		httptypes.WriteInternalError(w)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, CheckoutResponse{URL: url})
}

func (a *API) subscription(w http.ResponseWriter, r *http.Request) {
	userID, ok := authentication.GetUserID(r.Context())
	if !ok {
		httptypes.WriteUnauthorized(w, "authentication required")
		return
	}

	sub, err := a.service.GetSubscription(r.Context(), userID)
	if err != nil {
		a.logger.Errorf("failed to fetch subscription: %v", err)
		httptypes.WriteInternalError(w)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, sub)
}

func (a *API) invoices(w http.ResponseWriter, r *http.Request) {
	userID, ok := authentication.GetUserID(r.Context())
	if !ok {
		httptypes.WriteUnauthorized(w, "authentication required")
		return
	}

	invoices, err := a.service.ListInvoices(r.Context(), userID)
	if err != nil {
		a.logger.Errorf("failed to list invoices: %v", err)
		httptypes.WriteInternalError(w)
		return
	}
	if invoices == nil {
		invoices = []*types.Invoice{}
	}

	httptypes.WriteJSON(w, http.StatusOK, invoices)
}

// webhook answers 400 only on signature failure. Every verified event
// is acknowledged with 200 so the provider stops redelivering, even
// when processing drops the event.
func (a *API) webhook(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxWebhookBody))
	if err != nil {
		httptypes.WriteError(w, http.StatusBadRequest, "unreadable payload")
		return
	}

	event, err := a.verifier.ConstructEvent(payload, r.Header.Get("Stripe-Signature"))
	if err != nil {
		a.logger.Security().WebhookSignatureRejected(r.RemoteAddr)
		httptypes.WriteError(w, http.StatusBadRequest, "invalid signature")
		return
	}

	if err := a.service.HandleEvent(r.Context(), event); err != nil {
		// Acknowledge anyway. Redelivery would hit the same failure,
		// the operator recovers from the log instead.
		a.logger.Errorf("failed to process webhook event %s: %v", event.ID, err)
	}

	w.WriteHeader(http.StatusOK)
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
