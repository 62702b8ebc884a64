// Copyright 2026 LandlordOS Ltd
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	httptypes "github.com/landlordos/property-service/internal/http/types"
	"github.com/landlordos/property-service/internal/logging"
	"github.com/landlordos/property-service/internal/types"
)

type SignupRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordRequest struct {
	Token    string `json:"token" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type SessionResponse struct {
	User *types.User `json:"user"`
}

type API struct {
	service  ServiceInterface
	sessions *SessionManager
	validate *validator.Validate
	logger   logging.LoggerInterface
}

func NewAPI(service ServiceInterface, sessions *SessionManager, logger logging.LoggerInterface) *API {
	return &API{
		service:  service,
		sessions: sessions,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		logger:   logger,
	}
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Post("/api/auth/signup", a.signup)
	mux.Post("/api/auth/login", a.login)
	mux.Post("/api/auth/logout", a.logout)
	mux.Post("/api/auth/forgot-password", a.forgotPassword)
	mux.Post("/api/auth/reset-password", a.resetPassword)
}

func (a *API) signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if !a.decode(w, r, &req) {
		return
	}

	user, err := a.service.Signup(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, ErrWeakPassword):
			httptypes.WriteValidationError(w, err.Error(), nil)
		case errors.Is(err, ErrEmailTaken):
			httptypes.WriteConflict(w, err.Error())
		default:
			httptypes.WriteInternalError(w)
		}
		return
	}

	a.startSession(w, http.StatusCreated, user)
}

func (a *API) login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !a.decode(w, r, &req) {
		return
	}

	user, err := a.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			httptypes.WriteUnauthorized(w, err.Error())
			return
		}
		httptypes.WriteInternalError(w)
		return
	}

	a.startSession(w, http.StatusOK, user)
}

func (a *API) logout(w http.ResponseWriter, r *http.Request) {
	a.sessions.ClearSessionCookie(w)
	httptypes.WriteJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (a *API) forgotPassword(w http.ResponseWriter, r *http.Request) {
	var req ForgotPasswordRequest
	if !a.decode(w, r, &req) {
		return
	}

	if err := a.service.ForgotPassword(r.Context(), req.Email); err != nil {
		httptypes.WriteInternalError(w)
		return
	}

	// Same response whether or not the account exists.
	httptypes.WriteJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (a *API) resetPassword(w http.ResponseWriter, r *http.Request) {
	var req ResetPasswordRequest
	if !a.decode(w, r, &req) {
		return
	}

	if err := a.service.ResetPassword(r.Context(), req.Token, req.Password); err != nil {
		switch {
		case errors.Is(err, ErrWeakPassword):
			httptypes.WriteValidationError(w, err.Error(), nil)
		case errors.Is(err, ErrInvalidResetToken):
			httptypes.WriteValidationError(w, err.Error(), nil)
		default:
			httptypes.WriteInternalError(w)
		}
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (a *API) startSession(w http.ResponseWriter, status int, user *types.User) {
	token, err := a.sessions.IssueToken(user.ID)
	if err != nil {
		a.logger.Errorf("failed to issue session token: %v", err)
		httptypes.WriteInternalError(w)
		return
	}

	a.sessions.SetSessionCookie(w, token)
	httptypes.WriteJSON(w, status, SessionResponse{User: user})
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
