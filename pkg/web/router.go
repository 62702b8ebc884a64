// Copyright 2026 LandlordOS Ltd
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"

	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/landlordos/property-service/internal/db"
	"github.com/landlordos/property-service/internal/logging"
	"github.com/landlordos/property-service/internal/mail"
	"github.com/landlordos/property-service/internal/monitoring"
	"github.com/landlordos/property-service/internal/storage"
	"github.com/landlordos/property-service/internal/tracing"
	"github.com/landlordos/property-service/pkg/authentication"
	"github.com/landlordos/property-service/pkg/billing"
	"github.com/landlordos/property-service/pkg/gatekeeper"
	"github.com/landlordos/property-service/pkg/maintenance"
	"github.com/landlordos/property-service/pkg/metrics"
	"github.com/landlordos/property-service/pkg/payments"
	"github.com/landlordos/property-service/pkg/properties"
	"github.com/landlordos/property-service/pkg/status"
	"github.com/landlordos/property-service/pkg/tenants"
	"github.com/landlordos/property-service/pkg/units"
)

// csrfExemptPaths are authenticated by other means (webhook signature)
// or precede a session the token could bind to.
var csrfExemptPaths = []string{
	"/api/billing/webhook",
	"/api/auth/signup",
	"/api/auth/login",
	"/api/auth/forgot-password",
	"/api/auth/reset-password",
}

func NewRouter(
	s storage.StorageInterface,
	dbClient db.DBClientInterface,
	mailer mail.MailerInterface,
	sessions *authentication.SessionManager,
	provider billing.PaymentProviderInterface,
	webhookVerifier billing.WebhookVerifierInterface,
	prices billing.PriceTable,
	counters gatekeeper.CounterStore,
	secureCookies bool,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) http.Handler {
	router := chi.NewMux()

	rateLimiter := gatekeeper.NewRateLimiter(counters, logger)
	csrf := gatekeeper.NewCSRF(secureCookies, logger, csrfExemptPaths...)

	router.Use(
		middleware.RequestID,
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
		middlewareCORS([]string{"*"}),
		csrf.Protect,
	)

	authService := authentication.NewService(s, mailer, tracer, monitor, logger)
	authAPI := authentication.NewAPI(authService, sessions, logger)
	authMiddleware := authentication.NewMiddleware(sessions, tracer, monitor, logger)

	billingService := billing.NewService(s, provider, prices, tracer, monitor, logger)
	billingAPI := billing.NewAPI(billingService, webhookVerifier, logger)

	metrics.NewAPI(logger).RegisterEndpoints(router)
	status.NewAPI(tracer, monitor, logger).RegisterEndpoints(router)

	// Credential endpoints carry the tight brute-force budget and no
	// session requirement.
	router.Group(func(r chi.Router) {
		r.Use(
			rateLimiter.Limit("auth", gatekeeper.AuthLimit),
			db.TransactionMiddleware(dbClient, logger),
		)
		authAPI.RegisterEndpoints(r)
	})

	// The billing provider authenticates by signature, not session, and
	// must not be throttled by client IP budgets.
	router.Group(func(r chi.Router) {
		r.Use(db.TransactionMiddleware(dbClient, logger))
		billingAPI.RegisterWebhook(r)
	})

	router.Group(func(r chi.Router) {
		r.Use(
			rateLimiter.Limit("api", gatekeeper.APILimit),
			authMiddleware.Authenticate(),
			db.TransactionMiddleware(dbClient, logger),
		)

		properties.NewAPI(properties.NewService(s, tracer, monitor, logger), logger).RegisterEndpoints(r)
		units.NewAPI(units.NewService(s, tracer, monitor, logger), logger).RegisterEndpoints(r)
		tenants.NewAPI(tenants.NewService(s, tracer, monitor, logger), logger).RegisterEndpoints(r)
		payments.NewAPI(payments.NewService(s, tracer, monitor, logger), logger).RegisterEndpoints(r)
		maintenance.NewAPI(maintenance.NewService(s, tracer, monitor, logger), logger).RegisterEndpoints(r)
		billingAPI.RegisterEndpoints(r)
	})

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router)
}

func middlewareCORS(origins []string) func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", gatekeeper.CSRFHeaderName},
		AllowCredentials: true,
		MaxAge:           300,
	})
}
