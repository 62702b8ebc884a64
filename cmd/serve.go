// Copyright 2026 LandlordOS Ltd
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/landlordos/property-service/internal/config"
	"github.com/landlordos/property-service/internal/db"
	"github.com/landlordos/property-service/internal/logging"
	"github.com/landlordos/property-service/internal/mail"
	"github.com/landlordos/property-service/internal/monitoring/prometheus"
	"github.com/landlordos/property-service/internal/storage"
	"github.com/landlordos/property-service/internal/tracing"
	"github.com/landlordos/property-service/pkg/authentication"
	"github.com/landlordos/property-service/pkg/billing"
	"github.com/landlordos/property-service/pkg/gatekeeper"
	"github.com/landlordos/property-service/pkg/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serve starts the web server",
	Long:  `Launch the web application, list of environment variables is available in the readme`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve() error {
	specs := new(config.EnvSpec)
	if err := envconfig.Process("", specs); err != nil {
		return fmt.Errorf("issues with environment sourcing: %w", err)
	}

	logger := logging.NewLogger(specs.LogLevel)
	defer logger.Sync()

	monitor := prometheus.NewMonitor("property-service", logger)
	tracer := tracing.NewTracer(tracing.NewConfig(specs.TracingEnabled, specs.OtelGRPCEndpoint, specs.OtelHTTPEndpoint, logger))

	dbConfig := db.Config{
		DSN:             specs.DSN,
		MaxConns:        specs.DBMaxConns,
		MinConns:        specs.DBMinConns,
		MaxConnLifetime: specs.DBMaxConnLifetime,
		MaxConnIdleTime: specs.DBMaxConnIdleTime,
		TracingEnabled:  specs.TracingEnabled,
	}
	dbClient, err := db.NewDBClient(dbConfig, tracer, monitor, logger)
	if err != nil {
		return fmt.Errorf("failed to create database client: %w", err)
	}
	defer dbClient.Close()
	s := storage.NewStorage(dbClient, tracer, monitor, logger)

	var mailer mail.MailerInterface
	if specs.ResendAPIKey != "" {
		mailer = mail.NewMailer(specs.ResendAPIKey, specs.MailFrom, specs.BaseURL, tracer, monitor, logger)
		logger.Info("Transactional email via Resend is enabled")
	} else {
		mailer = mail.NewNoopMailer(logger)
		logger.Info("Using noop mailer, outbound email is logged only")
	}

	sessions := authentication.NewSessionManager(specs.SessionSecret, specs.SessionLifetime, specs.SecureCookies)

	provider := billing.NewStripeProvider(specs.StripeSecretKey, specs.BaseURL, tracer)
	verifier := billing.NewStripeWebhookVerifier(specs.StripeWebhookSecret)
	prices := billing.PriceTable{
		Starter: specs.StripePriceStarter,
		Pro:     specs.StripePricePro,
	}

	var counters gatekeeper.CounterStore
	if specs.RedisURL != "" {
		opts, err := redis.ParseURL(specs.RedisURL)
		if err != nil {
			return fmt.Errorf("invalid redis URL: %w", err)
		}
		counters = gatekeeper.NewRedisCounterStore(redis.NewClient(opts))
		logger.Info("Rate limit counters are shared via redis")
	} else {
		counters = gatekeeper.NewMemoryCounterStore()
	}

	router := web.NewRouter(
		s,
		dbClient,
		mailer,
		sessions,
		provider,
		verifier,
		prices,
		counters,
		specs.SecureCookies,
		tracer,
		monitor,
		logger,
	)
	logger.Infof("Starting HTTP server on port %v", specs.Port)

	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%v", specs.Port),
		WriteTimeout: time.Second * 60,
		ReadTimeout:  time.Second * 15,
		IdleTimeout:  time.Second * 60,
		Handler:      router,
	}

	var serverError error
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Security().SystemStartup()
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverError = fmt.Errorf("server error: %w", err)
			c <- os.Interrupt
		}
	}()

	<-c

	// Create a deadline to wait for.
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logger.Security().SystemShutdown()
	if err := srv.Shutdown(ctx); err != nil {
		serverError = fmt.Errorf("server shutdown error: %w", err)
	}

	return serverError
}
