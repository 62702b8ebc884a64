// Copyright 2026 LandlordOS Ltd
// SPDX-License-Identifier: AGPL-3.0

package config

import (
	"time"
)

// EnvSpec is the basic environment configuration setup needed for the app to start
type EnvSpec struct {
	OtelGRPCEndpoint string `envconfig:"otel_grpc_endpoint"`
	OtelHTTPEndpoint string `envconfig:"otel_http_endpoint"`
	TracingEnabled   bool   `envconfig:"tracing_enabled" default:"true"`

	LogLevel string `envconfig:"log_level" default:"error"`
	Debug    bool   `envconfig:"debug" default:"false"`

	Port int `envconfig:"port" default:"8080"`

	BaseURL string `envconfig:"base_url" default:"http://localhost:8080"`

	DSN string `envconfig:"DSN" required:"true"`

	DBMaxConns        int32         `envconfig:"db_max_conns" default:"25"`
	DBMinConns        int32         `envconfig:"db_min_conns" default:"2"`
	DBMaxConnLifetime time.Duration `envconfig:"db_max_conn_lifetime" default:"1h"`
	DBMaxConnIdleTime time.Duration `envconfig:"db_max_conn_idle_time" default:"30m"`

	SessionSecret   string        `envconfig:"session_secret" required:"true"`
	SessionLifetime time.Duration `envconfig:"session_lifetime" default:"24h"`
	SecureCookies   bool          `envconfig:"secure_cookies" default:"false"`

	StripeSecretKey     string `envconfig:"stripe_secret_key"`
	StripeWebhookSecret string `envconfig:"stripe_webhook_secret"`
	StripePriceStarter  string `envconfig:"stripe_price_starter"`
	StripePricePro      string `envconfig:"stripe_price_pro"`

	ResendAPIKey string `envconfig:"resend_api_key"`
	MailFrom     string `envconfig:"mail_from" default:"LandlordOS <noreply@landlordos.com>"`

	// RedisURL enables the shared rate-limit counter store when set,
	// for horizontally scaled deployments. Empty keeps counters local
	// to the process.
	RedisURL string `envconfig:"redis_url"`
}
