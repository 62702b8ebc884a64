// Copyright 2026 LandlordOS Ltd
// SPDX-License-Identifier: AGPL-3.0

package mail

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"

	"github.com/landlordos/property-service/internal/logging"
	"github.com/landlordos/property-service/internal/monitoring"
	"github.com/landlordos/property-service/internal/tracing"
)

var _ MailerInterface = (*Mailer)(nil)

type Mailer struct {
	client  *resend.Client
	from    string
	baseURL string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewMailer(apiKey, from, baseURL string, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Mailer {
	m := new(Mailer)

	m.client = resend.NewClient(apiKey)
	m.from = from
	m.baseURL = baseURL

	m.tracer = tracer
	m.monitor = monitor
	m.logger = logger

	return m
}

func (m *Mailer) SendWelcome(ctx context.Context, email, name string) error {
	ctx, span := m.tracer.Start(ctx, "mail.Mailer.SendWelcome")
	defer span.End()

	_, err := m.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    m.from,
		To:      []string{email},
		Subject: "Welcome to LandlordOS!",
		Html: fmt.Sprintf(
			"<h1>Welcome to LandlordOS, %s!</h1>"+
				"<p>Your account has been created successfully. You can now start managing your properties.</p>"+
				"<p><a href=%q>Go to Dashboard</a></p>",
			name, m.baseURL+"/dashboard",
		),
	})
	if err != nil {
		return fmt.Errorf("failed to send welcome email: %w", err)
	}

	return nil
}

func (m *Mailer) SendPasswordReset(ctx context.Context, email, resetToken string) error {
	ctx, span := m.tracer.Start(ctx, "mail.Mailer.SendPasswordReset")
	defer span.End()

	resetURL := fmt.Sprintf("%s/reset-password/%s", m.baseURL, resetToken)

	_, err := m.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    m.from,
		To:      []string{email},
		Subject: "Reset your password",
		Html: fmt.Sprintf(
			"<h1>Reset Your Password</h1>"+
				"<p>You requested to reset your password. Click the link below to set a new password:</p>"+
				"<p><a href=%q>Reset Password</a></p>"+
				"<p>This link will expire in 1 hour. If you didn't request this, you can safely ignore this email.</p>",
			resetURL,
		),
	})
	if err != nil {
		return fmt.Errorf("failed to send password reset email: %w", err)
	}

	return nil
}
