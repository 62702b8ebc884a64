// Copyright 2026 LandlordOS Ltd
// SPDX-License-Identifier: AGPL-3.0

package mail

import (
	"context"

	"github.com/landlordos/property-service/internal/logging"
)

var _ MailerInterface = (*NoopMailer)(nil)

// NoopMailer logs instead of sending, for local development without an
// API key.
type NoopMailer struct {
	logger logging.LoggerInterface
}

func NewNoopMailer(logger logging.LoggerInterface) *NoopMailer {
	return &NoopMailer{logger: logger}
}

func (m *NoopMailer) SendWelcome(ctx context.Context, email, name string) error {
	m.logger.Infof("noop mailer: welcome email for %s", email)
	return nil
}

func (m *NoopMailer) SendPasswordReset(ctx context.Context, email, resetToken string) error {
	m.logger.Infof("noop mailer: password reset email for %s", email)
	return nil
}
