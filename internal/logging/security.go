// Copyright 2026 LandlordOS Ltd
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"go.uber.org/zap"
)

var _ SecurityLoggerInterface = (*SecurityLogger)(nil)

// SecurityLogger emits audit events on a dedicated named logger so
// they can be routed independently of application logs.
type SecurityLogger struct {
	l *zap.Logger
}

func (s *SecurityLogger) SystemStartup() {
	s.l.Info("system startup", zap.String("event", "system.startup"))
}

func (s *SecurityLogger) SystemShutdown() {
	s.l.Info("system shutdown", zap.String("event", "system.shutdown"))
}

func (s *SecurityLogger) AuthSuccess(userID string) {
	s.l.Info("authentication succeeded", zap.String("event", "auth.success"), zap.String("user_id", userID))
}

func (s *SecurityLogger) AuthFailure(identifier string) {
	s.l.Warn("authentication failed", zap.String("event", "auth.failure"), zap.String("identifier", identifier))
}

func (s *SecurityLogger) RateLimited(identifier, route string) {
	s.l.Warn("rate limit exceeded", zap.String("event", "ratelimit.rejected"), zap.String("identifier", identifier), zap.String("route", route))
}

func (s *SecurityLogger) CsrfRejected(route string) {
	s.l.Warn("csrf token rejected", zap.String("event", "csrf.rejected"), zap.String("route", route))
}

func (s *SecurityLogger) WebhookSignatureRejected(remote string) {
	s.l.Warn("webhook signature rejected", zap.String("event", "webhook.signature_rejected"), zap.String("remote", remote))
}
