// Copyright 2026 LandlordOS Ltd
// SPDX-License-Identifier: AGPL-3.0

package mail

import "context"

// MailerInterface sends transactional email. Failures are logged by
// callers and never block the triggering request.
type MailerInterface interface {
	SendWelcome(ctx context.Context, email, name string) error
	SendPasswordReset(ctx context.Context, email, resetToken string) error
}
