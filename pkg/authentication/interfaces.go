// Copyright 2026 LandlordOS Ltd
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"

	"github.com/landlordos/property-service/internal/types"
)

type TokenVerifierInterface interface {
	// VerifyToken verifies a raw session token.
	// Returns the subject (user ID) if the token is valid, otherwise an error.
	VerifyToken(ctx context.Context, rawToken string) (string, error)
}

// SessionManagerInterface issues and verifies first-party session tokens.
type SessionManagerInterface interface {
	TokenVerifierInterface
	IssueToken(userID string) (string, error)
}

// ServiceInterface covers signup, login and the password reset flow.
type ServiceInterface interface {
	Signup(ctx context.Context, name, email, password string) (*types.User, error)
	Login(ctx context.Context, email, password string) (*types.User, error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
}

// StorageInterface is the subset of the storage layer the
// authentication package needs.
type StorageInterface interface {
	CreateUser(ctx context.Context, u *types.User) (*types.User, error)
	GetUserByEmail(ctx context.Context, email string) (*types.User, error)
	GetUserByID(ctx context.Context, id string) (*types.User, error)
	UpdateUserPassword(ctx context.Context, userID, passwordHash string) error
	CreatePasswordResetToken(ctx context.Context, t *types.PasswordResetToken) error
	GetPasswordResetToken(ctx context.Context, token string) (*types.PasswordResetToken, error)
	MarkPasswordResetTokenUsed(ctx context.Context, id string) error
}

// MailerInterface is the subset of the mail package used here.
type MailerInterface interface {
	SendWelcome(ctx context.Context, email, name string) error
	SendPasswordReset(ctx context.Context, email, resetToken string) error
}
