// Copyright 2026 LandlordOS Ltd
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/landlordos/property-service/internal/logging"
	"github.com/landlordos/property-service/internal/monitoring"
	"github.com/landlordos/property-service/internal/storage"
	"github.com/landlordos/property-service/internal/tracing"
	"github.com/landlordos/property-service/internal/types"
)

const resetTokenLifetime = time.Hour

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("an account with this email already exists")
	ErrInvalidResetToken  = errors.New("reset token is invalid or has expired")
)

type Service struct {
	storage StorageInterface
	mailer  MailerInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	mailer MailerInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage: storage,
		mailer:  mailer,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (s *Service) Signup(ctx context.Context, name, email, password string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "authentication.Service.Signup")
	defer span.End()

	if err := ValidatePassword(password); err != nil {
		return nil, err
	}

	hash, err := HashPassword(password)
	if err != nil {
		s.logger.Errorf("failed to hash password: %v", err)
		return nil, fmt.Errorf("failed to create account")
	}

	user, err := s.storage.CreateUser(ctx, &types.User{
		Email:              email,
		Name:               name,
		PasswordHash:       hash,
		SubscriptionTier:   types.TierFree,
		SubscriptionStatus: types.SubscriptionStatusFree,
	})
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateKey) {
			return nil, ErrEmailTaken
		}
		s.logger.Errorf("failed to create user: %v", err)
		return nil, fmt.Errorf("failed to create account")
	}

	// Welcome mail is best effort, account creation does not wait on it.
	go func() {
		mailCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s.mailer.SendWelcome(mailCtx, user.Email, user.Name); err != nil {
			s.logger.Warnf("failed to send welcome mail to user %s: %v", user.ID, err)
		}
	}()

	s.logger.Security().AuthSuccess(user.ID)
	return user, nil
}

func (s *Service) Login(ctx context.Context, email, password string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "authentication.Service.Login")
	defer span.End()

	user, err := s.storage.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			// Burn a hash comparison so unknown emails cost the same as bad passwords.
			VerifyPassword("$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy", password)
			s.logger.Security().AuthFailure(email)
			return nil, ErrInvalidCredentials
		}
		s.logger.Errorf("failed to fetch user by email: %v", err)
		return nil, fmt.Errorf("failed to log in")
	}

	if !VerifyPassword(user.PasswordHash, password) {
		s.logger.Security().AuthFailure(email)
		return nil, ErrInvalidCredentials
	}

	s.logger.Security().AuthSuccess(user.ID)
	return user, nil
}

// ForgotPassword starts a reset flow. It reports success even when the
// email is unknown so callers cannot enumerate accounts.
func (s *Service) ForgotPassword(ctx context.Context, email string) error {
	ctx, span := s.tracer.Start(ctx, "authentication.Service.ForgotPassword")
	defer span.End()

	user, err := s.storage.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil
		}
		s.logger.Errorf("failed to fetch user by email: %v", err)
		return fmt.Errorf("failed to start password reset")
	}

	token, err := generateResetToken()
	if err != nil {
		s.logger.Errorf("failed to generate reset token: %v", err)
		return fmt.Errorf("failed to start password reset")
	}

	err = s.storage.CreatePasswordResetToken(ctx, &types.PasswordResetToken{
		ID:        uuid.Must(uuid.NewV7()).String(),
		UserID:    user.ID,
		Token:     token,
		ExpiresAt: time.Now().Add(resetTokenLifetime),
	})
	if err != nil {
		s.logger.Errorf("failed to store reset token: %v", err)
		return fmt.Errorf("failed to start password reset")
	}

	if err := s.mailer.SendPasswordReset(ctx, user.Email, token); err != nil {
		s.logger.Errorf("failed to send password reset mail to user %s: %v", user.ID, err)
		return fmt.Errorf("failed to start password reset")
	}

	return nil
}

func (s *Service) ResetPassword(ctx context.Context, token, newPassword string) error {
	ctx, span := s.tracer.Start(ctx, "authentication.Service.ResetPassword")
	defer span.End()

	if err := ValidatePassword(newPassword); err != nil {
		return err
	}

	prt, err := s.storage.GetPasswordResetToken(ctx, token)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrInvalidResetToken
		}
		s.logger.Errorf("failed to fetch reset token: %v", err)
		return fmt.Errorf("failed to reset password")
	}

	if prt.Used || time.Now().After(prt.ExpiresAt) {
		return ErrInvalidResetToken
	}

	hash, err := HashPassword(newPassword)
	if err != nil {
		s.logger.Errorf("failed to hash password: %v", err)
		return fmt.Errorf("failed to reset password")
	}

	if err := s.storage.UpdateUserPassword(ctx, prt.UserID, hash); err != nil {
		s.logger.Errorf("failed to update password for user %s: %v", prt.UserID, err)
		return fmt.Errorf("failed to reset password")
	}

	if err := s.storage.MarkPasswordResetTokenUsed(ctx, prt.ID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			// Token was consumed concurrently, the password change already won.
			return nil
		}
		s.logger.Errorf("failed to mark reset token used: %v", err)
		return fmt.Errorf("failed to reset password")
	}

	return nil
}

func generateResetToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
