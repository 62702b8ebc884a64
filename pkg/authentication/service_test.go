// Copyright 2026 LandlordOS Ltd
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/landlordos/property-service/internal/logging"
	"github.com/landlordos/property-service/internal/monitoring"
	"github.com/landlordos/property-service/internal/storage"
	"github.com/landlordos/property-service/internal/tracing"
	"github.com/landlordos/property-service/internal/types"
)

func newTestService(t *testing.T) (*Service, *MockStorageInterface, *MockMailerInterface) {
	ctrl := gomock.NewController(t)
	mockStorage := NewMockStorageInterface(ctrl)
	mockMailer := NewMockMailerInterface(ctrl)

	s := NewService(mockStorage, mockMailer, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())
	return s, mockStorage, mockMailer
}

func TestService_Signup(t *testing.T) {
	user := &types.User{ID: "user-123", Email: "owner@example.com", Name: "Owner"}

	t.Run("success", func(t *testing.T) {
		s, mockStorage, mockMailer := newTestService(t)

		mockStorage.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, u *types.User) (*types.User, error) {
				if u.PasswordHash == "Passw0rdOk" {
					return nil, errors.New("password stored in plaintext")
				}
				if u.SubscriptionTier != types.TierFree {
					return nil, errors.New("new accounts must start on the free tier")
				}
				return user, nil
			})

		mailSent := make(chan struct{})
		mockMailer.EXPECT().SendWelcome(gomock.Any(), user.Email, user.Name).DoAndReturn(
			func(context.Context, string, string) error {
				close(mailSent)
				return nil
			})

		got, err := s.Signup(context.Background(), "Owner", "owner@example.com", "Passw0rdOk")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != user.ID {
			t.Errorf("expected user %s, got %s", user.ID, got.ID)
		}

		select {
		case <-mailSent:
		case <-time.After(time.Second):
			t.Error("welcome mail was never sent")
		}
	})

	t.Run("weak password", func(t *testing.T) {
		s, _, _ := newTestService(t)

		_, err := s.Signup(context.Background(), "Owner", "owner@example.com", "short")
		if !errors.Is(err, ErrWeakPassword) {
			t.Errorf("expected ErrWeakPassword, got %v", err)
		}
	})

	t.Run("duplicate email", func(t *testing.T) {
		s, mockStorage, _ := newTestService(t)

		mockStorage.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(nil, storage.ErrDuplicateKey)

		_, err := s.Signup(context.Background(), "Owner", "owner@example.com", "Passw0rdOk")
		if !errors.Is(err, ErrEmailTaken) {
			t.Errorf("expected ErrEmailTaken, got %v", err)
		}
	})
}

func TestService_Login(t *testing.T) {
	hash, err := HashPassword("Passw0rdOk")
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	user := &types.User{ID: "user-123", Email: "owner@example.com", PasswordHash: hash}

	t.Run("success", func(t *testing.T) {
		s, mockStorage, _ := newTestService(t)

		mockStorage.EXPECT().GetUserByEmail(gomock.Any(), user.Email).Return(user, nil)

		got, err := s.Login(context.Background(), user.Email, "Passw0rdOk")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != user.ID {
			t.Errorf("expected user %s, got %s", user.ID, got.ID)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		s, mockStorage, _ := newTestService(t)

		mockStorage.EXPECT().GetUserByEmail(gomock.Any(), user.Email).Return(user, nil)

		_, err := s.Login(context.Background(), user.Email, "WrongPassw0rd")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("unknown email reports the same error", func(t *testing.T) {
		s, mockStorage, _ := newTestService(t)

		mockStorage.EXPECT().GetUserByEmail(gomock.Any(), "ghost@example.com").Return(nil, storage.ErrNotFound)

		_, err := s.Login(context.Background(), "ghost@example.com", "Passw0rdOk")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("expected ErrInvalidCredentials, got %v", err)
		}
	})
}

func TestService_ForgotPassword(t *testing.T) {
	user := &types.User{ID: "user-123", Email: "owner@example.com"}

	t.Run("success", func(t *testing.T) {
		s, mockStorage, mockMailer := newTestService(t)

		var issuedToken string
		mockStorage.EXPECT().GetUserByEmail(gomock.Any(), user.Email).Return(user, nil)
		mockStorage.EXPECT().CreatePasswordResetToken(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, prt *types.PasswordResetToken) error {
				if prt.UserID != user.ID {
					return errors.New("token bound to wrong user")
				}
				if !prt.ExpiresAt.After(time.Now()) {
					return errors.New("token already expired")
				}
				issuedToken = prt.Token
				return nil
			})
		mockMailer.EXPECT().SendPasswordReset(gomock.Any(), user.Email, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, token string) error {
				if token != issuedToken {
					return errors.New("mailed token differs from stored token")
				}
				return nil
			})

		if err := s.ForgotPassword(context.Background(), user.Email); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("unknown email is silently accepted", func(t *testing.T) {
		s, mockStorage, _ := newTestService(t)

		mockStorage.EXPECT().GetUserByEmail(gomock.Any(), "ghost@example.com").Return(nil, storage.ErrNotFound)

		if err := s.ForgotPassword(context.Background(), "ghost@example.com"); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})
}

func TestService_ResetPassword(t *testing.T) {
	validToken := &types.PasswordResetToken{
		ID:        "prt-1",
		UserID:    "user-123",
		Token:     "reset-token",
		ExpiresAt: time.Now().Add(30 * time.Minute),
	}

	t.Run("success", func(t *testing.T) {
		s, mockStorage, _ := newTestService(t)

		mockStorage.EXPECT().GetPasswordResetToken(gomock.Any(), "reset-token").Return(validToken, nil)
		mockStorage.EXPECT().UpdateUserPassword(gomock.Any(), "user-123", gomock.Any()).Return(nil)
		mockStorage.EXPECT().MarkPasswordResetTokenUsed(gomock.Any(), "prt-1").Return(nil)

		if err := s.ResetPassword(context.Background(), "reset-token", "N3wPassword"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("expired token", func(t *testing.T) {
		s, mockStorage, _ := newTestService(t)

		expired := *validToken
		expired.ExpiresAt = time.Now().Add(-time.Minute)
		mockStorage.EXPECT().GetPasswordResetToken(gomock.Any(), "reset-token").Return(&expired, nil)

		err := s.ResetPassword(context.Background(), "reset-token", "N3wPassword")
		if !errors.Is(err, ErrInvalidResetToken) {
			t.Errorf("expected ErrInvalidResetToken, got %v", err)
		}
	})

	t.Run("used token", func(t *testing.T) {
		s, mockStorage, _ := newTestService(t)

		used := *validToken
		used.Used = true
		mockStorage.EXPECT().GetPasswordResetToken(gomock.Any(), "reset-token").Return(&used, nil)

		err := s.ResetPassword(context.Background(), "reset-token", "N3wPassword")
		if !errors.Is(err, ErrInvalidResetToken) {
			t.Errorf("expected ErrInvalidResetToken, got %v", err)
		}
	})

	t.Run("unknown token", func(t *testing.T) {
		s, mockStorage, _ := newTestService(t)

		mockStorage.EXPECT().GetPasswordResetToken(gomock.Any(), "nope").Return(nil, storage.ErrNotFound)

		err := s.ResetPassword(context.Background(), "nope", "N3wPassword")
		if !errors.Is(err, ErrInvalidResetToken) {
			t.Errorf("expected ErrInvalidResetToken, got %v", err)
		}
	})

	t.Run("weak replacement password", func(t *testing.T) {
		s, _, _ := newTestService(t)

		err := s.ResetPassword(context.Background(), "reset-token", "short")
		if !errors.Is(err, ErrWeakPassword) {
			t.Errorf("expected ErrWeakPassword, got %v", err)
		}
	})
}
