// Copyright 2026 LandlordOS Ltd
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/landlordos/property-service/internal/types"
)

var userColumns = []string{
	"id", "email", "password_hash", "name", "email_verified",
	"stripe_customer_id", "subscription_status", "subscription_tier",
	"subscription_period_end", "created_at", "updated_at",
}

func scanUser(row sq.RowScanner) (*types.User, error) {
	var u types.User
	err := row.Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.EmailVerified,
		&u.StripeCustomerID, &u.SubscriptionStatus, &u.SubscriptionTier,
		&u.SubscriptionPeriodEnd, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (s *Storage) CreateUser(ctx context.Context, u *types.User) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateUser")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate user ID: %w", err)
	}

	row := s.db.Statement(ctx).
		Insert("users").
		Columns("id", "email", "password_hash", "name", "subscription_status", "subscription_tier").
		Values(id.String(), u.Email, u.PasswordHash, u.Name, u.SubscriptionStatus, u.SubscriptionTier).
		Suffix("RETURNING " + joinColumns(userColumns)).
		QueryRowContext(ctx)

	newUser, err := scanUser(row)
	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		return nil, fmt.Errorf("failed to insert user: %w", err)
	}

	return newUser, nil
}

func (s *Storage) GetUserByID(ctx context.Context, id string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetUserByID")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(userColumns...).
		From("users").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx)

	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return u, nil
}

func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetUserByEmail")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(userColumns...).
		From("users").
		Where(sq.Eq{"email": email}).
		QueryRowContext(ctx)

	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return u, nil
}

func (s *Storage) GetUserByStripeCustomerID(ctx context.Context, customerID string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetUserByStripeCustomerID")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(userColumns...).
		From("users").
		Where(sq.Eq{"stripe_customer_id": customerID}).
		QueryRowContext(ctx)

	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by customer ID: %w", err)
	}

	return u, nil
}

// SetStripeCustomerID persists the billing customer reference only when
// none is stored yet, so the first write wins and retries are no-ops.
func (s *Storage) SetStripeCustomerID(ctx context.Context, userID, customerID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.SetStripeCustomerID")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Update("users").
		Set("stripe_customer_id", customerID).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": userID}).
		Where("stripe_customer_id IS NULL").
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to set stripe customer ID: %w", err)
	}
	return nil
}

func (s *Storage) UpdateUserSubscription(ctx context.Context, userID, customerID, tier, status string, periodEnd *time.Time) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateUserSubscription")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("users").
		Set("stripe_customer_id", customerID).
		Set("subscription_tier", tier).
		Set("subscription_status", status).
		Set("subscription_period_end", periodEnd).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": userID}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to update subscription: %w", err)
	}

	return requireRowsAffected(res)
}

func (s *Storage) SetSubscriptionStatus(ctx context.Context, userID, status string) error {
	ctx, span := s.tracer.Start(ctx, "storage.SetSubscriptionStatus")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("users").
		Set("subscription_status", status).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": userID}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to set subscription status: %w", err)
	}

	return requireRowsAffected(res)
}

func (s *Storage) UpdateUserPassword(ctx context.Context, userID, passwordHash string) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateUserPassword")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("users").
		Set("password_hash", passwordHash).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": userID}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	return requireRowsAffected(res)
}
