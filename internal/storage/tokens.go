// Copyright 2026 LandlordOS Ltd
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/landlordos/property-service/internal/types"
)

func (s *Storage) CreatePasswordResetToken(ctx context.Context, t *types.PasswordResetToken) error {
	ctx, span := s.tracer.Start(ctx, "storage.CreatePasswordResetToken")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Errorf("failed to generate token ID: %w", err)
	}

	_, err = s.db.Statement(ctx).
		Insert("password_reset_tokens").
		Columns("id", "user_id", "token", "expires_at").
		Values(id.String(), t.UserID, t.Token, t.ExpiresAt).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to insert password reset token: %w", err)
	}
	return nil
}

func (s *Storage) GetPasswordResetToken(ctx context.Context, token string) (*types.PasswordResetToken, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetPasswordResetToken")
	defer span.End()

	var t types.PasswordResetToken
	err := s.db.Statement(ctx).
		Select("id", "user_id", "token", "expires_at", "used", "created_at").
		From("password_reset_tokens").
		Where(sq.Eq{"token": token}).
		QueryRowContext(ctx).
		Scan(&t.ID, &t.UserID, &t.Token, &t.ExpiresAt, &t.Used, &t.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get password reset token: %w", err)
	}

	return &t, nil
}

func (s *Storage) MarkPasswordResetTokenUsed(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.MarkPasswordResetTokenUsed")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("password_reset_tokens").
		Set("used", true).
		Where(sq.Eq{"id": id, "used": false}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to mark token used: %w", err)
	}

	return requireRowsAffected(res)
}
