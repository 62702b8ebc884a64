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

	"github.com/landlordos/property-service/internal/db"
	"github.com/landlordos/property-service/internal/types"
)

var paymentColumns = []string{
	"id", "tenant_id", "amount", "payment_date", "payment_method", "notes", "created_at",
}

func scanPayment(row sq.RowScanner) (*types.Payment, error) {
	var p types.Payment
	err := row.Scan(&p.ID, &p.TenantID, &p.Amount, &p.PaymentDate, &p.PaymentMethod, &p.Notes, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// CreatePayment inserts a payment. The parent tenant must already have
// been ownership-checked by the caller.
func (s *Storage) CreatePayment(ctx context.Context, p *types.Payment) (*types.Payment, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreatePayment")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate payment ID: %w", err)
	}

	row := s.db.Statement(ctx).
		Insert("payments").
		Columns("id", "tenant_id", "amount", "payment_date", "payment_method", "notes").
		Values(id.String(), p.TenantID, p.Amount, p.PaymentDate, p.PaymentMethod, p.Notes).
		Suffix("RETURNING " + joinColumns(paymentColumns)).
		QueryRowContext(ctx)

	created, err := scanPayment(row)
	if err != nil {
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to insert payment: %w", err)
	}

	return created, nil
}

func (s *Storage) GetPaymentByID(ctx context.Context, id, userID string) (*types.Payment, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetPaymentByID")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(prefixColumns("pay", paymentColumns)...).
		From("payments pay").
		Join("tenants t ON pay.tenant_id = t.id").
		Where(sq.Eq{"pay.id": id, "t.user_id": userID}).
		QueryRowContext(ctx)

	p, err := scanPayment(row)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}

	return p, nil
}

func (s *Storage) ListPaymentsByUserID(ctx context.Context, userID string, page, size uint64) ([]*types.Payment, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListPaymentsByUserID")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(prefixColumns("pay", paymentColumns)...).
		From("payments pay").
		Join("tenants t ON pay.tenant_id = t.id").
		Where(sq.Eq{"t.user_id": userID}).
		OrderBy("pay.payment_date DESC").
		Limit(size).
		Offset(db.Offset(int64(page), size)).
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	defer rows.Close()

	var payments []*types.Payment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payment: %w", err)
		}
		payments = append(payments, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating payment rows: %w", err)
	}

	return payments, nil
}

func (s *Storage) UpdatePayment(ctx context.Context, p *types.Payment, userID string, paths []string) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdatePayment")
	defer span.End()

	if len(paths) == 0 {
		return nil
	}

	updateMap := make(map[string]interface{})
	for _, path := range paths {
		switch path {
		case "amount":
			updateMap["amount"] = p.Amount
		case "payment_date":
			updateMap["payment_date"] = p.PaymentDate
		case "payment_method":
			updateMap["payment_method"] = p.PaymentMethod
		case "notes":
			updateMap["notes"] = p.Notes
		}
	}

	if len(updateMap) == 0 {
		return nil
	}

	res, err := s.db.Statement(ctx).
		Update("payments").
		SetMap(updateMap).
		Where(sq.Eq{"id": p.ID}).
		Where("tenant_id IN (SELECT id FROM tenants WHERE user_id = ?)", userID).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to update payment: %w", err)
	}

	return requireRowsAffected(res)
}

func (s *Storage) DeletePayment(ctx context.Context, id, userID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeletePayment")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("payments").
		Where(sq.Eq{"id": id}).
		Where("tenant_id IN (SELECT id FROM tenants WHERE user_id = ?)", userID).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete payment: %w", err)
	}

	return requireRowsAffected(res)
}
