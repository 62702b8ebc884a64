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

var invoiceColumns = []string{
	"id", "user_id", "stripe_invoice_id", "amount", "status", "invoice_url", "created_at",
}

func scanInvoice(row sq.RowScanner) (*types.Invoice, error) {
	var inv types.Invoice
	err := row.Scan(&inv.ID, &inv.UserID, &inv.StripeInvoiceID, &inv.Amount, &inv.Status, &inv.InvoiceURL, &inv.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &inv, nil
}

// CreateInvoice inserts an invoice. The unique index on
// stripe_invoice_id turns a replayed webhook into ErrDuplicateKey.
func (s *Storage) CreateInvoice(ctx context.Context, inv *types.Invoice) (*types.Invoice, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateInvoice")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate invoice ID: %w", err)
	}

	row := s.db.Statement(ctx).
		Insert("invoices").
		Columns("id", "user_id", "stripe_invoice_id", "amount", "status", "invoice_url").
		Values(id.String(), inv.UserID, inv.StripeInvoiceID, inv.Amount, inv.Status, inv.InvoiceURL).
		Suffix("RETURNING " + joinColumns(invoiceColumns)).
		QueryRowContext(ctx)

	created, err := scanInvoice(row)
	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		return nil, fmt.Errorf("failed to insert invoice: %w", err)
	}

	return created, nil
}

func (s *Storage) GetInvoiceByStripeID(ctx context.Context, stripeInvoiceID string) (*types.Invoice, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetInvoiceByStripeID")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(invoiceColumns...).
		From("invoices").
		Where(sq.Eq{"stripe_invoice_id": stripeInvoiceID}).
		QueryRowContext(ctx)

	inv, err := scanInvoice(row)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get invoice: %w", err)
	}

	return inv, nil
}

func (s *Storage) ListInvoicesByUserID(ctx context.Context, userID string) ([]*types.Invoice, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListInvoicesByUserID")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(invoiceColumns...).
		From("invoices").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}
	defer rows.Close()

	var invoices []*types.Invoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan invoice: %w", err)
		}
		invoices = append(invoices, inv)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating invoice rows: %w", err)
	}

	return invoices, nil
}
