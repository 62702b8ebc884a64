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

var tenantColumns = []string{
	"id", "user_id", "unit_id", "name", "email", "phone", "lease_start",
	"lease_end", "status", "move_out_date", "notes", "created_at", "updated_at",
}

func scanTenant(row sq.RowScanner) (*types.Tenant, error) {
	var t types.Tenant
	err := row.Scan(
		&t.ID, &t.UserID, &t.UnitID, &t.Name, &t.Email, &t.Phone,
		&t.LeaseStart, &t.LeaseEnd, &t.Status, &t.MoveOutDate, &t.Notes,
		&t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

// CreateTenant inserts a tenant owned by t.UserID. The unit reference,
// when set, must already have been ownership-checked by the caller.
func (s *Storage) CreateTenant(ctx context.Context, t *types.Tenant) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateTenant")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate tenant ID: %w", err)
	}

	row := s.db.Statement(ctx).
		Insert("tenants").
		Columns("id", "user_id", "unit_id", "name", "email", "phone", "lease_start", "lease_end", "status", "move_out_date", "notes").
		Values(id.String(), t.UserID, t.UnitID, t.Name, t.Email, t.Phone, t.LeaseStart, t.LeaseEnd, t.Status, t.MoveOutDate, t.Notes).
		Suffix("RETURNING " + joinColumns(tenantColumns)).
		QueryRowContext(ctx)

	created, err := scanTenant(row)
	if err != nil {
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to insert tenant: %w", err)
	}

	return created, nil
}

func (s *Storage) GetTenantByID(ctx context.Context, id, userID string) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetTenantByID")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(tenantColumns...).
		From("tenants").
		Where(sq.Eq{"id": id, "user_id": userID}).
		QueryRowContext(ctx)

	t, err := scanTenant(row)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get tenant: %w", err)
	}

	return t, nil
}

func (s *Storage) ListTenantsByUserID(ctx context.Context, userID string) ([]*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListTenantsByUserID")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(tenantColumns...).
		From("tenants").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at ASC").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tenants: %w", err)
	}
	defer rows.Close()

	var tenants []*types.Tenant
	for rows.Next() {
		t, err := scanTenant(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan tenant: %w", err)
		}
		tenants = append(tenants, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tenant rows: %w", err)
	}

	return tenants, nil
}

func (s *Storage) UpdateTenant(ctx context.Context, t *types.Tenant, paths []string) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateTenant")
	defer span.End()

	if len(paths) == 0 {
		return nil
	}

	updateMap := map[string]interface{}{
		"updated_at": time.Now().UTC(),
	}
	for _, path := range paths {
		switch path {
		case "unit_id":
			updateMap["unit_id"] = t.UnitID
		case "name":
			updateMap["name"] = t.Name
		case "email":
			updateMap["email"] = t.Email
		case "phone":
			updateMap["phone"] = t.Phone
		case "lease_start":
			updateMap["lease_start"] = t.LeaseStart
		case "lease_end":
			updateMap["lease_end"] = t.LeaseEnd
		case "status":
			updateMap["status"] = t.Status
		case "move_out_date":
			updateMap["move_out_date"] = t.MoveOutDate
		case "notes":
			updateMap["notes"] = t.Notes
		}
	}

	res, err := s.db.Statement(ctx).
		Update("tenants").
		SetMap(updateMap).
		Where(sq.Eq{"id": t.ID, "user_id": t.UserID}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to update tenant: %w", err)
	}

	return requireRowsAffected(res)
}

func (s *Storage) DeleteTenant(ctx context.Context, id, userID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteTenant")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("tenants").
		Where(sq.Eq{"id": id, "user_id": userID}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete tenant: %w", err)
	}

	return requireRowsAffected(res)
}
