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

var unitColumns = []string{
	"id", "property_id", "unit_number", "rent_amount", "status", "created_at", "updated_at",
}

func scanUnit(row sq.RowScanner) (*types.Unit, error) {
	var u types.Unit
	err := row.Scan(&u.ID, &u.PropertyID, &u.UnitNumber, &u.RentAmount, &u.Status, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// CreateUnit inserts a unit. The caller must have already verified the
// parent property through GetPropertyByID.
func (s *Storage) CreateUnit(ctx context.Context, u *types.Unit) (*types.Unit, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateUnit")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate unit ID: %w", err)
	}

	row := s.db.Statement(ctx).
		Insert("units").
		Columns("id", "property_id", "unit_number", "rent_amount", "status").
		Values(id.String(), u.PropertyID, u.UnitNumber, u.RentAmount, u.Status).
		Suffix("RETURNING " + joinColumns(unitColumns)).
		QueryRowContext(ctx)

	created, err := scanUnit(row)
	if err != nil {
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to insert unit: %w", err)
	}

	return created, nil
}

func (s *Storage) GetUnitByID(ctx context.Context, id, userID string) (*types.Unit, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetUnitByID")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(prefixColumns("u", unitColumns)...).
		From("units u").
		Join("properties p ON u.property_id = p.id").
		Where(sq.Eq{"u.id": id, "p.user_id": userID}).
		QueryRowContext(ctx)

	u, err := scanUnit(row)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get unit: %w", err)
	}

	return u, nil
}

func (s *Storage) ListUnitsByUserID(ctx context.Context, userID string, propertyID *string) ([]*types.Unit, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListUnitsByUserID")
	defer span.End()

	query := s.db.Statement(ctx).
		Select(prefixColumns("u", unitColumns)...).
		From("units u").
		Join("properties p ON u.property_id = p.id").
		Where(sq.Eq{"p.user_id": userID}).
		OrderBy("u.created_at ASC")

	if propertyID != nil {
		query = query.Where(sq.Eq{"u.property_id": *propertyID})
	}

	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list units: %w", err)
	}
	defer rows.Close()

	var units []*types.Unit
	for rows.Next() {
		u, err := scanUnit(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan unit: %w", err)
		}
		units = append(units, u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating unit rows: %w", err)
	}

	return units, nil
}

func (s *Storage) UpdateUnit(ctx context.Context, u *types.Unit, userID string, paths []string) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateUnit")
	defer span.End()

	if len(paths) == 0 {
		return nil
	}

	updateMap := map[string]interface{}{
		"updated_at": time.Now().UTC(),
	}
	for _, path := range paths {
		switch path {
		case "unit_number":
			updateMap["unit_number"] = u.UnitNumber
		case "rent_amount":
			updateMap["rent_amount"] = u.RentAmount
		case "status":
			updateMap["status"] = u.Status
		}
	}

	res, err := s.db.Statement(ctx).
		Update("units").
		SetMap(updateMap).
		Where(sq.Eq{"id": u.ID}).
		Where("property_id IN (SELECT id FROM properties WHERE user_id = ?)", userID).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to update unit: %w", err)
	}

	return requireRowsAffected(res)
}

func (s *Storage) DeleteUnit(ctx context.Context, id, userID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteUnit")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("units").
		Where(sq.Eq{"id": id}).
		Where("property_id IN (SELECT id FROM properties WHERE user_id = ?)", userID).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete unit: %w", err)
	}

	return requireRowsAffected(res)
}
