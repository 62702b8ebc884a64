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

	"github.com/landlordos/property-service/internal/db"
	"github.com/landlordos/property-service/internal/types"
)

var propertyColumns = []string{
	"id", "user_id", "name", "address", "notes", "created_at", "updated_at",
}

func scanProperty(row sq.RowScanner) (*types.Property, error) {
	var p types.Property
	err := row.Scan(&p.ID, &p.UserID, &p.Name, &p.Address, &p.Notes, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (s *Storage) CreateProperty(ctx context.Context, p *types.Property) (*types.Property, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateProperty")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate property ID: %w", err)
	}

	row := s.db.Statement(ctx).
		Insert("properties").
		Columns("id", "user_id", "name", "address", "notes").
		Values(id.String(), p.UserID, p.Name, p.Address, p.Notes).
		Suffix("RETURNING " + joinColumns(propertyColumns)).
		QueryRowContext(ctx)

	created, err := scanProperty(row)
	if err != nil {
		return nil, fmt.Errorf("failed to insert property: %w", err)
	}

	return created, nil
}

func (s *Storage) GetPropertyByID(ctx context.Context, id, userID string) (*types.Property, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetPropertyByID")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(propertyColumns...).
		From("properties").
		Where(sq.Eq{"id": id, "user_id": userID}).
		QueryRowContext(ctx)

	p, err := scanProperty(row)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get property: %w", err)
	}

	return p, nil
}

func (s *Storage) ListPropertiesByUserID(ctx context.Context, userID string, page, size uint64) ([]*types.Property, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListPropertiesByUserID")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(propertyColumns...).
		From("properties").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at ASC").
		Limit(size).
		Offset(db.Offset(int64(page), size)).
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list properties: %w", err)
	}
	defer rows.Close()

	var properties []*types.Property
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan property: %w", err)
		}
		properties = append(properties, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating property rows: %w", err)
	}

	return properties, nil
}

func (s *Storage) CountPropertiesByUserID(ctx context.Context, userID string) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CountPropertiesByUserID")
	defer span.End()

	var count int64
	err := s.db.Statement(ctx).
		Select("COUNT(*)").
		From("properties").
		Where(sq.Eq{"user_id": userID}).
		QueryRowContext(ctx).
		Scan(&count)

	if err != nil {
		return 0, fmt.Errorf("failed to count properties: %w", err)
	}

	return count, nil
}

// UpdateProperty applies only the fields named in paths, always
// refreshing updated_at. The owner is part of the WHERE clause so a
// non-owner update reports ErrNotFound.
func (s *Storage) UpdateProperty(ctx context.Context, p *types.Property, paths []string) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateProperty")
	defer span.End()

	if len(paths) == 0 {
		return nil
	}

	updateMap := map[string]interface{}{
		"updated_at": time.Now().UTC(),
	}
	for _, path := range paths {
		switch path {
		case "name":
			updateMap["name"] = p.Name
		case "address":
			updateMap["address"] = p.Address
		case "notes":
			updateMap["notes"] = p.Notes
		}
	}

	res, err := s.db.Statement(ctx).
		Update("properties").
		SetMap(updateMap).
		Where(sq.Eq{"id": p.ID, "user_id": p.UserID}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to update property: %w", err)
	}

	return requireRowsAffected(res)
}

func (s *Storage) DeleteProperty(ctx context.Context, id, userID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteProperty")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("properties").
		Where(sq.Eq{"id": id, "user_id": userID}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete property: %w", err)
	}

	return requireRowsAffected(res)
}
