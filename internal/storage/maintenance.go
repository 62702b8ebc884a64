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

var maintenanceColumns = []string{
	"id", "unit_id", "title", "description", "status", "priority",
	"resolution_notes", "created_at", "updated_at", "resolved_at",
}

// ownedUnitFilter scopes maintenance rows to units reachable from the
// caller's properties.
const ownedUnitFilter = "unit_id IN (SELECT u.id FROM units u JOIN properties p ON u.property_id = p.id WHERE p.user_id = ?)"

func scanMaintenanceRequest(row sq.RowScanner) (*types.MaintenanceRequest, error) {
	var m types.MaintenanceRequest
	err := row.Scan(
		&m.ID, &m.UnitID, &m.Title, &m.Description, &m.Status, &m.Priority,
		&m.ResolutionNotes, &m.CreatedAt, &m.UpdatedAt, &m.ResolvedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

func (s *Storage) CreateMaintenanceRequest(ctx context.Context, m *types.MaintenanceRequest) (*types.MaintenanceRequest, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateMaintenanceRequest")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate maintenance request ID: %w", err)
	}

	row := s.db.Statement(ctx).
		Insert("maintenance_requests").
		Columns("id", "unit_id", "title", "description", "status", "priority").
		Values(id.String(), m.UnitID, m.Title, m.Description, m.Status, m.Priority).
		Suffix("RETURNING " + joinColumns(maintenanceColumns)).
		QueryRowContext(ctx)

	created, err := scanMaintenanceRequest(row)
	if err != nil {
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to insert maintenance request: %w", err)
	}

	return created, nil
}

func (s *Storage) GetMaintenanceRequestByID(ctx context.Context, id, userID string) (*types.MaintenanceRequest, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetMaintenanceRequestByID")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(prefixColumns("m", maintenanceColumns)...).
		From("maintenance_requests m").
		Join("units u ON m.unit_id = u.id").
		Join("properties p ON u.property_id = p.id").
		Where(sq.Eq{"m.id": id, "p.user_id": userID}).
		QueryRowContext(ctx)

	m, err := scanMaintenanceRequest(row)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get maintenance request: %w", err)
	}

	return m, nil
}

func (s *Storage) ListMaintenanceRequestsByUserID(ctx context.Context, userID string) ([]*types.MaintenanceRequest, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListMaintenanceRequestsByUserID")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(prefixColumns("m", maintenanceColumns)...).
		From("maintenance_requests m").
		Join("units u ON m.unit_id = u.id").
		Join("properties p ON u.property_id = p.id").
		Where(sq.Eq{"p.user_id": userID}).
		OrderBy("m.created_at DESC").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list maintenance requests: %w", err)
	}
	defer rows.Close()

	var requests []*types.MaintenanceRequest
	for rows.Next() {
		m, err := scanMaintenanceRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan maintenance request: %w", err)
		}
		requests = append(requests, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating maintenance request rows: %w", err)
	}

	return requests, nil
}

// UpdateMaintenanceRequest applies the fields in paths. Transitioning
// status to resolved stamps resolved_at in the same statement.
func (s *Storage) UpdateMaintenanceRequest(ctx context.Context, m *types.MaintenanceRequest, userID string, paths []string) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateMaintenanceRequest")
	defer span.End()

	if len(paths) == 0 {
		return nil
	}

	now := time.Now().UTC()
	updateMap := map[string]interface{}{
		"updated_at": now,
	}
	for _, path := range paths {
		switch path {
		case "title":
			updateMap["title"] = m.Title
		case "description":
			updateMap["description"] = m.Description
		case "status":
			updateMap["status"] = m.Status
			if m.Status == types.MaintenanceStatusResolved {
				updateMap["resolved_at"] = now
			}
		case "priority":
			updateMap["priority"] = m.Priority
		case "resolution_notes":
			updateMap["resolution_notes"] = m.ResolutionNotes
		}
	}

	res, err := s.db.Statement(ctx).
		Update("maintenance_requests").
		SetMap(updateMap).
		Where(sq.Eq{"id": m.ID}).
		Where(ownedUnitFilter, userID).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to update maintenance request: %w", err)
	}

	return requireRowsAffected(res)
}

func (s *Storage) DeleteMaintenanceRequest(ctx context.Context, id, userID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteMaintenanceRequest")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("maintenance_requests").
		Where(sq.Eq{"id": id}).
		Where(ownedUnitFilter, userID).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete maintenance request: %w", err)
	}

	return requireRowsAffected(res)
}
