// Copyright 2026 LandlordOS Ltd
// SPDX-License-Identifier: AGPL-3.0

package units

import (
	"context"
	"errors"
	"fmt"

	"github.com/landlordos/property-service/internal/logging"
	"github.com/landlordos/property-service/internal/monitoring"
	"github.com/landlordos/property-service/internal/storage"
	"github.com/landlordos/property-service/internal/tracing"
	"github.com/landlordos/property-service/internal/types"
)

var (
	// ErrPropertyNotFound means the parent property does not exist or
	// belongs to someone else. Both cases look identical to the caller.
	ErrPropertyNotFound = errors.New("property not found")
	ErrNegativeRent     = errors.New("rent amount must not be negative")
)

type Service struct {
	storage StorageInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage: storage,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (s *Service) CreateUnit(ctx context.Context, userID string, u *types.Unit) (*types.Unit, error) {
	ctx, span := s.tracer.Start(ctx, "units.Service.CreateUnit")
	defer span.End()

	if u.RentAmount.IsNegative() {
		return nil, ErrNegativeRent
	}

	if _, err := s.storage.GetPropertyByID(ctx, u.PropertyID, userID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrPropertyNotFound
		}
		return nil, fmt.Errorf("failed to verify property: %w", err)
	}

	if u.Status == "" {
		u.Status = types.UnitStatusVacant
	}

	return s.storage.CreateUnit(ctx, u)
}

func (s *Service) GetUnit(ctx context.Context, id, userID string) (*types.Unit, error) {
	ctx, span := s.tracer.Start(ctx, "units.Service.GetUnit")
	defer span.End()

	return s.storage.GetUnitByID(ctx, id, userID)
}

// ListUnits returns all units the user owns, optionally narrowed to one
// property.
func (s *Service) ListUnits(ctx context.Context, userID string, propertyID *string) ([]*types.Unit, error) {
	ctx, span := s.tracer.Start(ctx, "units.Service.ListUnits")
	defer span.End()

	return s.storage.ListUnitsByUserID(ctx, userID, propertyID)
}

func (s *Service) UpdateUnit(ctx context.Context, userID string, u *types.Unit, paths []string) (*types.Unit, error) {
	ctx, span := s.tracer.Start(ctx, "units.Service.UpdateUnit")
	defer span.End()

	for _, path := range paths {
		if path == "rent_amount" && u.RentAmount.IsNegative() {
			return nil, ErrNegativeRent
		}
	}

	if err := s.storage.UpdateUnit(ctx, u, userID, paths); err != nil {
		return nil, err
	}

	return s.storage.GetUnitByID(ctx, u.ID, userID)
}

func (s *Service) DeleteUnit(ctx context.Context, id, userID string) error {
	ctx, span := s.tracer.Start(ctx, "units.Service.DeleteUnit")
	defer span.End()

	return s.storage.DeleteUnit(ctx, id, userID)
}
