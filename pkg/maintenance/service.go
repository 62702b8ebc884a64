// Copyright 2026 LandlordOS Ltd
// SPDX-License-Identifier: AGPL-3.0

package maintenance

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

// ErrUnitNotFound means the unit does not exist or belongs to someone
// else. Both cases look identical to the caller.
var ErrUnitNotFound = errors.New("unit not found")

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

func (s *Service) CreateRequest(ctx context.Context, userID string, m *types.MaintenanceRequest) (*types.MaintenanceRequest, error) {
	ctx, span := s.tracer.Start(ctx, "maintenance.Service.CreateRequest")
	defer span.End()

	if _, err := s.storage.GetUnitByID(ctx, m.UnitID, userID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrUnitNotFound
		}
		return nil, fmt.Errorf("failed to verify unit: %w", err)
	}

	if m.Status == "" {
		m.Status = types.MaintenanceStatusOpen
	}
	if m.Priority == "" {
		m.Priority = types.MaintenancePriorityMedium
	}

	return s.storage.CreateMaintenanceRequest(ctx, m)
}

func (s *Service) GetRequest(ctx context.Context, id, userID string) (*types.MaintenanceRequest, error) {
	ctx, span := s.tracer.Start(ctx, "maintenance.Service.GetRequest")
	defer span.End()

	return s.storage.GetMaintenanceRequestByID(ctx, id, userID)
}

// ListRequests returns the newest requests first.
func (s *Service) ListRequests(ctx context.Context, userID string) ([]*types.MaintenanceRequest, error) {
	ctx, span := s.tracer.Start(ctx, "maintenance.Service.ListRequests")
	defer span.End()

	return s.storage.ListMaintenanceRequestsByUserID(ctx, userID)
}

// UpdateRequest applies a partial update. Moving the status to resolved
// stamps the resolution time in the same statement.
func (s *Service) UpdateRequest(ctx context.Context, userID string, m *types.MaintenanceRequest, paths []string) (*types.MaintenanceRequest, error) {
	ctx, span := s.tracer.Start(ctx, "maintenance.Service.UpdateRequest")
	defer span.End()

	if err := s.storage.UpdateMaintenanceRequest(ctx, m, userID, paths); err != nil {
		return nil, err
	}

	return s.storage.GetMaintenanceRequestByID(ctx, m.ID, userID)
}

func (s *Service) DeleteRequest(ctx context.Context, id, userID string) error {
	ctx, span := s.tracer.Start(ctx, "maintenance.Service.DeleteRequest")
	defer span.End()

	return s.storage.DeleteMaintenanceRequest(ctx, id, userID)
}
