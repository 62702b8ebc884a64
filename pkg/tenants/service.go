// Copyright 2026 LandlordOS Ltd
// SPDX-License-Identifier: AGPL-3.0

package tenants

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

// ErrUnitNotFound means the referenced unit does not exist or belongs
// to someone else. Both cases look identical to the caller.
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

// CreateTenant binds the tenant to the caller. A unit assignment is
// optional, tenants without one remain reachable through their owner.
func (s *Service) CreateTenant(ctx context.Context, userID string, t *types.Tenant) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "tenants.Service.CreateTenant")
	defer span.End()

	if t.UnitID != nil {
		if _, err := s.storage.GetUnitByID(ctx, *t.UnitID, userID); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return nil, ErrUnitNotFound
			}
			return nil, fmt.Errorf("failed to verify unit: %w", err)
		}
	}

	if t.Status == "" {
		t.Status = types.TenantStatusActive
	}

	t.UserID = userID
	return s.storage.CreateTenant(ctx, t)
}

func (s *Service) GetTenant(ctx context.Context, id, userID string) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "tenants.Service.GetTenant")
	defer span.End()

	return s.storage.GetTenantByID(ctx, id, userID)
}

func (s *Service) ListTenants(ctx context.Context, userID string) ([]*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "tenants.Service.ListTenants")
	defer span.End()

	return s.storage.ListTenantsByUserID(ctx, userID)
}

func (s *Service) UpdateTenant(ctx context.Context, userID string, t *types.Tenant, paths []string) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "tenants.Service.UpdateTenant")
	defer span.End()

	for _, path := range paths {
		if path == "unit_id" && t.UnitID != nil {
			if _, err := s.storage.GetUnitByID(ctx, *t.UnitID, userID); err != nil {
				if errors.Is(err, storage.ErrNotFound) {
					return nil, ErrUnitNotFound
				}
				return nil, fmt.Errorf("failed to verify unit: %w", err)
			}
		}
	}

	t.UserID = userID
	if err := s.storage.UpdateTenant(ctx, t, paths); err != nil {
		return nil, err
	}

	return s.storage.GetTenantByID(ctx, t.ID, userID)
}

func (s *Service) DeleteTenant(ctx context.Context, id, userID string) error {
	ctx, span := s.tracer.Start(ctx, "tenants.Service.DeleteTenant")
	defer span.End()

	return s.storage.DeleteTenant(ctx, id, userID)
}
