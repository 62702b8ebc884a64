// Copyright 2026 LandlordOS Ltd
// SPDX-License-Identifier: AGPL-3.0

package properties

import (
	"context"
	"errors"
	"fmt"

	"github.com/landlordos/property-service/internal/db"
	"github.com/landlordos/property-service/internal/logging"
	"github.com/landlordos/property-service/internal/monitoring"
	"github.com/landlordos/property-service/internal/tracing"
	"github.com/landlordos/property-service/internal/types"
	"github.com/landlordos/property-service/pkg/billing"
)

// ErrPropertyLimitReached means the user's subscription tier does not
// allow another property.
var ErrPropertyLimitReached = errors.New("property limit reached for the current plan")

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

func (s *Service) CreateProperty(ctx context.Context, userID string, p *types.Property) (*types.Property, error) {
	ctx, span := s.tracer.Start(ctx, "properties.Service.CreateProperty")
	defer span.End()

	user, err := s.storage.GetUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}

	limit := billing.PropertyLimitForTier(user.SubscriptionTier)
	if limit != billing.PropertyLimitUnlimited {
		count, err := s.storage.CountPropertiesByUserID(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("failed to count properties: %w", err)
		}
		if count >= limit {
			return nil, ErrPropertyLimitReached
		}
	}

	p.UserID = userID
	return s.storage.CreateProperty(ctx, p)
}

func (s *Service) GetProperty(ctx context.Context, id, userID string) (*types.Property, error) {
	ctx, span := s.tracer.Start(ctx, "properties.Service.GetProperty")
	defer span.End()

	return s.storage.GetPropertyByID(ctx, id, userID)
}

// ListProperties returns one page plus the total count so callers can
// decide whether more pages exist.
func (s *Service) ListProperties(ctx context.Context, userID string, page, size int64) ([]*types.Property, int64, error) {
	ctx, span := s.tracer.Start(ctx, "properties.Service.ListProperties")
	defer span.End()

	pageSize := db.PageSize(size)
	offsetPage := page
	if offsetPage < 1 {
		offsetPage = 1
	}

	properties, err := s.storage.ListPropertiesByUserID(ctx, userID, uint64(offsetPage), pageSize)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.storage.CountPropertiesByUserID(ctx, userID)
	if err != nil {
		return nil, 0, err
	}

	return properties, total, nil
}

func (s *Service) UpdateProperty(ctx context.Context, userID string, p *types.Property, paths []string) (*types.Property, error) {
	ctx, span := s.tracer.Start(ctx, "properties.Service.UpdateProperty")
	defer span.End()

	p.UserID = userID
	if err := s.storage.UpdateProperty(ctx, p, paths); err != nil {
		return nil, err
	}

	return s.storage.GetPropertyByID(ctx, p.ID, userID)
}

func (s *Service) DeleteProperty(ctx context.Context, id, userID string) error {
	ctx, span := s.tracer.Start(ctx, "properties.Service.DeleteProperty")
	defer span.End()

	return s.storage.DeleteProperty(ctx, id, userID)
}
