// Copyright 2026 LandlordOS Ltd
// SPDX-License-Identifier: AGPL-3.0

package payments

import (
	"context"
	"errors"
	"fmt"

	"github.com/landlordos/property-service/internal/db"
	"github.com/landlordos/property-service/internal/logging"
	"github.com/landlordos/property-service/internal/monitoring"
	"github.com/landlordos/property-service/internal/storage"
	"github.com/landlordos/property-service/internal/tracing"
	"github.com/landlordos/property-service/internal/types"
)

var (
	// ErrTenantNotFound means the tenant does not exist or belongs to
	// someone else. Both cases look identical to the caller.
	ErrTenantNotFound    = errors.New("tenant not found")
	ErrNonPositiveAmount = errors.New("payment amount must be positive")
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

// CreatePayment records rent against a tenant the caller owns. The
// tenant does not need a current unit assignment.
func (s *Service) CreatePayment(ctx context.Context, userID string, p *types.Payment) (*types.Payment, error) {
	ctx, span := s.tracer.Start(ctx, "payments.Service.CreatePayment")
	defer span.End()

	if !p.Amount.IsPositive() {
		return nil, ErrNonPositiveAmount
	}

	if _, err := s.storage.GetTenantByID(ctx, p.TenantID, userID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrTenantNotFound
		}
		return nil, fmt.Errorf("failed to verify tenant: %w", err)
	}

	return s.storage.CreatePayment(ctx, p)
}

func (s *Service) GetPayment(ctx context.Context, id, userID string) (*types.Payment, error) {
	ctx, span := s.tracer.Start(ctx, "payments.Service.GetPayment")
	defer span.End()

	return s.storage.GetPaymentByID(ctx, id, userID)
}

// ListPayments returns the newest payments first.
func (s *Service) ListPayments(ctx context.Context, userID string, page, size int64) ([]*types.Payment, error) {
	ctx, span := s.tracer.Start(ctx, "payments.Service.ListPayments")
	defer span.End()

	if page < 1 {
		page = 1
	}
	return s.storage.ListPaymentsByUserID(ctx, userID, uint64(page), db.PageSize(size))
}

func (s *Service) UpdatePayment(ctx context.Context, userID string, p *types.Payment, paths []string) (*types.Payment, error) {
	ctx, span := s.tracer.Start(ctx, "payments.Service.UpdatePayment")
	defer span.End()

	for _, path := range paths {
		if path == "amount" && !p.Amount.IsPositive() {
			return nil, ErrNonPositiveAmount
		}
	}

	if err := s.storage.UpdatePayment(ctx, p, userID, paths); err != nil {
		return nil, err
	}

	return s.storage.GetPaymentByID(ctx, p.ID, userID)
}

func (s *Service) DeletePayment(ctx context.Context, id, userID string) error {
	ctx, span := s.tracer.Start(ctx, "payments.Service.DeletePayment")
	defer span.End()

	return s.storage.DeletePayment(ctx, id, userID)
}
