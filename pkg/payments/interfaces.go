// Copyright 2026 LandlordOS Ltd
// SPDX-License-Identifier: AGPL-3.0

package payments

import (
	"context"

	"github.com/landlordos/property-service/internal/types"
)

type ServiceInterface interface {
	CreatePayment(ctx context.Context, userID string, p *types.Payment) (*types.Payment, error)
	GetPayment(ctx context.Context, id, userID string) (*types.Payment, error)
	ListPayments(ctx context.Context, userID string, page, size int64) ([]*types.Payment, error)
	UpdatePayment(ctx context.Context, userID string, p *types.Payment, paths []string) (*types.Payment, error)
	DeletePayment(ctx context.Context, id, userID string) error
}

// StorageInterface is the subset of the storage layer this package needs.
type StorageInterface interface {
	CreatePayment(ctx context.Context, p *types.Payment) (*types.Payment, error)
	GetPaymentByID(ctx context.Context, id, userID string) (*types.Payment, error)
	ListPaymentsByUserID(ctx context.Context, userID string, page, size uint64) ([]*types.Payment, error)
	UpdatePayment(ctx context.Context, p *types.Payment, userID string, paths []string) error
	DeletePayment(ctx context.Context, id, userID string) error
	GetTenantByID(ctx context.Context, id, userID string) (*types.Tenant, error)
}
