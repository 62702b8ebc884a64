// Copyright 2026 LandlordOS Ltd
// SPDX-License-Identifier: AGPL-3.0

package tenants

import (
	"context"

	"github.com/landlordos/property-service/internal/types"
)

type ServiceInterface interface {
	CreateTenant(ctx context.Context, userID string, t *types.Tenant) (*types.Tenant, error)
	GetTenant(ctx context.Context, id, userID string) (*types.Tenant, error)
	ListTenants(ctx context.Context, userID string) ([]*types.Tenant, error)
	UpdateTenant(ctx context.Context, userID string, t *types.Tenant, paths []string) (*types.Tenant, error)
	DeleteTenant(ctx context.Context, id, userID string) error
}

// StorageInterface is the subset of the storage layer this package needs.
type StorageInterface interface {
	CreateTenant(ctx context.Context, t *types.Tenant) (*types.Tenant, error)
	GetTenantByID(ctx context.Context, id, userID string) (*types.Tenant, error)
	ListTenantsByUserID(ctx context.Context, userID string) ([]*types.Tenant, error)
	UpdateTenant(ctx context.Context, t *types.Tenant, paths []string) error
	DeleteTenant(ctx context.Context, id, userID string) error
	GetUnitByID(ctx context.Context, id, userID string) (*types.Unit, error)
}
