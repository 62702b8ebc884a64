// Copyright 2026 LandlordOS Ltd
// SPDX-License-Identifier: AGPL-3.0

package units

import (
	"context"

	"github.com/landlordos/property-service/internal/types"
)

type ServiceInterface interface {
	CreateUnit(ctx context.Context, userID string, u *types.Unit) (*types.Unit, error)
	GetUnit(ctx context.Context, id, userID string) (*types.Unit, error)
	ListUnits(ctx context.Context, userID string, propertyID *string) ([]*types.Unit, error)
	UpdateUnit(ctx context.Context, userID string, u *types.Unit, paths []string) (*types.Unit, error)
	DeleteUnit(ctx context.Context, id, userID string) error
}

// StorageInterface is the subset of the storage layer this package needs.
type StorageInterface interface {
	CreateUnit(ctx context.Context, u *types.Unit) (*types.Unit, error)
	GetUnitByID(ctx context.Context, id, userID string) (*types.Unit, error)
	ListUnitsByUserID(ctx context.Context, userID string, propertyID *string) ([]*types.Unit, error)
	UpdateUnit(ctx context.Context, u *types.Unit, userID string, paths []string) error
	DeleteUnit(ctx context.Context, id, userID string) error
	GetPropertyByID(ctx context.Context, id, userID string) (*types.Property, error)
}
