// Copyright 2026 LandlordOS Ltd
// SPDX-License-Identifier: AGPL-3.0

package properties

import (
	"context"

	"github.com/landlordos/property-service/internal/types"
)

// ServiceInterface scopes every operation to the calling user.
type ServiceInterface interface {
	CreateProperty(ctx context.Context, userID string, p *types.Property) (*types.Property, error)
	GetProperty(ctx context.Context, id, userID string) (*types.Property, error)
	ListProperties(ctx context.Context, userID string, page, size int64) ([]*types.Property, int64, error)
	UpdateProperty(ctx context.Context, userID string, p *types.Property, paths []string) (*types.Property, error)
	DeleteProperty(ctx context.Context, id, userID string) error
}

// StorageInterface is the subset of the storage layer this package needs.
type StorageInterface interface {
	CreateProperty(ctx context.Context, p *types.Property) (*types.Property, error)
	GetPropertyByID(ctx context.Context, id, userID string) (*types.Property, error)
	ListPropertiesByUserID(ctx context.Context, userID string, page, size uint64) ([]*types.Property, error)
	CountPropertiesByUserID(ctx context.Context, userID string) (int64, error)
	UpdateProperty(ctx context.Context, p *types.Property, paths []string) error
	DeleteProperty(ctx context.Context, id, userID string) error
	GetUserByID(ctx context.Context, id string) (*types.User, error)
}
