// Copyright 2026 LandlordOS Ltd
// SPDX-License-Identifier: AGPL-3.0

package maintenance

import (
	"context"

	"github.com/landlordos/property-service/internal/types"
)

type ServiceInterface interface {
	CreateRequest(ctx context.Context, userID string, m *types.MaintenanceRequest) (*types.MaintenanceRequest, error)
	GetRequest(ctx context.Context, id, userID string) (*types.MaintenanceRequest, error)
	ListRequests(ctx context.Context, userID string) ([]*types.MaintenanceRequest, error)
	UpdateRequest(ctx context.Context, userID string, m *types.MaintenanceRequest, paths []string) (*types.MaintenanceRequest, error)
	DeleteRequest(ctx context.Context, id, userID string) error
}

// StorageInterface is the subset of the storage layer this package needs.
type StorageInterface interface {
	CreateMaintenanceRequest(ctx context.Context, m *types.MaintenanceRequest) (*types.MaintenanceRequest, error)
	GetMaintenanceRequestByID(ctx context.Context, id, userID string) (*types.MaintenanceRequest, error)
	ListMaintenanceRequestsByUserID(ctx context.Context, userID string) ([]*types.MaintenanceRequest, error)
	UpdateMaintenanceRequest(ctx context.Context, m *types.MaintenanceRequest, userID string, paths []string) error
	DeleteMaintenanceRequest(ctx context.Context, id, userID string) error
	GetUnitByID(ctx context.Context, id, userID string) (*types.Unit, error)
}
