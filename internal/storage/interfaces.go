// Copyright 2026 LandlordOS Ltd
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"time"

	"github.com/landlordos/property-service/internal/types"
)

type StorageInterface interface {
	// Users.
	CreateUser(ctx context.Context, u *types.User) (*types.User, error)
	GetUserByID(ctx context.Context, id string) (*types.User, error)
	GetUserByEmail(ctx context.Context, email string) (*types.User, error)
	GetUserByStripeCustomerID(ctx context.Context, customerID string) (*types.User, error)
	SetStripeCustomerID(ctx context.Context, userID, customerID string) error
	UpdateUserSubscription(ctx context.Context, userID, customerID, tier, status string, periodEnd *time.Time) error
	SetSubscriptionStatus(ctx context.Context, userID, status string) error
	UpdateUserPassword(ctx context.Context, userID, passwordHash string) error

	// Properties.
	CreateProperty(ctx context.Context, p *types.Property) (*types.Property, error)
	GetPropertyByID(ctx context.Context, id, userID string) (*types.Property, error)
	ListPropertiesByUserID(ctx context.Context, userID string, page, size uint64) ([]*types.Property, error)
	CountPropertiesByUserID(ctx context.Context, userID string) (int64, error)
	UpdateProperty(ctx context.Context, p *types.Property, paths []string) error
	DeleteProperty(ctx context.Context, id, userID string) error

	// Units.
	CreateUnit(ctx context.Context, u *types.Unit) (*types.Unit, error)
	GetUnitByID(ctx context.Context, id, userID string) (*types.Unit, error)
	ListUnitsByUserID(ctx context.Context, userID string, propertyID *string) ([]*types.Unit, error)
	UpdateUnit(ctx context.Context, u *types.Unit, userID string, paths []string) error
	DeleteUnit(ctx context.Context, id, userID string) error

	// Tenants.
	CreateTenant(ctx context.Context, t *types.Tenant) (*types.Tenant, error)
	GetTenantByID(ctx context.Context, id, userID string) (*types.Tenant, error)
	ListTenantsByUserID(ctx context.Context, userID string) ([]*types.Tenant, error)
	UpdateTenant(ctx context.Context, t *types.Tenant, paths []string) error
	DeleteTenant(ctx context.Context, id, userID string) error

	// Payments.
	CreatePayment(ctx context.Context, p *types.Payment) (*types.Payment, error)
	GetPaymentByID(ctx context.Context, id, userID string) (*types.Payment, error)
	ListPaymentsByUserID(ctx context.Context, userID string, page, size uint64) ([]*types.Payment, error)
	UpdatePayment(ctx context.Context, p *types.Payment, userID string, paths []string) error
	DeletePayment(ctx context.Context, id, userID string) error

	// Maintenance requests.
	CreateMaintenanceRequest(ctx context.Context, m *types.MaintenanceRequest) (*types.MaintenanceRequest, error)
	GetMaintenanceRequestByID(ctx context.Context, id, userID string) (*types.MaintenanceRequest, error)
	ListMaintenanceRequestsByUserID(ctx context.Context, userID string) ([]*types.MaintenanceRequest, error)
	UpdateMaintenanceRequest(ctx context.Context, m *types.MaintenanceRequest, userID string, paths []string) error
	DeleteMaintenanceRequest(ctx context.Context, id, userID string) error

	// Invoices.
	CreateInvoice(ctx context.Context, inv *types.Invoice) (*types.Invoice, error)
	GetInvoiceByStripeID(ctx context.Context, stripeInvoiceID string) (*types.Invoice, error)
	ListInvoicesByUserID(ctx context.Context, userID string) ([]*types.Invoice, error)

	// Password reset tokens.
	CreatePasswordResetToken(ctx context.Context, t *types.PasswordResetToken) error
	GetPasswordResetToken(ctx context.Context, token string) (*types.PasswordResetToken, error)
	MarkPasswordResetTokenUsed(ctx context.Context, id string) error
}
