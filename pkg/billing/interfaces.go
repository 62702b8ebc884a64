// Copyright 2026 LandlordOS Ltd
// SPDX-License-Identifier: AGPL-3.0

package billing

import (
	"context"
	"time"

	"github.com/stripe/stripe-go/v82"

	"github.com/landlordos/property-service/internal/types"
)

type ServiceInterface interface {
	CreateCheckout(ctx context.Context, userID, tier string) (string, error)
	GetSubscription(ctx context.Context, userID string) (*types.Subscription, error)
	ListInvoices(ctx context.Context, userID string) ([]*types.Invoice, error)
	HandleEvent(ctx context.Context, event stripe.Event) error
}

// PaymentProviderInterface wraps the provider calls the service makes.
type PaymentProviderInterface interface {
	CreateCustomer(ctx context.Context, email, name string) (string, error)
	CreateCheckoutSession(ctx context.Context, customerID, priceID, userID string) (string, error)
}

// WebhookVerifierInterface checks inbound webhook signatures.
type WebhookVerifierInterface interface {
	ConstructEvent(payload []byte, sigHeader string) (stripe.Event, error)
}

// StorageInterface is the subset of the storage layer this package needs.
type StorageInterface interface {
	GetUserByID(ctx context.Context, id string) (*types.User, error)
	GetUserByStripeCustomerID(ctx context.Context, customerID string) (*types.User, error)
	SetStripeCustomerID(ctx context.Context, userID, customerID string) error
	UpdateUserSubscription(ctx context.Context, userID, customerID, tier, status string, periodEnd *time.Time) error
	SetSubscriptionStatus(ctx context.Context, userID, status string) error
	CreateInvoice(ctx context.Context, inv *types.Invoice) (*types.Invoice, error)
	GetInvoiceByStripeID(ctx context.Context, stripeInvoiceID string) (*types.Invoice, error)
	ListInvoicesByUserID(ctx context.Context, userID string) ([]*types.Invoice, error)
}
