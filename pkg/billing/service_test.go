// Copyright 2026 LandlordOS Ltd
// SPDX-License-Identifier: AGPL-3.0

package billing

//go:generate mockgen -build_flags=--mod=mod -package billing -destination ./mock_billing.go -source=./interfaces.go

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v82"
	"go.uber.org/mock/gomock"

	"github.com/landlordos/property-service/internal/logging"
	"github.com/landlordos/property-service/internal/monitoring"
	"github.com/landlordos/property-service/internal/storage"
	"github.com/landlordos/property-service/internal/tracing"
	"github.com/landlordos/property-service/internal/types"
)

var testPrices = PriceTable{
	Starter: "price_starter_123",
	Pro:     "price_pro_456",
}

func newTestService(t *testing.T) (*Service, *MockStorageInterface, *MockPaymentProviderInterface) {
	ctrl := gomock.NewController(t)
	mockStorage := NewMockStorageInterface(ctrl)
	mockProvider := NewMockPaymentProviderInterface(ctrl)
	service := NewService(
		mockStorage,
		mockProvider,
		testPrices,
		tracing.NewNoopTracer(),
		monitoring.NewNoopMonitor(),
		logging.NewNoopLogger(),
	)
	return service, mockStorage, mockProvider
}

func subscriptionEvent(eventType, customerID, priceID string, periodEnd int64) stripe.Event {
	raw := fmt.Sprintf(`{
		"id": "sub_123",
		"customer": %q,
		"status": "active",
		"items": {"data": [{"current_period_end": %d, "price": {"id": %q}}]}
	}`, customerID, periodEnd, priceID)
	return stripe.Event{
		ID:   "evt_123",
		Type: stripe.EventType(eventType),
		Data: &stripe.EventData{Raw: json.RawMessage(raw)},
	}
}

func invoiceEvent(eventType, customerID string, amountPaid int64) stripe.Event {
	raw := fmt.Sprintf(`{
		"id": "in_123",
		"customer": %q,
		"amount_paid": %d,
		"status": "paid",
		"hosted_invoice_url": "https://invoices.example.com/in_123"
	}`, customerID, amountPaid)
	return stripe.Event{
		ID:   "evt_456",
		Type: stripe.EventType(eventType),
		Data: &stripe.EventData{Raw: json.RawMessage(raw)},
	}
}

func TestCreateCheckout(t *testing.T) {
	existingCustomer := "cus_existing"

	tests := []struct {
		name    string
		tier    string
		setup   func(*MockStorageInterface, *MockPaymentProviderInterface)
		wantURL string
		wantErr error
	}{
		{
			name: "creates customer on first checkout",
			tier: types.TierStarter,
			setup: func(ms *MockStorageInterface, mp *MockPaymentProviderInterface) {
				ms.EXPECT().GetUserByID(gomock.Any(), "user-1").Return(&types.User{
					ID: "user-1", Email: "a@b.com", Name: "Ann",
				}, nil)
				mp.EXPECT().CreateCustomer(gomock.Any(), "a@b.com", "Ann").Return("cus_new", nil)
				ms.EXPECT().SetStripeCustomerID(gomock.Any(), "user-1", "cus_new").Return(nil)
				mp.EXPECT().CreateCheckoutSession(gomock.Any(), "cus_new", testPrices.Starter, "user-1").
					Return("https://checkout.example.com/s1", nil)
			},
			wantURL: "https://checkout.example.com/s1",
		},
		{
			name: "reuses stored customer",
			tier: types.TierPro,
			setup: func(ms *MockStorageInterface, mp *MockPaymentProviderInterface) {
				ms.EXPECT().GetUserByID(gomock.Any(), "user-1").Return(&types.User{
					ID: "user-1", StripeCustomerID: &existingCustomer,
				}, nil)
				mp.EXPECT().CreateCheckoutSession(gomock.Any(), existingCustomer, testPrices.Pro, "user-1").
					Return("https://checkout.example.com/s2", nil)
			},
			wantURL: "https://checkout.example.com/s2",
		},
		{
			name:    "rejects unknown tier",
			tier:    "platinum",
			setup:   func(ms *MockStorageInterface, mp *MockPaymentProviderInterface) {},
			wantErr: ErrUnknownTier,
		},
		{
			name:    "free tier has no checkout",
			tier:    types.TierFree,
			setup:   func(ms *MockStorageInterface, mp *MockPaymentProviderInterface) {},
			wantErr: ErrUnknownTier,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, mockStorage, mockProvider := newTestService(t)
			tt.setup(mockStorage, mockProvider)

			url, err := service.CreateCheckout(context.Background(), "user-1", tt.tier)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantURL, url)
		})
	}
}

func TestHandleEventSubscriptionLifecycle(t *testing.T) {
	user := &types.User{ID: "user-1"}

	t.Run("upgrade maps price to tier and stores period end", func(t *testing.T) {
		service, mockStorage, _ := newTestService(t)
		periodEnd := time.Now().Add(30 * 24 * time.Hour).Unix()

		mockStorage.EXPECT().GetUserByStripeCustomerID(gomock.Any(), "cus_1").Return(user, nil)
		mockStorage.EXPECT().
			UpdateUserSubscription(gomock.Any(), "user-1", "cus_1", types.TierPro, types.SubscriptionStatusActive, gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _, _, _ string, end *time.Time) error {
				require.NotNil(t, end)
				assert.Equal(t, periodEnd, end.Unix())
				return nil
			})

		err := service.HandleEvent(context.Background(), subscriptionEvent("customer.subscription.updated", "cus_1", testPrices.Pro, periodEnd))
		require.NoError(t, err)
	})

	t.Run("unknown price falls back to free tier", func(t *testing.T) {
		service, mockStorage, _ := newTestService(t)

		mockStorage.EXPECT().GetUserByStripeCustomerID(gomock.Any(), "cus_1").Return(user, nil)
		mockStorage.EXPECT().
			UpdateUserSubscription(gomock.Any(), "user-1", "cus_1", types.TierFree, types.SubscriptionStatusActive, gomock.Any()).
			Return(nil)

		err := service.HandleEvent(context.Background(), subscriptionEvent("customer.subscription.created", "cus_1", "price_retired", time.Now().Unix()))
		require.NoError(t, err)
	})

	t.Run("deletion reverts to free with no period end", func(t *testing.T) {
		service, mockStorage, _ := newTestService(t)

		mockStorage.EXPECT().GetUserByStripeCustomerID(gomock.Any(), "cus_1").Return(user, nil)
		mockStorage.EXPECT().
			UpdateUserSubscription(gomock.Any(), "user-1", "cus_1", types.TierFree, types.SubscriptionStatusCanceled, nil).
			Return(nil)

		err := service.HandleEvent(context.Background(), subscriptionEvent("customer.subscription.deleted", "cus_1", testPrices.Pro, 0))
		require.NoError(t, err)
	})

	t.Run("falls back to metadata user_id and persists mapping", func(t *testing.T) {
		service, mockStorage, _ := newTestService(t)

		event := stripe.Event{
			Type: "customer.subscription.updated",
			Data: &stripe.EventData{Raw: json.RawMessage(fmt.Sprintf(`{
				"customer": "cus_fresh",
				"status": "active",
				"metadata": {"user_id": "user-1"},
				"items": {"data": [{"current_period_end": %d, "price": {"id": %q}}]}
			}`, time.Now().Unix(), testPrices.Starter))},
		}

		mockStorage.EXPECT().GetUserByStripeCustomerID(gomock.Any(), "cus_fresh").Return(nil, storage.ErrNotFound)
		mockStorage.EXPECT().GetUserByID(gomock.Any(), "user-1").Return(user, nil)
		mockStorage.EXPECT().SetStripeCustomerID(gomock.Any(), "user-1", "cus_fresh").Return(nil)
		mockStorage.EXPECT().
			UpdateUserSubscription(gomock.Any(), "user-1", "cus_fresh", types.TierStarter, types.SubscriptionStatusActive, gomock.Any()).
			Return(nil)

		require.NoError(t, service.HandleEvent(context.Background(), event))
	})

	t.Run("unresolved customer is dropped without error", func(t *testing.T) {
		service, mockStorage, _ := newTestService(t)

		mockStorage.EXPECT().GetUserByStripeCustomerID(gomock.Any(), "cus_ghost").Return(nil, storage.ErrNotFound)

		err := service.HandleEvent(context.Background(), subscriptionEvent("customer.subscription.updated", "cus_ghost", testPrices.Pro, time.Now().Unix()))
		require.NoError(t, err)
	})
}

func TestHandleEventInvoices(t *testing.T) {
	t.Run("paid invoice lands on the ledger in major units", func(t *testing.T) {
		service, mockStorage, _ := newTestService(t)

		mockStorage.EXPECT().GetUserByStripeCustomerID(gomock.Any(), "cus_1").
			Return(&types.User{ID: "user-1", SubscriptionStatus: types.SubscriptionStatusActive}, nil)
		mockStorage.EXPECT().GetInvoiceByStripeID(gomock.Any(), "in_123").Return(nil, storage.ErrNotFound)
		mockStorage.EXPECT().CreateInvoice(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, inv *types.Invoice) (*types.Invoice, error) {
				assert.Equal(t, "user-1", inv.UserID)
				assert.Equal(t, "in_123", inv.StripeInvoiceID)
				assert.Equal(t, "29.99", inv.Amount.String())
				assert.Equal(t, "paid", inv.Status)
				require.NotNil(t, inv.InvoiceURL)
				return inv, nil
			})

		err := service.HandleEvent(context.Background(), invoiceEvent("invoice.paid", "cus_1", 2999))
		require.NoError(t, err)
	})

	t.Run("redelivered invoice is acknowledged without an insert", func(t *testing.T) {
		service, mockStorage, _ := newTestService(t)

		mockStorage.EXPECT().GetUserByStripeCustomerID(gomock.Any(), "cus_1").
			Return(&types.User{ID: "user-1", SubscriptionStatus: types.SubscriptionStatusActive}, nil)
		mockStorage.EXPECT().GetInvoiceByStripeID(gomock.Any(), "in_123").
			Return(&types.Invoice{ID: "inv-1", StripeInvoiceID: "in_123"}, nil)

		err := service.HandleEvent(context.Background(), invoiceEvent("invoice.paid", "cus_1", 2999))
		require.NoError(t, err)
	})

	t.Run("losing the insert race is still idempotent", func(t *testing.T) {
		service, mockStorage, _ := newTestService(t)

		mockStorage.EXPECT().GetUserByStripeCustomerID(gomock.Any(), "cus_1").
			Return(&types.User{ID: "user-1", SubscriptionStatus: types.SubscriptionStatusActive}, nil)
		mockStorage.EXPECT().GetInvoiceByStripeID(gomock.Any(), "in_123").Return(nil, storage.ErrNotFound)
		mockStorage.EXPECT().CreateInvoice(gomock.Any(), gomock.Any()).Return(nil, storage.ErrDuplicateKey)

		err := service.HandleEvent(context.Background(), invoiceEvent("invoice.paid", "cus_1", 2999))
		require.NoError(t, err)
	})

	t.Run("payment after past_due reactivates the subscription", func(t *testing.T) {
		service, mockStorage, _ := newTestService(t)

		mockStorage.EXPECT().GetUserByStripeCustomerID(gomock.Any(), "cus_1").
			Return(&types.User{ID: "user-1", SubscriptionStatus: types.SubscriptionStatusPastDue}, nil)
		mockStorage.EXPECT().GetInvoiceByStripeID(gomock.Any(), "in_123").Return(nil, storage.ErrNotFound)
		mockStorage.EXPECT().CreateInvoice(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, inv *types.Invoice) (*types.Invoice, error) {
				return inv, nil
			})
		mockStorage.EXPECT().SetSubscriptionStatus(gomock.Any(), "user-1", types.SubscriptionStatusActive).Return(nil)

		err := service.HandleEvent(context.Background(), invoiceEvent("invoice.paid", "cus_1", 2999))
		require.NoError(t, err)
	})

	t.Run("failed payment marks the subscription past due", func(t *testing.T) {
		service, mockStorage, _ := newTestService(t)

		mockStorage.EXPECT().GetUserByStripeCustomerID(gomock.Any(), "cus_1").
			Return(&types.User{ID: "user-1"}, nil)
		mockStorage.EXPECT().SetSubscriptionStatus(gomock.Any(), "user-1", types.SubscriptionStatusPastDue).Return(nil)

		err := service.HandleEvent(context.Background(), invoiceEvent("invoice.payment_failed", "cus_1", 0))
		require.NoError(t, err)
	})

	t.Run("storage failure surfaces", func(t *testing.T) {
		service, mockStorage, _ := newTestService(t)

		mockStorage.EXPECT().GetUserByStripeCustomerID(gomock.Any(), "cus_1").
			Return(&types.User{ID: "user-1"}, nil)
		mockStorage.EXPECT().GetInvoiceByStripeID(gomock.Any(), "in_123").Return(nil, storage.ErrNotFound)
		mockStorage.EXPECT().CreateInvoice(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection reset"))

		err := service.HandleEvent(context.Background(), invoiceEvent("invoice.paid", "cus_1", 2999))
		require.Error(t, err)
	})
}

func TestHandleEventIgnoresUnhandledTypes(t *testing.T) {
	service, _, _ := newTestService(t)

	event := stripe.Event{
		Type: "payment_intent.succeeded",
		Data: &stripe.EventData{Raw: json.RawMessage(`{"id": "pi_123"}`)},
	}

	require.NoError(t, service.HandleEvent(context.Background(), event))
}

func TestGetSubscription(t *testing.T) {
	service, mockStorage, _ := newTestService(t)
	periodEnd := time.Now().Add(24 * time.Hour)

	mockStorage.EXPECT().GetUserByID(gomock.Any(), "user-1").Return(&types.User{
		ID:                    "user-1",
		SubscriptionTier:      types.TierStarter,
		SubscriptionStatus:    types.SubscriptionStatusActive,
		SubscriptionPeriodEnd: &periodEnd,
	}, nil)

	sub, err := service.GetSubscription(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, types.TierStarter, sub.Tier)
	assert.Equal(t, types.SubscriptionStatusActive, sub.Status)
	assert.Equal(t, &periodEnd, sub.PeriodEnd)
}
