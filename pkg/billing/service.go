// Copyright 2026 LandlordOS Ltd
// SPDX-License-Identifier: AGPL-3.0

package billing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v82"

	"github.com/landlordos/property-service/internal/logging"
	"github.com/landlordos/property-service/internal/monitoring"
	"github.com/landlordos/property-service/internal/storage"
	"github.com/landlordos/property-service/internal/tracing"
	"github.com/landlordos/property-service/internal/types"
)

// ErrUnknownTier means the requested plan cannot be bought.
var ErrUnknownTier = errors.New("unknown subscription tier")

// Provider event payloads, decoded from the raw event body. Only the
// fields the ledger needs are mapped.
type subscriptionPayload struct {
	ID       string            `json:"id"`
	Customer string            `json:"customer"`
	Status   string            `json:"status"`
	Metadata map[string]string `json:"metadata"`
	Items    struct {
		Data []struct {
			CurrentPeriodEnd int64 `json:"current_period_end"`
			Price            struct {
				ID string `json:"id"`
			} `json:"price"`
		} `json:"data"`
	} `json:"items"`
}

type invoicePayload struct {
	ID               string `json:"id"`
	Customer         string `json:"customer"`
	AmountPaid       int64  `json:"amount_paid"`
	Status           string `json:"status"`
	HostedInvoiceURL string `json:"hosted_invoice_url"`
}

type Service struct {
	storage  StorageInterface
	provider PaymentProviderInterface
	prices   PriceTable

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	provider PaymentProviderInterface,
	prices PriceTable,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage:  storage,
		provider: provider,
		prices:   prices,
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

// CreateCheckout starts a hosted checkout for the given tier and
// returns the redirect URL.
func (s *Service) CreateCheckout(ctx context.Context, userID, tier string) (string, error) {
	ctx, span := s.tracer.Start(ctx, "billing.Service.CreateCheckout")
	defer span.End()

	priceID, ok := s.prices.PriceForTier(tier)
	if !ok {
		return "", ErrUnknownTier
	}

	customerID, err := s.getOrCreateCustomer(ctx, userID)
	if err != nil {
		return "", err
	}

	return s.provider.CreateCheckoutSession(ctx, customerID, priceID, userID)
}

func (s *Service) GetSubscription(ctx context.Context, userID string) (*types.Subscription, error) {
	ctx, span := s.tracer.Start(ctx, "billing.Service.GetSubscription")
	defer span.End()

	user, err := s.storage.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &types.Subscription{
		Tier:      user.SubscriptionTier,
		Status:    user.SubscriptionStatus,
		PeriodEnd: user.SubscriptionPeriodEnd,
	}, nil
}

func (s *Service) ListInvoices(ctx context.Context, userID string) ([]*types.Invoice, error) {
	ctx, span := s.tracer.Start(ctx, "billing.Service.ListInvoices")
	defer span.End()

	return s.storage.ListInvoicesByUserID(ctx, userID)
}

// HandleEvent dispatches a verified provider event. Event types outside
// the handled set are acknowledged without side effects.
func (s *Service) HandleEvent(ctx context.Context, event stripe.Event) error {
	ctx, span := s.tracer.Start(ctx, "billing.Service.HandleEvent")
	defer span.End()

	switch event.Type {
	case stripe.EventTypeCustomerSubscriptionCreated, stripe.EventTypeCustomerSubscriptionUpdated:
		return s.applySubscriptionChange(ctx, event.Data.Raw)
	case stripe.EventTypeCustomerSubscriptionDeleted:
		return s.applySubscriptionDeleted(ctx, event.Data.Raw)
	case stripe.EventTypeInvoicePaid, stripe.EventTypeInvoicePaymentSucceeded:
		return s.recordInvoicePaid(ctx, event.Data.Raw)
	case stripe.EventTypeInvoicePaymentFailed:
		return s.recordPaymentFailed(ctx, event.Data.Raw)
	default:
		s.logger.Debugf("ignoring webhook event type %s", event.Type)
		return nil
	}
}

func (s *Service) applySubscriptionChange(ctx context.Context, raw json.RawMessage) error {
	var sub subscriptionPayload
	if err := json.Unmarshal(raw, &sub); err != nil {
		return fmt.Errorf("failed to decode subscription payload: %w", err)
	}

	user, ok := s.resolveUser(ctx, sub.Customer, sub.Metadata)
	if !ok {
		return nil
	}

	var priceID string
	var periodEnd *time.Time
	if len(sub.Items.Data) > 0 {
		item := sub.Items.Data[0]
		priceID = item.Price.ID
		if item.CurrentPeriodEnd > 0 {
			t := time.Unix(item.CurrentPeriodEnd, 0).UTC()
			periodEnd = &t
		}
	}

	tier := s.prices.TierForPrice(priceID)
	status := mapSubscriptionStatus(sub.Status)

	if err := s.storage.UpdateUserSubscription(ctx, user.ID, sub.Customer, tier, status, periodEnd); err != nil {
		return fmt.Errorf("failed to update subscription for user %s: %w", user.ID, err)
	}

	s.logger.Infof("subscription for user %s moved to tier %s (%s)", user.ID, tier, status)
	return nil
}

func (s *Service) applySubscriptionDeleted(ctx context.Context, raw json.RawMessage) error {
	var sub subscriptionPayload
	if err := json.Unmarshal(raw, &sub); err != nil {
		return fmt.Errorf("failed to decode subscription payload: %w", err)
	}

	user, ok := s.resolveUser(ctx, sub.Customer, sub.Metadata)
	if !ok {
		return nil
	}

	if err := s.storage.UpdateUserSubscription(ctx, user.ID, sub.Customer, types.TierFree, types.SubscriptionStatusCanceled, nil); err != nil {
		return fmt.Errorf("failed to cancel subscription for user %s: %w", user.ID, err)
	}

	s.logger.Infof("subscription for user %s canceled, reverting to free tier", user.ID)
	return nil
}

func (s *Service) recordInvoicePaid(ctx context.Context, raw json.RawMessage) error {
	var inv invoicePayload
	if err := json.Unmarshal(raw, &inv); err != nil {
		return fmt.Errorf("failed to decode invoice payload: %w", err)
	}

	user, ok := s.resolveUser(ctx, inv.Customer, nil)
	if !ok {
		return nil
	}

	// Redelivered events are acknowledged without touching the ledger.
	if _, err := s.storage.GetInvoiceByStripeID(ctx, inv.ID); err == nil {
		s.logger.Debugf("invoice %s already recorded", inv.ID)
		return nil
	} else if !errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("failed to look up invoice %s: %w", inv.ID, err)
	}

	invoice := &types.Invoice{
		UserID:          user.ID,
		StripeInvoiceID: inv.ID,
		Amount:          decimal.New(inv.AmountPaid, -2),
		Status:          inv.Status,
	}
	if inv.HostedInvoiceURL != "" {
		invoice.InvoiceURL = &inv.HostedInvoiceURL
	}

	if _, err := s.storage.CreateInvoice(ctx, invoice); err != nil {
		if errors.Is(err, storage.ErrDuplicateKey) {
			// A concurrent delivery won the insert race.
			s.logger.Debugf("invoice %s already recorded", inv.ID)
			return nil
		}
		return fmt.Errorf("failed to record invoice %s: %w", inv.ID, err)
	}

	if user.SubscriptionStatus == types.SubscriptionStatusPastDue {
		if err := s.storage.SetSubscriptionStatus(ctx, user.ID, types.SubscriptionStatusActive); err != nil {
			return fmt.Errorf("failed to reactivate subscription for user %s: %w", user.ID, err)
		}
	}

	return nil
}

func (s *Service) recordPaymentFailed(ctx context.Context, raw json.RawMessage) error {
	var inv invoicePayload
	if err := json.Unmarshal(raw, &inv); err != nil {
		return fmt.Errorf("failed to decode invoice payload: %w", err)
	}

	user, ok := s.resolveUser(ctx, inv.Customer, nil)
	if !ok {
		return nil
	}

	if err := s.storage.SetSubscriptionStatus(ctx, user.ID, types.SubscriptionStatusPastDue); err != nil {
		return fmt.Errorf("failed to flag subscription past due for user %s: %w", user.ID, err)
	}

	s.logger.Warnf("payment failed for user %s, subscription marked past due", user.ID)
	return nil
}

// resolveUser finds the account an event belongs to, first by customer
// ID and then by the user_id metadata left at checkout. Events that
// resolve to no account are dropped after logging.
func (s *Service) resolveUser(ctx context.Context, customerID string, metadata map[string]string) (*types.User, bool) {
	if customerID != "" {
		user, err := s.storage.GetUserByStripeCustomerID(ctx, customerID)
		if err == nil {
			return user, true
		}
		if !errors.Is(err, storage.ErrNotFound) {
			s.logger.Errorf("failed to look up customer %s: %v", customerID, err)
			return nil, false
		}
	}

	if userID := metadata["user_id"]; userID != "" {
		user, err := s.storage.GetUserByID(ctx, userID)
		if err == nil {
			// First event for this customer, persist the mapping.
			if customerID != "" {
				if err := s.storage.SetStripeCustomerID(ctx, userID, customerID); err != nil {
					s.logger.Warnf("failed to persist customer mapping for user %s: %v", userID, err)
				}
			}
			return user, true
		}
		if !errors.Is(err, storage.ErrNotFound) {
			s.logger.Errorf("failed to look up user %s: %v", userID, err)
			return nil, false
		}
	}

	s.logger.Warnf("webhook event for unknown customer %q dropped", customerID)
	return nil, false
}

func (s *Service) getOrCreateCustomer(ctx context.Context, userID string) (string, error) {
	user, err := s.storage.GetUserByID(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("failed to fetch user: %w", err)
	}

	if user.StripeCustomerID != nil && *user.StripeCustomerID != "" {
		return *user.StripeCustomerID, nil
	}

	customerID, err := s.provider.CreateCustomer(ctx, user.Email, user.Name)
	if err != nil {
		return "", fmt.Errorf("failed to create customer: %w", err)
	}

	if err := s.storage.SetStripeCustomerID(ctx, userID, customerID); err != nil {
		return "", fmt.Errorf("failed to persist customer ID: %w", err)
	}

	return customerID, nil
}

// mapSubscriptionStatus folds provider statuses into the ledger's set.
func mapSubscriptionStatus(status string) string {
	switch status {
	case "active":
		return types.SubscriptionStatusActive
	case "trialing":
		return types.SubscriptionStatusTrialing
	case "past_due", "unpaid":
		return types.SubscriptionStatusPastDue
	case "canceled", "incomplete_expired":
		return types.SubscriptionStatusCanceled
	default:
		return status
	}
}
