// Copyright 2026 LandlordOS Ltd
// SPDX-License-Identifier: AGPL-3.0

package billing

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"
	"github.com/stripe/stripe-go/v82/webhook"

	"github.com/landlordos/property-service/internal/tracing"
)

var (
	_ PaymentProviderInterface = (*StripeProvider)(nil)
	_ WebhookVerifierInterface = (*StripeWebhookVerifier)(nil)
)

// StripeProvider talks to the Stripe API.
type StripeProvider struct {
	api     *client.API
	baseURL string

	tracer tracing.TracingInterface
}

func NewStripeProvider(secretKey, baseURL string, tracer tracing.TracingInterface) *StripeProvider {
	api := &client.API{}
	api.Init(secretKey, nil)

	return &StripeProvider{
		api:     api,
		baseURL: baseURL,
		tracer:  tracer,
	}
}

func (p *StripeProvider) CreateCustomer(ctx context.Context, email, name string) (string, error) {
	ctx, span := p.tracer.Start(ctx, "billing.StripeProvider.CreateCustomer")
	defer span.End()

	params := &stripe.CustomerParams{
		Email: stripe.String(email),
		Name:  stripe.String(name),
	}
	params.Context = ctx

	customer, err := p.api.Customers.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to create customer: %w", err)
	}

	return customer.ID, nil
}

func (p *StripeProvider) CreateCheckoutSession(ctx context.Context, customerID, priceID, userID string) (string, error) {
	ctx, span := p.tracer.Start(ctx, "billing.StripeProvider.CreateCheckoutSession")
	defer span.End()

	params := &stripe.CheckoutSessionParams{
		Customer: stripe.String(customerID),
		Mode:     stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(priceID),
				Quantity: stripe.Int64(1),
			},
		},
		SubscriptionData: &stripe.CheckoutSessionSubscriptionDataParams{
			Metadata: map[string]string{"user_id": userID},
		},
		SuccessURL: stripe.String(p.baseURL + "/billing?checkout=success"),
		CancelURL:  stripe.String(p.baseURL + "/billing?checkout=cancelled"),
	}
	params.Context = ctx

	session, err := p.api.CheckoutSessions.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to create checkout session: %w", err)
	}

	return session.URL, nil
}

// StripeWebhookVerifier validates webhook payloads against the shared
// endpoint secret.
type StripeWebhookVerifier struct {
	secret string
}

func NewStripeWebhookVerifier(secret string) *StripeWebhookVerifier {
	return &StripeWebhookVerifier{secret: secret}
}

func (v *StripeWebhookVerifier) ConstructEvent(payload []byte, sigHeader string) (stripe.Event, error) {
	return webhook.ConstructEvent(payload, sigHeader, v.secret)
}
