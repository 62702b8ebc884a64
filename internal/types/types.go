// Copyright 2026 LandlordOS Ltd
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"time"

	"github.com/shopspring/decimal"
)

// Subscription tiers. Unrecognized provider plans map to TierFree.
const (
	TierFree    = "free"
	TierStarter = "starter"
	TierPro     = "pro"
)

// Subscription statuses mirrored from the billing provider.
const (
	SubscriptionStatusFree     = "free"
	SubscriptionStatusActive   = "active"
	SubscriptionStatusTrialing = "trialing"
	SubscriptionStatusPastDue  = "past_due"
	SubscriptionStatusCanceled = "canceled"
)

// Unit statuses.
const (
	UnitStatusVacant      = "vacant"
	UnitStatusOccupied    = "occupied"
	UnitStatusMaintenance = "maintenance"
)

// Tenant statuses.
const (
	TenantStatusActive = "active"
	TenantStatusPast   = "past"
	TenantStatusNotice = "notice"
)

// Maintenance request statuses and priorities.
const (
	MaintenanceStatusOpen       = "open"
	MaintenanceStatusInProgress = "in_progress"
	MaintenanceStatusResolved   = "resolved"

	MaintenancePriorityLow    = "low"
	MaintenancePriorityMedium = "medium"
	MaintenancePriorityHigh   = "high"
)

type User struct {
	ID                    string     `db:"id" json:"id"`
	Email                 string     `db:"email" json:"email"`
	PasswordHash          string     `db:"password_hash" json:"-"`
	Name                  string     `db:"name" json:"name"`
	EmailVerified         bool       `db:"email_verified" json:"emailVerified"`
	StripeCustomerID      *string    `db:"stripe_customer_id" json:"-"`
	SubscriptionStatus    string     `db:"subscription_status" json:"subscriptionStatus"`
	SubscriptionTier      string     `db:"subscription_tier" json:"subscriptionTier"`
	SubscriptionPeriodEnd *time.Time `db:"subscription_period_end" json:"subscriptionPeriodEnd"`
	CreatedAt             time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt             time.Time  `db:"updated_at" json:"updatedAt"`
}

type Property struct {
	ID        string    `db:"id" json:"id"`
	UserID    string    `db:"user_id" json:"userId"`
	Name      string    `db:"name" json:"name"`
	Address   *string   `db:"address" json:"address"`
	Notes     *string   `db:"notes" json:"notes"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

type Unit struct {
	ID         string          `db:"id" json:"id"`
	PropertyID string          `db:"property_id" json:"propertyId"`
	UnitNumber string          `db:"unit_number" json:"unitNumber"`
	RentAmount decimal.Decimal `db:"rent_amount" json:"rentAmount"`
	Status     string          `db:"status" json:"status"`
	CreatedAt  time.Time       `db:"created_at" json:"createdAt"`
	UpdatedAt  time.Time       `db:"updated_at" json:"updatedAt"`
}

// Tenant carries an explicit owner so tenants without an assigned unit
// stay reachable by exactly one user.
type Tenant struct {
	ID          string     `db:"id" json:"id"`
	UserID      string     `db:"user_id" json:"userId"`
	UnitID      *string    `db:"unit_id" json:"unitId"`
	Name        string     `db:"name" json:"name"`
	Email       *string    `db:"email" json:"email"`
	Phone       *string    `db:"phone" json:"phone"`
	LeaseStart  *time.Time `db:"lease_start" json:"leaseStart"`
	LeaseEnd    *time.Time `db:"lease_end" json:"leaseEnd"`
	Status      string     `db:"status" json:"status"`
	MoveOutDate *time.Time `db:"move_out_date" json:"moveOutDate"`
	Notes       *string    `db:"notes" json:"notes"`
	CreatedAt   time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time  `db:"updated_at" json:"updatedAt"`
}

type Payment struct {
	ID            string          `db:"id" json:"id"`
	TenantID      string          `db:"tenant_id" json:"tenantId"`
	Amount        decimal.Decimal `db:"amount" json:"amount"`
	PaymentDate   time.Time       `db:"payment_date" json:"paymentDate"`
	PaymentMethod *string         `db:"payment_method" json:"paymentMethod"`
	Notes         *string         `db:"notes" json:"notes"`
	CreatedAt     time.Time       `db:"created_at" json:"createdAt"`
}

type MaintenanceRequest struct {
	ID              string     `db:"id" json:"id"`
	UnitID          string     `db:"unit_id" json:"unitId"`
	Title           string     `db:"title" json:"title"`
	Description     string     `db:"description" json:"description"`
	Status          string     `db:"status" json:"status"`
	Priority        string     `db:"priority" json:"priority"`
	ResolutionNotes *string    `db:"resolution_notes" json:"resolutionNotes"`
	CreatedAt       time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt       time.Time  `db:"updated_at" json:"updatedAt"`
	ResolvedAt      *time.Time `db:"resolved_at" json:"resolvedAt"`
}

type Invoice struct {
	ID              string          `db:"id" json:"id"`
	UserID          string          `db:"user_id" json:"userId"`
	StripeInvoiceID string          `db:"stripe_invoice_id" json:"stripeInvoiceId"`
	Amount          decimal.Decimal `db:"amount" json:"amount"`
	Status          string          `db:"status" json:"status"`
	InvoiceURL      *string         `db:"invoice_url" json:"invoiceUrl"`
	CreatedAt       time.Time       `db:"created_at" json:"createdAt"`
}

type PasswordResetToken struct {
	ID        string    `db:"id"`
	UserID    string    `db:"user_id"`
	Token     string    `db:"token"`
	ExpiresAt time.Time `db:"expires_at"`
	Used      bool      `db:"used"`
	CreatedAt time.Time `db:"created_at"`
}

// Subscription is the caller-facing view of a user's ledger state.
type Subscription struct {
	Tier      string     `json:"tier"`
	Status    string     `json:"status"`
	PeriodEnd *time.Time `json:"periodEnd"`
}
