// Copyright 2026 LandlordOS Ltd
// SPDX-License-Identifier: AGPL-3.0

package billing

import (
	"github.com/landlordos/property-service/internal/types"
)

// PropertyLimitUnlimited disables the property cap for a tier.
const PropertyLimitUnlimited int64 = -1

// PropertyLimitForTier returns how many properties a subscription tier
// may hold. Unknown tiers get the free allowance.
func PropertyLimitForTier(tier string) int64 {
	switch tier {
	case types.TierPro:
		return PropertyLimitUnlimited
	case types.TierStarter:
		return 10
	default:
		return 2
	}
}

// PriceTable maps provider price IDs to subscription tiers.
type PriceTable struct {
	Starter string
	Pro     string
}

// TierForPrice resolves a provider price ID to a tier. Prices the table
// does not know map to the free tier.
func (p PriceTable) TierForPrice(priceID string) string {
	switch priceID {
	case p.Starter:
		return types.TierStarter
	case p.Pro:
		return types.TierPro
	default:
		return types.TierFree
	}
}

// PriceForTier is the inverse lookup used when starting a checkout.
func (p PriceTable) PriceForTier(tier string) (string, bool) {
	switch tier {
	case types.TierStarter:
		return p.Starter, true
	case types.TierPro:
		return p.Pro, true
	default:
		return "", false
	}
}
