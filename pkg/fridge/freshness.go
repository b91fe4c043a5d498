package fridge

import (
	"math"
	"time"
)

// DaysNever is the days-until-expiry value for items with no expiry date.
// It sorts after every real expiry and always lands in the normal tier.
const DaysNever = math.MaxInt32

// Urgency tier thresholds in whole days.
const (
	urgentMaxDays = 2
	soonMaxDays   = 5
)

// Urgency tiers for display and ranking.
const (
	TierUrgent Tier = "urgent"
	TierSoon   Tier = "soon"
	TierNormal Tier = "normal"
)

// Tier is the freshness bucket of an item.
type Tier string

// Freshness computes days-until-expiry against a single captured "now".
// One Freshness value must be used for a whole suggestion-generation or
// display pass so rankings stay internally consistent across items.
type Freshness struct {
	now time.Time
}

// NewFreshness captures now as the reference instant for a pass.
func NewFreshness(now time.Time) Freshness {
	return Freshness{now: now}
}

// DaysUntil returns the whole days until expiry, rounded down. Negative
// for already-expired items, DaysNever when the expiry is absent.
func (f Freshness) DaysUntil(expiry *time.Time) int {
	if expiry == nil {
		return DaysNever
	}
	return int(math.Floor(expiry.Sub(f.now).Hours() / 24))
}

// Tier returns the urgency tier for the given expiry date.
func (f Freshness) Tier(expiry *time.Time) Tier {
	return TierForDays(f.DaysUntil(expiry))
}

// TierForDays buckets a days-until-expiry value: urgent at two days or
// less, soon at three to five, normal otherwise (including DaysNever).
func TierForDays(days int) Tier {
	switch {
	case days <= urgentMaxDays:
		return TierUrgent
	case days <= soonMaxDays:
		return TierSoon
	default:
		return TierNormal
	}
}
