package fridge

import (
	"github.com/shopspring/decimal"

	"github.com/larderhq/larder/pkg/types"
)

// quantityScale is the decimal precision kept on item quantities after a
// consumption decrement.
const quantityScale = 2

// ApplySummary reports what a consumption pass did.
type ApplySummary struct {
	Updated int // items decremented and kept
	Removed int // items consumed to zero and removed
	Skipped int // usage entries whose item was already gone
}

// Applier applies an accepted suggestion's usage list back against the
// store's item collection.
type Applier struct {
	store *Store
}

// NewApplier returns an applier bound to the given store.
func NewApplier(store *Store) *Applier {
	return &Applier{store: store}
}

// Apply processes the usage entries independently and in order. A missing
// item is skipped without aborting the rest; each single-item decrement is
// one atomic store operation. Quantities never go negative: a decrement
// past zero removes the item.
func (a *Applier) Apply(usage []types.Usage) ApplySummary {
	var summary ApplySummary
	for _, u := range usage {
		switch a.store.consume(u.ItemID, u.Quantity) {
		case consumeUpdated:
			summary.Updated++
		case consumeRemoved:
			summary.Removed++
		default:
			summary.Skipped++
		}
	}
	return summary
}

type consumeOutcome int

const (
	consumeMissing consumeOutcome = iota
	consumeUpdated
	consumeRemoved
)

// consume decrements one item's quantity by the given amount under the
// store lock. The remainder is rounded to quantityScale decimal places; a
// remainder at or below zero removes the item.
func (s *Store) consume(itemID string, quantity float64) consumeOutcome {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := indexOfItem(s.items, itemID)
	if idx < 0 {
		return consumeMissing
	}

	remainder := decimal.NewFromFloat(s.items[idx].Quantity).
		Sub(decimal.NewFromFloat(quantity)).
		Round(quantityScale)
	if remainder.Sign() <= 0 {
		s.items = append(s.items[:idx], s.items[idx+1:]...)
		s.persist()
		return consumeRemoved
	}

	s.items[idx].Quantity = remainder.InexactFloat64()
	s.items[idx].UpdatedAt = s.now()
	s.persist()
	return consumeUpdated
}
