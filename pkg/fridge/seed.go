package fridge

import (
	"time"

	"github.com/larderhq/larder/pkg/types"
)

// sampleItem describes a demo item seeded relative to the current time.
type sampleItem struct {
	shelfID    string
	name       string
	unit       types.Unit
	quantity   float64
	expiryDays int // days from now; negative means no expiry
}

// sampleItems is the demo inventory: something urgent, something fresh,
// something frozen without a date.
var sampleItems = []sampleItem{
	{shelfID: "shelf-1", name: "chicken breast", unit: types.UnitGram, quantity: 450, expiryDays: 2},
	{shelfID: "shelf-2", name: "yogurt", unit: types.UnitPiece, quantity: 3, expiryDays: 4},
	{shelfID: "shelf-5", name: "baby bok choy", unit: types.UnitBunch, quantity: 2, expiryDays: 1},
	{shelfID: "shelf-4", name: "frozen shrimp", unit: types.UnitBag, quantity: 1, expiryDays: -1},
}

var sampleCondiments = []types.AddCondimentInput{
	{Name: "light soy sauce", Category: types.CondimentSauceVinegar, StockLevel: types.StockSufficient},
	{Name: "oyster sauce", Category: types.CondimentSauceVinegar, StockLevel: types.StockNearExpiry, Note: "use within the week"},
	{Name: "cracked black pepper", Category: types.CondimentSpice, StockLevel: types.StockSufficient},
	{Name: "peanut oil", Category: types.CondimentOilFat, StockLevel: types.StockOut},
}

// SeedSample loads the demo inventory through normal store operations.
// Items whose shelf is missing (a non-default shelf set) are skipped, the
// same as any add against an unknown shelf.
func SeedSample(store *Store) {
	now := time.Now()
	for _, si := range sampleItems {
		in := types.AddItemInput{
			ShelfID:  si.shelfID,
			Name:     si.name,
			Unit:     si.unit,
			Quantity: si.quantity,
		}
		if si.expiryDays >= 0 {
			expiry := now.AddDate(0, 0, si.expiryDays)
			in.ExpiryDate = &expiry
		}
		store.AddItem(in)
	}
	for _, in := range sampleCondiments {
		store.AddCondiment(in)
	}
}
