package fridge

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/larderhq/larder/pkg/types"
)

var engineNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func engineShelves() []types.Shelf {
	return types.DefaultShelves()
}

func expiring(offsetDays int) *time.Time {
	d := engineNow.AddDate(0, 0, offsetDays)
	return &d
}

func testItem(id, shelfID, name string, unit types.Unit, qty float64, expiry *time.Time) types.Item {
	return types.Item{
		ID:         id,
		ShelfID:    shelfID,
		Name:       name,
		Unit:       unit,
		Quantity:   qty,
		ExpiryDate: expiry,
	}
}

func TestGenerateEmptyInventory(t *testing.T) {
	engine := NewEngine(engineShelves(), engineNow)

	assert.Empty(t, engine.Generate("anything", nil, nil))
	assert.Empty(t, engine.Generate("", []types.Item{}, []types.Condiment{}))
}

func TestGenerateExpiryPriorityFirst(t *testing.T) {
	engine := NewEngine(engineShelves(), engineNow)
	items := []types.Item{
		testItem("item-a", "shelf-1", "chicken", types.UnitGram, 400, expiring(1)),
		testItem("item-b", "shelf-5", "spinach", types.UnitBunch, 1, expiring(5)),
	}

	suggestions := engine.Generate("", items, nil)
	require.NotEmpty(t, suggestions)

	first := suggestions[0]
	assert.Equal(t, types.SuggestionExpiryPriority, first.Category)
	require.Len(t, first.Usage, 1)
	assert.Equal(t, "item-a", first.Usage[0].ItemID)
}

func TestGenerateSingleUrgentItem(t *testing.T) {
	// The milk sits on a shelf the engine does not know, so only the
	// expiry rule can fire.
	engine := NewEngine(engineShelves(), engineNow)
	items := []types.Item{
		testItem("item-milk", "chilled", "milk", types.UnitPiece, 1, expiring(1)),
	}
	condiments := []types.Condiment{
		{ID: "cond-1", Name: "soy sauce", Category: types.CondimentSauceVinegar, StockLevel: types.StockSufficient},
	}

	suggestions := engine.Generate("", items, condiments)
	require.Len(t, suggestions, 1)

	s := suggestions[0]
	assert.Equal(t, types.SuggestionExpiryPriority, s.Category)
	require.Len(t, s.Usage, 1)
	assert.Equal(t, "item-milk", s.Usage[0].ItemID)
	assert.Equal(t, 1.0, s.Usage[0].Quantity)
	assert.Equal(t, []string{"soy sauce"}, s.RecommendedCondiments)
}

func TestExpiryRuleCapsAndOrder(t *testing.T) {
	engine := NewEngine(engineShelves(), engineNow)
	items := []types.Item{
		testItem("item-1", "shelf-1", "pork", types.UnitGram, 800, expiring(2)),
		testItem("item-2", "shelf-1", "tofu", types.UnitPiece, 4, expiring(0)),
		testItem("item-3", "shelf-5", "greens", types.UnitBunch, 2, expiring(1)),
		testItem("item-4", "shelf-1", "cream", types.UnitMilliliter, 500, expiring(1)),
		testItem("item-5", "shelf-2", "cheese", types.UnitPiece, 1, expiring(9)),
	}

	suggestions := engine.Generate("", items, nil)
	require.NotEmpty(t, suggestions)
	s := suggestions[0]
	require.Equal(t, types.SuggestionExpiryPriority, s.Category)

	// Three closest to expiry, ascending; ties keep input order.
	require.Len(t, s.Usage, 3)
	assert.Equal(t, "item-2", s.Usage[0].ItemID)
	assert.Equal(t, "item-3", s.Usage[1].ItemID)
	assert.Equal(t, "item-4", s.Usage[2].ItemID)

	// Count-style units use full quantity, milliliters too; only grams cap.
	assert.Equal(t, 4.0, s.Usage[0].Quantity)
	assert.Equal(t, 2.0, s.Usage[1].Quantity)
	assert.Equal(t, 500.0, s.Usage[2].Quantity)
}

func TestExpiryRuleGramCap(t *testing.T) {
	engine := NewEngine(engineShelves(), engineNow)
	items := []types.Item{
		testItem("item-1", "shelf-1", "pork", types.UnitGram, 800, expiring(1)),
	}

	suggestions := engine.Generate("", items, nil)
	require.NotEmpty(t, suggestions)
	require.Equal(t, types.SuggestionExpiryPriority, suggestions[0].Category)
	assert.Equal(t, 250.0, suggestions[0].Usage[0].Quantity)
}

func TestQuickRulePairsChilledWithProduce(t *testing.T) {
	engine := NewEngine(engineShelves(), engineNow)
	items := []types.Item{
		testItem("item-1", "shelf-1", "salmon", types.UnitGram, 600, expiring(4)),
		testItem("item-2", "shelf-5", "lettuce", types.UnitBunch, 2, expiring(3)),
	}

	suggestions := engine.Generate("", items, nil)
	require.Len(t, suggestions, 1)

	s := suggestions[0]
	assert.Equal(t, types.SuggestionQuick, s.Category)
	require.Len(t, s.Usage, 2)
	assert.Equal(t, "item-1", s.Usage[0].ItemID)
	assert.Equal(t, 200.0, s.Usage[0].Quantity) // measured quantities cap
	assert.Equal(t, "item-2", s.Usage[1].ItemID)
	assert.Equal(t, 1.0, s.Usage[1].Quantity) // count-style uses one
}

func TestQuickRuleSlimmingIntentBecomesCustom(t *testing.T) {
	engine := NewEngine(engineShelves(), engineNow)
	items := []types.Item{
		testItem("item-1", "shelf-1", "chicken", types.UnitGram, 300, expiring(4)),
	}

	tests := []struct {
		name   string
		intent string
		want   types.SuggestionCategory
	}{
		{name: "plain intent stays quick", intent: "something for dinner", want: types.SuggestionQuick},
		{name: "empty intent stays quick", intent: "", want: types.SuggestionQuick},
		{name: "slimming keyword switches", intent: "a slim dinner please", want: types.SuggestionCustom},
		{name: "diet keyword switches", intent: "DIET friendly", want: types.SuggestionCustom},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			suggestions := engine.Generate(tt.intent, items, nil)
			require.Len(t, suggestions, 1)
			assert.Equal(t, tt.want, suggestions[0].Category)
		})
	}
}

func TestThawBraiseRule(t *testing.T) {
	engine := NewEngine(engineShelves(), engineNow)

	t.Run("bagged frozen item uses one bag", func(t *testing.T) {
		items := []types.Item{
			testItem("item-1", "shelf-4", "shrimp", types.UnitBag, 3, nil),
		}
		suggestions := engine.Generate("", items, nil)
		require.Len(t, suggestions, 1)
		assert.Equal(t, types.SuggestionThawBraise, suggestions[0].Category)
		assert.Equal(t, 1.0, suggestions[0].Usage[0].Quantity)
	})

	t.Run("measured frozen item caps", func(t *testing.T) {
		items := []types.Item{
			testItem("item-1", "shelf-4", "beef", types.UnitGram, 900, nil),
		}
		suggestions := engine.Generate("", items, nil)
		require.Len(t, suggestions, 1)
		assert.Equal(t, 300.0, suggestions[0].Usage[0].Quantity)
	})
}

func TestCondimentRecommendations(t *testing.T) {
	engine := NewEngine(engineShelves(), engineNow)
	condiments := []types.Condiment{
		{ID: "cond-1", Name: "soy sauce", StockLevel: types.StockSufficient},
		{ID: "cond-2", Name: "oyster sauce", StockLevel: types.StockNearExpiry},
		{ID: "cond-3", Name: "peanut oil", StockLevel: types.StockOut},
		{ID: "cond-4", Name: "black pepper", StockLevel: types.StockSufficient},
		{ID: "cond-5", Name: "rice vinegar", StockLevel: types.StockSufficient},
	}
	items := []types.Item{
		testItem("item-1", "shelf-1", "chicken", types.UnitGram, 300, expiring(1)),
		testItem("item-2", "shelf-4", "dumplings", types.UnitBag, 2, nil),
	}

	suggestions := engine.Generate("", items, condiments)
	require.Len(t, suggestions, 3)

	// Out-of-stock condiments never appear.
	assert.Equal(t, []string{"soy sauce", "oyster sauce", "black pepper"}, suggestions[0].RecommendedCondiments)
	assert.Equal(t, []string{"soy sauce", "oyster sauce"}, suggestions[1].RecommendedCondiments)
	// The braise rule starts at the second available condiment.
	assert.Equal(t, []string{"oyster sauce", "black pepper", "rice vinegar"}, suggestions[2].RecommendedCondiments)
}

func TestGenerateDeterministic(t *testing.T) {
	engine := NewEngine(engineShelves(), engineNow)
	items := []types.Item{
		testItem("item-1", "shelf-1", "chicken", types.UnitGram, 300, expiring(1)),
		testItem("item-2", "shelf-5", "bok choy", types.UnitBunch, 2, expiring(4)),
	}

	first := engine.Generate("dinner", items, nil)
	second := engine.Generate("dinner", items, nil)

	require.Equal(t, len(first), len(second))
	for i := range first {
		// IDs are fresh per call; everything else must match exactly.
		first[i].ID = ""
		second[i].ID = ""
		assert.Equal(t, first[i], second[i])
	}
}
