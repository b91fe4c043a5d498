package types

// Condiment categories.
const (
	CondimentSauceVinegar CondimentCategory = "sauce-vinegar"
	CondimentSpice        CondimentCategory = "spice"
	CondimentOilFat       CondimentCategory = "oil-fat"
	CondimentOther        CondimentCategory = "other"
)

// CondimentCategory groups condiments for display.
type CondimentCategory string

var validCondimentCategories = map[CondimentCategory]bool{
	CondimentSauceVinegar: true,
	CondimentSpice:        true,
	CondimentOilFat:       true,
	CondimentOther:        true,
}

// Valid reports whether the category is one of the recognized values.
func (c CondimentCategory) Valid() bool {
	return validCondimentCategories[c]
}

// Stock levels. A condiment's stock is a qualitative tag; no quantity
// arithmetic is applied to condiments.
const (
	StockSufficient StockLevel = "sufficient"
	StockOut        StockLevel = "out-of-stock"
	StockNearExpiry StockLevel = "near-expiry"
)

// StockLevel is the qualitative stock tag of a condiment.
type StockLevel string

var validStockLevels = map[StockLevel]bool{
	StockSufficient: true,
	StockOut:        true,
	StockNearExpiry: true,
}

// Valid reports whether the stock level is one of the recognized values.
func (l StockLevel) Valid() bool {
	return validStockLevels[l]
}

// Condiment represents a seasoning or staple tracked independently of
// shelves.
type Condiment struct {
	ID         string            `json:"id"`
	Name       string            `json:"name"`
	Category   CondimentCategory `json:"category"`
	StockLevel StockLevel        `json:"stockLevel"`
	Note       string            `json:"note,omitempty"`
}

// AddCondimentInput carries the caller-supplied fields for condiment
// creation. The store assigns the ID.
type AddCondimentInput struct {
	Name       string
	Category   CondimentCategory
	StockLevel StockLevel
	Note       string
}

// CondimentChanges is a partial update for a condiment. Nil fields are
// left unchanged. ID cannot be changed.
type CondimentChanges struct {
	Name       *string
	Category   *CondimentCategory
	StockLevel *StockLevel
	Note       *string
}
