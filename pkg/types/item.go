package types

import "time"

// Measurement units. The enumeration is fixed; quantities are always
// expressed in one of these units.
const (
	UnitPiece      Unit = "piece"
	UnitGram       Unit = "gram"
	UnitMilliliter Unit = "milliliter"
	UnitBunch      Unit = "bunch"
	UnitBag        Unit = "bag"
)

// Unit is the measurement unit of an item quantity.
type Unit string

// Units lists every recognized measurement unit.
var Units = []Unit{UnitPiece, UnitGram, UnitMilliliter, UnitBunch, UnitBag}

// countUnits are units counted in whole pieces rather than measured out.
var countUnits = map[Unit]bool{
	UnitPiece: true,
	UnitBunch: true,
	UnitBag:   true,
}

// Valid reports whether the unit is one of the recognized values.
func (u Unit) Valid() bool {
	for _, known := range Units {
		if u == known {
			return true
		}
	}
	return false
}

// Countable reports whether the unit is count-style (piece, bunch, bag)
// as opposed to measured-style (gram, milliliter).
func (u Unit) Countable() bool {
	return countUnits[u]
}

// Weight reports whether the unit is weight-style. Only gram quantities
// are capped by weight in suggestion usage.
func (u Unit) Weight() bool {
	return u == UnitGram
}

// Item represents a quantified stored ingredient owned by a shelf.
// ID and ShelfID are immutable after creation; every other field is
// mutable through the store.
type Item struct {
	ID         string     `json:"id"`
	ShelfID    string     `json:"shelfId"`
	Name       string     `json:"name"`
	Unit       Unit       `json:"unit"`
	Quantity   float64    `json:"qty"`
	ExpiryDate *time.Time `json:"expDate,omitempty"`
	Barcode    string     `json:"barcode,omitempty"`
	PhotoRef   string     `json:"photoRef,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

// AddItemInput carries the caller-supplied fields for item creation.
// The store assigns the ID and timestamps.
type AddItemInput struct {
	ShelfID    string
	Name       string
	Unit       Unit
	Quantity   float64
	ExpiryDate *time.Time
	Barcode    string
	PhotoRef   string
}

// ItemChanges is a partial update for an item. Nil fields are left
// unchanged. ClearExpiry removes the expiry date; it wins over ExpiryDate
// when both are set. ID and ShelfID cannot be changed.
type ItemChanges struct {
	Name        *string
	Unit        *Unit
	Quantity    *float64
	ExpiryDate  *time.Time
	ClearExpiry bool
	Barcode     *string
	PhotoRef    *string
}
