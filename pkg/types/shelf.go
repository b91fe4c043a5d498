package types

// Shelf categories. A shelf holds items under one storage regime.
const (
	ShelfChilled ShelfCategory = "chilled"
	ShelfFrozen  ShelfCategory = "frozen"
	ShelfProduce ShelfCategory = "produce"
)

// ShelfCategory is the storage regime of a shelf.
type ShelfCategory string

// validShelfCategories is the set of recognized shelf categories.
var validShelfCategories = map[ShelfCategory]bool{
	ShelfChilled: true,
	ShelfFrozen:  true,
	ShelfProduce: true,
}

// Valid reports whether the category is one of the recognized values.
func (c ShelfCategory) Valid() bool {
	return validShelfCategories[c]
}

// Shelf represents a named storage location. The effective display and
// iteration order of a shelf set is SortOrder ascending.
type Shelf struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	SortOrder int           `json:"sort"`
	Category  ShelfCategory `json:"type"`
}

// defaultShelves is the fixed shelf configuration used on first start and
// restored by a shelf reset. IDs are stable so items survive a reset.
var defaultShelves = []Shelf{
	{ID: "shelf-1", Name: "Chiller Shelf 1", SortOrder: 1, Category: ShelfChilled},
	{ID: "shelf-2", Name: "Chiller Shelf 2", SortOrder: 2, Category: ShelfChilled},
	{ID: "shelf-3", Name: "Chiller Shelf 3", SortOrder: 3, Category: ShelfChilled},
	{ID: "shelf-4", Name: "Freezer Drawer", SortOrder: 4, Category: ShelfFrozen},
	{ID: "shelf-5", Name: "Produce Crisper", SortOrder: 5, Category: ShelfProduce},
}

// DefaultShelves returns a fresh copy of the fixed default shelf set.
func DefaultShelves() []Shelf {
	shelves := make([]Shelf, len(defaultShelves))
	copy(shelves, defaultShelves)
	return shelves
}
