package fridge

import (
	"encoding/json"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/larderhq/larder/pkg/types"
)

// SnapshotKey is the fixed storage key the full state snapshot is
// serialized under.
const SnapshotKey = "larder/state"

// Snapshot is the serialized form of the complete store state.
type Snapshot struct {
	Shelves         []types.Shelf     `json:"shelves"`
	Items           []types.Item      `json:"items"`
	Condiments      []types.Condiment `json:"condiments"`
	SelectedShelfID string            `json:"selectedShelfId"`
	LastSyncAt      *time.Time        `json:"lastSyncAt"`
}

// Store owns the shelf, item, and condiment collections and the current
// shelf selection. Every mutation runs to completion under one mutex, so
// no reader ever observes partial state, and persists the full snapshot
// best-effort: a storage failure never blocks or corrupts the in-memory
// mutation.
type Store struct {
	mu      sync.Mutex
	storage types.Storage

	shelves         []types.Shelf
	items           []types.Item
	condiments      []types.Condiment
	selectedShelfID string
	lastSyncAt      *time.Time

	now func() time.Time
}

// New creates a store backed by the given storage. The snapshot under
// SnapshotKey is loaded if present and well-formed; otherwise the default
// shelf set is seeded with empty items and condiments and the first shelf
// selected. A nil storage keeps the store purely in-memory.
func New(storage types.Storage) *Store {
	s := &Store{
		storage: storage,
		now:     time.Now,
	}
	s.seedDefaults()
	s.loadSnapshot()
	return s
}

// seedDefaults resets state to the documented defaults.
func (s *Store) seedDefaults() {
	s.shelves = types.DefaultShelves()
	s.items = nil
	s.condiments = nil
	s.selectedShelfID = s.shelves[0].ID
	s.lastSyncAt = nil
}

// loadSnapshot replaces the default state with the persisted snapshot when
// one exists and decodes to a usable shelf set. Malformed or missing data
// leaves the defaults in place.
func (s *Store) loadSnapshot() {
	if s.storage == nil {
		return
	}
	raw, err := s.storage.Get(SnapshotKey)
	if err != nil {
		return
	}
	var snap Snapshot
	if err := json.Unmarshal([]byte(raw), &snap); err != nil {
		return
	}
	if len(snap.Shelves) == 0 {
		return
	}

	s.shelves = snap.Shelves
	sortShelves(s.shelves)
	s.items = pruneOrphans(snap.Items, s.shelves)
	for i := range s.items {
		if s.items[i].Quantity < 0 {
			s.items[i].Quantity = 0
		}
	}
	s.condiments = snap.Condiments
	s.selectedShelfID = snap.SelectedShelfID
	if !hasShelf(s.shelves, s.selectedShelfID) {
		s.selectedShelfID = s.shelves[0].ID
	}
	s.lastSyncAt = snap.LastSyncAt
}

// persist writes the full snapshot under SnapshotKey. Storage failures are
// swallowed; in-memory state stays authoritative and LastSyncAt only
// advances on a successful write. Callers must hold s.mu.
func (s *Store) persist() {
	if s.storage == nil {
		return
	}
	syncedAt := s.now()
	snap := Snapshot{
		Shelves:         s.shelves,
		Items:           s.items,
		Condiments:      s.condiments,
		SelectedShelfID: s.selectedShelfID,
		LastSyncAt:      &syncedAt,
	}
	raw, err := json.Marshal(snap)
	if err != nil {
		return
	}
	if err := s.storage.Set(SnapshotKey, string(raw)); err != nil {
		return
	}
	s.lastSyncAt = &syncedAt
}

// SelectShelf makes the given shelf the current selection. Selecting an
// unknown shelf is a no-op and returns false.
func (s *Store) SelectShelf(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !hasShelf(s.shelves, id) {
		return false
	}
	s.selectedShelfID = id
	s.persist()
	return true
}

// ReplaceShelves swaps in a new shelf set, sorted by SortOrder ascending
// with duplicate IDs dropped (first occurrence wins). The current
// selection is kept if still present, otherwise the first shelf is
// selected. Items whose shelf vanished are removed so every item keeps a
// valid shelf reference.
func (s *Store) ReplaceShelves(shelves []types.Shelf) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]types.Shelf, 0, len(shelves))
	seen := make(map[string]bool, len(shelves))
	for _, shelf := range shelves {
		if seen[shelf.ID] {
			continue
		}
		seen[shelf.ID] = true
		next = append(next, shelf)
	}
	sortShelves(next)

	s.shelves = next
	s.items = pruneOrphans(s.items, next)
	if !hasShelf(next, s.selectedShelfID) {
		s.selectedShelfID = ""
		if len(next) > 0 {
			s.selectedShelfID = next[0].ID
		}
	}
	s.persist()
}

// ResetShelves restores the fixed default shelf set and selects its first
// entry. Items on shelves that exist in the default set survive the reset.
func (s *Store) ResetShelves() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.shelves = types.DefaultShelves()
	s.items = pruneOrphans(s.items, s.shelves)
	s.selectedShelfID = s.shelves[0].ID
	s.persist()
}

// AddItem creates an item from the input, assigning a fresh ID and
// creation timestamps. A negative quantity clamps to zero. Returns false
// without mutating when the input references an unknown shelf.
func (s *Store) AddItem(in types.AddItemInput) (types.Item, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !hasShelf(s.shelves, in.ShelfID) {
		return types.Item{}, false
	}
	now := s.now()
	item := types.Item{
		ID:         newID("item"),
		ShelfID:    in.ShelfID,
		Name:       in.Name,
		Unit:       in.Unit,
		Quantity:   clampQuantity(in.Quantity),
		ExpiryDate: in.ExpiryDate,
		Barcode:    in.Barcode,
		PhotoRef:   in.PhotoRef,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	s.items = append(s.items, item)
	s.persist()
	return item, true
}

// UpdateItem merges the given changes into the item and refreshes its
// UpdatedAt. ID and ShelfID are never altered. Updating an absent ID is a
// no-op and returns false.
func (s *Store) UpdateItem(id string, changes types.ItemChanges) (types.Item, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := indexOfItem(s.items, id)
	if idx < 0 {
		return types.Item{}, false
	}
	item := &s.items[idx]
	if changes.Name != nil {
		item.Name = *changes.Name
	}
	if changes.Unit != nil {
		item.Unit = *changes.Unit
	}
	if changes.Quantity != nil {
		item.Quantity = clampQuantity(*changes.Quantity)
	}
	switch {
	case changes.ClearExpiry:
		item.ExpiryDate = nil
	case changes.ExpiryDate != nil:
		item.ExpiryDate = changes.ExpiryDate
	}
	if changes.Barcode != nil {
		item.Barcode = *changes.Barcode
	}
	if changes.PhotoRef != nil {
		item.PhotoRef = *changes.PhotoRef
	}
	item.UpdatedAt = s.now()
	s.persist()
	return *item, true
}

// RemoveItem deletes the item with the given ID. Removing an absent ID is
// a no-op; removal is idempotent.
func (s *Store) RemoveItem(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := indexOfItem(s.items, id)
	if idx < 0 {
		return
	}
	s.items = append(s.items[:idx], s.items[idx+1:]...)
	s.persist()
}

// AddCondiment creates a condiment from the input, assigning a fresh ID.
func (s *Store) AddCondiment(in types.AddCondimentInput) types.Condiment {
	s.mu.Lock()
	defer s.mu.Unlock()

	condiment := types.Condiment{
		ID:         newID("cond"),
		Name:       in.Name,
		Category:   in.Category,
		StockLevel: in.StockLevel,
		Note:       in.Note,
	}
	s.condiments = append(s.condiments, condiment)
	s.persist()
	return condiment
}

// UpdateCondiment merges the given changes into the condiment. Updating an
// absent ID is a no-op and returns false.
func (s *Store) UpdateCondiment(id string, changes types.CondimentChanges) (types.Condiment, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := indexOfCondiment(s.condiments, id)
	if idx < 0 {
		return types.Condiment{}, false
	}
	condiment := &s.condiments[idx]
	if changes.Name != nil {
		condiment.Name = *changes.Name
	}
	if changes.Category != nil {
		condiment.Category = *changes.Category
	}
	if changes.StockLevel != nil {
		condiment.StockLevel = *changes.StockLevel
	}
	if changes.Note != nil {
		condiment.Note = *changes.Note
	}
	s.persist()
	return *condiment, true
}

// RemoveCondiment deletes the condiment with the given ID. Removing an
// absent ID is a no-op.
func (s *Store) RemoveCondiment(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := indexOfCondiment(s.condiments, id)
	if idx < 0 {
		return
	}
	s.condiments = append(s.condiments[:idx], s.condiments[idx+1:]...)
	s.persist()
}

// Shelves returns a copy of the shelf set in display order.
func (s *Store) Shelves() []types.Shelf {
	s.mu.Lock()
	defer s.mu.Unlock()

	shelves := make([]types.Shelf, len(s.shelves))
	copy(shelves, s.shelves)
	return shelves
}

// Items returns a copy of all items in insertion order.
func (s *Store) Items() []types.Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]types.Item, len(s.items))
	copy(items, s.items)
	return items
}

// ItemsOnShelf returns a copy of the items owned by the given shelf.
func (s *Store) ItemsOnShelf(shelfID string) []types.Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	var items []types.Item
	for _, item := range s.items {
		if item.ShelfID == shelfID {
			items = append(items, item)
		}
	}
	return items
}

// Condiments returns a copy of all condiments in insertion order.
func (s *Store) Condiments() []types.Condiment {
	s.mu.Lock()
	defer s.mu.Unlock()

	condiments := make([]types.Condiment, len(s.condiments))
	copy(condiments, s.condiments)
	return condiments
}

// SelectedShelfID returns the ID of the currently selected shelf, or the
// empty string when no shelf exists.
func (s *Store) SelectedShelfID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selectedShelfID
}

// Snapshot returns a copy of the complete store state.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		Shelves:         make([]types.Shelf, len(s.shelves)),
		Items:           make([]types.Item, len(s.items)),
		Condiments:      make([]types.Condiment, len(s.condiments)),
		SelectedShelfID: s.selectedShelfID,
		LastSyncAt:      s.lastSyncAt,
	}
	copy(snap.Shelves, s.shelves)
	copy(snap.Items, s.items)
	copy(snap.Condiments, s.condiments)
	return snap
}

// newID returns a prefixed UUID v7 identifier.
func newID(prefix string) string {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return prefix + "-" + id.String()
}

func clampQuantity(q float64) float64 {
	if q < 0 {
		return 0
	}
	return q
}

func sortShelves(shelves []types.Shelf) {
	sort.SliceStable(shelves, func(i, j int) bool {
		return shelves[i].SortOrder < shelves[j].SortOrder
	})
}

func hasShelf(shelves []types.Shelf, id string) bool {
	for _, shelf := range shelves {
		if shelf.ID == id {
			return true
		}
	}
	return false
}

// pruneOrphans drops items whose shelf is not in the given set.
func pruneOrphans(items []types.Item, shelves []types.Shelf) []types.Item {
	kept := items[:0:0]
	for _, item := range items {
		if hasShelf(shelves, item.ShelfID) {
			kept = append(kept, item)
		}
	}
	return kept
}

func indexOfItem(items []types.Item, id string) int {
	for i, item := range items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

func indexOfCondiment(condiments []types.Condiment, id string) int {
	for i, condiment := range condiments {
		if condiment.ID == id {
			return i
		}
	}
	return -1
}
