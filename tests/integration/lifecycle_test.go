// Package integration exercises the full stack end to end: SQLite storage,
// the in-memory store, seeding, suggestion generation, and applying an
// accepted suggestion back against inventory.
package integration

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/larderhq/larder/internal/sqlite"
	"github.com/larderhq/larder/pkg/fridge"
	"github.com/larderhq/larder/pkg/types"
)

// openStore opens a store over a SQLite file under dir.
func openStore(t *testing.T, dir string) (*fridge.Store, *sqlite.Storage) {
	t.Helper()
	storage, err := sqlite.Open(filepath.Join(dir, "larder.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	return fridge.New(storage), storage
}

func TestSeededLifecycle(t *testing.T) {
	dir := t.TempDir()
	store, storage := openStore(t, dir)

	fridge.SeedSample(store)

	if got := len(store.Shelves()); got != 5 {
		t.Fatalf("expected 5 default shelves, got %d", got)
	}
	if got := len(store.Items()); got != 4 {
		t.Fatalf("expected 4 seeded items, got %d", got)
	}
	if got := len(store.Condiments()); got != 4 {
		t.Fatalf("expected 4 seeded condiments, got %d", got)
	}

	chat := fridge.NewLocalChat(store)
	resp, err := chat.Chat(context.Background(), "", store.Items(), store.Condiments())
	if err != nil {
		t.Fatalf("Chat: %v", err)
	}
	if len(resp.Suggestions) != 3 {
		t.Fatalf("expected 3 suggestions from the seeded inventory, got %d", len(resp.Suggestions))
	}

	// The first suggestion uses the most urgent items. Accept it and
	// verify the usage comes back off the shelves.
	first := resp.Suggestions[0]
	if first.Category != types.SuggestionExpiryPriority {
		t.Fatalf("expected expiry-priority suggestion first, got %s", first.Category)
	}

	applier := fridge.NewApplier(store)
	summary := applier.Apply(first.Usage)
	if summary.Skipped != 0 {
		t.Fatalf("no usage entry should be skipped, got %d skipped", summary.Skipped)
	}
	if summary.Updated+summary.Removed != len(first.Usage) {
		t.Fatalf("every usage entry should update or remove an item: %+v", summary)
	}

	// The bok choy was used in full; the chicken breast only partially.
	remaining := store.Items()
	for _, item := range remaining {
		if item.Name == "baby bok choy" {
			t.Fatalf("fully consumed item still present: %+v", item)
		}
		if item.Name == "chicken breast" && item.Quantity != 200 {
			t.Fatalf("expected chicken breast at 200g after applying, got %v", item.Quantity)
		}
	}

	if store.Snapshot().LastSyncAt == nil {
		t.Fatal("expected LastSyncAt to be set after successful persistence")
	}

	// Reopen the store over the same file; the applied state must survive.
	if err := storage.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	reopened, storage2 := openStore(t, dir)
	defer storage2.Close()

	if got := len(reopened.Items()); got != len(remaining) {
		t.Fatalf("expected %d items after reload, got %d", len(remaining), got)
	}
	if got := len(reopened.Condiments()); got != 4 {
		t.Fatalf("expected 4 condiments after reload, got %d", got)
	}
}

func TestShelfManagementAcrossReload(t *testing.T) {
	dir := t.TempDir()
	store, storage := openStore(t, dir)

	custom := []types.Shelf{
		{ID: "top", Name: "Top Shelf", SortOrder: 1, Category: types.ShelfChilled},
		{ID: "freezer", Name: "Freezer", SortOrder: 2, Category: types.ShelfFrozen},
	}
	store.ReplaceShelves(custom)

	if _, ok := store.AddItem(types.AddItemInput{
		ShelfID: "top", Name: "butter", Unit: types.UnitPiece, Quantity: 1,
	}); !ok {
		t.Fatal("AddItem on a custom shelf should succeed")
	}
	if !store.SelectShelf("freezer") {
		t.Fatal("SelectShelf on a custom shelf should succeed")
	}

	if err := storage.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	reopened, storage2 := openStore(t, dir)
	defer storage2.Close()

	if got := len(reopened.Shelves()); got != 2 {
		t.Fatalf("expected 2 custom shelves after reload, got %d", got)
	}
	if got := reopened.SelectedShelfID(); got != "freezer" {
		t.Fatalf("expected selection to survive reload, got %q", got)
	}
	items := reopened.ItemsOnShelf("top")
	if len(items) != 1 || items[0].Name != "butter" {
		t.Fatalf("expected butter on the top shelf after reload, got %+v", items)
	}

	// Reset restores the default shelf set and prunes items on vanished
	// shelves.
	reopened.ResetShelves()
	if got := len(reopened.Shelves()); got != 5 {
		t.Fatalf("expected 5 shelves after reset, got %d", got)
	}
	if got := len(reopened.Items()); got != 0 {
		t.Fatalf("expected items on custom shelves pruned after reset, got %d", got)
	}
}

func TestCondimentLifecycleAcrossReload(t *testing.T) {
	dir := t.TempDir()
	store, storage := openStore(t, dir)

	c := store.AddCondiment(types.AddCondimentInput{
		Name:       "rice vinegar",
		Category:   types.CondimentSauceVinegar,
		StockLevel: types.StockSufficient,
	})

	level := types.StockOut
	if _, ok := store.UpdateCondiment(c.ID, types.CondimentChanges{StockLevel: &level}); !ok {
		t.Fatal("UpdateCondiment on an existing condiment should succeed")
	}

	if err := storage.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	reopened, storage2 := openStore(t, dir)
	defer storage2.Close()

	condiments := reopened.Condiments()
	if len(condiments) != 1 {
		t.Fatalf("expected 1 condiment after reload, got %d", len(condiments))
	}
	if condiments[0].StockLevel != types.StockOut {
		t.Fatalf("expected out-of-stock after reload, got %s", condiments[0].StockLevel)
	}
}
