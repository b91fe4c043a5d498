// Item commands: add, list, update, remove.
package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/larderhq/larder/pkg/fridge"
	"github.com/larderhq/larder/pkg/types"
)

// expiryFlagLayout is the date format accepted by --expires.
const expiryFlagLayout = "2006-01-02"

var itemCmd = &cobra.Command{
	Use:   "item",
	Short: "Manage inventory items",
}

var (
	itemShelf    string
	itemName     string
	itemUnit     string
	itemQuantity float64
	itemExpires  string
	itemBarcode  string
	itemClearExp bool
)

func init() {
	itemAddCmd.Flags().StringVar(&itemShelf, "shelf", "", "shelf ID (default: selected shelf)")
	itemAddCmd.Flags().StringVar(&itemName, "name", "", "item name (required)")
	itemAddCmd.Flags().StringVar(&itemUnit, "unit", string(types.UnitPiece), "measurement unit (piece, gram, milliliter, bunch, bag)")
	itemAddCmd.Flags().Float64Var(&itemQuantity, "qty", 1, "quantity")
	itemAddCmd.Flags().StringVar(&itemExpires, "expires", "", "expiry date (YYYY-MM-DD)")
	itemAddCmd.Flags().StringVar(&itemBarcode, "barcode", "", "barcode")
	_ = itemAddCmd.MarkFlagRequired("name")

	itemListCmd.Flags().StringVar(&itemShelf, "shelf", "", "only items on this shelf")

	itemUpdateCmd.Flags().StringVar(&itemName, "name", "", "new name")
	itemUpdateCmd.Flags().StringVar(&itemUnit, "unit", "", "new unit")
	itemUpdateCmd.Flags().Float64Var(&itemQuantity, "qty", -1, "new quantity")
	itemUpdateCmd.Flags().StringVar(&itemExpires, "expires", "", "new expiry date (YYYY-MM-DD)")
	itemUpdateCmd.Flags().BoolVar(&itemClearExp, "clear-expiry", false, "remove the expiry date")

	itemCmd.AddCommand(itemAddCmd)
	itemCmd.AddCommand(itemListCmd)
	itemCmd.AddCommand(itemUpdateCmd)
	itemCmd.AddCommand(itemRemoveCmd)
}

var itemAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add an item to a shelf",
	Long: `Add creates an item on the given shelf (or the selected shelf).

Example:
  larder item add --name "milk" --unit piece --qty 1 --expires 2026-09-02
  larder item add --shelf shelf-4 --name "frozen peas" --unit bag`,
	RunE: func(cmd *cobra.Command, args []string) error {
		shelfID := itemShelf
		if shelfID == "" {
			shelfID = store.SelectedShelfID()
		}
		unit := types.Unit(itemUnit)
		if !unit.Valid() {
			return fmt.Errorf("unknown unit %q", itemUnit)
		}

		in := types.AddItemInput{
			ShelfID:  shelfID,
			Name:     itemName,
			Unit:     unit,
			Quantity: itemQuantity,
			Barcode:  itemBarcode,
		}
		if itemExpires != "" {
			expiry, err := time.Parse(expiryFlagLayout, itemExpires)
			if err != nil {
				return fmt.Errorf("invalid expiry date %q: %w", itemExpires, err)
			}
			in.ExpiryDate = &expiry
		}

		item, ok := store.AddItem(in)
		if !ok {
			return fmt.Errorf("unknown shelf %q", shelfID)
		}
		if flagJSON {
			return printJSON(item)
		}
		fmt.Printf("Added %s (%s)\n", item.Name, item.ID)
		return nil
	},
}

var itemListCmd = &cobra.Command{
	Use:   "list",
	Short: "List items with urgency tiers",
	RunE: func(cmd *cobra.Command, args []string) error {
		items := store.Items()
		if itemShelf != "" {
			items = store.ItemsOnShelf(itemShelf)
		}
		if flagJSON {
			return printJSON(items)
		}

		fresh := fridge.NewFreshness(time.Now())
		for _, item := range items {
			days := "-"
			if d := fresh.DaysUntil(item.ExpiryDate); d != fridge.DaysNever {
				days = fmt.Sprintf("%dd", d)
			}
			fmt.Printf("%-42s %-20s %8.2f %-10s %4s  %s\n",
				item.ID, item.Name, item.Quantity, item.Unit, days, fresh.Tier(item.ExpiryDate))
		}
		return nil
	},
}

var itemUpdateCmd = &cobra.Command{
	Use:   "update <item-id>",
	Short: "Update item fields",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var changes types.ItemChanges
		if itemName != "" {
			changes.Name = &itemName
		}
		if itemUnit != "" {
			unit := types.Unit(itemUnit)
			if !unit.Valid() {
				return fmt.Errorf("unknown unit %q", itemUnit)
			}
			changes.Unit = &unit
		}
		if itemQuantity >= 0 {
			changes.Quantity = &itemQuantity
		}
		if itemExpires != "" {
			expiry, err := time.Parse(expiryFlagLayout, itemExpires)
			if err != nil {
				return fmt.Errorf("invalid expiry date %q: %w", itemExpires, err)
			}
			changes.ExpiryDate = &expiry
		}
		changes.ClearExpiry = itemClearExp

		item, ok := store.UpdateItem(args[0], changes)
		if !ok {
			fmt.Printf("No item %s\n", args[0])
			return nil
		}
		if flagJSON {
			return printJSON(item)
		}
		fmt.Printf("Updated %s\n", item.ID)
		return nil
	},
}

var itemRemoveCmd = &cobra.Command{
	Use:   "remove <item-id>",
	Short: "Remove an item",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store.RemoveItem(args[0])
		fmt.Printf("Removed %s\n", args[0])
		return nil
	},
}
