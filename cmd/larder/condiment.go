// Condiment commands: add, list, update, remove.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/larderhq/larder/pkg/types"
)

var condimentCmd = &cobra.Command{
	Use:     "condiment",
	Aliases: []string{"cond"},
	Short:   "Manage condiments and staples",
}

var (
	condName     string
	condCategory string
	condStock    string
	condNote     string
)

func init() {
	condimentAddCmd.Flags().StringVar(&condName, "name", "", "condiment name (required)")
	condimentAddCmd.Flags().StringVar(&condCategory, "category", string(types.CondimentOther), "category (sauce-vinegar, spice, oil-fat, other)")
	condimentAddCmd.Flags().StringVar(&condStock, "stock", string(types.StockSufficient), "stock level (sufficient, out-of-stock, near-expiry)")
	condimentAddCmd.Flags().StringVar(&condNote, "note", "", "free-form note")
	_ = condimentAddCmd.MarkFlagRequired("name")

	condimentUpdateCmd.Flags().StringVar(&condName, "name", "", "new name")
	condimentUpdateCmd.Flags().StringVar(&condCategory, "category", "", "new category")
	condimentUpdateCmd.Flags().StringVar(&condStock, "stock", "", "new stock level")
	condimentUpdateCmd.Flags().StringVar(&condNote, "note", "", "new note")

	condimentCmd.AddCommand(condimentAddCmd)
	condimentCmd.AddCommand(condimentListCmd)
	condimentCmd.AddCommand(condimentUpdateCmd)
	condimentCmd.AddCommand(condimentRemoveCmd)
}

var condimentAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a condiment",
	RunE: func(cmd *cobra.Command, args []string) error {
		category := types.CondimentCategory(condCategory)
		if !category.Valid() {
			return fmt.Errorf("unknown category %q", condCategory)
		}
		stock := types.StockLevel(condStock)
		if !stock.Valid() {
			return fmt.Errorf("unknown stock level %q", condStock)
		}

		condiment := store.AddCondiment(types.AddCondimentInput{
			Name:       condName,
			Category:   category,
			StockLevel: stock,
			Note:       condNote,
		})
		if flagJSON {
			return printJSON(condiment)
		}
		fmt.Printf("Added %s (%s)\n", condiment.Name, condiment.ID)
		return nil
	},
}

var condimentListCmd = &cobra.Command{
	Use:   "list",
	Short: "List condiments",
	RunE: func(cmd *cobra.Command, args []string) error {
		condiments := store.Condiments()
		if flagJSON {
			return printJSON(condiments)
		}
		for _, c := range condiments {
			note := ""
			if c.Note != "" {
				note = "  (" + c.Note + ")"
			}
			fmt.Printf("%-42s %-22s %-14s %s%s\n", c.ID, c.Name, c.Category, c.StockLevel, note)
		}
		return nil
	},
}

var condimentUpdateCmd = &cobra.Command{
	Use:   "update <condiment-id>",
	Short: "Update condiment fields",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var changes types.CondimentChanges
		if condName != "" {
			changes.Name = &condName
		}
		if condCategory != "" {
			category := types.CondimentCategory(condCategory)
			if !category.Valid() {
				return fmt.Errorf("unknown category %q", condCategory)
			}
			changes.Category = &category
		}
		if condStock != "" {
			stock := types.StockLevel(condStock)
			if !stock.Valid() {
				return fmt.Errorf("unknown stock level %q", condStock)
			}
			changes.StockLevel = &stock
		}
		if condNote != "" {
			changes.Note = &condNote
		}

		condiment, ok := store.UpdateCondiment(args[0], changes)
		if !ok {
			fmt.Printf("No condiment %s\n", args[0])
			return nil
		}
		if flagJSON {
			return printJSON(condiment)
		}
		fmt.Printf("Updated %s\n", condiment.ID)
		return nil
	},
}

var condimentRemoveCmd = &cobra.Command{
	Use:   "remove <condiment-id>",
	Short: "Remove a condiment",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store.RemoveCondiment(args[0])
		fmt.Printf("Removed %s\n", args[0])
		return nil
	},
}
