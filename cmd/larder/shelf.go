// Shelf commands: list, select, reset.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var shelfCmd = &cobra.Command{
	Use:   "shelf",
	Short: "Manage storage shelves",
}

func init() {
	shelfCmd.AddCommand(shelfListCmd)
	shelfCmd.AddCommand(shelfSelectCmd)
	shelfCmd.AddCommand(shelfResetCmd)
}

var shelfListCmd = &cobra.Command{
	Use:   "list",
	Short: "List shelves in display order",
	RunE: func(cmd *cobra.Command, args []string) error {
		shelves := store.Shelves()
		if flagJSON {
			return printJSON(shelves)
		}
		selected := store.SelectedShelfID()
		for _, shelf := range shelves {
			marker := " "
			if shelf.ID == selected {
				marker = "*"
			}
			fmt.Printf("%s %-10s %-18s %s\n", marker, shelf.ID, shelf.Name, shelf.Category)
		}
		return nil
	},
}

var shelfSelectCmd = &cobra.Command{
	Use:   "select <shelf-id>",
	Short: "Select the current shelf",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !store.SelectShelf(args[0]) {
			return fmt.Errorf("unknown shelf %q", args[0])
		}
		fmt.Printf("Selected shelf %s\n", args[0])
		return nil
	},
}

var shelfResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore the default shelf configuration",
	Long: `Reset restores the fixed default shelf set and selects its first
entry. Items on shelves that exist in the default set are kept.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store.ResetShelves()
		fmt.Printf("Shelves reset to %d defaults\n", len(store.Shelves()))
		return nil
	},
}
