// Suggest command: generate meal suggestions and optionally apply one.
package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/larderhq/larder/pkg/fridge"
)

var flagAccept int

func init() {
	suggestCmd.Flags().IntVar(&flagAccept, "accept", 0, "apply the Nth suggestion's usage against inventory (1-based)")
}

var suggestCmd = &cobra.Command{
	Use:   "suggest [intent...]",
	Short: "Generate meal suggestions from current inventory",
	Long: `Suggest runs the configured chat service (the in-process engine by
default) over the current items and condiments. Suggestions prioritize
soon-to-expire stock. With --accept N the Nth suggestion's usage list is
applied back against inventory.

Example:
  larder suggest
  larder suggest something light and slimming
  larder suggest --accept 1`,
	RunE: func(cmd *cobra.Command, args []string) error {
		intent := strings.Join(args, " ")

		response, err := chat.Chat(context.Background(), intent, store.Items(), store.Condiments())
		if err != nil {
			return fmt.Errorf("suggestion service: %w", err)
		}
		if flagJSON && flagAccept == 0 {
			return printJSON(response)
		}

		fmt.Println(response.Reply)
		for i, s := range response.Suggestions {
			fmt.Printf("\n%d. %s [%s, ~%d min]\n   %s\n", i+1, s.Title, s.Category, s.EstimatedMinutes, s.Summary)
			for _, u := range s.Usage {
				fmt.Printf("   - %s: %.2f %s\n", u.Name, u.Quantity, u.Unit)
			}
			if len(s.RecommendedCondiments) > 0 {
				fmt.Printf("   with: %s\n", strings.Join(s.RecommendedCondiments, ", "))
			}
		}

		if flagAccept == 0 {
			return nil
		}
		if flagAccept < 1 || flagAccept > len(response.Suggestions) {
			return fmt.Errorf("no suggestion %d to accept", flagAccept)
		}

		accepted := response.Suggestions[flagAccept-1]
		summary := fridge.NewApplier(store).Apply(accepted.Usage)
		fmt.Printf("\nApplied %q: %d updated, %d removed, %d skipped\n",
			accepted.Title, summary.Updated, summary.Removed, summary.Skipped)
		return nil
	},
}
