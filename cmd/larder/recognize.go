// Recognize command: call the external recognition service for an imaged
// shelf and turn accepted candidates into items.
package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/larderhq/larder/internal/remote"
)

var (
	recognizeShelf   string
	recognizeImage   string
	recognizeConfirm bool
	recognizeMinConf float64
)

func init() {
	recognizeCmd.Flags().StringVar(&recognizeShelf, "shelf", "", "shelf ID (default: selected shelf)")
	recognizeCmd.Flags().StringVar(&recognizeImage, "image", "", "image reference to recognize (required)")
	recognizeCmd.Flags().BoolVar(&recognizeConfirm, "confirm", false, "add recognized candidates to the shelf")
	recognizeCmd.Flags().Float64Var(&recognizeMinConf, "min-confidence", 0.6, "drop candidates below this confidence")
	_ = recognizeCmd.MarkFlagRequired("image")
}

var recognizeCmd = &cobra.Command{
	Use:   "recognize",
	Short: "Recognize items on an imaged shelf",
	Long: `Recognize sends an image reference to the configured recognition
service and lists the candidate items it returns. With --confirm,
candidates at or above --min-confidence are added to the shelf. The
inventory is untouched when the service call fails.

Example:
  larder recognize --image photos/shelf1.jpg
  larder recognize --shelf shelf-4 --image photos/freezer.jpg --confirm`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.RecognizeURL == "" {
			return fmt.Errorf("recognize_url is not configured")
		}
		shelfID := recognizeShelf
		if shelfID == "" {
			shelfID = store.SelectedShelfID()
		}

		client := remote.NewClient(cfg.RecognizeURL)
		result, err := client.Recognize(context.Background(), shelfID, recognizeImage)
		if err != nil {
			return fmt.Errorf("recognition service: %w", err)
		}
		if flagJSON && !recognizeConfirm {
			return printJSON(result)
		}

		if result.Note != "" {
			fmt.Println(result.Note)
		}
		added := 0
		for _, candidate := range result.Candidates {
			fmt.Printf("%-20s %8.2f %-10s confidence %.2f\n",
				candidate.Name, candidate.Quantity, candidate.Unit, candidate.Confidence)
			if !recognizeConfirm || candidate.Confidence < recognizeMinConf {
				continue
			}
			if _, ok := store.AddItem(candidate.ItemInput(shelfID)); ok {
				added++
			}
		}
		if recognizeConfirm {
			fmt.Printf("Added %d of %d candidates to %s\n", added, len(result.Candidates), shelfID)
		}
		return nil
	},
}
