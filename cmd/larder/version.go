// Version command.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/larderhq/larder"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("larder v%s\n", larder.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
