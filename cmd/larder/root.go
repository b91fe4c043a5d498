// Root command wiring: config resolution, storage setup, store and chat
// service construction shared by all subcommands.
package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/larderhq/larder"
	"github.com/larderhq/larder/internal/paths"
	"github.com/larderhq/larder/internal/remote"
	"github.com/larderhq/larder/internal/sqlite"
	"github.com/larderhq/larder/pkg/fridge"
	"github.com/larderhq/larder/pkg/types"
)

// databaseFile is the snapshot database name inside the data directory.
const databaseFile = "larder.db"

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagJSON      bool
)

// Shared state initialized by PersistentPreRunE.
var (
	cfg     types.Config
	storage *sqlite.Storage
	store   *fridge.Store
	chat    fridge.ChatService
)

var rootCmd = &cobra.Command{
	Use:     "larder",
	Short:   "Larder tracks perishable inventory and suggests meals from it",
	Version: larder.Version,
	Long: `Larder is a local-first tracker for what is in your fridge: shelves,
items with expiry dates, and condiments. It generates deterministic meal
suggestions that prioritize soon-to-expire stock and applies accepted
suggestions back against inventory.`,
	PersistentPreRunE: setup,
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return teardown()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: $(CWD)/.larder-db)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(shelfCmd)
	rootCmd.AddCommand(itemCmd)
	rootCmd.AddCommand(condimentCmd)
	rootCmd.AddCommand(suggestCmd)
	rootCmd.AddCommand(recognizeCmd)
}

// setup loads config, opens the snapshot database, and builds the store
// and the configured chat service.
func setup(cmd *cobra.Command, args []string) error {
	// The version command needs no storage.
	if cmd.Name() == "version" {
		return nil
	}

	configDir, err := paths.ResolveConfigDir(flagConfigDir)
	if err != nil {
		return fmt.Errorf("resolve config dir: %w", err)
	}
	cfg, err = loadConfig(configDir)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	dataDir, err := paths.ResolveDataDir(flagDataDir, cfg.DataDir)
	if err != nil {
		return fmt.Errorf("resolve data dir: %w", err)
	}
	storage, err = sqlite.Open(filepath.Join(dataDir, databaseFile))
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}

	store = fridge.New(storage)
	if cfg.ChatMode == types.ChatModeRemote {
		chat = remote.NewClient(cfg.ChatURL)
	} else {
		chat = fridge.NewLocalChat(store)
	}
	return nil
}

// teardown closes the snapshot database.
func teardown() error {
	if storage != nil {
		return storage.Close()
	}
	return nil
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize larder storage",
	Long: `Init creates the config and data directories, seeds the default shelf
set, and optionally loads a small sample inventory.

Example:
  larder init
  larder init --sample`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if flagSample {
			fridge.SeedSample(store)
		}
		fmt.Printf("Larder initialized with %d shelves\n", len(store.Shelves()))
		return nil
	},
}

var flagSample bool

func init() {
	initCmd.Flags().BoolVar(&flagSample, "sample", false, "seed a small sample inventory")
}
