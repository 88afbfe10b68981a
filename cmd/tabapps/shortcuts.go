package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tablet-mods/tablet-apps/pkg/catalog"
	"github.com/tablet-mods/tablet-apps/pkg/globalconfig"
)

// newShortcutsCmd creates the shortcuts subcommand
func newShortcutsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shortcuts",
		Short: "Regenerate desktop shortcuts",
		Long:  `Regenerate the desktop shortcut file for every app in the catalog.`,
		Args:  cobra.NoArgs,
		RunE:  runShortcuts,
	}
}

// runShortcuts regenerates shortcuts without installing anything.
func runShortcuts(cmd *cobra.Command, _ []string) error {
	cfg, err := globalconfig.LoadOrCreate()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	cat := catalog.NewStore(cfg.CatalogPath).Load()

	return regenerateShortcuts(cmd.OutOrStdout(), cfg, cat)
}
