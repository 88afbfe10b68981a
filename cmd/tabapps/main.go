// Package main provides the tabapps CLI for managing tablet-optimized apps.
package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
)

// version is set via -ldflags during build
var version = "dev"

func main() {
	rootCmd := newRootCmd()

	// Cobra handles error printing
	rootCmd.SilenceUsage = true

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd creates the root command for tabapps
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tabapps",
		Short: "Tablet Apps Installer",
		Long: `tabapps manages a catalog of tablet-optimized applications.

It supports:
  - Listing the app catalog grouped by category
  - Marking apps installed and writing their tablet configuration
  - Generating desktop shortcuts for every catalog app

Categories: productivity, creative, entertainment, utilities`,
		Version: version,
		Args:    cobra.NoArgs,
		// Bare invocation prints usage and exits non-zero
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := cmd.Help(); err != nil {
				return err
			}
			return errors.New("a command is required")
		},
	}

	rootCmd.AddCommand(
		newListCmd(),
		newInstallCmd(),
		newInstallAllCmd(),
		newShortcutsCmd(),
	)

	return rootCmd
}
