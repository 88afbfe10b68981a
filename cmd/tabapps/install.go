package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/tablet-mods/tablet-apps/pkg/catalog"
	"github.com/tablet-mods/tablet-apps/pkg/globalconfig"
	"github.com/tablet-mods/tablet-apps/pkg/installer"
	"github.com/tablet-mods/tablet-apps/pkg/shortcut"
)

// newInstallCmd creates the install subcommand
func newInstallCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "install <category>",
		Short: "Install all apps in a category",
		Long: `Mark every app in the given category installed, write its tablet
configuration, and regenerate all desktop shortcuts.

Categories: productivity, creative, entertainment, utilities`,
		Args: cobra.ExactArgs(1),
		RunE: runInstall,
	}
}

// newInstallAllCmd creates the install-all subcommand
func newInstallAllCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "install-all",
		Short: "Install all apps",
		Long: `Mark every app in every category installed, write its tablet
configuration, and regenerate all desktop shortcuts.`,
		Args: cobra.NoArgs,
		RunE: runInstallAll,
	}
}

// runInstall installs one category, then regenerates all shortcuts.
func runInstall(cmd *cobra.Command, args []string) error {
	category := args[0]
	out := cmd.OutOrStdout()

	cfg, err := globalconfig.LoadOrCreate()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	cat := catalog.NewStore(cfg.CatalogPath).Load()

	inst, err := installer.New(cfg)
	if err != nil {
		return err
	}

	sum, err := inst.InstallCategory(cat, category)
	if err != nil {
		return err
	}

	printSummary(out, sum, category)

	return regenerateShortcuts(out, cfg, cat)
}

// runInstallAll installs every category, then regenerates all shortcuts.
func runInstallAll(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	cfg, err := globalconfig.LoadOrCreate()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	cat := catalog.NewStore(cfg.CatalogPath).Load()

	inst, err := installer.New(cfg)
	if err != nil {
		return err
	}

	sum := inst.InstallAll(cat)
	printSummary(out, sum, "")

	return regenerateShortcuts(out, cfg, cat)
}

// printSummary reports per-app outcomes and the aggregate success count.
// Per-app failures are reported here only; they never affect the exit code.
func printSummary(out io.Writer, sum installer.Summary, category string) {
	for _, res := range sum.Results {
		switch {
		case !res.OK():
			fmt.Fprintf(out, "%s %s: %v\n", errorStyle.Render("✗"), res.App.Name, res.Err)
		case res.RecordErr != nil:
			fmt.Fprintf(out, "%s Installed %s (%s)\n", successStyle.Render("✓"), res.App.Name, res.App.Package)
			fmt.Fprintf(out, "  %s\n", warningStyle.Render(fmt.Sprintf("manifest not updated: %v", res.RecordErr)))
		default:
			fmt.Fprintf(out, "%s Installed %s (%s)\n", successStyle.Render("✓"), res.App.Name, res.App.Package)
		}
	}

	if category != "" {
		fmt.Fprintf(out, "\nInstalled %d/%d apps in %s\n", sum.Succeeded, sum.Total, category)
	} else {
		fmt.Fprintf(out, "\nInstallation complete: %d/%d apps installed\n", sum.Succeeded, sum.Total)
	}
}

// regenerateShortcuts rewrites the desktop shortcuts for the whole catalog.
func regenerateShortcuts(out io.Writer, cfg *globalconfig.Config, cat catalog.Catalog) error {
	gen := shortcut.New(cfg.ShortcutsDir)

	written, err := gen.WriteAll(cat)
	if err != nil {
		return fmt.Errorf("failed to create shortcuts: %w", err)
	}

	fmt.Fprintf(out, "Created %d shortcuts in %s\n", written, cfg.ShortcutsDir)
	return nil
}
