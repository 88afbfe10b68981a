package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tablet-mods/tablet-apps/pkg/catalog"
	"github.com/tablet-mods/tablet-apps/pkg/globalconfig"
)

// newListCmd creates the list subcommand
func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available apps",
		Long:  `List all tablet-optimized apps in the catalog, grouped by category.`,
		Args:  cobra.NoArgs,
		RunE:  runList,
	}
}

// runList prints the catalog with tablet and stylus indicators per app.
func runList(cmd *cobra.Command, _ []string) error {
	cfg, err := globalconfig.LoadOrCreate()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	cat := catalog.NewStore(cfg.CatalogPath).Load()
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, titleStyle.Render("Available Tablet-Optimized Apps:"))
	fmt.Fprintln(out, strings.Repeat("=", 40))

	for _, category := range cat.Categories() {
		fmt.Fprintf(out, "\n%s:\n", headerStyle.Render(strings.ToUpper(category)))
		for _, app := range cat[category] {
			var indicators string
			if app.TabletOptimized {
				indicators += " 📱"
			}
			if app.StylusSupport {
				indicators += " ✏️"
			}
			fmt.Fprintf(out, "  • %s%s\n", app.Name, indicators)
		}
	}

	fmt.Fprintln(out, "\nLegend:")
	fmt.Fprintln(out, "📱 = Tablet optimized")
	fmt.Fprintln(out, "✏️ = Stylus support")

	return nil
}
