// Package shortcut generates desktop-entry launcher files for catalog apps.
package shortcut

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/tablet-mods/tablet-apps/pkg/catalog"
)

// Generator writes desktop-entry files into a single output directory.
type Generator struct {
	outputDir string
}

// New creates a generator writing into outputDir.
func New(outputDir string) *Generator {
	return &Generator{outputDir: outputDir}
}

// OutputDir returns the shortcut output directory.
func (g *Generator) OutputDir() string {
	return g.outputDir
}

// Path returns the shortcut file path for an app.
func (g *Generator) Path(app catalog.App) string {
	return filepath.Join(g.outputDir, app.Package+".desktop")
}

// Render produces the desktop-entry body for one app. The tablet and
// stylus marker lines are appended only when the corresponding flag is set.
func Render(app catalog.App) string {
	caser := cases.Title(language.English)

	body := substituteVars(template, map[string]string{
		"NAME":     app.Name,
		"PACKAGE":  app.Package,
		"CATEGORY": caser.String(app.Category),
	})

	if app.TabletOptimized {
		body += "X-Tablet-Optimized=true\n"
	}
	if app.StylusSupport {
		body += "X-Stylus-Support=true\n"
	}

	return body
}

// Write renders the desktop entry for one app and marks it executable.
// The output directory must already exist; WriteAll ensures it.
func (g *Generator) Write(app catalog.App) error {
	path := g.Path(app)

	if err := os.WriteFile(path, []byte(Render(app)), 0644); err != nil {
		return fmt.Errorf("failed to write shortcut: %w", err)
	}

	// Launcher descriptors are expected to be executable.
	if err := os.Chmod(path, 0755); err != nil {
		return fmt.Errorf("failed to mark shortcut executable: %w", err)
	}

	return nil
}

// WriteAll generates a shortcut for every app in the catalog. Per-file
// failures are logged and skipped; the batch continues. Returns the number
// of shortcuts written.
func (g *Generator) WriteAll(c catalog.Catalog) (int, error) {
	if err := os.MkdirAll(g.outputDir, 0755); err != nil {
		return 0, fmt.Errorf("failed to create shortcuts directory: %w", err)
	}

	written := 0
	for _, category := range c.Categories() {
		for _, app := range c[category] {
			if err := g.Write(app); err != nil {
				log.Printf("Warning: failed to create shortcut for %s: %v", app.Package, err)
				continue
			}
			written++
		}
	}

	return written, nil
}
