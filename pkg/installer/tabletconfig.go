package installer

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tablet-mods/tablet-apps/pkg/catalog"
)

// ErrConfigWrite is returned when the tablet configuration file could not
// be written.
var ErrConfigWrite = errors.New("tablet config write failed")

// TabletConfig is the per-app UI-mode preference document written into the
// app's data directory.
type TabletConfig struct {
	TabletMode    bool `json:"tablet_mode"`
	ForceTabletUI bool `json:"force_tablet_ui"`
	StylusSupport bool `json:"stylus_support"`
	MultiWindow   bool `json:"multi_window"`
	Resizable     bool `json:"resizable"`
}

// NewTabletConfig derives the tablet configuration for an app.
func NewTabletConfig(app catalog.App) TabletConfig {
	return TabletConfig{
		TabletMode:    true,
		ForceTabletUI: app.TabletOptimized,
		StylusSupport: app.StylusSupport,
		MultiWindow:   true,
		Resizable:     true,
	}
}

// TabletConfigPath returns the tablet configuration file path for a package.
func (i *Installer) TabletConfigPath(pkg string) string {
	return filepath.Join(i.appDataDir, pkg, "tablet-config", "tablet.json")
}

// writeTabletConfig writes an app's tablet configuration, creating parent
// directories as needed. Re-running overwrites the file in place.
func (i *Installer) writeTabletConfig(app catalog.App) error {
	path := i.TabletConfigPath(app.Package)

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(NewTabletConfig(app), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal tablet config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write tablet config: %w", err)
	}

	return nil
}
