package installer

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/tablet-mods/tablet-apps/pkg/catalog"
)

// Record is one entry in the install manifest.
type Record struct {
	ID               string    `json:"id"`
	Package          string    `json:"package"`
	Name             string    `json:"name"`
	Installed        bool      `json:"installed"`
	TabletConfigured bool      `json:"tablet_configured"`
	StylusConfigured bool      `json:"stylus_configured"`
	InstalledAt      time.Time `json:"installed_at"`
}

// NewRecord creates an install record for an app.
func NewRecord(app catalog.App) Record {
	return Record{
		ID:               uuid.New().String(),
		Package:          app.Package,
		Name:             app.Name,
		Installed:        true,
		TabletConfigured: app.TabletOptimized,
		StylusConfigured: app.StylusSupport,
		InstalledAt:      time.Now().UTC(),
	}
}

// Manifest is the on-disk install state.
type Manifest struct {
	Records []Record `json:"records"`
}

// Add inserts a record, replacing any prior record for the same package.
func (m *Manifest) Add(rec Record) {
	for i := range m.Records {
		if m.Records[i].Package == rec.Package {
			m.Records[i] = rec
			return
		}
	}
	m.Records = append(m.Records, rec)
}

// Find returns the record for a package, or nil if not found.
func (m *Manifest) Find(pkg string) *Record {
	for i := range m.Records {
		if m.Records[i].Package == pkg {
			return &m.Records[i]
		}
	}
	return nil
}

// LoadManifest loads the install manifest from disk. A missing file yields
// an empty manifest.
func (i *Installer) LoadManifest() (*Manifest, error) {
	data, err := os.ReadFile(i.manifestPath)
	if err != nil {
		if os.IsNotExist(err) {
			return &Manifest{}, nil
		}
		return nil, fmt.Errorf("failed to read manifest file: %w", err)
	}

	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest file: %w", err)
	}

	return &m, nil
}

// recordInstall loads the manifest, upserts the record, and saves the
// manifest atomically via a temp file and rename.
func (i *Installer) recordInstall(rec Record) error {
	m, err := i.LoadManifest()
	if err != nil {
		return err
	}

	m.Add(rec)

	if err := os.MkdirAll(filepath.Dir(i.manifestPath), 0755); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal manifest: %w", err)
	}

	tmpPath := i.manifestPath + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write manifest file: %w", err)
	}

	if err := os.Rename(tmpPath, i.manifestPath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to save manifest file: %w", err)
	}

	return nil
}
