// Package installer performs placeholder app installs. Each install writes
// the app's tablet configuration file and records the app in the install
// manifest; no app store or package manager is ever contacted.
package installer

import (
	"fmt"
	"log"

	"github.com/tablet-mods/tablet-apps/pkg/catalog"
	"github.com/tablet-mods/tablet-apps/pkg/globalconfig"
)

// Installer marks catalog apps installed and configures them for tablet use.
type Installer struct {
	appDataDir   string
	manifestPath string
}

// New creates an installer using the configured app data directory and the
// install manifest under the tabapps config directory.
func New(cfg *globalconfig.Config) (*Installer, error) {
	manifestPath, err := globalconfig.GetManifestPath()
	if err != nil {
		return nil, fmt.Errorf("failed to get manifest path: %w", err)
	}
	return &Installer{
		appDataDir:   cfg.AppDataDir,
		manifestPath: manifestPath,
	}, nil
}

// NewWithPaths creates an installer with explicit paths.
func NewWithPaths(appDataDir, manifestPath string) *Installer {
	return &Installer{
		appDataDir:   appDataDir,
		manifestPath: manifestPath,
	}
}

// Result is the outcome of installing a single app.
type Result struct {
	App catalog.App

	// RecordID is the manifest record ID, empty when the install failed.
	RecordID string

	// Err is set when the tablet config write failed; the install counts
	// as failed.
	Err error

	// RecordErr is set when the manifest update failed. The install still
	// counts as succeeded: the tablet config, the observable side effect,
	// was written.
	RecordErr error
}

// OK reports whether the app was installed.
func (r Result) OK() bool {
	return r.Err == nil
}

// Summary aggregates the results of a batch install.
type Summary struct {
	Total     int
	Succeeded int
	Results   []Result
}

// Failed returns the number of apps that failed to install.
func (s Summary) Failed() int {
	return s.Total - s.Succeeded
}

func (s *Summary) add(r Result) {
	s.Total++
	if r.OK() {
		s.Succeeded++
	}
	s.Results = append(s.Results, r)
}

// Install marks a single app installed: it writes the app's tablet
// configuration and appends a record to the install manifest.
func (i *Installer) Install(app catalog.App) Result {
	if err := i.writeTabletConfig(app); err != nil {
		return Result{App: app, Err: fmt.Errorf("%w: %v", ErrConfigWrite, err)}
	}

	rec := NewRecord(app)
	if err := i.recordInstall(rec); err != nil {
		log.Printf("Warning: failed to record install of %s: %v", app.Package, err)
		return Result{App: app, RecordID: rec.ID, RecordErr: err}
	}

	return Result{App: app, RecordID: rec.ID}
}

// InstallCategory installs every app in the named category. An unknown
// category is an error and performs no writes.
func (i *Installer) InstallCategory(c catalog.Catalog, category string) (Summary, error) {
	apps, ok := c.Apps(category)
	if !ok {
		return Summary{}, fmt.Errorf("unknown category: %s", category)
	}

	var sum Summary
	for _, app := range apps {
		sum.add(i.Install(app))
	}
	return sum, nil
}

// InstallAll installs every app in every category. Per-app failures are
// counted in the summary and never abort the batch.
func (i *Installer) InstallAll(c catalog.Catalog) Summary {
	var sum Summary
	for _, category := range c.Categories() {
		for _, app := range c[category] {
			sum.add(i.Install(app))
		}
	}
	return sum
}
