package shortcut

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tablet-mods/tablet-apps/pkg/catalog"
)

func TestRender_DesktopEntryFields(t *testing.T) {
	app := catalog.App{
		Name:     "Google Docs",
		Package:  "com.google.android.apps.docs.editors.docs",
		Category: catalog.CategoryProductivity,
	}

	body := Render(app)

	assert.True(t, strings.HasPrefix(body, "[Desktop Entry]\n"))
	assert.Contains(t, body, "Name=Google Docs\n")
	assert.Contains(t, body, "Comment=Tablet-optimized Google Docs\n")
	assert.Contains(t, body, "Exec=am start -n com.google.android.apps.docs.editors.docs/.MainActivity\n")
	assert.Contains(t, body, "Icon=com.google.android.apps.docs.editors.docs\n")
	assert.Contains(t, body, "Type=Application\n")
	assert.Contains(t, body, "Categories=TabletApps;Productivity;\n")
	assert.Contains(t, body, "StartupNotify=true\n")
	assert.Contains(t, body, "MimeType=application/x-tablet-app;\n")
}

func TestRender_TabletMarkerWithoutStylusMarker(t *testing.T) {
	app := catalog.App{
		Name:            "Netflix",
		Package:         "com.netflix.mediaclient",
		Category:        catalog.CategoryEntertainment,
		TabletOptimized: true,
		StylusSupport:   false,
	}

	body := Render(app)

	assert.Contains(t, body, "X-Tablet-Optimized=true\n")
	assert.NotContains(t, body, "X-Stylus-Support")
}

func TestRender_BothMarkers(t *testing.T) {
	app := catalog.App{
		Name:            "Concepts",
		Package:         "com.tophatch.concepts",
		Category:        catalog.CategoryCreative,
		TabletOptimized: true,
		StylusSupport:   true,
	}

	body := Render(app)

	assert.Contains(t, body, "X-Tablet-Optimized=true\n")
	assert.Contains(t, body, "X-Stylus-Support=true\n")
}

func TestRender_NoMarkers(t *testing.T) {
	app := catalog.App{
		Name:     "Plain",
		Package:  "com.example.plain",
		Category: "utilities",
	}

	body := Render(app)

	assert.NotContains(t, body, "X-Tablet-Optimized")
	assert.NotContains(t, body, "X-Stylus-Support")
	assert.True(t, strings.HasSuffix(body, "MimeType=application/x-tablet-app;\n"))
}

func TestGenerator_Write_MarksExecutable(t *testing.T) {
	tmpDir := t.TempDir()
	gen := New(tmpDir)

	app := catalog.App{
		Name:     "Spotify",
		Package:  "com.spotify.music",
		Category: catalog.CategoryEntertainment,
	}

	require.NoError(t, gen.Write(app))

	path := filepath.Join(tmpDir, "com.spotify.music.desktop")
	info, err := os.Stat(path)
	require.NoError(t, err)

	assert.NotZero(t, info.Mode()&0111, "shortcut should be executable")
}

func TestGenerator_WriteAll(t *testing.T) {
	tmpDir := t.TempDir()
	outputDir := filepath.Join(tmpDir, "shortcuts")
	gen := New(outputDir)

	cat := catalog.DefaultCatalog()

	written, err := gen.WriteAll(cat)
	require.NoError(t, err)
	assert.Equal(t, 18, written)

	entries, err := os.ReadDir(outputDir)
	require.NoError(t, err)
	assert.Len(t, entries, 18)

	for _, entry := range entries {
		assert.True(t, strings.HasSuffix(entry.Name(), ".desktop"))
	}
}

func TestGenerator_WriteAll_Idempotent(t *testing.T) {
	outputDir := filepath.Join(t.TempDir(), "shortcuts")
	gen := New(outputDir)
	cat := catalog.DefaultCatalog()

	_, err := gen.WriteAll(cat)
	require.NoError(t, err)

	path := gen.Path(cat[catalog.CategoryUtilities][0])
	first, err := os.ReadFile(path)
	require.NoError(t, err)

	_, err = gen.WriteAll(cat)
	require.NoError(t, err)

	second, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
