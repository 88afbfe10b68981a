package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	c := DefaultCatalog()

	require.Len(t, c, 4)
	assert.Len(t, c[CategoryProductivity], 6)
	assert.Len(t, c[CategoryCreative], 4)
	assert.Len(t, c[CategoryEntertainment], 4)
	assert.Len(t, c[CategoryUtilities], 4)
	assert.Equal(t, 18, c.Len())
}

func TestDefaultCatalog_EntriesCarryTheirCategory(t *testing.T) {
	c := DefaultCatalog()

	for category, apps := range c {
		for _, app := range apps {
			assert.Equal(t, category, app.Category, "app %s", app.Package)
			assert.NotEmpty(t, app.Name)
			assert.NotEmpty(t, app.Package)
		}
	}
}

func TestCatalog_Categories_CanonicalOrder(t *testing.T) {
	c := DefaultCatalog()

	assert.Equal(t, []string{
		CategoryProductivity,
		CategoryCreative,
		CategoryEntertainment,
		CategoryUtilities,
	}, c.Categories())
}

func TestCatalog_Categories_ExtraCategoriesSorted(t *testing.T) {
	c := Catalog{
		"zeta":               {{Name: "Z", Package: "com.z"}},
		CategoryUtilities:    {{Name: "U", Package: "com.u"}},
		"alpha":              {{Name: "A", Package: "com.a"}},
		CategoryProductivity: {{Name: "P", Package: "com.p"}},
	}

	assert.Equal(t, []string{CategoryProductivity, CategoryUtilities, "alpha", "zeta"}, c.Categories())
}

func TestCatalog_Apps(t *testing.T) {
	c := DefaultCatalog()

	apps, ok := c.Apps(CategoryCreative)
	require.True(t, ok)
	assert.Len(t, apps, 4)
	assert.Equal(t, "Adobe Photoshop Express", apps[0].Name)

	_, ok = c.Apps("no-such-category")
	assert.False(t, ok)
}
