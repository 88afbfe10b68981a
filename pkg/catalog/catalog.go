// Package catalog provides the categorized tablet app catalog and its
// on-disk store.
package catalog

import "sort"

// App represents one application entry in the catalog.
type App struct {
	// Name is the human-readable display name
	Name string `json:"name"`

	// Package is the reverse-domain application identifier
	Package string `json:"package"`

	// Category is the catalog category the app belongs to
	Category string `json:"category"`

	// TabletOptimized indicates the app ships a tablet layout
	TabletOptimized bool `json:"tablet_optimized"`

	// StylusSupport indicates the app accepts stylus input
	StylusSupport bool `json:"stylus_support"`
}

// Built-in category names, in display order.
const (
	CategoryProductivity  = "productivity"
	CategoryCreative      = "creative"
	CategoryEntertainment = "entertainment"
	CategoryUtilities     = "utilities"
)

// Catalog maps a category name to its ordered list of apps.
// Order within a category is the insertion order of the JSON source.
type Catalog map[string][]App

// Categories returns category names in a consistent order: the built-in
// categories first, then any others sorted alphabetically.
func (c Catalog) Categories() []string {
	order := []string{CategoryProductivity, CategoryCreative, CategoryEntertainment, CategoryUtilities}

	result := make([]string, 0, len(c))
	seen := make(map[string]bool, len(c))
	for _, cat := range order {
		if _, ok := c[cat]; ok {
			result = append(result, cat)
			seen[cat] = true
		}
	}

	extra := make([]string, 0)
	for cat := range c {
		if !seen[cat] {
			extra = append(extra, cat)
		}
	}
	sort.Strings(extra)

	return append(result, extra...)
}

// Apps returns the apps in a category and whether the category exists.
func (c Catalog) Apps(category string) ([]App, bool) {
	apps, ok := c[category]
	return apps, ok
}

// Len returns the total number of apps across all categories.
func (c Catalog) Len() int {
	n := 0
	for _, apps := range c {
		n += len(apps)
	}
	return n
}
