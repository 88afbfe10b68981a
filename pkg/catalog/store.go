package catalog

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// Store manages the catalog file on disk.
type Store struct {
	path string
}

// NewStore creates a store backed by the catalog file at path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the catalog file path.
func (s *Store) Path() string {
	return s.path
}

// Load returns the catalog. A missing file is seeded with the default
// catalog and persisted; an unreadable or unparsable file is logged and
// the defaults are returned without touching the file on disk.
func (s *Store) Load() Catalog {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			defaults := DefaultCatalog()
			if err := s.Save(defaults); err != nil {
				log.Printf("Warning: failed to save default catalog: %v", err)
			}
			return defaults
		}
		log.Printf("Error: failed to read catalog file: %v", err)
		return DefaultCatalog()
	}

	var c Catalog
	if err := json.Unmarshal(data, &c); err != nil {
		log.Printf("Error: failed to parse catalog file: %v", err)
		return DefaultCatalog()
	}

	return c
}

// Save writes the catalog pretty-printed, creating parent directories as
// needed. Map keys give a stable category order in the output.
func (s *Store) Save(c Catalog) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create catalog directory: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal catalog: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write catalog file: %w", err)
	}

	return nil
}
