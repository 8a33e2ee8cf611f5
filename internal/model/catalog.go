package model

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var embeddedCatalog []byte

type catalogFile struct {
	Activities []Activity `yaml:"activities"`
}

// DefaultCatalog returns the built-in activity catalog.
func DefaultCatalog() ([]Activity, error) {
	return parseCatalog(embeddedCatalog)
}

// LoadCatalog reads a user-supplied catalog file, replacing the built-in set.
func LoadCatalog(path string) ([]Activity, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return parseCatalog(raw)
}

func parseCatalog(raw []byte) ([]Activity, error) {
	var file catalogFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if len(file.Activities) == 0 {
		return nil, fmt.Errorf("parse catalog: no activities defined")
	}
	for _, act := range file.Activities {
		if err := act.Validate(); err != nil {
			return nil, fmt.Errorf("catalog entry %q: %w", act.ID, err)
		}
	}
	return file.Activities, nil
}

// CatalogByCategory groups catalog entries preserving catalog order within
// each category.
func CatalogByCategory(catalog []Activity) map[Category][]Activity {
	grouped := make(map[Category][]Activity)
	for _, act := range catalog {
		grouped[act.Category] = append(grouped[act.Category], act)
	}
	return grouped
}
