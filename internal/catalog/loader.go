package catalog

import (
	"encoding/json"
	"fmt"
	"os"
)

// Catalog is the static menu the storefront serves. It is loaded once at
// startup and never mutated afterwards.
type Catalog struct {
	Categories []Category

	items map[int]MenuItem
}

// Load reads and validates the catalog JSON file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	var cats []Category
	if err := json.Unmarshal(data, &cats); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	return New(cats)
}

// New validates the given categories and builds the item index.
func New(cats []Category) (*Catalog, error) {
	items := make(map[int]MenuItem)

	for _, cat := range cats {
		if cat.NameAR == "" || cat.NameEN == "" {
			return nil, fmt.Errorf("category %q/%q: missing name", cat.NameAR, cat.NameEN)
		}
		for _, it := range cat.Items {
			if err := validateItem(it); err != nil {
				return nil, fmt.Errorf("item %d: %w", it.ID, err)
			}
			if _, dup := items[it.ID]; dup {
				return nil, fmt.Errorf("duplicate item id %d", it.ID)
			}
			items[it.ID] = it
		}
	}

	return &Catalog{Categories: cats, items: items}, nil
}

func validateItem(it MenuItem) error {
	if it.NameAR == "" || it.NameEN == "" {
		return fmt.Errorf("missing name")
	}
	if it.Badge != "" && !ValidBadge(it.Badge) {
		return fmt.Errorf("unknown badge %q", it.Badge)
	}

	if !it.Sized() {
		if !it.Price.IsPositive() {
			return fmt.Errorf("price must be positive")
		}
		return nil
	}

	// Sized item: the base price is display-only, each size carries the
	// price that is actually charged.
	seen := make(map[string]bool, len(it.Sizes))
	for _, s := range it.Sizes {
		if s.NameAR == "" || s.NameEN == "" {
			return fmt.Errorf("size missing name")
		}
		if seen[s.NameEN] {
			return fmt.Errorf("duplicate size %q", s.NameEN)
		}
		seen[s.NameEN] = true
		if !s.Price.IsPositive() {
			return fmt.Errorf("size %q: price must be positive", s.NameEN)
		}
	}
	return nil
}

// Item looks a menu item up by id.
func (c *Catalog) Item(id int) (MenuItem, bool) {
	it, ok := c.items[id]
	return it, ok
}
