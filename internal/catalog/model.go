package catalog

import "github.com/shopspring/decimal"

// Badge is a promotional tag on a menu item, also used by the storefront
// filter tabs.
type Badge string

const (
	BadgeBestseller Badge = "bestseller"
	BadgeNew        Badge = "new"
	BadgeSpicy      Badge = "spicy"
	BadgeSpecial    Badge = "special"
)

// FilterAll disables badge filtering in the projection.
const FilterAll = "all"

func ValidBadge(b Badge) bool {
	switch b {
	case BadgeBestseller, BadgeNew, BadgeSpicy, BadgeSpecial:
		return true
	}
	return false
}

func ValidFilter(f string) bool {
	return f == FilterAll || ValidBadge(Badge(f))
}

// SizeVariant is one priced size of a menu item. Its English name is the
// variant's identity inside the item.
type SizeVariant struct {
	NameAR string          `json:"size_ar"`
	NameEN string          `json:"size_en"`
	Price  decimal.Decimal `json:"price"`
}

type MenuItem struct {
	ID     int    `json:"id"`
	NameAR string `json:"name_ar"`
	NameEN string `json:"name_en"`

	// Price is the base price; it only applies when the item has no sizes.
	Price decimal.Decimal `json:"price"`

	Badge  Badge         `json:"badge,omitempty"`
	Images []string      `json:"image,omitempty"`
	Sizes  []SizeVariant `json:"sizes,omitempty"`
}

// Sized reports whether the item must be ordered with a size selection.
func (i MenuItem) Sized() bool {
	return len(i.Sizes) > 0
}

// FindVariant looks a size up by its English name.
func (i MenuItem) FindVariant(nameEN string) (SizeVariant, bool) {
	for _, s := range i.Sizes {
		if s.NameEN == nameEN {
			return s, true
		}
	}
	return SizeVariant{}, false
}

type Category struct {
	NameAR string     `json:"category_ar"`
	NameEN string     `json:"category_en"`
	Image  string     `json:"image,omitempty"`
	Items  []MenuItem `json:"items"`
}
