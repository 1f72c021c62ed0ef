package cart

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/hamadino877/Al-Nile-Gourmet/internal/catalog"
)

// DefaultVariant is the variant token used in line ids for items added
// without a size selection.
const DefaultVariant = "default"

// LineKey identifies a unique cart line: one (item, size) combination.
// Two adds with the same key merge into a single line.
type LineKey struct {
	ItemID int

	// VariantID is the selected size's English name, empty when the item
	// has no sizes.
	VariantID string
}

// String is the transport form of the key, used as the line id in HTTP
// routes and snapshots. Equality checks always use the struct, never this
// string.
func (k LineKey) String() string {
	v := k.VariantID
	if v == "" {
		v = DefaultVariant
	}
	return fmt.Sprintf("%d-%s", k.ItemID, v)
}

// Line is one merged cart entry. Display fields and the unit price are
// copied from the catalog at add time and never change afterwards.
type Line struct {
	Key       LineKey
	NameAR    string
	NameEN    string
	Variant   *catalog.SizeVariant
	Qty       int
	UnitPrice decimal.Decimal
}

func (l Line) Subtotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Qty)))
}
