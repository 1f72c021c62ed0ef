package cart

import (
	"encoding/json"

	"github.com/shopspring/decimal"

	"github.com/hamadino877/Al-Nile-Gourmet/internal/catalog"
)

// snapshotLine is the persisted shape of one cart line.
type snapshotLine struct {
	LineID    string               `json:"line_id"`
	ItemID    int                  `json:"item_id"`
	NameAR    string               `json:"name_ar"`
	NameEN    string               `json:"name_en"`
	Variant   *catalog.SizeVariant `json:"variant,omitempty"`
	Qty       int                  `json:"qty"`
	UnitPrice decimal.Decimal      `json:"unit_price"`
}

func encodeSnapshot(lines []*Line) ([]byte, error) {
	out := make([]snapshotLine, 0, len(lines))
	for _, l := range lines {
		out = append(out, snapshotLine{
			LineID:    l.Key.String(),
			ItemID:    l.Key.ItemID,
			NameAR:    l.NameAR,
			NameEN:    l.NameEN,
			Variant:   l.Variant,
			Qty:       l.Qty,
			UnitPrice: l.UnitPrice,
		})
	}
	return json.Marshal(out)
}

func decodeSnapshot(data []byte) ([]*Line, error) {
	var rows []snapshotLine
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, err
	}

	lines := make([]*Line, 0, len(rows))
	for _, r := range rows {
		// A persisted line never has qty <= 0; skip anything that does.
		if r.Qty <= 0 {
			continue
		}
		key := LineKey{ItemID: r.ItemID}
		if r.Variant != nil {
			key.VariantID = r.Variant.NameEN
		}
		lines = append(lines, &Line{
			Key:       key,
			NameAR:    r.NameAR,
			NameEN:    r.NameEN,
			Variant:   r.Variant,
			Qty:       r.Qty,
			UnitPrice: r.UnitPrice,
		})
	}
	return lines, nil
}
