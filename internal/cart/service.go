package cart

import (
	"context"
	"errors"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/hamadino877/Al-Nile-Gourmet/internal/catalog"
	"github.com/hamadino877/Al-Nile-Gourmet/internal/logger"
	"github.com/hamadino877/Al-Nile-Gourmet/internal/storage"
)

var (
	// ErrVariantRequired is returned when a sized item is added without a
	// size selection.
	ErrVariantRequired = errors.New("item requires a size selection")

	// ErrUnknownVariant is returned when the selected size does not belong
	// to the item.
	ErrUnknownVariant = errors.New("unknown size for this item")
)

type EventKind string

const (
	EventLineAdded   EventKind = "line_added"
	EventQtyChanged  EventKind = "qty_changed"
	EventLineRemoved EventKind = "line_removed"
	EventCleared     EventKind = "cleared"
)

// Event describes one completed cart mutation. Line is a copy of the
// affected line; it is zero for EventCleared.
type Event struct {
	Kind EventKind
	Line Line
}

// Engine owns the cart lines and is the single source of truth for what
// the visitor intends to order. State is restored from the snapshot store
// at construction and rewritten there after every mutation; a failed write
// is logged and ignored, the in-memory state stays authoritative.
type Engine struct {
	mu        sync.Mutex
	lines     []*Line
	store     storage.Store
	log       logger.Logger
	listeners []func(Event)
}

func NewEngine(store storage.Store, log logger.Logger) *Engine {
	e := &Engine{store: store, log: log}
	e.restore()
	return e
}

func (e *Engine) restore() {
	data, err := e.store.Load(context.Background(), storage.SlotCart)
	if err != nil {
		e.log.Error("cart_restore", "loading cart snapshot failed, starting empty", "", nil, err)
		return
	}
	if data == nil {
		return
	}

	lines, err := decodeSnapshot(data)
	if err != nil {
		e.log.Error("cart_restore", "cart snapshot unreadable, starting empty", "", nil, err)
		return
	}
	e.lines = lines
}

// Subscribe registers a listener invoked after every mutation.
func (e *Engine) Subscribe(fn func(Event)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.listeners = append(e.listeners, fn)
}

// Add puts one unit of the item in the cart, merging with an existing line
// for the same (item, size) combination. variantName is the English name of
// the chosen size; it is mandatory for sized items and forbidden otherwise.
func (e *Engine) Add(item catalog.MenuItem, variantName string) (Line, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	var variant *catalog.SizeVariant
	if item.Sized() {
		if variantName == "" {
			return Line{}, ErrVariantRequired
		}
		v, ok := item.FindVariant(variantName)
		if !ok {
			return Line{}, ErrUnknownVariant
		}
		variant = &v
	} else if variantName != "" {
		return Line{}, ErrUnknownVariant
	}

	key := LineKey{ItemID: item.ID}
	price := item.Price
	if variant != nil {
		key.VariantID = variant.NameEN
		price = variant.Price
	}

	var line *Line
	for _, l := range e.lines {
		if l.Key == key {
			l.Qty++
			line = l
			break
		}
	}
	if line == nil {
		line = &Line{
			Key:       key,
			NameAR:    item.NameAR,
			NameEN:    item.NameEN,
			Variant:   variant,
			Qty:       1,
			UnitPrice: price,
		}
		e.lines = append(e.lines, line)
	}

	e.persist()
	e.emit(Event{Kind: EventLineAdded, Line: *line})
	return *line, nil
}

// ChangeQty adds delta to the line's quantity, removing the line when the
// result drops to zero or below. An unknown line id is a no-op, not an
// error.
func (e *Engine) ChangeQty(lineID string, delta int) (Line, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for i, l := range e.lines {
		if l.Key.String() != lineID {
			continue
		}

		l.Qty += delta
		if l.Qty <= 0 {
			removed := *l
			e.lines = append(e.lines[:i], e.lines[i+1:]...)
			e.persist()
			e.emit(Event{Kind: EventLineRemoved, Line: removed})
			return removed, true
		}

		e.persist()
		e.emit(Event{Kind: EventQtyChanged, Line: *l})
		return *l, true
	}
	return Line{}, false
}

// Remove deletes the line unconditionally. An unknown line id is a no-op.
func (e *Engine) Remove(lineID string) (Line, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for i, l := range e.lines {
		if l.Key.String() != lineID {
			continue
		}

		removed := *l
		e.lines = append(e.lines[:i], e.lines[i+1:]...)
		e.persist()
		e.emit(Event{Kind: EventLineRemoved, Line: removed})
		return removed, true
	}
	return Line{}, false
}

// Clear empties the cart.
func (e *Engine) Clear() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.lines = nil
	e.persist()
	e.emit(Event{Kind: EventCleared})
}

// Lines returns a copy of the cart lines in insertion order.
func (e *Engine) Lines() []Line {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]Line, 0, len(e.lines))
	for _, l := range e.lines {
		out = append(out, *l)
	}
	return out
}

// Total is the grand total, computed fresh from the lines on every call.
func (e *Engine) Total() decimal.Decimal {
	e.mu.Lock()
	defer e.mu.Unlock()

	total := decimal.Zero
	for _, l := range e.lines {
		total = total.Add(l.Subtotal())
	}
	return total
}

// Count is the number of units in the cart, shown on the cart badge.
func (e *Engine) Count() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	count := 0
	for _, l := range e.lines {
		count += l.Qty
	}
	return count
}

func (e *Engine) persist() {
	data, err := encodeSnapshot(e.lines)
	if err != nil {
		e.log.Error("cart_persist", "encoding cart snapshot failed", "", nil, err)
		return
	}
	if err := e.store.Save(context.Background(), storage.SlotCart, data); err != nil {
		e.log.Error("cart_persist", "saving cart snapshot failed", "", nil, err)
	}
}

func (e *Engine) emit(ev Event) {
	for _, fn := range e.listeners {
		fn(ev)
	}
}
