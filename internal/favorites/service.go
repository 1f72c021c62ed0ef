package favorites

import (
	"context"
	"encoding/json"
	"sort"
	"sync"

	"github.com/hamadino877/Al-Nile-Gourmet/internal/logger"
	"github.com/hamadino877/Al-Nile-Gourmet/internal/storage"
)

// Tracker owns the set of favorite item ids. Like the cart engine it is
// restored from the snapshot store at construction and rewritten there
// after every toggle, best effort.
type Tracker struct {
	mu    sync.Mutex
	ids   map[int]struct{}
	store storage.Store
	log   logger.Logger
}

func NewTracker(store storage.Store, log logger.Logger) *Tracker {
	t := &Tracker{
		ids:   make(map[int]struct{}),
		store: store,
		log:   log,
	}
	t.restore()
	return t
}

func (t *Tracker) restore() {
	data, err := t.store.Load(context.Background(), storage.SlotFavorites)
	if err != nil {
		t.log.Error("favorites_restore", "loading favorites snapshot failed, starting empty", "", nil, err)
		return
	}
	if data == nil {
		return
	}

	var ids []int
	if err := json.Unmarshal(data, &ids); err != nil {
		t.log.Error("favorites_restore", "favorites snapshot unreadable, starting empty", "", nil, err)
		return
	}
	for _, id := range ids {
		t.ids[id] = struct{}{}
	}
}

// Toggle flips the item's membership and reports whether it is now a
// favorite.
func (t *Tracker) Toggle(itemID int) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	_, exists := t.ids[itemID]
	if exists {
		delete(t.ids, itemID)
	} else {
		t.ids[itemID] = struct{}{}
	}

	t.persist()
	return !exists
}

// Contains reports membership without mutating anything.
func (t *Tracker) Contains(itemID int) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	_, ok := t.ids[itemID]
	return ok
}

// Items returns the favorite ids sorted ascending, which also fixes the
// serialized order.
func (t *Tracker) Items() []int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.sorted()
}

func (t *Tracker) sorted() []int {
	out := make([]int, 0, len(t.ids))
	for id := range t.ids {
		out = append(out, id)
	}
	sort.Ints(out)
	return out
}

func (t *Tracker) persist() {
	data, err := json.Marshal(t.sorted())
	if err != nil {
		t.log.Error("favorites_persist", "encoding favorites snapshot failed", "", nil, err)
		return
	}
	if err := t.store.Save(context.Background(), storage.SlotFavorites, data); err != nil {
		t.log.Error("favorites_persist", "saving favorites snapshot failed", "", nil, err)
	}
}
