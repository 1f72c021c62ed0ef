package storage

import "context"

// Slots the storefront persists. Every save rewrites the whole slot.
const (
	SlotCart      = "cart"
	SlotFavorites = "favorites"
)

// Store is the durable home of storefront snapshots.
// Load returns (nil, nil) for a slot that has never been written.
type Store interface {
	Load(ctx context.Context, slot string) ([]byte, error)
	Save(ctx context.Context, slot string, data []byte) error
}
