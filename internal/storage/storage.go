package storage

import (
	"context"
	"errors"
)

// Known persistence keys. The whole system persists exactly two documents:
// the signed-in identity and the aggregate application state.
const (
	KeySession = "current_user"
	KeyAppData = "equipment_rental_data"
)

var ErrNotFound = errors.New("storage: key not found")

// KeyValueStore is the persistence boundary. Values are opaque JSON
// documents; callers own serialization. Implementations must return
// ErrNotFound from Get for a missing key and treat Delete of a missing
// key as success.
type KeyValueStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}
