package store

import "context"

// Well-known keys. Each holds the JSON serialization of the corresponding
// entity list or object; every mutation rewrites the whole blob.
const (
	KeyProducts        = "products"
	KeyServicePackages = "service-packages"
	KeyCart            = "cart"
	KeyBookings        = "bookings"
	KeyBills           = "bills"
	KeySession         = "current-session"
)

// Store is the key-value blob adapter the services persist through. Get
// returns domain.ErrNotFound for an absent key; Delete on an absent key is
// a no-op.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
