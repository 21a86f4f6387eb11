package seed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"vishnu-auto/internal/catalog"
	"vishnu-auto/internal/domain"
	"vishnu-auto/internal/store"
)

// Apply writes the default catalog blobs for manual testing. It is
// idempotent: keys that already hold data are left alone.
func Apply(ctx context.Context, st store.Store) error {
	if err := seedKey(ctx, st, store.KeyProducts, catalog.DefaultProducts()); err != nil {
		return fmt.Errorf("seed products: %w", err)
	}
	if err := seedKey(ctx, st, store.KeyServicePackages, catalog.DefaultPackages()); err != nil {
		return fmt.Errorf("seed service packages: %w", err)
	}
	return nil
}

func seedKey(ctx context.Context, st store.Store, key string, value any) error {
	_, err := st.Get(ctx, key)
	if err == nil {
		return nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return err
	}
	encoded, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return st.Set(ctx, key, encoded)
}
