package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"sync"

	"vishnu-auto/internal/domain"
	"vishnu-auto/internal/notify"
	"vishnu-auto/internal/store"
)

type catalogLookup interface {
	ProductByID(ctx context.Context, id int64) (*domain.Product, error)
}

// Service is the cart manager: an in-memory line list mirrored to the store
// on every mutation. At most one line exists per product id; adding the same
// product again bumps the quantity instead.
type Service struct {
	mu       sync.Mutex
	st       store.Store
	catalog  catalogLookup
	notifier notify.Dispatcher
	logger   *log.Logger

	lines []domain.CartLine
}

func New(st store.Store, catalog catalogLookup, notifier notify.Dispatcher, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	if notifier == nil {
		notifier = notify.Nop{}
	}
	return &Service{st: st, catalog: catalog, notifier: notifier, logger: logger}
}

// Load restores the persisted cart. An absent key means an empty cart.
func (s *Service) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := s.st.Get(ctx, store.KeyCart)
	if errors.Is(err, domain.ErrNotFound) {
		s.lines = nil
		return nil
	}
	if err != nil {
		return fmt.Errorf("load cart: %w", err)
	}
	if err := json.Unmarshal(raw, &s.lines); err != nil {
		return fmt.Errorf("decode cart: %w", err)
	}
	return nil
}

// Add puts quantity units of the product into the cart. The line snapshots
// the product's current price and name; unknown product ids return
// domain.ErrNotFound.
func (s *Service) Add(ctx context.Context, productID int64, quantity int) error {
	if quantity < 1 {
		quantity = 1
	}
	product, err := s.catalog.ProductByID(ctx, productID)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	merged := false
	for i := range s.lines {
		if s.lines[i].ProductID == productID {
			s.lines[i].Quantity += quantity
			merged = true
			break
		}
	}
	if !merged {
		s.lines = append(s.lines, domain.CartLine{
			ProductID:   product.ID,
			Name:        product.Name,
			Price:       product.Price,
			Category:    product.Category,
			Description: product.Description,
			Quantity:    quantity,
		})
	}
	if err := s.persistLocked(ctx); err != nil {
		return err
	}
	s.notifier.Notify("Product added to cart!", notify.LevelSuccess)
	return nil
}

// Remove deletes the line for the product id. An id not in the cart is a
// successful no-op.
func (s *Service) Remove(ctx context.Context, productID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.lines[:0]
	removed := false
	for _, l := range s.lines {
		if l.ProductID == productID {
			removed = true
			continue
		}
		kept = append(kept, l)
	}
	s.lines = kept
	if !removed {
		return nil
	}
	return s.persistLocked(ctx)
}

// Clear empties the cart and persists the empty list.
func (s *Service) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = nil
	return s.persistLocked(ctx)
}

// Lines returns a copy of the current cart contents.
func (s *Service) Lines() []domain.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.CopyLines(s.lines)
}

// Total is the sum of price times quantity across all lines.
func (s *Service) Total() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.LinesSubtotal(s.lines)
}

// ItemCount is the sum of quantities across all lines.
func (s *Service) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for _, l := range s.lines {
		count += l.Quantity
	}
	return count
}

func (s *Service) persistLocked(ctx context.Context) error {
	lines := s.lines
	if lines == nil {
		lines = []domain.CartLine{}
	}
	encoded, err := json.Marshal(lines)
	if err != nil {
		return err
	}
	return s.st.Set(ctx, store.KeyCart, encoded)
}
