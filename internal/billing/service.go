package billing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"sync"
	"time"

	"vishnu-auto/internal/domain"
	"vishnu-auto/internal/store"
)

type packageLookup interface {
	PackageByID(ctx context.Context, id int64) (*domain.ServicePackage, error)
}

// Service derives bills from completed bookings and keeps the append-only
// bill log. Generating twice for one booking appends two entries; there is
// no dedup key.
type Service struct {
	mu      sync.Mutex
	st      store.Store
	catalog packageLookup
	logger  *log.Logger

	bills []domain.Bill
}

func New(st store.Store, catalog packageLookup, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{st: st, catalog: catalog, logger: logger}
}

// Load restores the persisted bill log.
func (s *Service) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := s.st.Get(ctx, store.KeyBills)
	if errors.Is(err, domain.ErrNotFound) {
		s.bills = nil
		return nil
	}
	if err != nil {
		return fmt.Errorf("load bills: %w", err)
	}
	if err := json.Unmarshal(raw, &s.bills); err != nil {
		return fmt.Errorf("decode bills: %w", err)
	}
	return nil
}

// Generate builds a bill from the booking and appends it to the log. The
// total is the package price plus the booking's cart snapshot subtotal; the
// live cart plays no part here since it is cleared before billing runs.
func (s *Service) Generate(ctx context.Context, booking domain.Booking) (*domain.Bill, error) {
	pkg, err := s.catalog.PackageByID(ctx, booking.PackageID)
	if err != nil {
		// The booking engine validates the package before calling us, so
		// this is a programmer error rather than user input.
		return nil, fmt.Errorf("bill for booking %d: %w", booking.ID, err)
	}

	items := domain.CopyLines(booking.CartItems)
	bill := domain.Bill{
		BookingID:     booking.ID,
		CustomerName:  booking.CustomerName,
		CustomerPhone: booking.CustomerPhone,
		Date:          booking.Date,
		Time:          booking.Time,
		ServiceName:   pkg.Name,
		ServicePrice:  pkg.Price,
		Items:         items,
		TotalAmount:   pkg.Price + domain.LinesSubtotal(items),
		CreatedAt:     time.Now().Format("02/01/2006"),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.bills = append(s.bills, bill)
	if err := s.persistLocked(ctx); err != nil {
		return nil, err
	}
	s.logger.Printf("billing: generated bill booking_id=%d total=%d", bill.BookingID, bill.TotalAmount)
	return &bill, nil
}

// Bills returns a copy of the bill log, oldest first.
func (s *Service) Bills() []domain.Bill {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Bill, len(s.bills))
	copy(out, s.bills)
	return out
}

// ByBookingID returns the first bill recorded for a booking.
func (s *Service) ByBookingID(bookingID int64) (*domain.Bill, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, b := range s.bills {
		if b.BookingID == bookingID {
			cp := b
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *Service) persistLocked(ctx context.Context) error {
	encoded, err := json.Marshal(s.bills)
	if err != nil {
		return err
	}
	return s.st.Set(ctx, store.KeyBills, encoded)
}
