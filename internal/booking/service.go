package booking

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
	"vishnu-auto/internal/idgen"
	"vishnu-auto/internal/notify"
	"vishnu-auto/internal/store"
)

type packageLookup interface {
	PackageByID(ctx context.Context, id int64) (*domain.ServicePackage, error)
}

type cartManager interface {
	Lines() []domain.CartLine
	Clear(ctx context.Context) error
}

type billGenerator interface {
	Generate(ctx context.Context, booking domain.Booking) (*domain.Bill, error)
}

type permissionChecker interface {
	HasPermission(p domain.Permission) bool
}

// Service turns a service package plus customer form data plus the current
// cart into a booking. Booking doubles as checkout: the generated bill
// charges the package price plus whatever was in the cart at that moment.
type Service struct {
	mu       sync.Mutex
	st       store.Store
	catalog  packageLookup
	cart     cartManager
	billing  billGenerator
	perms    permissionChecker
	notifier notify.Dispatcher
	ids      *idgen.Generator
	logger   *log.Logger

	shopName    string
	countryCode string

	bookings []domain.Booking
}

type Config struct {
	ShopName    string
	CountryCode string
}

func New(st store.Store, catalog packageLookup, cart cartManager, billing billGenerator, perms permissionChecker, notifier notify.Dispatcher, ids *idgen.Generator, cfg Config, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	if notifier == nil {
		notifier = notify.Nop{}
	}
	return &Service{
		st:          st,
		catalog:     catalog,
		cart:        cart,
		billing:     billing,
		perms:       perms,
		notifier:    notifier,
		ids:         ids,
		logger:      logger,
		shopName:    cfg.ShopName,
		countryCode: cfg.CountryCode,
	}
}

// Load restores the persisted booking log.
func (s *Service) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := s.st.Get(ctx, store.KeyBookings)
	if errors.Is(err, domain.ErrNotFound) {
		s.bookings = nil
		return nil
	}
	if err != nil {
		return fmt.Errorf("load bookings: %w", err)
	}
	if err := json.Unmarshal(raw, &s.bookings); err != nil {
		return fmt.Errorf("decode bookings: %w", err)
	}
	return nil
}

// CustomerInput is the booking form payload.
type CustomerInput struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
	Date  string `json:"date"`
	Time  string `json:"time"`
}

// Book creates a pending booking for the package. Side effects run in order:
// the booking is appended and persisted, the cart is cleared, the bill is
// generated, and the WhatsApp summary link is built and returned for the
// frontend to open. An unknown package id returns domain.ErrNotFound with
// nothing changed.
func (s *Service) Book(ctx context.Context, packageID int64, customer CustomerInput) (*domain.Booking, string, error) {
	pkg, err := s.catalog.PackageByID(ctx, packageID)
	if err != nil {
		return nil, "", err
	}

	booking := domain.Booking{
		ID:            s.ids.Next(),
		PackageID:     packageID,
		CustomerName:  customer.Name,
		CustomerPhone: customer.Phone,
		CustomerEmail: customer.Email,
		Date:          customer.Date,
		Time:          customer.Time,
		Status:        domain.StatusPending,
		TotalPrice:    pkg.Price,
		CartItems:     s.cart.Lines(),
		CreatedAt:     time.Now().UTC(),
	}

	s.mu.Lock()
	s.bookings = append(s.bookings, booking)
	err = s.persistLocked(ctx)
	s.mu.Unlock()
	if err != nil {
		return nil, "", err
	}

	if err := s.cart.Clear(ctx); err != nil {
		return nil, "", fmt.Errorf("clear cart after booking %d: %w", booking.ID, err)
	}
	if _, err := s.billing.Generate(ctx, booking); err != nil {
		return nil, "", err
	}

	link := notify.WhatsAppLink(s.shopName, s.countryCode, booking, *pkg)
	s.notifier.Notify("Service booked successfully!", notify.LevelSuccess)
	s.logger.Printf("booking: created id=%d package=%d items=%d", booking.ID, packageID, len(booking.CartItems))

	cp := booking
	cp.CartItems = domain.CopyLines(booking.CartItems)
	return &cp, link, nil
}

// UpdateStatus sets a booking's status. Requires the write permission; the
// status set is open, so unknown values are stored as-is.
func (s *Service) UpdateStatus(ctx context.Context, bookingID int64, status domain.BookingStatus) error {
	if !s.perms.HasPermission(domain.PermWrite) {
		return domain.ErrUnauthorized
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.bookings {
		if s.bookings[i].ID == bookingID {
			s.bookings[i].Status = status
			if err := s.persistLocked(ctx); err != nil {
				return err
			}
			s.notifier.Notify("Booking status updated!", notify.LevelSuccess)
			return nil
		}
	}
	return domain.ErrNotFound
}

// Bookings returns a copy of the booking log, oldest first.
func (s *Service) Bookings() []domain.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Booking, len(s.bookings))
	copy(out, s.bookings)
	for i := range out {
		out[i].CartItems = domain.CopyLines(out[i].CartItems)
	}
	return out
}

// ByID returns a single booking.
func (s *Service) ByID(bookingID int64) (*domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, b := range s.bookings {
		if b.ID == bookingID {
			cp := b
			cp.CartItems = domain.CopyLines(b.CartItems)
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *Service) persistLocked(ctx context.Context) error {
	encoded, err := json.Marshal(s.bookings)
	if err != nil {
		return err
	}
	return s.st.Set(ctx, store.KeyBookings, encoded)
}
