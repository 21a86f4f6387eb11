package catalog

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

type permissionChecker interface {
	HasPermission(p domain.Permission) bool
}

// Service owns the product and service-package lists. Admin mutations are
// permission-gated and rewrite the full product blob in the store.
type Service struct {
	mu       sync.Mutex
	st       store.Store
	perms    permissionChecker
	notifier notify.Dispatcher
	ids      *idgen.Generator
	logger   *log.Logger

	products []domain.Product
	packages []domain.ServicePackage
}

func New(st store.Store, perms permissionChecker, notifier notify.Dispatcher, ids *idgen.Generator, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	if notifier == nil {
		notifier = notify.Nop{}
	}
	return &Service{st: st, perms: perms, notifier: notifier, ids: ids, logger: logger}
}

// Load pulls the catalog from the store, falling back to the built-in
// defaults (and persisting them) when a key is absent.
func (s *Service) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := s.st.Get(ctx, store.KeyProducts)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		s.products = append([]domain.Product(nil), defaultProducts...)
		if err := s.persistProductsLocked(ctx); err != nil {
			return fmt.Errorf("seed products: %w", err)
		}
	case err != nil:
		return fmt.Errorf("load products: %w", err)
	default:
		if err := json.Unmarshal(raw, &s.products); err != nil {
			return fmt.Errorf("decode products: %w", err)
		}
	}

	raw, err = s.st.Get(ctx, store.KeyServicePackages)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		s.packages = append([]domain.ServicePackage(nil), defaultPackages...)
		encoded, err := json.Marshal(s.packages)
		if err != nil {
			return err
		}
		if err := s.st.Set(ctx, store.KeyServicePackages, encoded); err != nil {
			return fmt.Errorf("seed service packages: %w", err)
		}
	case err != nil:
		return fmt.Errorf("load service packages: %w", err)
	default:
		if err := json.Unmarshal(raw, &s.packages); err != nil {
			return fmt.Errorf("decode service packages: %w", err)
		}
	}

	s.logger.Printf("catalog: loaded products=%d packages=%d", len(s.products), len(s.packages))
	return nil
}

func (s *Service) Products() []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Product, len(s.products))
	copy(out, s.products)
	return out
}

func (s *Service) ProductByID(_ context.Context, id int64) (*domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.products {
		if p.ID == id {
			cp := p
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *Service) Packages() []domain.ServicePackage {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.ServicePackage, len(s.packages))
	copy(out, s.packages)
	return out
}

func (s *Service) PackageByID(_ context.Context, id int64) (*domain.ServicePackage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.packages {
		if p.ID == id {
			cp := p
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

// ProductInput carries the fields an admin submits for a new product.
type ProductInput struct {
	Name        string `json:"name"`
	Price       int64  `json:"price"`
	Category    string `json:"category"`
	Stock       int    `json:"stock"`
	Description string `json:"description"`
}

// UpdateInput is a partial product update; nil fields are left untouched.
type UpdateInput struct {
	Name        *string `json:"name"`
	Price       *int64  `json:"price"`
	Category    *string `json:"category"`
	Stock       *int    `json:"stock"`
	Description *string `json:"description"`
}

func (s *Service) AddProduct(ctx context.Context, in ProductInput) (*domain.Product, error) {
	if !s.perms.HasPermission(domain.PermWrite) {
		return nil, domain.ErrUnauthorized
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	product := domain.Product{
		ID:          s.ids.Next(),
		Name:        in.Name,
		Price:       in.Price,
		Category:    in.Category,
		Stock:       in.Stock,
		Description: in.Description,
		CreatedAt:   time.Now().UTC(),
	}
	s.products = append(s.products, product)
	if err := s.persistProductsLocked(ctx); err != nil {
		return nil, err
	}
	s.notifier.Notify("Product added successfully!", notify.LevelSuccess)
	s.logger.Printf("catalog: added product id=%d name=%q", product.ID, product.Name)
	return &product, nil
}

func (s *Service) UpdateProduct(ctx context.Context, id int64, in UpdateInput) (*domain.Product, error) {
	if !s.perms.HasPermission(domain.PermWrite) {
		return nil, domain.ErrUnauthorized
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, p := range s.products {
		if p.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, domain.ErrNotFound
	}

	p := &s.products[idx]
	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Price != nil {
		p.Price = *in.Price
	}
	if in.Category != nil {
		p.Category = *in.Category
	}
	if in.Stock != nil {
		p.Stock = *in.Stock
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if err := s.persistProductsLocked(ctx); err != nil {
		return nil, err
	}
	s.notifier.Notify("Product updated successfully!", notify.LevelSuccess)
	cp := *p
	return &cp, nil
}

func (s *Service) DeleteProduct(ctx context.Context, id int64) error {
	if !s.perms.HasPermission(domain.PermDelete) {
		return domain.ErrUnauthorized
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.products[:0]
	found := false
	for _, p := range s.products {
		if p.ID == id {
			found = true
			continue
		}
		kept = append(kept, p)
	}
	if !found {
		return domain.ErrNotFound
	}
	s.products = kept
	if err := s.persistProductsLocked(ctx); err != nil {
		return err
	}
	s.notifier.Notify("Product deleted successfully!", notify.LevelSuccess)
	s.logger.Printf("catalog: deleted product id=%d", id)
	return nil
}

func (s *Service) persistProductsLocked(ctx context.Context) error {
	encoded, err := json.Marshal(s.products)
	if err != nil {
		return err
	}
	return s.st.Set(ctx, store.KeyProducts, encoded)
}
