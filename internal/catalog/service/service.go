// Package service provides the implementation of catalog-related business logic.
package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/abgdnv/storefront/internal/catalog"
	cerrors "github.com/abgdnv/storefront/internal/catalog/errors"
	"github.com/abgdnv/storefront/internal/catalog/store"
	"github.com/google/uuid"
)

// CatalogService defines the methods for browsing and managing the product catalog.
type CatalogService interface {
	// Load fetches the whole catalog from the product store. It is called once
	// per service session; a failed load is recorded and reported by Search
	// until the next Reload.
	Load(ctx context.Context) error

	// Search returns the catalog filtered and sorted per the store page's
	// controls. Returns ErrCatalogUnavailable if the session load failed.
	Search(ctx context.Context, query catalog.Query, order catalog.SortOrder) ([]catalog.Product, error)

	// Categories returns the distinct categories of the loaded catalog.
	Categories(ctx context.Context) ([]string, error)

	// FindByID retrieves a single product from the loaded catalog.
	// Returns ErrProductNotFound if no product exists with the given ID.
	FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error)

	// FindPage returns a page of products for the admin listing, straight from
	// the store rather than the session snapshot.
	FindPage(ctx context.Context, offset, limit int32) ([]catalog.Product, error)

	// Create adds a new product and reloads the catalog snapshot.
	Create(ctx context.Context, dto ProductCreateDto) (*catalog.Product, error)

	// Update modifies an existing product and reloads the catalog snapshot.
	// Returns ErrProductNotFound if no product exists with the given ID.
	Update(ctx context.Context, id uuid.UUID, dto ProductCreateDto) (*catalog.Product, error)

	// DeleteByID removes a product and reloads the catalog snapshot.
	// Returns ErrProductNotFound if no product exists with the given ID.
	DeleteByID(ctx context.Context, id uuid.UUID) error
}

// ProductCreateDto represents the data transfer object for creating or updating a product.
type ProductCreateDto struct {
	Name        string  `json:"name"        validate:"required,max=100"`
	Price       float64 `json:"price"       validate:"gte=0"`
	Category    string  `json:"category"    validate:"required,max=100"`
	Description string  `json:"description" validate:"max=2000"`
	ImageURL    string  `json:"image_url"   validate:"omitempty,url"`
}

// Service implements CatalogService. The loaded snapshot is replaced wholesale
// on every (re)load and never mutated in place, so readers can hold a returned
// slice without synchronization.
type Service struct {
	repository store.ProductStore

	mu       sync.RWMutex
	products []catalog.Product
	loadErr  error
	loaded   bool
}

// NewService creates a new instance of CatalogService with the provided repository.
func NewService(repo store.ProductStore) *Service {
	return &Service{
		repository: repo,
	}
}

var _ CatalogService = (*Service)(nil)

// Load fetches the catalog once and records the outcome.
func (s *Service) Load(ctx context.Context) error {
	products, err := s.repository.FindAll(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loaded = true
	if err != nil {
		s.loadErr = fmt.Errorf("failed to fetch products: %w", err)
		s.products = nil
		return s.loadErr
	}
	s.loadErr = nil
	s.products = products
	return nil
}

// Search filters and sorts the loaded snapshot. An empty catalog during the
// load window is not an error; only an explicitly failed load is.
func (s *Service) Search(_ context.Context, query catalog.Query, order catalog.SortOrder) ([]catalog.Product, error) {
	products, err := s.snapshot()
	if err != nil {
		return nil, err
	}
	return catalog.SortByPrice(catalog.Filter(products, query), order), nil
}

// Categories returns the distinct categories of the loaded catalog.
func (s *Service) Categories(_ context.Context) ([]string, error) {
	products, err := s.snapshot()
	if err != nil {
		return nil, err
	}
	return catalog.Categories(products), nil
}

// FindByID retrieves a product from the loaded snapshot.
func (s *Service) FindByID(_ context.Context, id uuid.UUID) (*catalog.Product, error) {
	products, err := s.snapshot()
	if err != nil {
		return nil, err
	}
	for _, p := range products {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, cerrors.ErrProductNotFound
}

// FindPage returns a page of products for the admin listing.
func (s *Service) FindPage(ctx context.Context, offset, limit int32) ([]catalog.Product, error) {
	products, err := s.repository.FindPage(ctx, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch product page: %w", err)
	}
	return products, nil
}

// Create adds a new product and reloads the catalog snapshot.
func (s *Service) Create(ctx context.Context, dto ProductCreateDto) (*catalog.Product, error) {
	product, err := s.repository.Create(ctx, toParams(dto))
	if err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	s.reload(ctx)
	return product, nil
}

// Update modifies an existing product and reloads the catalog snapshot.
func (s *Service) Update(ctx context.Context, id uuid.UUID, dto ProductCreateDto) (*catalog.Product, error) {
	product, err := s.repository.Update(ctx, id, toParams(dto))
	if err != nil {
		return nil, fmt.Errorf("failed to update product with ID %s: %w", id, err)
	}
	s.reload(ctx)
	return product, nil
}

// DeleteByID removes a product and reloads the catalog snapshot.
func (s *Service) DeleteByID(ctx context.Context, id uuid.UUID) error {
	if err := s.repository.DeleteByID(ctx, id); err != nil {
		return err
	}
	s.reload(ctx)
	return nil
}

// snapshot returns the loaded products, or the recorded load error.
func (s *Service) snapshot() ([]catalog.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.loadErr != nil {
		return nil, fmt.Errorf("%w: %w", cerrors.ErrCatalogUnavailable, s.loadErr)
	}
	return s.products, nil
}

// reload refreshes the snapshot after an admin mutation. A failed refetch is
// recorded by Load and surfaces on the next Search.
func (s *Service) reload(ctx context.Context) {
	_ = s.Load(ctx)
}

func toParams(dto ProductCreateDto) store.ProductCreateParams {
	return store.ProductCreateParams{
		Name:        dto.Name,
		Price:       dto.Price,
		Category:    dto.Category,
		Description: dto.Description,
		ImageURL:    dto.ImageURL,
	}
}
