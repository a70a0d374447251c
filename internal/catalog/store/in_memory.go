package store

import (
	"context"
	"sync"

	"github.com/abgdnv/storefront/internal/catalog"
	"github.com/abgdnv/storefront/internal/catalog/errors"
	"github.com/google/uuid"
)

// inMemory implements ProductStore using an in-memory map.
type inMemory struct {
	mu       sync.RWMutex
	products map[uuid.UUID]catalog.Product
	order    []uuid.UUID
}

// NewInMemoryStore creates a new instance of ProductStore
func NewInMemoryStore() ProductStore {
	return &inMemory{
		products: make(map[uuid.UUID]catalog.Product),
	}
}

// FindAll retrieves all products in insertion order.
func (s *inMemory) FindAll(_ context.Context) ([]catalog.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]catalog.Product, 0, len(s.order))
	for _, id := range s.order {
		list = append(list, s.products[id])
	}
	return list, nil
}

// FindPage retrieves a page of products.
func (s *inMemory) FindPage(ctx context.Context, offset, limit int32) ([]catalog.Product, error) {
	all, err := s.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if int(offset) >= len(all) {
		return []catalog.Product{}, nil
	}
	end := int(offset) + int(limit)
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

// FindByID retrieves a product by its ID.
func (s *inMemory) FindByID(_ context.Context, id uuid.UUID) (*catalog.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.products[id]
	if !ok {
		return nil, errors.ErrProductNotFound
	}
	return &p, nil
}

// Create creates a new product and returns it.
func (s *inMemory) Create(_ context.Context, params ProductCreateParams) (*catalog.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	product := catalog.Product{
		ID:          uuid.New(),
		Name:        params.Name,
		Price:       params.Price,
		Category:    params.Category,
		Description: params.Description,
		ImageURL:    params.ImageURL,
	}
	s.products[product.ID] = product
	s.order = append(s.order, product.ID)

	return &product, nil
}

// Update modifies an existing product.
func (s *inMemory) Update(_ context.Context, id uuid.UUID, params ProductCreateParams) (*catalog.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.products[id]; !exists {
		return nil, errors.ErrProductNotFound
	}
	product := catalog.Product{
		ID:          id,
		Name:        params.Name,
		Price:       params.Price,
		Category:    params.Category,
		Description: params.Description,
		ImageURL:    params.ImageURL,
	}
	s.products[id] = product
	return &product, nil
}

// DeleteByID deletes a product by its ID.
func (s *inMemory) DeleteByID(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.products[id]; !exists {
		return errors.ErrProductNotFound
	}
	delete(s.products, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}
