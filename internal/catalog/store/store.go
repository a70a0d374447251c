// Package store provides an interface for product storage operations.
package store

import (
	"context"

	"github.com/abgdnv/storefront/internal/catalog"
	"github.com/google/uuid"
)

// ProductCreateParams are the attributes of a new product row.
type ProductCreateParams struct {
	Name        string
	Price       float64
	Category    string
	Description string
	ImageURL    string
}

// ProductStore is an interface for product storage operations.
// It abstracts the underlying data store, allowing for different implementations (e.g., in-memory, database).
type ProductStore interface {
	// FindAll returns the whole catalog, used for the session load.
	// Returns an empty slice if no products exist.
	FindAll(ctx context.Context) ([]catalog.Product, error)

	// FindPage returns a page of products for the admin listing.
	FindPage(ctx context.Context, offset, limit int32) ([]catalog.Product, error)

	// FindByID retrieves a single product by its unique identifier.
	// Returns ErrProductNotFound if no product exists with the given ID.
	FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error)

	// Create adds a new product to the catalog.
	Create(ctx context.Context, params ProductCreateParams) (*catalog.Product, error)

	// Update modifies an existing product's details.
	// Returns ErrProductNotFound if no product exists with the given ID.
	Update(ctx context.Context, id uuid.UUID, params ProductCreateParams) (*catalog.Product, error)

	// DeleteByID removes a product by its ID.
	// Returns ErrProductNotFound if no product exists with the given ID.
	DeleteByID(ctx context.Context, id uuid.UUID) error
}
