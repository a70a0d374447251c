package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/abgdnv/storefront/internal/catalog"
	cerrors "github.com/abgdnv/storefront/internal/catalog/errors"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgStore implements ProductStore using PostgreSQL as the data store.
type PgStore struct {
	db *pgxpool.Pool
}

// NewPgStore creates a new instance of ProductStore using a PostgreSQL connection pool.
func NewPgStore(dbp *pgxpool.Pool) *PgStore {
	return &PgStore{db: dbp}
}

var _ ProductStore = (*PgStore)(nil)

const productColumns = "id, name, price, category, description, image_url"

// FindAll returns the whole catalog in insertion order.
func (p *PgStore) FindAll(ctx context.Context) ([]catalog.Product, error) {
	query := fmt.Sprintf("SELECT %s FROM product_items ORDER BY created_at", productColumns)
	rows, err := p.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to find all products: %w", err)
	}
	defer rows.Close()
	return scanProducts(rows)
}

// FindPage returns a page of products for the admin listing.
func (p *PgStore) FindPage(ctx context.Context, offset, limit int32) ([]catalog.Product, error) {
	query := fmt.Sprintf("SELECT %s FROM product_items ORDER BY created_at LIMIT $1 OFFSET $2", productColumns)
	rows, err := p.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to find product page: %w", err)
	}
	defer rows.Close()
	return scanProducts(rows)
}

// FindByID retrieves a product by its unique identifier.
// Returns ErrProductNotFound if no product exists with the given ID.
func (p *PgStore) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	query := fmt.Sprintf("SELECT %s FROM product_items WHERE id = $1", productColumns)
	product, err := scanProduct(p.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, cerrors.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to find product by ID: %w", err)
	}
	return product, nil
}

// Create adds a new product to the catalog.
func (p *PgStore) Create(ctx context.Context, params ProductCreateParams) (*catalog.Product, error) {
	query := fmt.Sprintf(`
		INSERT INTO product_items (name, price, category, description, image_url)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING %s`, productColumns)
	product, err := scanProduct(p.db.QueryRow(ctx, query,
		params.Name, params.Price, params.Category, params.Description, params.ImageURL))
	if err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return product, nil
}

// Update modifies an existing product's details.
// Returns ErrProductNotFound if no product exists with the given ID.
func (p *PgStore) Update(ctx context.Context, id uuid.UUID, params ProductCreateParams) (*catalog.Product, error) {
	query := fmt.Sprintf(`
		UPDATE product_items
		SET name = $2, price = $3, category = $4, description = $5, image_url = $6
		WHERE id = $1
		RETURNING %s`, productColumns)
	product, err := scanProduct(p.db.QueryRow(ctx, query,
		id, params.Name, params.Price, params.Category, params.Description, params.ImageURL))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, cerrors.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to update product: %w", err)
	}
	return product, nil
}

// DeleteByID removes a product by its unique identifier.
// Returns ErrProductNotFound if no product exists with the given ID.
func (p *PgStore) DeleteByID(ctx context.Context, id uuid.UUID) error {
	result, err := p.db.Exec(ctx, "DELETE FROM product_items WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete product by ID: %w", err)
	}
	if result.RowsAffected() == 0 {
		return cerrors.ErrProductNotFound
	}
	return nil
}

func scanProduct(row pgx.Row) (*catalog.Product, error) {
	var product catalog.Product
	if err := row.Scan(
		&product.ID, &product.Name, &product.Price,
		&product.Category, &product.Description, &product.ImageURL,
	); err != nil {
		return nil, err
	}
	return &product, nil
}

func scanProducts(rows pgx.Rows) ([]catalog.Product, error) {
	products := make([]catalog.Product, 0)
	for rows.Next() {
		var product catalog.Product
		if err := rows.Scan(
			&product.ID, &product.Name, &product.Price,
			&product.Category, &product.Description, &product.ImageURL,
		); err != nil {
			return nil, fmt.Errorf("failed to scan product row: %w", err)
		}
		products = append(products, product)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read product rows: %w", err)
	}
	return products, nil
}
