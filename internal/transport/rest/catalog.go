package rest

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/abgdnv/storefront/internal/catalog"
	cerrors "github.com/abgdnv/storefront/internal/catalog/errors"
	"github.com/abgdnv/storefront/pkg/web"
)

// SearchProducts returns the catalog filtered by the store page's controls:
// search text, category and price sort.
func (h *Handler) SearchProducts(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	query := catalog.Query{
		Text:     r.URL.Query().Get("search"),
		Category: r.URL.Query().Get("category"),
	}
	order := catalog.ParseSortOrder(r.URL.Query().Get("sort"))

	mLogger.DebugContext(r.Context(), "Received request to search products", "search", query.Text, "category", query.Category, "sort", order)
	products, err := h.catalog.Search(r.Context(), query, order)
	if err != nil {
		if errors.Is(err, cerrors.ErrCatalogUnavailable) {
			mLogger.WarnContext(r.Context(), "Catalog unavailable", "error", err)
			web.RespondError(w, mLogger, http.StatusServiceUnavailable, "Catalog is unavailable")
			return
		}
		mLogger.ErrorContext(r.Context(), "Error searching products", "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, "Failed to fetch products")
		return
	}
	web.RespondJSON(w, mLogger, http.StatusOK, products)
}

// Categories returns the distinct categories of the loaded catalog for the
// category dropdown.
func (h *Handler) Categories(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	categories, err := h.catalog.Categories(r.Context())
	if err != nil {
		if errors.Is(err, cerrors.ErrCatalogUnavailable) {
			mLogger.WarnContext(r.Context(), "Catalog unavailable", "error", err)
			web.RespondError(w, mLogger, http.StatusServiceUnavailable, "Catalog is unavailable")
			return
		}
		mLogger.ErrorContext(r.Context(), "Error fetching categories", "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, "Failed to fetch categories")
		return
	}
	web.RespondJSON(w, mLogger, http.StatusOK, categories)
}

// FindProduct retrieves a single product by its ID.
func (h *Handler) FindProduct(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	id, ok := web.ParseID(w, r, mLogger)
	if !ok {
		return
	}

	found, err := h.catalog.FindByID(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, cerrors.ErrProductNotFound):
			mLogger.WarnContext(r.Context(), "Product not found", "ID", id)
			web.RespondError(w, mLogger, http.StatusNotFound, fmt.Sprintf("Product with ID %s not found", id))
		case errors.Is(err, cerrors.ErrCatalogUnavailable):
			mLogger.WarnContext(r.Context(), "Catalog unavailable", "error", err)
			web.RespondError(w, mLogger, http.StatusServiceUnavailable, "Catalog is unavailable")
		default:
			mLogger.ErrorContext(r.Context(), "Error retrieving product", "ID", id, "error", err)
			web.RespondError(w, mLogger, http.StatusInternalServerError, fmt.Sprintf("Failed to retrieve product with ID %s", id))
		}
		return
	}
	web.RespondJSON(w, mLogger, http.StatusOK, found)
}
