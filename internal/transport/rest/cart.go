package rest

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/abgdnv/storefront/internal/cart"
	cerrors "github.com/abgdnv/storefront/internal/catalog/errors"
	"github.com/abgdnv/storefront/pkg/web"
	"github.com/google/uuid"
)

// CartItemDto is the body of a direct add-to-cart request.
type CartItemDto struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Variant   string    `json:"variant"    validate:"required"`
	Quantity  int32     `json:"quantity"   validate:"gte=1"`
}

// CartQuantityDto is the body of a cart line quantity update.
type CartQuantityDto struct {
	Quantity int32 `json:"quantity"`
}

// cartView is the cart as the header badge and the cart page consume it.
type cartView struct {
	Items []cart.Line `json:"items"`
	Total float64     `json:"total"`
	Count int         `json:"count"`
}

// GetCart returns the session's cart lines, total and line count.
func (h *Handler) GetCart(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	sessionID, ok := web.GetSessionID(w, r, mLogger)
	if !ok {
		return
	}
	web.RespondJSON(w, mLogger, http.StatusOK, cartView{
		Items: h.cart.Lines(r.Context(), sessionID),
		Total: h.cart.Total(r.Context(), sessionID),
		Count: h.cart.LineCount(r.Context(), sessionID),
	})
}

// GetCartTotal returns just the session cart's display total.
func (h *Handler) GetCartTotal(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	sessionID, ok := web.GetSessionID(w, r, mLogger)
	if !ok {
		return
	}
	web.RespondJSON(w, mLogger, http.StatusOK, map[string]float64{"total": h.cart.Total(r.Context(), sessionID)})
}

// AddCartItem adds quantity of a product/variant to the session's cart,
// bypassing the selection modal. The product snapshot is captured from the
// loaded catalog.
func (h *Handler) AddCartItem(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	sessionID, ok := web.GetSessionID(w, r, mLogger)
	if !ok {
		return
	}
	var dto CartItemDto
	if !h.decodeAndValidate(w, r, mLogger, &dto) {
		return
	}

	product, err := h.catalog.FindByID(r.Context(), dto.ProductID)
	if err != nil {
		switch {
		case errors.Is(err, cerrors.ErrProductNotFound):
			mLogger.WarnContext(r.Context(), "Product not found for cart add", "ID", dto.ProductID)
			web.RespondError(w, mLogger, http.StatusNotFound, fmt.Sprintf("Product with ID %s not found", dto.ProductID))
		case errors.Is(err, cerrors.ErrCatalogUnavailable):
			web.RespondError(w, mLogger, http.StatusServiceUnavailable, "Catalog is unavailable")
		default:
			mLogger.ErrorContext(r.Context(), "Error retrieving product for cart add", "ID", dto.ProductID, "error", err)
			web.RespondError(w, mLogger, http.StatusInternalServerError, "Failed to add item to cart")
		}
		return
	}

	snapshot := cart.ProductSnapshot{
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.Price,
		ImageURL:  product.ImageURL,
	}
	line, err := h.cart.AddOrIncrement(r.Context(), sessionID, snapshot, cart.Variant(dto.Variant), dto.Quantity)
	if err != nil {
		h.respondCartError(w, r, mLogger, err)
		return
	}
	mLogger.InfoContext(r.Context(), "Item added to cart", "ID", line.ProductID, "Variant", line.Variant, "Quantity", line.Quantity)
	web.RespondJSON(w, mLogger, http.StatusCreated, line)
}

// SetCartItemQuantity overwrites a cart line's quantity. A quantity below one
// removes the line, answering 204.
func (h *Handler) SetCartItemQuantity(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	sessionID, ok := web.GetSessionID(w, r, mLogger)
	if !ok {
		return
	}
	id, ok := web.ParseID(w, r, mLogger)
	if !ok {
		return
	}
	variant := cart.Variant(r.PathValue("variant"))
	var dto CartQuantityDto
	if !h.decodeAndValidate(w, r, mLogger, &dto) {
		return
	}

	line := h.cart.SetQuantity(r.Context(), sessionID, id, variant, dto.Quantity)
	if line == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	web.RespondJSON(w, mLogger, http.StatusOK, line)
}

// RemoveCartItem deletes the line for the (product, variant) pair.
func (h *Handler) RemoveCartItem(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	sessionID, ok := web.GetSessionID(w, r, mLogger)
	if !ok {
		return
	}
	id, ok := web.ParseID(w, r, mLogger)
	if !ok {
		return
	}
	variant := cart.Variant(r.PathValue("variant"))

	h.cart.Remove(r.Context(), sessionID, id, variant)
	w.WriteHeader(http.StatusNoContent)
}

// respondCartError maps cart validation errors to 400 and anything else to 500.
func (h *Handler) respondCartError(w http.ResponseWriter, r *http.Request, mLogger *slog.Logger, err error) {
	switch {
	case errors.Is(err, cart.ErrVariantRequired),
		errors.Is(err, cart.ErrVariantUnknown),
		errors.Is(err, cart.ErrQuantityInvalid):
		mLogger.WarnContext(r.Context(), "Invalid cart request", "error", err)
		web.RespondError(w, mLogger, http.StatusBadRequest, err.Error())
	default:
		mLogger.ErrorContext(r.Context(), "Error updating cart", "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, "Failed to update cart")
	}
}
