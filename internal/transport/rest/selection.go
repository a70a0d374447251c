package rest

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/abgdnv/storefront/internal/cart"
	cerrors "github.com/abgdnv/storefront/internal/catalog/errors"
	"github.com/abgdnv/storefront/internal/selection"
	"github.com/abgdnv/storefront/pkg/web"
	"github.com/google/uuid"
)

// SelectionOpenDto is the body of a modal open request.
type SelectionOpenDto struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
}

// SelectionVariantDto is the body of a flavor pick.
type SelectionVariantDto struct {
	Variant string `json:"variant" validate:"required"`
}

// SelectionQuantityDto is the body of a quantity step.
type SelectionQuantityDto struct {
	Op string `json:"op" validate:"required,oneof=increment decrement"`
}

// GetSelection returns the session's current modal state.
func (h *Handler) GetSelection(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	sessionID, ok := web.GetSessionID(w, r, mLogger)
	if !ok {
		return
	}
	web.RespondJSON(w, mLogger, http.StatusOK, h.selection.State(r.Context(), sessionID))
}

// OpenSelection opens the modal for a product, resetting quantity and flavor.
func (h *Handler) OpenSelection(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	sessionID, ok := web.GetSessionID(w, r, mLogger)
	if !ok {
		return
	}
	var dto SelectionOpenDto
	if !h.decodeAndValidate(w, r, mLogger, &dto) {
		return
	}

	view, err := h.selection.Open(r.Context(), sessionID, dto.ProductID)
	if err != nil {
		switch {
		case errors.Is(err, cerrors.ErrProductNotFound):
			mLogger.WarnContext(r.Context(), "Product not found for selection", "ID", dto.ProductID)
			web.RespondError(w, mLogger, http.StatusNotFound, fmt.Sprintf("Product with ID %s not found", dto.ProductID))
		case errors.Is(err, cerrors.ErrCatalogUnavailable):
			web.RespondError(w, mLogger, http.StatusServiceUnavailable, "Catalog is unavailable")
		default:
			mLogger.ErrorContext(r.Context(), "Error opening selection", "ID", dto.ProductID, "error", err)
			web.RespondError(w, mLogger, http.StatusInternalServerError, "Failed to open selection")
		}
		return
	}
	web.RespondJSON(w, mLogger, http.StatusOK, view)
}

// CloseSelection discards the session's in-progress selection.
func (h *Handler) CloseSelection(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	sessionID, ok := web.GetSessionID(w, r, mLogger)
	if !ok {
		return
	}
	web.RespondJSON(w, mLogger, http.StatusOK, h.selection.Close(r.Context(), sessionID))
}

// SetSelectionVariant picks a flavor for the open modal.
func (h *Handler) SetSelectionVariant(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	sessionID, ok := web.GetSessionID(w, r, mLogger)
	if !ok {
		return
	}
	var dto SelectionVariantDto
	if !h.decodeAndValidate(w, r, mLogger, &dto) {
		return
	}

	view, err := h.selection.SetVariant(r.Context(), sessionID, cart.Variant(dto.Variant))
	if err != nil {
		h.respondSelectionError(w, r, mLogger, err)
		return
	}
	web.RespondJSON(w, mLogger, http.StatusOK, view)
}

// ChangeSelectionQuantity steps the open modal's quantity up or down.
func (h *Handler) ChangeSelectionQuantity(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	sessionID, ok := web.GetSessionID(w, r, mLogger)
	if !ok {
		return
	}
	var dto SelectionQuantityDto
	if !h.decodeAndValidate(w, r, mLogger, &dto) {
		return
	}

	var view selection.View
	var err error
	if dto.Op == "increment" {
		view, err = h.selection.IncrementQuantity(r.Context(), sessionID)
	} else {
		view, err = h.selection.DecrementQuantity(r.Context(), sessionID)
	}
	if err != nil {
		h.respondSelectionError(w, r, mLogger, err)
		return
	}
	web.RespondJSON(w, mLogger, http.StatusOK, view)
}

// ConfirmSelection commits the modal's selection into the cart. A missing
// flavor answers 400 and leaves the modal open.
func (h *Handler) ConfirmSelection(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	sessionID, ok := web.GetSessionID(w, r, mLogger)
	if !ok {
		return
	}

	line, err := h.selection.Confirm(r.Context(), sessionID)
	if err != nil {
		h.respondSelectionError(w, r, mLogger, err)
		return
	}
	mLogger.InfoContext(r.Context(), "Selection confirmed", "ID", line.ProductID, "Variant", line.Variant, "Quantity", line.Quantity)
	web.RespondJSON(w, mLogger, http.StatusCreated, line)
}

// respondSelectionError maps selection errors: no open modal answers 409,
// flavor and quantity problems answer 400.
func (h *Handler) respondSelectionError(w http.ResponseWriter, r *http.Request, mLogger *slog.Logger, err error) {
	switch {
	case errors.Is(err, selection.ErrNoSelection):
		mLogger.WarnContext(r.Context(), "No open selection", "error", err)
		web.RespondError(w, mLogger, http.StatusConflict, "No product selected")
	case errors.Is(err, cart.ErrVariantRequired),
		errors.Is(err, cart.ErrVariantUnknown),
		errors.Is(err, cart.ErrQuantityInvalid):
		mLogger.WarnContext(r.Context(), "Invalid selection request", "error", err)
		web.RespondError(w, mLogger, http.StatusBadRequest, err.Error())
	default:
		mLogger.ErrorContext(r.Context(), "Error updating selection", "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, "Failed to update selection")
	}
}
