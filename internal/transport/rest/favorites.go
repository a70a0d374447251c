package rest

import (
	"net/http"

	"github.com/abgdnv/storefront/pkg/web"
	"github.com/google/uuid"
)

// favoritesView is the favorites set as the header badge and the favorites
// page consume it.
type favoritesView struct {
	IDs   []uuid.UUID `json:"ids"`
	Count int         `json:"count"`
}

// GetFavorites returns the session's favorite product IDs.
func (h *Handler) GetFavorites(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	sessionID, ok := web.GetSessionID(w, r, mLogger)
	if !ok {
		return
	}
	web.RespondJSON(w, mLogger, http.StatusOK, favoritesView{
		IDs:   h.favorites.IDs(r.Context(), sessionID),
		Count: h.favorites.Count(r.Context(), sessionID),
	})
}

// ToggleFavorite flips the product's favorite membership and reports the
// resulting state.
func (h *Handler) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	sessionID, ok := web.GetSessionID(w, r, mLogger)
	if !ok {
		return
	}
	id, ok := web.ParseID(w, r, mLogger)
	if !ok {
		return
	}

	favored := h.favorites.Toggle(r.Context(), sessionID, id)
	web.RespondJSON(w, mLogger, http.StatusOK, map[string]bool{"favored": favored})
}

// RemoveFavorite deletes the product from the session's favorites.
func (h *Handler) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	sessionID, ok := web.GetSessionID(w, r, mLogger)
	if !ok {
		return
	}
	id, ok := web.ParseID(w, r, mLogger)
	if !ok {
		return
	}

	h.favorites.Remove(r.Context(), sessionID, id)
	w.WriteHeader(http.StatusNoContent)
}
