package rest

import (
	"net/http"

	"github.com/abgdnv/storefront/internal/contact"
	"github.com/abgdnv/storefront/pkg/web"
)

// SendContactMessage delivers a contact form submission to the shop owner.
// Answers 202 once the message is handed to the mailer.
func (h *Handler) SendContactMessage(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	sessionID, ok := web.GetSessionID(w, r, mLogger)
	if !ok {
		return
	}
	var dto contact.MessageDto
	if !h.decodeAndValidate(w, r, mLogger, &dto) {
		return
	}

	if err := h.contact.Send(r.Context(), sessionID, dto); err != nil {
		web.RespondError(w, mLogger, http.StatusServiceUnavailable, "Failed to send message")
		return
	}
	mLogger.InfoContext(r.Context(), "Contact message delivered", "from", dto.Email)
	web.RespondJSON(w, mLogger, http.StatusAccepted, map[string]string{"status": "accepted"})
}
