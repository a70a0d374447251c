// Package rest provides the storefront's HTTP handlers: the public catalog,
// the session-scoped cart, favorites and selection surfaces, the contact form
// and the admin CRUD surface.
package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/abgdnv/storefront/internal/assets"
	"github.com/abgdnv/storefront/internal/cart"
	"github.com/abgdnv/storefront/internal/catalog/service"
	"github.com/abgdnv/storefront/internal/contact"
	"github.com/abgdnv/storefront/internal/favorites"
	"github.com/abgdnv/storefront/internal/selection"
	authmw "github.com/abgdnv/storefront/internal/transport/middleware"
	"github.com/abgdnv/storefront/pkg/auth"
	"github.com/abgdnv/storefront/pkg/web"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
)

type Handler struct {
	catalog   service.CatalogService
	cart      *cart.Service
	favorites *favorites.Service
	selection *selection.Service
	contact   *contact.Service
	uploader  assets.Uploader
	validate  *validator.Validate
	logger    *slog.Logger
}

// NewHandler creates the storefront's HTTP handler over the given services.
func NewHandler(
	catalogSvc service.CatalogService,
	cartSvc *cart.Service,
	favoritesSvc *favorites.Service,
	selectionSvc *selection.Service,
	contactSvc *contact.Service,
	uploader assets.Uploader,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		catalog:   catalogSvc,
		cart:      cartSvc,
		favorites: favoritesSvc,
		selection: selectionSvc,
		contact:   contactSvc,
		uploader:  uploader,
		validate:  validator.New(),
		logger:    logger.With("component", "rest"),
	}
}

// RegisterRoutes registers the storefront's HTTP routes. Admin routes are
// gated by the Bearer token middleware; session routes require X-Session-Id.
func (h *Handler) RegisterRoutes(r *chi.Mux, verifier auth.Verifier, adminEmail string) {
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/products", h.SearchProducts)
		r.Get("/products/categories", h.Categories)
		r.Get("/products/{id}", h.FindProduct)

		r.Group(func(r chi.Router) {
			r.Use(web.SessionMiddleware)

			r.Route("/cart", func(r chi.Router) {
				r.Get("/", h.GetCart)
				r.Get("/total", h.GetCartTotal)
				r.Post("/items", h.AddCartItem)
				r.Put("/items/{id}/{variant}", h.SetCartItemQuantity)
				r.Delete("/items/{id}/{variant}", h.RemoveCartItem)
			})

			r.Route("/favorites", func(r chi.Router) {
				r.Get("/", h.GetFavorites)
				r.Post("/{id}/toggle", h.ToggleFavorite)
				r.Delete("/{id}", h.RemoveFavorite)
			})

			r.Route("/selection", func(r chi.Router) {
				r.Get("/", h.GetSelection)
				r.Post("/", h.OpenSelection)
				r.Delete("/", h.CloseSelection)
				r.Post("/variant", h.SetSelectionVariant)
				r.Post("/quantity", h.ChangeSelectionQuantity)
				r.Post("/confirm", h.ConfirmSelection)
			})

			r.Post("/contact", h.SendContactMessage)
		})

		r.Route("/admin/products", func(r chi.Router) {
			r.Use(authmw.AdminOnly(verifier, adminEmail))
			r.Get("/", h.AdminListProducts)
			r.Post("/", h.AdminCreateProduct)
			r.Post("/image", h.AdminUploadImage)
			r.Put("/{id}", h.AdminUpdateProduct)
			r.Delete("/{id}", h.AdminDeleteProduct)
		})
	})

	r.Get("/healthz", h.HealthCheck)
}

// HealthCheck is a simple health check endpoint.
func (h *Handler) HealthCheck(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// decodeAndValidate decodes the JSON body into dst and validates it. On
// failure it writes the error response and reports false.
func (h *Handler) decodeAndValidate(w http.ResponseWriter, r *http.Request, mLogger *slog.Logger, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		mLogger.ErrorContext(r.Context(), "Error decoding request body", "error", err)
		web.RespondError(w, mLogger, http.StatusBadRequest, "Invalid request body")
		return false
	}
	if err := h.validate.Struct(dst); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			// If the error is a validation error, we can extract field-specific errors.
			errorResponse := make(map[string]string)
			for _, fieldErr := range validationErrors {
				// fieldErr.Tag() returns "required", "max", etc.
				errorResponse[fieldErr.Field()] = "failed on rule: " + fieldErr.Tag()
			}
			mLogger.WarnContext(r.Context(), "Validation errors occurred", "errors", errorResponse)
			web.RespondJSON(w, mLogger, http.StatusBadRequest, map[string]any{"validation_errors": errorResponse})
			return false
		}
		mLogger.ErrorContext(r.Context(), "Error validating request body", "error", err)
		web.RespondError(w, mLogger, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}

// loggerWithReqID creates a logger with the request ID from the context.
func (h *Handler) loggerWithReqID(r *http.Request) *slog.Logger {
	reqID := middleware.GetReqID(r.Context())
	return h.logger.With("request_id", reqID)
}
