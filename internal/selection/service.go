package selection

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/abgdnv/storefront/internal/cart"
	"github.com/abgdnv/storefront/internal/catalog"
	"github.com/abgdnv/storefront/internal/notify"
	"github.com/google/uuid"
)

// ProductFinder looks up a product for the modal.
type ProductFinder interface {
	FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error)
}

// Committer writes a confirmed selection into the session's cart.
type Committer interface {
	AddOrIncrement(ctx context.Context, sessionID string, snapshot cart.ProductSnapshot, variant cart.Variant, quantity int32) (*cart.Line, error)
}

// View is the modal state reported to the UI.
type View struct {
	Open     bool             `json:"open"`
	Product  *catalog.Product `json:"product,omitempty"`
	Quantity int32            `json:"quantity"`
	Variant  cart.Variant     `json:"variant,omitempty"`
	Variants []cart.Variant   `json:"variants"`
}

// Service manages one modal controller per session.
type Service struct {
	mu          sync.Mutex
	controllers map[string]*Controller

	products ProductFinder
	cart     Committer
	notifier notify.Notifier
	logger   *slog.Logger
}

// NewService creates a selection service committing confirmed selections into
// the given cart.
func NewService(products ProductFinder, committer Committer, notifier notify.Notifier, logger *slog.Logger) *Service {
	return &Service{
		controllers: make(map[string]*Controller),
		products:    products,
		cart:        committer,
		notifier:    notifier,
		logger:      logger.With("component", "selection"),
	}
}

// Open selects a product for the session's modal, resetting quantity and flavor.
func (s *Service) Open(ctx context.Context, sessionID string, productID uuid.UUID) (View, error) {
	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return View{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	controller := s.controller(sessionID)
	controller.Open(*product)
	return s.view(controller), nil
}

// Close discards the session's in-progress selection.
func (s *Service) Close(_ context.Context, sessionID string) View {
	s.mu.Lock()
	defer s.mu.Unlock()
	controller := s.controller(sessionID)
	controller.Close()
	return s.view(controller)
}

// SetVariant picks a flavor for the session's selection.
func (s *Service) SetVariant(_ context.Context, sessionID string, variant cart.Variant) (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	controller := s.controller(sessionID)
	if err := controller.SetVariant(variant); err != nil {
		return s.view(controller), err
	}
	return s.view(controller), nil
}

// IncrementQuantity raises the selection's quantity by one.
func (s *Service) IncrementQuantity(_ context.Context, sessionID string) (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	controller := s.controller(sessionID)
	if !controller.IsOpen() {
		return s.view(controller), ErrNoSelection
	}
	controller.IncrementQuantity()
	return s.view(controller), nil
}

// DecrementQuantity lowers the selection's quantity by one, clamped at 1.
func (s *Service) DecrementQuantity(_ context.Context, sessionID string) (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	controller := s.controller(sessionID)
	if !controller.IsOpen() {
		return s.view(controller), ErrNoSelection
	}
	controller.DecrementQuantity()
	return s.view(controller), nil
}

// Confirm commits the selection into the cart. A missing flavor surfaces a
// warning toast and leaves the modal open; on success the modal closes.
func (s *Service) Confirm(ctx context.Context, sessionID string) (*cart.Line, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	controller := s.controller(sessionID)

	line, err := controller.Confirm(func(snapshot cart.ProductSnapshot, variant cart.Variant, quantity int32) (*cart.Line, error) {
		return s.cart.AddOrIncrement(ctx, sessionID, snapshot, variant, quantity)
	})
	if err != nil {
		if errors.Is(err, cart.ErrVariantRequired) {
			s.notifier.Warning(ctx, sessionID, "Please select a flavor")
		}
		return nil, err
	}
	return line, nil
}

// State returns the session's current modal state.
func (s *Service) State(_ context.Context, sessionID string) View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view(s.controller(sessionID))
}

// controller returns the session's modal controller, creating a closed one on
// first access. Callers must hold s.mu.
func (s *Service) controller(sessionID string) *Controller {
	controller, ok := s.controllers[sessionID]
	if !ok {
		controller = NewController()
		s.controllers[sessionID] = controller
	}
	return controller
}

func (s *Service) view(controller *Controller) View {
	return View{
		Open:     controller.IsOpen(),
		Product:  controller.Product(),
		Quantity: controller.Quantity(),
		Variant:  controller.Variant(),
		Variants: cart.Variants(),
	}
}
