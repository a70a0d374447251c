// Package selection implements the product modal's state machine: a visitor
// opens a product, picks a flavor and quantity, and either confirms into the
// cart or discards the selection.
package selection

import (
	"errors"
	"fmt"

	"github.com/abgdnv/storefront/internal/cart"
	"github.com/abgdnv/storefront/internal/catalog"
)

// ErrNoSelection is returned when an operation requires an open modal.
var ErrNoSelection = errors.New("no product selected")

// CommitFunc commits the confirmed selection into the cart ledger.
type CommitFunc func(snapshot cart.ProductSnapshot, variant cart.Variant, quantity int32) (*cart.Line, error)

// Controller is the modal state machine for one session:
// Closed -> Open(product) -> Closed. It is not safe for concurrent use; the
// owning service serializes access.
type Controller struct {
	product  *catalog.Product
	quantity int32
	variant  cart.Variant
}

// NewController creates a controller in the Closed state.
func NewController() *Controller {
	return &Controller{}
}

// Open selects a product and resets quantity to 1 and variant to unset.
func (c *Controller) Open(product catalog.Product) {
	c.product = &product
	c.quantity = 1
	c.variant = ""
}

// Close discards any in-progress selection without committing it.
func (c *Controller) Close() {
	c.product = nil
	c.quantity = 1
	c.variant = ""
}

// IsOpen reports whether a product is selected.
func (c *Controller) IsOpen() bool {
	return c.product != nil
}

// Product returns the selected product, or nil when closed.
func (c *Controller) Product() *catalog.Product {
	return c.product
}

// Quantity returns the chosen quantity (1 when closed).
func (c *Controller) Quantity() int32 {
	if c.quantity < 1 {
		return 1
	}
	return c.quantity
}

// Variant returns the chosen flavor, empty if none was picked yet.
func (c *Controller) Variant() cart.Variant {
	return c.variant
}

// IncrementQuantity raises the chosen quantity by one. There is no upper bound.
func (c *Controller) IncrementQuantity() int32 {
	c.quantity = c.Quantity() + 1
	return c.quantity
}

// DecrementQuantity lowers the chosen quantity by one, clamped at 1.
func (c *Controller) DecrementQuantity() int32 {
	if c.quantity > 1 {
		c.quantity--
	} else {
		c.quantity = 1
	}
	return c.quantity
}

// SetVariant picks a flavor for the selection.
func (c *Controller) SetVariant(variant cart.Variant) error {
	if !c.IsOpen() {
		return ErrNoSelection
	}
	if !variant.Valid() {
		return fmt.Errorf("%w: %q", cart.ErrVariantUnknown, variant)
	}
	c.variant = variant
	return nil
}

// Confirm commits the selection into the cart via commit. A missing flavor
// fails with ErrVariantRequired and leaves the modal open; on success the
// controller returns to Closed.
func (c *Controller) Confirm(commit CommitFunc) (*cart.Line, error) {
	if !c.IsOpen() {
		return nil, ErrNoSelection
	}
	if c.variant == "" {
		return nil, cart.ErrVariantRequired
	}

	snapshot := cart.ProductSnapshot{
		ProductID: c.product.ID,
		Name:      c.product.Name,
		Price:     c.product.Price,
		ImageURL:  c.product.ImageURL,
	}
	line, err := commit(snapshot, c.variant, c.Quantity())
	if err != nil {
		return nil, err
	}
	c.Close()
	return line, nil
}
