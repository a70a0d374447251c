// Package cart implements the storefront's cart ledger: a list of line items
// keyed by (product, variant), with quantities, price snapshots and totals.
package cart

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"
)

var (
	// ErrVariantRequired is returned when no flavor was selected.
	ErrVariantRequired = errors.New("variant selection required")
	// ErrVariantUnknown is returned for a flavor outside the fixed set.
	ErrVariantUnknown = errors.New("unknown variant")
	// ErrQuantityInvalid is returned when the requested quantity is below one.
	ErrQuantityInvalid = errors.New("quantity must be at least 1")
)

// ProductSnapshot is the subset of product fields copied into a cart line at
// add time. The cart displays these even if the catalog changes later.
type ProductSnapshot struct {
	ProductID uuid.UUID `json:"product_id"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	ImageURL  string    `json:"image_url"`
}

// Line is a single cart entry. At most one line exists per
// (ProductID, Variant) pair.
type Line struct {
	ProductID uuid.UUID `json:"product_id"`
	Variant   Variant   `json:"variant"`
	Quantity  int32     `json:"quantity"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	ImageURL  string    `json:"image_url"`
}

// Subtotal returns the line's price snapshot times its quantity.
func (l Line) Subtotal() float64 {
	return round2(l.Price * float64(l.Quantity))
}

// Ledger is the in-memory cart state for one session. It is not safe for
// concurrent use; the owning service serializes access.
type Ledger struct {
	lines []Line
}

// NewLedger creates an empty cart ledger.
func NewLedger() *Ledger {
	return &Ledger{}
}

// DecodeLedger reconstructs a ledger from a persisted snapshot (a flat JSON
// array of lines). Replaying a snapshot yields the same multiset of
// (product, variant, quantity) entries that was persisted.
func DecodeLedger(data []byte) (*Ledger, error) {
	var lines []Line
	if err := json.Unmarshal(data, &lines); err != nil {
		return nil, fmt.Errorf("failed to decode cart snapshot: %w", err)
	}
	return &Ledger{lines: lines}, nil
}

// Encode serializes the full line list for persistence.
func (c *Ledger) Encode() ([]byte, error) {
	lines := c.lines
	if lines == nil {
		lines = []Line{}
	}
	data, err := json.Marshal(lines)
	if err != nil {
		return nil, fmt.Errorf("failed to encode cart snapshot: %w", err)
	}
	return data, nil
}

// AddOrIncrement adds quantity of the given product/variant to the cart.
// If a line for the (product, variant) pair already exists its quantity grows;
// otherwise a new line is appended with the product snapshot captured now.
// Returns the resulting line.
func (c *Ledger) AddOrIncrement(snapshot ProductSnapshot, variant Variant, quantity int32) (*Line, error) {
	if variant == "" {
		return nil, ErrVariantRequired
	}
	if !variant.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrVariantUnknown, variant)
	}
	if quantity < 1 {
		return nil, fmt.Errorf("%w: %d", ErrQuantityInvalid, quantity)
	}

	if i := c.index(snapshot.ProductID, variant); i >= 0 {
		c.lines[i].Quantity += quantity
		return &c.lines[i], nil
	}

	c.lines = append(c.lines, Line{
		ProductID: snapshot.ProductID,
		Variant:   variant,
		Quantity:  quantity,
		Name:      snapshot.Name,
		Price:     snapshot.Price,
		ImageURL:  snapshot.ImageURL,
	})
	return &c.lines[len(c.lines)-1], nil
}

// SetQuantity overwrites the quantity of an existing line. A quantity below
// one removes the line. Returns the updated line, or nil if the line was
// removed or absent.
func (c *Ledger) SetQuantity(productID uuid.UUID, variant Variant, quantity int32) *Line {
	if quantity < 1 {
		c.Remove(productID, variant)
		return nil
	}
	if i := c.index(productID, variant); i >= 0 {
		c.lines[i].Quantity = quantity
		return &c.lines[i]
	}
	return nil
}

// Remove deletes the line for the (product, variant) pair. No-op if absent.
func (c *Ledger) Remove(productID uuid.UUID, variant Variant) {
	if i := c.index(productID, variant); i >= 0 {
		c.lines = append(c.lines[:i], c.lines[i+1:]...)
	}
}

// Total sums price snapshot times quantity over all lines, rounded to two
// decimal places for display.
func (c *Ledger) Total() float64 {
	var total float64
	for _, line := range c.lines {
		total += line.Price * float64(line.Quantity)
	}
	return round2(total)
}

// LineCount returns the number of lines in the cart.
func (c *Ledger) LineCount() int {
	return len(c.lines)
}

// IsEmpty reports whether the cart has no lines.
func (c *Ledger) IsEmpty() bool {
	return len(c.lines) == 0
}

// Lines returns a copy of the cart's lines in insertion order.
func (c *Ledger) Lines() []Line {
	lines := make([]Line, len(c.lines))
	copy(lines, c.lines)
	return lines
}

func (c *Ledger) index(productID uuid.UUID, variant Variant) int {
	for i, line := range c.lines {
		if line.ProductID == productID && line.Variant == variant {
			return i
		}
	}
	return -1
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
