package cart

// Variant is the user-selected product option (flavor). A variant must be
// chosen before a catalog item can be added to the cart; it is not derived
// from the product itself.
type Variant string

const (
	Chocolate    Variant = "chocolate"
	Vanilla      Variant = "vanilla"
	Strawberry   Variant = "strawberry"
	Butterscotch Variant = "Butterscotch"
)

// Variants returns the fixed set of selectable flavors, in display order.
func Variants() []Variant {
	return []Variant{Chocolate, Vanilla, Strawberry, Butterscotch}
}

// Valid reports whether v is one of the selectable flavors.
func (v Variant) Valid() bool {
	switch v {
	case Chocolate, Vanilla, Strawberry, Butterscotch:
		return true
	}
	return false
}
