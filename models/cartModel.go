package models

// CartLine is one product+color+quantity selection held by the session's
// entity store before checkout. At most one line exists per product id.
type CartLine struct {
	Product
	Quantity int    `json:"quantity"`
	Color    string `json:"color,omitempty"`
}

// LineTotal is the display subtotal for the line. Authoritative totals
// always come from the upstream price calculation, never from this value.
func (l CartLine) LineTotal() float64 {
	return l.UnitPrice() * float64(l.Quantity)
}
