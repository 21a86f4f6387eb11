package domain

// CartLine is a product snapshot plus a quantity. Price and name are copied
// from the catalog at add time; later catalog edits do not touch lines
// already in the cart. Quantity is always >= 1; removing a product removes
// the whole line.
type CartLine struct {
	ProductID   int64  `json:"productId"`
	Name        string `json:"name"`
	Price       int64  `json:"price"`
	Category    string `json:"category"`
	Description string `json:"description,omitempty"`
	Quantity    int    `json:"quantity"`
}

// Subtotal is price times quantity for a single line.
func (l CartLine) Subtotal() int64 {
	return l.Price * int64(l.Quantity)
}

// LinesSubtotal sums price times quantity across lines.
func LinesSubtotal(lines []CartLine) int64 {
	var total int64
	for _, l := range lines {
		total += l.Subtotal()
	}
	return total
}

// CopyLines returns an independent copy of a line list.
func CopyLines(lines []CartLine) []CartLine {
	out := make([]CartLine, len(lines))
	copy(out, lines)
	return out
}
