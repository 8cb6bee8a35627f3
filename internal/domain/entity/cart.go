package entity

// CartLine is one product's quantity, unit price and discount within the
// active, uncommitted sale. The unit price is captured at the time the item
// is added and does not track later catalog changes.
type CartLine struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"prix"`
	Discount float64 `json:"remise"` // percent, applied per line
}

// Net returns the line amount after the per-line discount.
func (l CartLine) Net() float64 {
	return float64(l.Quantity) * l.Price * (1 - l.Discount/100)
}
