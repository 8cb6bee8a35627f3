package entity

// Product represents a sellable item in the catalog. The client holds
// read-only snapshots; the backend owns the records.
type Product struct {
	ID           int       `json:"id"`
	Barcode      string    `json:"codeBar"`
	Reference    string    `json:"referance"` // spelling fixed by the backend contract
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Quantity     int       `json:"quantite"`
	BuyingPrice  float64   `json:"prixAchat"`
	SellingPrice float64   `json:"prixVente"`
	Discount     float64   `json:"remise"`
	CategoryID   int       `json:"categoryId"`
	Category     *Category `json:"category,omitempty"`
}

// Category groups products in the catalog.
type Category struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}
