package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/wadoud17/maktabati-pos/internal/domain/enum"
)

// Sale is the immutable snapshot produced when a cart is checked out. It is
// never mutated after construction. Completed sales are not sent anywhere by
// this client; persistence belongs to the backend.
type Sale struct {
	ID             uuid.UUID          `json:"id"`
	CustomerID     *int               `json:"clientId,omitempty"`
	Items          []CartLine         `json:"items"`
	Total          float64            `json:"total"`
	TaxPercent     float64            `json:"tva"`
	GlobalDiscount float64            `json:"remiseGlobale"`
	Payment        enum.PaymentMethod `json:"typePaiement"`
	Date           time.Time          `json:"dateVente"`
}
