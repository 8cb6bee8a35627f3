package service

import (
	"sync"
	"time"

	"github.com/wadoud17/maktabati-pos/internal/domain/entity"
	"github.com/wadoud17/maktabati-pos/internal/domain/enum"
	"github.com/wadoud17/maktabati-pos/pkg/apperror"
	"github.com/wadoud17/maktabati-pos/pkg/utils"
)

// CartService holds the line items of the active sale and derives its
// pricing. Discounts are applied in a fixed order: per-line discount, then
// the global discount over the subtotal, then tax. Line and global discount
// percentages are accepted as given, without clamping.
//
// The cart keeps at most one line per product; insertion order is display
// order only. Stock on hand is not validated here.
type CartService struct {
	mu             sync.Mutex
	lines          []entity.CartLine
	customer       *entity.Customer
	globalDiscount float64
}

// NewCartService creates an empty cart.
func NewCartService() *CartService {
	return &CartService{}
}

// AddItem adds one unit of the product to the cart. If a line for the
// product already exists its quantity is incremented; otherwise a new line
// is appended with quantity 1, the product's current sale price and no
// discount.
func (s *CartService) AddItem(p entity.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].Product.ID == p.ID {
			s.lines[i].Quantity++
			return
		}
	}
	s.lines = append(s.lines, entity.CartLine{
		Product:  p,
		Quantity: 1,
		Price:    p.SellingPrice,
		Discount: 0,
	})
}

// RemoveItem deletes the line for the product. Removing an absent product is
// a no-op.
func (s *CartService) RemoveItem(productID int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeLocked(productID)
}

func (s *CartService) removeLocked(productID int) {
	for i := range s.lines {
		if s.lines[i].Product.ID == productID {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			return
		}
	}
}

// SetQuantity replaces the line's quantity. A quantity of zero or less
// removes the line.
func (s *CartService) SetQuantity(productID, qty int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if qty <= 0 {
		s.removeLocked(productID)
		return
	}
	for i := range s.lines {
		if s.lines[i].Product.ID == productID {
			s.lines[i].Quantity = qty
			return
		}
	}
}

// SetLineDiscount replaces the line's discount percentage. The value is not
// clamped. Setting a discount for a product not in the cart is a no-op.
func (s *CartService) SetLineDiscount(productID int, percent float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].Product.ID == productID {
			s.lines[i].Discount = percent
			return
		}
	}
}

// SetCustomer selects the customer for the sale; nil selects the anonymous
// customer.
func (s *CartService) SetCustomer(c *entity.Customer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.customer = c
}

// Customer returns the currently selected customer, or nil.
func (s *CartService) Customer() *entity.Customer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.customer
}

// SetGlobalDiscount replaces the global discount percentage. The value is
// not clamped.
func (s *CartService) SetGlobalDiscount(percent float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.globalDiscount = percent
}

// GlobalDiscount returns the current global discount percentage.
func (s *CartService) GlobalDiscount() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.globalDiscount
}

// Lines returns a copy of the cart lines in display order.
func (s *CartService) Lines() []entity.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entity.CartLine(nil), s.lines...)
}

// Len returns the number of lines in the cart.
func (s *CartService) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.lines)
}

// Subtotal returns the sum of the line amounts after per-line discounts.
func (s *CartService) Subtotal() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.subtotalLocked()
}

func (s *CartService) subtotalLocked() float64 {
	var sum float64
	for _, line := range s.lines {
		sum += line.Net()
	}
	return sum
}

// Total applies the global discount to the subtotal and tax to the result.
// The order is load-bearing: discount before tax.
func (s *CartService) Total(globalDiscountPercent, taxPercent float64) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.totalLocked(globalDiscountPercent, taxPercent)
}

func (s *CartService) totalLocked(globalDiscountPercent, taxPercent float64) float64 {
	return s.subtotalLocked() * (1 - globalDiscountPercent/100) * (1 + taxPercent/100)
}

// Checkout produces an immutable sale snapshot from the current cart, then
// clears the cart, the selected customer and the global discount. An empty
// cart fails with apperror.ErrEmptyCart and changes nothing.
//
// The sale is not sent to the backend; completed sales are not persisted by
// this client.
func (s *CartService) Checkout(payment enum.PaymentMethod, taxPercent, globalDiscountPercent float64) (*entity.Sale, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.lines) == 0 {
		return nil, apperror.ErrEmptyCart
	}

	sale := &entity.Sale{
		ID:             utils.NewUUID(),
		Items:          append([]entity.CartLine(nil), s.lines...),
		Total:          s.totalLocked(globalDiscountPercent, taxPercent),
		TaxPercent:     taxPercent,
		GlobalDiscount: globalDiscountPercent,
		Payment:        payment,
		Date:           time.Now(),
	}
	if s.customer != nil {
		id := s.customer.ID
		sale.CustomerID = &id
	}

	s.lines = nil
	s.customer = nil
	s.globalDiscount = 0

	return sale, nil
}
