package service

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/wadoud17/maktabati-pos/internal/domain/entity"
	"github.com/wadoud17/maktabati-pos/internal/domain/enum"
)

func TestRenderReceipt(t *testing.T) {
	customerID := 7
	sale := &entity.Sale{
		ID: uuid.New(),
		Items: []entity.CartLine{
			{Product: entity.Product{ID: 1, Name: "Stylo Bic Bleu"}, Quantity: 2, Price: 100, Discount: 10},
			{Product: entity.Product{ID: 2, Name: "Cahier 96 pages"}, Quantity: 1, Price: 50},
		},
		Total:          248.4,
		TaxPercent:     20,
		GlobalDiscount: 10,
		Payment:        enum.PaymentCard,
		CustomerID:     &customerID,
		Date:           time.Date(2021, 6, 15, 14, 30, 0, 0, time.UTC),
	}
	customer := &entity.Customer{ID: 7, Name: "Ecole Al Massira"}

	text := RenderReceipt(sale, customer, "Sara Benali")

	for _, want := range []string{
		"MAKTABATI",
		"15/06/2021 14:30",
		"Sara Benali",
		"Ecole Al Massira",
		"2x Stylo Bic Bleu",
		"remise 10%",
		"1x Cahier 96 pages",
		"230.00 MAD", // subtotal after line discounts
		"248.40 MAD",
		"card",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("receipt missing %q:\n%s", want, text)
		}
	}
}

func TestRenderReceiptAnonymousCustomer(t *testing.T) {
	sale := &entity.Sale{
		Items:   []entity.CartLine{{Product: entity.Product{Name: "Stylo"}, Quantity: 1, Price: 3}},
		Total:   3,
		Payment: enum.PaymentCash,
		Date:    time.Now(),
	}
	text := RenderReceipt(sale, nil, "")
	if !strings.Contains(text, "Anonyme") {
		t.Errorf("anonymous sale must say so:\n%s", text)
	}
}
