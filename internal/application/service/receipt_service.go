package service

import (
	"fmt"

	"github.com/wadoud17/maktabati-pos/internal/domain/entity"
	"github.com/wadoud17/maktabati-pos/pkg/receipt"
	"github.com/wadoud17/maktabati-pos/pkg/utils"
)

const receiptWidth = 40

// RenderReceipt formats a completed sale as a text receipt.
func RenderReceipt(sale *entity.Sale, customer *entity.Customer, cashier string) string {
	doc := receipt.NewDocument(receiptWidth)

	doc.Center("MAKTABATI").
		Center("Ticket " + utils.GenerateReceiptNo()).
		Separator('=')

	doc.KeyValue("Date", sale.Date.Format("02/01/2006 15:04"))
	if cashier != "" {
		doc.KeyValue("Caissier", cashier)
	}
	if customer != nil {
		doc.KeyValue("Client", customer.Name)
	} else {
		doc.KeyValue("Client", "Anonyme")
	}
	doc.Separator('-')

	var subtotal float64
	for _, line := range sale.Items {
		doc.ItemLine(line.Quantity, line.Product.Name, money(line.Net()))
		if line.Discount != 0 {
			doc.LineF("   remise %.0f%%", line.Discount)
		}
		subtotal += line.Net()
	}
	doc.Separator('-')

	doc.KeyValue("Sous-total", money(subtotal))
	if sale.GlobalDiscount != 0 {
		doc.KeyValue(fmt.Sprintf("Remise globale %.0f%%", sale.GlobalDiscount),
			money(-subtotal*(sale.GlobalDiscount/100)))
	}
	discounted := subtotal * (1 - sale.GlobalDiscount/100)
	doc.KeyValue(fmt.Sprintf("TVA %.0f%%", sale.TaxPercent), money(sale.Total-discounted))
	doc.KeyValue("TOTAL", money(sale.Total))
	doc.KeyValue("Paiement", sale.Payment.String())
	doc.Separator('=')
	doc.Center("Merci de votre visite")

	return doc.String()
}

func money(v float64) string {
	return fmt.Sprintf("%.2f MAD", v)
}
