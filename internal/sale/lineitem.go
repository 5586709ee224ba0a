package sale

import (
	"github.com/noah-isme/backend-kasir/internal/catalog"
	"github.com/noah-isme/backend-kasir/internal/money"
)

// LineItem is one product entry in a sale: an immutable catalog snapshot
// plus a quantity that only grows when the same item is registered again.
type LineItem struct {
	item catalog.Item
	qty  int
}

func newLineItem(item catalog.Item, qty int) *LineItem {
	return &LineItem{item: item, qty: qty}
}

// Item returns the embedded catalog snapshot.
func (li *LineItem) Item() catalog.Item {
	return li.item
}

// Quantity returns the current quantity, always >= 1.
func (li *LineItem) Quantity() int {
	return li.qty
}

func (li *LineItem) incrementQuantity(by int) {
	li.qty += by
}

// Subtotal is unit price times quantity, excluding VAT.
func (li *LineItem) Subtotal() money.Money {
	return li.item.Price.MulInt(li.qty)
}

// VATAmount is the VAT surcharge for the whole line.
func (li *LineItem) VATAmount() money.Money {
	return li.item.Price.Mul(li.item.VATRate).MulInt(li.qty)
}

// TotalWithVAT is the line subtotal including VAT.
func (li *LineItem) TotalWithVAT() money.Money {
	return li.Subtotal().Add(li.VATAmount())
}
