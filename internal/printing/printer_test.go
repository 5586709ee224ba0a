package printing_test

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/noah-isme/backend-kasir/internal/money"
	"github.com/noah-isme/backend-kasir/internal/payment"
	"github.com/noah-isme/backend-kasir/internal/printing"
	"github.com/noah-isme/backend-kasir/internal/sale"
)

func sampleReceipt() sale.Receipt {
	return sale.Receipt{
		Summary: sale.Summary{
			SaleID: uuid.New(),
			Lines: []sale.LineSummary{
				{ItemID: "1", Name: "Milk 1L", Quantity: 2, UnitPrice: money.FromFloat(10), Subtotal: money.FromFloat(20)},
			},
			Total:        money.FromFloat(20),
			TotalVAT:     money.FromFloat(2.40),
			TotalWithVAT: money.FromFloat(22.40),
			Settled:      true,
		},
		Payment: payment.Record{
			Tendered:  money.FromFloat(100),
			Change:    money.FromFloat(77.60),
			SettledAt: time.Date(2026, 8, 31, 10, 30, 0, 0, time.UTC),
		},
	}
}

func TestRenderContainsTotalsAndChange(t *testing.T) {
	text := printing.Render(sampleReceipt(), "")

	for _, want := range []string{
		"Milk 1L",
		"Total excl. VAT: 20.00 SEK",
		"VAT:             2.40 SEK",
		"Total:           22.40 SEK",
		"Tendered:        100.00 SEK",
		"Change:          77.60 SEK",
	} {
		if !strings.Contains(text, want) {
			t.Fatalf("receipt missing %q:\n%s", want, text)
		}
	}
	if strings.Contains(text, "Discount:") {
		t.Fatalf("zero discount should not be printed:\n%s", text)
	}
}

func TestRenderIncludesDiscountAndFooter(t *testing.T) {
	receipt := sampleReceipt()
	receipt.Discount = money.FromFloat(5)
	receipt.TotalWithVAT = money.FromFloat(17.40)

	text := printing.Render(receipt, "Thank you!")

	if !strings.Contains(text, "Discount:       -5.00 SEK") {
		t.Fatalf("discount line missing:\n%s", text)
	}
	if !strings.Contains(text, "Thank you!\n") {
		t.Fatalf("footer missing:\n%s", text)
	}
}
