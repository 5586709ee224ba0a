package sale

import (
	"time"

	"github.com/google/uuid"

	"github.com/noah-isme/backend-kasir/internal/money"
	"github.com/noah-isme/backend-kasir/internal/payment"
)

// LineSummary is the frozen view of one line item.
type LineSummary struct {
	ItemID       string      `json:"itemId"`
	Name         string      `json:"name"`
	Quantity     int         `json:"qty"`
	UnitPrice    money.Money `json:"unitPrice"`
	VATRate      float64     `json:"vatRate"`
	Subtotal     money.Money `json:"subtotal"`
	VATAmount    money.Money `json:"vatAmount"`
	TotalWithVAT money.Money `json:"totalWithVat"`
}

// Summary is a value snapshot of the sale used by completion handlers,
// bookkeeping and the API. Reading it later never observes further
// mutation of the sale.
type Summary struct {
	SaleID       uuid.UUID     `json:"saleId"`
	StartedAt    time.Time     `json:"startedAt"`
	CustomerID   string        `json:"customerId,omitempty"`
	Lines        []LineSummary `json:"lines"`
	Total        money.Money   `json:"total"`
	TotalVAT     money.Money   `json:"totalVat"`
	Discount     money.Money   `json:"discount"`
	TotalWithVAT money.Money   `json:"totalWithVat"`
	Settled      bool          `json:"settled"`
}

// Receipt is the snapshot captured at settlement: the summary at that
// instant plus the payment record.
type Receipt struct {
	Summary
	Payment payment.Record `json:"payment"`
}

// Summarize captures the current state of the sale as a detached value.
func (s *Sale) Summarize() Summary {
	lines := make([]LineSummary, 0, len(s.items))
	for _, li := range s.items {
		lines = append(lines, LineSummary{
			ItemID:       li.item.ID,
			Name:         li.item.Name,
			Quantity:     li.qty,
			UnitPrice:    li.item.Price,
			VATRate:      li.item.VATRate,
			Subtotal:     li.Subtotal(),
			VATAmount:    li.VATAmount(),
			TotalWithVAT: li.TotalWithVAT(),
		})
	}
	return Summary{
		SaleID:       s.id,
		StartedAt:    s.startedAt,
		CustomerID:   s.customerID,
		Lines:        lines,
		Total:        s.Total(),
		TotalVAT:     s.TotalVAT(),
		Discount:     s.discount,
		TotalWithVAT: s.TotalWithVAT(),
		Settled:      s.settled,
	}
}

func (s *Sale) snapshotReceipt() Receipt {
	return Receipt{
		Summary: s.Summarize(),
		Payment: s.payment,
	}
}
