package printing

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/noah-isme/backend-kasir/internal/sale"
)

// Printer is the receipt sink consumed by the completion sequence.
type Printer interface {
	Print(ctx context.Context, receipt sale.Receipt) error
}

// Render produces the customer-facing receipt text.
func Render(r sale.Receipt, footer string) string {
	var b strings.Builder
	b.WriteString("----------- RECEIPT -----------\n")
	fmt.Fprintf(&b, "Sale: %s\n", r.SaleID)
	fmt.Fprintf(&b, "Time: %s\n", r.Payment.SettledAt.Format("2006-01-02 15:04"))
	b.WriteString("-------------------------------\n")
	for _, line := range r.Lines {
		fmt.Fprintf(&b, "%-20s %3d x %s\n", line.Name, line.Quantity, line.UnitPrice)
		fmt.Fprintf(&b, "%27s%s\n", "", line.Subtotal)
	}
	b.WriteString("-------------------------------\n")
	fmt.Fprintf(&b, "Total excl. VAT: %s\n", r.Total)
	fmt.Fprintf(&b, "VAT:             %s\n", r.TotalVAT)
	if r.Discount.IsPositive() {
		fmt.Fprintf(&b, "Discount:       -%s\n", r.Discount)
	}
	fmt.Fprintf(&b, "Total:           %s\n", r.TotalWithVAT)
	fmt.Fprintf(&b, "Tendered:        %s\n", r.Payment.Tendered)
	fmt.Fprintf(&b, "Change:          %s\n", r.Payment.Change)
	b.WriteString("-------------------------------\n")
	if footer != "" {
		b.WriteString(footer)
		b.WriteString("\n")
	}
	return b.String()
}

// LogPrinter emits rendered receipts through the structured log, standing
// in for a physical receipt printer.
type LogPrinter struct {
	Logger zerolog.Logger
	Footer string
}

// Print implements Printer.
func (p LogPrinter) Print(_ context.Context, receipt sale.Receipt) error {
	p.Logger.Info().
		Str("sale_id", receipt.SaleID.String()).
		Str("receipt", Render(receipt, p.Footer)).
		Msg("receipt_printed")
	return nil
}
