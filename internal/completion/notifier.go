package completion

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/noah-isme/backend-kasir/internal/money"
	"github.com/noah-isme/backend-kasir/internal/obs"
	"github.com/noah-isme/backend-kasir/internal/payment"
	"github.com/noah-isme/backend-kasir/internal/printing"
	"github.com/noah-isme/backend-kasir/internal/sale"
)

// Handler consumes the full sale summary after settlement. Implementations
// replicate state into external systems (bookkeeping, stock).
type Handler interface {
	Name() string
	HandleCompletedSale(ctx context.Context, summary sale.Summary) error
}

// Observer consumes only the paid amount, for lightweight aggregation such
// as revenue displays.
type Observer interface {
	SaleCompleted(ctx context.Context, totalPaid money.Money) error
}

// Notifier fans a settled sale out to its collaborators in a fixed order:
// till, receipt printer, completion handlers, sale observers. Settlement has
// already committed when Notify runs, so collaborator failures are logged
// and counted but never abort the sequence.
type Notifier struct {
	Till      *payment.Till
	Printer   printing.Printer
	Handlers  []Handler
	Observers []Observer
	Logger    zerolog.Logger
}

// Notify runs the completion sequence for one settled sale. Handlers and
// observers are invoked in registration order; the registration lists are
// fixed at construction time and must not change mid-sale.
func (n *Notifier) Notify(ctx context.Context, summary sale.Summary, receipt sale.Receipt) {
	if n.Till != nil {
		n.Till.RecordPayment(receipt.Payment)
	}

	if n.Printer != nil {
		if err := n.Printer.Print(ctx, receipt); err != nil {
			n.failure("printer", "", err)
		}
	}

	for _, h := range n.Handlers {
		if h == nil {
			continue
		}
		if err := h.HandleCompletedSale(ctx, summary); err != nil {
			n.failure("handler", h.Name(), err)
		}
	}

	totalPaid := summary.TotalWithVAT
	for _, o := range n.Observers {
		if o == nil {
			continue
		}
		if err := o.SaleCompleted(ctx, totalPaid); err != nil {
			n.failure("observer", "", err)
		}
	}

	if obs.SalesSettledTotal != nil {
		obs.SalesSettledTotal.Inc()
	}
}

func (n *Notifier) failure(stage, name string, err error) {
	evt := n.Logger.Error().Err(err).Str("stage", stage)
	if name != "" {
		evt = evt.Str("handler", name)
	}
	evt.Msg("completion_collaborator_failed")
	if obs.CompletionFailureTotal != nil {
		obs.CompletionFailureTotal.WithLabelValues(stage).Inc()
	}
}
