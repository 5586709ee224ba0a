package completion

import (
	"context"
	"errors"

	"github.com/noah-isme/backend-kasir/internal/accounting"
	"github.com/noah-isme/backend-kasir/internal/inventory"
	"github.com/noah-isme/backend-kasir/internal/sale"
)

// AccountingHandler books completed sales and updates sale statistics.
type AccountingHandler struct {
	Svc *accounting.Service
}

// Name implements Handler.
func (AccountingHandler) Name() string { return "accounting" }

// HandleCompletedSale implements Handler.
func (h AccountingHandler) HandleCompletedSale(ctx context.Context, summary sale.Summary) error {
	if err := h.Svc.RecordSale(ctx, summary); err != nil {
		return err
	}
	h.Svc.UpdateStatistics(summary.TotalWithVAT)
	return nil
}

// InventoryHandler adjusts stock for the sold lines.
type InventoryHandler struct {
	Svc *inventory.Service
}

// Name implements Handler.
func (InventoryHandler) Name() string { return "inventory" }

// HandleCompletedSale implements Handler. A partial decrement is reported
// as an error so the notifier records the failure, but decrements that
// succeeded stay applied and are reconciled manually.
func (h InventoryHandler) HandleCompletedSale(ctx context.Context, summary sale.Summary) error {
	if !h.Svc.ApplySale(ctx, summary.Lines) {
		return errors.New("inventory: one or more stock decrements failed")
	}
	return nil
}
