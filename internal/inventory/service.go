package inventory

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/noah-isme/backend-kasir/internal/catalog"
	"github.com/noah-isme/backend-kasir/internal/sale"
)

// Service adjusts stock levels when a sale completes. Decrements go through
// the registry's atomic per-item operation, so concurrent settlements
// cannot oversell.
type Service struct {
	Registry *catalog.Registry
	Logger   zerolog.Logger
}

// ApplySale decrements stock for every line. A failed line is logged for
// manual reconciliation and does not roll back lines already applied; the
// return value reports whether every decrement succeeded.
func (s *Service) ApplySale(_ context.Context, lines []sale.LineSummary) bool {
	allSucceeded := true
	for _, line := range lines {
		if s.Registry.DecrementStock(line.ItemID, line.Quantity) {
			continue
		}
		allSucceeded = false
		s.Logger.Warn().
			Str("item_id", line.ItemID).
			Int("qty", line.Quantity).
			Int("stock", s.Registry.StockLevel(line.ItemID)).
			Msg("stock_decrement_failed")
	}
	return allSucceeded
}
