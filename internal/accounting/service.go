package accounting

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/noah-isme/backend-kasir/internal/money"
	"github.com/noah-isme/backend-kasir/internal/sale"
)

// Service is the bookkeeping collaborator. It keeps a ledger of settled
// sale summaries and a running revenue figure. State is process-local and
// append-only; entries are never modified after recording.
type Service struct {
	Logger zerolog.Logger

	mu      sync.Mutex
	ledger  []sale.Summary
	revenue money.Money
}

// NewService returns an empty ledger.
func NewService(logger zerolog.Logger) *Service {
	return &Service{Logger: logger, revenue: money.Zero()}
}

// RecordSale books the settled sale.
func (s *Service) RecordSale(_ context.Context, summary sale.Summary) error {
	s.mu.Lock()
	s.ledger = append(s.ledger, summary)
	entries := len(s.ledger)
	s.mu.Unlock()

	s.Logger.Info().
		Str("sale_id", summary.SaleID.String()).
		Str("total_with_vat", summary.TotalWithVAT.Amount()).
		Int("ledger_entries", entries).
		Msg("sale_recorded")
	return nil
}

// UpdateStatistics adds the paid amount to the running revenue figure.
func (s *Service) UpdateStatistics(totalPaid money.Money) {
	s.mu.Lock()
	s.revenue = s.revenue.Add(totalPaid)
	s.mu.Unlock()
}

// Revenue reports the accumulated revenue.
func (s *Service) Revenue() money.Money {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.revenue
}

// RecordedSales returns a copy of the ledger in booking order.
func (s *Service) RecordedSales() []sale.Summary {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]sale.Summary, len(s.ledger))
	copy(out, s.ledger)
	return out
}
