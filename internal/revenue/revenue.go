package revenue

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/rs/zerolog"

	"github.com/noah-isme/backend-kasir/internal/money"
	"github.com/noah-isme/backend-kasir/internal/obs"
)

// Tracker is a sale observer that keeps a running total of paid amounts
// and reports it through the log and the revenue counter.
type Tracker struct {
	Logger zerolog.Logger

	mu    sync.Mutex
	total money.Money
}

// NewTracker returns a tracker starting at zero.
func NewTracker(logger zerolog.Logger) *Tracker {
	return &Tracker{Logger: logger, total: money.Zero()}
}

// SaleCompleted accumulates the paid amount.
func (t *Tracker) SaleCompleted(_ context.Context, totalPaid money.Money) error {
	t.mu.Lock()
	t.total = t.total.Add(totalPaid)
	total := t.total
	t.mu.Unlock()

	if obs.RevenueTotal != nil {
		paid, _ := totalPaid.Decimal().Float64()
		if paid > 0 {
			obs.RevenueTotal.Add(paid)
		}
	}
	t.Logger.Info().
		Str("paid", totalPaid.Amount()).
		Str("total_revenue", total.Amount()).
		Msg("revenue_updated")
	return nil
}

// Total reports the accumulated revenue.
func (t *Tracker) Total() money.Money {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.total
}

// FileOutput is a sale observer that appends the running revenue total to a
// file, one line per completed sale.
type FileOutput struct {
	Path string

	mu    sync.Mutex
	total money.Money
}

// NewFileOutput creates an observer writing to the given path.
func NewFileOutput(path string) *FileOutput {
	return &FileOutput{Path: path, total: money.Zero()}
}

// SaleCompleted appends the new running total to the file.
func (f *FileOutput) SaleCompleted(_ context.Context, totalPaid money.Money) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.total = f.total.Add(totalPaid)

	file, err := os.OpenFile(f.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("revenue: open %s: %w", f.Path, err)
	}
	defer file.Close()
	if _, err := fmt.Fprintf(file, "total revenue: %s\n", f.total); err != nil {
		return fmt.Errorf("revenue: write %s: %w", f.Path, err)
	}
	return nil
}
