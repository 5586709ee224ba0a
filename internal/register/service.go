package register

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/noah-isme/backend-kasir/internal/catalog"
	"github.com/noah-isme/backend-kasir/internal/completion"
	"github.com/noah-isme/backend-kasir/internal/discount"
	"github.com/noah-isme/backend-kasir/internal/money"
	"github.com/noah-isme/backend-kasir/internal/obs"
	"github.com/noah-isme/backend-kasir/internal/payment"
	"github.com/noah-isme/backend-kasir/internal/sale"
)

// ErrSaleNotFound is returned when no open sale exists for the identifier.
var ErrSaleNotFound = errors.New("register: sale not found")

// DiscountService computes the total discount for a sale's current lines.
type DiscountService interface {
	ComputeDiscount(ctx context.Context, items []discount.Item, total money.Money, customerID string) (money.Money, error)
}

// Registration reports the outcome of one item registration so a caller
// can display the running transaction state.
type Registration struct {
	Item         catalog.Item `json:"item"`
	Quantity     int          `json:"qty"`
	Merged       bool         `json:"merged"`
	TotalWithVAT money.Money  `json:"runningTotalWithVat"`
	TotalVAT     money.Money  `json:"runningTotalVat"`
}

// Service is the register terminal: it owns the open sales, consults the
// catalog and discount collaborators, and hands settled sales to the
// completion notifier. Each sale is driven by one logical caller; the map
// itself is guarded so multiple terminals can share one register service.
type Service struct {
	Catalog    catalog.Finder
	Discounts  DiscountService
	Completion *completion.Notifier
	Logger     zerolog.Logger

	mu    sync.Mutex
	sales map[uuid.UUID]*sale.Sale
}

// NewService creates a register with no open sales.
func NewService(finder catalog.Finder, discounts DiscountService, notifier *completion.Notifier, logger zerolog.Logger) *Service {
	return &Service{
		Catalog:    finder,
		Discounts:  discounts,
		Completion: notifier,
		Logger:     logger,
		sales:      make(map[uuid.UUID]*sale.Sale),
	}
}

// StartSale opens a new sale and returns its identifier.
func (s *Service) StartSale(_ context.Context) uuid.UUID {
	current := sale.New()
	s.mu.Lock()
	s.sales[current.ID()] = current
	s.mu.Unlock()
	s.Logger.Info().Str("sale_id", current.ID().String()).Msg("sale_started")
	return current.ID()
}

// EnterItem looks the item up in the catalog and registers it on the sale.
// Catalog failures propagate as-is so callers can distinguish a missing
// item from a transient backend outage.
func (s *Service) EnterItem(ctx context.Context, saleID uuid.UUID, itemID string, qty int) (Registration, error) {
	current, err := s.lookup(saleID)
	if err != nil {
		return Registration{}, err
	}
	item, err := s.Catalog.FindItem(ctx, itemID)
	if err != nil {
		s.countLookup(err)
		return Registration{}, fmt.Errorf("find item %q: %w", itemID, err)
	}
	s.countLookup(nil)
	running, err := current.AddItem(item, qty)
	if err != nil {
		return Registration{}, err
	}
	return Registration{
		Item:         item,
		Quantity:     qty,
		Merged:       running.Merged,
		TotalWithVAT: running.TotalWithVAT,
		TotalVAT:     running.TotalVAT,
	}, nil
}

// RequestDiscount runs the discount pipeline over the sale's current lines
// and applies the resulting amount. A repeated request replaces the earlier
// discount.
func (s *Service) RequestDiscount(ctx context.Context, saleID uuid.UUID, customerID string) (money.Money, error) {
	current, err := s.lookup(saleID)
	if err != nil {
		return money.Money{}, err
	}
	items := make([]discount.Item, 0, len(current.Items()))
	for _, li := range current.Items() {
		items = append(items, discount.Item{ID: li.Item().ID, Subtotal: li.Subtotal()})
	}
	amount, err := s.Discounts.ComputeDiscount(ctx, items, current.Total(), customerID)
	if err != nil {
		return money.Money{}, fmt.Errorf("compute discount: %w", err)
	}
	if err := current.ApplyDiscount(customerID, amount); err != nil {
		return money.Money{}, err
	}
	return amount, nil
}

// SaleSummary returns the current state of an open sale.
func (s *Service) SaleSummary(_ context.Context, saleID uuid.UUID) (sale.Summary, error) {
	current, err := s.lookup(saleID)
	if err != nil {
		return sale.Summary{}, err
	}
	return current.Summarize(), nil
}

// Pay settles the sale, runs the completion sequence and removes the sale
// from the register. Completion-phase failures are already absorbed by the
// notifier; by the time it runs, payment is committed.
func (s *Service) Pay(ctx context.Context, saleID uuid.UUID, tendered money.Money) (payment.Record, sale.Receipt, error) {
	current, err := s.lookup(saleID)
	if err != nil {
		return payment.Record{}, sale.Receipt{}, err
	}
	record, receipt, err := current.SettlePayment(tendered)
	if err != nil {
		return payment.Record{}, sale.Receipt{}, err
	}
	if s.Completion != nil {
		s.Completion.Notify(ctx, receipt.Summary, receipt)
	}
	s.mu.Lock()
	delete(s.sales, saleID)
	s.mu.Unlock()
	s.Logger.Info().
		Str("sale_id", saleID.String()).
		Str("total", receipt.TotalWithVAT.Amount()).
		Str("tendered", record.Tendered.Amount()).
		Str("change", record.Change.Amount()).
		Msg("sale_settled")
	return record, receipt, nil
}

// OpenSales reports how many sales are currently open.
func (s *Service) OpenSales() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sales)
}

func (s *Service) lookup(saleID uuid.UUID) (*sale.Sale, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	current, ok := s.sales[saleID]
	if !ok {
		return nil, ErrSaleNotFound
	}
	return current, nil
}

func (s *Service) countLookup(err error) {
	if obs.ItemLookupTotal == nil {
		return
	}
	switch {
	case err == nil:
		obs.ItemLookupTotal.WithLabelValues("found").Inc()
	case errors.Is(err, catalog.ErrItemNotFound):
		obs.ItemLookupTotal.WithLabelValues("not_found").Inc()
	case errors.Is(err, catalog.ErrUnavailable):
		obs.ItemLookupTotal.WithLabelValues("unavailable").Inc()
	default:
		obs.ItemLookupTotal.WithLabelValues("error").Inc()
	}
}
