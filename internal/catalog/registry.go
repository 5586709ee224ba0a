package catalog

import (
	"context"
	"sync"

	"github.com/noah-isme/backend-kasir/internal/money"
)

// outageTriggerID simulates a catalog backend outage for demos and tests.
const outageTriggerID = "9999"

// Registry is an in-memory catalog with per-item stock levels. Lookups are
// read-mostly; stock decrements are serialised so concurrent settlements
// cannot oversell a single item.
type Registry struct {
	mu    sync.Mutex
	items map[string]Item
	stock map[string]int
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		items: make(map[string]Item),
		stock: make(map[string]int),
	}
}

// NewSeededRegistry returns a registry preloaded with the demo catalog,
// every item stocked at the given level.
func NewSeededRegistry(stockLevel int) *Registry {
	r := NewRegistry()
	for _, it := range demoCatalog() {
		r.Put(it, stockLevel)
	}
	return r
}

// Put registers or replaces an item and sets its stock level.
func (r *Registry) Put(item Item, stock int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[item.ID] = item
	r.stock[item.ID] = stock
}

// FindItem implements Finder. The reserved outage id yields ErrUnavailable
// so callers can exercise the transient-failure path.
func (r *Registry) FindItem(_ context.Context, itemID string) (Item, error) {
	if itemID == outageTriggerID {
		return Item{}, ErrUnavailable
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	item, ok := r.items[itemID]
	if !ok {
		return Item{}, ErrItemNotFound
	}
	return item, nil
}

// StockLevel reports the remaining stock for an item.
func (r *Registry) StockLevel(itemID string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.stock[itemID]
}

// DecrementStock atomically reduces stock for an item. It returns false,
// without changing anything, when the item is unknown or the remaining
// stock does not cover the quantity.
func (r *Registry) DecrementStock(itemID string, qty int) bool {
	if qty <= 0 {
		return false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	current, ok := r.stock[itemID]
	if !ok || current < qty {
		return false
	}
	r.stock[itemID] = current - qty
	return true
}

func demoCatalog() []Item {
	return []Item{
		{
			ID:          "1",
			Name:        "Kellogg's Cornflakes",
			Description: "500g, whole grain, fortified with vitamins",
			Price:       money.FromFloat(10.0),
			VATRate:     0.12,
		},
		{
			ID:          "2",
			Name:        "Barilla Pasta",
			Description: "500g, spaghetti, bronze cut",
			Price:       money.FromFloat(15.0),
			VATRate:     0.12,
		},
		{
			ID:          "3",
			Name:        "Arla Milk",
			Description: "1L, organic whole milk, pasteurized",
			Price:       money.FromFloat(22.0),
			VATRate:     0.12,
		},
		{
			ID:          "4",
			Name:        "Wasa Crispbread",
			Description: "275g, whole grain, low sugar",
			Price:       money.FromFloat(30.0),
			VATRate:     0.25,
		},
		{
			ID:          "5",
			Name:        "Fazer Chocolate",
			Description: "200g, milk chocolate, Finnish quality",
			Price:       money.FromFloat(75.0),
			VATRate:     0.25,
		},
	}
}
