package catalog

import (
	"context"
	"errors"

	"github.com/noah-isme/backend-kasir/internal/money"
)

var (
	// ErrItemNotFound is returned when no item exists for the identifier.
	ErrItemNotFound = errors.New("catalog: item not found")
	// ErrUnavailable signals a transient catalog backend failure. Callers
	// should surface it as retryable, distinct from a missing item.
	ErrUnavailable = errors.New("catalog: backend unavailable")
)

// Item is the immutable catalog snapshot embedded in a sale line. It never
// references the sale that holds it.
type Item struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Price       money.Money `json:"price"`
	VATRate     float64     `json:"vatRate"`
}

// Finder looks up item data for the register.
type Finder interface {
	FindItem(ctx context.Context, itemID string) (Item, error)
}
