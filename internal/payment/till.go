package payment

import (
	"sync"

	"github.com/noah-isme/backend-kasir/internal/money"
)

// Till is the cash drawer ledger. It accumulates every recorded payment so
// the drawer balance can be reconciled at end of day. Safe for concurrent
// use by multiple terminals sharing one drawer.
type Till struct {
	mu       sync.Mutex
	balance  money.Money
	payments []Record
}

// NewTill returns an empty till.
func NewTill() *Till {
	return &Till{balance: money.Zero()}
}

// RecordPayment adds the net amount of the payment (tendered minus change
// returned to the customer) to the drawer and appends it to the ledger.
func (t *Till) RecordPayment(rec Record) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.balance = t.balance.Add(rec.Tendered).Sub(rec.Change)
	t.payments = append(t.payments, rec)
}

// Balance reports the current drawer balance.
func (t *Till) Balance() money.Money {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.balance
}

// Payments returns a copy of the ledger in recording order.
func (t *Till) Payments() []Record {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]Record, len(t.payments))
	copy(out, t.payments)
	return out
}
