package sale

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/noah-isme/backend-kasir/internal/catalog"
	"github.com/noah-isme/backend-kasir/internal/money"
	"github.com/noah-isme/backend-kasir/internal/payment"
)

var (
	// ErrInvalidQuantity rejects item registrations with a non-positive quantity.
	ErrInvalidQuantity = errors.New("sale: quantity must be greater than zero")
	// ErrAlreadySettled rejects any mutation of a sale after payment.
	ErrAlreadySettled = errors.New("sale: already settled")
)

// Sale is one transaction aggregate. It is mutable only through AddItem,
// ApplyDiscount and SettlePayment, and must be driven by a single logical
// caller; concurrent terminals each own their own Sale.
type Sale struct {
	id         uuid.UUID
	startedAt  time.Time
	items      []*LineItem
	discount   money.Money
	customerID string
	settled    bool
	payment    payment.Record
	receipt    Receipt
}

// RunningTotal is returned from AddItem so a caller can display the
// transaction state after each registration.
type RunningTotal struct {
	TotalWithVAT money.Money
	TotalVAT     money.Money
	Merged       bool
}

// New starts an empty sale in the Open state.
func New() *Sale {
	return &Sale{
		id:        uuid.New(),
		startedAt: time.Now(),
		discount:  money.Zero(),
	}
}

// ID returns the sale identifier.
func (s *Sale) ID() uuid.UUID {
	return s.id
}

// StartedAt returns the creation timestamp.
func (s *Sale) StartedAt() time.Time {
	return s.startedAt
}

// CustomerID returns the customer identifier recorded with a discount, or
// the empty string when no discount was applied.
func (s *Sale) CustomerID() string {
	return s.customerID
}

// DiscountAmount returns the currently applied discount, zero by default.
func (s *Sale) DiscountAmount() money.Money {
	return s.discount
}

// Settled reports whether payment has been recorded.
func (s *Sale) Settled() bool {
	return s.settled
}

// AddItem registers the given quantity of an item. A second registration of
// the same item id increments the existing line instead of appending a new
// one, preserving first-seen insertion order.
func (s *Sale) AddItem(item catalog.Item, qty int) (RunningTotal, error) {
	if s.settled {
		return RunningTotal{}, ErrAlreadySettled
	}
	if qty <= 0 {
		return RunningTotal{}, ErrInvalidQuantity
	}
	merged := false
	if existing := s.findItem(item.ID); existing != nil {
		existing.incrementQuantity(qty)
		merged = true
	} else {
		s.items = append(s.items, newLineItem(item, qty))
	}
	return RunningTotal{
		TotalWithVAT: s.TotalWithVAT(),
		TotalVAT:     s.TotalVAT(),
		Merged:       merged,
	}, nil
}

// ApplyDiscount records the customer and discount amount. Applying a second
// discount replaces the first; components are never accumulated here.
func (s *Sale) ApplyDiscount(customerID string, amount money.Money) error {
	if s.settled {
		return ErrAlreadySettled
	}
	s.customerID = customerID
	s.discount = amount
	return nil
}

// Total sums the line subtotals, excluding VAT.
func (s *Sale) Total() money.Money {
	total := money.Zero()
	for _, li := range s.items {
		total = total.Add(li.Subtotal())
	}
	return total
}

// TotalVAT sums the VAT amounts of all lines.
func (s *Sale) TotalVAT() money.Money {
	total := money.Zero()
	for _, li := range s.items {
		total = total.Add(li.VATAmount())
	}
	return total
}

// TotalWithVAT is Total plus TotalVAT minus the applied discount.
func (s *Sale) TotalWithVAT() money.Money {
	return s.Total().Add(s.TotalVAT()).Sub(s.discount)
}

// SettlePayment freezes the sale, computes change against the discounted
// total and captures the receipt snapshot. It fails on a second call.
func (s *Sale) SettlePayment(tendered money.Money) (payment.Record, Receipt, error) {
	if s.settled {
		return payment.Record{}, Receipt{}, ErrAlreadySettled
	}
	s.settled = true
	s.payment = payment.NewRecord(tendered, s.TotalWithVAT(), time.Now())
	s.receipt = s.snapshotReceipt()
	return s.payment, s.receipt, nil
}

// Payment returns the payment record. Zero value before settlement.
func (s *Sale) Payment() payment.Record {
	return s.payment
}

// Items returns the line items in insertion order. The slice is a copy but
// the line items are live; external code must not mutate them.
func (s *Sale) Items() []*LineItem {
	out := make([]*LineItem, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Sale) findItem(itemID string) *LineItem {
	for _, li := range s.items {
		if li.item.ID == itemID {
			return li
		}
	}
	return nil
}
