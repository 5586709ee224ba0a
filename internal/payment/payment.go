package payment

import (
	"time"

	"github.com/noah-isme/backend-kasir/internal/money"
)

// Record captures a settled cash payment. It is immutable once created.
type Record struct {
	Tendered  money.Money `json:"tendered"`
	Change    money.Money `json:"change"`
	SettledAt time.Time   `json:"settledAt"`
}

// ComputeChange returns tendered minus the amount due. The engine does not
// reject underpayment, so the result may be negative; rejecting a short
// tender is a policy decision for the surrounding service layer.
func ComputeChange(tendered, totalDue money.Money) money.Money {
	return tendered.Sub(totalDue)
}

// NewRecord settles a payment against the amount due at the given instant.
func NewRecord(tendered, totalDue money.Money, settledAt time.Time) Record {
	return Record{
		Tendered:  tendered,
		Change:    ComputeChange(tendered, totalDue),
		SettledAt: settledAt,
	}
}
