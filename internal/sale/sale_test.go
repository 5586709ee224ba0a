package sale

import (
	"errors"
	"testing"

	"github.com/noah-isme/backend-kasir/internal/catalog"
	"github.com/noah-isme/backend-kasir/internal/money"
)

func cornflakes() catalog.Item {
	return catalog.Item{ID: "1", Name: "Kellogg's Cornflakes", Price: money.FromFloat(10.0), VATRate: 0.12}
}

func pasta() catalog.Item {
	return catalog.Item{ID: "2", Name: "Barilla Pasta", Price: money.FromFloat(15.0), VATRate: 0.12}
}

func TestLineItemSubtotal(t *testing.T) {
	s := New()
	if _, err := s.AddItem(cornflakes(), 3); err != nil {
		t.Fatalf("add item: %v", err)
	}
	li := s.Items()[0]
	if got := li.Subtotal().Amount(); got != "30.00" {
		t.Fatalf("expected subtotal 30.00, got %s", got)
	}
	if got := li.VATAmount().Amount(); got != "3.60" {
		t.Fatalf("expected VAT 3.60, got %s", got)
	}
	if got := li.TotalWithVAT().Amount(); got != "33.60" {
		t.Fatalf("expected total 33.60, got %s", got)
	}
}

func TestAddItemMergesSameID(t *testing.T) {
	s := New()
	first, err := s.AddItem(cornflakes(), 2)
	if err != nil {
		t.Fatalf("add item: %v", err)
	}
	if first.Merged {
		t.Fatal("first registration must not be flagged as merged")
	}
	second, err := s.AddItem(cornflakes(), 1)
	if err != nil {
		t.Fatalf("add item: %v", err)
	}
	if !second.Merged {
		t.Fatal("second registration of same id must merge")
	}
	items := s.Items()
	if len(items) != 1 {
		t.Fatalf("expected one line item, got %d", len(items))
	}
	if got := items[0].Quantity(); got != 3 {
		t.Fatalf("expected quantity 3, got %d", got)
	}
}

func TestAddItemPreservesInsertionOrder(t *testing.T) {
	s := New()
	mustAdd(t, s, cornflakes(), 1)
	mustAdd(t, s, pasta(), 1)
	mustAdd(t, s, cornflakes(), 2)

	items := s.Items()
	if len(items) != 2 {
		t.Fatalf("expected two lines, got %d", len(items))
	}
	if items[0].Item().ID != "1" || items[1].Item().ID != "2" {
		t.Fatalf("merge must not reorder lines: %s, %s", items[0].Item().ID, items[1].Item().ID)
	}
}

func TestAddItemRejectsInvalidQuantity(t *testing.T) {
	s := New()
	for _, qty := range []int{0, -1} {
		if _, err := s.AddItem(cornflakes(), qty); !errors.Is(err, ErrInvalidQuantity) {
			t.Fatalf("qty %d: expected ErrInvalidQuantity, got %v", qty, err)
		}
	}
}

func TestTotalsIdentity(t *testing.T) {
	s := New()
	mustAdd(t, s, cornflakes(), 2)
	mustAdd(t, s, pasta(), 1)
	if err := s.ApplyDiscount("1001", money.FromFloat(5)); err != nil {
		t.Fatalf("apply discount: %v", err)
	}

	// the identity must hold on every read while the sale is open
	for i := 0; i < 3; i++ {
		want := s.Total().Add(s.TotalVAT()).Sub(s.DiscountAmount())
		if !s.TotalWithVAT().Equal(want) {
			t.Fatalf("identity broken: %s != %s", s.TotalWithVAT(), want)
		}
	}
}

func TestApplyDiscountLastWriteWins(t *testing.T) {
	s := New()
	mustAdd(t, s, cornflakes(), 2)
	if err := s.ApplyDiscount("1001", money.FromFloat(3)); err != nil {
		t.Fatalf("apply discount: %v", err)
	}
	if err := s.ApplyDiscount("1002", money.FromFloat(1)); err != nil {
		t.Fatalf("apply discount: %v", err)
	}
	if !s.DiscountAmount().Equal(money.FromFloat(1)) {
		t.Fatalf("expected replacement discount 1.00, got %s", s.DiscountAmount())
	}
	if s.CustomerID() != "1002" {
		t.Fatalf("expected customer 1002, got %s", s.CustomerID())
	}
}

func TestEndToEndTotalsAndChange(t *testing.T) {
	s := New()
	mustAdd(t, s, cornflakes(), 2)
	mustAdd(t, s, cornflakes(), 1)
	mustAdd(t, s, pasta(), 1)

	if got := s.Total().Amount(); got != "45.00" {
		t.Fatalf("expected total 45.00, got %s", got)
	}
	if got := s.TotalVAT().Amount(); got != "5.40" {
		t.Fatalf("expected VAT 5.40, got %s", got)
	}
	if got := s.TotalWithVAT().Amount(); got != "50.40" {
		t.Fatalf("expected total with VAT 50.40, got %s", got)
	}

	rec, rcpt, err := s.SettlePayment(money.FromFloat(100))
	if err != nil {
		t.Fatalf("settle: %v", err)
	}
	if got := rec.Change.Amount(); got != "49.60" {
		t.Fatalf("expected change 49.60, got %s", got)
	}
	if !rcpt.TotalWithVAT.Equal(money.FromFloat(50.40)) {
		t.Fatalf("receipt total mismatch: %s", rcpt.TotalWithVAT)
	}
	if len(rcpt.Lines) != 2 {
		t.Fatalf("expected 2 receipt lines, got %d", len(rcpt.Lines))
	}
}

func TestSettleTwiceFails(t *testing.T) {
	s := New()
	mustAdd(t, s, cornflakes(), 1)
	if _, _, err := s.SettlePayment(money.FromFloat(20)); err != nil {
		t.Fatalf("settle: %v", err)
	}
	if _, _, err := s.SettlePayment(money.FromFloat(20)); !errors.Is(err, ErrAlreadySettled) {
		t.Fatalf("expected ErrAlreadySettled, got %v", err)
	}
}

func TestNoMutationAfterSettlement(t *testing.T) {
	s := New()
	mustAdd(t, s, cornflakes(), 1)
	if _, _, err := s.SettlePayment(money.FromFloat(20)); err != nil {
		t.Fatalf("settle: %v", err)
	}
	if _, err := s.AddItem(pasta(), 1); !errors.Is(err, ErrAlreadySettled) {
		t.Fatalf("expected ErrAlreadySettled on add, got %v", err)
	}
	if err := s.ApplyDiscount("1001", money.FromFloat(1)); !errors.Is(err, ErrAlreadySettled) {
		t.Fatalf("expected ErrAlreadySettled on discount, got %v", err)
	}
}

func TestReceiptIsDetachedSnapshot(t *testing.T) {
	s := New()
	mustAdd(t, s, cornflakes(), 1)
	summary := s.Summarize()
	mustAdd(t, s, pasta(), 1)
	if len(summary.Lines) != 1 {
		t.Fatalf("summary must not track later additions, got %d lines", len(summary.Lines))
	}
}

func TestSettlementAllowsNegativeChange(t *testing.T) {
	s := New()
	mustAdd(t, s, pasta(), 1)
	rec, _, err := s.SettlePayment(money.FromFloat(10))
	if err != nil {
		t.Fatalf("settle: %v", err)
	}
	if !rec.Change.IsNegative() {
		t.Fatalf("expected negative change, got %s", rec.Change)
	}
}

func mustAdd(t *testing.T, s *Sale, item catalog.Item, qty int) {
	t.Helper()
	if _, err := s.AddItem(item, qty); err != nil {
		t.Fatalf("add item %s: %v", item.ID, err)
	}
}
