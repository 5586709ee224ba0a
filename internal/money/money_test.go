package money

import (
	"encoding/json"
	"testing"
)

func TestRoundingHalfUp(t *testing.T) {
	if got := FromFloat(10.005).Amount(); got != "10.01" {
		t.Fatalf("expected 10.01, got %s", got)
	}
	if got := FromFloat(10.004).Amount(); got != "10.00" {
		t.Fatalf("expected 10.00, got %s", got)
	}
}

func TestArithmeticRescalesEveryStep(t *testing.T) {
	a := FromFloat(0.105)
	b := FromFloat(0.105)
	// each operand is already rounded to 0.11, so the sum is 0.22
	if got := a.Add(b).Amount(); got != "0.22" {
		t.Fatalf("expected 0.22, got %s", got)
	}

	price := FromFloat(10.00)
	vat := price.Mul(0.12)
	if got := vat.Amount(); got != "1.20" {
		t.Fatalf("expected 1.20, got %s", got)
	}
}

func TestAssociativityAfterRounding(t *testing.T) {
	a := FromFloat(1.11)
	b := FromFloat(2.22)
	c := FromFloat(3.33)
	left := a.Add(b).Add(c)
	right := a.Add(b.Add(c))
	if !left.Equal(right) {
		t.Fatalf("expected %s == %s", left, right)
	}
}

func TestSubMayGoNegative(t *testing.T) {
	change := FromFloat(40.00).Sub(FromFloat(50.40))
	if !change.IsNegative() {
		t.Fatalf("expected negative change, got %s", change)
	}
	if got := change.Amount(); got != "-10.40" {
		t.Fatalf("expected -10.40, got %s", got)
	}
}

func TestEqualityIgnoresConstructionPath(t *testing.T) {
	if !FromFloat(10.0).Equal(MustParse("10.00")) {
		t.Fatal("expected 10.0 to equal 10.00")
	}
	if FromFloat(10.0).Equal(FromFloat(10.01)) {
		t.Fatal("expected 10.00 != 10.01")
	}
}

func TestStringCarriesCurrencySuffix(t *testing.T) {
	if got := FromFloat(49.6).String(); got != "49.60 SEK" {
		t.Fatalf("expected 49.60 SEK, got %s", got)
	}
}

func TestJSONRoundTrip(t *testing.T) {
	encoded, err := json.Marshal(FromFloat(15.5))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(encoded) != `"15.50"` {
		t.Fatalf("expected quoted fixed string, got %s", encoded)
	}
	var decoded Money
	if err := json.Unmarshal(encoded, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !decoded.Equal(FromFloat(15.5)) {
		t.Fatalf("expected 15.50 after round trip, got %s", decoded)
	}
}

func TestSum(t *testing.T) {
	total := Sum(FromFloat(10), FromFloat(15), FromFloat(0.40))
	if got := total.Amount(); got != "25.40" {
		t.Fatalf("expected 25.40, got %s", got)
	}
	if !Sum().Equal(Zero()) {
		t.Fatal("expected empty sum to be zero")
	}
}
