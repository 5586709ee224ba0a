package discount

import (
	"testing"

	"github.com/noah-isme/backend-kasir/internal/money"
)

func TestCustomerAndVolumeComponents(t *testing.T) {
	rules := DefaultRules()
	total := money.FromFloat(1200)
	res := Compute(nil, total, "1001", rules)

	if got := res.Customer.Amount(); got != "120.00" {
		t.Fatalf("expected customer component 120.00, got %s", got)
	}
	if got := res.Volume.Amount(); got != "36.00" {
		t.Fatalf("expected volume component 36.00, got %s", got)
	}
	if got := res.Total.Amount(); got != "156.00" {
		t.Fatalf("expected total discount 156.00, got %s", got)
	}
}

func TestVolumeTiersAreAStepFunction(t *testing.T) {
	rules := DefaultRules()
	cases := []struct {
		total string
		want  string
	}{
		{"400.00", "0.00"},
		{"500.00", "0.00"}, // strict threshold
		{"600.00", "12.00"},
		{"1000.00", "20.00"}, // still in the 2% tier
		{"1001.00", "30.03"}, // highest tier wins, not cumulative
	}
	for _, tc := range cases {
		res := Compute(nil, money.MustParse(tc.total), "", rules)
		if got := res.Volume.Amount(); got != tc.want {
			t.Fatalf("total %s: expected volume %s, got %s", tc.total, tc.want, got)
		}
	}
}

func TestUnknownCustomerEarnsNothing(t *testing.T) {
	res := Compute(nil, money.FromFloat(1200), "9000", DefaultRules())
	if !res.Customer.Equal(money.Zero()) {
		t.Fatalf("expected zero customer component, got %s", res.Customer)
	}
}

func TestPerItemComponent(t *testing.T) {
	rules := Rules{ItemRates: map[string]float64{"5": 0.05}}
	items := []Item{
		{ID: "5", Subtotal: money.FromFloat(150)},
		{ID: "2", Subtotal: money.FromFloat(30)},
	}
	res := Compute(items, money.FromFloat(180), "", rules)
	if got := res.PerItem.Amount(); got != "7.50" {
		t.Fatalf("expected per-item component 7.50, got %s", got)
	}
}

func TestBundleComponent(t *testing.T) {
	rules := Rules{Bundles: []Bundle{{Name: "pair", Items: []string{"X", "Y"}, Rate: 0.15}}}
	items := []Item{
		{ID: "X", Subtotal: money.FromFloat(40)},
		{ID: "Y", Subtotal: money.FromFloat(60)},
		{ID: "Z", Subtotal: money.FromFloat(999)},
	}
	res := Compute(items, money.FromFloat(1099), "", rules)
	if got := res.Bundle.Amount(); got != "15.00" {
		t.Fatalf("expected bundle component 15.00 independent of Z, got %s", got)
	}
}

func TestBundleRequiresAllMembers(t *testing.T) {
	rules := Rules{Bundles: []Bundle{{Name: "pair", Items: []string{"X", "Y"}, Rate: 0.15}}}
	items := []Item{{ID: "X", Subtotal: money.FromFloat(40)}}
	res := Compute(items, money.FromFloat(40), "", rules)
	if !res.Bundle.Equal(money.Zero()) {
		t.Fatalf("expected no bundle component, got %s", res.Bundle)
	}
}

func TestMultipleBundlesApplyIndependently(t *testing.T) {
	rules := Rules{Bundles: []Bundle{
		{Name: "ab", Items: []string{"A", "B"}, Rate: 0.10},
		{Name: "bc", Items: []string{"B", "C"}, Rate: 0.10},
	}}
	items := []Item{
		{ID: "A", Subtotal: money.FromFloat(10)},
		{ID: "B", Subtotal: money.FromFloat(20)},
		{ID: "C", Subtotal: money.FromFloat(30)},
	}
	res := Compute(items, money.FromFloat(60), "", rules)
	// ab: 10% of 30 = 3.00, bc: 10% of 50 = 5.00
	if got := res.Bundle.Amount(); got != "8.00" {
		t.Fatalf("expected 8.00 across both bundles, got %s", got)
	}
}

func TestComponentsAreAdditive(t *testing.T) {
	rules := DefaultRules()
	items := []Item{
		{ID: "1", Subtotal: money.FromFloat(600)},
		{ID: "3", Subtotal: money.FromFloat(400)},
		{ID: "5", Subtotal: money.FromFloat(150)},
	}
	total := money.FromFloat(1150)
	res := Compute(items, total, "1001", rules)
	sum := money.Sum(res.Customer, res.Volume, res.PerItem, res.Bundle)
	if !res.Total.Equal(sum) {
		t.Fatalf("total %s must equal component sum %s", res.Total, sum)
	}
	if len(res.Trace) != 4 {
		t.Fatalf("expected 4 trace entries, got %d: %v", len(res.Trace), res.Trace)
	}
}
