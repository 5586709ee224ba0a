package discount

import (
	"fmt"

	"github.com/noah-isme/backend-kasir/internal/money"
)

// Item represents one sale line as seen by the pipeline.
type Item struct {
	ID       string
	Subtotal money.Money
}

// VolumeTier grants a rate once the pre-discount total strictly exceeds the
// threshold. Tiers form a step function; only the highest applicable tier
// is used.
type VolumeTier struct {
	Threshold money.Money
	Rate      float64
}

// Bundle grants a rate over the subtotals of its member items when every
// required item id is present in the sale. Qualifying bundles apply
// independently of each other.
type Bundle struct {
	Name  string
	Items []string
	Rate  float64
}

// Rules holds the configured discount schedule.
type Rules struct {
	// CustomerRates maps customer ids to their tier rate.
	CustomerRates map[string]float64
	// VolumeTiers must be ordered from highest threshold to lowest.
	VolumeTiers []VolumeTier
	// ItemRates maps item ids to a per-item rate.
	ItemRates map[string]float64
	Bundles   []Bundle
}

// Result is the pipeline output: one component per rule family, their sum,
// and a trace of every component that contributed, for auditing.
type Result struct {
	Customer money.Money
	Volume   money.Money
	PerItem  money.Money
	Bundle   money.Money
	Total    money.Money
	Trace    []string
}

// Compute evaluates the four additive components against the sale lines and
// pre-discount total. Components are summed, never compounded: each one is
// computed against the undiscounted figures.
func Compute(items []Item, total money.Money, customerID string, rules Rules) Result {
	res := Result{
		Customer: money.Zero(),
		Volume:   money.Zero(),
		PerItem:  money.Zero(),
		Bundle:   money.Zero(),
	}

	if rate, ok := rules.CustomerRates[customerID]; ok && rate > 0 {
		res.Customer = total.Mul(rate)
		res.Trace = append(res.Trace, fmt.Sprintf("customer %s: %.0f%% of %s = %s", customerID, rate*100, total, res.Customer))
	}

	for _, tier := range rules.VolumeTiers {
		if total.GreaterThan(tier.Threshold) {
			res.Volume = total.Mul(tier.Rate)
			res.Trace = append(res.Trace, fmt.Sprintf("volume over %s: %.0f%% of %s = %s", tier.Threshold, tier.Rate*100, total, res.Volume))
			break
		}
	}

	for _, it := range items {
		rate, ok := rules.ItemRates[it.ID]
		if !ok || rate <= 0 {
			continue
		}
		component := it.Subtotal.Mul(rate)
		res.PerItem = res.PerItem.Add(component)
		res.Trace = append(res.Trace, fmt.Sprintf("item %s: %.0f%% of %s = %s", it.ID, rate*100, it.Subtotal, component))
	}

	for _, bundle := range rules.Bundles {
		if !containsAll(items, bundle.Items) {
			continue
		}
		eligible := memberSubtotal(items, bundle.Items)
		component := eligible.Mul(bundle.Rate)
		res.Bundle = res.Bundle.Add(component)
		res.Trace = append(res.Trace, fmt.Sprintf("bundle %s: %.0f%% of %s = %s", bundle.Name, bundle.Rate*100, eligible, component))
	}

	res.Total = money.Sum(res.Customer, res.Volume, res.PerItem, res.Bundle)
	return res
}

func containsAll(items []Item, required []string) bool {
	if len(required) == 0 {
		return false
	}
	present := make(map[string]bool, len(items))
	for _, it := range items {
		present[it.ID] = true
	}
	for _, id := range required {
		if !present[id] {
			return false
		}
	}
	return true
}

// memberSubtotal sums the subtotals of exactly the bundle's member items;
// unrelated lines never influence the component.
func memberSubtotal(items []Item, members []string) money.Money {
	member := make(map[string]bool, len(members))
	for _, id := range members {
		member[id] = true
	}
	total := money.Zero()
	for _, it := range items {
		if member[it.ID] {
			total = total.Add(it.Subtotal)
		}
	}
	return total
}
