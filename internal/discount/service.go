package discount

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/noah-isme/backend-kasir/internal/money"
	"github.com/noah-isme/backend-kasir/internal/obs"
)

// Service runs the pipeline over a configured rule set and logs the
// component breakdown. Only the summed amount ends up on the sale; the
// breakdown exists for observability.
type Service struct {
	Rules  Rules
	Logger zerolog.Logger
}

// ComputeDiscount evaluates the schedule for a sale. It never fails: an
// unknown customer simply earns no customer component.
func (s *Service) ComputeDiscount(_ context.Context, items []Item, total money.Money, customerID string) (money.Money, error) {
	res := Compute(items, total, customerID, s.Rules)
	if obs.DiscountComputedTotal != nil {
		obs.DiscountComputedTotal.Inc()
	}
	s.Logger.Info().
		Str("customer_id", customerID).
		Str("pre_discount_total", total.Amount()).
		Str("customer_component", res.Customer.Amount()).
		Str("volume_component", res.Volume.Amount()).
		Str("item_component", res.PerItem.Amount()).
		Str("bundle_component", res.Bundle.Amount()).
		Str("total_discount", res.Total.Amount()).
		Strs("trace", res.Trace).
		Msg("discount_computed")
	return res.Total, nil
}

// DefaultRules is the demo schedule: the member tiers, the two-step volume
// ladder and a breakfast bundle over the seeded catalog.
func DefaultRules() Rules {
	return Rules{
		CustomerRates: map[string]float64{
			"1001": 0.10,
			"1002": 0.05,
		},
		VolumeTiers: []VolumeTier{
			{Threshold: money.FromFloat(1000), Rate: 0.03},
			{Threshold: money.FromFloat(500), Rate: 0.02},
		},
		ItemRates: map[string]float64{
			"5": 0.05,
		},
		Bundles: []Bundle{
			{Name: "breakfast", Items: []string{"1", "3"}, Rate: 0.05},
		},
	}
}
