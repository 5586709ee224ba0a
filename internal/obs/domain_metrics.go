package obs

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	domainOnce sync.Once

	// SalesSettledTotal counts settled sales.
	SalesSettledTotal prometheus.Counter
	// RevenueTotal accumulates paid amounts across settled sales.
	RevenueTotal prometheus.Counter
	// ItemLookupTotal counts catalog lookups by outcome (found, not_found, unavailable).
	ItemLookupTotal *prometheus.CounterVec
	// DiscountComputedTotal counts discount pipeline evaluations.
	DiscountComputedTotal prometheus.Counter
	// CompletionFailureTotal counts swallowed failures during the post-payment
	// sequence, labelled by stage (printer, handler, observer).
	CompletionFailureTotal *prometheus.CounterVec
)

// MustRegisterDomainMetrics initialises and registers the domain collectors.
func MustRegisterDomainMetrics(namespace string, reg prometheus.Registerer) {
	domainOnce.Do(func() {
		if reg == nil {
			reg = prometheus.DefaultRegisterer
		}
		SalesSettledTotal = registerCounter(reg, prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sales_settled_total",
			Help:      "Number of sales settled by this register.",
		}))
		RevenueTotal = registerCounter(reg, prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "revenue_total",
			Help:      "Accumulated paid amounts across settled sales.",
		}))
		ItemLookupTotal = registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "item_lookup_total",
			Help:      "Catalog item lookups by outcome.",
		}, []string{"result"}))
		DiscountComputedTotal = registerCounter(reg, prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "discount_computed_total",
			Help:      "Discount pipeline evaluations.",
		}))
		CompletionFailureTotal = registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "completion_failure_total",
			Help:      "Collaborator failures swallowed during sale completion.",
		}, []string{"stage"}))
	})
}
