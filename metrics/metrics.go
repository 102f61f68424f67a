package metrics

import "github.com/prometheus/client_golang/prometheus"

const namespace = "drop_service"

// Business counters for the sale pipeline. HTTP-level metrics live in the
// middleware package.
var (
	CheckoutSessionsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "checkout_sessions_total",
		Help:      "Number of Stripe checkout sessions opened.",
	})

	ItemsSoldTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "items_sold_total",
		Help:      "Number of items marked sold by the webhook handler.",
	})

	FulfillmentOrdersTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "fulfillment_orders_total",
		Help:      "Number of fulfillment orders submitted to the print provider.",
	})

	FulfillmentFailuresTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "fulfillment_failures_total",
		Help:      "Number of fulfillment submissions that failed and need manual retry.",
	})
)

func init() {
	prometheus.MustRegister(
		CheckoutSessionsTotal,
		ItemsSoldTotal,
		FulfillmentOrdersTotal,
		FulfillmentFailuresTotal,
	)
}
