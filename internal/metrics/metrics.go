package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	OrdersSubmittedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rental_orders_submitted_total",
		Help: "Total number of rental orders committed.",
	})

	OrderItemsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rental_order_items_total",
		Help: "Total number of rental item lines committed.",
	})

	OrderFailuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "rental_order_failures_total",
		Help: "Rental order submissions that failed, by stage.",
	},
		[]string{"stage"},
	)

	OperationErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "rental_operation_errors_total",
		Help: "Errors encountered during specific operations.",
	},
		[]string{"operation"},
	)

	PriceListsDeactivatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rental_price_lists_deactivated_total",
		Help: "Price lists switched off by the expiry job.",
	})

	EmailsSentTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "rental_emails_sent_total",
		Help: "Order confirmation emails by result.",
	},
		[]string{"result"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "rental_http_request_duration_seconds",
		Help:    "HTTP request latency by route and status.",
		Buckets: prometheus.DefBuckets,
	},
		[]string{"method", "route", "status"},
	)
)
