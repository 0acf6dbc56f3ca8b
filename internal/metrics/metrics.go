package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	OrdersAcceptedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "farmstand_orders_accepted_total",
		Help: "Total number of orders validated and reserved.",
	})

	OrdersSettledTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "farmstand_orders_settled_total",
		Help: "Total number of orders successfully paid.",
	})

	ReservationCutsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "farmstand_reservation_cuts_total",
		Help: "Total number of product edits that reduced the reserved count.",
	})

	CyclesClosedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "farmstand_cycles_closed_total",
		Help: "Total number of weekly rollovers performed.",
	})

	OrdersLockedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "farmstand_orders_locked_total",
		Help: "Total number of baskets locked by weekly rollovers.",
	})

	OperationErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "farmstand_operation_errors_total",
		Help: "Total number of errors encountered during specific operations.",
	},
		[]string{"operation"},
	)

	ProductCacheItems = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "farmstand_product_cache_items",
		Help: "Current number of items in the product cache.",
	})
)
