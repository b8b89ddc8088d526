package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// OrderMetrics tracks the order intake pipeline.
type OrderMetrics struct {
	created    prometheus.Counter
	rejections *prometheus.CounterVec
	totalPrice prometheus.Histogram
}

// NewOrderMetrics registers the order metrics on the provided registerer.
func NewOrderMetrics(reg prometheus.Registerer) *OrderMetrics {
	if reg == nil {
		return &OrderMetrics{}
	}
	created := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "kiosk_orders_created_total",
		Help: "Orders accepted and persisted.",
	})
	rejections := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "kiosk_order_rejections_total",
		Help: "Orders rejected before persistence, by reason.",
	}, []string{"reason"})
	totalPrice := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "kiosk_order_total_price",
		Help:    "Total price of accepted orders in minor currency units.",
		Buckets: prometheus.ExponentialBuckets(1000, 2, 12),
	})
	reg.MustRegister(created, rejections, totalPrice)
	return &OrderMetrics{
		created:    created,
		rejections: rejections,
		totalPrice: totalPrice,
	}
}

// IncCreated counts an accepted order and records its total price.
func (o *OrderMetrics) IncCreated(totalPrice int64) {
	if o == nil || o.created == nil {
		return
	}
	o.created.Inc()
	o.totalPrice.Observe(float64(totalPrice))
}

// IncRejected counts a rejected order under the given reason.
func (o *OrderMetrics) IncRejected(reason string) {
	if o == nil || o.rejections == nil {
		return
	}
	o.rejections.WithLabelValues(normalizeLabel(reason)).Inc()
}
