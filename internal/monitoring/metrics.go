package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	bookingsCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bookings_created_total",
			Help: "Bookings accepted, by outcome",
		},
		[]string{"outcome"},
	)

	paymentInitializations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "payment_initializations_total",
			Help: "Payment provider initializations, by outcome",
		},
		[]string{"outcome"},
	)

	reconciliations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "payment_reconciliations_total",
			Help: "Verification callbacks processed, by result",
		},
		[]string{"result"},
	)

	gatewayLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "payment_gateway_duration_seconds",
			Help:    "Latency of outbound payment provider calls",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"call"},
	)
)

func RecordBooking(outcome string) {
	bookingsCreated.WithLabelValues(outcome).Inc()
}

func RecordPaymentInit(outcome string) {
	paymentInitializations.WithLabelValues(outcome).Inc()
}

// RecordReconciliation results: paid, failed, duplicate, error.
func RecordReconciliation(result string) {
	reconciliations.WithLabelValues(result).Inc()
}

func ObserveGatewayCall(call string, seconds float64) {
	gatewayLatency.WithLabelValues(call).Observe(seconds)
}
