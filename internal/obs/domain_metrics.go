package obs

import (
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// DomainMetrics groups the checkout and cart collectors. A nil
// *DomainMetrics records nothing.
type DomainMetrics struct {
	CheckoutTotal        *prometheus.CounterVec
	CheckoutDuration     *prometheus.HistogramVec
	CartMutationsTotal   *prometheus.CounterVec
	OrderConfirmations   *prometheus.CounterVec
	CheckoutLockContends prometheus.Counter
}

// NewDomainMetrics builds and registers a fresh set of domain collectors.
func NewDomainMetrics(namespace string, reg prometheus.Registerer) *DomainMetrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	m := &DomainMetrics{
		CheckoutTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "checkout_total",
			Help:      "Checkout attempts by result (accepted or the rejection code).",
		}, []string{"result"}),
		CheckoutDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "checkout_duration_ms",
			Help:      "Checkout latency in milliseconds, lock wait included.",
			Buckets:   []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
		}, []string{"result"}),
		CartMutationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cart_mutations_total",
			Help:      "Cart replace, merge and clear operations by result.",
		}, []string{"op", "result"}),
		OrderConfirmations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "order_confirmations_total",
			Help:      "Order confirmation jobs by stage and result.",
		}, []string{"stage", "result"}),
		CheckoutLockContends: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "checkout_lock_contended_total",
			Help:      "Checkouts rejected because another checkout held the owner lock.",
		}),
	}
	m.CheckoutTotal = registerCollector(reg, m.CheckoutTotal)
	m.CheckoutDuration = registerCollector(reg, m.CheckoutDuration)
	m.CartMutationsTotal = registerCollector(reg, m.CartMutationsTotal)
	m.OrderConfirmations = registerCollector(reg, m.OrderConfirmations)
	m.CheckoutLockContends = registerCollector(reg, m.CheckoutLockContends)
	return m
}

// ObserveCheckout records one checkout outcome.
func (m *DomainMetrics) ObserveCheckout(result string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.CheckoutTotal.WithLabelValues(result).Inc()
	m.CheckoutDuration.WithLabelValues(result).Observe(DurationMillis(elapsed))
}

// LockContended counts a checkout turned away by the owner lock.
func (m *DomainMetrics) LockContended() {
	if m == nil {
		return
	}
	m.CheckoutLockContends.Inc()
}

// ObserveCartMutation records one cart write.
func (m *DomainMetrics) ObserveCartMutation(op, result string) {
	if m == nil {
		return
	}
	m.CartMutationsTotal.WithLabelValues(op, result).Inc()
}

// ObserveConfirmation records a confirmation enqueue or delivery.
func (m *DomainMetrics) ObserveConfirmation(stage, result string) {
	if m == nil {
		return
	}
	m.OrderConfirmations.WithLabelValues(stage, result).Inc()
}

// registerCollector registers c, returning the already registered collector
// of the same description when there is one.
func registerCollector[T prometheus.Collector](reg prometheus.Registerer, c T) T {
	err := reg.Register(c)
	if err == nil {
		return c
	}
	var are prometheus.AlreadyRegisteredError
	if !errors.As(err, &are) {
		panic(fmt.Errorf("register metric: %w", err))
	}
	if existing, ok := are.ExistingCollector.(T); ok {
		return existing
	}
	return c
}
