package obs

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	domainOnce sync.Once

	// BasketQuoteTotal counts basket quote computations by client category and result.
	BasketQuoteTotal *prometheus.CounterVec
	// BasketCreateTotal counts persisted basket creations by client category and result.
	BasketCreateTotal *prometheus.CounterVec
	// ClientCreateTotal counts client creations by category and result.
	ClientCreateTotal *prometheus.CounterVec
	// QuoteSkippedItems counts basket quote lines dropped because the product id resolved to nothing.
	QuoteSkippedItems prometheus.Counter
)

// MustRegisterDomainMetrics initialises and registers domain-specific Prometheus collectors.
func MustRegisterDomainMetrics(namespace string, reg prometheus.Registerer) {
	domainOnce.Do(func() {
		if reg == nil {
			reg = prometheus.DefaultRegisterer
		}
		BasketQuoteTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "basket_quote_total",
			Help:      "Count of basket quote computations by outcome.",
		}, []string{"category", "result"})
		BasketCreateTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "basket_create_total",
			Help:      "Count of basket creations by outcome.",
		}, []string{"category", "result"})
		ClientCreateTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "client_create_total",
			Help:      "Count of client creations by outcome.",
		}, []string{"category", "result"})
		QuoteSkippedItems = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "quote_skipped_items_total",
			Help:      "Quote lines dropped because the referenced product does not exist.",
		})

		reg.MustRegister(BasketQuoteTotal, BasketCreateTotal, ClientCreateTotal, QuoteSkippedItems)
	})
}

// CountQuote records a basket quote outcome when metrics are registered.
func CountQuote(category, result string) {
	if BasketQuoteTotal != nil {
		BasketQuoteTotal.WithLabelValues(category, result).Inc()
	}
}

// CountBasketCreate records a basket creation outcome when metrics are registered.
func CountBasketCreate(category, result string) {
	if BasketCreateTotal != nil {
		BasketCreateTotal.WithLabelValues(category, result).Inc()
	}
}

// CountClientCreate records a client creation outcome when metrics are registered.
func CountClientCreate(category, result string) {
	if ClientCreateTotal != nil {
		ClientCreateTotal.WithLabelValues(category, result).Inc()
	}
}

// CountSkippedItems adds to the skipped-line counter when metrics are registered.
func CountSkippedItems(n int) {
	if QuoteSkippedItems != nil && n > 0 {
		QuoteSkippedItems.Add(float64(n))
	}
}
