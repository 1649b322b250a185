package utils

import (
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	QuotesServed = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "orderladder",
		Name:      "quotes_served_total",
		Help:      "Next-amount quotes returned to clients.",
	})

	ProviderOrders = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "orderladder",
		Name:      "provider_orders_total",
		Help:      "Provider order creation attempts by result.",
	}, []string{"result"})

	Verifications = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "orderladder",
		Name:      "verifications_total",
		Help:      "Payment verifications by terminal state.",
	}, []string{"state"})

	LedgerTotalOrders = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "orderladder",
		Name:      "ledger_total_orders",
		Help:      "Counter value after the most recent committed verification.",
	})

	httpDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "orderladder",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route", "status"})
)

var ledgerTotal struct {
	sync.Mutex
	max int64
}

// ObserveLedgerTotal raises LedgerTotalOrders to n. Overlapping commits may
// report out of order, so a lower value is ignored.
func ObserveLedgerTotal(n int64) {
	ledgerTotal.Lock()
	defer ledgerTotal.Unlock()
	if n <= ledgerTotal.max {
		return
	}
	ledgerTotal.max = n
	LedgerTotalOrders.Set(float64(n))
}

// Terminal states of a verification request.
const (
	VerificationCommitted  = "committed"
	VerificationRejected   = "rejected"
	VerificationRolledBack = "rolled_back"
	VerificationInvalid    = "invalid"
)

// MetricsMiddleware records request latency per route template.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		httpDuration.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).
			Observe(time.Since(start).Seconds())
	}
}

// MetricsHandler exposes the default Prometheus registry.
func MetricsHandler() gin.HandlerFunc {
	return gin.WrapH(promhttp.HandlerFor(prometheus.DefaultGatherer, promhttp.HandlerOpts{
		ErrorHandling: promhttp.HTTPErrorOnError,
	}))
}
