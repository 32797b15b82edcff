package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
)

// ShopMetrics бизнес-метрики магазина и задержки HTTP. Нулевой указатель допустим, все методы
// тогда ничего не делают.
type ShopMetrics struct {
	ordersPlaced    *prometheus.CounterVec
	orderRejections *prometheus.CounterVec
	ledgerPostings  *prometheus.CounterVec
	ledgerAmount    *prometheus.CounterVec
	eventsPublished *prometheus.CounterVec
	httpDuration    *prometheus.HistogramVec
}

// New регистрирует метрики в reg. При reg == nil метрики не собираются.
func New(reg prometheus.Registerer) *ShopMetrics {
	if reg == nil {
		return &ShopMetrics{}
	}
	m := &ShopMetrics{
		ordersPlaced: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "orders_placed_total",
			Help: "Orders placed, by payment status.",
		}, []string{"payment_status"}),
		orderRejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "order_rejections_total",
			Help: "Orders rejected before commit, by reason.",
		}, []string{"reason"}),
		ledgerPostings: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ledger_postings_total",
			Help: "Ledger entries posted, by kind.",
		}, []string{"kind"}),
		ledgerAmount: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ledger_amount_total",
			Help: "Sum of posted ledger amounts, by kind.",
		}, []string{"kind"}),
		eventsPublished: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "events_published_total",
			Help: "Realtime events published, by event name.",
		}, []string{"event"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}
	reg.MustRegister(
		m.ordersPlaced,
		m.orderRejections,
		m.ledgerPostings,
		m.ledgerAmount,
		m.eventsPublished,
		m.httpDuration,
	)
	return m
}

func (m *ShopMetrics) IncOrderPlaced(paymentStatus string) {
	if m == nil || m.ordersPlaced == nil {
		return
	}
	m.ordersPlaced.WithLabelValues(normalizeLabel(paymentStatus)).Inc()
}

func (m *ShopMetrics) IncOrderRejected(reason string) {
	if m == nil || m.orderRejections == nil {
		return
	}
	m.orderRejections.WithLabelValues(normalizeLabel(reason)).Inc()
}

// ObserveLedgerPosting учитывает проведенную запись и ее сумму.
func (m *ShopMetrics) ObserveLedgerPosting(kind string, amount decimal.Decimal) {
	if m == nil || m.ledgerPostings == nil {
		return
	}
	label := normalizeLabel(kind)
	m.ledgerPostings.WithLabelValues(label).Inc()
	m.ledgerAmount.WithLabelValues(label).Add(amount.InexactFloat64())
}

func (m *ShopMetrics) IncEventPublished(event string) {
	if m == nil || m.eventsPublished == nil {
		return
	}
	m.eventsPublished.WithLabelValues(normalizeLabel(event)).Inc()
}

func (m *ShopMetrics) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	if m == nil || m.httpDuration == nil {
		return
	}
	m.httpDuration.WithLabelValues(method, normalizeLabel(route), strconv.Itoa(status)).Observe(duration.Seconds())
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
