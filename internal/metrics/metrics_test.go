package metrics

import (
	"fmt"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShopMetricsExportsCounters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.IncOrderPlaced("Unpaid")
	m.IncOrderPlaced("Unpaid")
	m.IncOrderRejected("insufficient_stock")
	m.ObserveLedgerPosting("Debit", decimal.NewFromInt(2160))
	m.ObserveLedgerPosting("Debit", decimal.RequireFromString("0.50"))
	m.IncEventPublished("new_order")
	m.ObserveHTTPRequest("POST", "/api/orders", 201, 120*time.Millisecond)

	mfs, err := reg.Gather()
	require.NoError(t, err)

	got, err := fetchCounterValue(mfs, "orders_placed_total", "payment_status", "Unpaid")
	require.NoError(t, err)
	assert.InDelta(t, 2, got, 0.001)

	got, err = fetchCounterValue(mfs, "order_rejections_total", "reason", "insufficient_stock")
	require.NoError(t, err)
	assert.InDelta(t, 1, got, 0.001)

	got, err = fetchCounterValue(mfs, "ledger_postings_total", "kind", "Debit")
	require.NoError(t, err)
	assert.InDelta(t, 2, got, 0.001)

	got, err = fetchCounterValue(mfs, "ledger_amount_total", "kind", "Debit")
	require.NoError(t, err)
	assert.InDelta(t, 2160.5, got, 0.001)

	got, err = fetchCounterValue(mfs, "events_published_total", "event", "new_order")
	require.NoError(t, err)
	assert.InDelta(t, 1, got, 0.001)

	mf := findMetricFamily(mfs, "http_request_duration_seconds")
	require.NotNil(t, mf)
	require.Len(t, mf.GetMetric(), 1)
	assert.Equal(t, uint64(1), mf.GetMetric()[0].GetHistogram().GetSampleCount())
}

func TestShopMetricsNilSafe(t *testing.T) {
	var m *ShopMetrics
	assert.NotPanics(t, func() {
		m.IncOrderPlaced("Paid")
		m.IncOrderRejected("")
		m.ObserveLedgerPosting("Credit", decimal.NewFromInt(1))
		m.IncEventPublished("stock_updated")
		m.ObserveHTTPRequest("GET", "/", 200, time.Millisecond)
	})

	unregistered := New(nil)
	assert.NotPanics(t, func() {
		unregistered.IncOrderPlaced("Paid")
		unregistered.ObserveLedgerPosting("Credit", decimal.NewFromInt(1))
	})
}

func fetchCounterValue(mfs []*dto.MetricFamily, name, label, value string) (float64, error) {
	mf := findMetricFamily(mfs, name)
	if mf == nil {
		return 0, fmt.Errorf("metric %q not found", name)
	}
	for _, metric := range mf.GetMetric() {
		for _, pair := range metric.GetLabel() {
			if pair.GetName() == label && pair.GetValue() == value {
				return metric.GetCounter().GetValue(), nil
			}
		}
	}
	return 0, fmt.Errorf("metric %q missing label %s=%s", name, label, value)
}

func findMetricFamily(mfs []*dto.MetricFamily, name string) *dto.MetricFamily {
	for _, mf := range mfs {
		if mf.GetName() == name {
			return mf
		}
	}
	return nil
}
