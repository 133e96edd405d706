package offer

import (
	"github.com/prometheus/client_golang/prometheus"
	"strconv"
)

const (
	redeemResultSuccess     = "success"
	redeemResultRejected    = "rejected"
	redeemResultRaceLost    = "race_lost"
	redeemResultLockTimeout = "lock_timeout"
	redeemResultError       = "error"
)

// Metrics ...
type Metrics struct {
	previewTotal   *prometheus.CounterVec
	redeemTotal    *prometheus.CounterVec
	commitDuration prometheus.Histogram
}

// NewMetrics registers the offer metrics into reg
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		previewTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "offer_preview_total",
			Help: "Number of discount previews",
		}, []string{"eligible"}),

		redeemTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "offer_redeem_total",
			Help: "Number of redemptions by result",
		}, []string{"result"}),

		commitDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "offer_commit_duration_seconds",
			Help:    "Duration of the atomic usage commit",
			Buckets: prometheus.ExponentialBuckets(0.0005, 2, 14),
		}),
	}

	reg.MustRegister(m.previewTotal, m.redeemTotal, m.commitDuration)
	return m
}

func (m *Metrics) observePreview(eligible bool) {
	m.previewTotal.WithLabelValues(strconv.FormatBool(eligible)).Inc()
}

func (m *Metrics) observeRedeem(result string) {
	m.redeemTotal.WithLabelValues(result).Inc()
}
