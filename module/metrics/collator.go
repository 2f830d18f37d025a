package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/addchain/collator/model/parachain"
	"github.com/addchain/collator/module"
)

type CollatorCollector struct {
	produced     prometheus.Counter
	rejected     *prometheus.CounterVec
	confirmed    prometheus.Counter
	abandoned    prometheus.Counter
	mismatches   prometheus.Counter
	headNumber   prometheus.Gauge
	povSize      prometheus.Histogram
	production   prometheus.Histogram
	confirmation prometheus.Histogram
}

var _ module.CollatorMetrics = (*CollatorCollector)(nil)

func NewCollatorCollector(registerer prometheus.Registerer) *CollatorCollector {
	factory := promauto.With(registerer)

	cc := &CollatorCollector{
		produced: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespaceCollator,
			Subsystem: subsystemCollation,
			Name:      "produced_total",
			Help:      "number of collations produced",
		}),
		rejected: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespaceCollator,
			Subsystem: subsystemCollation,
			Name:      "rounds_rejected_total",
			Help:      "number of rounds that produced no collation, by reason",
		}, []string{LabelReason}),
		confirmed: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespaceCollator,
			Subsystem: subsystemConfirmation,
			Name:      "confirmed_total",
			Help:      "number of collations seconded by the relay chain",
		}),
		abandoned: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespaceCollator,
			Subsystem: subsystemConfirmation,
			Name:      "abandoned_total",
			Help:      "number of collations dropped by the relay chain without a signal",
		}),
		mismatches: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespaceCollator,
			Subsystem: subsystemConfirmation,
			Name:      "mismatches_total",
			Help:      "number of confirmation signals not matching the produced collation",
		}),
		headNumber: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespaceCollator,
			Subsystem: subsystemCollation,
			Name:      "head_number",
			Help:      "number of the last produced header",
		}),
		povSize: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespaceCollator,
			Subsystem: subsystemCollation,
			Name:      "pov_size_bytes",
			Help:      "size of the transmitted proof of validity",
			Buckets:   prometheus.ExponentialBuckets(8, 4, 10),
		}),
		production: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespaceCollator,
			Subsystem: subsystemCollation,
			Name:      "production_seconds",
			Help:      "time spent producing a collation",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
		}),
		confirmation: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespaceCollator,
			Subsystem: subsystemConfirmation,
			Name:      "latency_seconds",
			Help:      "time from production to confirmation",
			Buckets:   prometheus.ExponentialBuckets(0.01, 4, 8),
		}),
	}

	return cc
}

func (cc *CollatorCollector) CollationProduced(head parachain.HeadData, povSize int, duration time.Duration) {
	cc.produced.Inc()
	cc.headNumber.Set(float64(head.Number))
	cc.povSize.Observe(float64(povSize))
	cc.production.Observe(duration.Seconds())
}

func (cc *CollatorCollector) RoundRejected(reason string) {
	cc.rejected.WithLabelValues(reason).Inc()
}

func (cc *CollatorCollector) CollationConfirmed(latency time.Duration) {
	cc.confirmed.Inc()
	cc.confirmation.Observe(latency.Seconds())
}

func (cc *CollatorCollector) CollationAbandoned() {
	cc.abandoned.Inc()
}

func (cc *CollatorCollector) ConfirmationMismatch() {
	cc.mismatches.Inc()
}
