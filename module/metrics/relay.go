package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/addchain/collator/model/parachain"
	"github.com/addchain/collator/module"
)

type RelayCollector struct {
	rounds            prometheus.Counter
	relayParentNumber prometheus.Gauge
	included          prometheus.Counter
	includedNumber    prometheus.Gauge
	rejected          prometheus.Counter
}

var _ module.RelayMetrics = (*RelayCollector)(nil)

func NewRelayCollector(registerer prometheus.Registerer) *RelayCollector {
	factory := promauto.With(registerer)

	return &RelayCollector{
		rounds: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespaceRelay,
			Subsystem: subsystemDriver,
			Name:      "rounds_total",
			Help:      "number of rounds scheduled by the local relay driver",
		}),
		relayParentNumber: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespaceRelay,
			Subsystem: subsystemDriver,
			Name:      "relay_parent_number",
			Help:      "relay parent number of the last scheduled round",
		}),
		included: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespaceRelay,
			Subsystem: subsystemDriver,
			Name:      "candidates_included_total",
			Help:      "number of candidates validated and included",
		}),
		includedNumber: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespaceRelay,
			Subsystem: subsystemDriver,
			Name:      "included_head_number",
			Help:      "number of the included parachain header",
		}),
		rejected: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespaceRelay,
			Subsystem: subsystemDriver,
			Name:      "candidates_rejected_total",
			Help:      "number of candidates failing validation",
		}),
	}
}

func (rc *RelayCollector) RelayRound(relayParentNumber uint32) {
	rc.rounds.Inc()
	rc.relayParentNumber.Set(float64(relayParentNumber))
}

func (rc *RelayCollector) CandidateIncluded(head parachain.HeadData) {
	rc.included.Inc()
	rc.includedNumber.Set(float64(head.Number))
}

func (rc *RelayCollector) CandidateRejected() {
	rc.rejected.Inc()
}
