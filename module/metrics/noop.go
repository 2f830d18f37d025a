package metrics

import (
	"time"

	"github.com/addchain/collator/model/parachain"
	"github.com/addchain/collator/module"
)

type NoopCollector struct{}

var (
	_ module.CacheMetrics    = (*NoopCollector)(nil)
	_ module.CollatorMetrics = (*NoopCollector)(nil)
	_ module.RelayMetrics    = (*NoopCollector)(nil)
)

func NewNoopCollector() *NoopCollector {
	nc := &NoopCollector{}
	return nc
}

func (nc *NoopCollector) CacheEntries(resource string, entries uint)               {}
func (nc *NoopCollector) CacheHit(resource string)                                 {}
func (nc *NoopCollector) CacheNotFound(resource string)                            {}
func (nc *NoopCollector) CacheMiss(resource string)                                {}
func (nc *NoopCollector) CollationProduced(parachain.HeadData, int, time.Duration) {}
func (nc *NoopCollector) RoundRejected(reason string)                              {}
func (nc *NoopCollector) CollationConfirmed(latency time.Duration)                 {}
func (nc *NoopCollector) CollationAbandoned()                                      {}
func (nc *NoopCollector) ConfirmationMismatch()                                    {}
func (nc *NoopCollector) RelayRound(relayParentNumber uint32)                      {}
func (nc *NoopCollector) CandidateIncluded(head parachain.HeadData)                {}
func (nc *NoopCollector) CandidateRejected()                                       {}
