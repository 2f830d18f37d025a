package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/addchain/collator/module"
)

type CacheCollector struct {
	entries  *prometheus.GaugeVec
	hits     *prometheus.CounterVec
	notFound *prometheus.CounterVec
	misses   *prometheus.CounterVec
}

var _ module.CacheMetrics = (*CacheCollector)(nil)

func NewCacheCollector(registerer prometheus.Registerer) *CacheCollector {
	factory := promauto.With(registerer)

	return &CacheCollector{
		entries: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespaceStorage,
			Subsystem: subsystemCache,
			Name:      "entries_total",
			Help:      "the number of entries in the storage cache",
		}, []string{LabelResource}),
		hits: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespaceStorage,
			Subsystem: subsystemCache,
			Name:      "hits_total",
			Help:      "the number of hits for the storage cache",
		}, []string{LabelResource}),
		notFound: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespaceStorage,
			Subsystem: subsystemCache,
			Name:      "notfounds_total",
			Help:      "the number of times the queried item was not found in either cache or database",
		}, []string{LabelResource}),
		misses: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespaceStorage,
			Subsystem: subsystemCache,
			Name:      "misses_total",
			Help:      "the number of times the queried item was found in the database but not the cache",
		}, []string{LabelResource}),
	}
}

// CacheEntries records the size of the cache for the given resource.
func (cc *CacheCollector) CacheEntries(resource string, entries uint) {
	cc.entries.With(prometheus.Labels{LabelResource: resource}).Set(float64(entries))
}

// CacheHit records a cache hit for the given resource.
func (cc *CacheCollector) CacheHit(resource string) {
	cc.hits.With(prometheus.Labels{LabelResource: resource}).Inc()
}

// CacheNotFound records the number of times the queried item was not found in either cache
// or database.
func (cc *CacheCollector) CacheNotFound(resource string) {
	cc.notFound.With(prometheus.Labels{LabelResource: resource}).Inc()
}

// CacheMiss report the number of times the queried item is not found in the cache, but found in the database.
func (cc *CacheCollector) CacheMiss(resource string) {
	cc.misses.With(prometheus.Labels{LabelResource: resource}).Inc()
}
