package module

import (
	"time"

	"github.com/addchain/collator/model/parachain"
)

type CacheMetrics interface {
	// CacheEntries report the total number of cached items
	CacheEntries(resource string, entries uint)
	// CacheHit report the number of times the queried item is found in the cache
	CacheHit(resource string)
	// CacheNotFound records the number of times the queried item was not found in either cache or database.
	CacheNotFound(resource string)
	// CacheMiss report the number of times the queried item is not found in the cache, but found in the database.
	CacheMiss(resource string)
}

// CollatorMetrics tracks the collation pipeline: one production per round,
// one terminal outcome per produced collation.
type CollatorMetrics interface {
	// CollationProduced is called once per successful round, with the new
	// header and the size of the PoV as transmitted.
	CollationProduced(head parachain.HeadData, povSize int, duration time.Duration)

	// RoundRejected is called when a round produced no collation.
	RoundRejected(reason string)

	// CollationConfirmed is called when the relay chain seconded our collation.
	CollationConfirmed(latency time.Duration)

	// CollationAbandoned is called when the delivery point was dropped without a signal.
	CollationAbandoned()

	// ConfirmationMismatch is called when a signal did not match the produced collation.
	ConfirmationMismatch()
}

// RelayMetrics tracks the local relay driver.
type RelayMetrics interface {
	// RelayRound is called once per round the driver scheduled.
	RelayRound(relayParentNumber uint32)

	// CandidateIncluded is called when a validated candidate became the new
	// included head.
	CandidateIncluded(head parachain.HeadData)

	// CandidateRejected is called when a candidate failed validation.
	CandidateRejected()
}
