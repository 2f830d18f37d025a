package storage

import (
	"github.com/addchain/collator/model/parachain"
)

// HeadStates maps headers to the state value they commit to. Entries are
// only ever added.
type HeadStates interface {
	// Store records the state for the given header. Storing the same pair
	// twice is a no-op.
	//
	// Expected errors during normal operations:
	//   - storage.ErrDataMismatch if the header is already mapped to a different state
	Store(head parachain.HeadData, state uint64) error

	// ByHeadID returns the state recorded for the header with the given ID.
	//
	// Expected errors during normal operations:
	//   - storage.ErrNotFound if no state is recorded for the header
	ByHeadID(headID parachain.Identifier) (uint64, error)

	// HeadByID returns the header with the given ID.
	//
	// Expected errors during normal operations:
	//   - storage.ErrNotFound if the header is unknown
	HeadByID(headID parachain.Identifier) (*parachain.HeadData, error)

	// HeadsByNumber returns the IDs of all stored headers with the given
	// number, in key order. No error is returned for an unused number.
	HeadsByNumber(number uint64) ([]parachain.Identifier, error)
}
