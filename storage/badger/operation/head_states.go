package operation

import (
	"github.com/dgraph-io/badger/v2"

	"github.com/addchain/collator/model/parachain"
)

// headState is the stored form of a head-to-state mapping.
type headState struct {
	Number uint64
	State  uint64
}

// InsertHead stores the header under its ID. Inserting the same header again
// is a no-op.
func InsertHead(headID parachain.Identifier, head *parachain.HeadData) func(*badger.Txn) error {
	return insertOrVerify(makePrefix(codeHeadData, headID), head)
}

func RetrieveHead(headID parachain.Identifier, head *parachain.HeadData) func(*badger.Txn) error {
	return retrieve(makePrefix(codeHeadData, headID), head)
}

// InsertHeadState maps the header to its state.
// Error returns:
//   - storage.ErrDataMismatch if the header is already mapped to another state
func InsertHeadState(headID parachain.Identifier, number uint64, state uint64) func(*badger.Txn) error {
	return insertOrVerify(makePrefix(codeHeadState, headID), headState{Number: number, State: state})
}

// RetrieveHeadState retrieves the state of the header.
// Error returns:
//   - storage.ErrNotFound if no state is stored for the header
func RetrieveHeadState(headID parachain.Identifier, state *uint64) func(*badger.Txn) error {
	return func(tx *badger.Txn) error {
		var stored headState
		err := retrieve(makePrefix(codeHeadState, headID), &stored)(tx)
		if err != nil {
			return err
		}
		*state = stored.State
		return nil
	}
}

// IndexHeadByNumber indexes a header ID by number. Several headers can share
// a number, the index is keyed by both.
func IndexHeadByNumber(number uint64, headID parachain.Identifier) func(*badger.Txn) error {
	return insertOrVerify(makePrefix(codeHeadByNumber, number, headID), headID)
}

// LookupHeadsByNumber returns the IDs of all headers with the given number.
func LookupHeadsByNumber(number uint64, headIDs *[]parachain.Identifier) func(*badger.Txn) error {
	return func(tx *badger.Txn) error {
		prefix := makePrefix(codeHeadByNumber, number)
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = prefix
		it := tx.NewIterator(opts)
		defer it.Close()

		ids := make([]parachain.Identifier, 0, 1)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			key := it.Item().Key()
			var id parachain.Identifier
			copy(id[:], key[len(prefix):])
			ids = append(ids, id)
		}
		*headIDs = ids
		return nil
	}
}
