package badger

import (
	"fmt"

	"github.com/dgraph-io/badger/v2"

	"github.com/addchain/collator/model/parachain"
	"github.com/addchain/collator/module"
	"github.com/addchain/collator/module/metrics"
	"github.com/addchain/collator/storage"
	"github.com/addchain/collator/storage/badger/operation"
)

// DefaultCacheSize is the number of head states kept in memory.
const DefaultCacheSize = 1000

// headEntry is the cached value of a head state entry.
type headEntry struct {
	head  parachain.HeadData
	state uint64
}

// HeadStates implements storage.HeadStates on top of a badger DB.
type HeadStates struct {
	db    *badger.DB
	cache *Cache
}

var _ storage.HeadStates = (*HeadStates)(nil)

func NewHeadStates(collector module.CacheMetrics, db *badger.DB, cacheSize uint) *HeadStates {
	if cacheSize == 0 {
		cacheSize = DefaultCacheSize
	}

	store := func(headID parachain.Identifier, v interface{}) error {
		entry := v.(*headEntry)
		return operation.RetryOnConflict(db.Update, func(tx *badger.Txn) error {
			err := operation.InsertHead(headID, &entry.head)(tx)
			if err != nil {
				return fmt.Errorf("could not insert head: %w", err)
			}
			err = operation.InsertHeadState(headID, entry.head.Number, entry.state)(tx)
			if err != nil {
				return fmt.Errorf("could not insert head state: %w", err)
			}
			err = operation.IndexHeadByNumber(entry.head.Number, headID)(tx)
			if err != nil {
				return fmt.Errorf("could not index head: %w", err)
			}
			return nil
		})
	}

	retrieve := func(headID parachain.Identifier) (interface{}, error) {
		var entry headEntry
		err := db.View(func(tx *badger.Txn) error {
			err := operation.RetrieveHead(headID, &entry.head)(tx)
			if err != nil {
				return err
			}
			return operation.RetrieveHeadState(headID, &entry.state)(tx)
		})
		return &entry, err
	}

	return &HeadStates{
		db: db,
		cache: newCache(collector,
			withLimit(cacheSize),
			withStore(store),
			withRetrieve(retrieve),
			withResource(metrics.ResourceHeadState)),
	}
}

func (h *HeadStates) Store(head parachain.HeadData, state uint64) error {
	return h.cache.Put(head.ID(), &headEntry{head: head, state: state})
}

func (h *HeadStates) ByHeadID(headID parachain.Identifier) (uint64, error) {
	v, err := h.cache.Get(headID)
	if err != nil {
		return 0, err
	}
	return v.(*headEntry).state, nil
}

func (h *HeadStates) HeadByID(headID parachain.Identifier) (*parachain.HeadData, error) {
	v, err := h.cache.Get(headID)
	if err != nil {
		return nil, err
	}
	head := v.(*headEntry).head
	return &head, nil
}

// HeadsByNumber returns the IDs of all stored headers with the given number.
func (h *HeadStates) HeadsByNumber(number uint64) ([]parachain.Identifier, error) {
	var ids []parachain.Identifier
	err := h.db.View(operation.LookupHeadsByNumber(number, &ids))
	if err != nil {
		return nil, fmt.Errorf("could not look up heads for number %d: %w", number, err)
	}
	return ids, nil
}
