package badger_test

import (
	"testing"

	"github.com/dgraph-io/badger/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/addchain/collator/model/parachain"
	"github.com/addchain/collator/module/metrics"
	"github.com/addchain/collator/storage"
	bstorage "github.com/addchain/collator/storage/badger"
	"github.com/addchain/collator/utils/unittest"
)

func TestHeadStatesStoreAndRetrieve(t *testing.T) {
	unittest.RunWithBadgerDB(t, func(db *badger.DB) {
		states := bstorage.NewHeadStates(metrics.NewNoopCollector(), db, 10)

		head := unittest.HeadDataFixture()
		require.NoError(t, states.Store(head, 42))

		state, err := states.ByHeadID(head.ID())
		require.NoError(t, err)
		assert.Equal(t, uint64(42), state)

		stored, err := states.HeadByID(head.ID())
		require.NoError(t, err)
		assert.Equal(t, head, *stored)
	})
}

// a fresh store bypasses the cache of the first, so reads hit the database
func TestHeadStatesReadThrough(t *testing.T) {
	unittest.RunWithBadgerDB(t, func(db *badger.DB) {
		head := unittest.HeadDataFixture()
		require.NoError(t, bstorage.NewHeadStates(metrics.NewNoopCollector(), db, 10).Store(head, 7))

		fresh := bstorage.NewHeadStates(metrics.NewNoopCollector(), db, 10)
		state, err := fresh.ByHeadID(head.ID())
		require.NoError(t, err)
		assert.Equal(t, uint64(7), state)

		stored, err := fresh.HeadByID(head.ID())
		require.NoError(t, err)
		assert.Equal(t, head, *stored)
	})
}

func TestHeadStatesNotFound(t *testing.T) {
	unittest.RunWithBadgerDB(t, func(db *badger.DB) {
		states := bstorage.NewHeadStates(metrics.NewNoopCollector(), db, 10)

		_, err := states.ByHeadID(unittest.IdentifierFixture())
		assert.ErrorIs(t, err, storage.ErrNotFound)

		_, err = states.HeadByID(unittest.IdentifierFixture())
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})
}

func TestHeadStatesIdempotentStore(t *testing.T) {
	unittest.RunWithBadgerDB(t, func(db *badger.DB) {
		states := bstorage.NewHeadStates(metrics.NewNoopCollector(), db, 10)
		head := unittest.HeadDataFixture()

		require.NoError(t, states.Store(head, 3))
		require.NoError(t, states.Store(head, 3))

		err := states.Store(head, 4)
		assert.ErrorIs(t, err, storage.ErrDataMismatch)

		state, err := states.ByHeadID(head.ID())
		require.NoError(t, err)
		assert.Equal(t, uint64(3), state)
	})
}

func TestHeadStatesByNumber(t *testing.T) {
	unittest.RunWithBadgerDB(t, func(db *badger.DB) {
		states := bstorage.NewHeadStates(metrics.NewNoopCollector(), db, 10)

		first := unittest.HeadDataFixture(unittest.WithNumber(5))
		second := unittest.HeadDataFixture(unittest.WithNumber(5))
		other := unittest.HeadDataFixture(unittest.WithNumber(6))
		for _, head := range []parachain.HeadData{first, second, other} {
			require.NoError(t, states.Store(head, head.Number))
		}

		ids, err := states.HeadsByNumber(5)
		require.NoError(t, err)
		assert.ElementsMatch(t, []parachain.Identifier{first.ID(), second.ID()}, ids)

		ids, err = states.HeadsByNumber(9)
		require.NoError(t, err)
		assert.Empty(t, ids)
	})
}

func TestInMemory(t *testing.T) {
	db, err := bstorage.InMemory()
	require.NoError(t, err)
	defer db.Close()

	states := bstorage.NewHeadStates(metrics.NewNoopCollector(), db, 0)
	genesis := parachain.Genesis()
	require.NoError(t, states.Store(genesis, 0))

	state, err := states.ByHeadID(genesis.ID())
	require.NoError(t, err)
	assert.Equal(t, uint64(0), state)
}
