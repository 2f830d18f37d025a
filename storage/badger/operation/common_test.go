package operation

import (
	"errors"
	"testing"

	"github.com/dgraph-io/badger/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/addchain/collator/model/parachain"
	"github.com/addchain/collator/storage"
	"github.com/addchain/collator/utils/unittest"
)

type Entity struct {
	ID uint64
}

func TestInsertValid(t *testing.T) {
	unittest.RunWithBadgerDB(t, func(db *badger.DB) {
		e := Entity{ID: 1337}
		key := []byte{0x01, 0x02, 0x03}

		err := db.Update(insert(key, e))
		require.NoError(t, err)

		var act Entity
		err = db.View(retrieve(key, &act))
		require.NoError(t, err)
		assert.Equal(t, e, act)
	})
}

func TestInsertDuplicate(t *testing.T) {
	unittest.RunWithBadgerDB(t, func(db *badger.DB) {
		key := []byte{0x01, 0x02, 0x03}

		require.NoError(t, db.Update(insert(key, Entity{ID: 1})))

		err := db.Update(insert(key, Entity{ID: 2}))
		require.ErrorIs(t, err, storage.ErrAlreadyExists)
	})
}

func TestInsertOrVerify(t *testing.T) {
	unittest.RunWithBadgerDB(t, func(db *badger.DB) {
		key := []byte{0x04}

		require.NoError(t, db.Update(insertOrVerify(key, Entity{ID: 1})))
		require.NoError(t, db.Update(insertOrVerify(key, Entity{ID: 1})))

		err := db.Update(insertOrVerify(key, Entity{ID: 2}))
		require.ErrorIs(t, err, storage.ErrDataMismatch)

		var act Entity
		require.NoError(t, db.View(retrieve(key, &act)))
		assert.Equal(t, uint64(1), act.ID)
	})
}

func TestRetrieveMissing(t *testing.T) {
	unittest.RunWithBadgerDB(t, func(db *badger.DB) {
		var act Entity
		err := db.View(retrieve([]byte{0x05}, &act))
		require.ErrorIs(t, err, storage.ErrNotFound)
	})
}

func TestRetrieveCorrupted(t *testing.T) {
	unittest.RunWithBadgerDB(t, func(db *badger.DB) {
		key := []byte{0x06}
		require.NoError(t, db.Update(func(tx *badger.Txn) error {
			return tx.Set(key, []byte{0xff, 0xff, 0xff})
		}))

		var act Entity
		err := db.View(retrieve(key, &act))
		require.ErrorIs(t, err, errUncompressedValue)
	})
}

func TestHeadStateRoundTrip(t *testing.T) {
	unittest.RunWithBadgerDB(t, func(db *badger.DB) {
		head := unittest.HeadDataFixture()
		headID := head.ID()

		var state uint64
		err := db.View(RetrieveHeadState(headID, &state))
		require.ErrorIs(t, err, storage.ErrNotFound)

		require.NoError(t, db.Update(func(tx *badger.Txn) error {
			if err := InsertHead(headID, &head)(tx); err != nil {
				return err
			}
			return InsertHeadState(headID, head.Number, 99)(tx)
		}))

		var stored parachain.HeadData
		require.NoError(t, db.View(RetrieveHead(headID, &stored)))
		assert.Equal(t, head, stored)

		require.NoError(t, db.View(RetrieveHeadState(headID, &state)))
		assert.Equal(t, uint64(99), state)
	})
}

func TestRetryOnConflict(t *testing.T) {
	attempts := 0
	action := func(op func(*badger.Txn) error) error {
		attempts++
		if attempts < 3 {
			return badger.ErrConflict
		}
		return op(nil)
	}

	err := RetryOnConflict(action, func(*badger.Txn) error { return nil })
	require.NoError(t, err)
	assert.Equal(t, 3, attempts)
}

func TestRetryOnConflictOtherError(t *testing.T) {
	sentinel := errors.New("sentinel")
	attempts := 0
	action := func(op func(*badger.Txn) error) error {
		attempts++
		return sentinel
	}

	err := RetryOnConflict(action, func(*badger.Txn) error { return nil })
	require.ErrorIs(t, err, sentinel)
	assert.Equal(t, 1, attempts)
}
