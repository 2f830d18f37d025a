package operation

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v2"
	"github.com/vmihailenco/msgpack/v4"

	"github.com/addchain/collator/storage"
)

// insert will encode the given entity and insert the resulting binary data
// in the badger DB under the provided key. It will error if the key already
// exists.
func insert(key []byte, entity interface{}) func(*badger.Txn) error {
	return func(tx *badger.Txn) error {

		// check if the key already exists in the db
		_, err := tx.Get(key)
		if err == nil {
			return storage.ErrAlreadyExists
		}

		if !errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("could not check key: %w", err)
		}

		// serialize the entity data
		val, err := encodeEntity(entity)
		if err != nil {
			return err
		}

		// persist the entity data into the DB
		err = tx.Set(key, val)
		if err != nil {
			return fmt.Errorf("could not store data: %w", err)
		}

		return nil
	}
}

// insertOrVerify inserts the entity under the key. If the key already exists,
// the stored entity must be identical, otherwise storage.ErrDataMismatch is
// returned. Inserting the same entity twice is a no-op.
func insertOrVerify(key []byte, entity interface{}) func(*badger.Txn) error {
	return func(tx *badger.Txn) error {
		err := insert(key, entity)(tx)
		if !errors.Is(err, storage.ErrAlreadyExists) {
			return err
		}

		item, err := tx.Get(key)
		if err != nil {
			return fmt.Errorf("could not load existing data: %w", err)
		}

		var stored []byte
		err = item.Value(func(val []byte) error {
			uncompressed, err := decodeRaw(val)
			stored = uncompressed
			return err
		})
		if err != nil {
			return fmt.Errorf("could not read existing data: %w", err)
		}

		encoded, err := msgpack.Marshal(entity)
		if err != nil {
			return fmt.Errorf("could not encode entity: %w", err)
		}
		if !bytes.Equal(stored, encoded) {
			return storage.ErrDataMismatch
		}
		return nil
	}
}

// retrieve will retrieve the binary data under the given key from the badger DB
// and decode it into the given entity. The provided entity needs to be a
// pointer to an initialized entity of the correct type.
// Error returns:
//   - storage.ErrNotFound if the key does not exist in the database
//   - generic error in case of unexpected failure from the database layer, or failure
//     to decode an existing database value
func retrieve(key []byte, entity interface{}) func(*badger.Txn) error {
	return func(tx *badger.Txn) error {

		// retrieve the item from the key-value store
		item, err := tx.Get(key)
		if errors.Is(err, badger.ErrKeyNotFound) {
			return storage.ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("could not load data: %w", err)
		}

		// get the value from the item
		err = item.Value(func(val []byte) error {
			return decodeValue(val, entity)
		})
		if err != nil {
			return fmt.Errorf("could not decode entity: %w", err)
		}

		return nil
	}
}
