package badger

import (
	"fmt"

	"github.com/dgraph-io/badger/v2"
)

// InMemory opens a badger DB that lives only for the lifetime of the
// process. Nothing is written to disk.
func InMemory() (*badger.DB, error) {
	opts := badger.
		DefaultOptions("").
		WithInMemory(true).
		WithLogger(nil)

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("could not open in-memory db: %w", err)
	}
	return db, nil
}
