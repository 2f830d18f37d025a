package operation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v2"
	"github.com/sethvargo/go-retry"
)

const (
	conflictRetries = 8
	conflictBackoff = time.Millisecond
)

// RetryOnConflict runs the operation in an update transaction, retrying
// transactions that failed on a conflicting concurrent write.
func RetryOnConflict(action func(func(*badger.Txn) error) error, op func(*badger.Txn) error) error {
	expRetry, err := retry.NewExponential(conflictBackoff)
	if err != nil {
		return fmt.Errorf("could not create retry backoff: %w", err)
	}
	backoff := retry.WithMaxRetries(conflictRetries, expRetry)
	return retry.Do(context.Background(), backoff, func(ctx context.Context) error {
		err := action(op)
		if errors.Is(err, badger.ErrConflict) {
			return retry.RetryableError(err)
		}
		return err
	})
}
