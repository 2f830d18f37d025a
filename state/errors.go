package state

import (
	"errors"
	"fmt"

	"github.com/addchain/collator/model/parachain"
)

// UnknownParentHeadError indicates that a header was used as a parent before
// it was ingested into the state. Rounds built on such a header are rejected;
// the scheduler may simply be ahead of us.
type UnknownParentHeadError struct {
	headID parachain.Identifier
	error
}

// WrapAsUnknownParentHeadError wraps a given error as UnknownParentHeadError
func WrapAsUnknownParentHeadError(headID parachain.Identifier, err error) error {
	return UnknownParentHeadError{
		headID: headID,
		error:  fmt.Errorf("parent head %v is unknown: %w", headID, err),
	}
}

// HeadID returns the ID of the unknown header.
func (e UnknownParentHeadError) HeadID() parachain.Identifier { return e.headID }

func (e UnknownParentHeadError) Unwrap() error { return e.error }

func IsUnknownParentHeadError(err error) bool {
	var e UnknownParentHeadError
	return errors.As(err, &e)
}
