package collator

import (
	"errors"
	"fmt"

	"github.com/addchain/collator/model/collation"
	"github.com/addchain/collator/model/parachain"
)

// DecodeError is returned when the relay chain announced a parent head we
// can not decode. The round is rejected.
type DecodeError struct {
	err error
}

func NewDecodeErrorf(msg string, args ...interface{}) error {
	return DecodeError{err: fmt.Errorf(msg, args...)}
}

func (e DecodeError) Error() string {
	return e.err.Error()
}

func (e DecodeError) Unwrap() error {
	return e.err
}

// IsDecodeError returns whether err is a DecodeError.
func IsDecodeError(err error) bool {
	var e DecodeError
	return errors.As(err, &e)
}

// ConfirmationMismatchError is thrown when the relay chain acknowledged
// something other than the collation we produced. The collator and the relay
// chain disagree about which block was built; continuing is unsafe.
type ConfirmationMismatchError struct {
	Expected  parachain.Identifier
	Statement collation.Statement
}

func (e ConfirmationMismatchError) Error() string {
	return fmt.Sprintf("confirmation does not match collation (expected pov=%x, got %s)", e.Expected[:], e.Statement)
}

// IsConfirmationMismatchError returns whether err is a ConfirmationMismatchError.
func IsConfirmationMismatchError(err error) bool {
	var e ConfirmationMismatchError
	return errors.As(err, &e)
}
