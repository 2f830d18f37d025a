package stf

import (
	"errors"
	"fmt"

	"github.com/addchain/collator/model/parachain"
)

// StateMismatchError is returned when a block body does not start from the
// state its parent header commits to. It is a benign, reportable error: the
// candidate is invalid, nothing else is wrong.
type StateMismatchError struct {
	Expected parachain.Identifier // post state of the parent header
	Actual   parachain.Identifier // digest of the body's claimed state
}

func (e StateMismatchError) Error() string {
	return fmt.Sprintf("block state does not match parent post state (expected=%x, actual=%x)", e.Expected[:], e.Actual[:])
}

// IsStateMismatchError returns whether err is a StateMismatchError.
func IsStateMismatchError(err error) bool {
	var e StateMismatchError
	return errors.As(err, &e)
}

// InvalidCandidateError is returned by ValidateBlock for candidates that can
// not be validated: undecodable inputs, oversized PoVs, state mismatches.
type InvalidCandidateError struct {
	err error
}

func NewInvalidCandidateErrorf(msg string, args ...interface{}) error {
	return InvalidCandidateError{err: fmt.Errorf(msg, args...)}
}

func (e InvalidCandidateError) Error() string {
	return fmt.Sprintf("invalid candidate: %s", e.err.Error())
}

func (e InvalidCandidateError) Unwrap() error {
	return e.err
}

// IsInvalidCandidateError returns whether err is an InvalidCandidateError.
func IsInvalidCandidateError(err error) bool {
	var e InvalidCandidateError
	return errors.As(err, &e)
}

// ErrUnsupportedCode is returned when validation code does not describe this
// state transition function.
var ErrUnsupportedCode = errors.New("unsupported validation code")
