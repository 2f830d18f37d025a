package relay

import (
	"errors"
	"fmt"
)

// InvalidDescriptorError is returned when a candidate descriptor does not
// commit to the collation it came with.
type InvalidDescriptorError struct {
	err error
}

func NewInvalidDescriptorErrorf(msg string, args ...interface{}) error {
	return InvalidDescriptorError{err: fmt.Errorf(msg, args...)}
}

func (e InvalidDescriptorError) Error() string {
	return fmt.Sprintf("invalid candidate descriptor: %s", e.err.Error())
}

func (e InvalidDescriptorError) Unwrap() error {
	return e.err
}

func IsInvalidDescriptorError(err error) bool {
	var e InvalidDescriptorError
	return errors.As(err, &e)
}
