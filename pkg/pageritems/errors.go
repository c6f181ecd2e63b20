package pageritems

import (
	"errors"
	"fmt"

	"github.com/henderiw/pageritems/pkg/segment"
)

var (
	// ErrInvalidArgument indicates an absent required reference or a
	// registration against a locked registry.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrIndexOutOfRange indicates a positional access outside the valid bound.
	ErrIndexOutOfRange = segment.ErrIndexOutOfRange
	// ErrNoMatchingFactory indicates no registered factory matches a data item.
	ErrNoMatchingFactory = errors.New("no matching factory")
)

// OpError records the store operation that failed.
type OpError struct {
	Op  string
	Err error
}

func (e *OpError) Error() string {
	return fmt.Sprintf("pageritems.%s: %v", e.Op, e.Err)
}

func (e *OpError) Unwrap() error {
	return e.Err
}

func opError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &OpError{Op: op, Err: err}
}
