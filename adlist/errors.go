package adlist

import (
	"errors"
	"fmt"
)

var ErrIteratorInvalidated = errors.New("adlist: iterator's next node was removed from the list")

// DupError is returned by List.Dup when the dup hook fails.
type DupError struct {
	Index int // position of the value the hook failed on
	Err   error
}

func (e *DupError) Error() string {
	return fmt.Sprintf("adlist: dup value at index %d: %v", e.Index, e.Err)
}

func (e *DupError) Unwrap() error {
	return e.Err
}
