package query

import (
	"errors"
	"fmt"
)

// ErrInvalidQuery indicates a descriptor built from malformed caller input.
// This is a programming error at the call site, not a runtime condition to
// recover from.
var ErrInvalidQuery = errors.New("query: invalid query")

// InvalidQueryError carries the per-field validation detail and unwraps to
// ErrInvalidQuery.
type InvalidQueryError struct {
	Err error
}

func (e *InvalidQueryError) Error() string {
	if e == nil || e.Err == nil {
		return ErrInvalidQuery.Error()
	}
	return fmt.Sprintf("%s: %v", ErrInvalidQuery.Error(), e.Err)
}

func (e *InvalidQueryError) Unwrap() error {
	return ErrInvalidQuery
}
