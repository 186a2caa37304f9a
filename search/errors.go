package search

import (
	"errors"
	"fmt"
)

// ErrUnavailable reports a transport or non-2xx failure talking to the search
// service. Search is a best-effort path: callers degrade to an empty result
// set, never a hard failure.
var ErrUnavailable = errors.New("search: service unavailable")

// UnavailableError carries the request URL and HTTP status for diagnostics.
// Status is zero when the transport failed before a response arrived.
type UnavailableError struct {
	URL    string
	Status int
	Err    error
}

func (e *UnavailableError) Error() string {
	if e == nil {
		return ErrUnavailable.Error()
	}
	if e.Status != 0 {
		return fmt.Sprintf("%s: status %d - %s", ErrUnavailable.Error(), e.Status, e.URL)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v - %s", ErrUnavailable.Error(), e.Err, e.URL)
	}
	return fmt.Sprintf("%s: %s", ErrUnavailable.Error(), e.URL)
}

func (e *UnavailableError) Unwrap() error {
	return ErrUnavailable
}
