package catalog

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound reports a single-entity lookup with zero matches in the
	// requested locale. It is a first-class outcome, not a failure: callers
	// branch on it to render their standard not-found state.
	ErrNotFound = errors.New("catalog: not found")

	// ErrUnavailable reports a transport or non-2xx failure talking to the
	// content service. Callers must degrade to an empty result rather than
	// propagating a hard failure.
	ErrUnavailable = errors.New("catalog: content service unavailable")
)

// NotFoundError captures the resource and key of a missed lookup.
type NotFoundError struct {
	Resource string
	Key      string
	Locale   string
}

func (e *NotFoundError) Error() string {
	if e == nil {
		return ErrNotFound.Error()
	}
	key := strings.TrimSpace(e.Key)
	if key == "" {
		return ErrNotFound.Error()
	}
	if locale := strings.TrimSpace(e.Locale); locale != "" {
		return fmt.Sprintf("%s: %s %q (locale %s)", ErrNotFound.Error(), e.Resource, key, locale)
	}
	return fmt.Sprintf("%s: %s %q", ErrNotFound.Error(), e.Resource, key)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// UnavailableError carries the request URL and HTTP status of a failed
// content service read for diagnostics. Status is zero when the transport
// failed before a response arrived.
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
