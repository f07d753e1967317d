package citiesapi

import (
	"errors"
	"fmt"

	"cityboard/internal/domain"
)

// Error is returned by FetchCities for every failed fetch. Kind tells the
// three failure classes apart for diagnostics.
type Error struct {
	Kind   domain.FailureKind
	Method string
	URL    string
	Status int    // set for HTTPError
	Digest string // set for ParseFailure
	Err    error
}

func (e *Error) Error() string {
	switch e.Kind {
	case domain.HTTPError:
		return fmt.Sprintf("cities %s %s: status %d", e.Method, e.URL, e.Status)
	case domain.ParseFailure:
		return fmt.Sprintf("cities %s %s: decode payload %s: %v", e.Method, e.URL, e.Digest, e.Err)
	default:
		return fmt.Sprintf("cities %s %s: %v", e.Method, e.URL, e.Err)
	}
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf returns the failure kind carried by err. Errors that did not come
// from this package are treated as network failures.
func KindOf(err error) domain.FailureKind {
	if err == nil {
		return domain.NoFailure
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return domain.NetworkFailure
}
