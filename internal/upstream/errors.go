package upstream

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// ErrNoCredential means the provider's API key is absent. Checked
// before any network attempt; never produces a network call.
var ErrNoCredential = errors.New("provider credential missing")

// ErrEmptyResult means the provider answered but, after filtering,
// nothing usable remained. Controllers treat it like any other failure.
var ErrEmptyResult = errors.New("no usable results")

// StatusError is a non-2xx provider response. The status is kept for
// logging; callers only need to know the call failed.
type StatusError struct {
	Status int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d", e.Status)
}

// DecodeError is a 2xx response whose body did not match the expected
// schema.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string { return "decoding response: " + e.Err.Error() }
func (e *DecodeError) Unwrap() error { return e.Err }

// IsTimeout reports whether err was a timeout or cancellation rather
// than a provider-side rejection. Both classes fall back identically;
// the distinction only matters for logs.
func IsTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}

// Class names the failure class for structured logging.
func Class(err error) string {
	var se *StatusError
	var de *DecodeError
	switch {
	case errors.Is(err, ErrNoCredential):
		return "credential_missing"
	case errors.Is(err, ErrEmptyResult):
		return "empty_result"
	case errors.As(err, &se):
		return fmt.Sprintf("http_%d", se.Status)
	case errors.As(err, &de):
		return "parse_error"
	case IsTimeout(err):
		return "timeout"
	default:
		return "transport_error"
	}
}
