package gateway

import (
	"errors"
	"fmt"
)

// Kind classifies an upstream failure. Only RateLimited and
// NetworkUnavailable are retried; every other class propagates after a
// single attempt.
type Kind int

const (
	KindTimeout Kind = iota
	KindRateLimited
	KindNetworkUnavailable
	KindNotFound
	KindServerError
	KindMalformedResponse
)

// String returns the failure class name.
func (k Kind) String() string {
	switch k {
	case KindTimeout:
		return "timeout"
	case KindRateLimited:
		return "rate_limited"
	case KindNetworkUnavailable:
		return "network_unavailable"
	case KindNotFound:
		return "not_found"
	case KindServerError:
		return "server_error"
	case KindMalformedResponse:
		return "malformed_response"
	default:
		return "unknown"
	}
}

// Retryable reports whether a failure of this class is worth retrying.
func (k Kind) Retryable() bool {
	return k == KindRateLimited || k == KindNetworkUnavailable
}

// Error is a classified upstream failure. Attempts records how many tries
// were made before the error became terminal.
type Error struct {
	Kind     Kind
	Endpoint string
	Status   int
	Attempts int
	Err      error
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := fmt.Sprintf("gateway: %s %s", e.Endpoint, e.Kind)
	if e.Status != 0 {
		msg += fmt.Sprintf(" (status %d)", e.Status)
	}
	if e.Attempts > 1 {
		msg += fmt.Sprintf(" after %d attempts", e.Attempts)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying transport error, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf extracts the failure class from an error chain. The second return
// is false when err did not originate in the gateway.
func KindOf(err error) (Kind, bool) {
	var ge *Error
	if errors.As(err, &ge) {
		return ge.Kind, true
	}
	return 0, false
}
