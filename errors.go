// errors.go
// ---------
// Error taxonomy for the call pipeline. Every error type wraps a package
// sentinel so callers can branch with errors.Is without losing the typed
// payload available through errors.As. Nothing is logged or swallowed
// internally; the dispatcher surfaces every error to its direct caller.
package specwire

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidEndpoint is wrapped by InvalidEndpointError.
	ErrInvalidEndpoint = errors.New("specwire: unknown endpoint or method")
	// ErrValidation is wrapped by ValidationError.
	ErrValidation = errors.New("specwire: missing required parameters")
	// ErrRateLimited is wrapped by a StatusError carrying HTTP 429.
	ErrRateLimited = errors.New("specwire: rate limited")
	// ErrClient is wrapped by a StatusError carrying a non-429 4xx status.
	ErrClient = errors.New("specwire: client error")
	// ErrServer is wrapped by a StatusError carrying a 5xx status.
	ErrServer = errors.New("specwire: server error")
	// ErrMalformedResponse is wrapped by MalformedResponseError.
	ErrMalformedResponse = errors.New("specwire: malformed response body")
)

// InvalidEndpointError reports a lookup of an endpoint or method name the
// catalog does not declare. It is returned before any network activity.
type InvalidEndpointError struct {
	Endpoint string
	Method   string   // empty when the endpoint itself is unknown
	Known    []string // known endpoint names, or the endpoint's method names
}

func (e *InvalidEndpointError) Error() string {
	if e.Method != "" {
		return fmt.Sprintf("specwire: endpoint %q has no method %q (known: %s)",
			e.Endpoint, e.Method, strings.Join(e.Known, ", "))
	}
	return fmt.Sprintf("specwire: unknown endpoint %q (known: %s)",
		e.Endpoint, strings.Join(e.Known, ", "))
}

func (e *InvalidEndpointError) Unwrap() error { return ErrInvalidEndpoint }

// ValidationError reports required parameters missing from a call's
// arguments. It is returned before any network activity.
type ValidationError struct {
	Endpoint string
	Method   string
	Missing  []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("specwire: %s.%s missing required parameters: %s",
		e.Endpoint, e.Method, strings.Join(e.Missing, ", "))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// StatusError reports a non-success HTTP status. The raw body is carried
// as diagnostic payload. Its Unwrap maps the classification to the
// matching sentinel, so errors.Is(err, ErrRateLimited) distinguishes a
// retryable 429 from a fatal 4xx/5xx.
type StatusError struct {
	Classification Classification
	StatusCode     int
	Body           []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("specwire: HTTP %d (%s): %s", e.StatusCode, e.Classification, e.Body)
}

func (e *StatusError) Unwrap() error {
	switch e.Classification {
	case RateLimited:
		return ErrRateLimited
	case ServerError:
		return ErrServer
	default:
		return ErrClient
	}
}

// MalformedResponseError reports a body that could not be parsed even
// though the declared content type claims JSON.
type MalformedResponseError struct {
	ContentType string
	Body        []byte
	Err         error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("specwire: malformed %s body: %v", e.ContentType, e.Err)
}

func (e *MalformedResponseError) Unwrap() []error {
	return []error{ErrMalformedResponse, e.Err}
}
