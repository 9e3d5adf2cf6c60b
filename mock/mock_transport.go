// Package mock provides a scripted Transport for tests and examples: it
// answers from a canned sequence of responses, records every request it
// sees, and can simulate a transport-level failure or a provider that
// rate-limits after N requests.
package mock

import (
	"context"
	"sync"

	"github.com/specwire/specwire"
)

// Transport implements specwire.Transport against a scripted response
// sequence. Once the script is exhausted the final response repeats.
type Transport struct {
	// Script is consumed in order; its last entry repeats.
	Script []*specwire.RawResponse
	// Err, if set, is returned from every Send as a transport-level failure.
	Err error
	// RequestsUntilRateLimit, when > 0, makes every request after the
	// first N answer 429 regardless of the script.
	RequestsUntilRateLimit int

	mu    sync.Mutex
	calls []*specwire.Request
}

var _ specwire.Transport = (*Transport)(nil)

func (t *Transport) Send(_ context.Context, req *specwire.Request) (*specwire.RawResponse, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.calls = append(t.calls, req)
	if t.Err != nil {
		return nil, t.Err
	}
	if t.RequestsUntilRateLimit > 0 && len(t.calls) > t.RequestsUntilRateLimit {
		return RateLimited(), nil
	}

	if len(t.Script) == 0 {
		return JSON(200, `{"success":true}`), nil
	}
	i := len(t.calls) - 1
	if i >= len(t.Script) {
		i = len(t.Script) - 1
	}
	return t.Script[i], nil
}

// Calls returns a snapshot of every request sent so far.
func (t *Transport) Calls() []*specwire.Request {
	t.mu.Lock()
	defer t.mu.Unlock()
	calls := make([]*specwire.Request, len(t.calls))
	copy(calls, t.calls)
	return calls
}

// JSON builds a response with a JSON content type and the given body.
func JSON(status int, body string) *specwire.RawResponse {
	return &specwire.RawResponse{
		StatusCode: status,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       []byte(body),
	}
}

// Text builds a response with the given content type and body.
func Text(status int, contentType, body string) *specwire.RawResponse {
	return &specwire.RawResponse{
		StatusCode: status,
		Headers:    map[string]string{"Content-Type": contentType},
		Body:       []byte(body),
	}
}

// RateLimited builds a canned 429 response.
func RateLimited() *specwire.RawResponse {
	return JSON(429, `{"error":"rate limited"}`)
}
