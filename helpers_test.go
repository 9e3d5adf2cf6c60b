package specwire

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"
)

const testCatalog = `
base_url: https://{subject}.api.example.com/v1
endpoints:
  people:
    methods:
      list:
        verb: GET
        path: /people
        description: List people.
        parameters:
          - name: page
      create:
        verb: POST
        path: /people
        description: Create a person.
        parameters:
          - name: email
            required: true
          - name: name
  nations:
    methods:
      show:
        verb: GET
        path: /nations/{id}
        description: Fetch one nation.
        parameters:
          - name: id
            in: path
            required: true
`

// scriptTransport answers from a canned response sequence and records
// every request. The last scripted response repeats once exhausted.
type scriptTransport struct {
	mu     sync.Mutex
	script []*RawResponse
	err    error
	calls  []*Request
}

func (t *scriptTransport) Send(_ context.Context, req *Request) (*RawResponse, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.calls = append(t.calls, req)
	if t.err != nil {
		return nil, t.err
	}
	i := len(t.calls) - 1
	if i >= len(t.script) {
		i = len(t.script) - 1
	}
	return t.script[i], nil
}

func (t *scriptTransport) callCount() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.calls)
}

func jsonResp(status int, body string) *RawResponse {
	return &RawResponse{
		StatusCode: status,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       []byte(body),
	}
}

func textResp(status int, contentType, body string) *RawResponse {
	return &RawResponse{
		StatusCode: status,
		Headers:    map[string]string{"Content-Type": contentType},
		Body:       []byte(body),
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestExecutor wires an executor whose sleeps are recorded, not slept.
func newTestExecutor(transport Transport, maxRetries int, base time.Duration) (*RequestExecutor, *[]time.Duration) {
	re := newRequestExecutor(transport, nil, discardLogger(), maxRetries, base)
	var slept []time.Duration
	re.sleep = func(_ context.Context, d time.Duration) error {
		slept = append(slept, d)
		return nil
	}
	return re, &slept
}

func newTestClient(t *testing.T, transport Transport, retries int) *Client {
	t.Helper()
	client, err := New(
		BytesLoader(testCatalog),
		ClientConfig{
			Subject:     "acme",
			Credential:  "secret-token",
			MaxRetries:  Retries(retries),
			BaseBackoff: time.Millisecond,
		},
		WithTransport(transport),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return client
}
