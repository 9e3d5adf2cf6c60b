package specwire

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"
)

func testRequest() *Request {
	return &Request{Verb: GET, URL: "https://api.example.com/v1/people"}
}

// Scenario: max_retries=0, single 429 attempt, no sleep.
func TestExecuteSingleAttemptRateLimited(t *testing.T) {
	transport := &scriptTransport{script: []*RawResponse{jsonResp(429, `{}`)}}
	re, slept := newTestExecutor(transport, 0, time.Second)

	_, _, err := re.Execute(context.Background(), testRequest())
	if !errors.Is(err, ErrRateLimited) {
		t.Fatalf("err = %v, want ErrRateLimited", err)
	}
	if transport.callCount() != 1 {
		t.Errorf("attempts = %d, want 1", transport.callCount())
	}
	if len(*slept) != 0 {
		t.Errorf("sleeps = %v, want none", *slept)
	}
}

// Scenario: max_retries=3; 429, 429, then 200 {"id":5}. Two sleeps of
// base*1 and base*2.
func TestExecuteRetriesThenSucceeds(t *testing.T) {
	const base = 10 * time.Millisecond
	transport := &scriptTransport{script: []*RawResponse{
		jsonResp(429, `{}`),
		jsonResp(429, `{}`),
		jsonResp(200, `{"id":5}`),
	}}
	re, slept := newTestExecutor(transport, 3, base)

	value, resp, err := re.Execute(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if want := map[string]any{"id": float64(5)}; !reflect.DeepEqual(value, want) {
		t.Errorf("value = %#v, want %#v", value, want)
	}
	if resp.StatusCode != 200 {
		t.Errorf("final status = %d", resp.StatusCode)
	}
	if transport.callCount() != 3 {
		t.Errorf("attempts = %d, want 3", transport.callCount())
	}
	if want := []time.Duration{base, 2 * base}; !reflect.DeepEqual(*slept, want) {
		t.Errorf("sleeps = %v, want %v", *slept, want)
	}
}

func TestExecuteExhaustsRetryBudget(t *testing.T) {
	const base = time.Millisecond
	transport := &scriptTransport{script: []*RawResponse{jsonResp(429, `{"error":"slow down"}`)}}
	re, slept := newTestExecutor(transport, 3, base)

	_, resp, err := re.Execute(context.Background(), testRequest())
	if !errors.Is(err, ErrRateLimited) {
		t.Fatalf("err = %v, want ErrRateLimited", err)
	}
	if transport.callCount() != 4 {
		t.Errorf("attempts = %d, want max_retries+1 = 4", transport.callCount())
	}
	// Backoff doubles each time and no sleep follows the final attempt.
	if want := []time.Duration{base, 2 * base, 4 * base}; !reflect.DeepEqual(*slept, want) {
		t.Errorf("sleeps = %v, want %v", *slept, want)
	}
	if resp == nil || resp.StatusCode != 429 {
		t.Errorf("final response = %+v", resp)
	}
	// The surfaced error is the same shape an immediate rejection produces.
	var sErr *StatusError
	if !errors.As(err, &sErr) || string(sErr.Body) != `{"error":"slow down"}` {
		t.Errorf("error payload = %v", err)
	}
}

// Scenario: 404 aborts on the first attempt regardless of budget.
func TestExecuteClientErrorNotRetried(t *testing.T) {
	transport := &scriptTransport{script: []*RawResponse{jsonResp(404, `{"error":"nope"}`)}}
	re, slept := newTestExecutor(transport, 5, time.Second)

	_, _, err := re.Execute(context.Background(), testRequest())
	if !errors.Is(err, ErrClient) {
		t.Fatalf("err = %v, want ErrClient", err)
	}
	if transport.callCount() != 1 {
		t.Errorf("attempts = %d, want 1", transport.callCount())
	}
	if len(*slept) != 0 {
		t.Errorf("sleeps = %v, want none", *slept)
	}
}

func TestExecuteServerErrorNotRetried(t *testing.T) {
	transport := &scriptTransport{script: []*RawResponse{jsonResp(503, `{}`)}}
	re, slept := newTestExecutor(transport, 5, time.Second)

	_, _, err := re.Execute(context.Background(), testRequest())
	if !errors.Is(err, ErrServer) {
		t.Fatalf("err = %v, want ErrServer", err)
	}
	if transport.callCount() != 1 || len(*slept) != 0 {
		t.Errorf("attempts = %d, sleeps = %v", transport.callCount(), *slept)
	}
}

func TestExecuteTransportErrorNotRetried(t *testing.T) {
	boom := errors.New("connection refused")
	transport := &scriptTransport{err: boom}
	re, slept := newTestExecutor(transport, 5, time.Second)

	_, resp, err := re.Execute(context.Background(), testRequest())
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want transport error passed through", err)
	}
	if resp != nil {
		t.Errorf("resp = %+v, want nil", resp)
	}
	if transport.callCount() != 1 || len(*slept) != 0 {
		t.Errorf("attempts = %d, sleeps = %v", transport.callCount(), *slept)
	}
}

func TestExecuteSuccessFirstAttempt(t *testing.T) {
	transport := &scriptTransport{script: []*RawResponse{jsonResp(200, `{"ok":true}`)}}
	re, slept := newTestExecutor(transport, 8, time.Second)

	value, _, err := re.Execute(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if want := map[string]any{"ok": true}; !reflect.DeepEqual(value, want) {
		t.Errorf("value = %#v", value)
	}
	if transport.callCount() != 1 || len(*slept) != 0 {
		t.Errorf("attempts = %d, sleeps = %v", transport.callCount(), *slept)
	}
}

func TestExecuteBackoffCancelled(t *testing.T) {
	transport := &scriptTransport{script: []*RawResponse{jsonResp(429, `{}`)}}
	re := newRequestExecutor(transport, nil, discardLogger(), 3, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, _, err := re.Execute(ctx, testRequest())
		done <- err
	}()
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("err = %v, want context.Canceled", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("backoff sleep ignored cancellation")
	}
}

func TestBackoffSchedule(t *testing.T) {
	re := newRequestExecutor(nil, nil, discardLogger(), 8, time.Second)
	for i, want := range []time.Duration{
		time.Second, 2 * time.Second, 4 * time.Second, 8 * time.Second, 16 * time.Second,
	} {
		if got := re.backoff(i); got != want {
			t.Errorf("backoff(%d) = %v, want %v", i, got, want)
		}
	}
}
