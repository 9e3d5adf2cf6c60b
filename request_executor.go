// request_executor.go
// -------------------
// The retrying request executor: it performs transport calls, classifies
// and decodes each response, and retries rate-limited attempts with
// exponential backoff. Retry decisions branch on an explicit tagged
// outcome value rather than on unwinding control flow.
//
// Only a RateLimited classification is ever retried. Transport-level
// failures and fatal statuses (4xx other than 429, 5xx) abort on first
// occurrence regardless of remaining budget. With maxRetries = r the
// executor makes at most r+1 attempts, sleeping baseBackoff * 2^i before
// attempt i+1 and never after the final one.
package specwire

import (
	"context"
	"errors"
	"log/slog"
	"time"
)

type outcomeKind int

const (
	outcomeSuccess outcomeKind = iota
	outcomeRetryable
	outcomeFatal
)

// outcome is the tagged result of decoding one attempt's response.
type outcome struct {
	kind  outcomeKind
	value any
	err   error
}

// evaluate decodes a response and tags it for the retry loop. Only a
// rate-limited status is retryable; every other decode error is fatal.
func evaluate(resp *RawResponse) outcome {
	value, err := DecodeResponse(resp)
	if err == nil {
		return outcome{kind: outcomeSuccess, value: value}
	}
	if errors.Is(err, ErrRateLimited) {
		return outcome{kind: outcomeRetryable, err: err}
	}
	return outcome{kind: outcomeFatal, err: err}
}

// RequestExecutor drives one client's transport calls.
type RequestExecutor struct {
	transport   Transport
	limiter     *Limiter
	logger      *slog.Logger
	maxRetries  int
	baseBackoff time.Duration

	// sleep blocks for the backoff duration; tests substitute a recorder.
	sleep func(ctx context.Context, d time.Duration) error
}

func newRequestExecutor(transport Transport, limiter *Limiter, logger *slog.Logger, maxRetries int, baseBackoff time.Duration) *RequestExecutor {
	return &RequestExecutor{
		transport:   transport,
		limiter:     limiter,
		logger:      logger,
		maxRetries:  maxRetries,
		baseBackoff: baseBackoff,
		sleep:       sleepContext,
	}
}

// Execute runs the request with retry. It returns the decoded value and
// the final raw response; on failure the response is the one that carried
// the fatal or retry-exhausted status, or nil for transport errors.
func (re *RequestExecutor) Execute(ctx context.Context, req *Request) (any, *RawResponse, error) {
	for attempt := 0; ; attempt++ {
		if re.limiter != nil {
			if err := re.limiter.wait(ctx); err != nil {
				return nil, nil, err
			}
		}

		re.logger.Debug("sending request",
			"verb", req.Verb, "url", req.URL, "attempt", attempt+1)

		resp, err := re.transport.Send(ctx, req)
		if err != nil {
			// Transport failures are opaque and never retried.
			return nil, nil, err
		}
		if re.limiter != nil {
			re.limiter.observe(resp)
		}

		out := evaluate(resp)
		switch out.kind {
		case outcomeSuccess:
			return out.value, resp, nil
		case outcomeRetryable:
			if attempt >= re.maxRetries {
				re.logger.Debug("rate limited, retry budget exhausted",
					"attempts", attempt+1)
				return nil, resp, out.err
			}
			delay := re.backoff(attempt)
			re.logger.Debug("rate limited, backing off",
				"attempt", attempt+1, "delay", delay)
			if err := re.sleep(ctx, delay); err != nil {
				return nil, resp, err
			}
		default:
			re.logger.Debug("fatal response",
				"status", resp.StatusCode, "attempt", attempt+1)
			return nil, resp, out.err
		}
	}
}

// backoff computes the delay before retrying attempt (0-indexed):
// baseBackoff * 2^attempt.
func (re *RequestExecutor) backoff(attempt int) time.Duration {
	return re.baseBackoff * (1 << attempt)
}

// sleepContext blocks for d or until the context is done, whichever comes
// first. It blocks only the calling goroutine.
func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
