// limiter.go
// ----------
// Optional client-side pacing in front of the transport. Two mechanisms
// share one Limiter: a token bucket (golang.org/x/time/rate) smoothing the
// outbound request rate, and a hold-off derived from server-reported
// rate-limit headers (X-RateLimit-Remaining/Reset, Retry-After on 429).
//
// The limiter only delays the start of an attempt. It never changes the
// executor's retry classification or its exponential backoff schedule, and
// a client without a limiter skips all of this.
package specwire

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/specwire/specwire/internal/ratehdr"
)

// Limiter paces outbound attempts for one client.
type Limiter struct {
	bucket *rate.Limiter

	mu        sync.Mutex
	holdUntil time.Time
}

// NewLimiter returns a Limiter emitting at most rps requests per second
// with the given burst. rps <= 0 disables the token bucket; the limiter
// then only honors server-reported hold-offs.
func NewLimiter(rps float64, burst int) *Limiter {
	l := &Limiter{}
	if rps > 0 {
		if burst < 1 {
			burst = 1
		}
		l.bucket = rate.NewLimiter(rate.Limit(rps), burst)
	}
	return l
}

// wait blocks the calling goroutine until the limiter allows another
// attempt, or the context is done.
func (l *Limiter) wait(ctx context.Context) error {
	l.mu.Lock()
	delay := time.Until(l.holdUntil)
	l.mu.Unlock()

	if delay > 0 {
		t := time.NewTimer(delay)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
		}
	}

	if l.bucket != nil {
		return l.bucket.Wait(ctx)
	}
	return nil
}

// observe records server-reported rate-limit state from a response. A 429
// with Retry-After, or an exhausted X-RateLimit-Remaining with a known
// reset, pushes the hold-off forward; the hold-off never moves backwards.
func (l *Limiter) observe(resp *RawResponse) {
	now := time.Now()
	var until time.Time

	if resp.StatusCode == 429 {
		if d := ratehdr.RetryAfter(resp.Header("Retry-After"), now); d > 0 {
			until = now.Add(d)
		}
	}
	if remaining, ok := ratehdr.Remaining(resp.Header("X-RateLimit-Remaining")); ok && remaining <= 0 {
		if reset, ok := ratehdr.Reset(resp.Header("X-RateLimit-Reset"), now); ok && reset.After(until) {
			until = reset
		}
	}
	if until.IsZero() {
		return
	}

	l.mu.Lock()
	if until.After(l.holdUntil) {
		l.holdUntil = until
	}
	l.mu.Unlock()
}

// Delay reports how long the next attempt would currently be held off,
// for introspection. Zero means the limiter would admit a request now.
func (l *Limiter) Delay() time.Duration {
	l.mu.Lock()
	defer l.mu.Unlock()
	if d := time.Until(l.holdUntil); d > 0 {
		return d
	}
	return 0
}
