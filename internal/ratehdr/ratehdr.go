// Package ratehdr parses the rate-limit headers servers attach to their
// responses: Retry-After, X-RateLimit-Remaining and X-RateLimit-Reset. The
// values feed the client-side limiter's hold-off bookkeeping only; they
// never alter the executor's retry schedule.
package ratehdr

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// RetryAfter parses a Retry-After value: either delay-seconds or an
// HTTP-date. It returns 0 when the value is empty, unparsable, or in the past.
func RetryAfter(v string, now time.Time) time.Duration {
	v = strings.TrimSpace(v)
	if v == "" {
		return 0
	}

	if secs, err := strconv.ParseFloat(v, 64); err == nil {
		if secs < 0 {
			return 0
		}
		return time.Duration(math.Ceil(secs)) * time.Second
	}

	for _, layout := range []string{time.RFC1123, time.RFC850, time.ANSIC} {
		if t, err := time.Parse(layout, v); err == nil {
			if d := t.Sub(now); d > 0 {
				return d
			}
			return 0
		}
	}
	return 0
}

// Remaining parses an X-RateLimit-Remaining value.
func Remaining(v string) (int64, bool) {
	n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Reset parses an X-RateLimit-Reset style value into an absolute time.
// Servers disagree on the format: most send a UNIX epoch in seconds, some
// send a relative duration such as "1s" or "6m0s".
func Reset(v string, now time.Time) (time.Time, bool) {
	v = strings.TrimSpace(v)
	if v == "" {
		return time.Time{}, false
	}

	if epoch, err := strconv.ParseInt(v, 10, 64); err == nil {
		return time.Unix(epoch, 0), true
	}

	if d, ok := parseDurationStr(v); ok {
		return now.Add(d), true
	}
	return time.Time{}, false
}

// parseDurationStr converts strings like "1s" or "6m0s" into a duration.
func parseDurationStr(s string) (time.Duration, bool) {
	if strings.HasSuffix(s, "s") && !strings.Contains(s, "m") {
		if sec, err := strconv.Atoi(strings.TrimSuffix(s, "s")); err == nil {
			return time.Duration(sec) * time.Second, true
		}
		return 0, false
	}

	var minutes, seconds int
	if n, err := fmt.Sscanf(s, "%dm%ds", &minutes, &seconds); n == 2 && err == nil {
		return time.Duration(minutes)*time.Minute + time.Duration(seconds)*time.Second, true
	}
	return 0, false
}
