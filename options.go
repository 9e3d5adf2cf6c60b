package specwire

import (
	"log/slog"
	"net/http"
)

// Option configures a Client at construction.
type Option func(*Client)

// WithTransport substitutes the transport collaborator. The default sends
// over net/http.
func WithTransport(t Transport) Option {
	return func(c *Client) { c.transport = t }
}

// WithHTTPClient keeps the default transport but runs it over a custom
// *http.Client (timeouts, proxies, instrumented round trippers).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.transport = NewHTTPTransport(hc) }
}

// WithURLBuilder substitutes the URL builder collaborator. The default
// expands RFC 6570 URI templates.
func WithURLBuilder(b URLBuilder) Option {
	return func(c *Client) { c.urls = b }
}

// WithLimiter adds client-side pacing in front of the transport. Without
// it the client only reacts to 429 responses.
func WithLimiter(l *Limiter) Option {
	return func(c *Client) { c.limiter = l }
}

// WithLogger sets the logger for debug output (attempts, backoff,
// classifications). Logging is off by default.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.logger = l }
}
