package specwire

import (
	"net/url"
	"strings"
)

// Request is the transport-neutral shape of one outbound call, produced by
// the dispatcher and consumed by a Transport.
type Request struct {
	Verb    Verb
	URL     string
	Headers map[string]string
	Query   url.Values
	Body    []byte
}

// RawResponse is the transport's answer: status, headers, and the raw body.
// It is immutable once received; the dispatcher records it in the
// context-scoped last-response slot after every completed call.
type RawResponse struct {
	StatusCode int
	Headers    map[string]string
	Body       []byte
}

// Header returns the value for the named header, matching case-insensitively
// as HTTP requires. It returns "" when the header is absent.
func (r *RawResponse) Header(name string) string {
	if v, ok := r.Headers[name]; ok {
		return v
	}
	for k, v := range r.Headers {
		if strings.EqualFold(k, name) {
			return v
		}
	}
	return ""
}

// JSON reports whether the response declares the JSON media type, ignoring
// parameters like charset.
func (r *RawResponse) JSON() bool {
	return mediaType(r.Header("Content-Type")) == jsonMediaType
}
