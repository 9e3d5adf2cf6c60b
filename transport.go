// transport.go
// ------------
// Default Transport over net/http. It merges the request's query values
// into the URL, sends the body bytes, and reads the full response before
// returning, so a RawResponse is self-contained and immutable.
package specwire

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"time"
)

const defaultHTTPTimeout = 30 * time.Second

// HTTPTransport sends requests with a *http.Client.
type HTTPTransport struct {
	client *http.Client
}

// NewHTTPTransport wraps hc; nil gets a client with a 30s timeout.
func NewHTTPTransport(hc *http.Client) *HTTPTransport {
	if hc == nil {
		hc = &http.Client{Timeout: defaultHTTPTimeout}
	}
	return &HTTPTransport{client: hc}
}

// Send issues the request. Connection-level failures are returned as-is;
// HTTP status errors are reported through RawResponse.StatusCode and are
// the caller's concern.
func (t *HTTPTransport) Send(ctx context.Context, req *Request) (*RawResponse, error) {
	target, err := mergeQuery(req.URL, req.Query)
	if err != nil {
		return nil, err
	}

	var body io.Reader
	if len(req.Body) > 0 {
		body = bytes.NewReader(req.Body)
	}
	httpReq, err := http.NewRequestWithContext(ctx, req.Verb.String(), target, body)
	if err != nil {
		return nil, err
	}
	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}

	httpResp, err := t.client.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer httpResp.Body.Close()

	data, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, err
	}

	headers := make(map[string]string, len(httpResp.Header))
	for k := range httpResp.Header {
		headers[k] = httpResp.Header.Get(k)
	}
	return &RawResponse{
		StatusCode: httpResp.StatusCode,
		Headers:    headers,
		Body:       data,
	}, nil
}

// mergeQuery folds extra query values into rawURL, preserving any query
// string the URL template already produced.
func mergeQuery(rawURL string, query url.Values) (string, error) {
	if len(query) == 0 {
		return rawURL, nil
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}
	q := u.Query()
	for name, values := range query {
		for _, v := range values {
			q.Set(name, v)
		}
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}
