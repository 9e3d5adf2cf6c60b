package specwire

import "context"

// SpecLoader turns a declarative catalog source into endpoint definitions.
// It is consumed exactly once, at client construction; a load failure is
// fatal to construction and never yields a partial client.
type SpecLoader interface {
	Load() (*Catalog, error)
}

// Catalog is what a SpecLoader produces: the endpoint definitions plus the
// catalog's default base URL template. The template may reference {subject},
// which is expanded with the configured subject identifier.
type Catalog struct {
	BaseURL   string
	Endpoints []Endpoint
}

// URLBuilder expands a URI template against path-bound arguments and joins
// the result onto a base URL. Implementations must be pure: no side
// effects, called once per dispatched request.
type URLBuilder interface {
	Build(baseURL, pathTemplate string, args map[string]any) (string, error)
}

// Transport issues one request and returns the raw response. A returned
// error is a transport-level failure (connection refused, deadline, ...)
// and is passed through to the caller unmodified, never retried; HTTP
// status errors are expressed through RawResponse.StatusCode instead.
type Transport interface {
	Send(ctx context.Context, req *Request) (*RawResponse, error)
}
