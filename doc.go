// Package specwire drives a rate-limited REST API from a declarative
// catalog of its endpoints and methods, instead of hand-written
// per-operation code.
//
// A catalog document lists endpoints, each with named methods (HTTP verb,
// URI template, parameter contract, description). From it specwire builds
// an immutable callable model and exposes a single entry point:
//
//	loader := specwire.FileLoader{Path: "catalog.yaml"}
//	client, err := specwire.New(loader, specwire.ClientConfig{
//	    Subject:    "acme",
//	    Credential: os.Getenv("API_TOKEN"),
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := client.Call(ctx, "people", "create", map[string]any{
//	    "email": "ada@example.com",
//	})
//
// Each call validates the supplied arguments against the method's declared
// parameters before any network activity, builds the request URL from the
// method's URI template, attaches the configured credential and a per-call
// X-Request-ID, and executes the request with bounded exponential backoff
// when the server answers 429. Client errors (4xx) and server errors (5xx)
// are surfaced immediately and never retried; transport-level failures pass
// through untouched.
//
// The most recent raw response is available for debugging through a
// context-scoped slot: install it with WithLastResponse and read it back
// with LastResponse. Concurrent calls on the same client never observe each
// other's cached response.
package specwire
