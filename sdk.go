// sdk.go
// ------
// The sdk.go file contains the core Client struct and its methods.
// This is the main entry point of the package for users.
//
// Key functionalities include:
// - Constructing a client from a catalog with New()
// - Dispatching calls via client.Call()
// - Enumerating the callable surface via Endpoints()/Describe()
//
// The Client relies on the Registry for lookup, the argument validator for
// the pre-flight contract check, and the RequestExecutor for retries, so
// behavior is consistent across every endpoint the catalog declares.
package specwire

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/url"

	"github.com/google/uuid"
)

// Client is the callable object model built from a catalog. It is safe for
// concurrent use: the registry and config are immutable after New returns,
// and all per-call state is local to the call.
type Client struct {
	config    ClientConfig
	registry  *Registry
	baseURL   string
	transport Transport
	urls      URLBuilder
	limiter   *Limiter
	logger    *slog.Logger
	executor  *RequestExecutor
}

// New builds a Client. The loader is consumed exactly once; a load or
// validation failure is fatal and never yields a partial client.
func New(loader SpecLoader, config ClientConfig, opts ...Option) (*Client, error) {
	if err := config.validate(); err != nil {
		return nil, err
	}

	catalog, err := loader.Load()
	if err != nil {
		return nil, fmt.Errorf("specwire: loading catalog: %w", err)
	}
	registry, err := NewRegistry(catalog.Endpoints)
	if err != nil {
		return nil, err
	}

	c := &Client{
		config:   config,
		registry: registry,
		urls:     TemplateURLBuilder{},
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.transport == nil {
		c.transport = NewHTTPTransport(nil)
	}

	baseTemplate := catalog.BaseURL
	if config.BaseURL != "" {
		baseTemplate = config.BaseURL
	}
	c.baseURL, err = c.urls.Build("", baseTemplate, map[string]any{"subject": config.Subject})
	if err != nil {
		return nil, fmt.Errorf("specwire: base URL template: %w", err)
	}

	c.executor = newRequestExecutor(c.transport, c.limiter, c.logger,
		config.maxRetries(), config.baseBackoff())
	return c, nil
}

// Call dispatches one operation: endpoint and method are resolved against
// the registry, arguments are validated against the method's parameter
// contract, and the request is executed with rate-limit retry. The decoded
// value is returned and the raw response is recorded in the context's
// last-response slot (see WithLastResponse).
//
// GET-like verbs send every pass-through argument in the query string.
// Body-carrying verbs serialize them as a JSON body; a fire_webhooks
// argument is additionally mirrored into the query string, which is how
// the servers this engine fronts expect to receive it.
func (c *Client) Call(ctx context.Context, endpoint, method string, args map[string]any) (any, error) {
	ep, m, err := c.registry.Lookup(endpoint, method)
	if err != nil {
		return nil, err
	}
	if err := validateArgs(ep.Name, m, args); err != nil {
		return nil, err
	}
	pathArgs, passArgs := partitionArgs(m, args)

	target, err := c.urls.Build(c.baseURL, m.PathTemplate, pathArgs)
	if err != nil {
		return nil, fmt.Errorf("specwire: building URL for %s.%s: %w", endpoint, method, err)
	}

	req := &Request{
		Verb:  m.Verb,
		URL:   target,
		Query: url.Values{},
		Headers: map[string]string{
			"Authorization": "Bearer " + c.config.Credential,
			"Accept":        jsonMediaType,
			"X-Request-ID":  uuid.NewString(),
		},
	}

	if m.Verb.HasBody() {
		body, err := json.Marshal(passArgs)
		if err != nil {
			return nil, fmt.Errorf("specwire: encoding %s.%s body: %w", endpoint, method, err)
		}
		req.Body = body
		req.Headers["Content-Type"] = jsonMediaType
		if fw, ok := passArgs["fire_webhooks"]; ok {
			req.Query.Set("fire_webhooks", fmt.Sprintf("%v", fw))
		}
	} else {
		for name, value := range passArgs {
			req.Query.Set(name, fmt.Sprintf("%v", value))
		}
	}

	value, resp, err := c.executor.Execute(ctx, req)
	if resp != nil {
		recordLastResponse(ctx, resp)
	}
	if err != nil {
		return nil, err
	}
	return value, nil
}

// Endpoints returns all endpoint names the catalog declares, sorted.
func (c *Client) Endpoints() []string {
	return c.registry.Names()
}

// Endpoint returns the definition of one endpoint for introspection.
func (c *Client) Endpoint(name string) (Endpoint, error) {
	return c.registry.Endpoint(name)
}

// Describe renders an endpoint's methods, parameters and descriptions as
// human-readable text for help tooling.
func (c *Client) Describe(name string) (string, error) {
	ep, err := c.registry.Endpoint(name)
	if err != nil {
		return "", err
	}
	return DescribeEndpoint(ep), nil
}
