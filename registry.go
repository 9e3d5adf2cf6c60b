// registry.go
// -----------
// The endpoint registry: a name→Endpoint mapping built once from the
// catalog and read-only afterwards. Construction is the last point where a
// bad catalog can be caught, so duplicate names, unknown verbs (already
// rejected by ParseVerb) and URI-template placeholders that no path-bound
// parameter covers all fail here rather than at call time.
package specwire

import (
	"fmt"
	"sort"

	"github.com/yosida95/uritemplate/v3"
)

// Registry holds the immutable endpoint model. It requires no
// synchronization: it is never mutated after NewRegistry returns.
type Registry struct {
	endpoints map[string]Endpoint
	names     []string
}

// NewRegistry builds a registry from loaded endpoint definitions.
func NewRegistry(endpoints []Endpoint) (*Registry, error) {
	r := &Registry{endpoints: make(map[string]Endpoint, len(endpoints))}
	for _, ep := range endpoints {
		if _, exists := r.endpoints[ep.Name]; exists {
			return nil, fmt.Errorf("specwire: duplicate endpoint %q", ep.Name)
		}
		for _, m := range ep.Methods {
			if err := checkTemplate(ep.Name, m); err != nil {
				return nil, err
			}
		}
		r.endpoints[ep.Name] = ep
		r.names = append(r.names, ep.Name)
	}
	sort.Strings(r.names)
	return r, nil
}

// checkTemplate verifies the method's URI template parses and that every
// placeholder is covered by a parameter declared as path-bound.
func checkTemplate(endpoint string, m Method) error {
	tmpl, err := uritemplate.New(m.PathTemplate)
	if err != nil {
		return fmt.Errorf("specwire: %s.%s: bad URI template %q: %w", endpoint, m.Name, m.PathTemplate, err)
	}
	pathParams := m.pathParamNames()
	for _, name := range tmpl.Varnames() {
		if !pathParams[name] {
			return fmt.Errorf("specwire: %s.%s: template placeholder %q has no path parameter", endpoint, m.Name, name)
		}
	}
	return nil
}

// Names returns all known endpoint names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.names))
	copy(names, r.names)
	return names
}

// Endpoint looks up an endpoint by name.
func (r *Registry) Endpoint(name string) (Endpoint, error) {
	ep, ok := r.endpoints[name]
	if !ok {
		return Endpoint{}, &InvalidEndpointError{Endpoint: name, Known: r.Names()}
	}
	return ep, nil
}

// Lookup resolves an endpoint and one of its methods in a single step.
func (r *Registry) Lookup(endpoint, method string) (Endpoint, Method, error) {
	ep, err := r.Endpoint(endpoint)
	if err != nil {
		return Endpoint{}, Method{}, err
	}
	m, ok := ep.Method(method)
	if !ok {
		return Endpoint{}, Method{}, &InvalidEndpointError{
			Endpoint: endpoint,
			Method:   method,
			Known:    ep.MethodNames(),
		}
	}
	return ep, m, nil
}
