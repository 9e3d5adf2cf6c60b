// endpoint.go
// -----------
// Immutable description of the callable surface: an Endpoint groups named
// Methods, a Method binds an HTTP verb to a URI template and a parameter
// contract. These objects are built once at client construction from the
// catalog and shared read-only for the client's lifetime.
package specwire

import (
	"fmt"
	"sort"
	"strings"
)

// Verb is one of the closed set of HTTP verbs a Method may declare.
// Anything outside the set is rejected when the catalog is parsed.
type Verb string

const (
	GET    Verb = "GET"
	POST   Verb = "POST"
	PUT    Verb = "PUT"
	PATCH  Verb = "PATCH"
	DELETE Verb = "DELETE"
)

// ParseVerb converts a catalog verb string (case-insensitive) into a Verb.
func ParseVerb(s string) (Verb, error) {
	switch v := Verb(strings.ToUpper(strings.TrimSpace(s))); v {
	case GET, POST, PUT, PATCH, DELETE:
		return v, nil
	default:
		return "", fmt.Errorf("specwire: unknown HTTP verb %q", s)
	}
}

func (v Verb) String() string { return string(v) }

// HasBody reports whether the verb carries its pass-through arguments as a
// request body. GET and DELETE send everything in the query string instead.
func (v Verb) HasBody() bool {
	switch v {
	case POST, PUT, PATCH:
		return true
	default:
		return false
	}
}

// ParameterKind classifies how a declared parameter reaches the server.
type ParameterKind int

const (
	// PathParameter is consumed by the method's URI template.
	PathParameter ParameterKind = iota
	// PayloadParameter is passed through to the request body or query string.
	PayloadParameter
)

func (k ParameterKind) String() string {
	if k == PathParameter {
		return "path"
	}
	return "payload"
}

// Parameter describes one declared argument of a Method.
type Parameter struct {
	Name     string
	Required bool
	Kind     ParameterKind
}

// Method is one callable operation: verb + URI template + parameter contract.
type Method struct {
	Name         string
	Verb         Verb
	PathTemplate string
	Parameters   []Parameter
	Description  string
}

// RequiredParameters returns the names of all parameters marked required,
// in declaration order.
func (m Method) RequiredParameters() []string {
	var names []string
	for _, p := range m.Parameters {
		if p.Required {
			names = append(names, p.Name)
		}
	}
	return names
}

// pathParamNames returns the set of parameter names bound to the URI template.
func (m Method) pathParamNames() map[string]bool {
	set := make(map[string]bool, len(m.Parameters))
	for _, p := range m.Parameters {
		if p.Kind == PathParameter {
			set[p.Name] = true
		}
	}
	return set
}

// Endpoint is a named group of related methods.
type Endpoint struct {
	Name    string
	Methods map[string]Method
}

// Method looks up a method by name.
func (e Endpoint) Method(name string) (Method, bool) {
	m, ok := e.Methods[name]
	return m, ok
}

// MethodNames returns the endpoint's method names in sorted order.
func (e Endpoint) MethodNames() []string {
	names := make([]string, 0, len(e.Methods))
	for name := range e.Methods {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
