// validate.go
// -----------
// Argument partitioning and required-parameter checking. Both run strictly
// before any network activity: an invalid call never produces a partial
// request.
package specwire

import "sort"

// partitionArgs splits caller-supplied arguments into the path-bound set
// (consumed by the URI template) and the pass-through set (sent as query
// string or body). Arguments the method does not declare pass through.
func partitionArgs(m Method, args map[string]any) (path, passthrough map[string]any) {
	pathParams := m.pathParamNames()
	path = make(map[string]any)
	passthrough = make(map[string]any)
	for name, value := range args {
		if pathParams[name] {
			path[name] = value
		} else {
			passthrough[name] = value
		}
	}
	return path, passthrough
}

// validateArgs verifies every parameter the method marks required is
// present among the supplied arguments. Missing names are reported
// together, sorted, in a single ValidationError.
func validateArgs(endpoint string, m Method, args map[string]any) error {
	var missing []string
	for _, p := range m.Parameters {
		if !p.Required {
			continue
		}
		if _, ok := args[p.Name]; !ok {
			missing = append(missing, p.Name)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	sort.Strings(missing)
	return &ValidationError{Endpoint: endpoint, Method: m.Name, Missing: missing}
}
