// describe.go
// -----------
// Human-readable rendering of the introspection surface, used by help
// tooling and the specwire CLI. Formatting only; no call-path logic.
package specwire

import (
	"fmt"
	"sort"
	"strings"
)

// DescribeEndpoint renders one endpoint's methods, their verbs, templates,
// parameters (required ones marked) and description text.
func DescribeEndpoint(ep Endpoint) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", ep.Name)
	for _, name := range ep.MethodNames() {
		m := ep.Methods[name]
		fmt.Fprintf(&b, "  %s  %s %s\n", m.Name, m.Verb, m.PathTemplate)
		if m.Description != "" {
			fmt.Fprintf(&b, "      %s\n", m.Description)
		}
		for _, p := range m.Parameters {
			marker := ""
			if p.Required {
				marker = " (required)"
			}
			fmt.Fprintf(&b, "      - %s [%s]%s\n", p.Name, p.Kind, marker)
		}
	}
	return b.String()
}

// DescribeCatalog renders every endpoint in the catalog, sorted by name.
func DescribeCatalog(catalog *Catalog) string {
	endpoints := make([]Endpoint, len(catalog.Endpoints))
	copy(endpoints, catalog.Endpoints)
	sort.Slice(endpoints, func(i, j int) bool { return endpoints[i].Name < endpoints[j].Name })

	var b strings.Builder
	for _, ep := range endpoints {
		b.WriteString(DescribeEndpoint(ep))
	}
	return b.String()
}
