// urlbuilder.go
// -------------
// Default URLBuilder: RFC 6570 URI-template expansion. The same expansion
// serves the per-method path templates and the catalog's base URL template
// (which may reference {subject}).
package specwire

import (
	"fmt"
	"strings"

	"github.com/yosida95/uritemplate/v3"
)

// TemplateURLBuilder expands URI templates with yosida95/uritemplate.
// It is stateless and pure; the zero value is ready to use.
type TemplateURLBuilder struct{}

var _ URLBuilder = TemplateURLBuilder{}

// Build expands pathTemplate against args and joins the result onto
// baseURL. With an empty baseURL the expansion alone is returned, which is
// how the client resolves its base URL template at construction.
func (TemplateURLBuilder) Build(baseURL, pathTemplate string, args map[string]any) (string, error) {
	tmpl, err := uritemplate.New(pathTemplate)
	if err != nil {
		return "", err
	}

	values := uritemplate.Values{}
	for name, value := range args {
		values.Set(name, uritemplate.String(fmt.Sprintf("%v", value)))
	}
	expanded, err := tmpl.Expand(values)
	if err != nil {
		return "", err
	}

	if baseURL == "" {
		return expanded, nil
	}
	return strings.TrimSuffix(baseURL, "/") + expanded, nil
}
