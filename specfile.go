// specfile.go
// -----------
// The default SpecLoader: a YAML (or JSON — YAML is a superset) catalog
// document describing endpoints, methods and parameters. Example:
//
//	base_url: https://api.example.com/{subject}/v1
//	endpoints:
//	  people:
//	    methods:
//	      create:
//	        verb: POST
//	        path: /people
//	        description: Create a person.
//	        parameters:
//	          - name: email
//	            required: true
//	      show:
//	        verb: GET
//	        path: /people/{id}
//	        parameters:
//	          - name: id
//	            in: path
//	            required: true
//
// Parameters default to the pass-through (body/query) kind; "in: path"
// binds them to the URI template instead.
package specwire

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type catalogDoc struct {
	BaseURL   string                 `yaml:"base_url"`
	Endpoints map[string]endpointDoc `yaml:"endpoints"`
}

type endpointDoc struct {
	Methods map[string]methodDoc `yaml:"methods"`
}

type methodDoc struct {
	Verb        string         `yaml:"verb"`
	Path        string         `yaml:"path"`
	Description string         `yaml:"description"`
	Parameters  []parameterDoc `yaml:"parameters"`
}

type parameterDoc struct {
	Name     string `yaml:"name"`
	Required bool   `yaml:"required"`
	In       string `yaml:"in"`
}

// ParseCatalog parses a catalog document. Unknown verbs, unnamed
// parameters and parameter locations other than path/payload are rejected
// here so the registry only ever sees well-formed definitions.
func ParseCatalog(data []byte) (*Catalog, error) {
	var doc catalogDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("specwire: parsing catalog: %w", err)
	}

	catalog := &Catalog{BaseURL: doc.BaseURL}
	for epName, epDoc := range doc.Endpoints {
		ep := Endpoint{Name: epName, Methods: make(map[string]Method, len(epDoc.Methods))}
		for mName, mDoc := range epDoc.Methods {
			verb, err := ParseVerb(mDoc.Verb)
			if err != nil {
				return nil, fmt.Errorf("specwire: %s.%s: %w", epName, mName, err)
			}
			m := Method{
				Name:         mName,
				Verb:         verb,
				PathTemplate: mDoc.Path,
				Description:  mDoc.Description,
			}
			for _, pDoc := range mDoc.Parameters {
				if pDoc.Name == "" {
					return nil, fmt.Errorf("specwire: %s.%s: parameter without a name", epName, mName)
				}
				kind := PayloadParameter
				switch pDoc.In {
				case "", "payload":
				case "path":
					kind = PathParameter
				default:
					return nil, fmt.Errorf("specwire: %s.%s: parameter %q: unknown location %q",
						epName, mName, pDoc.Name, pDoc.In)
				}
				m.Parameters = append(m.Parameters, Parameter{
					Name:     pDoc.Name,
					Required: pDoc.Required,
					Kind:     kind,
				})
			}
			ep.Methods[mName] = m
		}
		catalog.Endpoints = append(catalog.Endpoints, ep)
	}
	return catalog, nil
}

// FileLoader loads a catalog document from disk.
type FileLoader struct {
	Path string
}

var _ SpecLoader = FileLoader{}

func (l FileLoader) Load() (*Catalog, error) {
	data, err := os.ReadFile(l.Path)
	if err != nil {
		return nil, err
	}
	return ParseCatalog(data)
}

// BytesLoader serves an in-memory catalog document, handy for tests and
// embedded catalogs.
type BytesLoader []byte

var _ SpecLoader = BytesLoader(nil)

func (l BytesLoader) Load() (*Catalog, error) {
	return ParseCatalog(l)
}
