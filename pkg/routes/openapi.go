package routes

import (
	"encoding/json"
	"strings"
	"unicode"
)

// OpenAPIGenerator produces an OpenAPI 3.0.3 skeleton from a scanned
// descriptor set. Middleware descriptors are skipped; route descriptors
// become path items with their dynamic tokens as path parameters. When a
// descriptor's handlers are loaded the operations mirror its exported
// methods, otherwise a single stub GET operation stands in.
type OpenAPIGenerator struct {
	descriptors []*Descriptor
	info        OpenAPIInfo
}

// OpenAPIInfo contains metadata for the generated document.
type OpenAPIInfo struct {
	Title       string
	Description string
	Version     string
}

// NewOpenAPIGenerator creates a generator over a scanned descriptor set.
func NewOpenAPIGenerator(descriptors []*Descriptor, info OpenAPIInfo) *OpenAPIGenerator {
	if info.Title == "" {
		info.Title = "Routes"
	}
	if info.Version == "" {
		info.Version = "1.0.0"
	}
	return &OpenAPIGenerator{
		descriptors: descriptors,
		info:        info,
	}
}

// OpenAPISpec is the root OpenAPI 3.0 document.
type OpenAPISpec struct {
	OpenAPI string                 `json:"openapi"`
	Info    OpenAPISpecInfo        `json:"info"`
	Paths   map[string]OpenAPIPath `json:"paths"`
}

// OpenAPISpecInfo is the info section.
type OpenAPISpecInfo struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Version     string `json:"version"`
}

// OpenAPIPath maps lower-case HTTP methods to operations.
type OpenAPIPath map[string]*OpenAPIOperation

// OpenAPIOperation describes a single operation.
type OpenAPIOperation struct {
	Summary     string                     `json:"summary,omitempty"`
	OperationID string                     `json:"operationId,omitempty"`
	Parameters  []OpenAPIParameter         `json:"parameters,omitempty"`
	Responses   map[string]OpenAPIResponse `json:"responses"`
}

// OpenAPIParameter describes an operation parameter.
type OpenAPIParameter struct {
	Name        string         `json:"name"`
	In          string         `json:"in"`
	Description string         `json:"description,omitempty"`
	Required    bool           `json:"required,omitempty"`
	Schema      *OpenAPISchema `json:"schema"`
}

// OpenAPIResponse describes an operation response.
type OpenAPIResponse struct {
	Description string `json:"description"`
}

// OpenAPISchema describes a parameter schema.
type OpenAPISchema struct {
	Type string `json:"type,omitempty"`
}

// Generate renders the document as indented JSON. encoding/json sorts map
// keys, so output for an unchanged descriptor set is deterministic.
func (g *OpenAPIGenerator) Generate() ([]byte, error) {
	spec := OpenAPISpec{
		OpenAPI: "3.0.3",
		Info: OpenAPISpecInfo{
			Title:       g.info.Title,
			Description: g.info.Description,
			Version:     g.info.Version,
		},
		Paths: make(map[string]OpenAPIPath),
	}

	for _, d := range g.descriptors {
		if d.IsMiddleware {
			continue
		}

		path := openAPIPath(d)

		pathItem, ok := spec.Paths[path]
		if !ok {
			pathItem = make(OpenAPIPath)
			spec.Paths[path] = pathItem
		}

		for _, method := range operationMethods(d) {
			lower := strings.ToLower(method)
			if _, exists := pathItem[lower]; exists {
				continue
			}
			pathItem[lower] = g.descriptorToOperation(d, method, path)
		}
	}

	return json.MarshalIndent(spec, "", "  ")
}

// operationMethods returns the HTTP methods a descriptor's document entry
// should carry: the loaded method exports, or a stub GET before loading.
func operationMethods(d *Descriptor) []string {
	var methods []string
	for _, method := range Methods {
		if _, ok := d.Handlers[method]; ok {
			methods = append(methods, method)
		}
	}
	if len(methods) == 0 {
		methods = []string{"GET"}
	}
	return methods
}

// descriptorToOperation builds one operation from a descriptor.
func (g *OpenAPIGenerator) descriptorToOperation(d *Descriptor, method, path string) *OpenAPIOperation {
	op := &OpenAPIOperation{
		Summary:     method + " " + path,
		OperationID: operationID(method, path),
		Responses: map[string]OpenAPIResponse{
			"200": {Description: "Successful response"},
		},
	}

	for i, name := range d.Params {
		if name == "" {
			continue
		}
		param := OpenAPIParameter{
			Name:     name,
			In:       "path",
			Required: true,
			Schema:   &OpenAPISchema{Type: "string"},
		}
		if d.IsCatchAll && i == len(d.Params)-1 {
			param.Description = "Remaining path segments"
		}
		op.Parameters = append(op.Parameters, param)
	}

	return op
}

// openAPIPath converts a compiled pattern to OpenAPI path syntax:
// ":id" → "{id}", a trailing catch-all "*" → "{name}" using the
// descriptor's last parameter name.
func openAPIPath(d *Descriptor) string {
	path := d.Path

	if d.IsCatchAll {
		name := "wildcard"
		if len(d.Params) > 0 && d.Params[len(d.Params)-1] != "" {
			name = d.Params[len(d.Params)-1]
		}
		path = strings.TrimSuffix(path, "*") + "{" + name + "}"
	}

	segments := strings.Split(path, "/")
	for i, seg := range segments {
		if strings.HasPrefix(seg, ":") {
			segments[i] = "{" + seg[1:] + "}"
		}
	}
	return strings.Join(segments, "/")
}

// operationID builds a stable identifier like "getUsersId".
func operationID(method, path string) string {
	var b strings.Builder
	b.WriteString(strings.ToLower(method))

	upper := true
	for _, r := range path {
		switch {
		case r == '/' || r == '{' || r == '}' || r == '-' || r == '_' || r == ':' || r == '*':
			upper = true
		case upper:
			b.WriteRune(unicode.ToUpper(r))
			upper = false
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
