package openapi

import (
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3gen"
)

// NewSchemaRefForValue generates an OpenAPI schema from the Go type of value.
func NewSchemaRefForValue(value any) (*openapi3.SchemaRef, error) {
	return openapi3gen.NewSchemaRefForValue(value, nil)
}

// jsonContent wraps refs in an application/json body, using oneOf when there
// is more than one.
func jsonContent(refs openapi3.SchemaRefs) openapi3.Content {
	schema := &openapi3.SchemaRef{Value: &openapi3.Schema{OneOf: refs}}
	if len(refs) == 1 {
		schema = refs[0]
	}
	return openapi3.NewContentWithJSONSchemaRef(schema)
}
