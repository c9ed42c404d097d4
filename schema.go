package validated

import (
	"github.com/getkin/kin-openapi/openapi3"
)

// Schema renders the documentation of a rule tree into an object schema.
// Fields bound with [From] or [WithTarget] become properties keyed by their
// target; rules applied to the whole input describe the object itself.
func Schema(d Describer) (*openapi3.SchemaRef, error) {
	ref := openapi3.NewObjectSchema().NewRef()
	if err := d.Describe("", ref.Value, ref); err != nil {
		return nil, err
	}
	return ref, nil
}

// SchemaMust is like [Schema] but panics on error.
func SchemaMust(d Describer) *openapi3.SchemaRef {
	ref, err := Schema(d)
	if err != nil {
		panic(err)
	}
	return ref
}
