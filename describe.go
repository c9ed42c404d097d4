package validated

import (
	"github.com/Gobd/validated/result"
	"github.com/getkin/kin-openapi/openapi3"
)

type describe[A any] struct {
	desc string
}

// Describe returns a documentation-only rule that appends desc to the schema
// description. It always succeeds with its input.
func Describe[A any](desc string) Rule[A, A] {
	return describe[A]{desc: desc}
}

func (r describe[A]) Validate(value A, _ Target) result.Validation[Errors, A] {
	return pass(value)
}

func (r describe[A]) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	appendDescription(ref, r.desc)
	return nil
}
