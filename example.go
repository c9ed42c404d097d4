package validated

import (
	"github.com/Gobd/validated/result"
	"github.com/getkin/kin-openapi/openapi3"
)

type example[A any] struct {
	ex any
}

// Example returns a documentation-only rule that sets the schema example.
// It always succeeds with its input.
func Example[A any](ex any) Rule[A, A] {
	return example[A]{ex: ex}
}

func (r example[A]) Validate(value A, _ Target) result.Validation[Errors, A] {
	return pass(value)
}

func (r example[A]) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	ref.Value.Example = r.ex
	return nil
}
