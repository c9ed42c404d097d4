package validated

import (
	"github.com/Gobd/validated/result"
	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type notNullRule[A any] struct {
	validation.Rule
}

// NotNull checks that a value is not nil. Nil pointers, interfaces, slices,
// maps, funcs and chans all fail; an empty but non-nil slice or map passes.
func NotNull[A any]() Rule[A, A] {
	return notNullRule[A]{validation.NotNil.Error("cannot be null")}
}

func (r notNullRule[A]) Validate(value A, target Target) result.Validation[Errors, A] {
	if err := r.Rule.Validate(value); err != nil {
		return fail[A](target, err.Error())
	}
	return pass(value)
}

func (r notNullRule[A]) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	ref.Value.Nullable = false
	return nil
}
