package validated

import (
	"fmt"
	"slices"
	"strings"

	"github.com/Gobd/validated/result"
	"github.com/getkin/kin-openapi/openapi3"
)

// In checks that a value is one of the allowed values.
func In[A comparable](values ...A) Rule[A, A] {
	want := make([]string, len(values))
	for i := range values {
		want[i] = fmt.Sprintf("'%v'", values[i])
	}
	return &inRule[A]{
		values: values,
		msg:    fmt.Sprintf("must be one of %s", strings.Join(want, ", ")),
	}
}

type inRule[A comparable] struct {
	values []A
	msg    string
}

func (r *inRule[A]) Validate(value A, target Target) result.Validation[Errors, A] {
	if !slices.Contains(r.values, value) {
		return fail[A](target, fmt.Sprintf("%s got '%v'", r.msg, value))
	}
	return pass(value)
}

func (r *inRule[A]) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	ref.Value.Enum = make([]any, len(r.values))
	for i, v := range r.values {
		ref.Value.Enum[i] = v
	}
	return nil
}
