package validated

import (
	"strconv"

	"github.com/Gobd/validated/result"
	"github.com/getkin/kin-openapi/openapi3"
)

type eachRule[A, B any] struct {
	rule Rule[A, B]
}

// Each applies r to every element of a slice. Elements are validated under
// the target labelled "label[i]" and every failing element is reported.
func Each[A, B any](r Rule[A, B]) Rule[[]A, []B] {
	return eachRule[A, B]{rule: r}
}

func (r eachRule[A, B]) Validate(values []A, target Target) result.Validation[Errors, []B] {
	vs := make([]result.Validation[Errors, B], len(values))
	for i, v := range values {
		idx := "[" + strconv.Itoa(i) + "]"
		vs[i] = r.rule.Validate(v, Target{Key: target.Key + idx, Label: target.Label + idx})
	}
	return result.CombineAll(Concat, vs...)
}

func (r eachRule[A, B]) Describe(name string, schema *openapi3.Schema, ref *openapi3.SchemaRef) error {
	if ref.Value.Items == nil {
		return nil
	}
	return r.rule.Describe(name, schema, ref.Value.Items)
}
