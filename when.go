package validated

import (
	"github.com/Gobd/validated/result"
	"github.com/getkin/kin-openapi/openapi3"
)

// When dispatches on the input: values for which cond holds are validated by
// then, all others by otherwise. Both branches are documented.
func When[A, B any](cond func(A) bool, then, otherwise Rule[A, B]) Rule[A, B] {
	return rule[A, B]{
		validate: func(value A, target Target) result.Validation[Errors, B] {
			if cond(value) {
				return then.Validate(value, target)
			}
			return otherwise.Validate(value, target)
		},
		describe: describeAll(then, otherwise),
	}
}

// Identity always succeeds with its input.
func Identity[A any]() Rule[A, A] {
	return RuleFunc[A, A](func(value A, _ Target) result.Validation[Errors, A] {
		return pass(value)
	})
}

// OptionalOr treats a blank string as an absent value and succeeds
// immediately. Any other input is validated by r and wrapped with [Some].
func OptionalOr[B any](r Rule[string, B]) Rule[string, Optional[B]] {
	inner := When(
		isBlank,
		Map(Identity[string](), func(string) Optional[B] { return None[B]() }),
		Map(r, Some[B]),
	)
	return rule[string, Optional[B]]{
		validate: inner.Validate,
		describe: func(name string, schema *openapi3.Schema, ref *openapi3.SchemaRef) error {
			ref.Value.Nullable = true
			return inner.Describe(name, schema, ref)
		},
	}
}
