package validated

import (
	"github.com/Gobd/validated/result"
	"github.com/getkin/kin-openapi/openapi3"
)

type custom[A, B any] struct {
	f    RuleFunc[A, B]
	desc string
}

// By wraps f into a Rule documented with desc.
func By[A, B any](f RuleFunc[A, B], desc string) Rule[A, B] {
	return custom[A, B]{f: f, desc: desc}
}

// Check returns a rule that fails with reason when ok reports false.
//
//	adult := Check(func(n int) bool { return n >= 18 }, "must be an adult")
func Check[A any](ok func(A) bool, reason string) Rule[A, A] {
	return By(RuleFunc[A, A](func(value A, target Target) result.Validation[Errors, A] {
		if !ok(value) {
			return fail[A](target, reason)
		}
		return pass(value)
	}), reason)
}

func (r custom[A, B]) Validate(value A, target Target) result.Validation[Errors, B] {
	return r.f(value, target)
}

func (r custom[A, B]) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	appendDescription(ref, r.desc)
	return nil
}
