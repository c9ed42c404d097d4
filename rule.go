package validated

import (
	"github.com/Gobd/validated/result"
	"github.com/getkin/kin-openapi/openapi3"
)

type (
	// Describer documents a rule on an OpenAPI schema. name is the property
	// being described, schema its parent object and ref the property itself.
	Describer interface {
		Describe(name string, schema *openapi3.Schema, ref *openapi3.SchemaRef) error
	}

	// Rule validates a value of type A under a target and produces a B.
	// Rules are immutable; every combinator returns a new Rule.
	Rule[A, B any] interface {
		Validate(value A, target Target) result.Validation[Errors, B]
		Describer
	}

	// RuleFunc adapts a plain function to a Rule with no documentation.
	RuleFunc[A, B any] func(value A, target Target) result.Validation[Errors, B]
)

// Validate calls f.
func (f RuleFunc[A, B]) Validate(value A, target Target) result.Validation[Errors, B] {
	return f(value, target)
}

// Describe is a no-op; wrap f with [By] to document it.
func (f RuleFunc[A, B]) Describe(string, *openapi3.Schema, *openapi3.SchemaRef) error {
	return nil
}

// rule is the value every combinator returns.
type rule[A, B any] struct {
	validate func(A, Target) result.Validation[Errors, B]
	describe func(name string, schema *openapi3.Schema, ref *openapi3.SchemaRef) error
}

func (r rule[A, B]) Validate(value A, target Target) result.Validation[Errors, B] {
	return r.validate(value, target)
}

func (r rule[A, B]) Describe(name string, schema *openapi3.Schema, ref *openapi3.SchemaRef) error {
	if r.describe == nil {
		return nil
	}
	return r.describe(name, schema, ref)
}

// describeAll describes every child in order.
func describeAll(children ...Describer) func(string, *openapi3.Schema, *openapi3.SchemaRef) error {
	return func(name string, schema *openapi3.Schema, ref *openapi3.SchemaRef) error {
		for _, c := range children {
			if err := c.Describe(name, schema, ref); err != nil {
				return err
			}
		}
		return nil
	}
}

// pass and fail build the results of a leaf rule.
func pass[A any](value A) result.Validation[Errors, A] {
	return result.Pure[Errors](value)
}

func fail[A any](target Target, reason string) result.Validation[Errors, A] {
	return result.Fail[Errors, A](target.Errors(reason))
}
