package validated

import (
	"reflect"

	"github.com/Gobd/validated/result"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3gen"
)

// WithTarget returns a rule that ignores the target it is called with and
// always reports under target.
func WithTarget[A, B any](r Rule[A, B], target Target) Rule[A, B] {
	return rule[A, B]{
		validate: func(value A, _ Target) result.Validation[Errors, B] {
			return r.Validate(value, target)
		},
		describe: describeField[A](target, r),
	}
}

// From lifts r onto one field of a larger structure: extract projects the
// field out of the structure and target names it.
//
//	firstName := From(Required, func(f Form) string { return f.FirstName }, FirstName)
func From[S, A, B any](r Rule[A, B], extract func(S) A, target Target) Rule[S, B] {
	return rule[S, B]{
		validate: func(value S, _ Target) result.Validation[Errors, B] {
			return r.Validate(extract(value), target)
		},
		describe: describeField[A](target, r),
	}
}

// describeField documents r on the property target.Key of the parent schema,
// creating the property from the Go type A when it does not exist yet.
func describeField[A any](target Target, r Describer) func(string, *openapi3.Schema, *openapi3.SchemaRef) error {
	return func(_ string, schema *openapi3.Schema, _ *openapi3.SchemaRef) error {
		prop, ok := schema.Properties[target.Key]
		if !ok {
			var err error
			prop, err = fieldSchema[A]()
			if err != nil {
				return err
			}
			if schema.Properties == nil {
				schema.Properties = openapi3.Schemas{}
			}
			schema.Properties[target.Key] = prop
		}
		if prop.Value.Title == "" && target.Label != target.Key {
			prop.Value.Title = target.Label
		}
		return r.Describe(target.Key, schema, prop)
	}
}

// fieldSchema generates the base schema of a field of type A.
func fieldSchema[A any]() (*openapi3.SchemaRef, error) {
	t := reflect.TypeFor[A]()
	if t.Kind() == reflect.Interface {
		return openapi3.NewSchemaRef("", openapi3.NewSchema()), nil
	}
	return openapi3gen.NewSchemaRefForValue(reflect.New(t).Elem().Interface(), nil)
}
