package validated

import (
	"strings"

	"github.com/Gobd/validated/result"
	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type requiredRule struct {
	validation.RequiredRule
}

// Required checks that a string is not blank. Whitespace-only input is blank.
var Required Rule[string, string] = requiredRule{
	validation.Required.Error("cannot be empty"),
}

func (r requiredRule) Validate(value string, target Target) result.Validation[Errors, string] {
	if err := r.RequiredRule.Validate(strings.TrimSpace(value)); err != nil {
		return fail[string](target, err.Error())
	}
	return pass(value)
}

func (r requiredRule) Describe(name string, schema *openapi3.Schema, ref *openapi3.SchemaRef) error {
	if name != "" {
		schema.Required = append(schema.Required, name)
	}
	ref.Value.MinLength = 1
	return nil
}
