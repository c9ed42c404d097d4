package validated

import (
	"fmt"

	"github.com/Gobd/validated/result"
	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type maxLengthRule struct {
	validation.LengthRule
	max int
}

// MaxLength checks that a string has at most n runes.
func MaxLength(n int) Rule[string, string] {
	return maxLengthRule{
		validation.RuneLength(0, n).Error(fmt.Sprintf("has exceeded max length of %d characters", n)),
		n,
	}
}

func (r maxLengthRule) Validate(value string, target Target) result.Validation[Errors, string] {
	if err := r.LengthRule.Validate(value); err != nil {
		return fail[string](target, err.Error())
	}
	return pass(value)
}

func (r maxLengthRule) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	m := uint64(r.max)
	ref.Value.MaxLength = &m
	return nil
}
