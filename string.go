package validated

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Gobd/validated/result"
	"github.com/asaskevich/govalidator"
	"github.com/getkin/kin-openapi/openapi3"
)

type containingRule struct {
	needle string
}

// Containing checks that a string contains needle.
func Containing(needle string) Rule[string, string] {
	return containingRule{needle}
}

func (r containingRule) Validate(value string, target Target) result.Validation[Errors, string] {
	if !govalidator.Contains(value, r.needle) {
		return fail[string](target, "should contain "+r.needle)
	}
	return pass(value)
}

func (r containingRule) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	appendDescription(ref, fmt.Sprintf("must contain %q", r.needle))
	return nil
}

type integerRule struct{}

// integerPattern matches what [IsInteger] accepts, leading zeros included.
const integerPattern = `^\s*[-+]?[0-9]+\s*$`

// IsInteger checks that a string is a decimal integer and yields its value.
// Leading zeros are allowed: "007" is 7.
var IsInteger Rule[string, int] = integerRule{}

func (integerRule) Validate(value string, target Target) result.Validation[Errors, int] {
	s := strings.TrimSpace(value)
	if !govalidator.Matches(s, integerPattern) {
		return fail[int](target, "must be an integer")
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return fail[int](target, "must be an integer")
	}
	return pass(n)
}

func (integerRule) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	ref.Value.Pattern = integerPattern
	return nil
}

// appendDescription adds desc to the schema description, space separated.
func appendDescription(ref *openapi3.SchemaRef, desc string) {
	if desc == "" {
		return
	}
	if ref.Value.Description != "" && !strings.HasSuffix(ref.Value.Description, " ") {
		ref.Value.Description += " "
	}
	ref.Value.Description += desc
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
