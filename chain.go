package validated

import "github.com/Gobd/validated/result"

// Chain runs first and, only if it succeeds, feeds its output into second
// under the same target. Use it for checks that depend on an earlier one,
// e.g. a range check that needs a parsed integer:
//
//	age := Chain(IsInteger, Between(0, 100))
func Chain[A, B, C any](first Rule[A, B], second Rule[B, C]) Rule[A, C] {
	return rule[A, C]{
		validate: func(value A, target Target) result.Validation[Errors, C] {
			return result.Bind(first.Validate(value, target), func(b B) result.Validation[Errors, C] {
				return second.Validate(b, target)
			})
		},
		describe: describeAll(first, second),
	}
}
