package validated

import "github.com/Gobd/validated/result"

// Map post-processes the success value of r with f. Failures are reported
// unchanged.
func Map[A, B, C any](r Rule[A, B], f func(B) C) Rule[A, C] {
	return rule[A, C]{
		validate: func(value A, target Target) result.Validation[Errors, C] {
			return result.Map(r.Validate(value, target), f)
		},
		describe: r.Describe,
	}
}

// ContraMap adapts r to a new input type by transforming the input with f
// before validating it.
func ContraMap[C, A, B any](r Rule[A, B], f func(C) A) Rule[C, B] {
	return rule[C, B]{
		validate: func(value C, target Target) result.Validation[Errors, B] {
			return r.Validate(f(value), target)
		},
		describe: r.Describe,
	}
}
