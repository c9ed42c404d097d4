package validated

import "github.com/Gobd/validated/result"

// Combine runs first and second against the same input and merges the
// results. Both rules always run, so every violation is reported, in
// declaration order.
func Combine[A, B, C, R any](first Rule[A, B], second Rule[A, C], f func(B, C) R) Rule[A, R] {
	return rule[A, R]{
		validate: func(value A, target Target) result.Validation[Errors, R] {
			return result.Combine(
				first.Validate(value, target),
				second.Validate(value, target),
				Concat, f)
		},
		describe: describeAll(first, second),
	}
}

// Combine3 is [Combine] for three rules.
func Combine3[A, B, C, D, R any](first Rule[A, B], second Rule[A, C], third Rule[A, D], f func(B, C, D) R) Rule[A, R] {
	return rule[A, R]{
		validate: func(value A, target Target) result.Validation[Errors, R] {
			return result.Combine3(
				first.Validate(value, target),
				second.Validate(value, target),
				third.Validate(value, target),
				Concat, f)
		},
		describe: describeAll(first, second, third),
	}
}

// All runs every rule against the same input and collects the outputs in
// order. Errors of all failing rules are accumulated.
func All[A, B any](rules ...Rule[A, B]) Rule[A, []B] {
	children := make([]Describer, len(rules))
	for i, r := range rules {
		children[i] = r
	}
	return rule[A, []B]{
		validate: func(value A, target Target) result.Validation[Errors, []B] {
			vs := make([]result.Validation[Errors, B], len(rules))
			for i, r := range rules {
				vs[i] = r.Validate(value, target)
			}
			return result.CombineAll(Concat, vs...)
		},
		describe: describeAll(children...),
	}
}

// First returns its first argument. It is a convenient merge function for
// [Combine] when both rules yield the same value.
func First[A any](a, _ A) A {
	return a
}
