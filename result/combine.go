package result

// Map applies f to the success value of v. A failure is returned with the
// same error.
func Map[E, T, U any](v Validation[E, T], f func(T) U) Validation[E, U] {
	if !v.ok {
		return Validation[E, U]{err: v.err}
	}
	return Pure[E](f(v.value))
}

// MapFail applies f to the failure value of v. A success passes through.
func MapFail[E, F, T any](v Validation[E, T], f func(E) F) Validation[F, T] {
	if v.ok {
		return Validation[F, T]{value: v.value, ok: true}
	}
	return Fail[F, T](f(v.err))
}

// Bind feeds the success value of v into f. A failure short-circuits: f is
// never called.
func Bind[E, T, U any](v Validation[E, T], f func(T) Validation[E, U]) Validation[E, U] {
	if !v.ok {
		return Validation[E, U]{err: v.err}
	}
	return f(v.value)
}

// Fold reduces v to a single value by calling onFail or onSuccess.
func Fold[E, T, R any](v Validation[E, T], onFail func(E) R, onSuccess func(T) R) R {
	if v.ok {
		return onSuccess(v.value)
	}
	return onFail(v.err)
}

// Combine merges two independent validations. Both successes are merged with
// mergeSuccesses; a single failure passes through; two failures are merged
// with mergeErrors, first before second.
func Combine[E, A, B, R any](
	first Validation[E, A],
	second Validation[E, B],
	mergeErrors func(E, E) E,
	mergeSuccesses func(A, B) R,
) Validation[E, R] {
	switch {
	case first.ok && second.ok:
		return Pure[E](mergeSuccesses(first.value, second.value))
	case first.ok:
		return Validation[E, R]{err: second.err}
	case second.ok:
		return Validation[E, R]{err: first.err}
	default:
		return Fail[E, R](mergeErrors(first.err, second.err))
	}
}

// Combine3 merges three independent validations left to right using the
// same pairwise rule as [Combine].
func Combine3[E, A, B, C, R any](
	first Validation[E, A],
	second Validation[E, B],
	third Validation[E, C],
	mergeErrors func(E, E) E,
	mergeSuccesses func(A, B, C) R,
) Validation[E, R] {
	partial := Combine(first, second, mergeErrors, func(a A, b B) func(C) R {
		return func(c C) R { return mergeSuccesses(a, b, c) }
	})
	return Combine(partial, third, mergeErrors, func(f func(C) R, c C) R {
		return f(c)
	})
}

// CombineAll merges any number of validations of the same type. The
// successes are collected in order; failures are folded left to right
// with mergeErrors.
func CombineAll[E, T any](mergeErrors func(E, E) E, vs ...Validation[E, T]) Validation[E, []T] {
	acc := Pure[E](make([]T, 0, len(vs)))
	for _, v := range vs {
		acc = Combine(acc, v, mergeErrors, func(ts []T, t T) []T {
			return append(ts, t)
		})
	}
	return acc
}
