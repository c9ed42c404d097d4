// Package result provides Validation, a two-case result type that holds
// either a failure or a success value.
//
// Unlike a plain (T, error) pair, two failed validations can be combined
// without losing either error. The caller supplies the merge function:
//
//	concat := func(a, b []string) []string { return append(slices.Clone(a), b...) }
//	v := result.Combine(name, email, concat, func(n Name, e Email) Contact {
//	    return Contact{n, e}
//	})
//
// [Bind] is the dependent counterpart: it stops at the first failure because
// the next step needs the previous value.
package result
