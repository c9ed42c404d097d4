package validated

import (
	"slices"
	"strings"

	"github.com/Gobd/validated/result"
)

// Errors is the ordered list of violation messages a failed rule reports.
// It implements the error interface.
type Errors []string

func (e Errors) Error() string {
	return strings.Join(e, "; ")
}

// Concat appends b to a without modifying either. It is the merge function
// every accumulating combinator in this package uses.
func Concat(a, b Errors) Errors {
	out := make(Errors, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}

// Has reports whether msg is one of the messages.
func (e Errors) Has(msg string) bool {
	return slices.Contains(e, msg)
}

// Result converts v to Go's (value, error) convention. The error is the
// accumulated [Errors] of a failed validation.
func Result[T any](v result.Validation[Errors, T]) (T, error) {
	if t, ok := v.Get(); ok {
		return t, nil
	}
	var zero T
	return zero, v.Fail()
}
