package validated

import (
	"fmt"

	"github.com/Gobd/validated/result"
	"github.com/getkin/kin-openapi/openapi3"
)

// Number is the set of types [Between] accepts.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

type betweenRule[N Number] struct {
	lo, hi N
}

// Between checks that a number lies in [lo, hi]. NaN is never in range.
func Between[N Number](lo, hi N) Rule[N, N] {
	return betweenRule[N]{lo, hi}
}

func (r betweenRule[N]) Validate(value N, target Target) result.Validation[Errors, N] {
	if !(value >= r.lo && value <= r.hi) {
		return fail[N](target, fmt.Sprintf("must be between %v and %v", r.lo, r.hi))
	}
	return pass(value)
}

func (r betweenRule[N]) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	lo, hi := float64(r.lo), float64(r.hi)
	ref.Value.Min = &lo
	ref.Value.Max = &hi
	return nil
}
