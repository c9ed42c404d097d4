package validated

import (
	"github.com/Gobd/validated/result"
	"github.com/getkin/kin-openapi/openapi3"
)

// Finder looks up the identifier stored under key.
type Finder[K, ID any] interface {
	Find(key K) (ID, bool)
}

// FinderFunc adapts a function to a Finder.
type FinderFunc[K, ID any] func(key K) (ID, bool)

// Find calls f.
func (f FinderFunc[K, ID]) Find(key K) (ID, bool) {
	return f(key)
}

type uniqueRule[K, ID any] struct {
	finder Finder[K, ID]
	name   func(K) string
}

// Unique checks that finder has no entry for the value. name renders the
// value in the "already exists" message.
func Unique[K, ID any](finder Finder[K, ID], name func(K) string) Rule[K, K] {
	return uniqueRule[K, ID]{finder: finder, name: name}
}

func (r uniqueRule[K, ID]) Validate(value K, target Target) result.Validation[Errors, K] {
	if _, found := r.finder.Find(value); found {
		return fail[K](target, r.name(value)+" already exists")
	}
	return pass(value)
}

func (r uniqueRule[K, ID]) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	appendDescription(ref, "must not already exist")
	return nil
}
