package person

import (
	"encoding/json"
	"io"

	v "github.com/Gobd/validated"
	"github.com/Gobd/validated/result"
)

const (
	maxNameLength  = 250
	maxEmailLength = 100
	minAge         = 0
	maxAge         = 100
)

// Rules returns the rule that turns a [Form] into a [Person]. Name
// uniqueness is checked against dir, and only once both name parts are
// valid.
func Rules(dir Directory) v.Rule[Form, Person] {
	name := v.Chain(v.Required, v.MaxLength(maxNameLength))

	firstName := v.From(name, func(f Form) string { return f.FirstName }, FirstNameTarget)
	lastName := v.From(name, func(f Form) string { return f.LastName }, LastNameTarget)

	fullName := v.Chain(
		v.Combine(firstName, lastName, func(first, last string) Name {
			return Name{First: first, Last: last}
		}),
		v.Unique[Name, int64](dir, Name.String),
	)

	email := v.From(
		v.Map(
			v.Chain(
				v.Required,
				v.Combine(v.MaxLength(maxEmailLength), v.Containing("@"), v.First[string]),
			),
			func(s string) Email { return Email(s) },
		),
		func(f Form) string { return f.Email },
		EmailTarget,
	)

	age := v.From(
		v.OptionalOr(v.Chain(v.IsInteger, v.Between(minAge, maxAge))),
		func(f Form) string { return f.Age },
		AgeTarget,
	)

	return v.Combine3(fullName, email, age, func(n Name, e Email, a v.Optional[int]) Person {
		return Person{Name: n, Email: e, Age: a}
	})
}

// Validate checks form against dir.
func Validate(dir Directory, form Form) result.Validation[v.Errors, Person] {
	return Rules(dir).Validate(form, FormTarget)
}

// Decode reads a JSON form from r, normalizes it and validates it. A
// validation failure is returned as [v.Errors].
func Decode(r io.Reader, dir Directory) (Person, error) {
	var form Form
	if err := json.NewDecoder(r).Decode(&form); err != nil {
		return Person{}, err
	}
	form.Normalize()
	return v.Result(Validate(dir, form))
}
