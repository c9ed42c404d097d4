// Package person validates a raw person form into a [Person] using the rules
// of package validated. It serves as the reference composition of the rule
// algebra: independent fields accumulate errors, dependent checks on the
// same field short-circuit.
package person

import (
	v "github.com/Gobd/validated"
	"github.com/Gobd/validated/transform"
)

// Targets of the person form.
var (
	FormTarget      = v.NewTarget("form", "form")
	FirstNameTarget = v.NewTarget("firstName", "first name")
	LastNameTarget  = v.NewTarget("lastName", "last name")
	EmailTarget     = v.NewTarget("email", "email")
	AgeTarget       = v.NewTarget("age", "age")
)

// Form is the unvalidated input, as submitted.
type Form struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Age       string `json:"age"`
}

// Normalize trims surrounding whitespace from every field and brings it to
// Unicode normalization form C.
func (f *Form) Normalize() {
	transform.StructMulti(f, transform.StructTrimSpace, transform.StructNFC)
}

// Name is a person's full name. It is the key of a [Directory].
type Name struct {
	First string `json:"first"`
	Last  string `json:"last"`
}

func (n Name) String() string {
	return n.First + " " + n.Last
}

// Email is a validated email address.
type Email string

// Person is the validated result of a [Form].
type Person struct {
	Name  Name            `json:"name"`
	Email Email           `json:"email"`
	Age   v.Optional[int] `json:"age"`
}
