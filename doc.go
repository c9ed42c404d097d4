// Package validated validates structured input field by field and reports
// every independent violation at once.
//
// A [Rule] turns a value and a [Target] into a result.Validation holding
// either the validated output or the [Errors] it violated. Rules are built
// from small leaves and combined:
//
//	name := Chain(Required, MaxLength(250))
//	firstName := From(name, func(f Form) string { return f.FirstName }, FirstNameTarget)
//	lastName := From(name, func(f Form) string { return f.LastName }, LastNameTarget)
//	full := Combine(firstName, lastName, NewName)
//
// [Combine], [Combine3] and [All] run their rules independently and
// accumulate errors in declaration order. [Chain] stops at the first
// failure, for checks that only make sense once an earlier one passed.
//
// Every rule also documents itself on an OpenAPI schema; see [Schema].
//
// Sub-packages:
//   - result – the Validation result type and its accumulating combine
//   - openapi – OpenAPI documents whose request bodies are described by rules
//   - transform – in-place normalization of a form's string fields
//   - person – a complete form validator built from the rules in this package
package validated
