// Package transform rewrites the string fields of a struct in place. It is
// used to normalize raw forms before they are validated.
package transform
