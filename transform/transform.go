package transform

import (
	"reflect"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// StructTrimSpace runs [strings.TrimSpace] on all string fields in the struct recursively,
// including nested structs, pointer fields, slices, and map values.
func StructTrimSpace(v any) {
	StructStringFunc(v, strings.TrimSpace)
}

// StructNFC rewrites all string fields in the struct to Unicode normalization
// form C, so visually equal names compare equal.
func StructNFC(v any) {
	StructStringFunc(v, norm.NFC.String)
}

// StructMulti runs all given functions on the struct pointer sequentially.
func StructMulti(v any, fns ...func(any)) {
	for _, f := range fns {
		f(v)
	}
}

// StructStringFunc applies f to every string field in the struct recursively.
// v must be a pointer to a struct, anything else is left untouched.
func StructStringFunc(v any, f func(string) string) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return
	}
	walk(rv.Elem(), f)
}

func walk(v reflect.Value, f func(string) string) {
	switch v.Kind() {
	case reflect.String:
		if v.CanSet() {
			v.SetString(f(v.String()))
		}
	case reflect.Struct:
		for i := range v.NumField() {
			if field := v.Field(i); field.CanSet() {
				walk(field, f)
			}
		}
	case reflect.Pointer:
		if !v.IsNil() {
			walk(v.Elem(), f)
		}
	case reflect.Slice, reflect.Array:
		for i := range v.Len() {
			walk(v.Index(i), f)
		}
	case reflect.Map:
		if v.IsNil() {
			return
		}
		iter := v.MapRange()
		for iter.Next() {
			// map values are not addressable, rewrite a copy
			cp := reflect.New(iter.Value().Type()).Elem()
			cp.Set(iter.Value())
			walk(cp, f)
			v.SetMapIndex(iter.Key(), cp)
		}
	}
}
