package validated

import (
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequired(t *testing.T) {
	tests := []struct {
		in      string
		wantErr bool
	}{
		{in: "a"},
		{in: " a "},
		{in: "", wantErr: true},
		{in: " ", wantErr: true},
		{in: "\t\n", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%q", tt.in), func(t *testing.T) {
			got := Required.Validate(tt.in, testField)
			if tt.wantErr {
				assert.Equal(t, Errors{"field: cannot be empty"}, got.Fail())
				return
			}
			// The value is not trimmed.
			assert.Equal(t, tt.in, got.Success())
		})
	}
}

func TestNotNull(t *testing.T) {
	var nilPtr *pair
	assert.Equal(t, Errors{"field: cannot be null"}, NotNull[*pair]().Validate(nilPtr, testField).Fail())
	assert.Equal(t, Errors{"field: cannot be null"}, NotNull[any]().Validate(nil, testField).Fail())

	p := &pair{A: "x"}
	assert.Same(t, p, NotNull[*pair]().Validate(p, testField).Success())
	assert.Equal(t, "", NotNull[string]().Validate("", testField).Success())

	var nilSlice []int
	var nilMap map[string]int
	assert.Equal(t, Errors{"field: cannot be null"}, NotNull[[]int]().Validate(nilSlice, testField).Fail())
	assert.Equal(t, Errors{"field: cannot be null"}, NotNull[map[string]int]().Validate(nilMap, testField).Fail())
	assert.Equal(t, []int{}, NotNull[[]int]().Validate([]int{}, testField).Success())
}

func TestMaxLength(t *testing.T) {
	r := MaxLength(5)
	assert.True(t, r.Validate("", testField).IsSuccess())
	assert.True(t, r.Validate("héllo", testField).IsSuccess(), "counts runes, not bytes")
	assert.Equal(t,
		Errors{"field: has exceeded max length of 5 characters"},
		r.Validate("héllo!", testField).Fail())

	long := strings.Repeat("x", 250)
	assert.True(t, MaxLength(250).Validate(long, testField).IsSuccess())
	assert.True(t, MaxLength(250).Validate(long+"x", testField).IsFail())
}

func TestContaining(t *testing.T) {
	r := Containing("@")
	assert.Equal(t, "a@b", r.Validate("a@b", testField).Success())
	assert.Equal(t, Errors{"field: should contain @"}, r.Validate("ab", testField).Fail())
	assert.Equal(t, Errors{"field: should contain @"}, r.Validate("", testField).Fail())
}

func TestIsInteger(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{in: "0", want: 0},
		{in: "42", want: 42},
		{in: "-7", want: -7},
		{in: " 8 ", want: 8},
		{in: "007", want: 7},
		{in: "030", want: 30},
		{in: "+5", want: 5},
		{in: "-0012", want: -12},
		{in: "", wantErr: true},
		{in: "1.5", wantErr: true},
		{in: "+", wantErr: true},
		{in: "0x10", wantErr: true},
		{in: "abc", wantErr: true},
		{in: "12a", wantErr: true},
		{in: "99999999999999999999999", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := IsInteger.Validate(tt.in, testField)
			if tt.wantErr {
				assert.Equal(t, Errors{"field: must be an integer"}, got.Fail())
				return
			}
			require.True(t, got.IsSuccess())
			assert.Equal(t, tt.want, got.Success())
		})
	}
}

func TestBetween(t *testing.T) {
	r := Between(0, 100)
	for _, n := range []int{0, 1, 50, 100} {
		assert.Equal(t, n, r.Validate(n, testField).Success())
	}
	for _, n := range []int{-1, 101, 150} {
		assert.Equal(t, Errors{"field: must be between 0 and 100"}, r.Validate(n, testField).Fail())
	}

	f := Between(0.5, 5.5)
	assert.True(t, f.Validate(5.5, testField).IsSuccess())
	assert.Equal(t, Errors{"field: must be between 0.5 and 5.5"}, f.Validate(5.6, testField).Fail())
	assert.Equal(t, Errors{"field: must be between 0.5 and 5.5"}, f.Validate(math.NaN(), testField).Fail())
	assert.Equal(t, Errors{"field: must be between 0.5 and 5.5"}, f.Validate(math.Inf(1), testField).Fail())
}

func TestIn(t *testing.T) {
	r := In("ach", "cc", "wire")
	assert.Equal(t, "cc", r.Validate("cc", testField).Success())
	assert.Equal(t,
		Errors{"field: must be one of 'ach', 'cc', 'wire' got 'cash'"},
		r.Validate("cash", testField).Fail())
}

func TestUnique(t *testing.T) {
	taken := map[string]int{"jan": 1}
	finder := FinderFunc[string, int](func(k string) (int, bool) {
		id, ok := taken[k]
		return id, ok
	})
	r := Unique[string, int](finder, func(s string) string { return "user " + s })

	assert.Equal(t, "piet", r.Validate("piet", testField).Success())
	assert.Equal(t, Errors{"field: user jan already exists"}, r.Validate("jan", testField).Fail())
}

func TestCheck(t *testing.T) {
	adult := Check(func(n int) bool { return n >= 18 }, "must be an adult")
	assert.Equal(t, 30, adult.Validate(30, testField).Success())
	assert.Equal(t, Errors{"field: must be an adult"}, adult.Validate(3, testField).Fail())
}

func TestDocumentationRulesPass(t *testing.T) {
	assert.Equal(t, "x", Describe[string]("anything").Validate("x", testField).Success())
	assert.Equal(t, 3, Example[int](42).Validate(3, testField).Success())
}

func TestOptional(t *testing.T) {
	s := Some(3)
	n, ok := s.Get()
	assert.True(t, ok)
	assert.Equal(t, 3, n)
	assert.Equal(t, "Some(3)", s.String())
	assert.Equal(t, 3, s.OrElse(9))

	var none Optional[int]
	assert.Equal(t, None[int](), none)
	assert.False(t, none.IsPresent())
	assert.Equal(t, "None", none.String())
	assert.Equal(t, 9, none.OrElse(9))
}

func TestOptionalJSON(t *testing.T) {
	b, err := Some("x").MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `"x"`, string(b))

	b, err = None[string]().MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, "null", string(b))

	var o Optional[int]
	require.NoError(t, o.UnmarshalJSON([]byte("12")))
	assert.Equal(t, Some(12), o)
	require.NoError(t, o.UnmarshalJSON([]byte("null")))
	assert.False(t, o.IsPresent())
	require.Error(t, o.UnmarshalJSON([]byte(`"twelve"`)))
}
