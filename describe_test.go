package validated

import (
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// helper to create a fresh schema + ref for each test
func newTestSchemaRef() (*openapi3.Schema, *openapi3.SchemaRef) {
	schema := openapi3.NewSchema()
	ref := &openapi3.SchemaRef{
		Value: openapi3.NewSchema(),
	}
	return schema, ref
}

func TestDescribe_Required(t *testing.T) {
	schema, ref := newTestSchemaRef()

	require.NoError(t, Required.Describe("name", schema, ref))
	require.NoError(t, Required.Describe("email", schema, ref))

	assert.Equal(t, []string{"name", "email"}, schema.Required)
	assert.Equal(t, uint64(1), ref.Value.MinLength)
}

func TestDescribe_RequiredWithoutName(t *testing.T) {
	schema, ref := newTestSchemaRef()

	require.NoError(t, Required.Describe("", schema, ref))
	assert.Empty(t, schema.Required)
}

func TestDescribe_NotNull(t *testing.T) {
	schema, ref := newTestSchemaRef()
	ref.Value.Nullable = true

	require.NoError(t, NotNull[*string]().Describe("x", schema, ref))
	assert.False(t, ref.Value.Nullable)
}

func TestDescribe_MaxLength(t *testing.T) {
	schema, ref := newTestSchemaRef()

	require.NoError(t, MaxLength(250).Describe("name", schema, ref))
	require.NotNil(t, ref.Value.MaxLength)
	assert.Equal(t, uint64(250), *ref.Value.MaxLength)
}

func TestDescribe_Between(t *testing.T) {
	schema, ref := newTestSchemaRef()

	require.NoError(t, Between(0, 100).Describe("age", schema, ref))
	require.NotNil(t, ref.Value.Min)
	require.NotNil(t, ref.Value.Max)
	assert.Equal(t, float64(0), *ref.Value.Min)
	assert.Equal(t, float64(100), *ref.Value.Max)
}

func TestDescribe_IsInteger(t *testing.T) {
	schema, ref := newTestSchemaRef()

	require.NoError(t, IsInteger.Describe("age", schema, ref))
	assert.Equal(t, integerPattern, ref.Value.Pattern)
}

func TestDescribe_Descriptions(t *testing.T) {
	schema, ref := newTestSchemaRef()

	require.NoError(t, Containing("@").Describe("email", schema, ref))
	require.NoError(t, Describe[string]("work address").Describe("email", schema, ref))
	require.NoError(t, Check(func(string) bool { return true }, "lowercase").Describe("email", schema, ref))

	assert.Equal(t, `must contain "@" work address lowercase`, ref.Value.Description)
}

func TestDescribe_InAndExample(t *testing.T) {
	schema, ref := newTestSchemaRef()

	require.NoError(t, In("a", "b").Describe("kind", schema, ref))
	require.NoError(t, Example[string]("a").Describe("kind", schema, ref))

	assert.Equal(t, []any{"a", "b"}, ref.Value.Enum)
	assert.Equal(t, "a", ref.Value.Example)
}

func TestDescribe_OptionalOr(t *testing.T) {
	schema, ref := newTestSchemaRef()

	require.NoError(t, OptionalOr(Chain(IsInteger, Between(1, 9))).Describe("age", schema, ref))
	assert.True(t, ref.Value.Nullable)
	assert.Equal(t, integerPattern, ref.Value.Pattern)
	assert.Equal(t, float64(9), *ref.Value.Max)
}

func TestSchema(t *testing.T) {
	first := From(Chain(Required, MaxLength(10)), func(p pair) string { return p.A }, NewTarget("first", "first name"))
	second := From(OptionalOr(IsInteger), func(p pair) string { return p.B }, NewTarget("second", ""))
	r := Combine(first, second, func(a string, b Optional[int]) string { return a })

	ref, err := Schema(r)
	require.NoError(t, err)

	s := ref.Value
	assert.True(t, s.Type.Is(openapi3.TypeObject))
	assert.Equal(t, []string{"first"}, s.Required)
	require.Contains(t, s.Properties, "first")
	require.Contains(t, s.Properties, "second")

	firstProp := s.Properties["first"].Value
	assert.True(t, firstProp.Type.Is(openapi3.TypeString))
	assert.Equal(t, "first name", firstProp.Title)
	assert.Equal(t, uint64(10), *firstProp.MaxLength)

	secondProp := s.Properties["second"].Value
	assert.Empty(t, secondProp.Title)
	assert.True(t, secondProp.Nullable)
	assert.Equal(t, integerPattern, secondProp.Pattern)
}

func TestSchema_SameTargetTwice(t *testing.T) {
	target := NewTarget("email", "")
	a := From(Required, func(p pair) string { return p.A }, target)
	b := From(Containing("@"), func(p pair) string { return p.A }, target)

	ref := SchemaMust(Combine(a, b, First[string]))
	require.Len(t, ref.Value.Properties, 1)
	assert.Equal(t, `must contain "@"`, ref.Value.Properties["email"].Value.Description)
}

func TestSchema_EachDescribesItems(t *testing.T) {
	r := WithTarget(Each(MaxLength(3)), NewTarget("tags", ""))

	ref := SchemaMust(r)
	tags := ref.Value.Properties["tags"].Value
	assert.True(t, tags.Type.Is(openapi3.TypeArray))
	require.NotNil(t, tags.Items)
	assert.Equal(t, uint64(3), *tags.Items.Value.MaxLength)
}

func TestSchema_IntegerField(t *testing.T) {
	r := From(Between(1, 5), func(p pair) int { return len(p.A) }, NewTarget("size", ""))

	ref := SchemaMust(r)
	size := ref.Value.Properties["size"].Value
	assert.True(t, size.Type.Is(openapi3.TypeInteger))
	assert.Equal(t, float64(1), *size.Min)
}
