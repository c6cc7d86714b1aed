package schema

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuiltinScalarSingletons(t *testing.T) {
	s, diags := buildSDL(t, `type Query { ok: String n: Int }`)
	require.Empty(t, diags)

	fields := s.Types["Query"].(*Object).Fields()
	require.Same(t, StringType, fields.Get("ok").Type)
	require.Same(t, IntType, fields.Get("n").Type)
	require.Same(t, StringType, s.Resolve("String"))

	// Builds never claim built-ins as document types.
	require.Nil(t, s.Types["String"])
}

func TestIntrospectionTypesResolvable(t *testing.T) {
	s, _ := buildSDL(t, `type Query { ok: String }`)

	schemaType := s.Resolve("__Schema")
	require.NotNil(t, schemaType)
	require.Equal(t, KindObject, schemaType.Kind())
	require.NotNil(t, schemaType.(*Object).Fields().Get("queryType"))

	kind := s.Resolve("__TypeKind")
	require.NotNil(t, kind)
	require.Equal(t, KindEnum, kind.Kind())
	require.NotNil(t, kind.(*Enum).Value("NON_NULL"))
}

func TestUnionMemberDegradation(t *testing.T) {
	s, diags := buildSDL(t, `
		type Query { u: U }
		union U = A | Missing | Color
		type A { id: ID }
		enum Color { RED }
	`)
	require.Len(t, diags, 2)
	require.Contains(t, diags[0].Message, `"Missing" not found`)
	require.Contains(t, diags[1].Message, `"Color" is ENUM`)

	u := s.Types["U"].(*Union)
	require.Len(t, u.Members, 3)
	require.Same(t, s.Types["A"], u.Members[0])
	require.True(t, IsPlaceholder(u.Members[1]))
	require.Equal(t, "Missing", u.Members[1].TypeName())
	require.True(t, IsPlaceholder(u.Members[2]))
	require.Equal(t, "Color", u.Members[2].TypeName())
}

func TestImplementsWrongKind(t *testing.T) {
	s, diags := buildSDL(t, `
		type Query { ok: String }
		type X implements Color { id: ID }
		enum Color { RED }
	`)
	require.Len(t, diags, 1)
	require.Contains(t, diags[0].Message, `"Color" is ENUM, expected INTERFACE`)

	interfaces := s.Types["X"].(*Object).Interfaces()
	require.Len(t, interfaces, 1)
	require.True(t, IsPlaceholder(interfaces[0]))
}

func TestInputPositionWrongKind(t *testing.T) {
	s, diags := buildSDL(t, `type Query { ok(filter: Query): String }`)
	require.Len(t, diags, 1)
	require.Contains(t, diags[0].Message, `"Query"`)

	// The real type stays in the slot; only the diagnostic marks the misuse.
	arg := s.Types["Query"].(*Object).Fields().Get("ok").Args[0]
	require.Same(t, s.Types["Query"], arg.Type)
}

func TestOutputPositionWrongKind(t *testing.T) {
	s, diags := buildSDL(t, `
		type Query { ok: In }
		input In { a: String }
	`)
	require.Len(t, diags, 1)
	require.Contains(t, diags[0].Message, `"In"`)
	require.Same(t, s.Types["In"], s.Types["Query"].(*Object).Fields().Get("ok").Type)
}

func TestPlaceholderAliasing(t *testing.T) {
	s, diags := buildSDL(t, `type Query { a: Gone b: Gone }`)
	// One diagnostic per reference site.
	require.Len(t, diags, 2)

	fields := s.Types["Query"].(*Object).Fields()
	require.Same(t, fields.Get("a").Type, fields.Get("b").Type)
}

func TestNonNullOfNonNullPanics(t *testing.T) {
	require.Panics(t, func() {
		NewNonNull(NewNonNull(StringType))
	})
}

func TestAbstractTypesNotExecutable(t *testing.T) {
	s, diags := buildSDL(t, `
		type Query { n: Node e: Entity }
		interface Node { id: ID! }
		union Entity = Query
	`)
	require.Empty(t, diags)

	_, err := s.Types["Node"].(*Interface).ResolveConcrete(nil)
	require.Error(t, err)
	_, err = s.Types["Entity"].(*Union).ResolveConcrete(nil)
	require.Error(t, err)
}

func TestCustomScalarInert(t *testing.T) {
	s, diags := buildSDL(t, `
		type Query { when: Date }
		scalar Date @specifiedBy(url: "https://scalars.example/date")
	`)
	require.Empty(t, diags)

	date := s.Types["Date"].(*Scalar)
	require.Equal(t, "https://scalars.example/date", date.SpecifiedByURL)
	require.False(t, IsPlaceholder(date))

	v, err := date.Serialize(42)
	require.NoError(t, err)
	require.Equal(t, 42, v)
	v, err = date.ParseValue("2026-08-24")
	require.NoError(t, err)
	require.Equal(t, "2026-08-24", v)
}
