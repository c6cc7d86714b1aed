package schema

import (
	"testing"

	"github.com/stretchr/testify/require"

	language "github.com/neoziro/gql/internal/language"
)

func mustParse(t *testing.T, sdl string) *language.SchemaDocument {
	t.Helper()
	doc, err := language.ParseSchema("test.graphql", sdl)
	require.NoError(t, err, "SDL must parse")
	return doc
}

func buildSDL(t *testing.T, sdl string) (*Schema, []*Diagnostic) {
	t.Helper()
	return Build(mustParse(t, sdl))
}

func TestExplicitRootTypes(t *testing.T) {
	for _, tc := range []struct {
		name                       string
		sdl                        string
		query, mutation, subscript string
	}{
		{
			name:  "query only",
			sdl:   `schema { query: QR } type QR { ok: String }`,
			query: "QR",
		},
		{
			name:     "mutation only",
			sdl:      `schema { mutation: MR } type MR { ok: String }`,
			mutation: "MR",
		},
		{
			name:      "all three",
			sdl:       `schema { query: Q mutation: M subscription: S } type Q { ok: String } type M { ok: String } type S { ok: String }`,
			query:     "Q",
			mutation:  "M",
			subscript: "S",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			s, _ := buildSDL(t, tc.sdl)
			require.Equal(t, tc.query, s.QueryType)
			require.Equal(t, tc.mutation, s.MutationType)
			require.Equal(t, tc.subscript, s.SubscriptionType)
		})
	}
}

func TestExplicitRootOverridesConvention(t *testing.T) {
	s, diags := buildSDL(t, `
		schema { query: Root }
		type Root { ok: String }
		type Query { ignored: String }
	`)
	require.Empty(t, diags)
	require.Equal(t, "Root", s.QueryType)
}

func TestConventionRootTypes(t *testing.T) {
	s, diags := buildSDL(t, `
		type Query { ok: String }
		type Mutation { m: String }
	`)
	require.Empty(t, diags)
	require.Equal(t, "Query", s.QueryType)
	require.Equal(t, "Mutation", s.MutationType)
	require.Equal(t, "", s.SubscriptionType)
	require.Same(t, s.Types["Query"], s.Query())
}

func TestMissingQueryRoot(t *testing.T) {
	s, diags := buildSDL(t, `type Mutation { m: String }`)
	require.Equal(t, "", s.QueryType)
	require.Len(t, diags, 1)
	require.Equal(t, SeverityError, diags[0].Severity)
	require.Equal(t, "Schema has no query root type", diags[0].Message)
}

func TestRootMustBeObject(t *testing.T) {
	_, diags := buildSDL(t, `
		schema { query: Color }
		enum Color { RED }
	`)
	require.Len(t, diags, 1)
	require.Contains(t, diags[0].Message, "must be an Object type")
}

func TestUnresolvableExplicitRoot(t *testing.T) {
	s, diags := buildSDL(t, `
		schema { query: Nope }
		type Placeholder { ok: String }
	`)
	require.Equal(t, "Nope", s.QueryType)
	require.Len(t, diags, 1)
	require.Contains(t, diags[0].Message, `"Nope" not found`)
}

func TestDuplicateTypeName(t *testing.T) {
	s, diags := buildSDL(t, `
		type Query { ok: String }
		type Dup { a: String }
		type Dup { b: Int }
	`)
	require.Len(t, diags, 1)
	require.Contains(t, diags[0].Message, `"Dup"`)
	require.Len(t, diags[0].Locations, 2)

	// The first declaration stays canonical.
	dup := s.Types["Dup"].(*Object)
	require.Len(t, dup.Fields(), 1)
	require.NotNil(t, dup.Fields().Get("a"))
	require.Nil(t, dup.Fields().Get("b"))
}

func TestMultipleSchemaBlocks(t *testing.T) {
	s, diags := buildSDL(t, `
		schema { query: Q }
		schema { query: Q }
		schema { query: Q }
		type Q { ok: String }
	`)
	require.Equal(t, "Q", s.QueryType)
	require.Len(t, diags, 1)
	require.Equal(t, "Schema is defined more than once", diags[0].Message)
	// Cites exactly the first two blocks even with three present.
	require.Len(t, diags[0].Locations, 2)
}

func TestMutualRecursion(t *testing.T) {
	s, diags := buildSDL(t, `
		type Query { a: A }
		type A { b: B }
		type B { a: A }
	`)
	require.Empty(t, diags)

	a := s.Types["A"].(*Object)
	bViaA := a.Fields().Get("b").Type
	require.Same(t, s.Types["B"], bViaA)

	b := s.Types["B"].(*Object)
	require.Same(t, s.Types["A"], b.Fields().Get("a").Type)
}

func TestSelfRecursion(t *testing.T) {
	s, diags := buildSDL(t, `type Query { me: Query }`)
	require.Empty(t, diags)
	q := s.Types["Query"].(*Object)
	require.Same(t, q, q.Fields().Get("me").Type)
}

func TestWrapperRoundTrip(t *testing.T) {
	s, diags := buildSDL(t, `
		type Query {
			d0: String
			d1: String!
			d2: [String]
			d3: [String!]!
			d4: [[String]!]
		}
	`)
	require.Empty(t, diags)
	fields := s.Types["Query"].(*Object).Fields()

	for field, want := range map[string]string{
		"d0": "String",
		"d1": "String!",
		"d2": "[String]",
		"d3": "[String!]!",
		"d4": "[[String]!]",
	} {
		require.Equal(t, want, fields.Get(field).Type.String())
	}

	// Depth 0 resolves to the shared singleton itself.
	require.Same(t, StringType, fields.Get("d0").Type)
	// The innermost name survives any wrapping.
	require.Same(t, StringType, Named(fields.Get("d4").Type))
}

func TestUnknownFieldType(t *testing.T) {
	s, diags := buildSDL(t, `type Query { x: Bogus }`)
	require.Len(t, diags, 1)
	require.Contains(t, diags[0].Message, `"Bogus" not found`)

	x := s.Types["Query"].(*Object).Fields().Get("x")
	require.NotNil(t, x.Type)
	require.True(t, IsPlaceholder(x.Type))
	require.Equal(t, KindScalar, x.Type.Kind())
	require.Equal(t, "Bogus", Named(x.Type).TypeName())
}

func TestExtensionsAreReported(t *testing.T) {
	_, diags := buildSDL(t, `
		type Query { ok: String }
		extend type Query { more: String }
	`)
	require.Len(t, diags, 1)
	require.Equal(t, SeverityWarning, diags[0].Severity)
	require.Contains(t, diags[0].Message, `"Query"`)
}

func TestSchemaAlwaysReturned(t *testing.T) {
	s, diags := buildSDL(t, `
		type Broken { a: Missing b: AlsoMissing }
		union U = Broken | Gone
	`)
	require.NotNil(t, s)
	require.NotEmpty(t, diags)
	require.NotNil(t, s.Types["Broken"])
	require.NotNil(t, s.Types["U"])
}

func TestIndependentBuilds(t *testing.T) {
	s1, _ := buildSDL(t, `type Query { ok: String }`)
	s2, _ := buildSDL(t, `type Query { ok: String }`)
	require.NotSame(t, s1.Types["Query"], s2.Types["Query"])
}
