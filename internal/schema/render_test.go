package schema

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestRenderMinimal(t *testing.T) {
	s, diags := buildSDL(t, `type Query { ok: String }`)
	require.Empty(t, diags)

	want := `schema {
  query: Query
}

type Query {
  ok: String
}
`
	if diff := cmp.Diff(want, Render(s)); diff != "" {
		t.Errorf("rendered SDL mismatch (-want +got):\n%s", diff)
	}
}

func TestRender(t *testing.T) {
	s, diags := buildSDL(t, `
		schema {
			query: Query
		}

		type Query {
			node(id: ID!): Node
			colors: [Color!]!
		}

		interface Node {
			id: ID!
		}

		"""A color."""
		enum Color {
			RED
			GREEN @deprecated(reason: "use RED")
		}

		type User implements Node {
			id: ID!
			name: String
			friend: User
		}

		union Entity = User

		input Filter {
			limit: Int = 10
			tags: [String] = ["a", "b"]
		}

		scalar Date @specifiedBy(url: "https://scalars.example/date")

		directive @auth(role: String = "admin") on FIELD_DEFINITION
	`)
	require.Empty(t, diags)

	want := `schema {
  query: Query
}

"""
A color.
"""
enum Color {
  RED
  GREEN @deprecated(reason: "use RED")
}

scalar Date @specifiedBy(url: "https://scalars.example/date")

union Entity = User

input Filter {
  limit: Int = 10
  tags: [String] = ["a", "b"]
}

interface Node {
  id: ID!
}

type Query {
  node(id: ID!): Node
  colors: [Color!]!
}

type User implements Node {
  id: ID!
  name: String
  friend: User
}

directive @auth(role: String = "admin") on FIELD_DEFINITION
`
	if diff := cmp.Diff(want, Render(s)); diff != "" {
		t.Errorf("rendered SDL mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderNilSchema(t *testing.T) {
	require.Equal(t, "", Render(nil))
}

func TestRenderValue(t *testing.T) {
	for _, tc := range []struct {
		in   any
		want string
	}{
		{nil, "null"},
		{"x\"y", `"x\"y"`},
		{int64(-3), "-3"},
		{float64(1.5), "1.5"},
		{true, "true"},
		{[]any{int64(1), "a"}, `[1, "a"]`},
		{map[string]any{"b": int64(2), "a": int64(1)}, "{a: 1, b: 2}"},
	} {
		require.Equal(t, tc.want, renderValue(tc.in), "value %#v", tc.in)
	}
}
