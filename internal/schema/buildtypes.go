package schema

import (
	language "github.com/neoziro/gql/internal/language"
)

// One constructor per definition kind. Construction is two-phase: allocate
// the shell, cache it under its name, then fill. Cross-references live in
// deferred thunks so eager work stays limited to name, description and leaf
// data; only union members resolve eagerly.
func (b *builder) buildNamedType(node *language.Definition) NamedType {
	switch node.Kind {
	case language.Scalar:
		return b.buildScalar(node)
	case language.Object:
		return b.buildObject(node)
	case language.Interface:
		return b.buildInterface(node)
	case language.Union:
		return b.buildUnion(node)
	case language.Enum:
		return b.buildEnum(node)
	case language.InputObject:
		return b.buildInputObject(node)
	default:
		panic("unreachable")
	}
}

func (b *builder) buildScalar(node *language.Definition) *Scalar {
	t := &Scalar{Name: node.Name, Desc: describe(node.Description, node.Position)}
	b.types[node.Name] = t
	if d := node.Directives.ForName("specifiedBy"); d != nil {
		if a := d.Arguments.ForName("url"); a != nil {
			t.SpecifiedByURL = a.Value.Raw
		}
	}
	return t
}

func (b *builder) buildObject(node *language.Definition) *Object {
	t := &Object{Name: node.Name, Desc: describe(node.Description, node.Position)}
	b.types[node.Name] = t
	t.fields = deferred(func() FieldList { return b.buildFields(node) })
	t.interfaces = deferred(func() []*Interface { return b.buildInterfaces(node) })
	return t
}

func (b *builder) buildInterface(node *language.Definition) *Interface {
	t := &Interface{Name: node.Name, Desc: describe(node.Description, node.Position)}
	b.types[node.Name] = t
	t.fields = deferred(func() FieldList { return b.buildFields(node) })
	return t
}

func (b *builder) buildUnion(node *language.Definition) *Union {
	t := &Union{Name: node.Name, Desc: describe(node.Description, node.Position)}
	b.types[node.Name] = t
	for _, member := range node.Types {
		t.Members = append(t.Members, b.resolveObjectName(member, node.Position))
	}
	return t
}

func (b *builder) buildEnum(node *language.Definition) *Enum {
	t := &Enum{Name: node.Name, Desc: describe(node.Description, node.Position)}
	b.types[node.Name] = t
	for _, v := range node.EnumValues {
		t.Values = append(t.Values, &EnumValue{
			Name:        v.Name,
			Desc:        describe(v.Description, v.Position),
			Deprecation: b.deprecationOf(v.Directives),
		})
	}
	return t
}

func (b *builder) buildInputObject(node *language.Definition) *InputObject {
	t := &InputObject{Name: node.Name, Desc: describe(node.Description, node.Position)}
	b.types[node.Name] = t
	t.fields = deferred(func() []*InputValue { return b.buildInputFields(node) })
	return t
}

func (b *builder) buildInterfaces(node *language.Definition) []*Interface {
	var out []*Interface
	for _, name := range node.Interfaces {
		out = append(out, b.resolveInterfaceName(name, node.Position))
	}
	return out
}
