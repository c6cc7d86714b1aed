package schema

import (
	language "github.com/neoziro/gql/internal/language"
)

func (b *builder) buildFields(node *language.Definition) FieldList {
	fields := make(FieldList, 0, len(node.Fields))
	for _, fn := range node.Fields {
		fields = append(fields, &Field{
			Name:        fn.Name,
			Desc:        describe(fn.Description, fn.Position),
			Type:        b.resolveOutputTypeRef(fn.Type),
			Args:        b.buildArguments(fn.Arguments),
			Deprecation: b.deprecationOf(fn.Directives),
		})
	}
	return fields
}

func (b *builder) buildArguments(args language.ArgumentDefinitionList) []*InputValue {
	if len(args) == 0 {
		return nil
	}
	out := make([]*InputValue, 0, len(args))
	for _, arg := range args {
		out = append(out, b.buildInputValue(arg.Name, arg.Description, arg.Type, arg.DefaultValue, arg.Position))
	}
	return out
}

// Input-object fields carry no arguments and no deprecation; the grammar
// disallows both.
func (b *builder) buildInputFields(node *language.Definition) []*InputValue {
	out := make([]*InputValue, 0, len(node.Fields))
	for _, fn := range node.Fields {
		out = append(out, b.buildInputValue(fn.Name, fn.Description, fn.Type, fn.DefaultValue, fn.Position))
	}
	return out
}

// buildInputValue is shared by field arguments, directive arguments and
// input-object fields.
func (b *builder) buildInputValue(name, desc string, typ *language.Type, def *language.Value, pos *language.Position) *InputValue {
	iv := &InputValue{
		Name: name,
		Desc: describe(desc, pos),
		Type: b.resolveInputTypeRef(typ),
	}
	if def != nil {
		v, err := def.Value(nil)
		if err != nil {
			b.addDiagnostic(diagInvalidDefaultValue(name, err, def.Position))
		} else {
			iv.DefaultValue = v
		}
	}
	return iv
}

// deprecationOf reads a @deprecated use off a directive list. A missing
// reason argument falls back to the registered directive's declared
// default, so an explicit @deprecated definition controls the fallback.
func (b *builder) deprecationOf(list language.DirectiveList) *Deprecation {
	d := list.ForName("deprecated")
	if d == nil {
		return nil
	}
	if a := d.Arguments.ForName("reason"); a != nil {
		return &Deprecation{Reason: a.Value.Raw}
	}
	if dd := b.directives["deprecated"]; dd != nil {
		if arg := dd.Arg("reason"); arg != nil {
			if reason, ok := arg.DefaultValue.(string); ok {
				return &Deprecation{Reason: reason}
			}
		}
	}
	return &Deprecation{}
}
