package schema

import (
	language "github.com/neoziro/gql/internal/language"
)

// buildDirectiveDefinitions builds one Directive per explicit definition,
// then injects each built-in only when no explicit directive of that name
// exists. Explicit definitions shadow built-ins silently.
func (b *builder) buildDirectiveDefinitions(doc *language.SchemaDocument) {
	for _, node := range doc.Directives {
		if _, ok := b.directives[node.Name]; ok {
			b.addDiagnostic(diagDirectiveRedefined(node.Name, node.Position))
			continue
		}

		d := &Directive{
			Name:       node.Name,
			Desc:       describe(node.Description, node.Position),
			Repeatable: node.IsRepeatable,
			Locations:  make([]string, len(node.Locations)),
		}
		for i, loc := range node.Locations {
			d.Locations[i] = string(loc)
		}
		for _, arg := range node.Arguments {
			d.Args = append(d.Args, b.buildInputValue(arg.Name, arg.Description, arg.Type, arg.DefaultValue, arg.Position))
		}
		b.directives[node.Name] = d
	}

	for _, d := range builtinDirectives {
		if _, ok := b.directives[d.Name]; !ok {
			b.directives[d.Name] = d
		}
	}
}
