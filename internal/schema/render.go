package schema

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Render produces canonical SDL from the schema graph.
// Deterministic ordering: type/directive names sorted lexicographically.
// Built-in types and directives are not rendered.
func Render(s *Schema) string {
	if s == nil {
		return ""
	}
	var b strings.Builder

	if s.QueryType != "" || s.MutationType != "" || s.SubscriptionType != "" {
		renderSchemaBlock(&b, s)
	}

	typeNames := make([]string, 0, len(s.Types))
	for name := range s.Types {
		typeNames = append(typeNames, name)
	}
	sort.Strings(typeNames)

	for _, name := range typeNames {
		switch t := s.Types[name].(type) {
		case *Scalar:
			renderScalar(&b, t)
		case *Enum:
			renderEnum(&b, t)
		case *InputObject:
			renderInputObject(&b, t)
		case *Object:
			renderObject(&b, t)
		case *Interface:
			renderInterface(&b, t)
		case *Union:
			renderUnion(&b, t)
		}
	}

	directiveNames := make([]string, 0, len(s.Directives))
	for name, d := range s.Directives {
		switch d {
		case includeDirective, skipDirective, deprecatedDirective:
			continue
		default:
			directiveNames = append(directiveNames, name)
		}
	}
	sort.Strings(directiveNames)
	for _, name := range directiveNames {
		renderDirective(&b, s.Directives[name])
	}

	return strings.TrimRight(b.String(), "\n") + "\n"
}

func renderSchemaBlock(b *strings.Builder, s *Schema) {
	b.WriteString("schema {\n")
	if s.QueryType != "" {
		b.WriteString("  query: " + s.QueryType + "\n")
	}
	if s.MutationType != "" {
		b.WriteString("  mutation: " + s.MutationType + "\n")
	}
	if s.SubscriptionType != "" {
		b.WriteString("  subscription: " + s.SubscriptionType + "\n")
	}
	b.WriteString("}\n\n")
}

func renderDescription(b *strings.Builder, desc string) {
	if desc == "" {
		return
	}
	b.WriteString("\"\"\"\n")
	b.WriteString(strings.ReplaceAll(desc, "\"", "\\\""))
	b.WriteString("\n\"\"\"\n")
}

func renderScalar(b *strings.Builder, t *Scalar) {
	renderDescription(b, t.Desc)
	b.WriteString("scalar ")
	b.WriteString(t.Name)
	if t.SpecifiedByURL != "" {
		b.WriteString(" @specifiedBy(url: \"")
		b.WriteString(t.SpecifiedByURL)
		b.WriteString("\")")
	}
	b.WriteString("\n\n")
}

func renderEnum(b *strings.Builder, t *Enum) {
	renderDescription(b, t.Desc)
	b.WriteString("enum ")
	b.WriteString(t.Name)
	b.WriteString(" {\n")
	for _, v := range t.Values {
		renderDescription(b, v.Desc)
		b.WriteString("  ")
		b.WriteString(v.Name)
		renderDeprecation(b, v.Deprecation)
		b.WriteString("\n")
	}
	b.WriteString("}\n\n")
}

func renderInputObject(b *strings.Builder, t *InputObject) {
	renderDescription(b, t.Desc)
	b.WriteString("input ")
	b.WriteString(t.Name)
	b.WriteString(" {\n")
	for _, f := range t.InputFields() {
		renderDescription(b, f.Desc)
		b.WriteString("  ")
		b.WriteString(f.Name)
		b.WriteString(": ")
		b.WriteString(f.Type.String())
		if f.DefaultValue != nil {
			b.WriteString(" = ")
			b.WriteString(renderValue(f.DefaultValue))
		}
		b.WriteString("\n")
	}
	b.WriteString("}\n\n")
}

func renderObject(b *strings.Builder, t *Object) {
	renderDescription(b, t.Desc)
	b.WriteString("type ")
	b.WriteString(t.Name)
	renderImplements(b, t.Interfaces())
	b.WriteString(" {\n")
	for _, f := range t.Fields() {
		renderField(b, f)
	}
	b.WriteString("}\n\n")
}

func renderInterface(b *strings.Builder, t *Interface) {
	renderDescription(b, t.Desc)
	b.WriteString("interface ")
	b.WriteString(t.Name)
	b.WriteString(" {\n")
	for _, f := range t.Fields() {
		renderField(b, f)
	}
	b.WriteString("}\n\n")
}

func renderUnion(b *strings.Builder, t *Union) {
	renderDescription(b, t.Desc)
	b.WriteString("union ")
	b.WriteString(t.Name)
	b.WriteString(" = ")
	for i, m := range t.Members {
		if i > 0 {
			b.WriteString(" | ")
		}
		b.WriteString(m.Name)
	}
	b.WriteString("\n\n")
}

func renderImplements(b *strings.Builder, interfaces []*Interface) {
	if len(interfaces) == 0 {
		return
	}
	b.WriteString(" implements ")
	for i, iface := range interfaces {
		if i > 0 {
			b.WriteString(" & ")
		}
		b.WriteString(iface.Name)
	}
}

func renderField(b *strings.Builder, f *Field) {
	renderDescription(b, f.Desc)
	b.WriteString("  ")
	b.WriteString(f.Name)
	renderArguments(b, f.Args)
	b.WriteString(": ")
	b.WriteString(f.Type.String())
	renderDeprecation(b, f.Deprecation)
	b.WriteString("\n")
}

func renderArguments(b *strings.Builder, args []*InputValue) {
	if len(args) == 0 {
		return
	}
	b.WriteString("(")
	for i, arg := range args {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(arg.Name)
		b.WriteString(": ")
		b.WriteString(arg.Type.String())
		if arg.DefaultValue != nil {
			b.WriteString(" = ")
			b.WriteString(renderValue(arg.DefaultValue))
		}
	}
	b.WriteString(")")
}

func renderDeprecation(b *strings.Builder, d *Deprecation) {
	if d == nil {
		return
	}
	b.WriteString(" @deprecated")
	if d.Reason != "" {
		b.WriteString("(reason: \"")
		b.WriteString(d.Reason)
		b.WriteString("\")")
	}
}

func renderDirective(b *strings.Builder, d *Directive) {
	renderDescription(b, d.Desc)
	b.WriteString("directive @")
	b.WriteString(d.Name)
	renderArguments(b, d.Args)
	if d.Repeatable {
		b.WriteString(" repeatable")
	}
	b.WriteString(" on ")
	b.WriteString(strings.Join(d.Locations, " | "))
	b.WriteString("\n\n")
}

// renderValue renders a default value for SDL output.
func renderValue(value any) string {
	switch v := value.(type) {
	case nil:
		return "null"
	case string:
		return strconv.Quote(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	case []any:
		parts := make([]string, len(v))
		for i, item := range v {
			parts[i] = renderValue(item)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, len(keys))
		for i, k := range keys {
			parts[i] = k + ": " + renderValue(v[k])
		}
		return "{" + strings.Join(parts, ", ") + "}"
	default:
		return fmt.Sprint(v)
	}
}
