// Package schema links a parsed SDL document into a validated, fully
// connected named-type graph for linting and static analysis. It collects
// every discoverable problem in one pass instead of stopping at the first
// error, and never executes anything against the result.
package schema

import (
	language "github.com/neoziro/gql/internal/language"
)

type builder struct {
	defs     map[string]*language.Definition // canonical (first) definition per name
	defOrder []string

	occurrences map[string][]*language.Position
	dupOrder    []string

	schemaDef *language.SchemaDefinition
	rootPos   map[language.Operation]*language.Position

	types        map[string]NamedType
	placeholders map[string]NamedType
	directives   map[string]*Directive
	diagnostics  []*Diagnostic
}

// Build links doc into a schema graph. The schema is always returned, if
// degraded: unresolved references become placeholders and every problem is
// reported as a diagnostic. Builds share no state; the type cache lives and
// dies with this call.
func Build(doc *language.SchemaDocument) (*Schema, []*Diagnostic) {
	b := &builder{
		defs:         make(map[string]*language.Definition),
		occurrences:  make(map[string][]*language.Position),
		rootPos:      make(map[language.Operation]*language.Position),
		types:        make(map[string]NamedType),
		placeholders: make(map[string]NamedType),
		directives:   make(map[string]*Directive),
	}

	b.partition(doc)
	b.buildDirectiveDefinitions(doc)

	s := &Schema{Types: b.types, Directives: b.directives}
	b.resolveRootNames(s)

	// Resolve every registered definition and pull its deferred members so
	// the whole document is walked now. Deferred-but-memoized field maps
	// guarantee each transitive problem surfaces exactly once.
	for _, name := range b.defOrder {
		b.force(b.resolveNamed(name, b.defs[name].Position))
	}

	b.checkRoots(s)
	return s, b.diagnostics
}

// partition buckets definitions by name in one scan, tracking every
// occurrence for duplicate reporting. The first occurrence stays canonical.
func (b *builder) partition(doc *language.SchemaDocument) {
	for _, node := range doc.Definitions {
		if _, ok := b.defs[node.Name]; !ok {
			b.defs[node.Name] = node
			b.defOrder = append(b.defOrder, node.Name)
		} else if len(b.occurrences[node.Name]) == 1 {
			b.dupOrder = append(b.dupOrder, node.Name)
		}
		b.occurrences[node.Name] = append(b.occurrences[node.Name], node.Position)
	}
	for _, name := range b.dupOrder {
		b.addDiagnostic(diagDuplicateTypeName(name, b.occurrences[name]))
	}

	for i, sd := range doc.Schema {
		switch i {
		case 0:
			b.schemaDef = sd
		case 1:
			// Cites exactly the first two blocks, even with more present.
			b.addDiagnostic(diagSchemaRedefined(doc.Schema[0].Position, sd.Position))
		}
	}

	for _, ext := range doc.Extensions {
		b.addDiagnostic(diagExtensionIgnored(ext.Name, ext.Position))
	}
	for _, ext := range doc.SchemaExtension {
		b.addDiagnostic(diagSchemaExtensionIgnored(ext.Position))
	}
}

// resolveRootNames determines root operation type names: an explicit schema
// block wins; otherwise conventionally named types are picked up when they
// exist.
func (b *builder) resolveRootNames(s *Schema) {
	if b.schemaDef != nil {
		for _, op := range b.schemaDef.OperationTypes {
			b.rootPos[op.Operation] = op.Position
			switch op.Operation {
			case language.Query:
				s.QueryType = op.Type
			case language.Mutation:
				s.MutationType = op.Type
			case language.Subscription:
				s.SubscriptionType = op.Type
			}
		}
		return
	}
	if _, ok := b.defs["Query"]; ok {
		s.QueryType = "Query"
	}
	if _, ok := b.defs["Mutation"]; ok {
		s.MutationType = "Mutation"
	}
	if _, ok := b.defs["Subscription"]; ok {
		s.SubscriptionType = "Subscription"
	}
}

func (b *builder) checkRoots(s *Schema) {
	if s.QueryType == "" {
		b.addDiagnostic(diagMissingQueryRoot())
	} else {
		b.checkRoot("Query", s.QueryType, b.rootPos[language.Query])
	}
	b.checkRoot("Mutation", s.MutationType, b.rootPos[language.Mutation])
	b.checkRoot("Subscription", s.SubscriptionType, b.rootPos[language.Subscription])
}

func (b *builder) checkRoot(op, name string, pos *language.Position) {
	if name == "" {
		return
	}
	t := b.resolveNamed(name, pos)
	if t == nil {
		return // not-found already reported
	}
	if t.Kind() != KindObject {
		b.addDiagnostic(diagRootNotObject(op, name, pos))
	}
}

// force pulls the deferred members of t so their diagnostics are raised in
// this pass rather than on first later access.
func (b *builder) force(t NamedType) {
	switch t := t.(type) {
	case *Object:
		t.Fields()
		t.Interfaces()
	case *Interface:
		t.Fields()
	case *InputObject:
		t.InputFields()
	}
}
