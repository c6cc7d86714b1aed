package schema

import (
	language "github.com/neoziro/gql/internal/language"
)

// resolveNamed returns the named type for name, building it on first use.
// Built-in scalar and introspection names resolve to shared singletons
// without construction. A freshly built type enters the cache before any of
// its deferred content runs, so a reentrant lookup during construction
// observes the same instance; mutually recursive definitions need no prior
// topological sort. An unknown name yields a diagnostic and nil; callers
// substitute a placeholder of the kind their slot expects.
func (b *builder) resolveNamed(name string, pos *language.Position) NamedType {
	if t, ok := builtinTypes[name]; ok {
		return t
	}
	if t, ok := b.types[name]; ok {
		return t
	}
	node, ok := b.defs[name]
	if !ok {
		b.addDiagnostic(diagTypeNotFound(name, pos))
		return nil
	}
	return b.buildNamedType(node)
}

// resolveTypeRef strips list/non-null modifiers to the innermost name,
// resolves it, and reapplies the modifiers outward in original order.
// fallback substitutes for a name that failed to resolve.
func (b *builder) resolveTypeRef(node *language.Type, fallback NamedType) Type {
	if node.NonNull {
		inner := &language.Type{NamedType: node.NamedType, Elem: node.Elem, Position: node.Position}
		return NewNonNull(b.resolveTypeRef(inner, fallback))
	}
	if node.Elem != nil {
		return NewList(b.resolveTypeRef(node.Elem, fallback))
	}
	if t := b.resolveNamed(node.NamedType, node.Position); t != nil {
		return t
	}
	return fallback
}

// resolveInputTypeRef resolves a reference used in an input position. A
// wrong-kind result is reported but still returned, keeping the slot
// filled.
func (b *builder) resolveInputTypeRef(node *language.Type) Type {
	t := b.resolveTypeRef(node, b.placeholderScalar(innermostName(node)))
	if !IsInputType(t) {
		b.addDiagnostic(diagTypeNotInput(innermostName(node), node.Position))
	}
	return t
}

// resolveOutputTypeRef is the output-position counterpart.
func (b *builder) resolveOutputTypeRef(node *language.Type) Type {
	t := b.resolveTypeRef(node, b.placeholderScalar(innermostName(node)))
	if !IsOutputType(t) {
		b.addDiagnostic(diagTypeNotOutput(innermostName(node), node.Position))
	}
	return t
}

// resolveObjectName requires an exact object kind; on failure the slot gets
// an object-shaped placeholder so union member lists never hold a value of
// the wrong shape.
func (b *builder) resolveObjectName(name string, pos *language.Position) *Object {
	t := b.resolveNamed(name, pos)
	if t == nil {
		return b.placeholderObject(name)
	}
	if o, ok := t.(*Object); ok {
		return o
	}
	b.addDiagnostic(diagWrongKind(name, KindObject, t.Kind(), pos))
	return b.placeholderObject(name)
}

// resolveInterfaceName is the implements-list counterpart.
func (b *builder) resolveInterfaceName(name string, pos *language.Position) *Interface {
	t := b.resolveNamed(name, pos)
	if t == nil {
		return b.placeholderInterface(name)
	}
	if i, ok := t.(*Interface); ok {
		return i
	}
	b.addDiagnostic(diagWrongKind(name, KindInterface, t.Kind(), pos))
	return b.placeholderInterface(name)
}

// Placeholders are cached per kind and name so repeated failures over one
// build alias the same sentinel.

func (b *builder) placeholderScalar(name string) *Scalar {
	if t, ok := b.placeholders["scalar:"+name]; ok {
		return t.(*Scalar)
	}
	t := &Scalar{Name: name, placeholder: true}
	b.placeholders["scalar:"+name] = t
	return t
}

func (b *builder) placeholderObject(name string) *Object {
	if t, ok := b.placeholders["object:"+name]; ok {
		return t.(*Object)
	}
	t := &Object{Name: name, placeholder: true}
	b.placeholders["object:"+name] = t
	return t
}

func (b *builder) placeholderInterface(name string) *Interface {
	if t, ok := b.placeholders["interface:"+name]; ok {
		return t.(*Interface)
	}
	t := &Interface{Name: name, placeholder: true}
	b.placeholders["interface:"+name] = t
	return t
}

func innermostName(node *language.Type) string {
	for node.Elem != nil {
		node = node.Elem
	}
	return node.NamedType
}
