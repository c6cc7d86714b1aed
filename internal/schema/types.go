package schema

import "errors"

// TypeKind discriminates resolved types.
type TypeKind string

const (
	KindScalar      TypeKind = "SCALAR"
	KindObject      TypeKind = "OBJECT"
	KindInterface   TypeKind = "INTERFACE"
	KindUnion       TypeKind = "UNION"
	KindEnum        TypeKind = "ENUM"
	KindInputObject TypeKind = "INPUT_OBJECT"
	KindList        TypeKind = "LIST"
	KindNonNull     TypeKind = "NON_NULL"
)

// Type is any resolved type reference: a named type or a List/NonNull
// wrapper around one.
type Type interface {
	Kind() TypeKind
	String() string
}

// NamedType is a uniquely named resolved type. At most one NamedType exists
// per name within one built schema; cross-references alias the same
// instance, which is what makes mutually recursive definitions safe.
type NamedType interface {
	Type
	TypeName() string
	Description() string
}

// Schemas built by this package are never executed, so abstract types carry
// no concrete-type resolver and custom scalars carry no real coercion.
var errNotExecutable = errors.New("schema: built for static analysis, not execution")

// Scalar is a leaf type. Custom scalars have inert coercion behavior so
// literal checks elsewhere never fail merely because a scalar lacks logic.
type Scalar struct {
	Name           string
	Desc           string
	SpecifiedByURL string

	placeholder bool
}

func (t *Scalar) Kind() TypeKind      { return KindScalar }
func (t *Scalar) TypeName() string    { return t.Name }
func (t *Scalar) Description() string { return t.Desc }
func (t *Scalar) String() string      { return t.Name }

func (t *Scalar) Serialize(v any) (any, error)  { return v, nil }
func (t *Scalar) ParseValue(v any) (any, error) { return v, nil }

// Object is a composite output type. Fields and implemented interfaces are
// filled on first access and memoized, so the shell can be cached before
// its cross-references resolve.
type Object struct {
	Name string
	Desc string

	fields      func() FieldList
	interfaces  func() []*Interface
	placeholder bool
}

func (t *Object) Kind() TypeKind      { return KindObject }
func (t *Object) TypeName() string    { return t.Name }
func (t *Object) Description() string { return t.Desc }
func (t *Object) String() string      { return t.Name }

func (t *Object) Fields() FieldList {
	if t.fields == nil {
		return nil
	}
	return t.fields()
}

func (t *Object) Interfaces() []*Interface {
	if t.interfaces == nil {
		return nil
	}
	return t.interfaces()
}

// Interface is an abstract output type with a deferred field map.
type Interface struct {
	Name string
	Desc string

	fields      func() FieldList
	placeholder bool
}

func (t *Interface) Kind() TypeKind      { return KindInterface }
func (t *Interface) TypeName() string    { return t.Name }
func (t *Interface) Description() string { return t.Desc }
func (t *Interface) String() string      { return t.Name }

func (t *Interface) Fields() FieldList {
	if t.fields == nil {
		return nil
	}
	return t.fields()
}

// ResolveConcrete would pick the object a runtime value belongs to.
func (t *Interface) ResolveConcrete(any) (*Object, error) { return nil, errNotExecutable }

// Union is an abstract output type over a fixed member list. Members are
// resolved eagerly; a member that fails resolution degrades to a
// placeholder without affecting the rest.
type Union struct {
	Name    string
	Desc    string
	Members []*Object
}

func (t *Union) Kind() TypeKind      { return KindUnion }
func (t *Union) TypeName() string    { return t.Name }
func (t *Union) Description() string { return t.Desc }
func (t *Union) String() string      { return t.Name }

// ResolveConcrete would pick the member a runtime value belongs to.
func (t *Union) ResolveConcrete(any) (*Object, error) { return nil, errNotExecutable }

// Enum is a leaf type over a closed value set.
type Enum struct {
	Name   string
	Desc   string
	Values []*EnumValue
}

func (t *Enum) Kind() TypeKind      { return KindEnum }
func (t *Enum) TypeName() string    { return t.Name }
func (t *Enum) Description() string { return t.Desc }
func (t *Enum) String() string      { return t.Name }

func (t *Enum) Value(name string) *EnumValue {
	for _, v := range t.Values {
		if v.Name == name {
			return v
		}
	}
	return nil
}

type EnumValue struct {
	Name        string
	Desc        string
	Deprecation *Deprecation
}

// InputObject is a composite input type with a deferred field list.
type InputObject struct {
	Name string
	Desc string

	fields func() []*InputValue
}

func (t *InputObject) Kind() TypeKind      { return KindInputObject }
func (t *InputObject) TypeName() string    { return t.Name }
func (t *InputObject) Description() string { return t.Desc }
func (t *InputObject) String() string      { return t.Name }

func (t *InputObject) InputFields() []*InputValue {
	if t.fields == nil {
		return nil
	}
	return t.fields()
}

// List wraps any type.
type List struct {
	OfType Type
}

func (t *List) Kind() TypeKind { return KindList }
func (t *List) String() string { return "[" + t.OfType.String() + "]" }

// NonNull wraps any type except another NonNull.
type NonNull struct {
	OfType Type
}

func (t *NonNull) Kind() TypeKind { return KindNonNull }
func (t *NonNull) String() string { return t.OfType.String() + "!" }

func NewList(t Type) *List { return &List{OfType: t} }

// NewNonNull panics when t is already non-null: the grammar cannot express
// that shape, so hitting it means an upstream collaborator broke contract.
func NewNonNull(t Type) *NonNull {
	if _, ok := t.(*NonNull); ok {
		panic("schema: non-null cannot wrap non-null")
	}
	return &NonNull{OfType: t}
}

// Named returns the innermost named type of t, or nil.
func Named(t Type) NamedType {
	for t != nil {
		switch w := t.(type) {
		case *List:
			t = w.OfType
		case *NonNull:
			t = w.OfType
		default:
			return t.(NamedType)
		}
	}
	return nil
}

// IsInputType reports whether t may appear in input positions.
func IsInputType(t Type) bool {
	switch Named(t).(type) {
	case *Scalar, *Enum, *InputObject:
		return true
	}
	return false
}

// IsOutputType reports whether t may appear in output positions.
func IsOutputType(t Type) bool {
	switch Named(t).(type) {
	case *Scalar, *Object, *Interface, *Union, *Enum:
		return true
	}
	return false
}

// IsPlaceholder reports whether t is a sentinel substituted for a failed
// resolution.
func IsPlaceholder(t Type) bool {
	switch n := t.(type) {
	case *Scalar:
		return n.placeholder
	case *Object:
		return n.placeholder
	case *Interface:
		return n.placeholder
	}
	return false
}

// Field is a declared field on an object or interface.
type Field struct {
	Name        string
	Desc        string
	Type        Type
	Args        []*InputValue
	Deprecation *Deprecation
}

type FieldList []*Field

func (l FieldList) Get(name string) *Field {
	for _, f := range l {
		if f.Name == name {
			return f
		}
	}
	return nil
}

// InputValue is a field argument, a directive argument or an input-object
// field. A nil DefaultValue means no default was declared.
type InputValue struct {
	Name         string
	Desc         string
	Type         Type
	DefaultValue any
}

// Directive is a declared or built-in directive. Locations are opaque
// tokens; this package does not check them against a fixed set.
type Directive struct {
	Name       string
	Desc       string
	Locations  []string
	Args       []*InputValue
	Repeatable bool
}

func (d *Directive) Arg(name string) *InputValue {
	for _, a := range d.Args {
		if a.Name == name {
			return a
		}
	}
	return nil
}

type Deprecation struct {
	Reason string
}

// Schema is the linked result of one build. Root type names are kept even
// when they fail to resolve so tooling can still see what was declared.
type Schema struct {
	QueryType        string
	MutationType     string
	SubscriptionType string
	Types            map[string]NamedType
	Directives       map[string]*Directive
}

// Resolve returns the named type, consulting built-ins first.
func (s *Schema) Resolve(name string) NamedType {
	if t, ok := builtinTypes[name]; ok {
		return t
	}
	return s.Types[name]
}

func (s *Schema) Query() NamedType        { return s.root(s.QueryType) }
func (s *Schema) Mutation() NamedType     { return s.root(s.MutationType) }
func (s *Schema) Subscription() NamedType { return s.root(s.SubscriptionType) }

func (s *Schema) root(name string) NamedType {
	if name == "" {
		return nil
	}
	return s.Types[name]
}

func (s *Schema) Directive(name string) *Directive { return s.Directives[name] }

// deferred wraps fn in a memoizing thunk: computed on first pull, exactly
// once, never recomputed. Builds are single-threaded so no locking.
func deferred[T any](fn func() T) func() T {
	var v T
	done := false
	return func() T {
		if !done {
			v = fn()
			done = true
		}
		return v
	}
}
