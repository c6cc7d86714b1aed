package schema

// Built-in scalars resolve to these shared singletons in every build,
// bypassing construction.
var (
	StringType = &Scalar{
		Name: "String",
		Desc: "The `String` scalar type represents textual data, represented as UTF-8 character sequences.",
	}
	IntType = &Scalar{
		Name: "Int",
		Desc: "The `Int` scalar type represents non-fractional signed whole numeric values.",
	}
	FloatType = &Scalar{
		Name: "Float",
		Desc: "The `Float` scalar type represents signed double-precision fractional values.",
	}
	BooleanType = &Scalar{
		Name: "Boolean",
		Desc: "The `Boolean` scalar type represents `true` or `false`.",
	}
	IDType = &Scalar{
		Name: "ID",
		Desc: "The `ID` scalar type represents a unique identifier, often used to refetch an object or as a key for caching.",
	}
)

var includeDirective = &Directive{
	Name:      "include",
	Desc:      "Directs the executor to include this field or fragment only when the `if` argument is true.",
	Args:      []*InputValue{{Name: "if", Desc: "Included when true.", Type: NewNonNull(BooleanType)}},
	Locations: []string{"FIELD", "FRAGMENT_SPREAD", "INLINE_FRAGMENT"},
}

var skipDirective = &Directive{
	Name:      "skip",
	Desc:      "Directs the executor to skip this field or fragment when the `if` argument is true.",
	Args:      []*InputValue{{Name: "if", Desc: "Skipped when true.", Type: NewNonNull(BooleanType)}},
	Locations: []string{"FIELD", "FRAGMENT_SPREAD", "INLINE_FRAGMENT"},
}

var deprecatedDirective = &Directive{
	Name: "deprecated",
	Desc: "Marks an element of a GraphQL schema as no longer supported.",
	Args: []*InputValue{{
		Name:         "reason",
		Desc:         "Explains why this element was deprecated, usually also including a suggestion for how to access supported similar data.",
		Type:         StringType,
		DefaultValue: "No longer supported",
	}},
	Locations: []string{"FIELD_DEFINITION", "ENUM_VALUE"},
}

var builtinDirectives = []*Directive{skipDirective, includeDirective, deprecatedDirective}

// builtinTypes holds every name the registry resolves without construction:
// the built-in scalars and the introspection types. Read-only after init.
var builtinTypes = map[string]NamedType{}

func init() {
	typeKind := &Enum{
		Name:   "__TypeKind",
		Desc:   "An enum describing what kind of type a given `__Type` is.",
		Values: enumValues("SCALAR", "OBJECT", "INTERFACE", "UNION", "ENUM", "INPUT_OBJECT", "LIST", "NON_NULL"),
	}
	directiveLocation := &Enum{
		Name: "__DirectiveLocation",
		Desc: "A Directive can be adjacent to many parts of the GraphQL language, a __DirectiveLocation describes one such possible adjacencies.",
		Values: enumValues(
			"QUERY", "MUTATION", "SUBSCRIPTION", "FIELD", "FRAGMENT_DEFINITION",
			"FRAGMENT_SPREAD", "INLINE_FRAGMENT", "VARIABLE_DEFINITION", "SCHEMA",
			"SCALAR", "OBJECT", "FIELD_DEFINITION", "ARGUMENT_DEFINITION",
			"INTERFACE", "UNION", "ENUM", "ENUM_VALUE", "INPUT_OBJECT",
			"INPUT_FIELD_DEFINITION",
		),
	}

	// The introspection objects reference each other, so they get the same
	// shell-then-fill treatment the registry gives user types.
	schemaType := &Object{Name: "__Schema", Desc: "A GraphQL Schema defines the capabilities of a GraphQL server."}
	typeType := &Object{Name: "__Type", Desc: "The fundamental unit of any GraphQL Schema is the type."}
	fieldType := &Object{Name: "__Field"}
	inputValueType := &Object{Name: "__InputValue"}
	enumValueType := &Object{Name: "__EnumValue"}
	directiveType := &Object{Name: "__Directive"}

	includeDeprecated := func() *InputValue {
		return &InputValue{Name: "includeDeprecated", Type: BooleanType, DefaultValue: false}
	}

	schemaType.fields = fixedFields(
		&Field{Name: "description", Type: StringType},
		&Field{Name: "types", Desc: "A list of all types supported by this server.", Type: NewNonNull(NewList(NewNonNull(typeType)))},
		&Field{Name: "queryType", Desc: "The type that query operations will be rooted at.", Type: NewNonNull(typeType)},
		&Field{Name: "mutationType", Type: typeType},
		&Field{Name: "subscriptionType", Type: typeType},
		&Field{Name: "directives", Desc: "A list of all directives supported by this server.", Type: NewNonNull(NewList(NewNonNull(directiveType)))},
	)
	typeType.fields = fixedFields(
		&Field{Name: "kind", Type: NewNonNull(typeKind)},
		&Field{Name: "name", Type: StringType},
		&Field{Name: "description", Type: StringType},
		&Field{Name: "fields", Args: []*InputValue{includeDeprecated()}, Type: NewList(NewNonNull(fieldType))},
		&Field{Name: "interfaces", Type: NewList(NewNonNull(typeType))},
		&Field{Name: "possibleTypes", Type: NewList(NewNonNull(typeType))},
		&Field{Name: "enumValues", Args: []*InputValue{includeDeprecated()}, Type: NewList(NewNonNull(enumValueType))},
		&Field{Name: "inputFields", Type: NewList(NewNonNull(inputValueType))},
		&Field{Name: "ofType", Type: typeType},
		&Field{Name: "specifiedByURL", Type: StringType},
	)
	fieldType.fields = fixedFields(
		&Field{Name: "name", Type: NewNonNull(StringType)},
		&Field{Name: "description", Type: StringType},
		&Field{Name: "args", Type: NewNonNull(NewList(NewNonNull(inputValueType)))},
		&Field{Name: "type", Type: NewNonNull(typeType)},
		&Field{Name: "isDeprecated", Type: NewNonNull(BooleanType)},
		&Field{Name: "deprecationReason", Type: StringType},
	)
	inputValueType.fields = fixedFields(
		&Field{Name: "name", Type: NewNonNull(StringType)},
		&Field{Name: "description", Type: StringType},
		&Field{Name: "type", Type: NewNonNull(typeType)},
		&Field{Name: "defaultValue", Type: StringType},
	)
	enumValueType.fields = fixedFields(
		&Field{Name: "name", Type: NewNonNull(StringType)},
		&Field{Name: "description", Type: StringType},
		&Field{Name: "isDeprecated", Type: NewNonNull(BooleanType)},
		&Field{Name: "deprecationReason", Type: StringType},
	)
	directiveType.fields = fixedFields(
		&Field{Name: "name", Type: NewNonNull(StringType)},
		&Field{Name: "description", Type: StringType},
		&Field{Name: "isRepeatable", Type: NewNonNull(BooleanType)},
		&Field{Name: "locations", Type: NewNonNull(NewList(NewNonNull(directiveLocation)))},
		&Field{Name: "args", Type: NewNonNull(NewList(NewNonNull(inputValueType)))},
	)

	for _, t := range []NamedType{
		StringType, IntType, FloatType, BooleanType, IDType,
		schemaType, typeType, fieldType, inputValueType, enumValueType,
		directiveType, typeKind, directiveLocation,
	} {
		builtinTypes[t.TypeName()] = t
	}
}

func fixedFields(fields ...*Field) func() FieldList {
	list := FieldList(fields)
	return func() FieldList { return list }
}

func enumValues(names ...string) []*EnumValue {
	values := make([]*EnumValue, len(names))
	for i, name := range names {
		values[i] = &EnumValue{Name: name}
	}
	return values
}
