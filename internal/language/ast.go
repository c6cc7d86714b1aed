package language

import "github.com/vektah/gqlparser/v2/ast"

type (
	SchemaDocument          = ast.SchemaDocument
	SchemaDefinition        = ast.SchemaDefinition
	OperationTypeDefinition = ast.OperationTypeDefinition
	Definition              = ast.Definition
	DefinitionList          = ast.DefinitionList
	FieldDefinition         = ast.FieldDefinition
	FieldList               = ast.FieldList
	ArgumentDefinition      = ast.ArgumentDefinition
	ArgumentDefinitionList  = ast.ArgumentDefinitionList
	EnumValueDefinition     = ast.EnumValueDefinition
	EnumValueList           = ast.EnumValueList
	DirectiveDefinition     = ast.DirectiveDefinition
	Directive               = ast.Directive
	DirectiveList           = ast.DirectiveList
	DirectiveLocation       = ast.DirectiveLocation
	Argument                = ast.Argument
	ArgumentList            = ast.ArgumentList
	Value                   = ast.Value
	Type                    = ast.Type
	Position                = ast.Position
	Source                  = ast.Source
)

type DefinitionKind = ast.DefinitionKind

type Operation = ast.Operation

type ValueKind = ast.ValueKind

const (
	Query        Operation = ast.Query
	Mutation     Operation = ast.Mutation
	Subscription Operation = ast.Subscription

	Object      DefinitionKind = ast.Object
	Interface   DefinitionKind = ast.Interface
	Union       DefinitionKind = ast.Union
	Scalar      DefinitionKind = ast.Scalar
	Enum        DefinitionKind = ast.Enum
	InputObject DefinitionKind = ast.InputObject

	IntValue     ValueKind = ast.IntValue
	FloatValue   ValueKind = ast.FloatValue
	StringValue  ValueKind = ast.StringValue
	BlockValue   ValueKind = ast.BlockValue
	BooleanValue ValueKind = ast.BooleanValue
	NullValue    ValueKind = ast.NullValue
	EnumValue    ValueKind = ast.EnumValue
	ListValue    ValueKind = ast.ListValue
	ObjectValue  ValueKind = ast.ObjectValue
)
