package schema

import (
	"fmt"

	language "github.com/neoziro/gql/internal/language"
)

// Reusable diagnostic constructors. Keep messages stable: downstream lint
// tooling matches on them.

func errorAt(message string, pos *language.Position) *Diagnostic {
	return &Diagnostic{Severity: SeverityError, Message: message, Locations: locationAt(pos)}
}

func warningAt(message string, pos *language.Position) *Diagnostic {
	return &Diagnostic{Severity: SeverityWarning, Message: message, Locations: locationAt(pos)}
}

func diagTypeNotFound(name string, pos *language.Position) *Diagnostic {
	return errorAt(fmt.Sprintf("Type %q not found in document", name), pos)
}

func diagDuplicateTypeName(name string, positions []*language.Position) *Diagnostic {
	return &Diagnostic{
		Severity:  SeverityError,
		Message:   fmt.Sprintf("Type %q defined more than once", name),
		Locations: locationsAt(positions),
	}
}

func diagSchemaRedefined(first, second *language.Position) *Diagnostic {
	return &Diagnostic{
		Severity:  SeverityError,
		Message:   "Schema is defined more than once",
		Locations: append(locationAt(first), locationAt(second)...),
	}
}

func diagMissingQueryRoot() *Diagnostic {
	return &Diagnostic{
		Severity: SeverityError,
		Message:  "Schema has no query root type",
	}
}

func diagRootNotObject(op, name string, pos *language.Position) *Diagnostic {
	return errorAt(fmt.Sprintf("%s root type %q must be an Object type", op, name), pos)
}

func diagTypeNotInput(name string, pos *language.Position) *Diagnostic {
	return errorAt(fmt.Sprintf("Type %q is not an input type", name), pos)
}

func diagTypeNotOutput(name string, pos *language.Position) *Diagnostic {
	return errorAt(fmt.Sprintf("Type %q is not an output type", name), pos)
}

func diagWrongKind(name string, want, got TypeKind, pos *language.Position) *Diagnostic {
	return errorAt(fmt.Sprintf("Type %q is %s, expected %s", name, got, want), pos)
}

func diagDirectiveRedefined(name string, pos *language.Position) *Diagnostic {
	return errorAt(fmt.Sprintf("Directive @%s is already defined", name), pos)
}

func diagInvalidDefaultValue(name string, err error, pos *language.Position) *Diagnostic {
	return errorAt(fmt.Sprintf("Invalid default value for %q: %s", name, err), pos)
}

func diagExtensionIgnored(name string, pos *language.Position) *Diagnostic {
	return warningAt(fmt.Sprintf("Extension of type %q is ignored", name), pos)
}

func diagSchemaExtensionIgnored(pos *language.Position) *Diagnostic {
	return warningAt("Schema extension is ignored", pos)
}
