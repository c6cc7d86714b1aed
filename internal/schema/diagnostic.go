package schema

import (
	"fmt"
	"strings"

	language "github.com/neoziro/gql/internal/language"
)

type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Location points into an SDL source, for diagnostic rendering only.
type Location struct {
	File   string `json:"file,omitempty"`
	Line   int    `json:"line,omitempty"`
	Column int    `json:"column,omitempty"`
}

func (l Location) String() string {
	return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Column)
}

// Diagnostic is one recoverable problem found while linking a document.
// Diagnostics never abort a build; they are returned alongside the schema.
type Diagnostic struct {
	Severity  Severity   `json:"severity"`
	Message   string     `json:"message"`
	Locations []Location `json:"locations,omitempty"`
}

func (d *Diagnostic) String() string {
	msg := string(d.Severity) + ": " + d.Message
	if len(d.Locations) == 0 {
		return msg
	}
	locs := make([]string, len(d.Locations))
	for i, l := range d.Locations {
		locs[i] = l.String()
	}
	return msg + " (" + strings.Join(locs, ", ") + ")"
}

// HasErrors reports whether any diagnostic carries error severity.
func HasErrors(diags []*Diagnostic) bool {
	for _, d := range diags {
		if d.Severity == SeverityError {
			return true
		}
	}
	return false
}

func (b *builder) addDiagnostic(d ...*Diagnostic) {
	b.diagnostics = append(b.diagnostics, d...)
}

func locationAt(pos *language.Position) []Location {
	if pos == nil {
		return nil
	}
	l := Location{Line: pos.Line, Column: pos.Column}
	if pos.Src != nil {
		l.File = pos.Src.Name
	}
	return []Location{l}
}

func locationsAt(positions []*language.Position) []Location {
	var locs []Location
	for _, pos := range positions {
		locs = append(locs, locationAt(pos)...)
	}
	return locs
}
