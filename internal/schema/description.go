package schema

import (
	"strings"

	language "github.com/neoziro/gql/internal/language"
)

// describe picks a node's documentation string: a parser-provided block
// string wins, else the comment block directly above the node.
func describe(desc string, pos *language.Position) string {
	if desc != "" {
		return desc
	}
	return descriptionFromComments(pos)
}

// descriptionFromComments recovers a doc string from the unbroken block of
// '#' line comments directly above the node at pos: consecutive lines, each
// holding nothing but a comment, stopping at the first blank line or
// non-comment line. The minimum leading-space count across the block is
// stripped from every line, preserving relative indentation.
func descriptionFromComments(pos *language.Position) string {
	if pos == nil || pos.Src == nil || pos.Line < 2 {
		return ""
	}
	lines := strings.Split(pos.Src.Input, "\n")
	if pos.Line-1 > len(lines) {
		return ""
	}

	var block []string
	for i := pos.Line - 2; i >= 0; i-- {
		line := lines[i]
		hash := strings.Index(line, "#")
		if hash < 0 || strings.TrimSpace(line[:hash]) != "" {
			break
		}
		block = append(block, line[hash+1:])
	}
	if len(block) == 0 {
		return ""
	}

	// Collected bottom-up; restore source order.
	for i, j := 0, len(block)-1; i < j; i, j = i+1, j-1 {
		block[i], block[j] = block[j], block[i]
	}

	indent := -1
	for _, line := range block {
		n := len(line) - len(strings.TrimLeft(line, " "))
		if indent < 0 || n < indent {
			indent = n
		}
	}
	for i, line := range block {
		block[i] = line[indent:]
	}
	return strings.Join(block, "\n")
}
