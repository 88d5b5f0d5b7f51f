package domain

import (
	"strings"

	m "github.com/mason-dev/mason/internal/model"
)

// SuggestedSnippet renders the list field the engine wanted to create,
// as literal text a user can paste into the target rule by hand. Used
// when no rule block can be located at all.
func SuggestedSnippet(rule, field string, entries []m.Entry) string {
	var b strings.Builder

	b.WriteString("# mason could not locate a " + rule + "( block in this file.\n")
	b.WriteString("# Add the following field to the target " + rule + " rule:\n")
	b.WriteString(field + " = [\n")

	for _, e := range entries {
		b.WriteString(indentStep + e.Quoted() + ",\n")
	}

	b.WriteString("]\n")

	return b.String()
}
