package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	m "github.com/mason-dev/mason/internal/model"
)

func TestSuggestedSnippet(t *testing.T) {
	t.Parallel()

	snippet := SuggestedSnippet("cc_binary", "deps", []m.Entry{"//A:A", "//B:B"})

	lines := strings.Split(strings.TrimRight(snippet, "\n"), "\n")
	assert.Equal(t, "deps = [", lines[2])
	assert.Equal(t, `    "//A:A",`, lines[3])
	assert.Equal(t, `    "//B:B",`, lines[4])
	assert.Equal(t, "]", lines[5])
	assert.Contains(t, lines[0], "cc_binary(")
}
