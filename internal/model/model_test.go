package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEntryQuoted(t *testing.T) {
	t.Parallel()

	assert.Equal(t, `"//lib:lib"`, Entry("//lib:lib").Quoted())
}

func TestDelimiterKindCharacters(t *testing.T) {
	t.Parallel()

	assert.Equal(t, '(', DelimiterParen.Open())
	assert.Equal(t, ')', DelimiterParen.Close())
	assert.Equal(t, '[', DelimiterBracket.Open())
	assert.Equal(t, ']', DelimiterBracket.Close())
}

func TestSplitJoinLines(t *testing.T) {
	t.Parallel()

	lines := SplitLines([]byte("a\nb\n"))
	assert.Equal(t, []string{"a", "b"}, lines)
	assert.Equal(t, "a\nb\n", string(JoinLines(lines)))

	assert.Equal(t, []string{"a", "b"}, SplitLines([]byte("a\nb")), "missing trailing newline is tolerated")
	assert.Nil(t, SplitLines(nil))
}
