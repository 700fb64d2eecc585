package wordlist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	cases := []struct {
		input    string
		expected []Token
	}{
		{"", nil},
		{"cat", []Token{Word("cat")}},
		{"cet/dag", []Token{Word("cet"), Separator('/'), Word("dag")}},
		{"one two", []Token{Word("one"), Separator(' '), Word("two")}},
		{"/ /", []Token{Separator('/'), Separator(' '), Separator('/')}},
		{"a//b", []Token{Word("a"), Separator('/'), Separator('/'), Word("b")}},
		{" lead", []Token{Separator(' '), Word("lead")}},
		{"trail ", []Token{Word("trail"), Separator(' ')}},
	}
	for _, c := range cases {
		assert.Equal(t, c.expected, Tokenize(c.input), "input %q", c.input)
	}
}

func TestTokenizeRoundTrip(t *testing.T) {
	inputs := []string{
		"cet/dag",
		"one two/three",
		"  double  spaces ",
		"///",
		"word",
		"naïve/сло́во mixed",
	}
	for _, s := range inputs {
		var rendered string
		for _, tok := range Tokenize(s) {
			rendered += tok.String()
		}
		assert.Equal(t, s, rendered)
	}
}

func TestParseLine(t *testing.T) {
	entry, err := ParseLine(1, "0001 cet/dag")
	require.NoError(t, err)
	assert.Equal(t, "0001", entry.ID)
	assert.Equal(t, []Token{Word("cet"), Separator('/'), Word("dag")}, entry.Tokens)
}

func TestParseLineTooShort(t *testing.T) {
	_, err := ParseLine(3, "12")
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, ErrTooShort, parseErr.Kind)
	assert.Equal(t, 3, parseErr.Line)
	assert.Equal(t, "12", parseErr.Text)
	assert.Equal(t, "line 3 is too short: '12'", err.Error())
}

func TestParseLineInvalidID(t *testing.T) {
	_, err := ParseLine(2, "12ab hello")
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, ErrInvalidID, parseErr.Kind)
	assert.Equal(t, 2, parseErr.Line)
	assert.Equal(t, "12ab", parseErr.Text)
}

func TestParseLineNoValidWords(t *testing.T) {
	_, err := ParseLine(1, "1234 / /")
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, ErrNoValidWords, parseErr.Kind)
	assert.Equal(t, "1234 / /", parseErr.Text)
}

// A 5-byte line has empty content after the position-5 split; it fails
// as "no valid words", not as a separator violation.
func TestParseLineSeparatorNotValidated(t *testing.T) {
	entry, err := ParseLine(1, "1234xhello")
	require.NoError(t, err)
	assert.Equal(t, []Token{Word("hello")}, entry.Tokens)

	_, err = ParseLine(1, "1234x")
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, ErrNoValidWords, parseErr.Kind)
}

func TestParseContent(t *testing.T) {
	entries, err := ParseContent("0001 cat dog\n0002 bird/fish\n")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "0001", entries[0].ID)
	assert.Equal(t, "0002", entries[1].ID)
}

func TestParseContentBlankLineTolerance(t *testing.T) {
	withBlanks := "\n0001 cat\n\n   \n0002 dog\n\n"
	stripped := "0001 cat\n0002 dog"

	a, err := ParseContent(withBlanks)
	require.NoError(t, err)
	b, err := ParseContent(stripped)
	require.NoError(t, err)
	assert.Equal(t, b, a)
}

// Error line numbers point at the original line positions, counting
// the blanks that were skipped.
func TestParseContentErrorLineNumbers(t *testing.T) {
	_, err := ParseContent("0001 cat\n\n\n12\n")
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, ErrTooShort, parseErr.Kind)
	assert.Equal(t, 4, parseErr.Line)
}

func TestParseContentFirstErrorWins(t *testing.T) {
	_, err := ParseContent("12\nbadid hello\n")
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, ErrTooShort, parseErr.Kind)
	assert.Equal(t, 1, parseErr.Line)
}

func TestParseContentEmpty(t *testing.T) {
	for _, content := range []string{"", "\n\n", "   \n\t\n"} {
		_, err := ParseContent(content)
		assert.ErrorIs(t, err, ErrNoEntries, "content %q", content)
	}
}

func TestEntryString(t *testing.T) {
	entry, err := ParseLine(1, "0042 cet/dag wug")
	require.NoError(t, err)
	assert.Equal(t, "0042 cet/dag wug", entry.String())
}
