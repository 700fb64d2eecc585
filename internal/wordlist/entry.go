package wordlist

import (
	"errors"
	"fmt"
	"strings"
)

// Entry is one parsed line: a 4-digit identifier kept verbatim as text
// (leading zeros matter) and its token sequence. Entries are never
// mutated; correction builds a new Entry with the same shape.
type Entry struct {
	ID     string
	Tokens []Token
}

// String renders the entry as "<id> <content>", the exact inverse of
// ParseLine's position-5 split.
func (e Entry) String() string {
	var b strings.Builder
	b.WriteString(e.ID)
	b.WriteByte(' ')
	for _, t := range e.Tokens {
		b.WriteString(t.String())
	}
	return b.String()
}

// ErrNoEntries is returned by ParseContent when no non-blank line
// survives parsing.
var ErrNoEntries = errors.New("cannot find any valid entries")

type ParseErrorKind int

const (
	ErrTooShort ParseErrorKind = iota
	ErrInvalidID
	ErrNoValidWords
)

// ParseError is a per-line structural violation. Line is 1-based and
// counts blank lines; Text is the offending slice (the whole line for
// ErrTooShort/ErrNoValidWords, the 4-character id for ErrInvalidID).
type ParseError struct {
	Line int
	Kind ParseErrorKind
	Text string
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case ErrTooShort:
		return fmt.Sprintf("line %d is too short: '%s'", e.Line, e.Text)
	case ErrInvalidID:
		return fmt.Sprintf("line %d has invalid ID: '%s'", e.Line, e.Text)
	default:
		return fmt.Sprintf("line %d has no valid words: '%s'", e.Line, e.Text)
	}
}

// ParseLine parses a single trimmed line. Checks run in order and the
// first failure wins: length, then the id digits. The byte at position
// 4 is skipped without being validated as a space; content starts at
// position 5 and must tokenize to at least one word.
func ParseLine(lineNumber int, line string) (Entry, error) {
	if len(line) < 5 {
		return Entry{}, &ParseError{Line: lineNumber, Kind: ErrTooShort, Text: line}
	}
	id := line[:4]
	for i := 0; i < len(id); i++ {
		if id[i] < '0' || id[i] > '9' {
			return Entry{}, &ParseError{Line: lineNumber, Kind: ErrInvalidID, Text: id}
		}
	}
	tokens := Tokenize(line[5:])
	if !hasWord(tokens) {
		return Entry{}, &ParseError{Line: lineNumber, Kind: ErrNoValidWords, Text: line}
	}
	return Entry{ID: id, Tokens: tokens}, nil
}

// ParseContent parses a whole file already read into memory. Lines are
// trimmed, blank lines are skipped but still counted for error line
// numbers. The first bad line aborts the parse; there is no partial
// result.
func ParseContent(content string) ([]Entry, error) {
	var entries []Entry
	for i, raw := range strings.Split(content, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		entry, err := ParseLine(i+1, line)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	if len(entries) == 0 {
		return nil, ErrNoEntries
	}
	return entries, nil
}

func hasWord(tokens []Token) bool {
	for _, t := range tokens {
		if _, ok := t.(Word); ok {
			return true
		}
	}
	return false
}
