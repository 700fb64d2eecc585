// Package wordlist parses tagged word-list entries: a 4-digit
// identifier followed by slash/space-delimited word groups. Tokens keep
// the separators so a parsed entry renders back to its exact source
// text.
package wordlist

// Token is either a Word or a Separator. The set is closed: correcting
// an entry only ever rewrites Word tokens.
type Token interface {
	String() string
	token()
}

// Word is a maximal run of non-separator characters. Never empty.
type Word string

func (Word) token() {}

func (w Word) String() string { return string(w) }

// Separator is a single structural delimiter, space or slash.
type Separator rune

func (Separator) token() {}

func (s Separator) String() string { return string(rune(s)) }

// Tokenize splits word content into an ordered token sequence. Every
// space and slash becomes its own Separator token, so concatenating the
// tokens' String values reproduces the input exactly. It never fails;
// the result may be empty.
func Tokenize(content string) []Token {
	var tokens []Token
	var word []rune
	for _, ch := range content {
		if ch == ' ' || ch == '/' {
			if len(word) > 0 {
				tokens = append(tokens, Word(word))
				word = word[:0]
			}
			tokens = append(tokens, Separator(ch))
		} else {
			word = append(word, ch)
		}
	}
	if len(word) > 0 {
		tokens = append(tokens, Word(word))
	}
	return tokens
}
