// Package vocab holds the reference vocabulary: a sorted, frozen word
// list with binary-search membership.
package vocab

import (
	"errors"
	"sort"
	"strings"

	"wordfix/internal/storage"
)

// ErrEmpty is returned when construction finds no usable words.
var ErrEmpty = errors.New("dictionary is empty")

// Vocabulary is an immutable sorted word list. Comparison is exact and
// case-sensitive; duplicates are harmless after sorting.
type Vocabulary struct {
	words []string
}

// New builds a Vocabulary from raw words. Words are trimmed, blanks
// dropped, and the rest sorted ascending. Fails with ErrEmpty when
// nothing survives.
func New(words []string) (*Vocabulary, error) {
	kept := make([]string, 0, len(words))
	for _, w := range words {
		w = strings.TrimSpace(w)
		if w != "" {
			kept = append(kept, w)
		}
	}
	if len(kept) == 0 {
		return nil, ErrEmpty
	}
	sort.Strings(kept)
	return &Vocabulary{words: kept}, nil
}

// Load builds a Vocabulary from the raw text of a dictionary file, one
// word per line.
func Load(raw string) (*Vocabulary, error) {
	return New(strings.Split(raw, "\n"))
}

// LoadFile reads and builds a Vocabulary from the file at path.
func LoadFile(path string) (*Vocabulary, error) {
	raw, err := storage.ReadText(path)
	if err != nil {
		return nil, err
	}
	return Load(raw)
}

// Contains reports whether word is in the vocabulary, by binary search
// under the same ordering used to sort.
func (v *Vocabulary) Contains(word string) bool {
	i := sort.SearchStrings(v.words, word)
	return i < len(v.words) && v.words[i] == word
}

// Words returns the vocabulary in ascending order. Callers must not
// modify the returned slice.
func (v *Vocabulary) Words() []string { return v.words }

// Len returns the number of words.
func (v *Vocabulary) Len() int { return len(v.words) }
