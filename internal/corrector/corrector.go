// Package corrector replaces out-of-vocabulary words with their
// nearest vocabulary word by edit distance.
package corrector

import (
	"math"

	"wordfix/internal/vocab"
	"wordfix/internal/wordlist"
	"wordfix/pkg/options"
)

// Corrector holds the vocabulary for the duration of a run. The
// vocabulary is never mutated; Correct is a pure function of its
// input.
type Corrector struct {
	vocab *vocab.Vocabulary
	opts  options.CorrectorOptions
}

// New builds a Corrector over a non-empty vocabulary.
func New(v *vocab.Vocabulary, opts ...options.Options) (*Corrector, error) {
	if v == nil || v.Len() == 0 {
		return nil, vocab.ErrEmpty
	}
	conf := options.DefaultOptions
	for _, o := range opts {
		o.Apply(&conf)
	}
	if _, err := distance("", "", conf.Algorithm); err != nil {
		return nil, err
	}
	return &Corrector{vocab: v, opts: conf}, nil
}

// Correct returns word unchanged when the vocabulary contains it.
// Otherwise it scans the vocabulary in sorted order and returns the
// first candidate of minimal distance, stopping early once a candidate
// is within GoodEnoughDistance. Ties keep the earliest candidate
// found, which the sorted scan makes the lexicographically smallest.
func (c *Corrector) Correct(word string) string {
	if c.vocab.Contains(word) {
		return word
	}

	best := word
	minDistance := math.MaxInt

	for _, candidate := range c.vocab.Words() {
		d, _ := distance(word, candidate, c.opts.Algorithm)

		if d < minDistance {
			minDistance = d
			best = candidate

			if d <= c.opts.GoodEnoughDistance {
				break
			}
		}
	}

	return best
}

// CorrectEntry corrects every word token of an entry, leaving the id,
// the separators and the token order untouched.
func (c *Corrector) CorrectEntry(entry wordlist.Entry) wordlist.Entry {
	tokens := make([]wordlist.Token, len(entry.Tokens))
	for i, t := range entry.Tokens {
		if w, ok := t.(wordlist.Word); ok {
			tokens[i] = wordlist.Word(c.Correct(string(w)))
		} else {
			tokens[i] = t
		}
	}
	return wordlist.Entry{ID: entry.ID, Tokens: tokens}
}

// VocabLen returns the size of the backing vocabulary.
func (c *Corrector) VocabLen() int { return c.vocab.Len() }

// CorrectAll corrects entries in order.
func (c *Corrector) CorrectAll(entries []wordlist.Entry) []wordlist.Entry {
	corrected := make([]wordlist.Entry, len(entries))
	for i, e := range entries {
		corrected[i] = c.CorrectEntry(e)
	}
	return corrected
}
