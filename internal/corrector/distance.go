package corrector

import (
	"errors"

	"github.com/hbollon/go-edlib"
)

// distance dispatches to the configured edit-distance algorithm.
// Unsupported algorithms are rejected once, at construction time.
func distance(a, b string, algorithm edlib.Algorithm) (int, error) {
	switch algorithm {
	case edlib.OSADamerauLevenshtein:
		return edlib.OSADamerauLevenshteinDistance(a, b), nil
	case edlib.DamerauLevenshtein:
		return edlib.DamerauLevenshteinDistance(a, b), nil
	case edlib.Levenshtein:
		return edlib.LevenshteinDistance(a, b), nil
	}

	return -1, errors.New("invalid algorithm")
}
