// Package options configures the corrector via functional options.
package options

import "github.com/hbollon/go-edlib"

// DefaultOptions reproduce the reference behavior: uniform Levenshtein
// distance with an early exit once a candidate is within one edit.
var DefaultOptions = CorrectorOptions{
	GoodEnoughDistance: 1,
	Algorithm:          edlib.Levenshtein,
}

type CorrectorOptions struct {
	GoodEnoughDistance int // stop scanning once a candidate is this close
	Algorithm          edlib.Algorithm
}

type Options interface {
	Apply(options *CorrectorOptions)
}

type FuncConfig struct {
	ops func(options *CorrectorOptions)
}

func (w FuncConfig) Apply(conf *CorrectorOptions) {
	w.ops(conf)
}

func NewFuncOption(f func(options *CorrectorOptions)) *FuncConfig {
	return &FuncConfig{ops: f}
}

// WithGoodEnoughDistance sets the early-exit threshold. Zero disables
// the shortcut entirely: an exact match is handled before the scan, so
// no candidate can ever reach distance zero.
func WithGoodEnoughDistance(d int) Options {
	return NewFuncOption(func(options *CorrectorOptions) {
		options.GoodEnoughDistance = d
	})
}

// WithAlgorithm selects the edit-distance algorithm. Levenshtein,
// DamerauLevenshtein and OSADamerauLevenshtein are supported.
func WithAlgorithm(alg edlib.Algorithm) Options {
	return NewFuncOption(func(options *CorrectorOptions) {
		options.Algorithm = alg
	})
}
