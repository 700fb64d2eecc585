// Package service composes the base dictionary, the Redis-backed
// custom word store and the corrector behind a mutex, so the HTTP
// server can add or remove words while corrections run. The core
// vocabulary stays immutable: every mutation rebuilds it from the base
// list plus the current custom set.
package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"

	mapset "github.com/deckarep/golang-set/v2"

	"wordfix/internal/corrector"
	"wordfix/internal/customdict"
	"wordfix/internal/storage"
	"wordfix/internal/vocab"
	"wordfix/internal/wordlist"
	"wordfix/pkg/options"
)

type Service struct {
	mu     sync.RWMutex
	base   []string
	custom mapset.Set[string]
	dict   *customdict.Store
	corr   *corrector.Corrector
	opts   []options.Options
}

// New loads the base dictionary from dictionaryPath and, when store is
// non-nil, folds in the persisted custom words. A store read failure
// is logged and skipped rather than fatal, matching a fresh Redis
// instance being empty anyway.
func New(ctx context.Context, dictionaryPath string, store *customdict.Store, opts ...options.Options) (*Service, error) {
	raw, err := storage.ReadText(dictionaryPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load dictionary: %w", err)
	}

	s := &Service{
		base:   strings.Split(raw, "\n"),
		custom: mapset.NewSet[string](),
		dict:   store,
		opts:   opts,
	}

	if store != nil {
		words, err := store.All(ctx)
		if err != nil {
			log.Printf("warning: failed to load custom words: %v", err)
		} else {
			for _, w := range words {
				s.custom.Add(w)
			}
		}
	}

	if err := s.rebuild(); err != nil {
		return nil, err
	}
	return s, nil
}

// rebuild constructs a fresh vocabulary and corrector from base plus
// custom words. Callers must hold the write lock (or be the sole
// owner, as in New).
func (s *Service) rebuild() error {
	words := append(append([]string(nil), s.base...), s.custom.ToSlice()...)
	v, err := vocab.New(words)
	if err != nil {
		return err
	}
	c, err := corrector.New(v, s.opts...)
	if err != nil {
		return err
	}
	s.corr = c
	return nil
}

// CorrectText corrects free word content (no id prefix), preserving
// separators.
func (s *Service) CorrectText(text string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var b strings.Builder
	for _, t := range wordlist.Tokenize(text) {
		if w, ok := t.(wordlist.Word); ok {
			b.WriteString(s.corr.Correct(string(w)))
		} else {
			b.WriteString(t.String())
		}
	}
	return b.String()
}

// CorrectLine parses one tagged entry line and returns its corrected
// rendering.
func (s *Service) CorrectLine(line string) (string, error) {
	entry, err := wordlist.ParseLine(1, line)
	if err != nil {
		return "", err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.corr.CorrectEntry(entry).String(), nil
}

// AddCustomWord persists word (when a store is configured) and rebuilds
// the vocabulary so it takes effect immediately.
func (s *Service) AddCustomWord(ctx context.Context, word string) error {
	if s.dict != nil {
		if err := s.dict.Add(ctx, word); err != nil {
			return err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.custom.Add(word)
	return s.rebuild()
}

// RemoveCustomWord deletes word from the store and rebuilds.
func (s *Service) RemoveCustomWord(ctx context.Context, word string) error {
	if s.dict != nil {
		if err := s.dict.Remove(ctx, word); err != nil {
			return err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.custom.Remove(word)
	return s.rebuild()
}

// VocabLen returns the current vocabulary size, custom words included.
func (s *Service) VocabLen() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.corr.VocabLen()
}
