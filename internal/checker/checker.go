// Package checker exposes the engine's public surface: a single Checker
// façade that owns a Lexicon and Tokenizer, holds configuration, and
// delegates to the Suggester. It is the only package front ends
// (cmd/spellcheck, cmd/server) talk to.
package checker

import (
	"context"
	"fmt"
	"log"
	"os"

	"spellcheck/internal/lexicon"
	"spellcheck/internal/suggester"
	"spellcheck/internal/tokenizer"
	"spellcheck/pkg/options"
)

// Result pairs a misspelled word with its byte offset, as returned by
// CheckText.
type Result struct {
	Word   string
	Offset int
}

// ResultAt pairs a misspelled word with its 1-based line/column, as
// returned by CheckFile.
type ResultAt struct {
	Word   string
	Line   int
	Column int
}

// Checker is the engine's single entry point.
type Checker struct {
	config    Config
	lex       *lexicon.Lexicon
	tok       *tokenizer.Tokenizer
	suggester *suggester.Suggester
	remote    *RemoteWordStore
}

// New returns a Checker configured with cfg, with an empty lexicon. Load a
// dictionary with LoadDictionary before checking text.
func New(cfg Config) *Checker {
	c := &Checker{
		config: cfg,
		lex:    lexicon.New(),
		tok: &tokenizer.Tokenizer{
			CaseSensitive: cfg.CaseSensitive,
			IgnoreURLs:    cfg.IgnoreURLs,
			IgnoreEmails:  cfg.IgnoreEmails,
			IgnoreNumbers: cfg.IgnoreNumbers,
			MinWordLength: cfg.MinWordLength,
			MaxWordLength: cfg.MaxWordLength,
		},
	}
	c.rebuildSuggester()
	return c
}

func (c *Checker) rebuildSuggester() {
	c.suggester = suggester.New(
		options.WithMaxEditDistance(c.config.Suggester.MaxEditDistance),
		options.WithMaxSuggestions(c.config.Suggester.MaxSuggestions),
		options.WithEditDistanceWeight(c.config.Suggester.EditDistanceWeight),
		options.WithFrequencyWeight(c.config.Suggester.FrequencyWeight),
		options.WithPhoneticWeight(c.config.Suggester.PhoneticWeight),
		options.WithPrefixWeight(c.config.Suggester.PrefixWeight),
	)
}

// UseRemoteWordStore wires a RemoteWordStore into the façade. AddWord and
// RemoveWord start syncing to it immediately; existing remote words are not
// pulled in automatically — call LoadCustomWords for that.
func (c *Checker) UseRemoteWordStore(store *RemoteWordStore) {
	c.remote = store
}

// LoadCustomWords pulls every word the RemoteWordStore has recorded and
// applies it to the in-memory lexicon, mirroring what a fresh process
// restart should see. It is a no-op if no store is configured.
func (c *Checker) LoadCustomWords(ctx context.Context) error {
	if c.remote == nil {
		return nil
	}
	words, err := c.remote.All(ctx)
	if err != nil {
		return fmt.Errorf("loading custom words: %w", err)
	}
	for _, w := range words {
		c.lex.AddWord(w, 1)
	}
	return nil
}

// LoadDictionary loads the base lexicon from path, clearing whatever was
// there before.
func (c *Checker) LoadDictionary(path string) bool {
	return c.lex.LoadFromFile(path)
}

// SaveDictionary writes the current lexicon to path.
func (c *Checker) SaveDictionary(path string) bool {
	return c.lex.SaveToFile(path)
}

// AddWord inserts word into the lexicon and, if a RemoteWordStore is
// configured, persists it there too. A Redis failure is returned but does
// not undo the in-memory insert.
func (c *Checker) AddWord(word string) error {
	if word == "" {
		return nil
	}
	c.lex.AddWord(word, 1)
	if c.remote != nil {
		if err := c.remote.Add(context.Background(), word); err != nil {
			return fmt.Errorf("persisting custom word %q: %w", word, err)
		}
	}
	return nil
}

// RemoveWord deletes word from the lexicon and, if a RemoteWordStore is
// configured, from the remote store as well.
func (c *Checker) RemoveWord(word string) error {
	c.lex.RemoveWord(word)
	if c.remote != nil {
		if err := c.remote.Remove(context.Background(), word); err != nil {
			return fmt.Errorf("removing custom word %q: %w", word, err)
		}
	}
	return nil
}

// IsCorrect reports whether word is recognized, or should simply be
// ignored (URLs, numbers, short tokens, ...).
func (c *Checker) IsCorrect(word string) bool {
	if word == "" {
		return true
	}
	if c.tok.ShouldIgnore(word) {
		return true
	}

	normalized := c.tok.NormalizeWord(word)
	if c.lex.Contains(normalized) {
		return true
	}

	if !c.config.CaseSensitive {
		return c.lex.Contains(lowercase(normalized))
	}
	return false
}

// Suggestions returns up to the configured maximum ranked corrections for
// word.
func (c *Checker) Suggestions(word string) []string {
	if word == "" {
		return nil
	}
	normalized := c.tok.NormalizeWord(word)
	suggestions := c.suggester.Suggestions(c.lex, normalized)
	if len(suggestions) > c.config.Suggester.MaxSuggestions {
		suggestions = suggestions[:c.config.Suggester.MaxSuggestions]
	}
	return suggestions
}

// CheckText tokenizes text and returns every token IsCorrect rejects, in
// text order.
func (c *Checker) CheckText(text string) []Result {
	var misspelled []Result
	for _, w := range c.tok.ExtractWords(text) {
		if !c.IsCorrect(w.Text) {
			misspelled = append(misspelled, Result{Word: w.Text, Offset: w.Offset})
		}
	}
	return misspelled
}

// CheckFile reads path and returns every misspelled token with its
// 1-based line/column. A read failure yields a nil result and a non-nil
// error instead of panicking.
func (c *Checker) CheckFile(path string) ([]ResultAt, error) {
	contents, err := readFile(path)
	if err != nil {
		log.Printf("could not read file: %v", err)
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var misspelled []ResultAt
	for _, w := range c.tok.ExtractWordsWithLines(contents) {
		if !c.IsCorrect(w.Text) {
			misspelled = append(misspelled, ResultAt{Word: w.Text, Line: w.Line, Column: w.Column})
		}
	}
	return misspelled, nil
}

// Stats returns the lexicon's word count and an estimate of resident
// memory, in bytes.
func (c *Checker) Stats() (size int, approxMemoryBytes int64) {
	return c.lex.Stats()
}

func readFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func lowercase(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c - 'A' + 'a'
		}
	}
	return string(b)
}
