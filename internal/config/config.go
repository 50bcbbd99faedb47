// Package config loads the engine's INI-style configuration file and
// applies it to a checker.Config plus the front-end-only settings (the
// dictionary path) that sit alongside it. It is a front-end concern: the
// engine itself never touches the filesystem for configuration, only for
// dictionaries.
package config

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"spellcheck/internal/checker"
)

// defaultDictionaryPath mirrors the CLI/HTTP front ends' own fallback so a
// config file that omits dictionary_path still resolves to something.
const defaultDictionaryPath = "dictionaries/en_US.dict"

// Settings is everything a front end needs after loading a config file:
// the façade configuration plus the dictionary path, which is not itself
// a Checker knob (the façade never parses a config file or reads
// DictionaryPath; a front end passes it to LoadDictionary).
type Settings struct {
	DictionaryPath string
	Checker        checker.Config
}

// Load reads an INI-style file of "key = value" lines (optional
// "[section]" headers are accepted but ignored — every key in this format
// is a flat, unique name) and applies recognized keys onto Settings built
// from checker.DefaultConfig() and the default dictionary path.
// Unrecognized keys are ignored so the file can carry other front-end-only
// settings alongside the ones this loader knows about.
func Load(path string) (Settings, error) {
	settings := Settings{
		DictionaryPath: defaultDictionaryPath,
		Checker:        checker.DefaultConfig(),
	}

	f, err := os.Open(path)
	if err != nil {
		return settings, fmt.Errorf("opening config %s: %w", path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, ";") {
			continue
		}
		if strings.HasPrefix(line, "[") {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		apply(&settings, strings.TrimSpace(key), strings.TrimSpace(value))
	}

	if err := scanner.Err(); err != nil {
		return settings, fmt.Errorf("reading config %s: %w", path, err)
	}
	return settings, nil
}

func apply(settings *Settings, key, value string) {
	cfg := &settings.Checker
	switch strings.ToLower(key) {
	case "dictionary_path":
		if value != "" {
			settings.DictionaryPath = value
		}
	case "case_sensitive":
		cfg.CaseSensitive = parseBool(value, cfg.CaseSensitive)
	case "ignore_urls":
		cfg.IgnoreURLs = parseBool(value, cfg.IgnoreURLs)
	case "ignore_emails":
		cfg.IgnoreEmails = parseBool(value, cfg.IgnoreEmails)
	case "ignore_numbers":
		cfg.IgnoreNumbers = parseBool(value, cfg.IgnoreNumbers)
	case "min_word_length":
		cfg.MinWordLength = parseInt(value, cfg.MinWordLength)
	case "max_word_length":
		cfg.MaxWordLength = parseInt(value, cfg.MaxWordLength)
	case "max_suggestions":
		cfg.Suggester.MaxSuggestions = parseInt(value, cfg.Suggester.MaxSuggestions)
	case "max_edit_distance":
		cfg.Suggester.MaxEditDistance = parseInt(value, cfg.Suggester.MaxEditDistance)
	case "edit_distance_weight":
		cfg.Suggester.EditDistanceWeight = parseFloat(value, cfg.Suggester.EditDistanceWeight)
	case "frequency_weight":
		cfg.Suggester.FrequencyWeight = parseFloat(value, cfg.Suggester.FrequencyWeight)
	case "phonetic_weight":
		cfg.Suggester.PhoneticWeight = parseFloat(value, cfg.Suggester.PhoneticWeight)
	case "prefix_weight":
		cfg.Suggester.PrefixWeight = parseFloat(value, cfg.Suggester.PrefixWeight)
	}
}

func parseBool(value string, fallback bool) bool {
	b, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return b
}

func parseInt(value string, fallback int) int {
	n, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return n
}

func parseFloat(value string, fallback float64) float64 {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fallback
	}
	return f
}
