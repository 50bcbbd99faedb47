package checker

import "spellcheck/internal/suggester"

// Config holds every knob the external CLI/config-file front ends can set
// on a Checker. It groups the tokenizer's ignore toggles, word-length
// bounds, and the suggester's scoring weights into one plain value so an
// INI loader can build one and hand it to the façade constructor.
type Config struct {
	CaseSensitive bool
	IgnoreURLs    bool
	IgnoreEmails  bool
	IgnoreNumbers bool

	MinWordLength int
	MaxWordLength int

	Suggester suggester.Config
}

// DefaultConfig returns the engine's documented defaults.
func DefaultConfig() Config {
	return Config{
		CaseSensitive: false,
		IgnoreURLs:    true,
		IgnoreEmails:  true,
		IgnoreNumbers: true,
		MinWordLength: 3,
		MaxWordLength: 45,
		Suggester:     suggester.DefaultConfig(),
	}
}
