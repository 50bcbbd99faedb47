// Package options provides the functional-options pattern used to build
// Suggester configuration without exposing a struct literal with six
// positional-looking fields.
package options

// DefaultOptions holds the engine's documented default weights, copied by
// NewSuggesterOptions before applying overrides.
var DefaultOptions = SuggesterOptions{
	MaxEditDistance:    2,
	MaxSuggestions:     10,
	EditDistanceWeight: 1.0,
	FrequencyWeight:    0.5,
	PhoneticWeight:     0.3,
	PrefixWeight:       0.2,
}

// SuggesterOptions holds the suggester's tunable knobs.
type SuggesterOptions struct {
	MaxEditDistance    int
	MaxSuggestions     int
	EditDistanceWeight float64
	FrequencyWeight    float64
	PhoneticWeight     float64
	PrefixWeight       float64
}

type Options interface {
	Apply(options *SuggesterOptions)
}

type FuncConfig struct {
	ops func(options *SuggesterOptions)
}

func (w FuncConfig) Apply(conf *SuggesterOptions) {
	w.ops(conf)
}

func NewFuncOption(f func(options *SuggesterOptions)) *FuncConfig {
	return &FuncConfig{ops: f}
}

// NewSuggesterOptions starts from DefaultOptions and applies opts in order.
func NewSuggesterOptions(opts ...Options) SuggesterOptions {
	cfg := DefaultOptions
	for _, opt := range opts {
		opt.Apply(&cfg)
	}
	return cfg
}

func WithMaxEditDistance(maxEditDistance int) Options {
	return NewFuncOption(func(options *SuggesterOptions) {
		options.MaxEditDistance = maxEditDistance
	})
}

func WithMaxSuggestions(maxSuggestions int) Options {
	return NewFuncOption(func(options *SuggesterOptions) {
		options.MaxSuggestions = maxSuggestions
	})
}

func WithEditDistanceWeight(weight float64) Options {
	return NewFuncOption(func(options *SuggesterOptions) {
		options.EditDistanceWeight = weight
	})
}

func WithFrequencyWeight(weight float64) Options {
	return NewFuncOption(func(options *SuggesterOptions) {
		options.FrequencyWeight = weight
	})
}

func WithPhoneticWeight(weight float64) Options {
	return NewFuncOption(func(options *SuggesterOptions) {
		options.PhoneticWeight = weight
	})
}

func WithPrefixWeight(weight float64) Options {
	return NewFuncOption(func(options *SuggesterOptions) {
		options.PrefixWeight = weight
	})
}
