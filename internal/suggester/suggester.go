// Package suggester generates and ranks correction candidates for a
// misspelled word, combining several candidate-generation strategies with
// a fused, weighted score.
package suggester

import (
	"math"
	"sort"

	"spellcheck/pkg/options"
)

const alphabet = "abcdefghijklmnopqrstuvwxyz"

// LexiconView is the read-only slice of Lexicon the suggester needs. It is
// a non-owning borrow for the duration of a single call — the suggester
// never stores a LexiconView across calls, so a caller mutating its
// Lexicon between calls cannot leave the suggester holding stale state.
type LexiconView interface {
	Contains(word string) bool
	Frequency(word string) uint32
	WordsWithPrefix(prefix string, max int) []string
	PhoneticMatches(word string) []string
}

// Config holds the suggester's tunable knobs: the hard cap used only by
// EditDistanceSuggestions, the returned-list cap, and the four scoring
// weights from the fused ranking formula.
type Config = options.SuggesterOptions

// DefaultConfig returns the engine's documented default weights.
func DefaultConfig() Config {
	return options.DefaultOptions
}

// Suggester ranks correction candidates for misspelled words against a
// LexiconView.
type Suggester struct {
	config Config
}

// New returns a Suggester built from opts, starting from DefaultConfig.
func New(opts ...options.Options) *Suggester {
	return &Suggester{config: options.NewSuggesterOptions(opts...)}
}

// Suggestions generates, filters, ranks, and truncates correction
// candidates for word against lex. An empty word or nil lex yields an
// empty, non-nil-panicking result.
func (s *Suggester) Suggestions(lex LexiconView, word string) []string {
	if lex == nil || word == "" {
		return nil
	}

	pool := newCandidatePool()

	for _, c := range deletionCandidates(word) {
		pool.addIfLexicon(lex, c)
	}
	for _, c := range insertionCandidates(word) {
		pool.addIfLexicon(lex, c)
	}
	for _, c := range substitutionCandidates(word) {
		pool.addIfLexicon(lex, c)
	}
	for _, c := range transpositionCandidates(word) {
		pool.addIfLexicon(lex, c)
	}
	for _, c := range splitCandidates(lex, word) {
		pool.addIfLexicon(lex, c)
	}
	for _, c := range lex.PhoneticMatches(word) {
		pool.add(c)
	}
	for _, c := range prefixCandidates(lex, word) {
		pool.add(c)
	}

	return rank(lex, word, pool.ordered, s.config)
}

// EditDistanceSuggestions is the auxiliary API that does respect
// MaxEditDistance (unlike Suggestions, whose candidate generators are not
// bounded by it — see the engine's design notes). It scans every word in
// the lexicon, keeps those within maxDistance edits of word (maxDistance is
// capped at the configured MaxEditDistance), and sorts by distance then
// frequency.
func (s *Suggester) EditDistanceSuggestions(lex LexiconView, allWords []string, word string, maxDistance int) []string {
	if lex == nil || word == "" {
		return nil
	}
	if maxDistance > s.config.MaxEditDistance {
		maxDistance = s.config.MaxEditDistance
	}

	type scored struct {
		word     string
		distance int
	}

	var candidates []scored
	for _, w := range allWords {
		d := Levenshtein(word, w)
		if d <= maxDistance {
			candidates = append(candidates, scored{w, d})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].distance != candidates[j].distance {
			return candidates[i].distance < candidates[j].distance
		}
		return lex.Frequency(candidates[i].word) > lex.Frequency(candidates[j].word)
	})

	if len(candidates) > s.config.MaxSuggestions {
		candidates = candidates[:s.config.MaxSuggestions]
	}

	out := make([]string, len(candidates))
	for i, c := range candidates {
		out[i] = c.word
	}
	return out
}

// candidatePool deduplicates candidates while preserving the order they
// were first added, which is what makes the ranker's tie-break
// deterministic.
type candidatePool struct {
	seen    map[string]bool
	ordered []string
}

func newCandidatePool() *candidatePool {
	return &candidatePool{seen: make(map[string]bool)}
}

func (p *candidatePool) add(candidate string) {
	if p.seen[candidate] {
		return
	}
	p.seen[candidate] = true
	p.ordered = append(p.ordered, candidate)
}

func (p *candidatePool) addIfLexicon(lex LexiconView, candidate string) {
	if lex.Contains(candidate) {
		p.add(candidate)
	}
}

func deletionCandidates(word string) []string {
	out := make([]string, 0, len(word))
	for i := range word {
		out = append(out, word[:i]+word[i+1:])
	}
	return out
}

func insertionCandidates(word string) []string {
	out := make([]string, 0, len(alphabet)*(len(word)+1))
	for i := 0; i <= len(word); i++ {
		for _, c := range alphabet {
			out = append(out, word[:i]+string(c)+word[i:])
		}
	}
	return out
}

func substitutionCandidates(word string) []string {
	out := make([]string, 0, len(alphabet)*len(word))
	for i := 0; i < len(word); i++ {
		for _, c := range alphabet {
			if byte(c) == word[i] {
				continue
			}
			out = append(out, word[:i]+string(c)+word[i+1:])
		}
	}
	return out
}

func transpositionCandidates(word string) []string {
	if len(word) < 2 {
		return nil
	}
	out := make([]string, 0, len(word)-1)
	for i := 0; i < len(word)-1; i++ {
		b := []byte(word)
		b[i], b[i+1] = b[i+1], b[i]
		out = append(out, string(b))
	}
	return out
}

func splitCandidates(lex LexiconView, word string) []string {
	var out []string
	for i := 1; i < len(word); i++ {
		first, second := word[:i], word[i:]
		if lex.Contains(first) && lex.Contains(second) {
			out = append(out, first+" "+second)
		}
	}
	return out
}

func prefixCandidates(lex LexiconView, word string) []string {
	minLen := len(word)
	if minLen > 3 {
		minLen = 3
	}

	pool := newCandidatePool()
	for length := minLen; length <= len(word); length++ {
		for _, c := range lex.WordsWithPrefix(word[:length], 20) {
			pool.add(c)
		}
	}
	return pool.ordered
}

func rank(lex LexiconView, word string, candidates []string, cfg Config) []string {
	type scored struct {
		word  string
		score float64
	}

	scoredCandidates := make([]scored, len(candidates))
	for i, c := range candidates {
		scoredCandidates[i] = scored{c, candidateScore(lex, word, c, cfg)}
	}

	sort.SliceStable(scoredCandidates, func(i, j int) bool {
		return scoredCandidates[i].score > scoredCandidates[j].score
	})

	max := cfg.MaxSuggestions
	if max > len(scoredCandidates) {
		max = len(scoredCandidates)
	}

	out := make([]string, max)
	for i := 0; i < max; i++ {
		out[i] = scoredCandidates[i].word
	}
	return out
}

func candidateScore(lex LexiconView, word, candidate string, cfg Config) float64 {
	editScore := 1.0 / (1.0 + float64(Levenshtein(word, candidate)))
	freqScore := math.Log(1.0+float64(lex.Frequency(candidate))) / 10.0

	minLen, maxLen := len(word), len(candidate)
	if minLen > maxLen {
		minLen, maxLen = maxLen, minLen
	}
	lengthRatio := float64(minLen) / float64(maxLen)

	prefixLen := commonPrefixLen(word, candidate)
	prefixScore := float64(prefixLen) / float64(len(word))

	return cfg.EditDistanceWeight*editScore +
		cfg.FrequencyWeight*freqScore +
		0.10*lengthRatio +
		cfg.PrefixWeight*prefixScore
}

func commonPrefixLen(a, b string) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	return i
}
