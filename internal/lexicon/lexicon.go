// Package lexicon maintains the reference word set for the spell-checking
// engine: an exact membership set, a per-word frequency map, an
// arena-backed prefix trie, and phonetic buckets, kept in lock-step so any
// one of them answers "is this a word" consistently with the others.
package lexicon

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/edsrzf/mmap-go"
)

// mmapThreshold is the file size above which LoadFromFile maps the
// dictionary into memory instead of streaming it through bufio.Scanner.
// Below this, the syscall and page-fault overhead of mmap outweighs the
// saved copy.
const mmapThreshold = 1 << 20 // 1 MiB

// Lexicon holds the reference word set with per-word frequency and the
// three derived indexes the suggester needs. Create one with New; the zero
// value has no maps or trie allocated and is not ready to use until Clear
// has been called.
type Lexicon struct {
	words     map[string]uint32   // canonical owner of each word's frequency
	phonetics map[string][]string // phonetic code -> words sharing it
	trie      *trie
}

// New returns an empty Lexicon.
func New() *Lexicon {
	l := &Lexicon{}
	l.Clear()
	return l
}

// Clear removes every word from the lexicon, resetting all four indexes.
func (l *Lexicon) Clear() {
	l.words = make(map[string]uint32)
	l.phonetics = make(map[string][]string)
	l.trie = newTrie()
}

// AddWord normalizes word to lowercase and inserts it with frequency freq.
// A word already present has its frequency updated in place; the phonetic
// bucket is not touched a second time for an existing word.
func (l *Lexicon) AddWord(word string, freq uint32) {
	word = strings.ToLower(word)
	if word == "" {
		return
	}

	_, existed := l.words[word]
	l.words[word] = freq
	l.trie.insert(word, freq)

	if !existed {
		code := PhoneticCode(word)
		l.phonetics[code] = append(l.phonetics[code], word)
	}
}

// RemoveWord deletes word from every index, returning false if it was not
// present. The trie node backing word is left in the arena (unmarked as a
// terminal) rather than pruned.
func (l *Lexicon) RemoveWord(word string) bool {
	word = strings.ToLower(word)
	if _, ok := l.words[word]; !ok {
		return false
	}

	delete(l.words, word)
	l.trie.markRemoved(word)

	code := PhoneticCode(word)
	bucket := l.phonetics[code]
	for i, w := range bucket {
		if w == word {
			bucket = append(bucket[:i], bucket[i+1:]...)
			break
		}
	}
	if len(bucket) == 0 {
		delete(l.phonetics, code)
	} else {
		l.phonetics[code] = bucket
	}

	return true
}

// Contains reports whether word (case-folded) is in the lexicon.
func (l *Lexicon) Contains(word string) bool {
	_, ok := l.words[strings.ToLower(word)]
	return ok
}

// Frequency returns word's stored frequency, or 0 if it is not present.
func (l *Lexicon) Frequency(word string) uint32 {
	return l.words[strings.ToLower(word)]
}

// WordsWithPrefix returns up to max words sharing prefix, sorted by
// descending frequency with lexicographic tie-breaking.
func (l *Lexicon) WordsWithPrefix(prefix string, max int) []string {
	return l.trie.wordsWithPrefix(strings.ToLower(prefix), max)
}

// PhoneticMatches returns the words sharing word's phonetic code,
// including word itself if word is in the lexicon.
func (l *Lexicon) PhoneticMatches(word string) []string {
	bucket := l.phonetics[PhoneticCode(strings.ToLower(word))]
	out := make([]string, len(bucket))
	copy(out, bucket)
	return out
}

// AllWords returns every word currently stored, in unspecified order.
func (l *Lexicon) AllWords() []string {
	out := make([]string, 0, len(l.words))
	for w := range l.words {
		out = append(out, w)
	}
	return out
}

// Size returns the number of distinct words stored.
func (l *Lexicon) Size() int {
	return len(l.words)
}

// Stats returns the word count and an estimate of resident memory across
// the four indexes, in bytes.
func (l *Lexicon) Stats() (size int, approxMemoryBytes int64) {
	var mem int64
	for w := range l.words {
		mem += int64(len(w)) + 4 // word bytes + uint32 frequency
	}
	for code, bucket := range l.phonetics {
		mem += int64(len(code))
		for _, w := range bucket {
			mem += int64(len(w))
		}
	}
	for _, n := range l.trie.nodes {
		mem += int64(len(n.children)) * 12 // byte key + int32 value, rough
	}
	return len(l.words), mem
}

// LoadFromFile clears the lexicon and populates it from path. Each
// non-empty line (after whitespace stripping) is either "word" or
// "word:frequency"; a malformed frequency causes that line to be skipped.
// LoadFromFile returns false only if the file cannot be opened.
func (l *Lexicon) LoadFromFile(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return false
	}

	l.Clear()

	if info.Size() >= mmapThreshold {
		l.loadFromMmap(f)
	} else {
		l.loadFromReader(f)
	}

	return true
}

func (l *Lexicon) loadFromReader(f *os.File) {
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		l.loadLine(scanner.Text())
	}
}

// loadFromMmap scans a memory-mapped view of f's contents for lines,
// avoiding the buffered copy bufio.Scanner would otherwise make. The
// mapping is always unmapped before returning, even on a parse error.
func (l *Lexicon) loadFromMmap(f *os.File) {
	data, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		// Fall back to buffered reads rather than failing the whole load;
		// the file is already known to be openable and stat-able.
		if _, seekErr := f.Seek(0, 0); seekErr == nil {
			l.loadFromReader(f)
		}
		return
	}
	defer data.Unmap()

	start := 0
	for start < len(data) {
		end := bytes.IndexByte(data[start:], '\n')
		var line []byte
		if end == -1 {
			line = data[start:]
			start = len(data)
		} else {
			line = data[start : start+end]
			start += end + 1
		}
		l.loadLine(string(line))
	}
}

func (l *Lexicon) loadLine(line string) {
	line = stripWhitespace(line)
	if line == "" {
		return
	}

	colon := strings.IndexByte(line, ':')
	if colon == -1 {
		l.AddWord(line, 1)
		return
	}

	word := line[:colon]
	freq, err := strconv.ParseUint(line[colon+1:], 10, 32)
	if err != nil {
		return
	}
	l.AddWord(word, uint32(freq))
}

func stripWhitespace(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case ' ', '\t', '\r':
			continue
		default:
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// SaveToFile writes one "word:frequency" entry per line. Returns false if
// the file cannot be written.
func (l *Lexicon) SaveToFile(path string) bool {
	f, err := os.Create(path)
	if err != nil {
		return false
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for word, freq := range l.words {
		if _, err := fmt.Fprintf(w, "%s:%d\n", word, freq); err != nil {
			return false
		}
	}
	return w.Flush() == nil
}
