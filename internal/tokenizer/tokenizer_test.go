package tokenizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractWords(t *testing.T) {
	tok := New()
	words := tok.ExtractWords("Hello, World! Visit https://example.com or user@example.com today.")

	var texts []string
	for _, w := range words {
		texts = append(texts, w.Text)
	}
	assert.Equal(t, []string{"hello", "world", "visit", "https", "example", "com", "user", "example", "com", "today"}, texts)
}

func TestExtractWordsKeepsShortWordsWithMoreThanTwoLetters(t *testing.T) {
	tok := New()
	words := tok.ExtractWords("cat sat on a mat")
	var texts []string
	for _, w := range words {
		texts = append(texts, w.Text)
	}
	assert.Equal(t, []string{"cat", "sat", "mat"}, texts)
}

func TestExtractWordsOffsets(t *testing.T) {
	tok := New()
	words := tok.ExtractWords("foo bar")
	assert.Equal(t, []Word{{Text: "foo", Offset: 0}, {Text: "bar", Offset: 4}}, words)
}

func TestExtractWordsWithLines(t *testing.T) {
	tok := New()
	text := "one two\nthree fourxx\nfive"
	words := tok.ExtractWordsWithLines(text)

	assert.Equal(t, []WordAt{
		{Text: "one", Line: 1, Column: 1},
		{Text: "two", Line: 1, Column: 5},
		{Text: "three", Line: 2, Column: 1},
		{Text: "fourxx", Line: 2, Column: 7},
		{Text: "five", Line: 3, Column: 1},
	}, words)
}

func TestNormalizeWordLowercasesByDefault(t *testing.T) {
	tok := New()
	assert.Equal(t, "don't", tok.NormalizeWord("Don't"))
}

func TestNormalizeWordCaseSensitive(t *testing.T) {
	tok := &Tokenizer{CaseSensitive: true}
	assert.Equal(t, "Don't", tok.NormalizeWord("Don't"))
}

func TestNormalizeWordStripsPunctuation(t *testing.T) {
	tok := New()
	assert.Equal(t, "hello", tok.NormalizeWord("hello!!!"))
}

func TestShouldIgnoreShortWords(t *testing.T) {
	tok := New()
	assert.True(t, tok.ShouldIgnore("ab"))
	assert.False(t, tok.ShouldIgnore("abc"))
}

func TestShouldIgnoreCustomMinWordLength(t *testing.T) {
	tok := &Tokenizer{MinWordLength: 5}
	assert.True(t, tok.ShouldIgnore("abcd"))
	assert.False(t, tok.ShouldIgnore("abcde"))
}

func TestShouldIgnoreCustomMaxWordLength(t *testing.T) {
	tok := &Tokenizer{MaxWordLength: 5}
	assert.False(t, tok.ShouldIgnore("abcde"))
	assert.True(t, tok.ShouldIgnore("abcdef"))
}

func TestShouldIgnoreURLs(t *testing.T) {
	tok := New()
	assert.True(t, tok.ShouldIgnore("https://example.com"))
	assert.True(t, tok.ShouldIgnore("www.example.com"))
}

func TestShouldIgnoreURLsDisabled(t *testing.T) {
	tok := &Tokenizer{IgnoreURLs: false}
	assert.False(t, tok.ShouldIgnore("https://example.com"))
}

func TestShouldIgnoreEmails(t *testing.T) {
	tok := New()
	assert.True(t, tok.ShouldIgnore("user@example.com"))
}

func TestShouldIgnoreNumbers(t *testing.T) {
	tok := New()
	assert.True(t, tok.ShouldIgnore("12345"))
	assert.True(t, tok.ShouldIgnore("3.14"))
}

func TestSplitIntoSentences(t *testing.T) {
	sentences := SplitIntoSentences("Hello there. How are you? Fine!  Good.")
	assert.Equal(t, []string{"Hello there.", "How are you?", "Fine!", "Good."}, sentences)
}

func TestCountWords(t *testing.T) {
	tok := New()
	assert.Equal(t, 4, tok.CountWords("The cat sat on a mat"))
}

func TestCountLines(t *testing.T) {
	assert.Equal(t, 3, CountLines("one\ntwo\nthree"))
	assert.Equal(t, 1, CountLines("one line only"))
}
