package checker

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestChecker(t *testing.T) *Checker {
	dir := t.TempDir()
	path := filepath.Join(dir, "dict.txt")
	contents := "spelling:1000\nspell:500\nspelled:200\nthe:5000\nworld:100\nhello:100\n"
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))

	c := New(DefaultConfig())
	require.True(t, c.LoadDictionary(path))
	return c
}

func TestIsCorrectKnownWord(t *testing.T) {
	c := newTestChecker(t)
	assert.True(t, c.IsCorrect("hello"))
	assert.True(t, c.IsCorrect("HELLO"))
}

func TestIsCorrectUnknownWord(t *testing.T) {
	c := newTestChecker(t)
	assert.False(t, c.IsCorrect("helo"))
}

func TestIsCorrectEmptyString(t *testing.T) {
	c := newTestChecker(t)
	assert.True(t, c.IsCorrect(""))
}

func TestIsCorrectIgnoresShortAndNumericTokens(t *testing.T) {
	c := newTestChecker(t)
	assert.True(t, c.IsCorrect("42"))
	assert.True(t, c.IsCorrect("ab"))
}

func TestIsCorrectRespectsConfiguredWordLengthBounds(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dict.txt")
	require.NoError(t, os.WriteFile(path, []byte("the:100\n"), 0644))

	cfg := DefaultConfig()
	cfg.MinWordLength = 2
	cfg.MaxWordLength = 5

	c := New(cfg)
	require.True(t, c.LoadDictionary(path))

	// "ab" is below the default minimum of 3 but at/above this config's 2.
	assert.False(t, c.IsCorrect("ab"))

	// "abcdef" is within the default maximum of 45 but above this config's 5.
	assert.True(t, c.IsCorrect("abcdef"))
}

func TestSuggestions(t *testing.T) {
	c := newTestChecker(t)
	suggestions := c.Suggestions("speling")
	assert.Contains(t, suggestions, "spelling")
}

func TestSuggestionsRankHighestFrequencyFirst(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dict.txt")
	require.NoError(t, os.WriteFile(path, []byte("the:100\ntea:5\nten:10\n"), 0644))

	c := New(DefaultConfig())
	require.True(t, c.LoadDictionary(path))

	assert.True(t, c.IsCorrect("the"))
	assert.False(t, c.IsCorrect("teh"))

	suggestions := c.Suggestions("teh")
	assert.Contains(t, suggestions, "the")
	assert.Contains(t, suggestions, "tea")
	assert.Contains(t, suggestions, "ten")
	assert.Equal(t, "the", suggestions[0])
}

func TestSuggestionsEmptyWord(t *testing.T) {
	c := newTestChecker(t)
	assert.Nil(t, c.Suggestions(""))
}

func TestCheckText(t *testing.T) {
	c := newTestChecker(t)
	misses := c.CheckText("hello helo world")

	require.Len(t, misses, 1)
	assert.Equal(t, "helo", misses[0].Word)
}

func TestCheckFile(t *testing.T) {
	c := newTestChecker(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello\nworld helo\n"), 0644))

	misses, err := c.CheckFile(path)
	require.NoError(t, err)
	require.Len(t, misses, 1)
	assert.Equal(t, "helo", misses[0].Word)
	assert.Equal(t, 2, misses[0].Line)
}

func TestCheckFileMissingReturnsError(t *testing.T) {
	c := newTestChecker(t)
	misses, err := c.CheckFile("/nonexistent/file.txt")
	assert.Nil(t, misses)
	assert.Error(t, err)
}

func TestAddWordAndRemoveWord(t *testing.T) {
	c := newTestChecker(t)
	assert.False(t, c.IsCorrect("galaxy"))

	require.NoError(t, c.AddWord("galaxy"))
	assert.True(t, c.IsCorrect("galaxy"))

	require.NoError(t, c.RemoveWord("galaxy"))
	assert.False(t, c.IsCorrect("galaxy"))
}

func TestStats(t *testing.T) {
	c := newTestChecker(t)
	size, mem := c.Stats()
	assert.Equal(t, 6, size)
	assert.Greater(t, mem, int64(0))
}

func TestSaveAndReloadDictionary(t *testing.T) {
	c := newTestChecker(t)
	dir := t.TempDir()
	out := filepath.Join(dir, "saved.txt")
	require.True(t, c.SaveDictionary(out))

	reloaded := New(DefaultConfig())
	require.True(t, reloaded.LoadDictionary(out))
	assert.True(t, reloaded.IsCorrect("hello"))
}
