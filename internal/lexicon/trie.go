package lexicon

import "sort"

// trieNode is one node of the prefix trie, stored in an arena (see trie
// below) so children reference siblings by index rather than by owning
// pointer. This keeps Clear cheap (reset the slice) and makes memory
// accounting straightforward.
type trieNode struct {
	children map[byte]int32
	isWord   bool
	freq     uint32
}

// trie is an arena-backed prefix tree over lowercase words. Node 0 is
// always the root. RemoveWord never prunes a path: it only clears isWord,
// so descendants stay reachable for other words sharing the prefix.
type trie struct {
	nodes []trieNode
}

func newTrie() *trie {
	t := &trie{}
	t.reset()
	return t
}

func (t *trie) reset() {
	t.nodes = make([]trieNode, 1, 64)
	t.nodes[0] = trieNode{children: make(map[byte]int32)}
}

func (t *trie) insert(word string, freq uint32) {
	node := int32(0)
	for i := 0; i < len(word); i++ {
		c := word[i]
		next, ok := t.nodes[node].children[c]
		if !ok {
			t.nodes = append(t.nodes, trieNode{children: make(map[byte]int32)})
			next = int32(len(t.nodes) - 1)
			t.nodes[node].children[c] = next
		}
		node = next
	}
	t.nodes[node].isWord = true
	t.nodes[node].freq = freq
}

// markRemoved clears the terminal marker for word without deleting any
// node from the arena.
func (t *trie) markRemoved(word string) {
	node := t.find(word)
	if node < 0 {
		return
	}
	t.nodes[node].isWord = false
	t.nodes[node].freq = 0
}

func (t *trie) find(word string) int32 {
	node := int32(0)
	for i := 0; i < len(word); i++ {
		next, ok := t.nodes[node].children[word[i]]
		if !ok {
			return -1
		}
		node = next
	}
	return node
}

// wordsWithPrefix depth-first collects up to max terminal words beneath
// prefix, then sorts them by descending frequency (lexicographic on ties).
func (t *trie) wordsWithPrefix(prefix string, max int) []string {
	if max <= 0 {
		return nil
	}
	root := t.find(prefix)
	if root < 0 {
		return nil
	}

	var results []string
	t.collect(root, prefix, max, &results)

	sort.Slice(results, func(i, j int) bool {
		fi, fj := t.nodes[t.find(results[i])].freq, t.nodes[t.find(results[j])].freq
		if fi != fj {
			return fi > fj
		}
		return results[i] < results[j]
	})

	return results
}

func (t *trie) collect(node int32, prefix string, max int, results *[]string) {
	if len(*results) >= max {
		return
	}
	if t.nodes[node].isWord {
		*results = append(*results, prefix)
		if len(*results) >= max {
			return
		}
	}

	children := t.nodes[node].children
	keys := make([]byte, 0, len(children))
	for c := range children {
		keys = append(keys, c)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	for _, c := range keys {
		t.collect(children[c], prefix+string(c), max, results)
		if len(*results) >= max {
			return
		}
	}
}
