package codec

import (
	"cmp"
	"maps"
	"slices"
)

// Trie is a binary decoding tree built from a code table.
// Each bit of input moves one step down the trie,
// and reaching a leaf completes a symbol.
type Trie[S cmp.Ordered] struct {
	nodes []trieNode[S]
}

type trieNode[S cmp.Ordered] struct {
	// Index of the child for bit 0 and bit 1.
	// 0 means there's no child: the root is never a child.
	next [2]int

	leaf   bool
	symbol S
}

// NewTrie builds a Trie from the given code table.
// The codes must be non-empty strings of '0' and '1' and prefix-free.
func NewTrie[S cmp.Ordered](codes map[S]string) (*Trie[S], error) {
	t := &Trie[S]{nodes: make([]trieNode[S], 1, max(1, 2*len(codes)))}

	// Sorted so that errors are reproducible.
	for _, sym := range slices.Sorted(maps.Keys(codes)) {
		if err := t.insert(sym, codes[sym]); err != nil {
			return nil, err
		}
	}
	return t, nil
}

func (t *Trie[S]) insert(sym S, code string) error {
	if len(code) == 0 {
		return &InvalidCodeError[S]{Symbol: sym, Code: code}
	}

	var cur int
	for i := 0; i < len(code); i++ {
		bit, ok := bitOf(code[i])
		if !ok {
			return &InvalidCodeError[S]{Symbol: sym, Code: code}
		}

		if n := t.nodes[cur]; n.leaf {
			return &AmbiguousCodeError[S]{Prefix: n.symbol, Symbol: sym}
		}

		next := t.nodes[cur].next[bit]
		if next == 0 {
			next = len(t.nodes)
			t.nodes = append(t.nodes, trieNode[S]{})
			t.nodes[cur].next[bit] = next
		}
		cur = next
	}

	n := &t.nodes[cur]
	if n.leaf || n.next != [2]int{} {
		// Something is already here or below.
		return &AmbiguousCodeError[S]{Prefix: sym, Symbol: t.anyLeaf(cur)}
	}
	n.leaf = true
	n.symbol = sym
	return nil
}

// anyLeaf returns the symbol of some leaf at or below the given node.
func (t *Trie[S]) anyLeaf(cur int) S {
	for !t.nodes[cur].leaf {
		n := t.nodes[cur]
		if n.next[0] != 0 {
			cur = n.next[0]
		} else {
			cur = n.next[1]
		}
	}
	return t.nodes[cur].symbol
}

// cursor tracks a position in a Trie while decoding.
type cursor[S cmp.Ordered] struct {
	trie *Trie[S]
	cur  int
}

// Step moves down the trie by one bit.
// If this completes a symbol, it's returned and the cursor
// returns to the root.
// ok is false if no code continues with this bit.
func (c *cursor[S]) Step(bit int) (sym S, done, ok bool) {
	next := c.trie.nodes[c.cur].next[bit]
	if next == 0 {
		return sym, false, false
	}

	if n := c.trie.nodes[next]; n.leaf {
		c.cur = 0
		return n.symbol, true, true
	}

	c.cur = next
	return sym, false, true
}

// AtRoot reports whether the cursor is between symbols.
func (c *cursor[S]) AtRoot() bool {
	return c.cur == 0
}

func bitOf(c byte) (int, bool) {
	switch c {
	case '0':
		return 0, true
	case '1':
		return 1, true
	default:
		return 0, false
	}
}
