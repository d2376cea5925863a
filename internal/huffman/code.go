package huffman

import (
	"cmp"

	"github.com/abhinav/huffcode/internal/entropy"
)

// CodeTable maps each symbol to its code:
// a string of '0' and '1' characters, one per bit.
type CodeTable[S comparable] map[S]string

// Codes builds a Huffman tree for the given distribution
// and returns the code for each symbol.
// It returns ErrEmptyAlphabet if the table is empty.
func Codes[S cmp.Ordered](probs entropy.ProbabilityTable[S]) (CodeTable[S], error) {
	t, err := Build(probs)
	if err != nil {
		return nil, err
	}
	return t.Codes(), nil
}

// Codes returns the code for each symbol in the tree.
//
// The code for a symbol is the path from the root to its leaf,
// with '0' for every step to a left child
// and '1' for every step to a right child.
//
// If the tree has a single symbol, its code is "0".
func (t *Tree[S]) Codes() CodeTable[S] {
	codes := make(CodeTable[S], (len(t.nodes)+1)/2)

	root := t.nodes[t.Root()]
	if root.IsLeaf() {
		// special-case:
		// An empty code can't be told apart from no code at all,
		// so a lone symbol still gets one bit.
		codes[root.Symbol] = "0"
		return codes
	}

	var label func(NodeID, []byte)
	label = func(id NodeID, prefix []byte) {
		n := t.nodes[id]
		if n.IsLeaf() {
			// string() copies, so siblings may reuse prefix.
			codes[n.Symbol] = string(prefix)
			return
		}

		label(n.Left, append(prefix, '0'))
		label(n.Right, append(prefix, '1'))
	}
	label(t.Root(), make([]byte, 0, len(t.nodes)/2+1))

	return codes
}
