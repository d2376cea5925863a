package huffman

import (
	"cmp"
	"container/heap"
	"errors"
	"maps"
	"slices"
	"strconv"

	"github.com/abhinav/huffcode/internal/entropy"
	"github.com/abhinav/huffcode/internal/stringobj"
)

// ErrEmptyAlphabet is returned when building a tree for a table
// with no symbols in it.
var ErrEmptyAlphabet = errors.New("huffman: alphabet is empty")

// NodeID identifies a node inside a Tree.
type NodeID int

// None is the child ID of a leaf node.
const None NodeID = -1

// Node is a node in a Huffman tree.
// It's either a leaf holding a symbol,
// or an internal node with exactly two children.
type Node[S cmp.Ordered] struct {
	// Symbol held by a leaf node.
	// This is the zero value for internal nodes.
	Symbol S

	// Probability of the leaf node, or the combined probability
	// of all leaf nodes under an internal node.
	Probability float64

	// Children of an internal node. These are None for leaf nodes.
	//
	// Left was extracted from the queue before Right,
	// so it's never more likely than Right.
	Left, Right NodeID
}

// IsLeaf reports whether this node holds a symbol.
func (n Node[S]) IsLeaf() bool {
	return n.Left == None
}

func (n Node[S]) String() string {
	var b stringobj.Builder
	if n.IsLeaf() {
		b.Put("symbol", stringobj.Quote(n.Symbol))
	} else {
		// Node 0 is a valid child, so these are strings
		// to keep the builder from dropping them.
		b.Put("left", strconv.Itoa(int(n.Left)))
		b.Put("right", strconv.Itoa(int(n.Right)))
	}
	b.Put("probability", n.Probability)
	return b.String()
}

// Tree is a Huffman tree.
//
// Nodes are stored in a flat list and refer to their children by ID.
// A tree with n symbols has n leaves, with IDs [0, n) in symbol order,
// followed by n-1 internal nodes in the order they were merged.
// The last node is the root.
type Tree[S cmp.Ordered] struct {
	nodes []Node[S]
}

// Build builds a Huffman tree for the given distribution.
// It returns ErrEmptyAlphabet if the table is empty.
//
// A table with a single symbol produces a tree with just one leaf.
func Build[S cmp.Ordered](probs entropy.ProbabilityTable[S]) (*Tree[S], error) {
	if len(probs) == 0 {
		return nil, ErrEmptyAlphabet
	}

	t := &Tree[S]{nodes: make([]Node[S], 0, 2*len(probs)-1)}
	for _, sym := range slices.Sorted(maps.Keys(probs)) {
		t.nodes = append(t.nodes, Node[S]{
			Symbol:      sym,
			Probability: probs[sym],
			Left:        None,
			Right:       None,
		})
	}

	q := nodeQueue[S]{tree: t, ids: make([]NodeID, len(t.nodes))}
	for i := range q.ids {
		q.ids[i] = NodeID(i)
	}
	heap.Init(&q)

	// Take the two least likely nodes, merge them into a new node,
	// and put that back into the queue.
	// Repeat until there's only one node left.
	for q.Len() > 1 {
		a := heap.Pop(&q).(NodeID)
		b := heap.Pop(&q).(NodeID)

		t.nodes = append(t.nodes, Node[S]{
			Probability: t.nodes[a].Probability + t.nodes[b].Probability,
			Left:        a,
			Right:       b,
		})
		heap.Push(&q, NodeID(len(t.nodes)-1))
	}

	return t, nil
}

// Root returns the ID of the root node.
func (t *Tree[S]) Root() NodeID {
	return NodeID(len(t.nodes) - 1)
}

// Node returns the node with the given ID.
func (t *Tree[S]) Node(id NodeID) Node[S] {
	return t.nodes[id]
}

// Len reports the number of nodes in the tree.
func (t *Tree[S]) Len() int {
	return len(t.nodes)
}

// Depth reports the number of edges on the longest path
// from the root to a leaf.
// For trees with more than one symbol,
// this is the length of the longest code.
func (t *Tree[S]) Depth() int {
	// Children are always created before their parents,
	// so walking from the root down visits each node after its parent.
	depth := make([]int, len(t.nodes))
	var deepest int
	for id := len(t.nodes) - 1; id >= 0; id-- {
		n := t.nodes[id]
		if n.IsLeaf() {
			deepest = max(deepest, depth[id])
			continue
		}
		depth[n.Left] = depth[id] + 1
		depth[n.Right] = depth[id] + 1
	}
	return deepest
}

// nodeQueue is a min-priority queue of nodes in a tree,
// ordered by probability and then by ID.
type nodeQueue[S cmp.Ordered] struct {
	tree *Tree[S]
	ids  []NodeID
}

var _ heap.Interface = (*nodeQueue[string])(nil)

func (q *nodeQueue[S]) Len() int { return len(q.ids) }

func (q *nodeQueue[S]) Less(i, j int) bool {
	a, b := q.ids[i], q.ids[j]
	if pa, pb := q.tree.nodes[a].Probability, q.tree.nodes[b].Probability; pa != pb {
		return pa < pb
	}
	return a < b
}

func (q *nodeQueue[S]) Swap(i, j int) {
	q.ids[i], q.ids[j] = q.ids[j], q.ids[i]
}

func (q *nodeQueue[S]) Push(x any) {
	q.ids = append(q.ids, x.(NodeID))
}

func (q *nodeQueue[S]) Pop() any {
	n := len(q.ids) - 1
	id := q.ids[n]
	q.ids = q.ids[:n]
	return id
}
