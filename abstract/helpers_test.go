package abstract

import (
	"cmp"
	"math"
	"math/bits"
	"testing"

	"github.com/stretchr/testify/require"
)

// testNode is a plain heap node; the tree reaches it through pointers.
type testNode struct {
	key           int
	less, greater *testNode
	bf            int
}

type ptrAbstractor struct{}

func (ptrAbstractor) Null() *testNode { return nil }

func (ptrAbstractor) GetLess(h *testNode) *testNode { return h.less }

func (ptrAbstractor) SetLess(h, less *testNode) { h.less = less }

func (ptrAbstractor) GetGreater(h *testNode) *testNode { return h.greater }

func (ptrAbstractor) SetGreater(h, greater *testNode) { h.greater = greater }

func (ptrAbstractor) GetBalanceFactor(h *testNode) int { return h.bf }

func (ptrAbstractor) SetBalanceFactor(h *testNode, bf int) { h.bf = bf }

func (ptrAbstractor) CompareKeyNode(k int, h *testNode) int { return cmp.Compare(k, h.key) }

func (ptrAbstractor) CompareNodeNode(a, b *testNode) int { return cmp.Compare(a.key, b.key) }

type testTree = Tree[int, *testNode, ptrAbstractor]

func newTestTree() *testTree {
	return New[int, *testNode](ptrAbstractor{})
}

func nodes(keys ...int) []*testNode {
	out := make([]*testNode, len(keys))
	for i, k := range keys {
		out[i] = &testNode{key: k}
	}
	return out
}

func keyOf(h *testNode) int {
	if h == nil {
		return math.MinInt
	}
	return h.key
}

func forward(tr *testTree) []int {
	var out []int
	it := tr.MakeIter()
	for it.First(); it.Valid(); it.Next() {
		out = append(out, it.Cur().key)
	}
	return out
}

func backward(tr *testTree) []int {
	var out []int
	it := tr.MakeIter()
	for it.Last(); it.Valid(); it.Prev() {
		out = append(out, it.Cur().key)
	}
	return out
}

// maxAVLHeight is the height bound for n nodes, ceil(1.44 * log2(n+2)).
func maxAVLHeight(n int) int {
	return int(math.Ceil(1.44 * math.Log2(float64(n+2))))
}

// minHeight is the least possible height of a binary tree of n nodes.
func minHeight(n int) int {
	return bits.Len(uint(n))
}

func requireValid(t *testing.T, tr *testTree, n int) {
	t.Helper()
	require.NoError(t, tr.Check())
	require.Equal(t, n, tr.Len())
	require.LessOrEqual(t, tr.Height(), maxAVLHeight(n))
}
