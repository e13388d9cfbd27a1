package abstract

import (
	"fmt"
	"math"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInsert(t *testing.T) {
	tr := newTestTree()
	require.True(t, tr.IsEmpty())
	require.Nil(t, tr.SearchLeast())
	require.Nil(t, tr.SearchGreatest())

	keys := []int{5, 3, 8, 1, 4, 7, 9}
	for i, n := range nodes(keys...) {
		require.Same(t, n, tr.Insert(n))
		requireValid(t, tr, i+1)
	}
	require.Equal(t, 5, tr.Root().key)
	require.Equal(t, 1, tr.SearchLeast().key)
	require.Equal(t, 9, tr.SearchGreatest().key)
	require.Equal(t, []int{1, 3, 4, 5, 7, 8, 9}, forward(tr))
	require.Equal(t, 3, tr.Height())
}

func TestInsertRotates(t *testing.T) {
	for _, tc := range []struct {
		name string
		keys []int
		root int
	}{
		{"ascending", []int{1, 2, 3, 4, 5, 6, 7}, 4},
		{"descending", []int{7, 6, 5, 4, 3, 2, 1}, 4},
		{"less-greater", []int{3, 1, 2}, 2},
		{"greater-less", []int{1, 3, 2}, 2},
	} {
		t.Run(tc.name, func(t *testing.T) {
			tr := newTestTree()
			for i, n := range nodes(tc.keys...) {
				tr.Insert(n)
				requireValid(t, tr, i+1)
			}
			require.Equal(t, tc.root, tr.Root().key)
			require.Equal(t, minHeight(len(tc.keys)), tr.Height())
		})
	}
}

func TestInsertDuplicate(t *testing.T) {
	tr := newTestTree()
	ns := nodes(5, 3, 8)
	for _, n := range ns {
		tr.Insert(n)
	}
	dup := &testNode{key: 3}
	require.Same(t, ns[1], tr.Insert(dup))
	requireValid(t, tr, 3)
	require.Same(t, ns[1], tr.Search(3, Equal))
	require.Equal(t, []int{3, 5, 8}, forward(tr))
}

func TestRemove(t *testing.T) {
	tr := newTestTree()
	ns := nodes(5, 3, 8, 1, 4, 7, 9)
	for _, n := range ns {
		tr.Insert(n)
	}

	require.Same(t, ns[0], tr.Remove(5))
	requireValid(t, tr, 6)
	require.Equal(t, []int{1, 3, 4, 7, 8, 9}, forward(tr))
	require.LessOrEqual(t, tr.Height(), 3)
	require.Nil(t, tr.Search(5, Equal))

	require.Nil(t, tr.Remove(5))
	require.Nil(t, tr.Remove(100))
	requireValid(t, tr, 6)

	for _, k := range []int{1, 9, 3, 8, 4, 7} {
		require.Equal(t, k, keyOf(tr.Remove(k)))
	}
	require.True(t, tr.IsEmpty())
	require.Nil(t, tr.Remove(1))
}

func TestRemoveEveryPosition(t *testing.T) {
	const n = 64
	keys := make([]int, n)
	for i := range keys {
		keys[i] = i
	}
	for _, k := range keys {
		tr := newTestTree()
		for _, nd := range nodes(keys...) {
			tr.Insert(nd)
		}
		require.Equal(t, k, keyOf(tr.Remove(k)))
		requireValid(t, tr, n-1)
		want := slices.Delete(slices.Clone(keys), k, k+1)
		require.Equal(t, want, forward(tr))
	}
}

func TestRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	keys := rng.Perm(1000)
	tr := newTestTree()
	for _, n := range nodes(keys...) {
		tr.Insert(n)
	}
	requireValid(t, tr, len(keys))
	for _, k := range keys {
		require.Equal(t, k, keyOf(tr.Search(k, Equal)))
	}
	rng.Shuffle(len(keys), func(i, j int) { keys[i], keys[j] = keys[j], keys[i] })
	for i, k := range keys {
		require.Equal(t, k, keyOf(tr.Remove(k)))
		if i%97 == 0 {
			requireValid(t, tr, len(keys)-i-1)
		}
	}
	require.True(t, tr.IsEmpty())
}

func TestRandomized(t *testing.T) {
	for _, seed := range []uint64{1, 7, 42} {
		rng := rand.New(rand.NewPCG(seed, seed))
		tr := newTestTree()
		present := map[int]bool{}
		for i := 0; i < 4000; i++ {
			k := rng.IntN(300)
			if rng.IntN(3) == 0 {
				got := tr.Remove(k)
				if present[k] {
					require.Equal(t, k, keyOf(got))
				} else {
					require.Nil(t, got)
				}
				delete(present, k)
			} else {
				n := &testNode{key: k}
				got := tr.Insert(n)
				require.Equal(t, k, got.key)
				require.Equal(t, !present[k], got == n)
				present[k] = true
			}
			if i%50 == 0 {
				requireValid(t, tr, len(present))
			}
		}
		requireValid(t, tr, len(present))
		want := make([]int, 0, len(present))
		for k := range present {
			want = append(want, k)
		}
		slices.Sort(want)
		require.Equal(t, want, forward(tr))
	}
}

func TestSearch(t *testing.T) {
	tr := newTestTree()
	for k := 10; k <= 100; k += 10 {
		tr.Insert(&testNode{key: k})
	}
	const none = math.MinInt
	for _, tc := range []struct {
		k    int
		st   SearchType
		want int
	}{
		{5, Equal, none},
		{5, Less, none},
		{5, LessEqual, none},
		{5, Greater, 10},
		{5, GreaterEqual, 10},
		{10, Equal, 10},
		{10, Less, none},
		{10, LessEqual, 10},
		{10, Greater, 20},
		{10, GreaterEqual, 10},
		{15, Equal, none},
		{15, Less, 10},
		{15, LessEqual, 10},
		{15, Greater, 20},
		{15, GreaterEqual, 20},
		{50, Less, 40},
		{50, Greater, 60},
		{50, Equal, 50},
		{100, Greater, none},
		{100, GreaterEqual, 100},
		{100, Less, 90},
		{105, LessEqual, 100},
		{105, Greater, none},
	} {
		t.Run(fmt.Sprintf("%v/%d", tc.st, tc.k), func(t *testing.T) {
			require.Equal(t, tc.want, keyOf(tr.Search(tc.k, tc.st)))
			it := tr.MakeIter()
			it.Seek(tc.k, tc.st)
			require.Equal(t, tc.want != none, it.Valid())
			require.Equal(t, tc.want, keyOf(it.Cur()))
		})
	}
}

func TestSearchTypeString(t *testing.T) {
	require.Equal(t, "eq", Equal.String())
	require.Equal(t, "lt", Less.String())
	require.Equal(t, "gt", Greater.String())
	require.Equal(t, "le", LessEqual.String())
	require.Equal(t, "ge", GreaterEqual.String())
	require.Equal(t, "invalid", SearchType(0).String())
}

func TestSubst(t *testing.T) {
	tr := newTestTree()
	ns := nodes(5, 3, 8, 1, 4)
	for _, n := range ns {
		tr.Insert(n)
	}

	for _, i := range []int{0, 1, 3} {
		repl := &testNode{key: ns[i].key}
		require.Same(t, ns[i], tr.Subst(repl))
		require.Same(t, repl, tr.Search(repl.key, Equal))
		requireValid(t, tr, len(ns))
	}
	require.Equal(t, []int{1, 3, 4, 5, 8}, forward(tr))

	require.Nil(t, tr.Subst(&testNode{key: 6}))
	requireValid(t, tr, len(ns))
	require.Nil(t, newTestTree().Subst(&testNode{key: 1}))
}

func TestPurge(t *testing.T) {
	tr := newTestTree()
	for _, n := range nodes(1, 2, 3) {
		tr.Insert(n)
	}
	tr.Purge()
	require.True(t, tr.IsEmpty())
	requireValid(t, tr, 0)
	require.Nil(t, tr.Search(2, Equal))

	// Purged nodes are reusable.
	for _, n := range nodes(4, 5) {
		tr.Insert(n)
	}
	requireValid(t, tr, 2)
}

func TestCheck(t *testing.T) {
	t.Run("balance", func(t *testing.T) {
		tr := newTestTree()
		tr.Build(nodes(1, 2, 3))
		tr.Root().bf = 1
		require.ErrorIs(t, tr.Check(), ErrBalance)
	})
	t.Run("out of range", func(t *testing.T) {
		tr := newTestTree()
		tr.Build(nodes(1, 2))
		child := tr.Root().greater
		child.greater = &testNode{key: 3}
		child.bf = 1
		tr.Root().bf = 2
		require.ErrorIs(t, tr.Check(), ErrBalance)
	})
	t.Run("order", func(t *testing.T) {
		tr := newTestTree()
		tr.Build(nodes(1, 2, 3))
		tr.Root().key = 10
		require.ErrorIs(t, tr.Check(), ErrOrder)
	})
}

func FuzzInsertRemove(f *testing.F) {
	f.Add([]byte{0x45, 0x43, 0x48, 0x05})
	f.Add([]byte{0x41, 0x42, 0x43, 0x44, 0x45, 0x02, 0x04})
	f.Fuzz(func(t *testing.T, ops []byte) {
		tr := newTestTree()
		present := map[int]bool{}
		for _, op := range ops {
			k := int(op & 0x3f)
			if op&0x40 != 0 {
				tr.Insert(&testNode{key: k})
				present[k] = true
			} else {
				require.Equal(t, present[k], tr.Remove(k) != nil)
				delete(present, k)
			}
		}
		requireValid(t, tr, len(present))
	})
}
