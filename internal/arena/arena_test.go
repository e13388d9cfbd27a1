package arena

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAlloc(t *testing.T) {
	a := Make[string, int](4)
	require.Equal(t, 0, a.Len())

	h1 := a.Alloc("a", 1)
	h2 := a.Alloc("b", 2)
	require.NotEqual(t, h1, h2)
	require.Equal(t, 2, a.Len())
	require.Equal(t, "a", a.Key(h1))
	require.Equal(t, 2, a.Value(h2))
	require.Equal(t, Null, a.Less(h1))
	require.Equal(t, Null, a.Greater(h1))
	require.Equal(t, 0, a.BalanceFactor(h1))

	a.SetLess(h1, h2)
	a.SetGreater(h2, h1)
	a.SetBalanceFactor(h1, -1)
	a.SetKey(h2, "c")
	a.SetValue(h2, 3)
	require.Equal(t, h2, a.Less(h1))
	require.Equal(t, h1, a.Greater(h2))
	require.Equal(t, -1, a.BalanceFactor(h1))
	require.Equal(t, "c", a.Key(h2))
	require.Equal(t, 3, a.Value(h2))
}

func TestFreeReuses(t *testing.T) {
	var a Arena[int, int]
	hs := make([]Handle, 5)
	for i := range hs {
		hs[i] = a.Alloc(i, i)
	}
	a.Free(hs[1])
	a.Free(hs[3])
	require.Equal(t, 3, a.Len())
	require.Equal(t, 5, a.Cap())

	// Freed slots come back last in, first out, and come back clean.
	h := a.Alloc(10, 10)
	require.Equal(t, hs[3], h)
	require.Equal(t, Null, a.Greater(h))
	require.Equal(t, hs[1], a.Alloc(11, 11))
	require.Equal(t, 5, a.Cap())

	require.Equal(t, Handle(5), a.Alloc(12, 12))
	require.Equal(t, 6, a.Len())
	require.Equal(t, 10, a.Key(hs[3]))
}

func TestZeroValue(t *testing.T) {
	var a Arena[int, struct{}]
	h := a.Alloc(1, struct{}{})
	require.Equal(t, Handle(0), h)
	a.Free(h)
	require.Equal(t, 0, a.Len())
	require.Equal(t, h, a.Alloc(2, struct{}{}))
	require.Equal(t, 2, a.Key(h))
}

func TestReset(t *testing.T) {
	a := Make[int, *int](0)
	v := 7
	for i := 0; i < 10; i++ {
		a.Alloc(i, &v)
	}
	a.Free(3)
	a.Reset()
	require.Equal(t, 0, a.Len())
	require.Equal(t, 0, a.Cap())
	require.Equal(t, Handle(0), a.Alloc(5, nil))
	require.Nil(t, a.Value(0))
}
