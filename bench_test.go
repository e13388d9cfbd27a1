package avltree

import (
	"cmp"
	"fmt"
	"math/rand/v2"
	"testing"
)

var benchSizes = []int{1_000, 100_000}

func BenchmarkInsert(b *testing.B) {
	for _, n := range benchSizes {
		keys := rand.New(rand.NewPCG(42, 42)).Perm(n)
		b.Run(fmt.Sprint(n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				m := New[int, int](cmp.Compare[int])
				for _, k := range keys {
					m.Insert(k, k)
				}
			}
		})
	}
}

func BenchmarkGet(b *testing.B) {
	for _, n := range benchSizes {
		rng := rand.New(rand.NewPCG(42, 42))
		m := New[int, int](cmp.Compare[int])
		for _, k := range rng.Perm(n) {
			m.Insert(k, k)
		}
		b.Run(fmt.Sprint(n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				m.Get(i % n)
			}
		})
	}
}

func BenchmarkBuild(b *testing.B) {
	for _, n := range benchSizes {
		keys := make([]int, n)
		for i := range keys {
			keys[i] = i
		}
		m := New[int, int](cmp.Compare[int])
		b.Run(fmt.Sprint(n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = m.Build(keys, nil)
			}
		})
	}
}

func BenchmarkIterate(b *testing.B) {
	m := New[int, int](cmp.Compare[int])
	for _, k := range rand.New(rand.NewPCG(42, 42)).Perm(100_000) {
		m.Insert(k, k)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for range m.All() {
		}
	}
}
