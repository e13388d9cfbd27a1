// Copyright 2021 Andrew Werner.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

// Package avltree provides an ordered map backed by an AVL tree whose nodes
// live in a slab and refer to each other by index. The tree algorithms are in
// package abstract, which can be used directly for intrusive trees over
// caller-owned nodes.
package avltree

import (
	"errors"
	"fmt"

	"github.com/ajwerner/avltree/abstract"
	"github.com/ajwerner/avltree/internal/arena"
)

// SearchType selects the entry found by Map.Search and Iterator.Seek.
type SearchType = abstract.SearchType

const (
	Equal        = abstract.Equal
	Less         = abstract.Less
	Greater      = abstract.Greater
	LessEqual    = abstract.LessEqual
	GreaterEqual = abstract.GreaterEqual
)

var (
	// ErrUnsorted is returned when keys passed to Build are not strictly
	// ascending.
	ErrUnsorted = errors.New("keys are not strictly ascending")
	// ErrLengthMismatch is returned when Build gets a different number of
	// keys and values.
	ErrLengthMismatch = errors.New("keys and values differ in length")
)

type abstractor[K, V any] struct {
	a   *arena.Arena[K, V]
	cmp func(K, K) int
}

func (s abstractor[K, V]) Null() arena.Handle { return arena.Null }

func (s abstractor[K, V]) GetLess(h arena.Handle) arena.Handle { return s.a.Less(h) }

func (s abstractor[K, V]) SetLess(h, less arena.Handle) { s.a.SetLess(h, less) }

func (s abstractor[K, V]) GetGreater(h arena.Handle) arena.Handle { return s.a.Greater(h) }

func (s abstractor[K, V]) SetGreater(h, greater arena.Handle) { s.a.SetGreater(h, greater) }

func (s abstractor[K, V]) GetBalanceFactor(h arena.Handle) int { return s.a.BalanceFactor(h) }

func (s abstractor[K, V]) SetBalanceFactor(h arena.Handle, bf int) { s.a.SetBalanceFactor(h, bf) }

func (s abstractor[K, V]) CompareKeyNode(k K, h arena.Handle) int {
	return s.cmp(k, s.a.Key(h))
}

func (s abstractor[K, V]) CompareNodeNode(h1, h2 arena.Handle) int {
	return s.cmp(s.a.Key(h1), s.a.Key(h2))
}

// Map is an ordered map from K to V. Keys are unique.
//
// Write operations are not safe for concurrent mutation by multiple
// goroutines, but Read operations are. A Map must not be copied.
type Map[K, V any] struct {
	a arena.Arena[K, V]
	t abstract.Tree[K, arena.Handle, abstractor[K, V]]
}

// New returns an empty Map ordered by cmp.
func New[K, V any](cmp func(K, K) int) *Map[K, V] {
	m := &Map[K, V]{}
	m.t = abstract.MakeTree[K, arena.Handle](abstractor[K, V]{a: &m.a, cmp: cmp})
	return m
}

// FromSorted returns a Map holding keys[i] -> values[i]. The keys must be
// strictly ascending under cmp. values may be nil, in which case every key
// maps to the zero V.
func FromSorted[K, V any](cmp func(K, K) int, keys []K, values []V) (*Map[K, V], error) {
	m := New[K, V](cmp)
	if err := m.Build(keys, values); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Map[K, V]) cmp() func(K, K) int { return m.t.Abstractor().cmp }

// Insert adds k -> v if k is not in the map. It reports whether it did; an
// existing entry is left as it is.
func (m *Map[K, V]) Insert(k K, v V) (inserted bool) {
	h := m.a.Alloc(k, v)
	if m.t.Insert(h) != h {
		m.a.Free(h)
		return false
	}
	return true
}

// Upsert adds k -> v, replacing the entry with an equal key if there is one.
func (m *Map[K, V]) Upsert(k K, v V) (replacedV V, replaced bool) {
	h := m.a.Alloc(k, v)
	old := m.t.Insert(h)
	if old == h {
		return replacedV, false
	}
	m.t.Subst(h)
	replacedV = m.a.Value(old)
	m.a.Free(old)
	return replacedV, true
}

// Replace replaces the entry with key k by k -> v. It does nothing and
// returns false if k is not in the map.
func (m *Map[K, V]) Replace(k K, v V) (replacedV V, replaced bool) {
	h := m.a.Alloc(k, v)
	old := m.t.Subst(h)
	if old == arena.Null {
		m.a.Free(h)
		return replacedV, false
	}
	replacedV = m.a.Value(old)
	m.a.Free(old)
	return replacedV, true
}

// Get returns the value for k.
func (m *Map[K, V]) Get(k K) (v V, ok bool) {
	h := m.t.Search(k, abstract.Equal)
	if h == arena.Null {
		return v, false
	}
	return m.a.Value(h), true
}

// Has returns whether k is in the map.
func (m *Map[K, V]) Has(k K) bool {
	return m.t.Search(k, abstract.Equal) != arena.Null
}

// Delete removes k from the map and returns its value.
func (m *Map[K, V]) Delete(k K) (v V, removed bool) {
	h := m.t.Remove(k)
	if h == arena.Null {
		return v, false
	}
	v = m.a.Value(h)
	m.a.Free(h)
	return v, true
}

// Search returns the entry selected by st relative to k. See SearchType.
func (m *Map[K, V]) Search(k K, st SearchType) (K, V, bool) {
	return m.entry(m.t.Search(k, st))
}

// Min returns the entry with the least key.
func (m *Map[K, V]) Min() (K, V, bool) {
	return m.entry(m.t.SearchLeast())
}

// Max returns the entry with the greatest key.
func (m *Map[K, V]) Max() (K, V, bool) {
	return m.entry(m.t.SearchGreatest())
}

func (m *Map[K, V]) entry(h arena.Handle) (k K, v V, ok bool) {
	if h == arena.Null {
		return k, v, false
	}
	return m.a.Key(h), m.a.Value(h), true
}

// Len returns the number of entries in the map.
func (m *Map[K, V]) Len() int {
	return m.a.Len()
}

// Height returns the height of the underlying tree.
func (m *Map[K, V]) Height() int {
	return m.t.Height()
}

// Check verifies the structure of the underlying tree.
func (m *Map[K, V]) Check() error {
	if err := m.t.Check(); err != nil {
		return err
	}
	if n := m.t.Len(); n != m.a.Len() {
		return fmt.Errorf("tree holds %d nodes, %d allocated", n, m.a.Len())
	}
	return nil
}

// Clear removes all entries.
func (m *Map[K, V]) Clear() {
	m.t.Purge()
	m.a.Reset()
}

// Build replaces the contents of the map with keys[i] -> values[i] in linear
// time. The keys must be strictly ascending; values may be nil. On error the
// map is left unchanged.
func (m *Map[K, V]) Build(keys []K, values []V) error {
	if values != nil && len(values) != len(keys) {
		return fmt.Errorf("%w: %d keys, %d values", ErrLengthMismatch, len(keys), len(values))
	}
	cmp := m.cmp()
	for i := 1; i < len(keys); i++ {
		if cmp(keys[i-1], keys[i]) >= 0 {
			return fmt.Errorf("%w: at index %d", ErrUnsorted, i)
		}
	}
	m.Clear()
	i := 0
	m.t.BuildFunc(len(keys), func() arena.Handle {
		var v V
		if values != nil {
			v = values[i]
		}
		h := m.a.Alloc(keys[i], v)
		i++
		return h
	})
	return nil
}
