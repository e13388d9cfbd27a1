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

package avltree

import (
	"iter"

	"github.com/ajwerner/avltree/abstract"
	"github.com/ajwerner/avltree/internal/arena"
)

// Iterator walks the entries of a Map in key order. It is not safe to
// continue using an Iterator after the Map is modified.
type Iterator[K, V any] struct {
	m  *Map[K, V]
	it abstract.Iterator[K, arena.Handle, abstractor[K, V]]
}

// Iterator returns a new, unpositioned Iterator.
func (m *Map[K, V]) Iterator() Iterator[K, V] {
	return Iterator[K, V]{m: m, it: m.t.MakeIter()}
}

func (it *Iterator[K, V]) First() { it.it.First() }

func (it *Iterator[K, V]) Last() { it.it.Last() }

// Seek positions the iterator at the entry Map.Search(k, st) would return.
func (it *Iterator[K, V]) Seek(k K, st SearchType) { it.it.Seek(k, st) }

func (it *Iterator[K, V]) Next() { it.it.Next() }

func (it *Iterator[K, V]) Prev() { it.it.Prev() }

func (it *Iterator[K, V]) Valid() bool { return it.it.Valid() }

// Cur returns the key at the Iterator's current position. It is illegal
// to call Cur if the Iterator is not valid.
func (it *Iterator[K, V]) Cur() K { return it.m.a.Key(it.it.Cur()) }

// Value returns the value at the Iterator's current position. It is illegal
// to call Value if the Iterator is not valid.
func (it *Iterator[K, V]) Value() V { return it.m.a.Value(it.it.Cur()) }

// All returns all entries in ascending key order.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		it := m.Iterator()
		for it.First(); it.Valid(); it.Next() {
			if !yield(it.Cur(), it.Value()) {
				return
			}
		}
	}
}

// Backward returns all entries in descending key order.
func (m *Map[K, V]) Backward() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		it := m.Iterator()
		for it.Last(); it.Valid(); it.Prev() {
			if !yield(it.Cur(), it.Value()) {
				return
			}
		}
	}
}

// Ascend returns the entries with keys greater than or equal to from in
// ascending order.
func (m *Map[K, V]) Ascend(from K) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		it := m.Iterator()
		for it.Seek(from, GreaterEqual); it.Valid(); it.Next() {
			if !yield(it.Cur(), it.Value()) {
				return
			}
		}
	}
}

// Descend returns the entries with keys less than or equal to from in
// descending order.
func (m *Map[K, V]) Descend(from K) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		it := m.Iterator()
		for it.Seek(from, LessEqual); it.Valid(); it.Prev() {
			if !yield(it.Cur(), it.Value()) {
				return
			}
		}
	}
}
