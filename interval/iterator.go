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

package interval

import (
	"github.com/ajwerner/avltree/abstract"
	"github.com/ajwerner/avltree/internal/arena"
)

// Iterator walks the ranges of a Set in ascending order, optionally only
// those overlapping a search range. It is not safe to continue using an
// Iterator after the Set is modified.
type Iterator[T any] struct {
	s  *Set[T]
	it abstract.Iterator[T, arena.Handle, abstractor[T]]

	// bounds is the search range of an overlap scan. done is set once the
	// scan has passed its end.
	bounds Range[T]
	done   bool
}

// Iterator returns a new, unpositioned Iterator.
func (s *Set[T]) Iterator() Iterator[T] {
	return Iterator[T]{s: s, it: s.t.MakeIter()}
}

// First seeks to the first range in the Set.
func (i *Iterator[T]) First() {
	i.done = false
	i.it.First()
}

// Last seeks to the last range in the Set.
func (i *Iterator[T]) Last() {
	i.done = false
	i.it.Last()
}

func (i *Iterator[T]) Next() { i.it.Next() }

func (i *Iterator[T]) Prev() { i.it.Prev() }

// Valid returns whether the Iterator is positioned at a range.
func (i *Iterator[T]) Valid() bool { return !i.done && i.it.Valid() }

// Cur returns the range at the Iterator's current position. It is illegal
// to call Cur if the Iterator is not valid.
func (i *Iterator[T]) Cur() Range[T] { return i.s.a.Key(i.it.Cur()) }

// FirstOverlap seeks to the first range in the Set that overlaps with
// bounds.
func (i *Iterator[T]) FirstOverlap(bounds Range[T]) {
	i.bounds, i.done = bounds, false
	if i.s.empty(bounds) {
		i.done = true
		return
	}
	// Only the last range starting at or before bounds.Start can reach
	// into bounds from the left.
	i.it.Seek(bounds.Start, abstract.LessEqual)
	if !i.it.Valid() {
		i.it.First()
	} else if i.s.cmp(i.Cur().End, bounds.Start) <= 0 {
		i.it.Next()
	}
	i.checkEnd()
}

// NextOverlap positions the Iterator at the next range that overlaps with
// the bounds passed to FirstOverlap.
func (i *Iterator[T]) NextOverlap() {
	if !i.Valid() {
		return
	}
	i.it.Next()
	i.checkEnd()
}

func (i *Iterator[T]) checkEnd() {
	if i.it.Valid() && i.s.cmp(i.Cur().Start, i.bounds.End) >= 0 {
		i.done = true
	}
}
