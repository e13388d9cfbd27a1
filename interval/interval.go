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

// Package interval implements a set of points stored as disjoint half-open
// ranges in an AVL tree keyed by range start.
package interval

import (
	"errors"
	"fmt"
	"iter"

	"github.com/ajwerner/avltree/abstract"
	"github.com/ajwerner/avltree/internal/arena"
)

// Range is the half-open range [Start, End). It is empty if Start is not
// less than End.
type Range[T any] struct {
	Start, End T
}

func (r Range[T]) String() string {
	return fmt.Sprintf("[%v, %v)", r.Start, r.End)
}

// ErrNotCoalesced is returned by Check when two stored ranges overlap or
// touch.
var ErrNotCoalesced = errors.New("ranges not coalesced")

type abstractor[T any] struct {
	a   *arena.Arena[Range[T], struct{}]
	cmp func(T, T) int
}

func (s abstractor[T]) Null() arena.Handle { return arena.Null }

func (s abstractor[T]) GetLess(h arena.Handle) arena.Handle { return s.a.Less(h) }

func (s abstractor[T]) SetLess(h, less arena.Handle) { s.a.SetLess(h, less) }

func (s abstractor[T]) GetGreater(h arena.Handle) arena.Handle { return s.a.Greater(h) }

func (s abstractor[T]) SetGreater(h, greater arena.Handle) { s.a.SetGreater(h, greater) }

func (s abstractor[T]) GetBalanceFactor(h arena.Handle) int { return s.a.BalanceFactor(h) }

func (s abstractor[T]) SetBalanceFactor(h arena.Handle, bf int) { s.a.SetBalanceFactor(h, bf) }

func (s abstractor[T]) CompareKeyNode(k T, h arena.Handle) int {
	return s.cmp(k, s.a.Key(h).Start)
}

func (s abstractor[T]) CompareNodeNode(h1, h2 arena.Handle) int {
	return s.cmp(s.a.Key(h1).Start, s.a.Key(h2).Start)
}

// Set is a set of points of an ordered domain T. Overlapping and adjacent
// ranges are merged as they are added, so the stored ranges are disjoint
// and separated by gaps.
//
// A Set is not safe for concurrent mutation and must not be copied.
type Set[T any] struct {
	cmp func(T, T) int
	a   arena.Arena[Range[T], struct{}]
	t   abstract.Tree[T, arena.Handle, abstractor[T]]
}

// NewSet returns an empty Set over the domain ordered by cmp.
func NewSet[T any](cmp func(T, T) int) *Set[T] {
	s := &Set[T]{cmp: cmp}
	s.t = abstract.MakeTree[T, arena.Handle](abstractor[T]{a: &s.a, cmp: cmp})
	return s
}

func (s *Set[T]) empty(r Range[T]) bool {
	return s.cmp(r.Start, r.End) >= 0
}

func (s *Set[T]) insert(r Range[T]) {
	s.t.Insert(s.a.Alloc(r, struct{}{}))
}

func (s *Set[T]) remove(h arena.Handle) {
	s.t.Remove(s.a.Key(h).Start)
	s.a.Free(h)
}

// Add adds the points of r to the set.
func (s *Set[T]) Add(r Range[T]) {
	if s.empty(r) {
		return
	}
	start, end := r.Start, r.End
	if h := s.t.Search(start, abstract.LessEqual); h != arena.Null {
		p := s.a.Key(h)
		if s.cmp(p.End, start) >= 0 {
			if s.cmp(p.End, end) >= 0 {
				return
			}
			start = p.Start
			s.remove(h)
		}
	}
	for {
		h := s.t.Search(start, abstract.GreaterEqual)
		if h == arena.Null {
			break
		}
		n := s.a.Key(h)
		if s.cmp(n.Start, end) > 0 {
			break
		}
		if s.cmp(n.End, end) > 0 {
			end = n.End
		}
		s.remove(h)
	}
	s.insert(Range[T]{Start: start, End: end})
}

// Remove removes the points of r from the set, splitting a stored range in
// two if r falls inside it.
func (s *Set[T]) Remove(r Range[T]) {
	if s.empty(r) {
		return
	}
	if h := s.t.Search(r.Start, abstract.Less); h != arena.Null {
		p := s.a.Key(h)
		if s.cmp(p.End, r.Start) > 0 {
			// The start does not change, so the node keeps its place.
			s.a.SetKey(h, Range[T]{Start: p.Start, End: r.Start})
			if s.cmp(p.End, r.End) > 0 {
				s.insert(Range[T]{Start: r.End, End: p.End})
				return
			}
		}
	}
	for {
		h := s.t.Search(r.Start, abstract.GreaterEqual)
		if h == arena.Null {
			return
		}
		n := s.a.Key(h)
		if s.cmp(n.Start, r.End) >= 0 {
			return
		}
		if s.cmp(n.End, r.End) > 0 {
			// Nothing else starts before r.End, so moving the start of n
			// up to it keeps the tree ordered.
			s.a.SetKey(h, Range[T]{Start: r.End, End: n.End})
			return
		}
		s.remove(h)
	}
}

// Contains returns whether x is in the set.
func (s *Set[T]) Contains(x T) bool {
	h := s.t.Search(x, abstract.LessEqual)
	return h != arena.Null && s.cmp(x, s.a.Key(h).End) < 0
}

// ContainsRange returns whether every point of r is in the set. An empty
// range is always contained.
func (s *Set[T]) ContainsRange(r Range[T]) bool {
	if s.empty(r) {
		return true
	}
	h := s.t.Search(r.Start, abstract.LessEqual)
	return h != arena.Null && s.cmp(r.End, s.a.Key(h).End) <= 0
}

// Overlaps returns whether any point of r is in the set.
func (s *Set[T]) Overlaps(r Range[T]) bool {
	if s.empty(r) {
		return false
	}
	h := s.t.Search(r.End, abstract.Less)
	return h != arena.Null && s.cmp(s.a.Key(h).End, r.Start) > 0
}

// Len returns the number of disjoint ranges in the set.
func (s *Set[T]) Len() int {
	return s.a.Len()
}

// Clear removes every point from the set.
func (s *Set[T]) Clear() {
	s.t.Purge()
	s.a.Reset()
}

// All returns the stored ranges in ascending order.
func (s *Set[T]) All() iter.Seq[Range[T]] {
	return func(yield func(Range[T]) bool) {
		it := s.Iterator()
		for it.First(); it.Valid(); it.Next() {
			if !yield(it.Cur()) {
				return
			}
		}
	}
}

// Ranges returns the stored ranges in ascending order.
func (s *Set[T]) Ranges() []Range[T] {
	out := make([]Range[T], 0, s.Len())
	for r := range s.All() {
		out = append(out, r)
	}
	return out
}

// Check verifies the underlying tree and that the stored ranges are
// non-empty, disjoint and not adjacent.
func (s *Set[T]) Check() error {
	if err := s.t.Check(); err != nil {
		return err
	}
	var prev Range[T]
	first := true
	for r := range s.All() {
		if s.empty(r) {
			return fmt.Errorf("%w: empty range %v", ErrNotCoalesced, r)
		}
		if !first && s.cmp(prev.End, r.Start) >= 0 {
			return fmt.Errorf("%w: %v and %v", ErrNotCoalesced, prev, r)
		}
		prev, first = r, false
	}
	return nil
}
