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

package abstract

// Iterator is responsible for search and traversal within a Tree. Instead of
// parent links it keeps the path from the root to its current node.
type Iterator[K any, H comparable, A Abstractor[K, H]] struct {
	t *Tree[K, H, A]
	s pathStack[H]
}

// Seek positions the iterator at the node Search(k, st) would return. The
// iterator is invalid if there is no such node.
func (i *Iterator[K, H, A]) Seek(k K, st SearchType) {
	t := i.t
	null := t.abs.Null()
	i.s.invalidate()

	targetCmp := st.targetCmp()
	var d uint
	for h := t.root; h != null; d++ {
		cmp := t.abs.CompareKeyNode(k, h)
		if cmp == 0 {
			if st&Equal != 0 {
				i.s.depth = d
				return
			}
			cmp = -targetCmp
		} else if targetCmp != 0 && cmp^targetCmp >= 0 {
			// Best candidate so far. The path to it is already recorded and
			// is not overwritten by descending further.
			i.s.depth = d
		}
		h = t.child(h, cmp)
		if h == null {
			return
		}
		i.s.branch.set(d, cmp > 0)
		i.s.h[d] = h
	}
}

// First positions the iterator at the node with the least key.
func (i *Iterator[K, H, A]) First() {
	i.s.branch.reset()
	i.descend(false)
}

// Last positions the iterator at the node with the greatest key.
func (i *Iterator[K, H, A]) Last() {
	i.s.branch.setAll()
	i.descend(true)
}

// descend follows one kind of branch from the root as far as it goes. The
// branch bits must already be set accordingly.
func (i *Iterator[K, H, A]) descend(greater bool) {
	null := i.t.abs.Null()
	i.s.invalidate()
	h := i.t.root
	if h == null {
		return
	}
	i.s.depth = 0
	for h = i.t.child(h, dirOf(greater)); h != null; h = i.t.child(h, dirOf(greater)) {
		i.s.h[i.s.depth] = h
		i.s.depth++
	}
}

func dirOf(greater bool) int {
	if greater {
		return 1
	}
	return -1
}

// Valid returns whether the iterator is positioned at a node.
func (i *Iterator[K, H, A]) Valid() bool {
	return i.s.valid()
}

// Cur returns the node at the iterator's position, or the null handle if the
// iterator is not valid.
func (i *Iterator[K, H, A]) Cur() H {
	switch {
	case !i.s.valid():
		return i.t.abs.Null()
	case i.s.depth == 0:
		return i.t.root
	default:
		return i.s.h[i.s.depth-1]
	}
}

// Next positions the iterator at the node immediately following its current
// position. Moving past the last node invalidates the iterator.
func (i *Iterator[K, H, A]) Next() {
	i.step(1)
}

// Prev positions the iterator at the node immediately preceding its current
// position. Moving past the first node invalidates the iterator.
func (i *Iterator[K, H, A]) Prev() {
	i.step(-1)
}

// step moves to the in-order neighbour on the side given by dir.
func (i *Iterator[K, H, A]) step(dir int) {
	if !i.s.valid() {
		return
	}
	t := i.t
	null := t.abs.Null()
	h := t.child(i.Cur(), dir)
	if h == null {
		// Climb until the path turns towards dir.
		for {
			if i.s.depth == 0 {
				i.s.invalidate()
				return
			}
			i.s.depth--
			if i.s.branch.dir(i.s.depth) != dir {
				return
			}
		}
	}
	// Go one step towards dir and then as far as possible the other way.
	i.s.push(dir > 0, h)
	for h = t.child(h, -dir); h != null; h = t.child(h, -dir) {
		i.s.push(dir < 0, h)
	}
}
