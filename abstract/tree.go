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

// Package abstract implements an intrusive AVL tree over nodes owned by the
// caller. The tree holds nothing but the handle of its root; links, balance
// factors and keys live in the caller's nodes and are reached through an
// Abstractor.
package abstract

// Tree is an AVL tree of nodes reached through the Abstractor A.
//
// Write operations are not safe for concurrent use by multiple goroutines,
// and must not run concurrently with reads. Reads may run concurrently with
// each other. No operation allocates.
type Tree[K any, H comparable, A Abstractor[K, H]] struct {
	abs  A
	root H
}

// MakeTree returns an empty tree using abs to access nodes.
func MakeTree[K any, H comparable, A Abstractor[K, H]](abs A) Tree[K, H, A] {
	return Tree[K, H, A]{abs: abs, root: abs.Null()}
}

// New is like MakeTree but returns a pointer.
func New[K any, H comparable, A Abstractor[K, H]](abs A) *Tree[K, H, A] {
	t := MakeTree[K, H, A](abs)
	return &t
}

// Abstractor returns the Abstractor the tree was made with.
func (t *Tree[K, H, A]) Abstractor() A { return t.abs }

// Root returns the handle of the root node, or the null handle.
func (t *Tree[K, H, A]) Root() H { return t.root }

// IsEmpty returns whether the tree holds no nodes.
func (t *Tree[K, H, A]) IsEmpty() bool { return t.root == t.abs.Null() }

// Purge forgets every node in the tree. The nodes themselves are untouched;
// releasing them is up to the caller.
func (t *Tree[K, H, A]) Purge() { t.root = t.abs.Null() }

// child returns the less child of h if cmp is negative and the greater child
// otherwise.
func (t *Tree[K, H, A]) child(h H, cmp int) H {
	if cmp < 0 {
		return t.abs.GetLess(h)
	}
	return t.abs.GetGreater(h)
}

func (t *Tree[K, H, A]) setChild(h H, cmp int, c H) {
	if cmp < 0 {
		t.abs.SetLess(h, c)
	} else {
		t.abs.SetGreater(h, c)
	}
}

// Insert links the node h into the tree. The links and balance factor of h
// are overwritten. If a node with an equal key is already present the tree is
// left unchanged and that node is returned, so callers detect a duplicate by
// checking whether the result differs from h.
func (t *Tree[K, H, A]) Insert(h H) H {
	null := t.abs.Null()
	t.abs.SetLess(h, null)
	t.abs.SetGreater(h, null)
	t.abs.SetBalanceFactor(h, 0)

	if t.root == null {
		t.root = h
		return h
	}

	// Rebalancing can only be needed at the deepest node on the path whose
	// balance factor was already non-zero. Remember it and its parent.
	unbal, parentUnbal := null, null
	var depth, unbalDepth uint
	var branch branchSet

	hh, parent := t.root, null
	var cmp int
	for {
		if t.abs.GetBalanceFactor(hh) != 0 {
			unbal, parentUnbal, unbalDepth = hh, parent, depth
		}
		cmp = t.abs.CompareNodeNode(h, hh)
		if cmp == 0 {
			return hh
		}
		parent = hh
		hh = t.child(hh, cmp)
		branch.set(depth, cmp > 0)
		depth++
		if hh == null {
			break
		}
	}
	t.setChild(parent, cmp, h)

	depth = unbalDepth
	if unbal == null {
		hh = t.root
	} else {
		cmp = branch.dir(depth)
		depth++
		bf := t.abs.GetBalanceFactor(unbal) + cmp
		hh = t.child(unbal, cmp)
		if bf != -2 && bf != 2 {
			t.abs.SetBalanceFactor(unbal, bf)
			unbal = null
		}
	}

	// Every node below unbal on the path was balanced and now leans towards
	// the new leaf.
	for hh != null && hh != h {
		cmp = branch.dir(depth)
		depth++
		t.abs.SetBalanceFactor(hh, cmp)
		hh = t.child(hh, cmp)
	}

	if unbal != null {
		unbal = t.balance(unbal)
		if parentUnbal == null {
			t.root = unbal
		} else {
			t.setChild(parentUnbal, branch.dir(unbalDepth-1), unbal)
		}
	}
	return h
}

// Search returns the node selected by st relative to k, or the null handle
// if there is none.
func (t *Tree[K, H, A]) Search(k K, st SearchType) H {
	null := t.abs.Null()
	targetCmp := st.targetCmp()
	match := null
	for h := t.root; h != null; {
		cmp := t.abs.CompareKeyNode(k, h)
		if cmp == 0 {
			if st&Equal != 0 {
				return h
			}
			cmp = -targetCmp
		} else if targetCmp != 0 && cmp^targetCmp >= 0 {
			// cmp and targetCmp have the same sign.
			match = h
		}
		h = t.child(h, cmp)
	}
	return match
}

// SearchLeast returns the node with the least key, or the null handle.
func (t *Tree[K, H, A]) SearchLeast() H {
	null := t.abs.Null()
	h, parent := t.root, null
	for h != null {
		parent = h
		h = t.abs.GetLess(h)
	}
	return parent
}

// SearchGreatest returns the node with the greatest key, or the null handle.
func (t *Tree[K, H, A]) SearchGreatest() H {
	null := t.abs.Null()
	h, parent := t.root, null
	for h != null {
		parent = h
		h = t.abs.GetGreater(h)
	}
	return parent
}

// Subst puts newNode in the place of the node with an equal key, copying its
// links and balance factor. It returns the node which was replaced, or the
// null handle if no node has the key of newNode, in which case the tree is
// unchanged.
func (t *Tree[K, H, A]) Subst(newNode H) H {
	null := t.abs.Null()
	h, parent := t.root, null
	var lastCmp int
	for {
		if h == null {
			return null
		}
		cmp := t.abs.CompareNodeNode(newNode, h)
		if cmp == 0 {
			break
		}
		lastCmp = cmp
		parent = h
		h = t.child(h, cmp)
	}

	t.abs.SetLess(newNode, t.abs.GetLess(h))
	t.abs.SetGreater(newNode, t.abs.GetGreater(h))
	t.abs.SetBalanceFactor(newNode, t.abs.GetBalanceFactor(h))
	if parent == null {
		t.root = newNode
	} else {
		t.setChild(parent, lastCmp, newNode)
	}
	return h
}

// MakeIter returns a new, unpositioned Iterator. It is not safe to continue
// using an Iterator after modifications are made to the tree.
func (t *Tree[K, H, A]) MakeIter() Iterator[K, H, A] {
	it := Iterator[K, H, A]{t: t}
	it.s.invalidate()
	return it
}
