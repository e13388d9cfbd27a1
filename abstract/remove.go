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

// Remove unlinks the node with key k and returns it, or returns the null
// handle if there is no such node. The returned node is always the one whose
// key equals k, even when a neighbouring node has to take its position in
// the tree. The links of the returned node are left stale.
func (t *Tree[K, H, A]) Remove(k K) H {
	null := t.abs.Null()

	var branch branchSet
	var depth uint

	// shortened is the side of the path's last node whose subtree loses a
	// level, as the sign of a comparison.
	var cmp, shortened int
	h, parent := t.root, null
	for {
		if h == null {
			return null
		}
		cmp = t.abs.CompareKeyNode(k, h)
		if cmp == 0 {
			break
		}
		parent = h
		h = t.child(h, cmp)
		branch.set(depth, cmp > 0)
		depth++
		shortened = cmp
	}
	rm, parentRm, rmDepth := h, parent, depth

	// A node with children is replaced by its in-order neighbour from the
	// deeper subtree, which has at most one child of its own.
	var child H
	if t.abs.GetBalanceFactor(h) < 0 {
		cmp = -1
	} else {
		cmp = 1
	}
	child = t.child(h, cmp)
	branch.set(depth, cmp > 0)
	depth++

	if child != null {
		cmp = -cmp
		for {
			parent = h
			h = child
			child = t.child(h, cmp)
			branch.set(depth, cmp > 0)
			depth++
			if child == null {
				break
			}
		}
		if parent == rm {
			// The neighbour is an immediate child of rm.
			shortened = -cmp
		} else {
			shortened = cmp
		}
		// The other child of the neighbour, which may not be null.
		child = t.child(h, -cmp)
	}

	if parent == null {
		// The tree held one or two nodes.
		t.root = child
	} else {
		t.setChild(parent, shortened, child)
	}

	// path is the deepest node whose subtree lost a level. If that is rm
	// itself, it is the neighbour which is about to take rm's place.
	path := parent
	if parent == rm {
		path = h
	}

	if h != rm {
		t.abs.SetLess(h, t.abs.GetLess(rm))
		t.abs.SetGreater(h, t.abs.GetGreater(rm))
		t.abs.SetBalanceFactor(h, t.abs.GetBalanceFactor(rm))
		if parentRm == null {
			t.root = h
		} else {
			t.setChild(parentRm, branch.dir(rmDepth-1), h)
		}
	}

	if path == null {
		return rm
	}

	// Turn the child links on the way from the root to path into a list of
	// parent links so the climb back up needs no stack of handles.
	h, parent = t.root, null
	depth = 0
	for h != path {
		cmp = branch.dir(depth)
		depth++
		child = t.child(h, cmp)
		t.setChild(h, cmp, parent)
		parent = h
		h = child
	}

	// Climb back to the root restoring the links and rebalancing while the
	// subtree below keeps getting shorter.
	reduced := true
	cmp = shortened
	for {
		if reduced {
			bf := t.abs.GetBalanceFactor(h) - cmp
			if bf == -2 || bf == 2 {
				h = t.balance(h)
				bf = t.abs.GetBalanceFactor(h)
			} else {
				t.abs.SetBalanceFactor(h, bf)
			}
			reduced = bf == 0
		}
		if parent == null {
			break
		}
		child = h
		h = parent
		depth--
		cmp = branch.dir(depth)
		parent = t.child(h, cmp)
		t.setChild(h, cmp, child)
	}
	t.root = h
	return rm
}
