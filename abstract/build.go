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

// Build replaces the contents of the tree with nodes, which must be in
// strictly ascending key order. This is not checked. The result has the
// minimum height possible for len(nodes) nodes and is built in linear time.
func (t *Tree[K, H, A]) Build(nodes []H) {
	i := 0
	t.BuildFunc(len(nodes), func() H {
		h := nodes[i]
		i++
		return h
	})
}

// BuildFunc is like Build but takes the n nodes one at a time from next.
//
// Each subtree with an odd number of nodes below its root puts the extra one
// in its greater subtree. Subtrees are completed from the least key upwards;
// the roots whose less subtree is done but whose greater subtree is not are
// kept on a stack threaded through their greater links.
func (t *Tree[K, H, A]) BuildFunc(n int, next func() H) {
	null := t.abs.Null()
	if n <= 0 {
		t.root = null
		return
	}

	// branch gives the path to the subtree being built. Bit d of rem is set
	// when the greater subtree at depth d has one more node than the less
	// subtree.
	var branch, rem branchSet
	var depth uint

	// Number of nodes in the current subtree.
	numSub := n

	lessParent := null
	var h, child H
	for {
		for numSub > 2 {
			numSub--
			rem.set(depth, numSub&1 != 0)
			branch.set(depth, false)
			depth++
			numSub >>= 1
		}

		if numSub == 2 {
			h, child = next(), next()
			t.abs.SetLess(child, null)
			t.abs.SetGreater(child, null)
			t.abs.SetBalanceFactor(child, 0)
			t.abs.SetLess(h, null)
			t.abs.SetGreater(h, child)
			t.abs.SetBalanceFactor(h, 1)
		} else {
			h = next()
			t.abs.SetLess(h, null)
			t.abs.SetGreater(h, null)
			t.abs.SetBalanceFactor(h, 0)
		}

		for depth > 0 {
			depth--
			if !branch.greater(depth) {
				// A less subtree is done.
				break
			}
			// A greater subtree is done: pop its parent and attach it.
			child = h
			h = lessParent
			lessParent = t.abs.GetGreater(h)
			t.abs.SetGreater(h, child)
			numSub = numSub<<1 + 1 - rem.bit(depth)
			if numSub&(numSub-1) == 0 {
				// A power of two: the greater subtree is a level deeper.
				t.abs.SetBalanceFactor(h, 1)
			} else {
				t.abs.SetBalanceFactor(h, 0)
			}
		}

		if numSub == n {
			break
		}

		// The finished subtree is the less subtree of the next node.
		child = h
		h = next()
		t.abs.SetLess(h, child)
		t.abs.SetGreater(h, lessParent)
		lessParent = h

		branch.set(depth, true)
		numSub += rem.bit(depth)
		depth++
	}
	t.root = h
}
