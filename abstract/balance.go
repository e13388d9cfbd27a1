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

// balance rotates the subtree rooted at h, one of whose subtrees is two
// levels deeper than the other, and returns the new root of the subtree. The
// stored balance factor of h only needs the right sign.
//
// Single rotation, greater side deeper:
//
//	    h                 d
//	   / \               / \
//	  a   d      =>     h   c
//	     / \           / \
//	    b   c         a   b
//
// Double rotation, greater side deeper and d leaning less:
//
//	    h                  m
//	   / \               /   \
//	  a   d             h     d
//	     / \     =>    / \   / \
//	    m   c         a   x y   c
//	   / \
//	  x   y
//
// The less side cases are the mirror images.
func (t *Tree[K, H, A]) balance(h H) H {
	if t.abs.GetBalanceFactor(h) > 0 {
		deep := t.abs.GetGreater(h)
		if t.abs.GetBalanceFactor(deep) < 0 {
			old := h
			h = t.abs.GetLess(deep)
			t.abs.SetGreater(old, t.abs.GetLess(h))
			t.abs.SetLess(deep, t.abs.GetGreater(h))
			t.abs.SetLess(h, old)
			t.abs.SetGreater(h, deep)
			switch bf := t.abs.GetBalanceFactor(h); {
			case bf > 0:
				t.abs.SetBalanceFactor(old, -1)
				t.abs.SetBalanceFactor(deep, 0)
			case bf < 0:
				t.abs.SetBalanceFactor(deep, 1)
				t.abs.SetBalanceFactor(old, 0)
			default:
				t.abs.SetBalanceFactor(old, 0)
				t.abs.SetBalanceFactor(deep, 0)
			}
			t.abs.SetBalanceFactor(h, 0)
			return h
		}
		t.abs.SetGreater(h, t.abs.GetLess(deep))
		t.abs.SetLess(deep, h)
		if t.abs.GetBalanceFactor(deep) == 0 {
			// Only reachable on removal: the height of the subtree is
			// unchanged.
			t.abs.SetBalanceFactor(deep, -1)
			t.abs.SetBalanceFactor(h, 1)
		} else {
			t.abs.SetBalanceFactor(deep, 0)
			t.abs.SetBalanceFactor(h, 0)
		}
		return deep
	}

	deep := t.abs.GetLess(h)
	if t.abs.GetBalanceFactor(deep) > 0 {
		old := h
		h = t.abs.GetGreater(deep)
		t.abs.SetLess(old, t.abs.GetGreater(h))
		t.abs.SetGreater(deep, t.abs.GetLess(h))
		t.abs.SetGreater(h, old)
		t.abs.SetLess(h, deep)
		switch bf := t.abs.GetBalanceFactor(h); {
		case bf < 0:
			t.abs.SetBalanceFactor(old, 1)
			t.abs.SetBalanceFactor(deep, 0)
		case bf > 0:
			t.abs.SetBalanceFactor(deep, -1)
			t.abs.SetBalanceFactor(old, 0)
		default:
			t.abs.SetBalanceFactor(old, 0)
			t.abs.SetBalanceFactor(deep, 0)
		}
		t.abs.SetBalanceFactor(h, 0)
		return h
	}
	t.abs.SetLess(h, t.abs.GetGreater(deep))
	t.abs.SetGreater(deep, h)
	if t.abs.GetBalanceFactor(deep) == 0 {
		t.abs.SetBalanceFactor(deep, 1)
		t.abs.SetBalanceFactor(h, -1)
	} else {
		t.abs.SetBalanceFactor(deep, 0)
		t.abs.SetBalanceFactor(h, 0)
	}
	return deep
}
