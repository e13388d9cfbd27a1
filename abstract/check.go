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

import (
	"errors"
	"fmt"
)

var (
	// ErrOrder is returned by Check when the nodes are not in strictly
	// ascending key order.
	ErrOrder = errors.New("nodes out of order")
	// ErrBalance is returned by Check when a stored balance factor is out of
	// range or disagrees with the heights of the subtrees.
	ErrBalance = errors.New("bad balance factor")
	// ErrDepth is returned by Check when a path is longer than MaxDepth.
	ErrDepth = errors.New("tree deeper than MaxDepth")
)

// Check walks the whole tree and verifies the search order and the balance
// factor of every node. It is meant for tests and debugging.
func (t *Tree[K, H, A]) Check() error {
	c := checker[K, H, A]{t: t, prev: t.abs.Null()}
	_, err := c.walk(t.root, 1)
	return err
}

type checker[K any, H comparable, A Abstractor[K, H]] struct {
	t    *Tree[K, H, A]
	prev H
}

// walk returns the height of the subtree rooted at h.
func (c *checker[K, H, A]) walk(h H, depth int) (int, error) {
	abs := c.t.abs
	null := abs.Null()
	if h == null {
		return 0, nil
	}
	if depth > MaxDepth {
		return 0, ErrDepth
	}
	lh, err := c.walk(abs.GetLess(h), depth+1)
	if err != nil {
		return 0, err
	}
	if c.prev != null && abs.CompareNodeNode(c.prev, h) >= 0 {
		return 0, fmt.Errorf("%w: %v is not less than %v", ErrOrder, c.prev, h)
	}
	c.prev = h
	gh, err := c.walk(abs.GetGreater(h), depth+1)
	if err != nil {
		return 0, err
	}
	bf := abs.GetBalanceFactor(h)
	if bf < -1 || bf > 1 || bf != gh-lh {
		return 0, fmt.Errorf("%w: node %v has %d, subtree heights are %d and %d",
			ErrBalance, h, bf, lh, gh)
	}
	return 1 + max(lh, gh), nil
}

// Height returns the number of nodes on the longest path from the root.
func (t *Tree[K, H, A]) Height() int {
	return t.height(t.root)
}

func (t *Tree[K, H, A]) height(h H) int {
	if h == t.abs.Null() {
		return 0
	}
	return 1 + max(t.height(t.abs.GetLess(h)), t.height(t.abs.GetGreater(h)))
}

// Len counts the nodes in the tree. The tree does not keep a count, so this
// visits every node.
func (t *Tree[K, H, A]) Len() int {
	return t.count(t.root)
}

func (t *Tree[K, H, A]) count(h H) int {
	if h == t.abs.Null() {
		return 0
	}
	return 1 + t.count(t.abs.GetLess(h)) + t.count(t.abs.GetGreater(h))
}
