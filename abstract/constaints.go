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

// Abstractor gives the tree access to nodes which it does not own. K is the
// type of a bare search key and H is an opaque handle to a node, such as a
// pointer or an index into a slab. The tree never allocates or frees nodes;
// it only reads and writes the two child links and the balance factor of a
// node through the Abstractor.
//
// The Abstractor is a type parameter of Tree rather than an interface value
// so that calls can be resolved statically. Implementations are typically
// small value types wrapping a pointer to the node storage.
type Abstractor[K any, H comparable] interface {

	// Null returns the handle which refers to no node. It must never be
	// returned for a live node.
	Null() H

	// GetLess and SetLess access the root of the subtree holding keys less
	// than the key of h.
	GetLess(h H) H
	SetLess(h, less H)

	// GetGreater and SetGreater access the root of the subtree holding keys
	// greater than the key of h.
	GetGreater(h H) H
	SetGreater(h, greater H)

	// GetBalanceFactor and SetBalanceFactor access the height of the greater
	// subtree of h minus the height of its less subtree. The tree only stores
	// values in [-1, 1].
	GetBalanceFactor(h H) int
	SetBalanceFactor(h H, bf int)

	// CompareKeyNode returns a negative number, zero or a positive number
	// when k is less than, equal to or greater than the key of h.
	CompareKeyNode(k K, h H) int

	// CompareNodeNode compares the keys of two nodes the same way.
	CompareNodeNode(h1, h2 H) int
}

// SearchType selects which node Search and Iterator.Seek settle on relative
// to the search key. The values are bits so that the inclusive modes are
// unions of the exclusive ones.
type SearchType uint8

const (
	// Equal matches only a node with the search key.
	Equal SearchType = 1 << iota
	// Less matches the greatest node with a key less than the search key.
	Less
	// Greater matches the least node with a key greater than the search key.
	Greater

	// LessEqual matches the node with the search key if present, else Less.
	LessEqual = Equal | Less
	// GreaterEqual matches the node with the search key if present, else
	// Greater.
	GreaterEqual = Equal | Greater
)

func (st SearchType) String() string {
	switch st {
	case Equal:
		return "eq"
	case Less:
		return "lt"
	case Greater:
		return "gt"
	case LessEqual:
		return "le"
	case GreaterEqual:
		return "ge"
	default:
		return "invalid"
	}
}

// targetCmp returns the sign a key comparison must have for a node to be a
// candidate under st, or zero when only an exact match qualifies.
func (st SearchType) targetCmp() int {
	switch {
	case st&Less != 0:
		// The key may be greater than the key of the matched node.
		return 1
	case st&Greater != 0:
		// The key may be less than the key of the matched node.
		return -1
	default:
		return 0
	}
}

// MaxDepth bounds the number of nodes on any root-to-leaf path. The path
// stacks used by the tree and its iterators are sized by it and are never
// grown. An AVL tree needs more than 2^44 nodes to reach a height of 64, so
// the bound is not reached by any tree that fits in memory.
const MaxDepth = 64
