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

// Package arena stores tree nodes in a slice and hands out indexes into it
// as handles, so that trees built on package abstract hold no pointers
// between nodes.
package arena

import "math"

// Handle is the index of a node in an Arena.
type Handle uint32

// Null is the handle which refers to no node.
const Null Handle = math.MaxUint32

type node[K, V any] struct {
	less, greater Handle
	bf            int8
	key           K
	value         V
}

// Arena is a slab of nodes carrying a key and a value each. Freed slots are
// kept on a list threaded through their greater links and reused before the
// slab grows.
//
// An Arena is not safe for concurrent use.
type Arena[K, V any] struct {
	nodes []node[K, V]
	free  Handle
	live  int
}

// Make returns an empty Arena with room for capacity nodes. The zero value
// is an empty Arena as well.
func Make[K, V any](capacity int) Arena[K, V] {
	return Arena[K, V]{
		nodes: make([]node[K, V], 0, capacity),
		free:  Null,
	}
}

// Alloc returns the handle of an unlinked node holding k and v.
func (a *Arena[K, V]) Alloc(k K, v V) Handle {
	var h Handle
	if len(a.nodes) > a.live {
		h = a.free
		a.free = a.nodes[h].greater
	} else {
		if uint64(len(a.nodes)) >= uint64(Null) {
			panic("arena: out of handles")
		}
		h = Handle(len(a.nodes))
		a.nodes = append(a.nodes, node[K, V]{})
	}
	a.nodes[h] = node[K, V]{less: Null, greater: Null, key: k, value: v}
	a.live++
	return h
}

// Free releases the node h. The handle must not be used again until Alloc
// returns it.
func (a *Arena[K, V]) Free(h Handle) {
	a.nodes[h] = node[K, V]{less: Null, greater: a.free}
	a.free = h
	a.live--
}

// Reset frees every node at once, keeping the memory for reuse.
func (a *Arena[K, V]) Reset() {
	clear(a.nodes)
	a.nodes = a.nodes[:0]
	a.free = Null
	a.live = 0
}

// Len returns the number of allocated nodes.
func (a *Arena[K, V]) Len() int { return a.live }

// Cap returns the number of slots, allocated or free.
func (a *Arena[K, V]) Cap() int { return len(a.nodes) }

func (a *Arena[K, V]) Key(h Handle) K { return a.nodes[h].key }

func (a *Arena[K, V]) SetKey(h Handle, k K) { a.nodes[h].key = k }

func (a *Arena[K, V]) Value(h Handle) V { return a.nodes[h].value }

func (a *Arena[K, V]) SetValue(h Handle, v V) { a.nodes[h].value = v }

func (a *Arena[K, V]) Less(h Handle) Handle { return a.nodes[h].less }

func (a *Arena[K, V]) SetLess(h, less Handle) { a.nodes[h].less = less }

func (a *Arena[K, V]) Greater(h Handle) Handle { return a.nodes[h].greater }

func (a *Arena[K, V]) SetGreater(h, greater Handle) { a.nodes[h].greater = greater }

func (a *Arena[K, V]) BalanceFactor(h Handle) int { return int(a.nodes[h].bf) }

func (a *Arena[K, V]) SetBalanceFactor(h Handle, bf int) { a.nodes[h].bf = int8(bf) }
