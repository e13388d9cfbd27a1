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

// branchSet records a path into the tree. Bit d is set when the path takes
// the greater branch out of the node at depth d and clear when it takes the
// less branch. Bit 0 is the branch taken out of the root.
type branchSet uint64

func (b branchSet) greater(d uint) bool {
	return b&(1<<d) != 0
}

func (b *branchSet) set(d uint, greater bool) {
	if greater {
		*b |= 1 << d
	} else {
		*b &^= 1 << d
	}
}

// dir returns the direction of the branch at depth d as the sign of a
// comparison.
func (b branchSet) dir(d uint) int {
	if b.greater(d) {
		return 1
	}
	return -1
}

func (b branchSet) bit(d uint) int {
	return int(b>>d) & 1
}

func (b *branchSet) setAll() { *b = ^branchSet(0) }

func (b *branchSet) reset() { *b = 0 }

// invalidDepth marks an iterator which is not positioned at a node.
const invalidDepth = ^uint(0)

// pathStack captures iteration state as an Iterator descends the tree. The
// root is implied by the tree and is not stored: h[d-1] is the node at depth
// d, for d in [1, depth]. Both arrays are fixed size so iteration never
// allocates.
type pathStack[H comparable] struct {
	branch branchSet
	depth  uint
	h      [MaxDepth - 1]H
}

// push records that the node at the current depth was left through the
// given branch to reach h, and makes h current.
func (s *pathStack[H]) push(greater bool, h H) {
	s.branch.set(s.depth, greater)
	s.h[s.depth] = h
	s.depth++
}

func (s *pathStack[H]) valid() bool {
	return s.depth != invalidDepth
}

func (s *pathStack[H]) invalidate() {
	s.depth = invalidDepth
}
