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

package interval_test

import (
	"cmp"
	"fmt"

	"github.com/ajwerner/avltree/interval"
)

type span = interval.Range[int]

func Example() {
	s := interval.NewSet(cmp.Compare[int])
	for _, r := range []span{
		{Start: 1, End: 3}, {Start: 2, End: 5}, {Start: 7, End: 9}, {Start: 9, End: 10},
	} {
		s.Add(r)
	}
	s.Remove(span{Start: 3, End: 4})
	fmt.Println(s.Ranges())

	it := s.Iterator()
	for it.FirstOverlap(span{Start: 4, End: 8}); it.Valid(); it.NextOverlap() {
		fmt.Println(it.Cur())
	}
	// Output:
	// [[1, 3) [4, 5) [7, 10)]
	// [4, 5)
	// [7, 10)
}
