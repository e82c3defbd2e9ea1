// This file is part of aoc19 - https://github.com/Nidjo123/aoc19
//
// Copyright 2019 The aoc19 Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package amp

import (
	"sort"

	"github.com/pkg/errors"

	"github.com/Nidjo123/aoc19/vm"
)

// NextPermutation rearranges p into the next lexicographically greater
// permutation and returns true. If p already is the last permutation, it is
// reset to the first one (sorted in ascending order) and NextPermutation
// returns false.
func NextPermutation(p []vm.Cell) bool {
	k := len(p) - 2
	for k >= 0 && p[k].Cmp(p[k+1]) >= 0 {
		k--
	}
	if k < 0 {
		reverse(p)
		return false
	}
	l := len(p) - 1
	for p[k].Cmp(p[l]) >= 0 {
		l--
	}
	p[k], p[l] = p[l], p[k]
	reverse(p[k+1:])
	return true
}

func reverse(p []vm.Cell) {
	for i, j := 0, len(p)-1; i < j; i, j = i+1, j-1 {
		p[i], p[j] = p[j], p[i]
	}
}

// MaxSignal runs program for every permutation of phases, starting from a
// zero signal, and returns the highest signal together with the phase
// settings that produced it. If feedback is true, each permutation is run as a
// feedback Network, otherwise as a serial Chain.
func MaxSignal(program []vm.Cell, phases []vm.Cell, feedback bool, opts ...vm.Option) (best vm.Cell, bestPhases []vm.Cell, err error) {
	if len(phases) == 0 {
		return vm.Cell{}, nil, errors.New("empty phase list")
	}
	p := append([]vm.Cell(nil), phases...)
	sort.Slice(p, func(i, j int) bool { return p[i].Less(p[j]) })
	count := 0
	for {
		var sig vm.Cell
		if feedback {
			var n *Network
			if n, err = New(program, p, opts...); err == nil {
				sig, err = n.Run(vm.Cell{})
			}
		} else {
			sig, err = Chain(program, p, vm.Cell{}, opts...)
		}
		if err != nil {
			return vm.Cell{}, nil, errors.Wrapf(err, "phases %v", p)
		}
		if bestPhases == nil || best.Less(sig) {
			best, bestPhases = sig, append(bestPhases[:0], p...)
		}
		count++
		if !NextPermutation(p) {
			break
		}
	}
	log.Infof("searched %d phase permutations, best %v with %v", count, best, bestPhases)
	return best, bestPhases, nil
}
