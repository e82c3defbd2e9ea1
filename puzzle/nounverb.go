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

package puzzle

import (
	"github.com/pkg/errors"

	"github.com/Nidjo123/aoc19/vm"
)

// Patch runs program with noun stored at address 1 and verb at address 2,
// and returns the value left at address 0 once it halts.
//
// Unless overridden by opts, the memory capacity is the program length.
func Patch(program []vm.Cell, noun, verb int, opts ...vm.Option) (vm.Cell, error) {
	if len(program) < 3 {
		return vm.Cell{}, errors.Errorf("program too short to patch: %d cells", len(program))
	}
	i, err := vm.New(program, append([]vm.Option{vm.Capacity(len(program))}, opts...)...)
	if err != nil {
		return vm.Cell{}, err
	}
	i.Mem[1] = vm.Int(int64(noun))
	i.Mem[2] = vm.Int(int64(verb))
	st, err := i.Run()
	if err != nil {
		return vm.Cell{}, err
	}
	if st != vm.Halted {
		return vm.Cell{}, errors.Wrapf(ErrStalled, "pc=%d", i.PC)
	}
	return i.Mem[0], nil
}

// NounVerb searches nouns and verbs in [0, 100) for the first pair for which
// Patch yields target, and returns 100*noun + verb. Pairs making the program
// fail are skipped.
func NounVerb(program []vm.Cell, target vm.Cell, opts ...vm.Option) (int, error) {
	for noun := 0; noun < 100; noun++ {
		for verb := 0; verb < 100; verb++ {
			v, err := Patch(program, noun, verb, opts...)
			if err != nil {
				log.Debugf("noun %d verb %d: %v", noun, verb, err)
				continue
			}
			if v == target {
				return 100*noun + verb, nil
			}
		}
	}
	return 0, errors.Wrapf(ErrNotFound, "target %v", target)
}
