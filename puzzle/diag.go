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

// Diagnose runs a diagnostic program with a single input. The program outputs
// one result per test, zero meaning success, followed by a diagnostic code.
// Diagnose returns that code, or an error whose cause is ErrDiagnostic if any
// test failed or nothing was output.
func Diagnose(program []vm.Cell, input vm.Cell, opts ...vm.Option) (vm.Cell, error) {
	i, err := runToHalt(program, []vm.Cell{input}, opts...)
	if err != nil {
		return vm.Cell{}, err
	}
	out := i.Outputs()
	if len(out) == 0 {
		return vm.Cell{}, errors.Wrap(ErrDiagnostic, "no output")
	}
	for k, v := range out[:len(out)-1] {
		if !v.IsZero() {
			return vm.Cell{}, errors.Wrapf(ErrDiagnostic, "test %d output %v", k, v)
		}
	}
	log.Infof("%d diagnostic tests passed", len(out)-1)
	return out[len(out)-1], nil
}

// Boost runs program with mode as its single input and returns all its
// outputs.
func Boost(program []vm.Cell, mode vm.Cell, opts ...vm.Option) ([]vm.Cell, error) {
	i, err := runToHalt(program, []vm.Cell{mode}, opts...)
	if err != nil {
		return nil, err
	}
	return i.Outputs(), nil
}
