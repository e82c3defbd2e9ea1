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

// Package puzzle implements clients driving intcode VM instances: a hull
// painting robot, a noun/verb search over patched programs and diagnostic
// runners.
package puzzle

import (
	"github.com/pkg/errors"
	"github.com/tliron/commonlog"

	"github.com/Nidjo123/aoc19/vm"
)

// Client failures.
var (
	ErrNotFound   = errors.New("no noun and verb produce the target")
	ErrDiagnostic = errors.New("diagnostic test failed")
	ErrStalled    = errors.New("program waiting on input")
	ErrBadColor   = errors.New("invalid panel color")
	ErrBadTurn    = errors.New("invalid turn direction")
	ErrOutput     = errors.New("incomplete output pair")
)

var log = commonlog.GetLogger("intcode.puzzle")

// runToHalt runs program fed with the given input and fails with ErrStalled if
// it does not halt.
func runToHalt(program []vm.Cell, input []vm.Cell, opts ...vm.Option) (*vm.Instance, error) {
	i, err := vm.New(program, append([]vm.Option{vm.Input(input...)}, opts...)...)
	if err != nil {
		return nil, err
	}
	st, err := i.Run()
	if err != nil {
		return i, err
	}
	if st != vm.Halted {
		return i, errors.Wrapf(ErrStalled, "pc=%d", i.PC)
	}
	return i, nil
}
