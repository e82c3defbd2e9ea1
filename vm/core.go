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

package vm

import "github.com/pkg/errors"

// param returns the raw value of parameter n (1 based) of the instruction at
// PC.
func (i *Instance) param(n int) (Cell, error) {
	return i.Mem.Fetch(i.PC + n)
}

// read resolves parameter n of ins as a value.
func (i *Instance) read(ins Instruction, n int) (Cell, error) {
	p, err := i.param(n)
	if err != nil {
		return Cell{}, err
	}
	switch ins.Modes[n-1] {
	case ModePosition:
		return i.Mem.Load(p)
	case ModeImmediate:
		return p, nil
	case ModeRelative:
		return i.Mem.Load(i.base.Add(p))
	}
	return Cell{}, errors.Wrapf(ErrInvalidMode, "parameter %d", n)
}

// read2 resolves the first two parameters of ins.
func (i *Instance) read2(ins Instruction) (a, b Cell, err error) {
	if a, err = i.read(ins, 1); err != nil {
		return
	}
	b, err = i.read(ins, 2)
	return
}

// target resolves parameter n of ins as a write address.
func (i *Instance) target(ins Instruction, n int) (int, error) {
	p, err := i.param(n)
	if err != nil {
		return 0, err
	}
	switch ins.Modes[n-1] {
	case ModePosition:
		return i.Mem.Address(p)
	case ModeRelative:
		return i.Mem.Address(i.base.Add(p))
	case ModeImmediate:
		return 0, errors.Wrapf(ErrImmediateWrite, "parameter %d", n)
	}
	return 0, errors.Wrapf(ErrInvalidMode, "parameter %d", n)
}

// write stores v at the address designated by parameter n of ins.
func (i *Instance) write(ins Instruction, n int, v Cell) error {
	addr, err := i.target(ins, n)
	if err != nil {
		return err
	}
	return i.Mem.Store(addr, v)
}

func flag(b bool) Cell {
	if b {
		return Int(1)
	}
	return Cell{}
}
