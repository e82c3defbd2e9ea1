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

// DefaultCapacity is the memory size in cells of a VM instance unless
// overridden with the Capacity option.
const DefaultCapacity = 100000

// Memory is the flat cell store of a VM instance. It is allocated once to its
// full capacity and never grows: every address a program uses must lie in
// [0, len(Memory)).
type Memory []Cell

// newMemory returns a Memory of the given capacity, initialized with a copy
// of program. The capacity is raised to len(program) if necessary.
func newMemory(program []Cell, capacity int) Memory {
	if capacity < len(program) {
		capacity = len(program)
	}
	m := make(Memory, capacity)
	copy(m, program)
	return m
}

// Fetch returns the cell at address addr.
func (m Memory) Fetch(addr int) (Cell, error) {
	if addr < 0 || addr >= len(m) {
		return Cell{}, errors.Wrapf(ErrAddressRange, "address %d, capacity %d", addr, len(m))
	}
	return m[addr], nil
}

// Load returns the cell at the address held in addr.
func (m Memory) Load(addr Cell) (Cell, error) {
	a, err := m.Address(addr)
	if err != nil {
		return Cell{}, err
	}
	return m[a], nil
}

// Store sets the cell at address addr to v.
func (m Memory) Store(addr int, v Cell) error {
	if addr < 0 || addr >= len(m) {
		return errors.Wrapf(ErrAddressRange, "address %d, capacity %d", addr, len(m))
	}
	m[addr] = v
	return nil
}

// Address converts a cell to an address within m.
func (m Memory) Address(addr Cell) (int, error) {
	a, ok := addr.index()
	if !ok || a >= len(m) {
		return 0, errors.Wrapf(ErrAddressRange, "address %v, capacity %d", addr, len(m))
	}
	return a, nil
}

// Used returns the prefix of m that ends with the last non-zero cell.
func (m Memory) Used() []Cell {
	end := len(m)
	for end > 0 && m[end-1].IsZero() {
		end--
	}
	return m[:end]
}
