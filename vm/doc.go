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

// Package vm implements an intcode virtual machine.
//
// An intcode program is a flat sequence of signed integers. Each instruction
// word packs an opcode in its two low decimal digits and one addressing mode
// per parameter in the following digits (hundreds for the first parameter,
// thousands for the second, ten thousands for the third):
//
//	0  position   the parameter is an address
//	1  immediate  the parameter is the value itself (reads only)
//	2  relative   the parameter is an offset to the relative base register
//
// Supported opcodes are add (1), mul (2), in (3), out (4), jump-if-true (5),
// jump-if-false (6), less-than (7), equals (8), adjust-relative-base (9) and
// halt (99).
//
// I/O is queue based. Input values are fed with FeedInput and consumed in
// order by input instructions. When an input instruction finds the queue
// empty, Step and Run return Suspended without advancing the program counter,
// so that the caller can feed more input and call Run again. This is what
// allows several instances to be chained together and scheduled cooperatively
// (see package amp).
//
// Memory is allocated once when the instance is created, DefaultCapacity cells
// unless overridden with the Capacity option, and never grows. Any access
// outside of it fails with ErrAddressRange.
//
// Cells are 256 bits wide two's complement integers. For performance reasons,
// the PC is not incremented in a single place, rather each opcode deals with
// the PC as needed.
package vm
