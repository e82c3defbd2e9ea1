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

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Opcode selects the operation of an instruction. It is the value of the two
// low decimal digits of an instruction word.
type Opcode int

// Intcode opcodes.
const (
	OpAdd        Opcode = 1
	OpMul        Opcode = 2
	OpIn         Opcode = 3
	OpOut        Opcode = 4
	OpJumpTrue   Opcode = 5
	OpJumpFalse  Opcode = 6
	OpLess       Opcode = 7
	OpEqual      Opcode = 8
	OpAdjustBase Opcode = 9
	OpHalt       Opcode = 99
)

var opcodes = map[Opcode]struct {
	name   string
	params int
}{
	OpAdd:        {"add", 3},
	OpMul:        {"mul", 3},
	OpIn:         {"in", 1},
	OpOut:        {"out", 1},
	OpJumpTrue:   {"jnz", 2},
	OpJumpFalse:  {"jz", 2},
	OpLess:       {"lt", 3},
	OpEqual:      {"eq", 3},
	OpAdjustBase: {"arb", 1},
	OpHalt:       {"halt", 0},
}

// Valid reports whether op is a known opcode.
func (op Opcode) Valid() bool {
	_, ok := opcodes[op]
	return ok
}

// Params returns the number of parameters following the opcode in memory.
func (op Opcode) Params() int {
	return opcodes[op].params
}

func (op Opcode) String() string {
	if o, ok := opcodes[op]; ok {
		return o.name
	}
	return "op(" + strconv.Itoa(int(op)) + ")"
}

// Mode is a parameter addressing mode.
type Mode int

// Parameter modes.
const (
	ModePosition  Mode = 0 // parameter is the address of the value
	ModeImmediate Mode = 1 // parameter is the value
	ModeRelative  Mode = 2 // parameter is an offset to the relative base
)

func (m Mode) String() string {
	switch m {
	case ModePosition:
		return "position"
	case ModeImmediate:
		return "immediate"
	case ModeRelative:
		return "relative"
	}
	return "mode(" + strconv.Itoa(int(m)) + ")"
}

// Instruction is a decoded instruction word.
type Instruction struct {
	Op    Opcode
	Modes [3]Mode
}

// Size returns the number of cells occupied by the instruction, opcode
// included.
func (ins Instruction) Size() int {
	return 1 + ins.Op.Params()
}

func (ins Instruction) String() string {
	var b strings.Builder
	b.WriteString(ins.Op.String())
	for n := 0; n < ins.Op.Params(); n++ {
		b.WriteByte(' ')
		b.WriteString(ins.Modes[n].String()[:3])
	}
	return b.String()
}

// Decode splits an instruction word into its opcode and the addressing modes
// of its three parameter slots. It fails with ErrInvalidOpcode or
// ErrInvalidMode if the word is malformed.
func Decode(word Cell) (Instruction, error) {
	var ins Instruction
	w, ok := word.Int64()
	if !ok || w < 0 {
		return ins, errors.Wrapf(ErrInvalidOpcode, "instruction word %v", word)
	}
	ins.Op = Opcode(w % 100)
	if !ins.Op.Valid() {
		return ins, errors.Wrapf(ErrInvalidOpcode, "opcode %d in word %d", int(ins.Op), w)
	}
	div := int64(100)
	for n := range ins.Modes {
		m := Mode(w / div % 10)
		switch m {
		case ModePosition, ModeImmediate, ModeRelative:
		default:
			return ins, errors.Wrapf(ErrInvalidMode, "mode %d for parameter %d in word %d", int(m), n+1, w)
		}
		ins.Modes[n] = m
		div *= 10
	}
	return ins, nil
}
