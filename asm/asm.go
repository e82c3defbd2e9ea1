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

package asm

import (
	"fmt"
	"io"

	"github.com/Nidjo123/aoc19/internal/iox"
	"github.com/Nidjo123/aoc19/vm"
)

// operand writes parameter p with mode m.
func operand(w io.Writer, m vm.Mode, p vm.Cell) {
	switch m {
	case vm.ModeImmediate:
		io.WriteString(w, p.String())
	case vm.ModeRelative:
		if p.Sign() < 0 {
			fmt.Fprintf(w, "[rb%v]", p)
		} else {
			fmt.Fprintf(w, "[rb+%v]", p)
		}
	default:
		fmt.Fprintf(w, "[%v]", p)
	}
}

// Disassemble writes a disassembly of the instruction in the given slice at
// position pc to the specified io.Writer and returns the position of the next
// instruction and any write error.
//
// Cells that do not decode to a valid instruction are written as a .dat
// directive and skipped one at a time. Parameters missing at the end of the
// slice are written as "???".
func Disassemble(mem []vm.Cell, pc int, w io.Writer) (next int, err error) {
	ew := iox.NewErrWriter(w)

	ins, err := vm.Decode(mem[pc])
	if err != nil {
		io.WriteString(ew, ".dat ")
		io.WriteString(ew, mem[pc].String())
		return pc + 1, ew.Err
	}
	io.WriteString(ew, ins.Op.String())
	for n := 1; n <= ins.Op.Params(); n++ {
		if n == 1 {
			ew.Write([]byte{' '})
		} else {
			ew.Write([]byte{',', ' '})
		}
		if pc+n >= len(mem) {
			io.WriteString(ew, "???")
			continue
		}
		operand(ew, ins.Modes[n-1], mem[pc+n])
	}
	return pc + ins.Size(), ew.Err
}

// DisassembleAll writes a disassembly of all cells in the given slice to
// the specified io.Writer. The base argument specifies the real address of the
// frist cell (mem[0]). It will return any write error.
func DisassembleAll(mem []vm.Cell, base int, w io.Writer) error {
	ew := iox.NewErrWriter(w)
	for pc := 0; pc < len(mem); {
		fmt.Fprintf(ew, "% 10d\t", base+pc)
		pc, _ = Disassemble(mem, pc, ew)
		ew.Write([]byte{'\n'})
		if ew.Err != nil {
			return ew.Err
		}
	}
	return nil
}
