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

package asm_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/Nidjo123/aoc19/asm"
	"github.com/Nidjo123/aoc19/vm"
)

func TestDisassemble(t *testing.T) {
	tests := []struct {
		name string
		code []vm.Cell
		pc   int
		want string
		next int
	}{
		{"add", vm.Ints(1, 5, 6, 7), 0, "add [5], [6], [7]", 4},
		{"mul imm", vm.Ints(1102, 3, -4, 0), 0, "mul 3, -4, [0]", 4},
		{"in rel", vm.Ints(203, 0), 0, "in [rb+0]", 2},
		{"out", vm.Ints(0, 104, 42), 1, "out 42", 3},
		{"jnz", vm.Ints(1105, 1, 9), 0, "jnz 1, 9", 3},
		{"jz rel", vm.Ints(2206, -3, 4), 0, "jz [rb-3], [rb+4]", 3},
		{"lt", vm.Ints(1107, 1, 2, 3), 0, "lt 1, 2, [3]", 4},
		{"eq", vm.Ints(8, 1, 2, 3), 0, "eq [1], [2], [3]", 4},
		{"arb", vm.Ints(109, 19), 0, "arb 19", 2},
		{"halt", vm.Ints(99), 0, "halt", 1},
		{"bad opcode", vm.Ints(42), 0, ".dat 42", 1},
		{"bad mode", vm.Ints(301, 1, 2, 3), 0, ".dat 301", 1},
		{"negative", vm.Ints(-1), 0, ".dat -1", 1},
		{"truncated", vm.Ints(1001, 7), 0, "add [7], ???, ???", 4},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var b bytes.Buffer
			next, err := asm.Disassemble(test.code, test.pc, &b)
			if err != nil {
				t.Fatal(err)
			}
			if got := b.String(); got != test.want {
				t.Errorf("got %q, expected %q", got, test.want)
			}
			if next != test.next {
				t.Errorf("next = %d, expected %d", next, test.next)
			}
		})
	}
}

type failWriter struct{}

var errFail = errors.New("fail")

func (failWriter) Write(p []byte) (int, error) { return 0, errFail }

func TestDisassembleAllError(t *testing.T) {
	err := asm.DisassembleAll(vm.Ints(1, 0, 0, 0, 99), 0, failWriter{})
	if err == nil {
		t.Fatal("expected write error")
	}
}

func TestDisassembleAllBase(t *testing.T) {
	var b bytes.Buffer
	if err := asm.DisassembleAll(vm.Ints(104, 1, 99), 100, &b); err != nil {
		t.Fatal(err)
	}
	want := "       100\tout 1\n       102\thalt\n"
	if b.String() != want {
		t.Errorf("got %q, expected %q", b.String(), want)
	}
}
