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
	"os"

	"github.com/Nidjo123/aoc19/asm"
	"github.com/Nidjo123/aoc19/vm"
)

func ExampleDisassembleAll() {
	prog, err := vm.Parse("109,1,204,-1,1001,100,1,100,1008,100,16,101,1006,101,0,99,42,21101")
	if err != nil {
		panic(err)
	}
	asm.DisassembleAll(prog, 0, os.Stdout)

	// Output:
	//          0	arb 1
	//          2	out [rb-1]
	//          4	add [100], 1, [100]
	//          8	eq [100], 16, [101]
	//         12	jz [101], 0
	//         15	halt
	//         16	.dat 42
	//         17	add ???, ???, ???
}
