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

package vm_test

import (
	"fmt"
	"os"

	"github.com/Nidjo123/aoc19/vm"
)

// Shows how to drive an instance that suspends on input.
func ExampleInstance_Run() {
	prog, err := vm.Parse("3,9,8,9,10,9,4,9,99,-1,8")
	if err != nil {
		panic(err)
	}
	i, err := vm.New(prog, vm.Capacity(64))
	if err != nil {
		panic(err)
	}

	// no input available yet
	st, err := i.Run()
	fmt.Println(st, err)

	// feed a value and resume at the same input instruction
	i.FeedInput(vm.Int(8))
	st, err = i.Run()
	fmt.Println(st, err, i.Outputs())

	// Output:
	// suspended <nil>
	// halted <nil> [1]
}

// Shows that arithmetic does not overflow 64 bits.
func ExampleCell_Mul() {
	a := vm.Int(1 << 62)
	fmt.Println(a.Mul(a))
	fmt.Println(vm.Int(-1).Add(vm.Int(1)).IsZero())

	// Output:
	// 21267647932558653966460912964485513216
	// true
}

func ExampleDecode() {
	ins, err := vm.Decode(vm.Int(21002))
	fmt.Println(ins.Op, ins.Modes, ins.Size(), err)

	_, err = vm.Decode(vm.Int(42))
	fmt.Println(err)

	// Output:
	// mul [position immediate relative] 4 <nil>
	// opcode 42 in word 42: invalid opcode
}

func ExampleFormat() {
	prog, _ := vm.Parse(" 1, -2 ,3\n")
	vm.Format(os.Stdout, prog)
	fmt.Println()

	// Output:
	// 1,-2,3
}
