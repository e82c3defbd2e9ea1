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
	"bytes"
	"fmt"
	"testing"

	"github.com/pkg/errors"

	"github.com/Nidjo123/aoc19/vm"
)

// C is shorthand for a list of cells.
func C(v ...int64) []vm.Cell {
	return vm.Ints(v...)
}

func setup(t *testing.T, code string, opts ...vm.Option) *vm.Instance {
	t.Helper()
	prog, err := vm.Parse(code)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	i, err := vm.New(prog, opts...)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	return i
}

func equal(a, b []vm.Cell) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if a[k] != b[k] {
			return false
		}
	}
	return true
}

func check(t *testing.T, testName string, i *vm.Instance, pc int, mem, out []vm.Cell) {
	t.Helper()
	st, err := i.Run()
	if err != nil {
		t.Errorf("%s: %+v", testName, err)
		return
	}
	if st != vm.Halted || !i.Halted() {
		t.Errorf("%s: expected halted, got %v", testName, st)
	}
	if pc != i.PC {
		t.Errorf("%s: Bad PC %d != %d", testName, i.PC, pc)
	}
	if mem != nil && !equal(mem, i.Mem[:len(mem)]) {
		t.Errorf("%s: Memory error: expected %v, got %v", testName, mem, i.Mem[:len(mem)])
	}
	if got := i.Outputs(); !equal(out, got) {
		t.Errorf("%s: Output error: expected %v, got %v", testName, out, got)
	}
}

var tests = [...]struct {
	name string
	code string
	in   []vm.Cell
	mem  []vm.Cell
	out  []vm.Cell
	pc   int
}{
	{"halt", "99", nil, C(99, 0, 0), nil, 0},
	{"add", "1,0,0,0,99", nil, C(2, 0, 0, 0, 99), nil, 4},
	{"mul", "2,3,0,3,99", nil, C(2, 3, 0, 6, 99), nil, 4},
	{"mul2", "2,4,4,5,99,0", nil, C(2, 4, 4, 5, 99, 9801), nil, 4},
	{"add mul", "1,1,1,4,99,5,6,0,99", nil, C(30, 1, 1, 4, 2, 5, 6, 0, 99), nil, 8},
	{"sample", "1,9,10,3,2,3,11,0,99,30,40,50", nil, C(3500, 9, 10, 70, 2, 3, 11, 0, 99, 30, 40, 50), nil, 8},
	{"immediate", "1002,4,3,4,33", nil, C(1002, 4, 3, 4, 99), nil, 4},
	{"negative", "1101,100,-1,4,0", nil, C(1101, 100, -1, 4, 99), nil, 4},
	{"io", "3,0,4,0,99", C(7), C(7, 0, 4, 0, 99), C(7), 4},
	{"io relative", "109,10,203,0,204,0,99", C(-3), nil, C(-3), 6},
	{"eq position", "3,9,8,9,10,9,4,9,99,-1,8", C(8), nil, C(1), 8},
	{"ne position", "3,9,8,9,10,9,4,9,99,-1,8", C(9), nil, C(0), 8},
	{"lt position", "3,9,7,9,10,9,4,9,99,-1,8", C(5), nil, C(1), 8},
	{"ge position", "3,9,7,9,10,9,4,9,99,-1,8", C(8), nil, C(0), 8},
	{"eq immediate", "3,3,1108,-1,8,3,4,3,99", C(8), nil, C(1), 8},
	{"lt immediate", "3,3,1107,-1,8,3,4,3,99", C(9), nil, C(0), 8},
	{"jz position", "3,12,6,12,15,1,13,14,13,4,13,99,-1,0,1,9", C(0), nil, C(0), 11},
	{"jz position nz", "3,12,6,12,15,1,13,14,13,4,13,99,-1,0,1,9", C(5), nil, C(1), 11},
	{"jnz immediate", "3,3,1105,-1,9,1101,0,0,12,4,12,99,1", C(0), nil, C(0), 11},
	{"jnz immediate nz", "3,3,1105,-1,9,1101,0,0,12,4,12,99,1", C(-7), nil, C(1), 11},
	{"large", "104,1125899906842624,99", nil, nil, C(1125899906842624), 2},
}

const cmp8 = "3,21,1008,21,8,20,1005,20,22,107,8,21,20,1006,20,31,1106,0,36,98,0,0,1002,21,125,20,4,20,1105,1,46,104,999,1105,1,46,1101,1000,1,20,4,20,1105,1,46,98,99"

func TestRun(t *testing.T) {
	for _, test := range tests {
		i := setup(t, test.code, vm.Input(test.in...), vm.Capacity(64))
		check(t, test.name, i, test.pc, test.mem, test.out)
	}
	for in, out := range map[int64]int64{-5: 999, 7: 999, 8: 1000, 9: 1001, 1 << 40: 1001} {
		i := setup(t, cmp8, vm.Input(vm.Int(in)))
		check(t, fmt.Sprintf("cmp8(%d)", in), i, 46, nil, C(out))
	}
}

func TestStep(t *testing.T) {
	i := setup(t, "1,0,0,0,99", vm.Capacity(8))
	st, err := i.Step()
	if err != nil || st != vm.Continued {
		t.Fatalf("step: %v %+v", st, err)
	}
	if !equal(i.Mem[:5], C(2, 0, 0, 0, 99)) || i.PC != 4 {
		t.Fatalf("after one step: pc %d, mem %v", i.PC, i.Mem[:5])
	}
	st, err = i.Step()
	if err != nil || st != vm.Halted {
		t.Fatalf("step: %v %+v", st, err)
	}
	// stepping a halted instance has no effect.
	n := i.InstructionCount()
	for k := 0; k < 3; k++ {
		if st, err = i.Step(); err != nil || st != vm.Halted {
			t.Fatalf("step after halt: %v %+v", st, err)
		}
	}
	if i.PC != 4 || i.InstructionCount() != n {
		t.Errorf("halted instance changed: pc %d, count %d != %d", i.PC, i.InstructionCount(), n)
	}
}

func TestSuspendResume(t *testing.T) {
	i := setup(t, "3,0,4,0,99")
	for k := 0; k < 2; k++ {
		st, err := i.Step()
		if err != nil || st != vm.Suspended {
			t.Fatalf("expected suspended, got %v %+v", st, err)
		}
		if i.PC != 0 || i.InstructionCount() != 0 {
			t.Fatalf("suspended instruction changed state: pc %d, count %d", i.PC, i.InstructionCount())
		}
	}
	st, err := i.Run()
	if err != nil || st != vm.Suspended {
		t.Fatalf("expected suspended, got %v %+v", st, err)
	}
	i.FeedInput(vm.Int(42))
	if i.Pending() != 1 {
		t.Fatalf("expected 1 pending input, got %d", i.Pending())
	}
	st, err = i.Step()
	if err != nil || st != vm.Continued || i.PC != 2 || i.Mem[0] != vm.Int(42) || i.Pending() != 0 {
		t.Fatalf("resume: %v %+v, pc %d, mem[0] %v", st, err, i.PC, i.Mem[0])
	}
	check(t, "resume", i, 4, nil, C(42))
}

func TestOutputs(t *testing.T) {
	i := setup(t, "3,11,4,11,3,11,4,11,99,0,0,0")
	i.FeedInput(vm.Int(1))
	if st, err := i.Run(); err != nil || st != vm.Suspended {
		t.Fatalf("expected suspended, got %v %+v", st, err)
	}
	out := i.Outputs()
	out[0] = vm.Int(100)
	if v, ok := i.LastOutput(); !ok || v != vm.Int(1) {
		t.Fatalf("Outputs is not a copy: last output %v", v)
	}
	if d := i.DrainOutputs(); !equal(d, C(1)) {
		t.Fatalf("drained %v", d)
	}
	if _, ok := i.LastOutput(); ok {
		t.Fatal("outputs not cleared by DrainOutputs")
	}
	i.FeedInput(vm.Int(2))
	check(t, "drain", i, 8, nil, C(2))
}

func TestRelativeRoundTrip(t *testing.T) {
	for _, k := range []int64{10, 100, 1000, 54321, vm.DefaultCapacity - 1} {
		i := setup(t, fmt.Sprintf("109,%d,203,0,204,0,99", k), vm.Input(vm.Int(-k)))
		check(t, fmt.Sprintf("relative %d", k), i, 6, nil, C(-k))
		if i.Mem[k] != vm.Int(-k) {
			t.Errorf("relative %d: memory holds %v", k, i.Mem[k])
		}
		if i.RelativeBase() != vm.Int(k) {
			t.Errorf("relative %d: base %v", k, i.RelativeBase())
		}
	}
}

const quine = "109,1,204,-1,1001,100,1,100,1008,100,16,101,1006,101,0,99"

func TestQuine(t *testing.T) {
	i := setup(t, quine)
	prog, _ := vm.Parse(quine)
	check(t, "quine", i, 15, nil, prog)
}

func TestLargeNumber(t *testing.T) {
	i := setup(t, "1102,34915192,34915192,7,4,7,99,0")
	check(t, "16 digits", i, 6, nil, C(1219070632396864))
	if s := i.Outputs()[0].String(); len(s) != 16 {
		t.Errorf("expected a 16 digit number, got %s", s)
	}
}

func TestErrors(t *testing.T) {
	data := []struct {
		name  string
		code  string
		in    []vm.Cell
		opts  []vm.Option
		cause error
		pc    int
	}{
		{"opcode", "42,99", nil, nil, vm.ErrInvalidOpcode, 0},
		{"negative opcode", "1101,0,0,3,-1", nil, nil, vm.ErrInvalidOpcode, 4},
		{"mode", "301,0,0,0,99", nil, nil, vm.ErrInvalidMode, 0},
		{"third mode", "30001,0,0,0,99", nil, nil, vm.ErrInvalidMode, 0},
		{"immediate write", "11101,1,1,0,99", nil, nil, vm.ErrImmediateWrite, 0},
		{"immediate input", "103,0,99", C(1), nil, vm.ErrImmediateWrite, 0},
		{"negative address", "204,-1,99", nil, nil, vm.ErrAddressRange, 0},
		{"read past capacity", "1,100,0,0,99", nil, []vm.Option{vm.Capacity(10)}, vm.ErrAddressRange, 0},
		{"write past capacity", "1101,1,1,10,99", nil, []vm.Option{vm.Capacity(10)}, vm.ErrAddressRange, 0},
		{"jump target", "1105,1,-5", nil, nil, vm.ErrAddressRange, 0},
		{"run off memory", "1101,0,0,0", nil, []vm.Option{vm.Capacity(4)}, vm.ErrAddressRange, 4},
		{"step limit", "1105,1,0", nil, []vm.Option{vm.MaxSteps(100)}, vm.ErrStepLimit, 0},
	}
	for _, d := range data {
		i := setup(t, d.code, append(d.opts, vm.Input(d.in...))...)
		st, err := i.Run()
		if err == nil {
			t.Errorf("%s: expected error, got status %v", d.name, st)
			continue
		}
		if errors.Cause(err) != d.cause {
			t.Errorf("%s: expected %v, got %+v", d.name, d.cause, err)
		}
		if i.PC != d.pc {
			t.Errorf("%s: expected pc %d, got %d", d.name, d.pc, i.PC)
		}
	}
}

func TestOptions(t *testing.T) {
	prog := C(1, 0, 0, 0, 99)
	if _, err := vm.New(prog, vm.Capacity(0)); err == nil {
		t.Error("expected error for zero capacity")
	}
	if _, err := vm.New(prog, vm.MaxSteps(-1)); err == nil {
		t.Error("expected error for negative step limit")
	}
	i, err := vm.New(prog, vm.Capacity(2))
	if err != nil {
		t.Fatalf("%+v", err)
	}
	if len(i.Mem) != len(prog) {
		t.Errorf("capacity not raised to program length: %d", len(i.Mem))
	}
	i, _ = vm.New(prog)
	if len(i.Mem) != vm.DefaultCapacity {
		t.Errorf("default capacity %d", len(i.Mem))
	}
	i.Mem[0] = vm.Int(2)
	if prog[0] != vm.Int(1) {
		t.Error("program shared with instance memory")
	}
}

func TestDump(t *testing.T) {
	i := setup(t, "3,0,4,0,3,0,99", vm.Input(vm.Int(-9)), vm.Capacity(16))
	if st, err := i.Run(); err != nil || st != vm.Suspended {
		t.Fatalf("expected suspended, got %v %+v", st, err)
	}
	var b bytes.Buffer
	if err := i.Dump(&b); err != nil {
		t.Fatalf("%+v", err)
	}
	s, err := vm.ReadSnapshot(&b)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	if s.PC != 4 || s.Status != "suspended" || s.Instructions != 2 || s.Capacity != 16 {
		t.Errorf("bad snapshot header: %+v", s)
	}
	if len(s.Memory) != 7 || s.Memory[0].Int64() != -9 {
		t.Errorf("bad snapshot memory: %v", s.Memory)
	}
	if len(s.Output) != 1 || s.Output[0].Int64() != -9 || len(s.Input) != 0 {
		t.Errorf("bad snapshot I/O: in %v, out %v", s.Input, s.Output)
	}
}

func Benchmark_Quine(b *testing.B) {
	prog, _ := vm.Parse(quine)
	for c := 0; c < b.N; c++ {
		i, _ := vm.New(prog, vm.Capacity(128))
		i.Run()
	}
}
