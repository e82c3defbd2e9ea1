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
	"github.com/pkg/errors"
	"github.com/tliron/commonlog"
)

// Step executes exactly one instruction.
//
// If the instruction at PC is an input instruction and the input queue is
// empty, Step returns Suspended and leaves the instance untouched: the same
// instruction is retried by the next call. Once the instance has halted, Step
// keeps returning Halted without side effects.
//
// If an error occurs, the PC will point to the instruction that triggered
// the error.
func (i *Instance) Step() (Status, error) {
	if i.halted {
		return Halted, nil
	}
	if i.maxSteps > 0 && i.insCount >= i.maxSteps {
		return Continued, errors.Wrapf(ErrStepLimit, "%d instructions @pc=%d", i.insCount, i.PC)
	}
	word, err := i.Mem.Fetch(i.PC)
	if err != nil {
		return Continued, errors.Wrapf(err, "fetch @pc=%d", i.PC)
	}
	ins, err := Decode(word)
	if err != nil {
		return Continued, errors.Wrapf(err, "decode @pc=%d", i.PC)
	}
	if i.trace && i.log.AllowLevel(commonlog.Debug) {
		i.log.Debugf("%8d  %-20s rb=%v in=%d", i.PC, ins, i.base, len(i.input))
	}
	st, err := i.exec(ins)
	if err != nil {
		return st, errors.Wrapf(err, "%v @pc=%d", ins.Op, i.PC)
	}
	if st != Suspended {
		i.insCount++
	}
	return st, nil
}

// exec executes a decoded instruction. The switch is exhaustive over the
// opcodes accepted by Decode.
func (i *Instance) exec(ins Instruction) (Status, error) {
	switch ins.Op {
	case OpAdd, OpMul, OpLess, OpEqual:
		a, b, err := i.read2(ins)
		if err != nil {
			return Continued, err
		}
		var v Cell
		switch ins.Op {
		case OpAdd:
			v = a.Add(b)
		case OpMul:
			v = a.Mul(b)
		case OpLess:
			v = flag(a.Less(b))
		case OpEqual:
			v = flag(a == b)
		}
		if err = i.write(ins, 3, v); err != nil {
			return Continued, err
		}
		i.PC += 4
	case OpIn:
		if len(i.input) == 0 {
			return Suspended, nil
		}
		if err := i.write(ins, 1, i.input[0]); err != nil {
			return Continued, err
		}
		i.input = i.input[1:]
		i.PC += 2
	case OpOut:
		v, err := i.read(ins, 1)
		if err != nil {
			return Continued, err
		}
		i.output = append(i.output, v)
		i.PC += 2
	case OpJumpTrue, OpJumpFalse:
		a, b, err := i.read2(ins)
		if err != nil {
			return Continued, err
		}
		if a.IsZero() == (ins.Op == OpJumpFalse) {
			pc, err := i.Mem.Address(b)
			if err != nil {
				return Continued, errors.Wrap(err, "jump target")
			}
			i.PC = pc
		} else {
			i.PC += 3
		}
	case OpAdjustBase:
		a, err := i.read(ins, 1)
		if err != nil {
			return Continued, err
		}
		i.base = i.base.Add(a)
		i.PC += 2
	case OpHalt:
		i.halted = true
		return Halted, nil
	default:
		return Continued, errors.Wrapf(ErrInvalidOpcode, "opcode %d", int(ins.Op))
	}
	return Continued, nil
}

// Run executes instructions until the instance halts or suspends on input,
// and returns that status. Run never returns Continued with a nil error.
//
// After feeding more input, calling Run again resumes execution at the input
// instruction that suspended it.
func (i *Instance) Run() (st Status, err error) {
	defer func() {
		if e := recover(); e != nil {
			switch e := e.(type) {
			case error:
				err = errors.Wrapf(e, "Recovered error @pc=%d/%d", i.PC, len(i.Mem))
			default:
				panic(e)
			}
		}
	}()
	for {
		st, err = i.Step()
		if err != nil || st != Continued {
			return st, err
		}
	}
}
