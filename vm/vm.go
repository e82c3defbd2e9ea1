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

// Fatal conditions. Errors returned by this package can be matched against
// these values with errors.Cause.
var (
	ErrParse          = errors.New("malformed program")
	ErrInvalidOpcode  = errors.New("invalid opcode")
	ErrInvalidMode    = errors.New("invalid parameter mode")
	ErrImmediateWrite = errors.New("write to immediate mode parameter")
	ErrAddressRange   = errors.New("address out of range")
	ErrStepLimit      = errors.New("step limit reached")
)

// Status is the outcome of executing one or more instructions.
type Status int

// Step and Run outcomes.
const (
	Continued Status = iota // instruction executed, more to come
	Suspended               // waiting on input; the same instruction is retried
	Halted                  // halt instruction reached
)

func (s Status) String() string {
	switch s {
	case Continued:
		return "continued"
	case Suspended:
		return "suspended"
	case Halted:
		return "halted"
	}
	return "unknown"
}

// Instance represents an intcode VM instance.
type Instance struct {
	PC       int    // Program Counter
	Mem      Memory // Memory, allocated once at construction
	base     Cell
	input    []Cell
	output   []Cell
	halted   bool
	insCount int64
	maxSteps int64
	capacity int
	trace    bool
	log      commonlog.Logger
}

// Option interface
type Option func(*Instance) error

// Capacity sets the memory size in cells. The default is DefaultCapacity. The
// capacity is raised to the program length if smaller.
func Capacity(size int) Option {
	return func(i *Instance) error {
		if size <= 0 {
			return errors.Errorf("invalid memory capacity %d", size)
		}
		i.capacity = size
		return nil
	}
}

// Input queues the given values as initial input.
func Input(v ...Cell) Option {
	return func(i *Instance) error { i.FeedInput(v...); return nil }
}

// MaxSteps bounds the total number of instructions the instance may execute.
// Once reached, Step and Run fail with ErrStepLimit. Zero, the default, means
// no limit.
func MaxSteps(n int64) Option {
	return func(i *Instance) error {
		if n < 0 {
			return errors.Errorf("invalid step limit %d", n)
		}
		i.maxSteps = n
		return nil
	}
}

// Trace enables or disables logging of every executed instruction at debug
// level.
func Trace(enable bool) Option {
	return func(i *Instance) error { i.trace = enable; return nil }
}

// Logger sets the logger used for tracing. The default is the "intcode.vm"
// logger.
func Logger(l commonlog.Logger) Option {
	return func(i *Instance) error {
		if l == nil {
			return errors.New("nil logger")
		}
		i.log = l
		return nil
	}
}

// SetOptions sets the provided options.
func (i *Instance) SetOptions(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(i); err != nil {
			return err
		}
	}
	return nil
}

// New creates a new intcode VM instance.
//
// The program is copied into a freshly allocated Memory, so the same program
// slice may be shared by several instances. The memory capacity is fixed for
// the lifetime of the instance.
//
// Options will be set by calling SetOptions.
func New(program []Cell, opts ...Option) (*Instance, error) {
	i := &Instance{
		capacity: DefaultCapacity,
		log:      commonlog.GetLogger("intcode.vm"),
	}
	if err := i.SetOptions(opts...); err != nil {
		return nil, err
	}
	i.Mem = newMemory(program, i.capacity)
	return i, nil
}

// Halted reports whether the instance has executed a halt instruction.
func (i *Instance) Halted() bool {
	return i.halted
}

// RelativeBase returns the value of the relative base register.
func (i *Instance) RelativeBase() Cell {
	return i.base
}

// InstructionCount returns the number of instructions executed so far.
func (i *Instance) InstructionCount() int64 {
	return i.insCount
}
