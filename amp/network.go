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

package amp

import (
	"github.com/pkg/errors"
	"github.com/tliron/commonlog"

	"github.com/Nidjo123/aoc19/vm"
)

// Network run failures.
var (
	ErrNoSignal = errors.New("no signal at tap point")
	ErrDeadlock = errors.New("network deadlock")
)

var log = commonlog.GetLogger("intcode.amp")

// Network is a ring of VM instances.
type Network struct {
	vms     []*vm.Instance
	pending [][]vm.Cell // input batches waiting for delivery, by instance index
	passes  int
}

// New creates a network of len(phases) instances, each running its own copy of
// program. Instance k receives phases[k] as its first input. The given options
// are applied to every instance.
func New(program []vm.Cell, phases []vm.Cell, opts ...vm.Option) (*Network, error) {
	if len(phases) == 0 {
		return nil, errors.New("empty phase list")
	}
	n := &Network{
		vms:     make([]*vm.Instance, len(phases)),
		pending: make([][]vm.Cell, len(phases)),
	}
	for k, p := range phases {
		i, err := vm.New(program, append([]vm.Option{vm.Input(p)}, opts...)...)
		if err != nil {
			return nil, errors.Wrapf(err, "amplifier %d", k)
		}
		n.vms[k] = i
	}
	return n, nil
}

// Len returns the number of instances in the ring.
func (n *Network) Len() int {
	return len(n.vms)
}

// Instance returns the k-th instance of the ring.
func (n *Network) Instance(k int) *vm.Instance {
	return n.vms[k]
}

// Passes returns the number of round-robin passes of the last call to Run.
func (n *Network) Passes() int {
	return n.passes
}

func (n *Network) tap() int {
	return len(n.vms) - 1
}

func (n *Network) halted() bool {
	for _, i := range n.vms {
		if !i.Halted() {
			return false
		}
	}
	return true
}

func (n *Network) steps() (s int64) {
	for _, i := range n.vms {
		s += i.InstructionCount()
	}
	return s
}

// Run feeds signal to the first instance and runs the ring until every
// instance has halted. It returns the last value output by the tap point.
//
// Each pass visits the instances in index order, skipping halted ones. A
// visited instance receives the outputs its upstream neighbor produced since
// its previous visit, then runs until it halts or suspends on input.
//
// Run fails with ErrNoSignal if the tap point never produced any output, and
// with ErrDeadlock if a whole pass ends without any instance making progress
// while some are still waiting on input. A fatal error in any instance aborts
// the run.
func (n *Network) Run(signal vm.Cell) (vm.Cell, error) {
	var (
		out  vm.Cell
		seen bool
	)
	n.passes = 0
	n.pending[0] = append(n.pending[0], signal)
	for !n.halted() {
		before := n.steps()
		n.passes++
		for k, i := range n.vms {
			if i.Halted() {
				continue
			}
			i.FeedInput(n.pending[k]...)
			n.pending[k] = nil
			st, err := i.Run()
			if err != nil {
				return vm.Cell{}, errors.Wrapf(err, "amplifier %d", k)
			}
			batch := i.DrainOutputs()
			next := (k + 1) % len(n.vms)
			n.pending[next] = append(n.pending[next], batch...)
			if k == n.tap() && len(batch) > 0 {
				out, seen = batch[len(batch)-1], true
			}
			if log.AllowLevel(commonlog.Debug) {
				log.Debugf("pass %d amplifier %d: %v, %d outputs", n.passes, k, st, len(batch))
			}
		}
		if n.steps() == before && !n.halted() {
			return vm.Cell{}, errors.Wrapf(ErrDeadlock, "pass %d", n.passes)
		}
	}
	if !seen {
		return vm.Cell{}, ErrNoSignal
	}
	return out, nil
}

// Chain runs one amplifier per phase setting in sequence. Each amplifier is
// fed its phase and the current signal, and must halt; its last output is the
// signal of the next amplifier. Chain returns the last output of the final
// amplifier.
func Chain(program []vm.Cell, phases []vm.Cell, signal vm.Cell, opts ...vm.Option) (vm.Cell, error) {
	if len(phases) == 0 {
		return vm.Cell{}, errors.New("empty phase list")
	}
	for k, p := range phases {
		i, err := vm.New(program, append([]vm.Option{vm.Input(p, signal)}, opts...)...)
		if err != nil {
			return vm.Cell{}, errors.Wrapf(err, "amplifier %d", k)
		}
		st, err := i.Run()
		if err != nil {
			return vm.Cell{}, errors.Wrapf(err, "amplifier %d", k)
		}
		if st != vm.Halted {
			return vm.Cell{}, errors.Wrapf(ErrDeadlock, "amplifier %d waiting on input", k)
		}
		var ok bool
		if signal, ok = i.LastOutput(); !ok {
			return vm.Cell{}, errors.Wrapf(ErrNoSignal, "amplifier %d", k)
		}
	}
	return signal, nil
}
