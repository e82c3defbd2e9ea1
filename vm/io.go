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
	"io"
	"math/big"

	"github.com/fxamacker/cbor/v2"
	"github.com/pkg/errors"
)

// FeedInput appends values to the tail of the input queue.
func (i *Instance) FeedInput(v ...Cell) {
	i.input = append(i.input, v...)
}

// Pending returns the number of queued input values not consumed yet.
func (i *Instance) Pending() int {
	return len(i.input)
}

// Outputs returns a copy of the values output so far.
func (i *Instance) Outputs() []Cell {
	return append([]Cell(nil), i.output...)
}

// DrainOutputs returns the values output so far and clears the output
// sequence.
func (i *Instance) DrainOutputs() []Cell {
	out := i.output
	i.output = nil
	return out
}

// LastOutput returns the most recent output value. The boolean result is false
// if the output sequence is empty.
func (i *Instance) LastOutput() (Cell, bool) {
	if len(i.output) == 0 {
		return Cell{}, false
	}
	return i.output[len(i.output)-1], true
}

// Snapshot is a point in time copy of the state of an instance, meant for
// post-mortem inspection. Memory is trimmed after its last non-zero cell.
type Snapshot struct {
	PC           int        `cbor:"pc"`
	RelativeBase *big.Int   `cbor:"rb"`
	Status       string     `cbor:"status"`
	Instructions int64      `cbor:"instructions"`
	Capacity     int        `cbor:"capacity"`
	Memory       []*big.Int `cbor:"memory"`
	Input        []*big.Int `cbor:"input"`
	Output       []*big.Int `cbor:"output"`
}

func bigs(cells []Cell) []*big.Int {
	b := make([]*big.Int, len(cells))
	for k, c := range cells {
		b[k] = c.Big()
	}
	return b
}

// Snapshot returns a snapshot of the instance.
func (i *Instance) Snapshot() *Snapshot {
	st := "running"
	if i.halted {
		st = Halted.String()
	} else if i.waiting() {
		st = Suspended.String()
	}
	return &Snapshot{
		PC:           i.PC,
		RelativeBase: i.base.Big(),
		Status:       st,
		Instructions: i.insCount,
		Capacity:     len(i.Mem),
		Memory:       bigs(i.Mem.Used()),
		Input:        bigs(i.input),
		Output:       bigs(i.output),
	}
}

// waiting reports whether the next Step would suspend.
func (i *Instance) waiting() bool {
	if len(i.input) > 0 || i.PC < 0 || i.PC >= len(i.Mem) {
		return false
	}
	ins, err := Decode(i.Mem[i.PC])
	return err == nil && ins.Op == OpIn
}

var cborEncMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(errors.Wrap(err, "vm: failed to create CBOR enc mode"))
	}
	cborEncMode = em
}

// Dump writes a CBOR encoded snapshot of the instance to w.
func (i *Instance) Dump(w io.Writer) error {
	return errors.Wrap(cborEncMode.NewEncoder(w).Encode(i.Snapshot()), "dump failed")
}

// ReadSnapshot decodes a snapshot written by Dump.
func ReadSnapshot(r io.Reader) (*Snapshot, error) {
	var s Snapshot
	if err := cbor.NewDecoder(r).Decode(&s); err != nil {
		return nil, errors.Wrap(err, "snapshot decode failed")
	}
	return &s, nil
}
