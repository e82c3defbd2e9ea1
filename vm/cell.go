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
	"math"
	"math/big"

	"github.com/holiman/uint256"
	"github.com/pkg/errors"
)

// Cell is the raw type stored in a memory location. Cells are 256 bits wide
// and hold two's complement signed integers. Arithmetic wraps around modulo
// 2^256.
//
// The zero value is the integer 0. Cells are comparable with ==.
type Cell struct {
	v uint256.Int
}

// Int returns the Cell holding v.
func Int(v int64) Cell {
	var c Cell
	if v < 0 {
		c.v.SetUint64(uint64(-(v + 1)) + 1)
		c.v.Neg(&c.v)
	} else {
		c.v.SetUint64(uint64(v))
	}
	return c
}

// Ints converts a list of int64 values to Cells.
func Ints(vs ...int64) []Cell {
	cs := make([]Cell, len(vs))
	for k, v := range vs {
		cs[k] = Int(v)
	}
	return cs
}

// ParseCell parses a signed decimal integer. A single leading '+' or '-' is
// accepted. Values that do not fit in a Cell are rejected.
func ParseCell(s string) (Cell, error) {
	var c Cell
	digits, neg := s, false
	if len(digits) > 0 && (digits[0] == '-' || digits[0] == '+') {
		neg = digits[0] == '-'
		digits = digits[1:]
	}
	if len(digits) == 0 {
		return c, errors.Errorf("invalid integer %q", s)
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return c, errors.Errorf("invalid integer %q", s)
		}
	}
	if err := c.v.SetFromDecimal(digits); err != nil {
		return Cell{}, errors.Wrapf(err, "invalid integer %q", s)
	}
	if neg {
		if c.v.IsZero() {
			return c, nil
		}
		c.v.Neg(&c.v)
		if c.v.Sign() > 0 {
			return Cell{}, errors.Errorf("integer %q out of range", s)
		}
	} else if c.v.Sign() < 0 {
		return Cell{}, errors.Errorf("integer %q out of range", s)
	}
	return c, nil
}

// Add returns c + d.
func (c Cell) Add(d Cell) Cell {
	var r Cell
	r.v.Add(&c.v, &d.v)
	return r
}

// Mul returns c * d.
func (c Cell) Mul(d Cell) Cell {
	var r Cell
	r.v.Mul(&c.v, &d.v)
	return r
}

// Less reports whether c < d.
func (c Cell) Less(d Cell) bool {
	return c.v.Slt(&d.v)
}

// Cmp compares c and d and returns -1, 0 or +1.
func (c Cell) Cmp(d Cell) int {
	switch {
	case c == d:
		return 0
	case c.Less(d):
		return -1
	}
	return 1
}

// IsZero reports whether c == 0.
func (c Cell) IsZero() bool {
	return c.v.IsZero()
}

// Sign returns -1, 0 or +1 depending on the sign of c.
func (c Cell) Sign() int {
	return c.v.Sign()
}

// Int64 returns the value of c as an int64. The boolean result is false if c
// does not fit.
func (c Cell) Int64() (int64, bool) {
	if c.v.Sign() >= 0 {
		if !c.v.IsUint64() || c.v.Uint64() > math.MaxInt64 {
			return 0, false
		}
		return int64(c.v.Uint64()), true
	}
	var abs uint256.Int
	abs.Neg(&c.v)
	if !abs.IsUint64() || abs.Uint64() > 1<<63 {
		return 0, false
	}
	return int64(-abs.Uint64()), true
}

// index returns c as a non-negative int. The boolean result is false if c is
// negative or too large.
func (c Cell) index() (int, bool) {
	if c.v.Sign() < 0 || !c.v.IsUint64() || c.v.Uint64() > math.MaxInt32 {
		return 0, false
	}
	return int(c.v.Uint64()), true
}

// Big returns c as a big.Int.
func (c Cell) Big() *big.Int {
	if c.v.Sign() >= 0 {
		return c.v.ToBig()
	}
	var abs uint256.Int
	abs.Neg(&c.v)
	return new(big.Int).Neg(abs.ToBig())
}

// String returns the signed decimal representation of c.
func (c Cell) String() string {
	if c.v.Sign() >= 0 {
		return c.v.Dec()
	}
	var abs uint256.Int
	abs.Neg(&c.v)
	return "-" + abs.Dec()
}

// MarshalText implements encoding.TextMarshaler.
func (c Cell) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Cell) UnmarshalText(text []byte) error {
	v, err := ParseCell(string(text))
	if err != nil {
		return err
	}
	*c = v
	return nil
}
