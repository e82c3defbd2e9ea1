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

package puzzle

import (
	"io"

	"github.com/pkg/errors"

	"github.com/Nidjo123/aoc19/internal/iox"
	"github.com/Nidjo123/aoc19/vm"
)

// Color is a hull panel color.
type Color int

// Panel colors.
const (
	Black Color = iota
	White
)

func (c Color) String() string {
	switch c {
	case Black:
		return "black"
	case White:
		return "white"
	}
	return "invalid"
}

// Direction is the heading of the robot.
type Direction int

// Headings, clockwise.
const (
	Up Direction = iota
	Right
	Down
	Left
)

var deltas = [...]Point{Up: {0, 1}, Right: {1, 0}, Down: {0, -1}, Left: {-1, 0}}

// Turn returns the heading after turning left (turn 0) or right (turn 1).
func (d Direction) Turn(turn vm.Cell) (Direction, error) {
	switch turn {
	case vm.Int(0):
		return (d + 3) % 4, nil
	case vm.Int(1):
		return (d + 1) % 4, nil
	}
	return d, errors.Wrapf(ErrBadTurn, "%v", turn)
}

// Point is a panel position. Y grows upwards.
type Point struct {
	X, Y int
}

// Move returns the position one panel away from p in direction d.
func (p Point) Move(d Direction) Point {
	q := deltas[d]
	return Point{p.X + q.X, p.Y + q.Y}
}

// Hull is a grid of panels, all black until painted.
type Hull struct {
	panels  map[Point]Color
	painted map[Point]bool
}

// NewHull returns a black hull.
func NewHull() *Hull {
	return &Hull{
		panels:  make(map[Point]Color),
		painted: make(map[Point]bool),
	}
}

// Color returns the color of the panel at p.
func (h *Hull) Color(p Point) Color {
	return h.panels[p]
}

// Paint paints the panel at p.
func (h *Hull) Paint(p Point, c Color) {
	h.panels[p] = c
	h.painted[p] = true
}

// Painted returns the number of panels painted at least once.
func (h *Hull) Painted() int {
	return len(h.painted)
}

// Bounds returns the smallest rectangle containing all white panels. ok is
// false if there are none.
func (h *Hull) Bounds() (min, max Point, ok bool) {
	for p, c := range h.panels {
		if c != White {
			continue
		}
		if !ok {
			min, max, ok = p, p, true
			continue
		}
		if p.X < min.X {
			min.X = p.X
		}
		if p.Y < min.Y {
			min.Y = p.Y
		}
		if p.X > max.X {
			max.X = p.X
		}
		if p.Y > max.Y {
			max.Y = p.Y
		}
	}
	return
}

// Render draws the area returned by Bounds to w, one line per row starting
// with the top one. White panels are drawn with on, black ones with off.
func (h *Hull) Render(w io.Writer, on, off string) error {
	min, max, ok := h.Bounds()
	if !ok {
		return nil
	}
	ew := iox.NewErrWriter(w)
	for y := max.Y; y >= min.Y; y-- {
		for x := min.X; x <= max.X; x++ {
			if h.panels[Point{x, y}] == White {
				io.WriteString(ew, on)
			} else {
				io.WriteString(ew, off)
			}
		}
		ew.Write([]byte{'\n'})
	}
	return ew.Err
}

// Robot is a hull painting robot controlled by an intcode program.
//
// On each cycle the robot feeds the color of the panel below it to the
// program, then reads back pairs of outputs: the color to paint the panel
// with, and the direction to turn to, 0 for left and 1 for right. After
// turning, the robot moves forward one panel.
type Robot struct {
	Pos  Point
	Dir  Direction
	Hull *Hull
	vm   *vm.Instance
}

// NewRobot returns a robot facing up at the origin of a black hull, the
// origin panel having color start.
func NewRobot(program []vm.Cell, start Color, opts ...vm.Option) (*Robot, error) {
	i, err := vm.New(program, opts...)
	if err != nil {
		return nil, err
	}
	h := NewHull()
	if start != Black {
		h.panels[Point{}] = start
	}
	return &Robot{Hull: h, vm: i}, nil
}

func color(c vm.Cell) (Color, error) {
	switch c {
	case vm.Int(0):
		return Black, nil
	case vm.Int(1):
		return White, nil
	}
	return Black, errors.Wrapf(ErrBadColor, "%v", c)
}

// Run drives the robot until its program halts.
func (r *Robot) Run() error {
	for {
		r.vm.FeedInput(vm.Int(int64(r.Hull.Color(r.Pos))))
		st, err := r.vm.Run()
		if err != nil {
			return err
		}
		out := r.vm.DrainOutputs()
		if len(out)%2 != 0 {
			return errors.Wrapf(ErrOutput, "%d outputs", len(out))
		}
		for k := 0; k < len(out); k += 2 {
			c, err := color(out[k])
			if err != nil {
				return err
			}
			if r.Dir, err = r.Dir.Turn(out[k+1]); err != nil {
				return err
			}
			r.Hull.Paint(r.Pos, c)
			r.Pos = r.Pos.Move(r.Dir)
		}
		if st == vm.Halted {
			log.Infof("robot halted after %d instructions, %d panels painted", r.vm.InstructionCount(), r.Hull.Painted())
			return nil
		}
	}
}

// Paint runs a robot controlled by program from a start panel of the given
// color and returns the resulting hull.
func Paint(program []vm.Cell, start Color, opts ...vm.Option) (*Hull, error) {
	r, err := NewRobot(program, start, opts...)
	if err != nil {
		return nil, err
	}
	if err = r.Run(); err != nil {
		return r.Hull, err
	}
	return r.Hull, nil
}
