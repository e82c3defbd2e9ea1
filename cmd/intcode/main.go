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

package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
	"github.com/tliron/kutil/util"

	"github.com/Nidjo123/aoc19/amp"
	"github.com/Nidjo123/aoc19/asm"
	"github.com/Nidjo123/aoc19/config"
	"github.com/Nidjo123/aoc19/puzzle"
	"github.com/Nidjo123/aoc19/vm"
)

type cellList []vm.Cell

func (l *cellList) String() string {
	var b strings.Builder
	vm.Format(&b, *l)
	return b.String()
}

func (l *cellList) Set(s string) error {
	cells, err := vm.Parse(s)
	if err != nil {
		return err
	}
	*l = append(*l, cells...)
	return nil
}

func (l *cellList) Get() interface{} { return []vm.Cell(*l) }

type cellValue vm.Cell

func (c *cellValue) String() string { return vm.Cell(*c).String() }
func (c *cellValue) Set(s string) error {
	v, err := vm.ParseCell(s)
	if err != nil {
		return err
	}
	*c = cellValue(v)
	return nil
}
func (c *cellValue) Get() interface{} { return vm.Cell(*c) }

var (
	debug    bool
	search   = true
	dumpFile string
	noun     = -1
	verb     = -1
	log      = commonlog.GetLogger("intcode.cli")
)

// settings are the configuration values once flags have been applied.
type settings struct {
	*config.Config
	inputs cellList
	phases cellList
	signal cellValue
	target cellValue
}

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] mode program-file\n\nModes: %s\n\nFlags:\n",
		os.Args[0], strings.Join(modes, ", "))
	flag.PrintDefaults()
}

func atExit(i *vm.Instance, err error) {
	if err == nil {
		util.Exit(0)
	}
	if !debug {
		fmt.Fprintf(os.Stderr, "\n%v\n", err)
		util.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "\n%+v\n", err)
	if i != nil {
		if i.PC >= 0 && i.PC < len(i.Mem) {
			fmt.Fprintf(os.Stderr, "PC: %v (%v), RB: %v, Instructions: %d, Input: %d\n", i.PC, i.Mem[i.PC], i.RelativeBase(), i.InstructionCount(), i.Pending())
		} else {
			fmt.Fprintf(os.Stderr, "PC: %v, RB: %v, Instructions: %d, Input: %d\n", i.PC, i.RelativeBase(), i.InstructionCount(), i.Pending())
		}
	}
	util.Exit(1)
}

func main() {
	var err error
	var i *vm.Instance

	stdout := bufio.NewWriter(os.Stdout)

	// flush output, dump the VM, catch and log errors
	defer func() {
		if e := stdout.Flush(); err == nil {
			err = e
		}
		if dumpFile != "" && i != nil {
			if e := dumpVM(i, dumpFile); err == nil {
				err = e
			}
		}
		atExit(i, err)
	}()

	def := config.Default()
	s := settings{
		Config: def,
		signal: cellValue(vm.Int(def.Signal)),
		target: cellValue(vm.Int(def.Target)),
	}
	var (
		cfgFile  = flag.String("config", "", "load run configuration from `filename` (.toml, .yaml or .yml)")
		size     = flag.Int("size", def.Capacity, "VM memory size in cells")
		maxSteps = flag.Int64("max-steps", 0, "abort after `n` instructions per VM (0 = no limit)")
		trace    = flag.Bool("trace", false, "log every executed instruction (implies -v 2)")
		verbose  = flag.Int("v", 0, "log verbosity: 0 notice, 1 info, 2 debug")
		start    = flag.String("start", def.Start, "start panel `color` for paint mode (black or white)")
	)
	flag.Var(&s.inputs, "input", "comma separated input `values` (can be specified multiple times)")
	flag.Var(&s.phases, "phases", "comma separated phase `settings` for amplify and feedback modes")
	flag.Var(&s.signal, "signal", "initial amplifier `signal` when -search=false")
	flag.Var(&s.target, "target", "target `value` for nounverb mode")
	flag.BoolVar(&search, "search", true, "amplify and feedback: search all phase permutations")
	flag.IntVar(&noun, "noun", -1, "nounverb: patch address 1 with `noun` instead of searching")
	flag.IntVar(&verb, "verb", -1, "nounverb: patch address 2 with `verb` instead of searching")
	flag.BoolVar(&debug, "debug", false, "enable debug diagnostics")
	flag.StringVar(&dumpFile, "dump", "", "run mode: write a CBOR snapshot of the VM to `filename` upon exit")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 2 {
		flag.Usage()
		err = errors.New("expected mode and program file arguments")
		return
	}
	mode, fileName := flag.Arg(0), flag.Arg(1)

	if *cfgFile != "" {
		var c *config.Config
		if c, err = config.Load(*cfgFile); err != nil {
			return
		}
		s.Config = c
		s.signal = cellValue(vm.Int(c.Signal))
		s.target = cellValue(vm.Int(c.Target))
	}
	explicit := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { explicit[f.Name] = true })
	if explicit["size"] {
		s.Capacity = *size
	}
	if explicit["max-steps"] {
		s.MaxSteps = *maxSteps
	}
	if explicit["trace"] {
		s.Trace = *trace
	}
	if explicit["v"] {
		s.Verbosity = *verbose
	}
	if explicit["start"] {
		s.Start = *start
	}
	if !explicit["input"] {
		s.inputs = config.Cells(s.Inputs)
	}
	if !explicit["phases"] {
		if mode == "feedback" {
			s.phases = config.Cells(s.FeedbackPhases)
		} else {
			s.phases = config.Cells(s.Phases)
		}
	}
	if err = s.Validate(); err != nil {
		return
	}

	verbosity := s.Verbosity
	if s.Trace && verbosity < 2 {
		verbosity = 2
	}
	commonlog.Configure(verbosity, nil)

	var prog []vm.Cell
	if prog, err = vm.Load(fileName); err != nil {
		return
	}
	log.Infof("loaded %d cells from %s", len(prog), fileName)

	i, err = runMode(mode, prog, &s, stdout, explicit["size"])
}

var modes = []string{"run", "diag", "boost", "amplify", "feedback", "paint", "nounverb", "disasm"}

// firstInput returns the first input value, or 1 if there is none.
func (s *settings) firstInput() vm.Cell {
	if len(s.inputs) == 0 {
		return vm.Int(1)
	}
	return s.inputs[0]
}

func printCells(w io.Writer, cells []vm.Cell) error {
	if err := vm.Format(w, cells); err != nil {
		return err
	}
	_, err := w.Write([]byte{'\n'})
	return err
}

// glyphs returns the panel glyphs for paint mode.
func (s *settings) glyphs() (on, off string) {
	on, off = s.Render.On, s.Render.Off
	tty := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	if on == "" {
		on = "#"
		if tty {
			on = "█"
		}
	}
	if off == "" {
		off = "."
		if tty {
			off = " "
		}
	}
	return on, off
}

// options returns the VM options for s. Unless sized is true, nounverb mode
// keeps the default capacity of puzzle.Patch.
func (s *settings) options(mode string, sized bool) []vm.Option {
	opts := []vm.Option{
		vm.MaxSteps(s.MaxSteps),
		vm.Trace(s.Trace),
	}
	if mode != "nounverb" || sized {
		opts = append(opts, vm.Capacity(s.Capacity))
	}
	return opts
}

// runMode executes mode. The returned instance, if any, is the one dumped
// upon exit.
func runMode(mode string, prog []vm.Cell, s *settings, w io.Writer, sized bool) (*vm.Instance, error) {
	opts := s.options(mode, sized)
	switch mode {
	case "run":
		i, err := vm.New(prog, append(opts, vm.Input(s.inputs...))...)
		if err != nil {
			return nil, err
		}
		st, err := i.Run()
		if err != nil {
			return i, err
		}
		if st == vm.Suspended {
			log.Noticef("program waiting on input at pc=%d", i.PC)
		}
		return i, printCells(w, i.Outputs())
	case "diag":
		code, err := puzzle.Diagnose(prog, s.firstInput(), opts...)
		if err != nil {
			return nil, err
		}
		_, err = fmt.Fprintln(w, code)
		return nil, err
	case "boost":
		out, err := puzzle.Boost(prog, s.firstInput(), opts...)
		if err != nil {
			return nil, err
		}
		return nil, printCells(w, out)
	case "amplify", "feedback":
		feedback := mode == "feedback"
		if search {
			best, phases, err := amp.MaxSignal(prog, s.phases, feedback, opts...)
			if err != nil {
				return nil, err
			}
			_, err = fmt.Fprintf(w, "%v %v\n", best, phases)
			return nil, err
		}
		var sig vm.Cell
		var err error
		if feedback {
			var n *amp.Network
			if n, err = amp.New(prog, s.phases, opts...); err == nil {
				sig, err = n.Run(vm.Cell(s.signal))
			}
		} else {
			sig, err = amp.Chain(prog, s.phases, vm.Cell(s.signal), opts...)
		}
		if err != nil {
			return nil, err
		}
		_, err = fmt.Fprintln(w, sig)
		return nil, err
	case "paint":
		start := puzzle.Black
		if s.Start == "white" {
			start = puzzle.White
		}
		h, err := puzzle.Paint(prog, start, opts...)
		if err != nil {
			return nil, err
		}
		fmt.Fprintf(w, "%d panels painted\n", h.Painted())
		on, off := s.glyphs()
		return nil, h.Render(w, on, off)
	case "nounverb":
		if noun >= 0 || verb >= 0 {
			if noun < 0 || verb < 0 {
				return nil, errors.New("both -noun and -verb must be set")
			}
			v, err := puzzle.Patch(prog, noun, verb, opts...)
			if err != nil {
				return nil, err
			}
			_, err = fmt.Fprintln(w, v)
			return nil, err
		}
		nv, err := puzzle.NounVerb(prog, vm.Cell(s.target), opts...)
		if err != nil {
			return nil, err
		}
		_, err = io.WriteString(w, strconv.Itoa(nv)+"\n")
		return nil, err
	case "disasm":
		return nil, asm.DisassembleAll(prog, 0, w)
	}
	return nil, errors.Errorf("unknown mode %q", mode)
}
