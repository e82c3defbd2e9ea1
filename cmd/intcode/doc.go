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

// The intcode command line tool runs intcode programs and the clients built
// on top of the VM.
//
// Usage:
//
//	intcode [flags] mode program-file
//
// Modes:
//
//	run       run the program with the -input values and print its outputs
//	diag      run a diagnostic program and print the diagnostic code
//	boost     run the program with a single input and print all outputs
//	amplify   find the highest signal of a serial amplifier chain
//	feedback  find the highest signal of an amplifier feedback loop
//	paint     run the hull painting robot and render the hull
//	nounverb  search the noun and verb producing -target
//	disasm    disassemble the program
//
// Flags:
//
//	-config filename
//		  load run configuration from filename (.toml, .yaml or .yml)
//	-debug
//		  enable debug diagnostics
//	-dump filename
//		  run mode: write a CBOR snapshot of the VM to filename upon exit
//	-input values
//		  comma separated input values (can be specified multiple times)
//	-max-steps n
//		  abort after n instructions per VM (0 = no limit)
//	-noun noun
//		  nounverb: patch address 1 with noun instead of searching (default -1)
//	-phases settings
//		  comma separated phase settings for amplify and feedback modes
//	-search
//		  amplify and feedback: search all phase permutations (default true)
//	-signal signal
//		  initial amplifier signal when -search=false (default 0)
//	-size int
//		  VM memory size in cells (default 100000)
//	-start color
//		  start panel color for paint mode (black or white) (default "black")
//	-target value
//		  target value for nounverb mode (default 19690720)
//	-trace
//		  log every executed instruction (implies -v 2)
//	-v int
//		  log verbosity: 0 notice, 1 info, 2 debug
//	-verb verb
//		  nounverb: patch address 2 with verb instead of searching (default -1)
//
// -debug: will print a full stacktrace and the VM registers should the VM
// crash.
//
// -config: settings not given on the command line are read from this file.
// Flags given explicitly always win over the configuration file. See package
// github.com/Nidjo123/aoc19/config for the file format.
//
// -input: in run mode, the values are queued as the program input. diag and
// boost modes only use the first value, defaulting to 1. Should the program
// wait on input once the queue is empty, run mode prints the outputs produced
// so far and logs a notice.
//
// -phases: amplify mode defaults to 0,1,2,3,4 and feedback mode to 5,6,7,8,9.
// With -search=false the phases are used in the given order, starting from
// -signal, and the resulting signal is printed. Otherwise the highest signal
// of all phase permutations is printed, followed by its phases.
//
// -size: memory is allocated once to this size and never grows. It is raised
// to the program size if smaller. In nounverb mode the default is the program
// size.
//
// -dump: the snapshot holds the registers, the status, the memory up to the
// last non-zero cell and the pending input and output values. It is meant for
// inspection only and cannot be loaded back.
//
// -start: color of the panel the robot starts on in paint mode. The painted
// hull is rendered with '#' for white panels and '.' for black ones, or with
// blocks and spaces when the output is a terminal. The render section of the
// configuration file may override these glyphs.
package main
