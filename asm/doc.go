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

// Package asm provides utility functions to disassemble intcode programs.
//
// Mnemonics:
//
//	opcode	asm	params	description
//	------	----	------	-----------------------------------------------------
//	1	add	a, b, c	store a + b in c
//	2	mul	a, b, c	store a * b in c
//	3	in	a	store the next input value in a, or suspend if none
//	4	out	a	output a
//	5	jnz	a, b	jump to b if a != 0
//	6	jz	a, b	jump to b if a == 0
//	7	lt	a, b, c	store 1 in c if a < b, 0 otherwise
//	8	eq	a, b, c	store 1 in c if a == b, 0 otherwise
//	9	arb	a	add a to the relative base
//	99	halt		stop execution
//
// Operands are written according to their addressing mode:
//
//	[12]	position: the cell at address 12
//	12	immediate: the value 12
//	[rb+12]	relative: the cell at address relative base + 12
//
// Intcode programs freely mix code and data. Since the disassembler has no way
// to tell them apart, data cells that happen to decode to valid instructions
// are disassembled as such.
package asm
