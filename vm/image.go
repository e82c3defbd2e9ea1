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
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/Nidjo123/aoc19/internal/iox"
)

// Parse parses program text: comma separated signed decimal integers.
// Leading and trailing white space is ignored, as is white space around each
// token. Any malformed token fails with an error whose cause is ErrParse.
func Parse(text string) ([]Cell, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, errors.Wrap(ErrParse, "empty program")
	}
	tokens := strings.Split(text, ",")
	prog := make([]Cell, len(tokens))
	for k, tok := range tokens {
		c, err := ParseCell(strings.TrimSpace(tok))
		if err != nil {
			return nil, errors.Wrapf(ErrParse, "token %d: %v", k+1, err)
		}
		prog[k] = c
	}
	return prog, nil
}

// Read reads and parses program text from r.
func Read(r io.Reader) ([]Cell, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "read failed")
	}
	return Parse(string(b))
}

// Load loads a program from file fileName.
func Load(fileName string) ([]Cell, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, errors.Wrap(err, "Load")
	}
	defer f.Close()
	prog, err := Read(f)
	if err != nil {
		return nil, errors.Wrapf(err, "Load %v", fileName)
	}
	return prog, nil
}

// Format writes cells to w in program text format, without a trailing newline.
func Format(w io.Writer, cells []Cell) error {
	ew := iox.NewErrWriter(w)
	for k, c := range cells {
		if k > 0 {
			ew.Write([]byte{','})
		}
		io.WriteString(ew, c.String())
	}
	return ew.Err
}
