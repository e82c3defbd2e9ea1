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

// Package amp wires intcode VM instances into amplifier chains and feedback
// networks.
//
// A Network is a ring of instances running the same program, each seeded with
// its own phase setting. The outputs of instance k are fed to instance k+1, and
// those of the last instance loop back to the first one. The network is driven
// cooperatively from a single goroutine: instances suspended on input are
// simply revisited on the next pass, once their upstream neighbor has produced
// more data.
//
// The value observed at the tap point, the last instance of the ring, is the
// result of the network.
package amp
