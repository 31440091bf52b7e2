// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Package trace captures and compares register traces.  A trace is the
// sequence of states a register passes through, one per clock edge, using
// the same bit numbering as the register model (bit 0 = FF0).  Traces read
// from hardware simulation dumps can be checked bit for bit against traces
// captured from the software model.
package trace

import (
	"fmt"
	"strings"

	"github.com/consensys/go-lfsr/pkg/lfsr"
)

// Trace is an ordered record of register states, one per clock edge.
type Trace struct {
	// Width of the traced register in bits.
	Width uint
	// States visited, in clock order.
	States []uint64
}

// Capture records the current state of the given register followed by the
// given number of rounds.  The register itself is left untouched; the replay
// happens on a copy.
func Capture(r *lfsr.Register, rounds uint) Trace {
	c := *r
	//
	states := make([]uint64, 0, rounds+1)
	states = append(states, c.State())
	//
	for i := uint(0); i < rounds; i++ {
		states = append(states, c.Next())
	}
	//
	return Trace{Width: r.FieldOrder(), States: states}
}

// Diff compares this trace against another bit for bit, returning one error
// per difference found.  An empty slice means the traces are identical.
// Widths and lengths are compared first; states are then compared pairwise
// up to the shorter length, reporting the differing bit positions of each
// mismatch.
func (t Trace) Diff(other Trace) []error {
	errs := make([]error, 0)
	//
	if t.Width != other.Width {
		errs = append(errs, fmt.Errorf("differing register widths (%d v %d)", t.Width, other.Width))
	}
	//
	if len(t.States) != len(other.States) {
		errs = append(errs, fmt.Errorf("differing trace lengths (%d v %d)", len(t.States), len(other.States)))
	}
	//
	n := min(len(t.States), len(other.States))
	width := int(max(t.Width, other.Width))
	//
	for i := 0; i < n; i++ {
		if x, y := t.States[i], other.States[i]; x != y {
			errs = append(errs, fmt.Errorf("cycle %d: %0*b v %0*b (bits %v differ)",
				i, width, x, width, y, diffBits(x^y)))
		}
	}
	//
	return errs
}

// String renders the trace in the line-per-state dump format.
func (t Trace) String() string {
	var builder strings.Builder
	//
	for _, s := range t.States {
		fmt.Fprintf(&builder, "%0*b\n", int(t.Width), s)
	}
	//
	return builder.String()
}

// Determine the positions of all set bits in a difference word.
func diffBits(x uint64) []uint {
	positions := make([]uint, 0, 8)
	//
	for i := uint(0); x != 0; i++ {
		if x&1 == 1 {
			positions = append(positions, i)
		}
		//
		x >>= 1
	}
	//
	return positions
}
