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
package lfsr

import (
	"slices"
	"testing"
)

func Test_StateTable_Maximal(t *testing.T) {
	reg := mustRegister(t, 0b10011, 0b1010, Fibonacci)
	//
	table, err := reg.StateTable()
	if err != nil {
		t.Fatal(err)
	}
	// Maximal register: all fifteen non-zero states, seed first.
	if len(table) != 15 {
		t.Errorf("expected 15 states, got %d", len(table))
	}

	if table[0] != 0b1010 {
		t.Errorf("expected table to start at seed, got %04b", table[0])
	}
	//
	checkTableInvariants(t, table, 4)
	// Register itself untouched
	if reg.State() != 0b1010 {
		t.Errorf("state table generation mutated the register: %v", reg)
	}
}

func Test_StateTable_TailIntoLoop(t *testing.T) {
	// This Galois walk has a two-state tail before entering a three-state
	// loop; the table stops at the first repeat of any recorded state and
	// excludes that repeat.
	reg := mustRegister(t, 0b10011, 0b1010, Galois)
	//
	table, err := reg.StateTable()
	if err != nil {
		t.Fatal(err)
	}
	//
	expected := []uint64{0b1010, 0b0101, 0b0001, 0b0011, 0b0010}
	if !slices.Equal(expected, table) {
		t.Errorf("expected %v, got %v", expected, table)
	}
}

func Test_StateTable_ZeroState(t *testing.T) {
	reg := mustRegister(t, 0b10011, 0b0000, Fibonacci)
	//
	table, err := reg.StateTable()
	if err != nil {
		t.Fatal(err)
	}
	// Zero is a fixed point of the Fibonacci round.
	if !slices.Equal([]uint64{0}, table) {
		t.Errorf("expected [0], got %v", table)
	}
}

func Test_StateTable_PureShift(t *testing.T) {
	reg := mustRegister(t, 0b10000, 0b1000, Fibonacci)
	//
	table, err := reg.StateTable()
	if err != nil {
		t.Fatal(err)
	}
	//
	expected := []uint64{0b1000, 0b0100, 0b0010, 0b0001, 0b0000}
	if !slices.Equal(expected, table) {
		t.Errorf("expected %v, got %v", expected, table)
	}
}

func mustRegister(t *testing.T, poly Polynomial, state uint64, round Round) *Register {
	reg, err := New(poly, state, round)
	if err != nil {
		t.Fatal(err)
	}

	return reg
}

func checkTableInvariants(t *testing.T, table []uint64, order uint) {
	seen := make(map[uint64]bool)
	//
	for _, s := range table {
		if s >= uint64(1)<<order {
			t.Errorf("state %b outside %d-bit field", s, order)
		}

		if seen[s] {
			t.Errorf("duplicate state %b", s)
		}
		//
		seen[s] = true
	}
}
