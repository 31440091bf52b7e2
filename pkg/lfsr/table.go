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
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// StateTable computes the sequence of states visited from the current state,
// applying one round at a time until a previously recorded state recurs.
// The current state is the first element; the closing repeat is excluded, so
// the table carries no duplicates.  The register itself is left untouched.
//
// The table is recomputed on every call.  Callers wanting memoisation should
// hold the returned slice themselves, against the (polynomial, state) pair
// that produced it.
//
// Beware that both time and space are O(2^order) in the worst case.  The
// iteration bound of 2^order + 1 guarantees termination; exceeding it is
// only possible for a malformed round function and fails with
// ErrCycleNotFound.
func (r *Register) StateTable() ([]uint64, error) {
	var (
		bound = (uint64(1) << r.order) + 1
		seen  bitset.BitSet
		table = make([]uint64, 0, 16)
		state = r.state
	)
	//
	for i := uint64(0); i < bound; i++ {
		if seen.Test(uint(state)) {
			// Cycle closed.
			return table, nil
		}
		//
		seen.Set(uint(state))
		table = append(table, state)
		state = r.round(r.poly, state) & r.mask
	}
	//
	return nil, fmt.Errorf("%w: no repeat within %d rounds of %v", ErrCycleNotFound, bound, r)
}
