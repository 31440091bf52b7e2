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

import "fmt"

// Concat splices several registers into one wide (polynomial, state) pair,
// the first register occupying the most significant bits.  Each member is
// reset to its initial state before splicing.  The combined polynomial
// concatenates the members' tap masks within their respective widths, with a
// single degree bit marking the total width; the combined state concatenates
// the members' initial states.  The caller chooses the topology when
// constructing a register from the result.
//
// Fails with ErrInvalidState when the combined width exceeds MaxFieldOrder,
// and with ErrInvalidPolynomial when called with no registers.
func Concat(regs ...*Register) (Polynomial, uint64, error) {
	if len(regs) == 0 {
		return 0, 0, fmt.Errorf("%w: no registers to concatenate", ErrInvalidPolynomial)
	}
	//
	var (
		poly  uint64
		state uint64
		order uint
	)
	//
	for _, r := range regs {
		if order+r.order > MaxFieldOrder {
			return 0, 0, fmt.Errorf("%w: concatenated width %d exceeds %d bits",
				ErrInvalidState, order+r.order, MaxFieldOrder)
		}
		//
		r.Reset()
		poly = poly<<r.order | r.poly.TapMask()
		state = state<<r.order | r.state
		order += r.order
	}
	// Mark the combined width.
	poly |= uint64(1) << order
	//
	return Polynomial(poly), state, nil
}
