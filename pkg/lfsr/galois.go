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

// Galois is the round function for a Galois-form register: the state shifts
// right one place and, when the outgoing bit (FF0) was set, the tap mask is
// XORed into the shifted word.  The taps apply in parallel at every marked
// position rather than through one combinational function, which is the
// defining structural difference from the Fibonacci form and is cheaper
// per tap in hardware.
func Galois(poly Polynomial, state uint64) uint64 {
	out := state & 1
	state >>= 1
	//
	if out == 1 {
		state ^= poly.TapMask()
	}

	return state
}
