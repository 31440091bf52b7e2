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

import "math/bits"

// Fibonacci is the round function for a Fibonacci-form register: a single
// feedback bit is computed as the XOR reduction of all tapped state bits,
// the state shifts right one place (FF0 is discarded) and the feedback bit
// is inserted at the top.  One wide XOR tree feeds one flip-flop, which is
// the defining structural feature of the external-feedback form.
func Fibonacci(poly Polynomial, state uint64) uint64 {
	order := poly.Degree()
	if order < 1 {
		return 0
	}
	// XOR reduction of the tapped bits is the parity of their population.
	feedback := uint64(bits.OnesCount64(state&poly.TapMask()) & 1)
	//
	return (state >> 1) | (feedback << uint(order-1))
}
