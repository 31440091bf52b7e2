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

import "testing"

// x^4 + x^1 + x^0: tap mask 0b0011 applied whenever FF0 shifts out set.

func Test_Galois_00(t *testing.T) {
	// FF0 is clear, so the shift applies alone.
	checkRound(t, Galois, 0b10011, 0b1010, 0b0101)
}

func Test_Galois_01(t *testing.T) {
	checkRound(t, Galois, 0b10011, 0b0101, 0b0001)
}

func Test_Galois_02(t *testing.T) {
	checkRound(t, Galois, 0b10011, 0b0001, 0b0011)
}

func Test_Galois_03(t *testing.T) {
	checkRound(t, Galois, 0b10011, 0b0011, 0b0010)
}

func Test_Galois_04(t *testing.T) {
	checkRound(t, Galois, 0b10011, 0b0000, 0b0000)
}

func Test_Galois_05(t *testing.T) {
	checkRound(t, Galois, 0b10000, 0b0001, 0b0000)
}

// The walk from 0b1010 settles into a three-state loop after two rounds.
func Test_Galois_Sequence(t *testing.T) {
	checkSequence(t, Galois, 0b10011, 0b1010, []uint64{
		0b0101, 0b0001, 0b0011, 0b0010, 0b0001, 0b0011,
	})
}
