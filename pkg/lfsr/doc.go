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

// Package lfsr models linear feedback (and feedforward) shift registers as
// they appear in hardware designs.  A register is a fixed-width word of
// flip-flops, numbered FF0 (bit 0, rightmost) upwards, whose next state is a
// pure function of its current state and a characteristic polynomial:
//
//	     +-------+   +-------+     +-------+
//	 +---|       |...|       |--+--|       |--+--
//	 |   |  FFn  |   |  FF1  |  |  |  FF0  |  ^
//	 |   +-------+   +-------+  |  +-------+  |
//	 |                          |             |
//	 |   +----------------------+----------+  |
//	 +-->|             f(x)                |--+
//	     +---------------------------------+
//
// The polynomial's set bits mark the taps feeding f(x).  Two canonical
// topologies are provided: Fibonacci form, where the tapped bits feed a
// single XOR tree whose output is shifted in at the top; and Galois form,
// where the outgoing bit is XORed back into the word at every tap position
// simultaneously.  Custom topologies plug in as Round function values.
//
// The model is intended as a software reference for cross-checking hardware
// register designs.  State values are bit-exact with the hardware convention
// used throughout: bit 0 is the least significant bit and the rightmost
// flip-flop.
package lfsr
