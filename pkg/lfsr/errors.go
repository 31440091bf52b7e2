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

import "errors"

// Errors reported by the register model.  All are detected synchronously at
// the point of violation and failing operations leave the register untouched.
var (
	// ErrInvalidPolynomial indicates a zero polynomial, which has no degree
	// and hence no taps.
	ErrInvalidPolynomial = errors.New("invalid polynomial")
	// ErrInvalidState indicates a state value which does not fit within the
	// register's field order.
	ErrInvalidState = errors.New("invalid state")
	// ErrIndexOutOfRange indicates a bit index outside [0, field order).
	ErrIndexOutOfRange = errors.New("bit index out of range")
	// ErrInvalidBitValue indicates a bit write with a value other than 0 or 1.
	ErrInvalidBitValue = errors.New("invalid bit value")
	// ErrCycleNotFound indicates state-table generation exceeded its
	// iteration bound without the state cycle closing.  This cannot happen
	// for a well-formed round function and signals a malformed custom Round.
	ErrCycleNotFound = errors.New("cycle not found")
)
