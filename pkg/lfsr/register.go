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
	"errors"
	"fmt"
)

// Round computes the next register state from the characteristic polynomial
// and the current state.  It must be a pure function and must return a value
// within field-order bits; results are nonetheless masked when applied, so
// the register invariant holds even for a misbehaving implementation.  This
// is the single variation point between register topologies.
type Round func(poly Polynomial, state uint64) uint64

// Register models a fixed-width shift register.  The field order (bit width)
// is derived from the polynomial's degree and immutable; the state mutates
// only via bit writes, Load or round advancement and always satisfies
// 0 <= state < 2^order.
//
// A Register is not safe for concurrent mutation; callers sharing one across
// goroutines must serialise access.  Distinct registers share nothing.
type Register struct {
	poly  Polynomial
	order uint
	mask  uint64
	state uint64
	// Construction-time (or last loaded) state, restored by Reset.
	initial uint64
	round   Round
}

// New constructs a register governed by the given polynomial, seeded with the
// given state and advanced by the given round function.  The polynomial must
// be non-zero and the state must fit within its degree.
func New(poly Polynomial, state uint64, round Round) (*Register, error) {
	order, err := poly.FieldOrder()
	if err != nil {
		return nil, err
	}
	//
	mask := (uint64(1) << order) - 1
	if state > mask {
		return nil, fmt.Errorf("%w: 0b%b exceeds %d-bit field", ErrInvalidState, state, order)
	}
	//
	if round == nil {
		return nil, errors.New("nil round function")
	}
	//
	return &Register{poly: poly, order: order, mask: mask, state: state, initial: state, round: round}, nil
}

// NewFibonacci constructs a Fibonacci-form register (external feedback).
func NewFibonacci(poly Polynomial, state uint64) (*Register, error) {
	return New(poly, state, Fibonacci)
}

// NewGalois constructs a Galois-form register (internal feedback).
func NewGalois(poly Polynomial, state uint64) (*Register, error) {
	return New(poly, state, Galois)
}

// Polynomial returns the characteristic polynomial.
func (r *Register) Polynomial() Polynomial {
	return r.poly
}

// FieldOrder returns the register width in bits.
func (r *Register) FieldOrder() uint {
	return r.order
}

// State returns the current register contents, bit 0 = FF0.
func (r *Register) State() uint64 {
	return r.state
}

// Bit reads bit i of the current state.  Together with SetBit this is the
// uniform bit-indexed access contract for the register.
func (r *Register) Bit(i uint) (uint8, error) {
	if i >= r.order {
		return 0, fmt.Errorf("%w: bit %d of a %d-bit register", ErrIndexOutOfRange, i, r.order)
	}

	return uint8(r.state >> i & 1), nil
}

// SetBit writes value (0 or 1) to bit i of the state, leaving all other bits
// unchanged.
func (r *Register) SetBit(i uint, value uint8) error {
	if i >= r.order {
		return fmt.Errorf("%w: bit %d of a %d-bit register", ErrIndexOutOfRange, i, r.order)
	}
	//
	if value > 1 {
		return fmt.Errorf("%w: %d", ErrInvalidBitValue, value)
	}
	//
	if value == 1 {
		r.state |= uint64(1) << i
	} else {
		r.state &^= uint64(1) << i
	}

	return nil
}

// Next advances the register by exactly one clock edge, returning the
// resulting state.
func (r *Register) Next() uint64 {
	r.state = r.round(r.poly, r.state) & r.mask
	return r.state
}

// Advance applies n rounds, returning the resulting state.  Advance(0) is a
// no-op.
func (r *Register) Advance(n uint) uint64 {
	for i := uint(0); i < n; i++ {
		r.state = r.round(r.poly, r.state) & r.mask
	}

	return r.state
}

// FullCycle advances the register through 2^order rounds, returning the
// resulting state.  Like StateTable, this is exponential in the field order.
func (r *Register) FullCycle() uint64 {
	return r.Advance(uint(1) << r.order)
}

// Reset restores the state the register was constructed with (or last given
// to Load).
func (r *Register) Reset() {
	r.state = r.initial
}

// Load replaces the register state wholesale and rebases the Reset point.
// Fails with ErrInvalidState (leaving the register untouched) if the value
// does not fit the field.
func (r *Register) Load(state uint64) error {
	if state > r.mask {
		return fmt.Errorf("%w: 0b%b exceeds %d-bit field", ErrInvalidState, state, r.order)
	}
	//
	r.state = state
	r.initial = state

	return nil
}

// Algebraic returns the characteristic polynomial in algebraic string form.
func (r *Register) Algebraic() string {
	return r.poly.Algebraic()
}

// Bits returns the current state as a zero-padded binary string, highest
// flip-flop leftmost.  This matches the rendering of a hardware trace dump.
func (r *Register) Bits() string {
	return fmt.Sprintf("%0*b", int(r.order), r.state)
}

func (r *Register) String() string {
	return fmt.Sprintf("%s (%d)", r.Bits(), r.state)
}
