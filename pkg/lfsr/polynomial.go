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
	"math/bits"
	"strings"
)

// MaxFieldOrder is the widest register this package supports.  States are
// held in a uint64 and the polynomial needs one further bit for its degree
// coefficient, leaving 63 usable flip-flops.
const MaxFieldOrder = 63

// Polynomial is a characteristic polynomial over GF(2), packed into a machine
// word with bit i holding the coefficient of x^i.  The highest set bit is the
// degree; the bits below it mark the register's tap positions.
type Polynomial uint64

// Degree returns the index of the highest set coefficient, or -1 for the zero
// polynomial.
func (p Polynomial) Degree() int {
	return bits.Len64(uint64(p)) - 1
}

// FieldOrder returns the width (in bits) of a register governed by this
// polynomial, which equals its degree.  The zero polynomial has no degree and
// is rejected with ErrInvalidPolynomial.
func (p Polynomial) FieldOrder() (uint, error) {
	if p == 0 {
		return 0, fmt.Errorf("%w: zero polynomial has no degree", ErrInvalidPolynomial)
	}

	return uint(p.Degree()), nil
}

// TapMask returns the polynomial with its degree bit cleared, confined to
// field-order bits.  These are the tap positions feeding the round function;
// the degree bit denotes the register output and is never itself a tap.
func (p Polynomial) TapMask() uint64 {
	d := p.Degree()
	if d < 0 {
		return 0
	}

	return uint64(p) &^ (uint64(1) << d)
}

// Algebraic returns the polynomial as a sum of powers in descending order,
// e.g. "x^4 + x^1 + x^0" for 0b10011.  Zero coefficients are omitted.  Note
// that the low-order terms are deliberately rendered as "x^1" and "x^0"
// rather than "x" and "1", so that the form matches the hardware references
// term for term.
func (p Polynomial) Algebraic() string {
	terms := make([]string, 0, bits.OnesCount64(uint64(p)))
	//
	for i := p.Degree(); i >= 0; i-- {
		if uint64(p)>>uint(i)&1 == 1 {
			terms = append(terms, fmt.Sprintf("x^%d", i))
		}
	}
	//
	return strings.Join(terms, " + ")
}

func (p Polynomial) String() string {
	return fmt.Sprintf("0x%x", uint64(p))
}
