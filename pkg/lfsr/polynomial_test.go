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
	"testing"
)

func Test_Degree_0(t *testing.T) {
	checkDegree(t, 0b0, -1)
}

func Test_Degree_1(t *testing.T) {
	checkDegree(t, 0b1, 0)
}

func Test_Degree_2(t *testing.T) {
	checkDegree(t, 0b10011, 4)
}

func Test_Degree_3(t *testing.T) {
	checkDegree(t, 1<<63|0b11, 63)
}

func Test_FieldOrder_0(t *testing.T) {
	_, err := Polynomial(0).FieldOrder()
	if !errors.Is(err, ErrInvalidPolynomial) {
		t.Errorf("expected ErrInvalidPolynomial, got %v", err)
	}
}

func Test_FieldOrder_1(t *testing.T) {
	order, err := Polynomial(0b10011).FieldOrder()
	if err != nil {
		t.Fatal(err)
	}

	if order != 4 {
		t.Errorf("expected field order 4, got %d", order)
	}
}

func Test_TapMask_0(t *testing.T) {
	checkTapMask(t, 0b10011, 0b0011)
}

func Test_TapMask_1(t *testing.T) {
	checkTapMask(t, 0b10000, 0b0000)
}

func Test_TapMask_2(t *testing.T) {
	checkTapMask(t, 0b1, 0b0)
}

func Test_TapMask_3(t *testing.T) {
	checkTapMask(t, 0b110101, 0b10101)
}

func Test_Algebraic_0(t *testing.T) {
	checkAlgebraic(t, 0b10011, "x^4 + x^1 + x^0")
}

func Test_Algebraic_1(t *testing.T) {
	checkAlgebraic(t, 0b10, "x^1")
}

func Test_Algebraic_2(t *testing.T) {
	checkAlgebraic(t, 0b1, "x^0")
}

func Test_Algebraic_3(t *testing.T) {
	checkAlgebraic(t, 0b1100101, "x^6 + x^5 + x^2 + x^0")
}

func Test_Algebraic_4(t *testing.T) {
	checkAlgebraic(t, 0b0, "")
}

func checkDegree(t *testing.T, poly Polynomial, expected int) {
	if d := poly.Degree(); d != expected {
		t.Errorf("expected degree %d of %v, got %d", expected, poly, d)
	}
}

func checkTapMask(t *testing.T, poly Polynomial, expected uint64) {
	if m := poly.TapMask(); m != expected {
		t.Errorf("expected tap mask %b of %v, got %b", expected, poly, m)
	}
}

func checkAlgebraic(t *testing.T, poly Polynomial, expected string) {
	if s := poly.Algebraic(); s != expected {
		t.Errorf("expected %q for %v, got %q", expected, poly, s)
	}
}
