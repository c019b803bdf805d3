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
package poly

import (
	"github.com/consensys/go-polyfactor/pkg/algebra"
)

// DivRem performs polynomial long division of a by b over a field, producing a
// quotient q and remainder r such that a = q*b + r with deg(r) < deg(b).  This
// panics if b is the zero polynomial.
func DivRem[F algebra.FieldElement[F]](a, b Polynomial[F]) (Polynomial[F], Polynomial[F]) {
	if b.IsZero() {
		panic("division by zero polynomial")
	} else if a.Degree() < b.Degree() {
		return Polynomial[F]{}, a
	}
	//
	var (
		db   = b.Degree()
		inv  = b.lead().Inverse().Expect("leading coefficient %s not invertible", b.lead())
		rem  = a.Coeffs()
		quot = make([]F, a.Degree()-db+1)
	)
	// Eliminate leading terms of the remainder, from the highest degree down.
	for i := len(rem) - 1; i >= db; i-- {
		if rem[i].IsZero() {
			continue
		}
		//
		c := rem[i].Mul(inv)
		quot[i-db] = c
		//
		for j, d := range b.coeffs {
			k := i - db + j
			rem[k] = rem[k].Sub(c.Mul(d))
		}
	}
	//
	return wrap(quot), wrap(rem[:db])
}

// Quo returns the quotient of a divided by b (see DivRem).
func Quo[F algebra.FieldElement[F]](a, b Polynomial[F]) Polynomial[F] {
	q, _ := DivRem(a, b)
	return q
}

// Rem returns the remainder of a divided by b (see DivRem).
func Rem[F algebra.FieldElement[F]](a, b Polynomial[F]) Polynomial[F] {
	_, r := DivRem(a, b)
	return r
}

// GCD computes a greatest common divisor of two polynomials over a field using
// the Euclidean algorithm.  The result is only unique up to a non-zero constant
// factor, and is not forced to be monic (see MonicGCD).  GCD(0,0) is zero.
func GCD[F algebra.FieldElement[F]](a, b Polynomial[F]) Polynomial[F] {
	for !b.IsZero() {
		a, b = b, Rem(a, b)
	}
	//
	return a
}

// Monic scales a polynomial so that its leading coefficient is one.  The zero
// polynomial is returned unchanged.
func Monic[F algebra.FieldElement[F]](p Polynomial[F]) Polynomial[F] {
	if p.IsZero() || p.lead().IsOne() {
		return p
	}
	//
	inv := p.lead().Inverse().Expect("leading coefficient %s not invertible", p.lead())
	//
	return p.Scale(inv)
}

// MonicGCD computes the unique monic greatest common divisor of two polynomials
// over a field, or zero when both are zero.
func MonicGCD[F algebra.FieldElement[F]](a, b Polynomial[F]) Polynomial[F] {
	return Monic(GCD(a, b))
}
