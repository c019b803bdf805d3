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
	"slices"

	"github.com/consensys/go-polyfactor/pkg/algebra"
	"github.com/consensys/go-polyfactor/pkg/util"
)

// Polynomial is a univariate polynomial with coefficients drawn from some
// coefficient domain K.  Coefficients are stored densely in order of increasing
// degree (i.e. index 0 holds the constant term), and trailing zero coefficients
// are never stored.  Polynomials are immutable values: no operation modifies
// its receiver or arguments, and constructors copy their inputs.  Observe that
// an uninitialised Polynomial variable corresponds with zero.
type Polynomial[K algebra.Coefficient[K]] struct {
	coeffs []K
}

// New constructs a polynomial from its coefficients, given in order of
// increasing degree.  Trailing zero coefficients are ignored.
func New[K algebra.Coefficient[K]](coeffs ...K) Polynomial[K] {
	return wrap(slices.Clone(coeffs))
}

// Constant constructs a polynomial of degree zero (or the zero polynomial when
// c is zero).
func Constant[K algebra.Coefficient[K]](c K) Polynomial[K] {
	return wrap([]K{c})
}

// Monomial constructs the polynomial c*x^n.
func Monomial[K algebra.Coefficient[K]](c K, n uint) Polynomial[K] {
	coeffs := make([]K, n+1)
	coeffs[n] = c
	//
	return wrap(coeffs)
}

// X constructs the polynomial x.
func X[K algebra.Coefficient[K]]() Polynomial[K] {
	return Monomial(algebra.One[K](), 1)
}

// Map applies a function to every coefficient of a polynomial, producing a
// polynomial over a (potentially) different domain.  This is useful for
// embedding one coefficient domain into another.
func Map[K algebra.Coefficient[K], L algebra.Coefficient[L]](p Polynomial[K], fn func(K) L) Polynomial[L] {
	coeffs := make([]L, len(p.coeffs))
	//
	for i, c := range p.coeffs {
		coeffs[i] = fn(c)
	}
	//
	return wrap(coeffs)
}

// wrap a uniquely owned coefficient array into a polynomial, trimming any
// trailing zeros.  The array must not be aliased by the caller afterwards.
func wrap[K algebra.Coefficient[K]](coeffs []K) Polynomial[K] {
	n := len(coeffs)
	//
	for n > 0 && coeffs[n-1].IsZero() {
		n--
	}
	//
	if n == 0 {
		return Polynomial[K]{}
	}
	//
	return Polynomial[K]{coeffs[:n]}
}

// Len returns the number of stored coefficients, which is one more than the
// degree (or zero for the zero polynomial).
func (p Polynomial[K]) Len() uint {
	return uint(len(p.coeffs))
}

// Degree returns the degree of this polynomial, or -1 for the zero polynomial
// (whose degree is undefined).
func (p Polynomial[K]) Degree() int {
	return len(p.coeffs) - 1
}

// Coeff returns the coefficient of x^i, which is zero beyond the degree.
func (p Polynomial[K]) Coeff(i uint) K {
	if i < uint(len(p.coeffs)) {
		return p.coeffs[i]
	}
	//
	return algebra.Zero[K]()
}

// Coeffs returns a copy of the coefficients of this polynomial, in order of
// increasing degree.
func (p Polynomial[K]) Coeffs() []K {
	return slices.Clone(p.coeffs)
}

// LeadingCoeff returns the coefficient at the degree of this polynomial, or
// None for the zero polynomial.
func (p Polynomial[K]) LeadingCoeff() util.Option[K] {
	if p.IsZero() {
		return util.None[K]()
	}
	//
	return util.Some(p.lead())
}

// lead returns the leading coefficient, assuming this is non-zero.
func (p Polynomial[K]) lead() K {
	return p.coeffs[len(p.coeffs)-1]
}

// Zero implementation for the Ring interface.
func (p Polynomial[K]) Zero() Polynomial[K] {
	return Polynomial[K]{}
}

// One implementation for the Ring interface.
func (p Polynomial[K]) One() Polynomial[K] {
	return Constant(algebra.One[K]())
}

// SetUint64 implementation for the FromUint64 interface.  This lifts n into the
// coefficient domain, and then into a constant polynomial.
func (p Polynomial[K]) SetUint64(n uint64) Polynomial[K] {
	return Constant(algebra.Lift[K](n))
}

// IsZero implementation for the Ring interface.
func (p Polynomial[K]) IsZero() bool {
	return len(p.coeffs) == 0
}

// IsOne implementation for the Ring interface.
func (p Polynomial[K]) IsOne() bool {
	return len(p.coeffs) == 1 && p.coeffs[0].IsOne()
}

// Equal implementation for the Ring interface.
func (p Polynomial[K]) Equal(q Polynomial[K]) bool {
	return slices.EqualFunc(p.coeffs, q.coeffs, func(a, b K) bool {
		return a.Equal(b)
	})
}

// Add implementation for the Ring interface.
func (p Polynomial[K]) Add(q Polynomial[K]) Polynomial[K] {
	coeffs := make([]K, max(len(p.coeffs), len(q.coeffs)))
	//
	for i := range coeffs {
		coeffs[i] = p.Coeff(uint(i)).Add(q.Coeff(uint(i)))
	}
	//
	return wrap(coeffs)
}

// Neg implementation for the Ring interface.
func (p Polynomial[K]) Neg() Polynomial[K] {
	coeffs := make([]K, len(p.coeffs))
	//
	for i, c := range p.coeffs {
		coeffs[i] = c.Neg()
	}
	//
	return wrap(coeffs)
}

// Sub implementation for the Ring interface.
func (p Polynomial[K]) Sub(q Polynomial[K]) Polynomial[K] {
	coeffs := make([]K, max(len(p.coeffs), len(q.coeffs)))
	//
	for i := range coeffs {
		coeffs[i] = p.Coeff(uint(i)).Sub(q.Coeff(uint(i)))
	}
	//
	return wrap(coeffs)
}

// Mul implementation for the Ring interface.  This uses schoolbook
// multiplication.
func (p Polynomial[K]) Mul(q Polynomial[K]) Polynomial[K] {
	if p.IsZero() || q.IsZero() {
		return Polynomial[K]{}
	}
	//
	coeffs := make([]K, len(p.coeffs)+len(q.coeffs)-1)
	//
	for i, a := range p.coeffs {
		for j, b := range q.coeffs {
			coeffs[i+j] = coeffs[i+j].Add(a.Mul(b))
		}
	}
	//
	return wrap(coeffs)
}

// Scale multiplies every coefficient of this polynomial by a given scalar.
func (p Polynomial[K]) Scale(c K) Polynomial[K] {
	coeffs := make([]K, len(p.coeffs))
	//
	for i, a := range p.coeffs {
		coeffs[i] = a.Mul(c)
	}
	//
	return wrap(coeffs)
}

// Pow raises this polynomial to the power n.
func (p Polynomial[K]) Pow(n uint) Polynomial[K] {
	return algebra.Pow(p, uint64(n))
}

// Eval evaluates this polynomial at a given point using Horner's rule.
func (p Polynomial[K]) Eval(x K) K {
	acc := algebra.Zero[K]()
	//
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		acc = acc.Mul(x).Add(p.coeffs[i])
	}
	//
	return acc
}

// Derivative computes the formal derivative of this polynomial.  That is, for
// coefficients c0, c1, ..., cn this produces c1, 2*c2, ..., n*cn where each
// multiplier is lifted into the coefficient domain.
func (p Polynomial[K]) Derivative() Polynomial[K] {
	if len(p.coeffs) <= 1 {
		return Polynomial[K]{}
	}
	//
	coeffs := make([]K, len(p.coeffs)-1)
	//
	for i := range coeffs {
		k := algebra.Lift[K](uint64(i + 1))
		coeffs[i] = p.coeffs[i+1].Mul(k)
	}
	//
	return wrap(coeffs)
}

// shift multiplies this polynomial by c*x^n.
func (p Polynomial[K]) shift(c K, n int) Polynomial[K] {
	if p.IsZero() {
		return p
	}
	//
	coeffs := make([]K, len(p.coeffs)+n)
	//
	for i, a := range p.coeffs {
		coeffs[i+n] = a.Mul(c)
	}
	//
	return wrap(coeffs)
}
