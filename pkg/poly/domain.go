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
	"fmt"

	"github.com/consensys/go-polyfactor/pkg/algebra"
	"github.com/consensys/go-polyfactor/pkg/util"
)

// IsNilpotent implementation for the Ring interface.  A polynomial over a
// commutative ring is nilpotent if, and only if, all of its coefficients are.
func (p Polynomial[K]) IsNilpotent() bool {
	for _, c := range p.coeffs {
		if !c.IsNilpotent() {
			return false
		}
	}
	//
	return true
}

// IsUnit implementation for the Ring interface.  A polynomial is a unit if, and
// only if, its constant term is a unit and all other coefficients are
// nilpotent.  Over a reduced ring, this means only the non-zero constants
// whose value is a unit.
func (p Polynomial[K]) IsUnit() bool {
	if p.IsZero() || !p.coeffs[0].IsUnit() {
		return false
	}
	//
	for _, c := range p.coeffs[1:] {
		if !c.IsNilpotent() {
			return false
		}
	}
	//
	return true
}

// UnitInverse implementation for the Ring interface.  Writing the unit as
// c*(1+m) where c is its constant term, m is nilpotent and hence the inverse is
// c⁻¹*(1 - m + m² - ...), where the series terminates.
func (p Polynomial[K]) UnitInverse() Polynomial[K] {
	if !p.IsUnit() {
		panic(fmt.Sprintf("%s is not a unit", p.String()))
	}
	//
	var (
		cinv = p.coeffs[0].UnitInverse()
		m    = p.Sub(Constant(p.coeffs[0])).Scale(cinv).Neg()
		sum  = p.One()
		term = p.One()
	)
	//
	for {
		if term = term.Mul(m); term.IsZero() {
			return sum.Scale(cinv)
		}
		//
		sum = sum.Add(term)
	}
}

// Normalize implementation for the Domain interface.  The unit part of the
// leading coefficient is divided out of every coefficient, such that (over a
// field) the canonical associate is monic.  The unit part is returned as a
// constant polynomial.
func (p Polynomial[K]) Normalize() (algebra.Unit[Polynomial[K]], Polynomial[K]) {
	if p.IsZero() {
		return algebra.AssertUnit(p.One()), p
	}
	//
	unit, _ := p.lead().Normalize()
	inv := algebra.Invert(unit)
	//
	return algebra.AssertUnit(Constant(unit.Value())), p.Scale(inv.Value())
}

// GCD implementation for the Domain interface.  This uses the primitive
// polynomial remainder sequence, which avoids division in the coefficient
// domain beyond exact division by contents.  The result is normalized.  This
// is only meaningful when the coefficient domain is a GCD domain.
func (p Polynomial[K]) GCD(q Polynomial[K]) Polynomial[K] {
	switch {
	case p.IsZero():
		_, n := q.Normalize()
		return n
	case q.IsZero():
		_, n := p.Normalize()
		return n
	}
	//
	var (
		c    = Content(p).GCD(Content(q))
		a, b = PrimitivePart(p), PrimitivePart(q)
	)
	//
	if a.Degree() < b.Degree() {
		a, b = b, a
	}
	//
	for !b.IsZero() {
		a, b = b, PrimitivePart(PseudoRem(a, b))
	}
	//
	_, n := a.Scale(c).Normalize()
	//
	return n
}

// DivExact implementation for the Domain interface.  This performs long
// division, requiring that every leading term of the running remainder is
// exactly divisible by the leading coefficient of the divisor.
func (p Polynomial[K]) DivExact(q Polynomial[K]) util.Option[Polynomial[K]] {
	if q.IsZero() {
		return util.None[Polynomial[K]]()
	} else if p.Degree() < q.Degree() {
		if p.IsZero() {
			return util.Some(p)
		}
		//
		return util.None[Polynomial[K]]()
	}
	//
	var (
		lc  = q.lead()
		dq  = q.Degree()
		rem = p
		quo = make([]K, p.Degree()-dq+1)
	)
	//
	for !rem.IsZero() && rem.Degree() >= dq {
		n := rem.Degree() - dq
		t := rem.lead().DivExact(lc)
		//
		if t.IsEmpty() {
			return util.None[Polynomial[K]]()
		}
		//
		quo[n] = t.Unwrap()
		rem = rem.Sub(q.shift(quo[n], n))
	}
	//
	if !rem.IsZero() {
		return util.None[Polynomial[K]]()
	}
	//
	return util.Some(wrap(quo))
}

// Content returns the (canonical) gcd of all coefficients of a polynomial, or
// zero for the zero polynomial.
func Content[K algebra.Coefficient[K]](p Polynomial[K]) K {
	content := algebra.Zero[K]()
	//
	for _, c := range p.coeffs {
		content = content.GCD(c)
	}
	//
	return content
}

// PrimitivePart divides a polynomial by its content.
func PrimitivePart[K algebra.Coefficient[K]](p Polynomial[K]) Polynomial[K] {
	if p.IsZero() {
		return p
	}
	//
	var (
		content = Content(p)
		coeffs  = make([]K, len(p.coeffs))
	)
	//
	for i, c := range p.coeffs {
		coeffs[i] = c.DivExact(content).Expect("content %s does not divide %s", content, c)
	}
	//
	return wrap(coeffs)
}

// PseudoRem computes a pseudo-remainder of a divided by b.  That is, some r with
// deg(r) < deg(b) such that c*a = q*b + r, for some q and some c which is a
// power of the leading coefficient of b.  This requires no division in the
// coefficient domain, and panics if b is zero.
func PseudoRem[K algebra.Coefficient[K]](a, b Polynomial[K]) Polynomial[K] {
	if b.IsZero() {
		panic("pseudo-division by zero polynomial")
	}
	//
	var (
		lc = b.lead()
		db = b.Degree()
	)
	//
	for !a.IsZero() && a.Degree() >= db {
		a = a.Scale(lc).Sub(b.shift(a.lead(), a.Degree()-db))
	}
	//
	return a
}
