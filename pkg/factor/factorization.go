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
package factor

import (
	"slices"
	"strings"

	"github.com/consensys/go-polyfactor/pkg/algebra"
	"github.com/consensys/go-polyfactor/pkg/poly"
)

// Factor pairs a polynomial with the number of times it divides some other
// polynomial.
type Factor[K algebra.Coefficient[K]] struct {
	Poly         poly.Polynomial[K]
	Multiplicity Multiplicity
}

// Factorization decomposes a polynomial p into a leading coefficient and a list
// of non-constant monic factors with multiplicities, such that p equals the
// leading coefficient times the product of each factor raised to its
// multiplicity.  The factorization of the zero polynomial has a zero leading
// coefficient and no factors.
type Factorization[K algebra.Coefficient[K]] struct {
	leadingCoeff K
	factors      []Factor[K]
}

// LeadingCoeff returns the leading coefficient of the factored polynomial.
func (f Factorization[K]) LeadingCoeff() K {
	return f.leadingCoeff
}

// Factors returns (a copy of) the factors of this factorization, in the order
// they were determined.
func (f Factorization[K]) Factors() []Factor[K] {
	return slices.Clone(f.factors)
}

// Len returns the number of factors.
func (f Factorization[K]) Len() uint {
	return uint(len(f.factors))
}

// Expand multiplies out this factorization, thus reconstructing the original
// polynomial.
func (f Factorization[K]) Expand() poly.Polynomial[K] {
	result := poly.Constant(f.leadingCoeff)
	//
	for _, factor := range f.factors {
		result = result.Mul(factor.Poly.Pow(factor.Multiplicity.Get()))
	}
	//
	return result
}

// Equal determines whether two factorizations have equal leading coefficients,
// and the same factors in the same order.
func (f Factorization[K]) Equal(o Factorization[K]) bool {
	return f.leadingCoeff.Equal(o.leadingCoeff) && slices.EqualFunc(f.factors, o.factors,
		func(a, b Factor[K]) bool {
			return a.Multiplicity == b.Multiplicity && a.Poly.Equal(b.Poly)
		})
}

func (f Factorization[K]) String() string {
	return f.Text("x")
}

// Text returns a generic representation of this factorization in a given
// variable, such as "3(x + 1)(x^2 + 2)^2", which works for any coefficient
// domain.
func (f Factorization[K]) Text(variable string) string {
	var builder strings.Builder
	//
	if len(f.factors) == 0 || !f.leadingCoeff.IsOne() {
		builder.WriteString(f.leadingCoeff.String())
	}
	//
	for _, factor := range f.factors {
		writeFactor(&builder, factor.Poly.Text(variable), factor.Multiplicity)
	}
	//
	return builder.String()
}

// Format returns the conventional representation of a factorization over signed
// coefficients in a given variable, such as "-2(x - 1)^2(x^2 + 1)".  The
// leading coefficient is omitted when it is one, and only its sign is shown
// when it is minus one.
func Format[K poly.Signed[K]](f Factorization[K], variable string) string {
	var (
		builder strings.Builder
		lc      = f.leadingCoeff
	)
	//
	switch {
	case len(f.factors) == 0:
		builder.WriteString(lc.String())
	case lc.Sign() < 0:
		builder.WriteString("-")
		//
		if !lc.Abs().IsOne() {
			builder.WriteString(lc.Abs().String())
		}
	case !lc.IsOne():
		builder.WriteString(lc.String())
	}
	//
	for _, factor := range f.factors {
		writeFactor(&builder, poly.Format(factor.Poly, variable), factor.Multiplicity)
	}
	//
	return builder.String()
}

func writeFactor(builder *strings.Builder, factor string, m Multiplicity) {
	builder.WriteString("(")
	builder.WriteString(factor)
	builder.WriteString(")")
	//
	if m.Get() > 1 {
		builder.WriteString("^")
		builder.WriteString(m.String())
	}
}
