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
	"cmp"
	"math/big"
	"slices"
	"strings"

	"github.com/consensys/go-polyfactor/pkg/algebra/qq"
	"github.com/consensys/go-polyfactor/pkg/algebra/zz"
	"github.com/consensys/go-polyfactor/pkg/poly"
	"github.com/consensys/go-polyfactor/pkg/util/math"
)

// Irreducible computes the complete factorization of a polynomial over the
// rationals into monic irreducible factors with multiplicities.  This first
// computes the square-free factorization, and then splits each square-free
// factor using Kronecker's method.  Factors are ordered by multiplicity, then by
// degree.  Unlike a square-free factorization, distinct factors may share the
// same multiplicity.
//
// Kronecker's method is exponential in the degree, and is only practical for
// polynomials of modest degree with small coefficients.
func Irreducible(p poly.Polynomial[qq.Rat]) Factorization[qq.Rat] {
	var (
		sqf     = SquareFree(p)
		factors []Factor[qq.Rat]
	)
	//
	for _, f := range sqf.factors {
		for _, g := range kronecker(toPrimitive(f.Poly)) {
			factors = append(factors, Factor[qq.Rat]{fromPrimitive(g), f.Multiplicity})
		}
	}
	//
	slices.SortStableFunc(factors, func(a, b Factor[qq.Rat]) int {
		if c := a.Multiplicity.Cmp(b.Multiplicity); c != 0 {
			return c
		} else if c = cmp.Compare(a.Poly.Degree(), b.Poly.Degree()); c != 0 {
			return c
		}
		//
		return strings.Compare(a.Poly.String(), b.Poly.String())
	})
	//
	return Factorization[qq.Rat]{sqf.leadingCoeff, factors}
}

// kronecker splits a primitive square-free integer polynomial of positive
// degree into its irreducible factors.  The approach is to search for a factor
// of smallest degree d, for d up to half the degree.  Any such factor g must
// satisfy g(a) | f(a) for every integer a, and is uniquely determined by its
// values at d+1 distinct points.  Hence, candidates are built by interpolating
// through every combination of divisors of f at those points.
func kronecker(f poly.Polynomial[zz.Int]) []poly.Polynomial[zz.Int] {
	var factors []poly.Polynomial[zz.Int]
	//
	for f.Degree() > 1 {
		g, ok := findFactor(f)
		//
		if !ok {
			break
		}
		//
		factors = append(factors, g)
		f = f.DivExact(g).Expect("factor %s does not divide %s", g, f)
	}
	//
	return append(factors, f)
}

// findFactor searches for a non-trivial factor of smallest degree.  The factor
// returned is primitive with positive leading coefficient, and is therefore
// irreducible.
func findFactor(f poly.Polynomial[zz.Int]) (poly.Polynomial[zz.Int], bool) {
	var (
		n      = f.Degree() / 2
		xs, ys []zz.Int
	)
	// Sample f at 0, 1, -1, 2, -2, ... and take any root as a linear factor.
	for i := int64(0); len(xs) <= n; i++ {
		x := zz.NewInt((i + 1) / 2)
		//
		if i%2 == 0 {
			x = zz.NewInt(-i / 2)
		}
		//
		y := f.Eval(x)
		//
		if y.IsZero() {
			return poly.New(x.Neg(), x.One()), true
		}
		//
		xs, ys = append(xs, x), append(ys, y)
	}
	//
	for d := 1; d <= n; d++ {
		if g, ok := findFactorOfDegree(f, d, xs[:d+1], ys[:d+1]); ok {
			return g, true
		}
	}
	//
	return poly.Polynomial[zz.Int]{}, false
}

// findFactorOfDegree searches for a factor of f with exactly degree d, by
// interpolating every candidate value combination at the given points.
func findFactorOfDegree(f poly.Polynomial[zz.Int], d int, xs, ys []zz.Int) (poly.Polynomial[zz.Int], bool) {
	var (
		choices = make([][]qq.Rat, len(ys))
		qxs     = make([]qq.Rat, len(xs))
		qys     = make([]qq.Rat, len(ys))
		index   = make([]int, len(ys))
	)
	//
	for i, y := range ys {
		qxs[i] = qq.FromInt(xs[i])
		//
		for _, div := range math.Divisors(y.Big()) {
			c := qq.FromInt(zz.FromBig(div))
			choices[i] = append(choices[i], c)
			// Since g and -g are equivalent, fix the sign at the first point.
			if i > 0 {
				choices[i] = append(choices[i], c.Neg())
			}
		}
	}
	//
	for {
		for i, j := range index {
			qys[i] = choices[i][j]
		}
		//
		if g, ok := candidate(f, d, qxs, qys); ok {
			return g, true
		} else if !next(index, choices) {
			return poly.Polynomial[zz.Int]{}, false
		}
	}
}

// candidate interpolates a polynomial through the given points, and checks
// whether it is an integer polynomial of degree d which divides f.
func candidate(f poly.Polynomial[zz.Int], d int, xs, ys []qq.Rat) (poly.Polynomial[zz.Int], bool) {
	// Points are distinct, hence interpolation cannot fail.
	g, _ := poly.Interpolate(xs, ys)
	//
	if g.Degree() != d {
		return poly.Polynomial[zz.Int]{}, false
	}
	//
	for _, c := range g.Coeffs() {
		if !c.IsInt() {
			return poly.Polynomial[zz.Int]{}, false
		}
	}
	//
	_, h := poly.Map(g, qq.Rat.Num).Normalize()
	//
	if f.DivExact(h).IsEmpty() {
		return poly.Polynomial[zz.Int]{}, false
	}
	//
	return h, true
}

// next advances a mixed-radix counter, returning false once all combinations
// have been exhausted.
func next(index []int, choices [][]qq.Rat) bool {
	for i := range index {
		if index[i]++; index[i] < len(choices[i]) {
			return true
		}
		//
		index[i] = 0
	}
	//
	return false
}

// toPrimitive converts a polynomial with rational coefficients into the
// primitive integer polynomial with positive leading coefficient which is
// associated with it.
func toPrimitive(p poly.Polynomial[qq.Rat]) poly.Polynomial[zz.Int] {
	lcm := big.NewInt(1)
	// Clear denominators
	for _, c := range p.Coeffs() {
		d := c.Denom().Big()
		g := new(big.Int).GCD(nil, nil, lcm, d)
		lcm.Mul(lcm, d.Quo(d, g))
	}
	//
	m := qq.FromInt(zz.FromBig(lcm))
	z := poly.Map(p.Scale(m), qq.Rat.Num)
	_, z = poly.PrimitivePart(z).Normalize()
	//
	return z
}

// fromPrimitive converts a primitive integer polynomial into the monic
// polynomial with rational coefficients which is associated with it.
func fromPrimitive(p poly.Polynomial[zz.Int]) poly.Polynomial[qq.Rat] {
	return poly.Monic(poly.Map(p, qq.FromInt))
}
