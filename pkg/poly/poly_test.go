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
	"testing"

	"github.com/consensys/go-polyfactor/pkg/algebra/gf251"
	"github.com/consensys/go-polyfactor/pkg/algebra/qq"
	"github.com/consensys/go-polyfactor/pkg/algebra/word256"
	"github.com/consensys/go-polyfactor/pkg/algebra/zz"
	"github.com/consensys/go-polyfactor/pkg/util/source"
	"github.com/stretchr/testify/require"
)

type Rat = Polynomial[qq.Rat]

func Test_Poly_01(t *testing.T) {
	checkEquiv(t, "(x+1)+(x-1)", "2x")
}

func Test_Poly_02(t *testing.T) {
	checkEquiv(t, "(x+1)*(x-1)", "x^2 - 1")
}

func Test_Poly_03(t *testing.T) {
	checkEquiv(t, "(x+1)^3", "x^3 + 3x^2 + 3x + 1")
}

func Test_Poly_04(t *testing.T) {
	checkEquiv(t, "(x+1)-(x+1)", "0", "")
}

func Test_Poly_05(t *testing.T) {
	checkEquiv(t, "x^0", "1")
}

func Test_Poly_06(t *testing.T) {
	// Trailing zeros are trimmed on construction
	p := New(qq.NewInt(1), qq.NewInt(2), qq.NewInt(0), qq.NewInt(0))
	require.Equal(t, 1, p.Degree())
	require.Equal(t, uint(2), p.Len())
	require.True(t, p.Equal(parse("2x+1")))
	require.True(t, New[qq.Rat]().Equal(New(qq.NewInt(0))))
	require.Equal(t, -1, New[qq.Rat]().Degree())
}

func Test_Poly_07(t *testing.T) {
	require.True(t, parse("0").LeadingCoeff().IsEmpty())
	require.True(t, qq.NewInt(3).Equal(parse("3x^2-x").LeadingCoeff().Unwrap()))
	require.True(t, parse("3x^2-x").Coeff(7).IsZero())
}

func Test_Poly_08(t *testing.T) {
	// Constructors copy their input
	coeffs := []qq.Rat{qq.NewInt(1), qq.NewInt(1)}
	p := New(coeffs...)
	coeffs[0] = qq.NewInt(5)
	require.True(t, p.Equal(parse("x+1")))
	// As do accessors
	p.Coeffs()[1] = qq.NewInt(7)
	require.True(t, p.Equal(parse("x+1")))
}

func Test_Eval_01(t *testing.T) {
	checkEval(t, "3x^2 - x + 1", 0, 1)
	checkEval(t, "3x^2 - x + 1", 1, 3)
	checkEval(t, "3x^2 - x + 1", -2, 15)
	checkEval(t, "0", 5, 0)
}

func Test_Derivative_01(t *testing.T) {
	checkDerivative(t, "5", "0")
	checkDerivative(t, "x", "1")
	checkDerivative(t, "x^3 - 2x^2 + x - 7", "3x^2 - 4x + 1")
	checkDerivative(t, "0", "0")
}

func Test_Derivative_02(t *testing.T) {
	// 251*x^250 vanishes in GF(251)
	var (
		one = gf251.New(1)
		p   = Monomial(one, 251).Add(X[gf251.Element]())
	)
	//
	require.True(t, p.Derivative().Equal(One[gf251.Element]()))
}

func Test_Format_01(t *testing.T) {
	checkFormat(t, "3x^2 - x + 1", "3x^2 - x + 1")
	checkFormat(t, "-x^2 + 2", "-x^2 + 2")
	checkFormat(t, "0", "0")
	checkFormat(t, "-1", "-1")
	checkFormat(t, "x^3 - 1", "x^3 - 1")
	checkFormat(t, "x/2 - 1/3", "1/2x - 1/3")
	checkFormat(t, "-2x", "-2x")
}

func Test_Format_02(t *testing.T) {
	p := Map(parse("x^2 - 2x + 1"), func(c qq.Rat) zz.Int { return c.Num() })
	require.Equal(t, "y^2 - 2y + 1", Format(p, "y"))
}

func Test_String_01(t *testing.T) {
	p := New(gf251.New(1), gf251.New(250), gf251.New(3))
	require.Equal(t, "3x^2 + 250x + 1", p.String())
	require.Equal(t, "0", Polynomial[gf251.Element]{}.String())
}

func Test_String_02(t *testing.T) {
	// Compound coefficients are bracketed
	var (
		c = New(zz.NewInt(1), zz.NewInt(1))
		p = New(c, c.One())
	)
	//
	require.Equal(t, "x + (x + 1)", p.String())
}

func Test_Unit_01(t *testing.T) {
	require.True(t, parse("3").IsUnit())
	require.False(t, parse("0").IsUnit())
	require.False(t, parse("x+1").IsUnit())
	require.False(t, parse("x+1").IsNilpotent())
	require.True(t, parse("0").IsNilpotent())
}

func Test_Unit_02(t *testing.T) {
	// 1 + 2x is a unit in Z/2^256[x], since 2 is nilpotent.
	var (
		p   = New(word256.New(1), word256.New(2))
		inv = p.UnitInverse()
	)
	//
	require.True(t, p.IsUnit())
	require.True(t, p.Mul(inv).IsOne())
	require.Equal(t, 255, inv.Degree())
}

func Test_Unit_03(t *testing.T) {
	// 3 + 4x + 8x^2 is a unit in Z/2^256[x]
	var (
		p   = New(word256.New(3), word256.New(4), word256.New(8))
		inv = p.UnitInverse()
	)
	//
	require.True(t, p.Mul(inv).IsOne())
	require.Panics(t, func() { New(word256.New(2), word256.New(1)).UnitInverse() })
}

func Test_Normalize_01(t *testing.T) {
	unit, p := parse("3x^2 - 6").Normalize()
	//
	require.True(t, p.Equal(parse("x^2 - 2")))
	require.True(t, unit.Value().Equal(parse("3")))
}

func Test_Normalize_02(t *testing.T) {
	unit, p := zpoly(4, 0, -2).Normalize()
	//
	require.True(t, p.Equal(zpoly(-4, 0, 2)))
	require.True(t, unit.Value().Equal(zpoly(-1)))
}

func Test_Normalize_03(t *testing.T) {
	unit, p := Polynomial[zz.Int]{}.Normalize()
	//
	require.True(t, p.IsZero())
	require.True(t, unit.Value().IsOne())
}

// ==================================================================
// Framework
// ==================================================================

func checkEquiv(t *testing.T, terms ...string) {
	ps := parseAll(terms...)
	//
	for _, p := range ps[1:] {
		require.True(t, ps[0].Equal(p), "%s vs %s", ps[0], p)
	}
}

func checkEval(t *testing.T, term string, x int64, expected int64) {
	actual := parse(term).Eval(qq.NewInt(x))
	require.Equal(t, qq.NewInt(expected).String(), actual.String())
}

func checkDerivative(t *testing.T, term string, expected string) {
	ps := parseAll(term, expected)
	require.True(t, ps[0].Derivative().Equal(ps[1]), "%s vs %s", ps[0].Derivative(), ps[1])
}

func checkFormat(t *testing.T, term string, expected string) {
	require.Equal(t, expected, Format(parse(term), "x"))
}

func parse(term string) Rat {
	return parseAll(term)[0]
}

func parseAll(terms ...string) []Rat {
	ps := make([]Rat, len(terms))
	//
	for i, term := range terms {
		var errs []source.SyntaxError
		//
		if term == "" {
			continue
		} else if ps[i], errs = Parse(term, "x"); len(errs) > 0 {
			panic(errs[0].Message())
		}
	}
	//
	return ps
}

func zpoly(coeffs ...int64) Polynomial[zz.Int] {
	cs := make([]zz.Int, len(coeffs))
	//
	for i, c := range coeffs {
		cs[i] = zz.NewInt(c)
	}
	//
	return New(cs...)
}
