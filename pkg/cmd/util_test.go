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
package cmd

import (
	"math/big"
	"testing"

	"github.com/consensys/go-polyfactor/pkg/algebra/bls12_377"
	"github.com/consensys/go-polyfactor/pkg/algebra/gf251"
	"github.com/consensys/go-polyfactor/pkg/algebra/qq"
	"github.com/consensys/go-polyfactor/pkg/factor"
	"github.com/consensys/go-polyfactor/pkg/poly"
	"github.com/consensys/go-polyfactor/pkg/util/math"
	"github.com/stretchr/testify/require"
)

func Test_Embed_01(t *testing.T) {
	n, _ := new(big.Int).SetString("123456789012345678901234567890", 10)
	// 123456789012345678901234567890 mod 251 = 12
	require.True(t, fromBig[gf251.Element](n).Equal(gf251.New(12)))
	require.True(t, fromBig[gf251.Element](new(big.Int).Neg(n)).Equal(gf251.New(251-12)))
	require.True(t, fromBig[qq.Rat](n).Equal(qq.FromBig(new(big.Rat).SetInt(n))))
}

func Test_Embed_02(t *testing.T) {
	require.True(t, fromBig[gf251.Element](big.NewInt(0)).IsZero())
	require.True(t, fromBig[gf251.Element](big.NewInt(251)).IsZero())
	require.True(t, fromBig[bls12_377.Element](big.NewInt(-1)).Add(bls12_377.FromBig(big.NewInt(1))).IsZero())
}

func Test_Embed_03(t *testing.T) {
	// 1/2 in GF(251) is 126
	require.True(t, fromRat[gf251.Element](qq.NewRat(1, 2)).Unwrap().Equal(gf251.New(126)))
	// 1/251 is undefined in GF(251)
	require.False(t, fromRat[gf251.Element](qq.NewRat(1, 251)).HasValue())
}

func Test_Embed_04(t *testing.T) {
	p, errs := poly.Parse("x^2/2 - 3", "x")
	require.Empty(t, errs)
	//
	q, err := embed[gf251.Element](p)
	require.NoError(t, err)
	require.True(t, q.Equal(poly.New(gf251.New(248), gf251.New(0), gf251.New(126))))
	//
	p, errs = poly.Parse("x/251", "x")
	require.Empty(t, errs)
	//
	_, err = embed[gf251.Element](p)
	require.Error(t, err)
}

func Test_Points_01(t *testing.T) {
	xs, ys, err := parsePoints[qq.Rat]([]string{"0:1", "-1/2: 3"})
	require.NoError(t, err)
	require.Len(t, xs, 2)
	require.True(t, xs[1].Equal(qq.NewRat(-1, 2)))
	require.True(t, ys[1].Equal(qq.NewInt(3)))
}

func Test_Points_02(t *testing.T) {
	_, _, err := parsePoints[qq.Rat]([]string{"0:1", "2"})
	require.Error(t, err)
	_, _, err = parsePoints[qq.Rat]([]string{"a:1"})
	require.Error(t, err)
	_, _, err = parsePoints[gf251.Element]([]string{"1/251:1"})
	require.Error(t, err)
}

func Test_Format_01(t *testing.T) {
	p, _ := poly.Parse("x^2 - 1", "x")
	require.Equal(t, "y^2 - 1", formatPolynomial(p, "y"))
	//
	f := factor.SquareFree(p)
	require.Equal(t, "(y^2 - 1)", formatFactorization(f, "y"))
	//
	q, _ := embed[gf251.Element](p)
	require.Equal(t, q.Text("y"), formatPolynomial(q, "y"))
}

func Test_Format_02(t *testing.T) {
	require.Equal(t, "1 2 3 6", formatDivisors(math.Divisors(big.NewInt(-6))))
	require.Equal(t, "2^2 * 3", formatPrimePowers(math.Factorise(big.NewInt(12))))
	require.Equal(t, "1", formatPrimePowers(math.Factorise(big.NewInt(1))))
}

func Test_FactorTable_01(t *testing.T) {
	p, _ := poly.Parse("2(x - 1)^2(x + 1)", "x")
	table := factorTable(factor.SquareFree(p), "x", 80)
	//
	require.Equal(t, []string{
		" multiplicity | factor |",
		"              | 2      |",
		"            1 | x + 1  |",
		"            2 | x - 1  |",
	}, table.Lines())
}

func Test_FactorTable_02(t *testing.T) {
	p, _ := poly.Parse("x^4 + 2x^3 + 3x^2 + 4x + 5", "x")
	table := factorTable(factor.SquareFree(p), "x", 25)
	//
	require.Equal(t, " multiplicity | factor  |", table.Lines()[0])
	require.Equal(t, "            1 | x^4 +.. |", table.Lines()[2])
}
