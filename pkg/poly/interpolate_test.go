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

	"github.com/consensys/go-polyfactor/pkg/algebra/bls12_377"
	"github.com/consensys/go-polyfactor/pkg/algebra/gf251"
	"github.com/consensys/go-polyfactor/pkg/algebra/qq"
	"github.com/stretchr/testify/require"
)

func Test_Interpolate_01(t *testing.T) {
	checkInterpolate(t, "0")
}

func Test_Interpolate_02(t *testing.T) {
	checkInterpolate(t, "5", 3)
}

func Test_Interpolate_03(t *testing.T) {
	checkInterpolate(t, "2x + 1", 0, 1)
}

func Test_Interpolate_04(t *testing.T) {
	checkInterpolate(t, "x^2 - 2x + 1", -1, 0, 1)
}

func Test_Interpolate_05(t *testing.T) {
	checkInterpolate(t, "x^3/6 - x/2 + 1/3", 3, -2, 7, 1)
}

func Test_Interpolate_06(t *testing.T) {
	// Degree is bounded by the number of points, so roots of x^2 - 1 give zero.
	xs := []qq.Rat{qq.NewInt(1), qq.NewInt(-1)}
	ys := []qq.Rat{qq.NewInt(0), qq.NewInt(0)}
	//
	p, err := Interpolate(xs, ys)
	require.NoError(t, err)
	require.True(t, p.IsZero())
}

func Test_Interpolate_07(t *testing.T) {
	xs := []qq.Rat{qq.NewInt(1), qq.NewInt(2), qq.NewInt(1)}
	ys := []qq.Rat{qq.NewInt(1), qq.NewInt(2), qq.NewInt(3)}
	//
	_, err := Interpolate(xs, ys)
	require.ErrorIs(t, err, ErrDuplicatePoint)
}

func Test_Interpolate_08(t *testing.T) {
	_, err := Interpolate([]qq.Rat{qq.NewInt(1)}, nil)
	require.Error(t, err)
}

func Test_Interpolate_09(t *testing.T) {
	var (
		xs = []gf251.Element{gf251.New(0), gf251.New(1), gf251.New(250)}
		ys = []gf251.Element{gf251.New(7), gf251.New(9), gf251.New(9)}
	)
	// 2x^2 + 7 (since 250 = -1)
	p, err := Interpolate(xs, ys)
	require.NoError(t, err)
	require.True(t, p.Equal(New(gf251.New(7), gf251.New(0), gf251.New(2))), "got %s", p)
}

func Test_Interpolate_10(t *testing.T) {
	var (
		one = bls12_377.Element{}.One()
		two = one.Add(one)
		xs  = []bls12_377.Element{one, two, two.Add(one)}
		ys  = []bls12_377.Element{one, one, one}
	)
	//
	p, err := Interpolate(xs, ys)
	require.NoError(t, err)
	require.True(t, p.IsOne())
}

// Interpolate a polynomial through its values at the given points, and check it
// is recovered.
func checkInterpolate(t *testing.T, term string, points ...int64) {
	var (
		p  = parse(term)
		xs = make([]qq.Rat, len(points))
		ys = make([]qq.Rat, len(points))
	)
	//
	for i, x := range points {
		xs[i] = qq.NewInt(x)
		ys[i] = p.Eval(xs[i])
	}
	//
	q, err := Interpolate(xs, ys)
	//
	require.NoError(t, err)
	require.True(t, p.Equal(q), "got %s, expected %s", q, p)
	require.LessOrEqual(t, q.Degree(), len(points)-1)
}
