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
package algebra_test

import (
	"testing"

	"github.com/consensys/go-polyfactor/pkg/algebra"
	"github.com/consensys/go-polyfactor/pkg/algebra/bls12_377"
	"github.com/consensys/go-polyfactor/pkg/algebra/gf251"
	"github.com/consensys/go-polyfactor/pkg/algebra/qq"
	"github.com/consensys/go-polyfactor/pkg/algebra/word256"
	"github.com/consensys/go-polyfactor/pkg/algebra/zz"
	"github.com/consensys/go-polyfactor/pkg/poly"
	"github.com/stretchr/testify/require"
)

func init() {
	// make sure the interfaces are adhered to.
	_ = algebra.FieldElement[qq.Rat](qq.Rat{})
	_ = algebra.FieldElement[gf251.Element](gf251.Element{})
	_ = algebra.FieldElement[bls12_377.Element](bls12_377.Element{})
	_ = algebra.Coefficient[zz.Int](zz.Int{})
	_ = algebra.Coefficient[word256.Word](word256.Word{})
	_ = algebra.Coefficient[poly.Polynomial[zz.Int]](poly.Polynomial[zz.Int]{})
	_ = algebra.Coefficient[poly.Polynomial[poly.Polynomial[qq.Rat]]](poly.Polynomial[poly.Polynomial[qq.Rat]]{})
	_ = algebra.Characteristic(gf251.Element{})
	_ = algebra.Characteristic(bls12_377.Element{})
}

func Test_Pow_01(t *testing.T) {
	for n := range uint64(20) {
		expected := zz.NewInt(1)
		//
		for range n {
			expected = expected.Mul(zz.NewInt(-3))
		}
		//
		require.True(t, algebra.Pow(zz.NewInt(-3), n).Equal(expected))
	}
}

func Test_Pow_02(t *testing.T) {
	require.True(t, algebra.Pow(zz.Int{}, 0).IsOne())
	require.True(t, algebra.Pow(zz.Int{}, 5).IsZero())
}

func Test_Div_01(t *testing.T) {
	require.True(t, algebra.Div(qq.NewInt(1), qq.NewInt(0)).IsEmpty())
	require.True(t, algebra.Div(qq.NewInt(1), qq.NewInt(3)).Unwrap().Equal(qq.NewRat(1, 3)))
}

func Test_Unit_01(t *testing.T) {
	require.Panics(t, func() { algebra.AssertUnit(zz.NewInt(2)) })
	require.Panics(t, func() { algebra.AssertUnit(qq.Rat{}) })
	require.Panics(t, func() { algebra.AssertUnit(word256.New(4)) })
}

func Test_Unit_02(t *testing.T) {
	var (
		u   = algebra.AssertUnit(qq.NewRat(2, 3))
		inv = algebra.Invert(u)
	)
	//
	require.True(t, inv.Value().Equal(qq.NewRat(3, 2)))
	require.True(t, algebra.Invert(inv).Value().Equal(u.Value()))
}

func Test_Lift_01(t *testing.T) {
	require.True(t, algebra.Lift[zz.Int](7).Equal(zz.NewInt(7)))
	require.True(t, algebra.Lift[gf251.Element](252).Equal(gf251.New(1)))
	require.True(t, algebra.Lift[poly.Polynomial[zz.Int]](0).IsZero())
	require.True(t, algebra.Zero[word256.Word]().IsZero())
	require.True(t, algebra.One[word256.Word]().IsOne())
}

func Test_Config_01(t *testing.T) {
	require.Equal(t, "GF_251", algebra.GetConfig("GF_251").Name)
	require.Nil(t, algebra.GetConfig("GF_7"))
	require.Len(t, algebra.CONFIGS, 3)
}
