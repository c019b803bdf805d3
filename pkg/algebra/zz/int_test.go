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
package zz

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Int_01(t *testing.T) {
	var zero Int
	//
	require.True(t, zero.IsZero())
	require.True(t, zero.IsNilpotent())
	require.False(t, zero.IsUnit())
	require.Equal(t, "0", zero.String())
	require.True(t, zero.Add(NewInt(3)).Equal(NewInt(3)))
}

func Test_Int_02(t *testing.T) {
	require.True(t, NewInt(7).Sub(NewInt(10)).Equal(NewInt(-3)))
	require.True(t, NewInt(-4).Mul(NewInt(6)).Equal(NewInt(-24)))
	require.True(t, NewInt(5).Neg().Equal(NewInt(-5)))
	require.Equal(t, 1, NewInt(5).Cmp(NewInt(-5)))
}

func Test_Int_03(t *testing.T) {
	require.True(t, NewInt(1).IsUnit())
	require.True(t, NewInt(-1).IsUnit())
	require.False(t, NewInt(2).IsUnit())
	// Units are self-inverse
	require.True(t, NewInt(1).UnitInverse().Equal(NewInt(1)))
	require.True(t, NewInt(-1).UnitInverse().Equal(NewInt(-1)))
	require.Panics(t, func() { NewInt(2).UnitInverse() })
}

func Test_Int_04(t *testing.T) {
	checkNormalize(t, -6, -1, 6)
	checkNormalize(t, 6, 1, 6)
	checkNormalize(t, 0, 1, 0)
}

func Test_Int_05(t *testing.T) {
	require.True(t, NewInt(-12).GCD(NewInt(18)).Equal(NewInt(6)))
	require.True(t, NewInt(0).GCD(NewInt(-5)).Equal(NewInt(5)))
	require.True(t, NewInt(0).GCD(NewInt(0)).IsZero())
}

func Test_Int_06(t *testing.T) {
	require.True(t, NewInt(-12).DivExact(NewInt(4)).Unwrap().Equal(NewInt(-3)))
	require.True(t, NewInt(12).DivExact(NewInt(5)).IsEmpty())
	require.True(t, NewInt(12).DivExact(NewInt(0)).IsEmpty())
}

func Test_Int_07(t *testing.T) {
	x, err := Parse("123456789012345678901234567890")
	//
	require.NoError(t, err)
	require.Equal(t, "123456789012345678901234567890", x.String())
	//
	_, err = Parse("12x")
	require.Error(t, err)
}

func Test_Int_08(t *testing.T) {
	// Operations never modify their operands
	var (
		x = NewInt(5)
		y = NewInt(7)
	)
	//
	x.Add(y)
	x.Mul(y)
	x.Neg()
	x.Big().SetInt64(0)
	//
	require.True(t, x.Equal(NewInt(5)))
	require.True(t, y.Equal(NewInt(7)))
}

func checkNormalize(t *testing.T, x, unit, norm int64) {
	u, n := NewInt(x).Normalize()
	//
	require.True(t, u.Value().Equal(NewInt(unit)))
	require.True(t, n.Equal(NewInt(norm)))
	require.True(t, u.Value().Mul(n).Equal(NewInt(x)))
}
