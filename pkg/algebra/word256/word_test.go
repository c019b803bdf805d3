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
package word256

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Word_01(t *testing.T) {
	var zero Word
	//
	require.True(t, zero.IsZero())
	require.True(t, zero.IsNilpotent())
	require.Equal(t, uint(BITWIDTH), zero.Valuation())
	require.True(t, New(0).Sub(New(1)).Add(New(1)).IsZero())
}

func Test_Word_02(t *testing.T) {
	require.True(t, New(6).IsNilpotent())
	require.False(t, New(6).IsUnit())
	require.True(t, New(7).IsUnit())
	require.Panics(t, func() { New(6).UnitInverse() })
}

func Test_Word_03(t *testing.T) {
	for _, v := range []uint64{1, 3, 5, 7, 255, 0xffffffffffffffff} {
		x := New(v)
		require.True(t, x.Mul(x.UnitInverse()).IsOne(), "inverse of %d", v)
		require.True(t, x.Neg().Mul(x.Neg().UnitInverse()).IsOne())
	}
}

func Test_Word_04(t *testing.T) {
	// 2^256 - 1 = -1
	allOnes := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))
	//
	require.True(t, FromBig(allOnes).Equal(New(1).Neg()))
	require.True(t, FromBig(big.NewInt(-1)).Equal(New(1).Neg()))
	require.Equal(t, allOnes.String(), New(1).Neg().String())
	require.Equal(t, 0, FromBig(allOnes).Big().Cmp(allOnes))
}

func Test_Word_05(t *testing.T) {
	// 24 = 3 * 2^3
	u, n := New(24).Normalize()
	//
	require.True(t, u.Value().Equal(New(3)))
	require.True(t, n.Equal(New(8)))
	require.Equal(t, uint(3), New(24).Valuation())
}

func Test_Word_06(t *testing.T) {
	require.True(t, New(24).GCD(New(20)).Equal(New(4)))
	require.True(t, New(0).GCD(New(20)).Equal(New(4)))
	require.True(t, New(0).GCD(New(0)).IsZero())
}

func Test_Word_07(t *testing.T) {
	q := New(24).DivExact(New(6))
	//
	require.True(t, q.HasValue())
	require.True(t, q.Unwrap().Mul(New(6)).Equal(New(24)))
	require.True(t, New(6).DivExact(New(4)).IsEmpty())
	require.True(t, New(6).DivExact(New(0)).IsEmpty())
	require.True(t, New(0).DivExact(New(8)).Unwrap().IsZero())
}
