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
	"fmt"
	"math/big"

	"github.com/consensys/go-polyfactor/pkg/algebra"
	"github.com/consensys/go-polyfactor/pkg/poly"
)

// SquareFree computes the square-free factorization of a polynomial over a
// field using Yun's algorithm.  That is, it decomposes p into its leading
// coefficient and a list of monic, square-free and pairwise coprime factors,
// where each factor is paired with the multiplicity it has in p.  Multiplicities
// are strictly increasing through the list.  The zero polynomial yields a zero
// leading coefficient and no factors, whilst a non-zero constant yields itself
// as the leading coefficient and no factors.
//
// Yun's algorithm relies on the derivative of a factor not vanishing, which
// holds in characteristic zero and whenever the degree of p is less than the
// characteristic.  This panics if the coefficient field has a non-zero
// characteristic which does not exceed the degree of p.
func SquareFree[F algebra.FieldElement[F]](p poly.Polynomial[F]) Factorization[F] {
	if p.IsZero() {
		return Factorization[F]{}
	}
	//
	checkCharacteristic(p)
	//
	var (
		factors []Factor[F]
		lc      = p.LeadingCoeff().Unwrap()
		inv     = lc.Inverse().Expect("non-zero leading coefficient %s is not invertible", lc)
		// Monic working polynomial
		u = p.Scale(inv)
		r = poly.MonicGCD(u, u.Derivative())
		f = poly.Quo(u, r)
		// Multiplicity of one
		j Multiplicity
	)
	// Each iteration peels off those factors of multiplicity exactly j.
	for !r.IsOne() {
		g := poly.MonicGCD(r, f)
		//
		if s := poly.Quo(f, g); !s.IsOne() {
			factors = append(factors, Factor[F]{s, j})
		}
		//
		r, f, j = poly.Quo(r, g), g, j.Next()
	}
	//
	if !f.IsOne() {
		factors = append(factors, Factor[F]{f, j})
	}
	//
	return Factorization[F]{lc, factors}
}

// checkCharacteristic panics if the degree of p is not below the characteristic
// of its coefficient field (when this is non-zero).
func checkCharacteristic[F algebra.FieldElement[F]](p poly.Polynomial[F]) {
	var (
		zero   F
		degree = big.NewInt(int64(p.Degree()))
	)
	//
	if c, ok := any(zero).(algebra.Characteristic); ok {
		if char := c.Characteristic(); char.Sign() > 0 && degree.Cmp(char) >= 0 {
			panic(fmt.Sprintf("cannot factor polynomial of degree %s in characteristic %s", degree, char))
		}
	}
}
