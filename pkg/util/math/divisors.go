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
package math

import (
	"math/big"
	"slices"

	"github.com/tuneinsight/lattigo/v6/utils/factorization"
)

// SMALL_PRIME_BOUND determines the bound below which prime factors are removed
// by trial division, before any remaining cofactor is handed to the general
// purpose factorisation methods.
const SMALL_PRIME_BOUND = 1024

// PrimePower represents a prime factor p^k of some integer.
type PrimePower struct {
	Prime    *big.Int
	Exponent uint
}

// Factorise determines the prime factorisation of |n| for n != 0, returned in
// ascending order of primes.  The factorisation of 1 is empty.  This panics for
// n == 0.
func Factorise(n *big.Int) []PrimePower {
	var (
		factors []PrimePower
		m       = new(big.Int).Abs(n)
		one     = big.NewInt(1)
	)
	//
	if m.Sign() == 0 {
		panic("cannot factorise zero")
	}
	// Trial division by small factors
	for p := int64(2); p < SMALL_PRIME_BOUND && m.Cmp(one) > 0; p++ {
		if k := divideOut(m, big.NewInt(p)); k > 0 {
			factors = append(factors, PrimePower{big.NewInt(p), k})
		}
	}
	// Large factors (if any)
	if m.Cmp(one) > 0 {
		for _, p := range factorization.GetFactors(new(big.Int).Set(m)) {
			if k := divideOut(m, p); k > 0 {
				factors = append(factors, PrimePower{new(big.Int).Set(p), k})
			}
		}
	}
	//
	slices.SortFunc(factors, func(a, b PrimePower) int {
		return a.Prime.Cmp(b.Prime)
	})
	//
	return factors
}

// Divisors returns all positive divisors of |n| in ascending order.  For n == 0
// (which is divisible by everything) this returns nil.
func Divisors(n *big.Int) []*big.Int {
	if n.Sign() == 0 {
		return nil
	}
	//
	divisors := []*big.Int{big.NewInt(1)}
	//
	for _, pk := range Factorise(n) {
		var (
			m     = len(divisors)
			power = big.NewInt(1)
		)
		// Extend each existing divisor d with d*p, d*p^2, ..., d*p^k
		for range pk.Exponent {
			power = new(big.Int).Mul(power, pk.Prime)
			//
			for _, d := range divisors[:m] {
				divisors = append(divisors, new(big.Int).Mul(d, power))
			}
		}
	}
	//
	slices.SortFunc(divisors, func(a, b *big.Int) int {
		return a.Cmp(b)
	})
	//
	return divisors
}

// divideOut divides m by p as many times as possible, returning how many times
// this was.  Observe that m is modified in place.
func divideOut(m *big.Int, p *big.Int) uint {
	var (
		k   uint
		q   big.Int
		rem big.Int
	)
	//
	for {
		q.QuoRem(m, p, &rem)
		//
		if rem.Sign() != 0 {
			return k
		}
		//
		m.Set(&q)
		k++
	}
}
