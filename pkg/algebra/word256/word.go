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
	"fmt"
	"math/big"
	"math/bits"

	"github.com/consensys/go-polyfactor/pkg/algebra"
	"github.com/consensys/go-polyfactor/pkg/util"
	"github.com/holiman/uint256"
)

// BITWIDTH is the number of bits in a word.
const BITWIDTH = 256

// Word is an element of the ring Z/2²⁵⁶Z of 256-bit machine words with
// wrap-around arithmetic.  Unlike the other coefficient domains, this ring is
// not reduced: every even word is nilpotent (since (2k)²⁵⁶ = 0) whilst every odd
// word is a unit.  The zero value represents 0.
type Word struct {
	val uint256.Int
}

// New constructs a word from a machine integer.
func New(val uint64) Word {
	var w Word
	//
	w.val.SetUint64(val)
	//
	return w
}

// FromBig constructs the residue of a (possibly negative) integer modulo 2²⁵⁶.
func FromBig(val *big.Int) Word {
	var (
		w       Word
		modulus = new(big.Int).Lsh(big.NewInt(1), BITWIDTH)
		r       = new(big.Int).Mod(val, modulus)
	)
	// Cannot overflow since r < 2^256
	w.val.SetFromBig(r)
	//
	return w
}

// Big returns the value of this word as a (non-negative) big.Int.
func (x Word) Big() *big.Int {
	return x.val.ToBig()
}

// Zero implementation for the Ring interface.
func (x Word) Zero() Word {
	return Word{}
}

// One implementation for the Ring interface.
func (x Word) One() Word {
	return New(1)
}

// SetUint64 implementation for the FromUint64 interface.
func (x Word) SetUint64(n uint64) Word {
	return New(n)
}

// Add x + y (mod 2²⁵⁶)
func (x Word) Add(y Word) Word {
	var res Word
	//
	res.val.Add(&x.val, &y.val)
	//
	return res
}

// Neg -x (mod 2²⁵⁶)
func (x Word) Neg() Word {
	var res Word
	//
	res.val.Neg(&x.val)
	//
	return res
}

// Sub x - y (mod 2²⁵⁶)
func (x Word) Sub(y Word) Word {
	var res Word
	//
	res.val.Sub(&x.val, &y.val)
	//
	return res
}

// Mul x * y (mod 2²⁵⁶)
func (x Word) Mul(y Word) Word {
	var res Word
	//
	res.val.Mul(&x.val, &y.val)
	//
	return res
}

// Equal implementation for the Ring interface.
func (x Word) Equal(y Word) bool {
	return x.val.Eq(&y.val)
}

// IsZero implementation for the Ring interface.
func (x Word) IsZero() bool {
	return x.val.IsZero()
}

// IsOne implementation for the Ring interface.
func (x Word) IsOne() bool {
	return x.val.IsUint64() && x.val.Uint64() == 1
}

// IsNilpotent implementation for the Ring interface.  A word is nilpotent if,
// and only if, it is even.
func (x Word) IsNilpotent() bool {
	return x.val[0]&1 == 0
}

// IsUnit implementation for the Ring interface.  A word is a unit if, and only
// if, it is odd.
func (x Word) IsUnit() bool {
	return x.val[0]&1 == 1
}

// UnitInverse implementation for the Ring interface.  This uses Newton
// iteration, where each step doubles the number of correct low-order bits.  For
// odd x we have x*x = 1 (mod 8), so x is correct in its first three bits
// initially.
func (x Word) UnitInverse() Word {
	if !x.IsUnit() {
		panic(fmt.Sprintf("%s is not a unit", x.String()))
	}
	//
	var (
		inv = x
		two = New(2)
	)
	// 3 -> 6 -> 12 -> 24 -> 48 -> 96 -> 192 -> 384 bits
	for range 7 {
		inv = inv.Mul(two.Sub(x.Mul(inv)))
	}
	//
	return inv
}

// Valuation returns the largest v such that 2^v divides x, where the valuation
// of zero is 256.
func (x Word) Valuation() uint {
	for i, limb := range x.val {
		if limb != 0 {
			return uint(i*64 + bits.TrailingZeros64(limb))
		}
	}
	//
	return BITWIDTH
}

// Normalize implementation for the Domain interface.  Every non-zero word can
// be written uniquely as u*2^v for an odd unit u (modulo 2^(256-v)), where 2^v
// is its canonical associate.
func (x Word) Normalize() (algebra.Unit[Word], Word) {
	if x.IsZero() {
		return algebra.AssertUnit(x.One()), x
	}
	//
	v := x.Valuation()
	//
	return algebra.AssertUnit(x.shr(v)), powerOfTwo(v)
}

// GCD implementation for the Domain interface.  Since the ideals of this ring
// form a chain, the gcd is simply the smaller power of two.
func (x Word) GCD(y Word) Word {
	return powerOfTwo(min(x.Valuation(), y.Valuation()))
}

// DivExact implementation for the Domain interface.  This returns one quotient
// q with x = q*y, which exists if, and only if, y has no more factors of two
// than x.
func (x Word) DivExact(y Word) util.Option[Word] {
	var (
		vx = x.Valuation()
		vy = y.Valuation()
	)
	//
	if y.IsZero() || vx < vy {
		return util.None[Word]()
	}
	//
	return util.Some(x.shr(vy).Mul(y.shr(vy).UnitInverse()))
}

func (x Word) String() string {
	return x.val.Dec()
}

func (x Word) shr(n uint) Word {
	var res Word
	//
	res.val.Rsh(&x.val, n)
	//
	return res
}

func powerOfTwo(v uint) Word {
	var res Word
	//
	if v < BITWIDTH {
		res.val.Lsh(uint256.NewInt(1), v)
	}
	//
	return res
}
