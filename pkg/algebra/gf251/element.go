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
package gf251

import (
	"fmt"
	"math/big"

	"github.com/consensys/go-polyfactor/pkg/algebra"
	"github.com/consensys/go-polyfactor/pkg/util"
)

// N defines the modulus for the GF251 prime field.
const N = 251

// R is determined by the bitwidth used for holding field elements.  In this
// case, we store our field elements in a single byte, so the bitwidth is 8.
const R = 256

// BITWIDTH identifies the bitwidth used for holding field elements.
const BITWIDTH = 8

// negInvN represents -1/N mod R.
const negInvN = 205

// Element type for the GF251 prime field.  This is defined as an array of one
// element to prevent accidental use of native arithmetic operators (+,*).  An
// Element value represents an encoded form of some integer value X.
// Specifically, for some integer X, the value stored in an Element is always
// (X*R) % N.  Observe that the zero value represents 0.
type Element [1]uint8

// New constructs a new field element from a given unsigned integer.  This will
// panic if the supplied value is too large.
func New(val uint8) Element {
	if val >= N {
		panic("invalid GF251 element")
	}
	// Encode our integer val into the form (val*R) % N.
	element := (uint16(val) << BITWIDTH) % N
	//
	return Element{uint8(element)}
}

// FromBig constructs the residue of a (possibly negative) integer modulo N.
func FromBig(val *big.Int) Element {
	var r big.Int
	// Mod always returns a non-negative residue
	r.Mod(val, big.NewInt(N))
	//
	return New(uint8(r.Uint64()))
}

// Zero implementation for the Ring interface.
func (p Element) Zero() Element {
	return Element{}
}

// One implementation for the Ring interface.
func (p Element) One() Element {
	return New(1)
}

// SetUint64 implementation for the FromUint64 interface.
func (p Element) SetUint64(val uint64) Element {
	return New(uint8(val % N))
}

// Add two elements together
func (p Element) Add(q Element) Element {
	// Add to give ((p+q)*R) % 2N
	val := uint16(p[0]) + uint16(q[0])
	// Reduce to give ((p+q)*R) % N
	if val >= N {
		val -= N
	}
	// Done
	return Element{uint8(val)}
}

// Neg returns -p
func (p Element) Neg() Element {
	if p[0] == 0 {
		return p
	}
	//
	return Element{N - p[0]}
}

// Sub subtracts q from p
func (p Element) Sub(q Element) Element {
	if p[0] >= q[0] {
		return Element{p[0] - q[0]}
	}
	// Wrap around
	return Element{uint8(uint16(p[0]) + N - uint16(q[0]))}
}

// Mul multiplies two elements together
func (p Element) Mul(q Element) Element {
	// Multiply to give (p*q*R*R) mod N^2
	val := uint16(p[0]) * uint16(q[0])
	//
	return Element{reduce(val)}
}

// Equal implementation for the Ring interface.  Since the encoding is
// canonical, this is a direct comparison.
func (p Element) Equal(q Element) bool {
	return p == q
}

// IsZero implementation for the Ring interface.
func (p Element) IsZero() bool {
	return p[0] == 0
}

// IsOne implementation for the Ring interface.
func (p Element) IsOne() bool {
	return p == p.One()
}

// IsNilpotent implementation for the Ring interface.
func (p Element) IsNilpotent() bool {
	return p.IsZero()
}

// IsUnit implementation for the Ring interface.
func (p Element) IsUnit() bool {
	return !p.IsZero()
}

// UnitInverse implementation for the Ring interface.
func (p Element) UnitInverse() Element {
	return p.Inverse().Expect("0 is not a unit")
}

// Inverse implementation for the CheckedInverse interface.  This uses Fermat's
// little theorem, i.e. p⁻¹ = p^(N-2).
func (p Element) Inverse() util.Option[Element] {
	if p.IsZero() {
		return util.None[Element]()
	}
	//
	return util.Some(algebra.Pow(p, N-2))
}

// Normalize implementation for the Domain interface.
func (p Element) Normalize() (algebra.Unit[Element], Element) {
	if p.IsZero() {
		return algebra.AssertUnit(p.One()), p
	}
	//
	return algebra.AssertUnit(p), p.One()
}

// GCD implementation for the Domain interface.
func (p Element) GCD(q Element) Element {
	if p.IsZero() && q.IsZero() {
		return p
	}
	//
	return p.One()
}

// DivExact implementation for the Domain interface.
func (p Element) DivExact(q Element) util.Option[Element] {
	return algebra.Div(p, q)
}

// Characteristic implementation for the Characteristic interface.
func (p Element) Characteristic() *big.Int {
	return big.NewInt(N)
}

// ToByte decodes an element into the integer value it represents.
func (p Element) ToByte() uint8 {
	return reduce(uint16(p[0]))
}

func (p Element) String() string {
	return fmt.Sprintf("%d", p.ToByte())
}

// Montgomery reduction.  Value on entry has the form (x*R) mod R*N.  The goal
// is to return the value "x mod N".
func reduce(val uint16) uint8 {
	// Divide by -N
	quot := uint8(val) * negInvN
	// Determine remainder
	rem := uint32(val) + (uint32(quot) * N)
	// Divide by R
	rem = rem >> BITWIDTH
	// Reduce to (x*R) % N.
	if rem >= N {
		rem -= N
	}
	//
	return uint8(rem)
}
