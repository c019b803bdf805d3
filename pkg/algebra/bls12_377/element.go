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
package bls12_377

import (
	"math/big"

	"github.com/consensys/go-polyfactor/pkg/algebra"
	"github.com/consensys/go-polyfactor/pkg/util"
	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
)

// Element wraps fr.Element (i.e. an element of the scalar field of BLS12-377)
// to conform to the algebra.FieldElement interface.  The zero value represents
// 0.
type Element struct {
	fr.Element
}

// FromBig constructs the residue of a (possibly negative) integer modulo the
// field order.
func FromBig(val *big.Int) Element {
	var elem fr.Element
	// SetBigInt reduces modulo q, including for negative values.
	elem.SetBigInt(val)
	//
	return Element{elem}
}

// Zero implementation for the Ring interface.
func (x Element) Zero() Element {
	return Element{}
}

// One implementation for the Ring interface.
func (x Element) One() Element {
	var elem fr.Element
	//
	elem.SetOne()
	//
	return Element{elem}
}

// SetUint64 implementation for the FromUint64 interface.
func (x Element) SetUint64(val uint64) Element {
	var elem fr.Element
	//
	elem.SetUint64(val)
	//
	return Element{elem}
}

// Add x + y
func (x Element) Add(y Element) Element {
	var res fr.Element
	//
	res.Add(&x.Element, &y.Element)
	//
	return Element{res}
}

// Neg -x
func (x Element) Neg() Element {
	var res fr.Element
	//
	res.Neg(&x.Element)
	//
	return Element{res}
}

// Sub x - y
func (x Element) Sub(y Element) Element {
	var elem fr.Element
	//
	elem.Sub(&x.Element, &y.Element)
	//
	return Element{elem}
}

// Mul x * y
func (x Element) Mul(y Element) Element {
	var elem fr.Element
	//
	elem.Mul(&x.Element, &y.Element)
	//
	return Element{elem}
}

// Equal implementation for the Ring interface
func (x Element) Equal(y Element) bool {
	return x.Element.Equal(&y.Element)
}

// IsOne implementation for the Ring interface
func (x Element) IsOne() bool {
	return x.Element.IsOne()
}

// IsZero implementation for the Ring interface
func (x Element) IsZero() bool {
	return x.Element.IsZero()
}

// IsNilpotent implementation for the Ring interface
func (x Element) IsNilpotent() bool {
	return x.Element.IsZero()
}

// IsUnit implementation for the Ring interface
func (x Element) IsUnit() bool {
	return !x.Element.IsZero()
}

// UnitInverse implementation for the Ring interface.
func (x Element) UnitInverse() Element {
	return x.Inverse().Expect("0 is not a unit")
}

// Inverse x⁻¹, or None if x = 0.  Observe that fr.Element.Inverse silently
// returns 0 in the latter case.
func (x Element) Inverse() util.Option[Element] {
	var elem fr.Element
	//
	if x.Element.IsZero() {
		return util.None[Element]()
	}
	//
	elem.Inverse(&x.Element)
	//
	return util.Some(Element{elem})
}

// Normalize implementation for the Domain interface.
func (x Element) Normalize() (algebra.Unit[Element], Element) {
	if x.IsZero() {
		return algebra.AssertUnit(x.One()), x
	}
	//
	return algebra.AssertUnit(x), x.One()
}

// GCD implementation for the Domain interface.
func (x Element) GCD(y Element) Element {
	if x.IsZero() && y.IsZero() {
		return x
	}
	//
	return x.One()
}

// DivExact implementation for the Domain interface.
func (x Element) DivExact(y Element) util.Option[Element] {
	return algebra.Div(x, y)
}

// Characteristic implementation for the Characteristic interface.
func (x Element) Characteristic() *big.Int {
	return fr.Modulus()
}

func (x Element) String() string {
	return x.Element.String()
}
