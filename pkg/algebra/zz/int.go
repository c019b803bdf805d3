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
	"fmt"
	"math/big"

	"github.com/consensys/go-polyfactor/pkg/algebra"
	"github.com/consensys/go-polyfactor/pkg/util"
)

var zero big.Int

// Int is an arbitrary precision integer, and an element of the ring of integers
// Z.  The zero value represents 0.
type Int struct {
	// nil represents zero
	val *big.Int
}

// NewInt constructs an integer from a machine integer.
func NewInt(x int64) Int {
	return Int{big.NewInt(x)}
}

// FromBig constructs an integer from a big.Int.  The argument is copied.
func FromBig(x *big.Int) Int {
	return Int{new(big.Int).Set(x)}
}

// Parse an integer from its decimal representation (or any base prefix accepted
// by big.Int).
func Parse(s string) (Int, error) {
	var val big.Int
	//
	if _, ok := val.SetString(s, 0); !ok {
		return Int{}, fmt.Errorf("invalid integer \"%s\"", s)
	}
	//
	return Int{&val}, nil
}

// Big returns a copy of this integer as a big.Int.
func (x Int) Big() *big.Int {
	return new(big.Int).Set(x.get())
}

// Sign returns -1, 0 or 1 depending on the sign of x.
func (x Int) Sign() int {
	return x.get().Sign()
}

// Abs returns |x|.
func (x Int) Abs() Int {
	return Int{new(big.Int).Abs(x.get())}
}

// Cmp returns 1 if x > y, 0 if x = y, and -1 if x < y.
func (x Int) Cmp(y Int) int {
	return x.get().Cmp(y.get())
}

// Zero implementation for the Ring interface.
func (x Int) Zero() Int {
	return Int{}
}

// One implementation for the Ring interface.
func (x Int) One() Int {
	return NewInt(1)
}

// SetUint64 implementation for the FromUint64 interface.
func (x Int) SetUint64(n uint64) Int {
	return Int{new(big.Int).SetUint64(n)}
}

// Add x + y
func (x Int) Add(y Int) Int {
	return Int{new(big.Int).Add(x.get(), y.get())}
}

// Neg -x
func (x Int) Neg() Int {
	return Int{new(big.Int).Neg(x.get())}
}

// Sub x - y
func (x Int) Sub(y Int) Int {
	return Int{new(big.Int).Sub(x.get(), y.get())}
}

// Mul x * y
func (x Int) Mul(y Int) Int {
	return Int{new(big.Int).Mul(x.get(), y.get())}
}

// Equal implementation for the Ring interface.
func (x Int) Equal(y Int) bool {
	return x.get().Cmp(y.get()) == 0
}

// IsZero implementation for the Ring interface.
func (x Int) IsZero() bool {
	return x.get().Sign() == 0
}

// IsOne implementation for the Ring interface.
func (x Int) IsOne() bool {
	return x.get().IsInt64() && x.get().Int64() == 1
}

// IsNilpotent implementation for the Ring interface.  The integers have no
// non-zero nilpotents.
func (x Int) IsNilpotent() bool {
	return x.IsZero()
}

// IsUnit implementation for the Ring interface.  The only units are 1 and -1.
func (x Int) IsUnit() bool {
	return x.get().CmpAbs(big.NewInt(1)) == 0
}

// UnitInverse implementation for the Ring interface.  Both 1 and -1 are their
// own inverses.
func (x Int) UnitInverse() Int {
	if !x.IsUnit() {
		panic(fmt.Sprintf("%s is not a unit", x.String()))
	}
	//
	return x
}

// Normalize implementation for the Domain interface.  This splits x into its
// sign and its absolute value.
func (x Int) Normalize() (algebra.Unit[Int], Int) {
	if x.Sign() < 0 {
		return algebra.AssertUnit(NewInt(-1)), x.Neg()
	}
	//
	return algebra.AssertUnit(NewInt(1)), x
}

// GCD implementation for the Domain interface.  The result is never negative.
func (x Int) GCD(y Int) Int {
	return Int{new(big.Int).GCD(nil, nil, x.get(), y.get())}
}

// DivExact implementation for the Domain interface.
func (x Int) DivExact(y Int) util.Option[Int] {
	var q, r big.Int
	//
	if y.IsZero() {
		return util.None[Int]()
	}
	//
	q.QuoRem(x.get(), y.get(), &r)
	//
	if r.Sign() != 0 {
		return util.None[Int]()
	}
	//
	return util.Some(Int{&q})
}

func (x Int) String() string {
	return x.get().String()
}

func (x Int) get() *big.Int {
	if x.val == nil {
		return &zero
	}
	//
	return x.val
}
