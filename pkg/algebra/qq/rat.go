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
package qq

import (
	"fmt"
	"math/big"

	"github.com/consensys/go-polyfactor/pkg/algebra"
	"github.com/consensys/go-polyfactor/pkg/algebra/zz"
	"github.com/consensys/go-polyfactor/pkg/util"
)

var zero big.Rat

// Rat is an exact rational number, and an element of the field Q.  The zero
// value represents 0.
type Rat struct {
	// nil represents zero
	val *big.Rat
}

// NewRat constructs the rational a/b.  This panics if b is zero.
func NewRat(a, b int64) Rat {
	if b == 0 {
		panic("zero denominator")
	}
	//
	return Rat{big.NewRat(a, b)}
}

// NewInt constructs a rational from a machine integer.
func NewInt(a int64) Rat {
	return Rat{new(big.Rat).SetInt64(a)}
}

// FromInt constructs a rational from an integer.
func FromInt(x zz.Int) Rat {
	return Rat{new(big.Rat).SetInt(x.Big())}
}

// FromBig constructs a rational from a big.Rat.  The argument is copied.
func FromBig(x *big.Rat) Rat {
	return Rat{new(big.Rat).Set(x)}
}

// Parse a rational number written either as an integer or as a fraction "a/b".
func Parse(s string) (Rat, error) {
	var val big.Rat
	//
	if _, ok := val.SetString(s); !ok {
		return Rat{}, fmt.Errorf("invalid rational \"%s\"", s)
	}
	//
	return Rat{&val}, nil
}

// Big returns a copy of this rational as a big.Rat.
func (x Rat) Big() *big.Rat {
	return new(big.Rat).Set(x.get())
}

// Num returns the numerator of x (in lowest terms).
func (x Rat) Num() zz.Int {
	return zz.FromBig(x.get().Num())
}

// Denom returns the (always positive) denominator of x (in lowest terms).
func (x Rat) Denom() zz.Int {
	return zz.FromBig(x.get().Denom())
}

// IsInt determines whether the denominator of x is one.
func (x Rat) IsInt() bool {
	return x.get().IsInt()
}

// Sign returns -1, 0 or 1 depending on the sign of x.
func (x Rat) Sign() int {
	return x.get().Sign()
}

// Abs returns |x|.
func (x Rat) Abs() Rat {
	return Rat{new(big.Rat).Abs(x.get())}
}

// Cmp returns 1 if x > y, 0 if x = y, and -1 if x < y.
func (x Rat) Cmp(y Rat) int {
	return x.get().Cmp(y.get())
}

// Zero implementation for the Ring interface.
func (x Rat) Zero() Rat {
	return Rat{}
}

// One implementation for the Ring interface.
func (x Rat) One() Rat {
	return NewInt(1)
}

// SetUint64 implementation for the FromUint64 interface.
func (x Rat) SetUint64(n uint64) Rat {
	return Rat{new(big.Rat).SetUint64(n)}
}

// Add x + y
func (x Rat) Add(y Rat) Rat {
	return Rat{new(big.Rat).Add(x.get(), y.get())}
}

// Neg -x
func (x Rat) Neg() Rat {
	return Rat{new(big.Rat).Neg(x.get())}
}

// Sub x - y
func (x Rat) Sub(y Rat) Rat {
	return Rat{new(big.Rat).Sub(x.get(), y.get())}
}

// Mul x * y
func (x Rat) Mul(y Rat) Rat {
	return Rat{new(big.Rat).Mul(x.get(), y.get())}
}

// Equal implementation for the Ring interface.
func (x Rat) Equal(y Rat) bool {
	return x.get().Cmp(y.get()) == 0
}

// IsZero implementation for the Ring interface.
func (x Rat) IsZero() bool {
	return x.get().Sign() == 0
}

// IsOne implementation for the Ring interface.
func (x Rat) IsOne() bool {
	return x.get().Cmp(big.NewRat(1, 1)) == 0
}

// IsNilpotent implementation for the Ring interface.
func (x Rat) IsNilpotent() bool {
	return x.IsZero()
}

// IsUnit implementation for the Ring interface.  Every non-zero rational is a
// unit.
func (x Rat) IsUnit() bool {
	return !x.IsZero()
}

// UnitInverse implementation for the Ring interface.
func (x Rat) UnitInverse() Rat {
	return x.Inverse().Expect("%s is not a unit", x.String())
}

// Inverse implementation for the CheckedInverse interface.
func (x Rat) Inverse() util.Option[Rat] {
	if x.IsZero() {
		return util.None[Rat]()
	}
	//
	return util.Some(Rat{new(big.Rat).Inv(x.get())})
}

// Normalize implementation for the Domain interface.  Since every non-zero
// rational is a unit, the canonical associate is either zero or one.
func (x Rat) Normalize() (algebra.Unit[Rat], Rat) {
	if x.IsZero() {
		return algebra.AssertUnit(x.One()), x
	}
	//
	return algebra.AssertUnit(x), x.One()
}

// GCD implementation for the Domain interface.  This is zero only when both
// arguments are zero, and one otherwise.
func (x Rat) GCD(y Rat) Rat {
	if x.IsZero() && y.IsZero() {
		return Rat{}
	}
	//
	return x.One()
}

// DivExact implementation for the Domain interface.
func (x Rat) DivExact(y Rat) util.Option[Rat] {
	return algebra.Div(x, y)
}

func (x Rat) String() string {
	return x.get().RatString()
}

func (x Rat) get() *big.Rat {
	if x.val == nil {
		return &zero
	}
	//
	return x.val
}
