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
package algebra

import (
	"fmt"
	"math/big"

	"github.com/consensys/go-polyfactor/pkg/util"
)

// Ring describes an element of a commutative ring.  Implementations are
// immutable values: every operation returns a fresh value and never modifies
// its receiver or arguments.  Furthermore, the zero value of an implementing
// type must represent the additive identity.
type Ring[T any] interface {
	fmt.Stringer
	// Zero returns the additive identity.
	Zero() T
	// One returns the multiplicative identity.
	One() T
	// Add x+y
	Add(y T) T
	// Neg -x
	Neg() T
	// Sub x-y, equivalent to x+(-y).
	Sub(y T) T
	// Mul x*y
	Mul(y T) T
	// Equal determines whether x == y.
	Equal(y T) bool
	// IsZero checks whether this value is the additive identity.
	IsZero() bool
	// IsOne checks whether this value is the multiplicative identity.
	IsOne() bool
	// IsNilpotent determines whether some power of this value is zero.  In a
	// reduced ring (e.g. any integral domain) this holds only for zero.
	IsNilpotent() bool
	// IsUnit determines whether this value is invertible in the ring.
	IsUnit() bool
	// UnitInverse returns x⁻¹ for a unit x.  This panics if x is not a unit,
	// and should only be used where invertibility has been established
	// already (see Invert).
	UnitInverse() T
}

// CheckedInverse describes values supporting a checked multiplicative inverse.
type CheckedInverse[T any] interface {
	// Inverse returns x⁻¹, or None when x has no inverse (e.g. x = 0).
	Inverse() util.Option[T]
}

// Field describes an element of a field, where every non-zero value has a
// multiplicative inverse.
type Field[T any] interface {
	Ring[T]
	CheckedInverse[T]
}

// Domain describes a coefficient domain whose values can be decomposed into a
// unit part and a canonical associate, and which supports greatest common
// divisors.
type Domain[T any] interface {
	Ring[T]
	// Normalize splits x into (u, n) where u is a unit, n is the canonical
	// associate of x and x = u*n.  For zero this returns (1, 0).
	Normalize() (Unit[T], T)
	// GCD returns the canonical greatest common divisor of x and y.
	GCD(y T) T
	// DivExact returns q such that x = q*y, or None if y does not divide x.
	DivExact(y T) util.Option[T]
}

// FromUint64 describes values into which small machine integers can be lifted.
type FromUint64[T any] interface {
	// SetUint64 returns the image of n in this domain.
	SetUint64(n uint64) T
}

// Coefficient captures everything required of a polynomial coefficient.
type Coefficient[T any] interface {
	Domain[T]
	FromUint64[T]
}

// FieldElement captures a coefficient drawn from a field.  Polynomial division,
// Euclidean GCD and square-free factorization all require this.
type FieldElement[T any] interface {
	Coefficient[T]
	Field[T]
}

// Characteristic is implemented by coefficient types whose characteristic is
// non-zero.
type Characteristic interface {
	// Characteristic returns the smallest p > 0 such that p*1 == 0.
	Characteristic() *big.Int
}
