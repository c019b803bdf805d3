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
	"math"
)

// Multiplicity represents the number of times a factor divides a polynomial.
// This is always positive: the zero value represents a multiplicity of one, and
// there is no way to construct a multiplicity of zero.
type Multiplicity struct {
	// Multiplicity less one
	minusOne uint
}

// NewMultiplicity constructs a multiplicity from a given positive integer.  This
// panics if n is zero.
func NewMultiplicity(n uint) Multiplicity {
	if n == 0 {
		panic("zero multiplicity")
	}
	//
	return Multiplicity{n - 1}
}

// Get returns the positive integer represented by this multiplicity.
func (m Multiplicity) Get() uint {
	return m.minusOne + 1
}

// Next returns the multiplicity one larger than this, or this multiplicity if
// it is already math.MaxUint.
func (m Multiplicity) Next() Multiplicity {
	if m.minusOne == math.MaxUint-1 {
		return m
	}
	//
	return Multiplicity{m.minusOne + 1}
}

// Cmp returns -1, 0 or 1 depending on whether this multiplicity is less than,
// equal to or greater than another.
func (m Multiplicity) Cmp(o Multiplicity) int {
	switch {
	case m.minusOne < o.minusOne:
		return -1
	case m.minusOne > o.minusOne:
		return 1
	default:
		return 0
	}
}

func (m Multiplicity) String() string {
	return fmt.Sprintf("%d", m.Get())
}
