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

import "fmt"

// Unit wraps a value which is known to be invertible in its ring.  Values of
// this type can only be constructed via AssertUnit (or Invert), hence holding
// one is evidence that the check was made.
type Unit[T any] struct {
	value T
}

// AssertUnit wraps a given value as a known unit.  This panics if the value
// is not invertible, since that indicates the caller violated a precondition.
func AssertUnit[T Ring[T]](x T) Unit[T] {
	if !x.IsUnit() {
		panic(fmt.Sprintf("%s is not a unit", x.String()))
	}
	//
	return Unit[T]{x}
}

// Invert returns the multiplicative inverse of a known unit.
func Invert[T Ring[T]](u Unit[T]) Unit[T] {
	return Unit[T]{u.value.UnitInverse()}
}

// Value returns the underlying unit.
func (u Unit[T]) Value() T {
	return u.value
}
