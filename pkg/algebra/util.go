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

import "github.com/consensys/go-polyfactor/pkg/util"

// Zero constructs the additive identity of a given ring.
func Zero[T Ring[T]]() T {
	var element T
	//
	return element.Zero()
}

// One constructs the multiplicative identity of a given ring.
func One[T Ring[T]]() T {
	var element T
	//
	return element.One()
}

// Lift constructs the image of a machine integer in a given domain.
func Lift[T FromUint64[T]](n uint64) T {
	var element T
	//
	return element.SetUint64(n)
}

// Pow takes a given value to the power n.
func Pow[T Ring[T]](val T, n uint64) T {
	if n == 0 {
		return val.One()
	} else if n > 1 {
		m := n / 2
		// Check for odd case
		if n%2 == 1 {
			tmp := val
			val = Pow(val, m)
			val = val.Mul(val).Mul(tmp)
		} else {
			// Even case is easy
			val = Pow(val, m)
			val = val.Mul(val)
		}
	}
	//
	return val
}

// Div computes x / y in a field, returning None when y has no inverse.
func Div[F Field[F]](x, y F) util.Option[F] {
	inv := y.Inverse()
	//
	if inv.IsEmpty() {
		return util.None[F]()
	}
	//
	return util.Some(x.Mul(inv.Unwrap()))
}
