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
package poly

import (
	"errors"
	"fmt"

	"github.com/consensys/go-polyfactor/pkg/algebra"
)

// ErrDuplicatePoint signals an interpolation problem with a repeated
// x-coordinate.
var ErrDuplicatePoint = errors.New("duplicate interpolation point")

// Interpolate computes the unique polynomial of degree less than n which passes
// through n points (xs[i], ys[i]) with distinct x-coordinates, using Lagrange
// interpolation over a field.  An error is returned when the coordinate arrays
// differ in length, or when an x-coordinate is repeated.  No points yields the
// zero polynomial.
func Interpolate[F algebra.FieldElement[F]](xs []F, ys []F) (Polynomial[F], error) {
	var (
		result Polynomial[F]
		basis  = One[F]()
	)
	//
	if len(xs) != len(ys) {
		return result, fmt.Errorf("mismatched interpolation points (%d x-coordinates vs %d y-coordinates)",
			len(xs), len(ys))
	}
	// Compute the Lagrange basis prod(X-x[j])
	for _, x := range xs {
		basis = basis.Mul(linear(x))
	}
	//
	for i, xi := range xs {
		// prod(x[i] - x[j]) for i != j
		den := algebra.One[F]()
		//
		for j, xj := range xs {
			if i != j {
				den = den.Mul(xi.Sub(xj))
			}
		}
		//
		inv := den.Inverse()
		if inv.IsEmpty() {
			return Polynomial[F]{}, fmt.Errorf("%w (%s)", ErrDuplicatePoint, xi)
		}
		// P(X) += (y[i] / prod(x[i] - x[j])) * prod(X-x[j]) for j != i
		term := Quo(basis, linear(xi))
		result = result.Add(term.Scale(ys[i].Mul(inv.Unwrap())))
	}
	//
	return result, nil
}

// One constructs the constant polynomial one.
func One[K algebra.Coefficient[K]]() Polynomial[K] {
	return Constant(algebra.One[K]())
}

// linear constructs X - c.
func linear[K algebra.Coefficient[K]](c K) Polynomial[K] {
	return New(c.Neg(), algebra.One[K]())
}
