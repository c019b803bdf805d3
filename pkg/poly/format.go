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
	"fmt"
	"strings"

	"github.com/consensys/go-polyfactor/pkg/algebra"
)

// Signed captures coefficients with an ordering against zero, which allows
// polynomials to be printed in the conventional human-readable layout (e.g.
// "3x^2 - x + 1") rather than as a plain sum of terms.
type Signed[K any] interface {
	algebra.Coefficient[K]
	// Sign returns -1, 0 or +1 depending on the sign of this value.
	Sign() int
	// Abs returns the absolute value of this value.
	Abs() K
}

func (p Polynomial[K]) String() string {
	return p.Text("x")
}

// Text returns a generic representation of this polynomial in a given
// variable, which works for any coefficient domain.  Coefficients whose own
// representation is compound (e.g. nested polynomials) are parenthesised.
func (p Polynomial[K]) Text(variable string) string {
	var builder strings.Builder
	//
	if p.IsZero() {
		return "0"
	}
	//
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		c := p.coeffs[i]
		//
		if c.IsZero() {
			continue
		} else if builder.Len() > 0 {
			builder.WriteString(" + ")
		}
		//
		cs := c.String()
		if strings.ContainsRune(cs, ' ') {
			cs = fmt.Sprintf("(%s)", cs)
		}
		//
		switch {
		case i == 0:
			builder.WriteString(cs)
		case c.IsOne():
			builder.WriteString(monomial(variable, i))
		default:
			builder.WriteString(cs)
			builder.WriteString(monomial(variable, i))
		}
	}
	//
	return builder.String()
}

// Format returns the conventional representation of a polynomial with signed
// coefficients in a given variable, such as "3x^2 - x + 1".  Terms are printed
// from highest degree to lowest, and coefficients of one are omitted from
// non-constant terms.  The zero polynomial is printed as "0".
func Format[K Signed[K]](p Polynomial[K], variable string) string {
	var builder strings.Builder
	//
	if p.IsZero() {
		return "0"
	}
	//
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		c := p.coeffs[i]
		//
		if c.IsZero() {
			continue
		}
		// First term retains its sign, whilst later terms use an infix operator.
		if builder.Len() > 0 {
			if c.Sign() < 0 {
				builder.WriteString(" - ")
			} else {
				builder.WriteString(" + ")
			}
			//
			c = c.Abs()
		}
		//
		if i == 0 {
			builder.WriteString(c.String())
			continue
		}
		//
		switch {
		case c.IsOne():
		case c.Neg().IsOne():
			builder.WriteString("-")
		default:
			builder.WriteString(c.String())
		}
		//
		builder.WriteString(monomial(variable, i))
	}
	//
	return builder.String()
}

func monomial(variable string, degree int) string {
	if degree == 1 {
		return variable
	}
	//
	return fmt.Sprintf("%s^%d", variable, degree)
}
