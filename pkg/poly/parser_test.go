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
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Parse_01(t *testing.T) {
	checkEquiv(t, "2x", "2*x", "x*2", "x+x", "(x)2")
}

func Test_Parse_02(t *testing.T) {
	checkEquiv(t, "x^2", "x**2", "x*x", "(x)^2", "(-x)^2")
}

func Test_Parse_03(t *testing.T) {
	checkEquiv(t, "-x^2", "-(x^2)", "0 - x*x")
}

func Test_Parse_04(t *testing.T) {
	checkEquiv(t, "x/2", "(1/2)x", "x - x/2", "3x/6")
}

func Test_Parse_05(t *testing.T) {
	checkEquiv(t, "2(x+1)(x-1)", "2x^2 - 2")
}

func Test_Parse_06(t *testing.T) {
	checkEquiv(t, " 1 -  -x ", "x+1", "+x+1", "1--x")
}

func Test_Parse_07(t *testing.T) {
	checkEquiv(t, "x^3 - 2x^2 + 3", "3 - 2*x*x + x*x*x")
}

func Test_Parse_08(t *testing.T) {
	checkEquiv(t, "007", "7")
}

func Test_Parse_Invalid_01(t *testing.T) {
	checkParseError(t, "x +", 3, "unexpected end of expression")
}

func Test_Parse_Invalid_02(t *testing.T) {
	checkParseError(t, "y", 0, "unknown variable (expected \"x\")")
}

func Test_Parse_Invalid_03(t *testing.T) {
	checkParseError(t, "x/(x+1)", 2, "division by non-constant expression")
}

func Test_Parse_Invalid_04(t *testing.T) {
	checkParseError(t, "x/(1-1)", 2, "division by zero")
}

func Test_Parse_Invalid_05(t *testing.T) {
	checkParseError(t, "x $ 1", 2, "unknown text encountered")
}

func Test_Parse_Invalid_06(t *testing.T) {
	checkParseError(t, "(x+1", 4, "expected ')'")
}

func Test_Parse_Invalid_07(t *testing.T) {
	checkParseError(t, "x+1)", 3, "unexpected token")
}

func Test_Parse_Invalid_08(t *testing.T) {
	checkParseError(t, "x^x", 2, "expected exponent")
	checkParseError(t, "x^100000", 2, "exponent exceeds 65536")
}

func Test_Parse_Var_01(t *testing.T) {
	p, errs := Parse("t^2 - 1", "t")
	//
	require.Empty(t, errs)
	require.True(t, p.Equal(parse("x^2 - 1")))
}

func checkParseError(t *testing.T, input string, start int, msg string) {
	_, errs := Parse(input, "x")
	//
	require.Len(t, errs, 1)
	require.Equal(t, msg, errs[0].Message())
	//
	span := errs[0].Span()
	require.Equal(t, start, span.Start())
}
