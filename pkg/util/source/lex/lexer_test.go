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
package lex

import (
	"testing"

	"github.com/consensys/go-polyfactor/pkg/util/source"
	"github.com/stretchr/testify/require"
)

func Test_Lexer_01(t *testing.T) {
	checkLexer(t, "", 0, Token{END_OF, source.NewSpan(0, 0)})
}

func Test_Lexer_02(t *testing.T) {
	checkLexer(t, "(", 0,
		Token{LBRACE, source.NewSpan(0, 1)},
		Token{END_OF, source.NewSpan(1, 1)})
}

func Test_Lexer_03(t *testing.T) {
	checkLexer(t, "( )", 0,
		Token{LBRACE, source.NewSpan(0, 1)},
		Token{RBRACE, source.NewSpan(2, 3)},
		Token{END_OF, source.NewSpan(3, 3)})
}

func Test_Lexer_04(t *testing.T) {
	checkLexer(t, "(90)", 0,
		Token{LBRACE, source.NewSpan(0, 1)},
		Token{NUMBER, source.NewSpan(1, 3)},
		Token{RBRACE, source.NewSpan(3, 4)},
		Token{END_OF, source.NewSpan(4, 4)})
}

func Test_Lexer_05(t *testing.T) {
	checkLexer(t, "12 x", 0,
		Token{NUMBER, source.NewSpan(0, 2)},
		Token{IDENT, source.NewSpan(3, 4)},
		Token{END_OF, source.NewSpan(4, 4)})
}

func Test_Lexer_06(t *testing.T) {
	checkLexer(t, "x1 ^", 1,
		Token{IDENT, source.NewSpan(0, 2)})
}

func Test_Scanner_01(t *testing.T) {
	rule := Unit('a', 'b')
	require.Equal(t, uint(2), rule([]rune("abc")))
	require.Equal(t, uint(0), rule([]rune("acb")))
	require.Equal(t, uint(0), rule([]rune("a")))
}

func Test_Scanner_02(t *testing.T) {
	require.Equal(t, uint(3), number([]rune("123x")))
	require.Equal(t, uint(0), number([]rune("x123")))
	require.Equal(t, uint(2), ident([]rune("ab+")))
}

// ==================================================================
// Framework
// ==================================================================

const (
	END_OF uint = iota
	WSPACE
	LBRACE
	RBRACE
	NUMBER
	IDENT
)

var whitespace = Many(Or(Unit(' '), Unit('\t')))

var number = Many(Within('0', '9'))

var ident = And(Within('a', 'z'), Many(Or(Within('a', 'z'), Within('0', '9'))))

var rules = []Rule[rune]{
	NewRule(Unit('('), LBRACE),
	NewRule(Unit(')'), RBRACE),
	NewRule(whitespace, WSPACE),
	NewRule(number, NUMBER),
	NewRule(ident, IDENT),
	NewRule(Eof[rune](), END_OF),
}

func checkLexer(t *testing.T, input string, remainder uint, expected ...Token) {
	var (
		items  = []rune(input)
		lexer  = NewLexer(items, rules...)
		tokens = lexer.Collect(WSPACE)
	)
	//
	require.Equal(t, expected, tokens)
	require.Equal(t, remainder, lexer.Remaining())
}
