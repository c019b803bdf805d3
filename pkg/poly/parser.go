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
	"math/big"
	"slices"

	"github.com/consensys/go-polyfactor/pkg/algebra/qq"
	"github.com/consensys/go-polyfactor/pkg/util/source"
	"github.com/consensys/go-polyfactor/pkg/util/source/lex"
)

// MAX_EXPONENT bounds the exponents accepted by the parser, which protects
// against inputs (e.g. "x^999999999") whose expansion would be unreasonably
// large.
const MAX_EXPONENT = 65536

// Parse a polynomial with rational coefficients in a given variable from an
// infix expression, such as "3x^2 - (x+1)*(x-1)/2".  Supported are integer
// literals, the variable, parentheses, addition, subtraction, negation,
// multiplication (explicit or by juxtaposition), exponentiation by a constant,
// and division by a non-zero constant.
func Parse(input string, variable string) (Polynomial[qq.Rat], []source.SyntaxError) {
	var (
		empty   Polynomial[qq.Rat]
		srcfile = source.NewSourceFile("expr", input)
		lexer   = lex.NewLexer(srcfile.Contents(), rules...)
		tokens  = lexer.Collect(WHITESPACE)
	)
	// Check whether anything was left (if so this is an error)
	if lexer.Remaining() != 0 {
		start, end := lexer.Index(), lexer.Index()+lexer.Remaining()
		err := srcfile.SyntaxError(source.NewSpan(int(start), int(end)), "unknown text encountered")
		//
		return empty, []source.SyntaxError{*err}
	}
	//
	parser := &parser{variable, srcfile, tokens, 0}
	//
	p, errs := parser.parseExpr()
	// Check all parsed
	if len(errs) == 0 && !parser.follows(END_OF) {
		return empty, parser.syntaxErrors(parser.lookahead(), "unexpected token")
	}
	//
	return p, errs
}

// END_OF signals "end of file"
const END_OF uint = 0

// WHITESPACE signals whitespace
const WHITESPACE uint = 1

// LBRACE signals "left brace"
const LBRACE uint = 2

// RBRACE signals "right brace"
const RBRACE uint = 3

// NUMBER signals an integer number
const NUMBER uint = 4

// IDENTIFIER signals a variable.
const IDENTIFIER uint = 5

// ADD represents addition
const ADD uint = 6

// SUB represents subtraction (or negation)
const SUB uint = 7

// MUL represents multiplication
const MUL uint = 8

// DIV represents division by a constant
const DIV uint = 9

// POW represents exponentiation
const POW uint = 10

var whitespace = lex.Many(lex.Or(lex.Unit(' '), lex.Unit('\t'), lex.Unit('\n')))

var number = lex.Many(lex.Within('0', '9'))

var identifierStart = lex.Or(
	lex.Unit('_'),
	lex.Within('a', 'z'),
	lex.Within('A', 'Z'))

var identifierRest = lex.Many(lex.Or(
	lex.Unit('_'),
	lex.Unit('\''),
	lex.Within('0', '9'),
	lex.Within('a', 'z'),
	lex.Within('A', 'Z')))

var identifier = lex.And(identifierStart, identifierRest)

var rules = []lex.Rule[rune]{
	lex.NewRule(lex.Unit('('), LBRACE),
	lex.NewRule(lex.Unit(')'), RBRACE),
	lex.NewRule(lex.Unit('+'), ADD),
	lex.NewRule(lex.Unit('-'), SUB),
	lex.NewRule(lex.Unit('*', '*'), POW),
	lex.NewRule(lex.Unit('*'), MUL),
	lex.NewRule(lex.Unit('/'), DIV),
	lex.NewRule(lex.Unit('^'), POW),
	lex.NewRule(whitespace, WHITESPACE),
	lex.NewRule(number, NUMBER),
	lex.NewRule(identifier, IDENTIFIER),
	lex.NewRule(lex.Eof[rune](), END_OF),
}

type parser struct {
	variable string
	srcfile  *source.File
	tokens   []lex.Token
	// Position within the tokens
	index int
}

// expr ::= term (('+' | '-') term)*
func (p *parser) parseExpr() (Polynomial[qq.Rat], []source.SyntaxError) {
	lhs, errs := p.parseTerm()
	//
	for len(errs) == 0 && p.follows(ADD, SUB) {
		var (
			op  = p.expect(p.lookahead().Kind)
			rhs Polynomial[qq.Rat]
		)
		//
		if rhs, errs = p.parseTerm(); len(errs) == 0 && op.Kind == ADD {
			lhs = lhs.Add(rhs)
		} else if len(errs) == 0 {
			lhs = lhs.Sub(rhs)
		}
	}
	//
	return lhs, errs
}

// term ::= unary (('*' | '/')? unary)*
func (p *parser) parseTerm() (Polynomial[qq.Rat], []source.SyntaxError) {
	lhs, errs := p.parseUnary()
	//
	for len(errs) == 0 && p.follows(MUL, DIV, LBRACE, NUMBER, IDENTIFIER) {
		var (
			op  = p.lookahead()
			rhs Polynomial[qq.Rat]
		)
		// Juxtaposition (e.g. "2x") signals implicit multiplication
		if op.Kind == MUL || op.Kind == DIV {
			p.expect(op.Kind)
		}
		//
		start := p.lookahead()
		//
		if rhs, errs = p.parseUnary(); len(errs) != 0 {
			break
		} else if op.Kind != DIV {
			lhs = lhs.Mul(rhs)
		} else if rhs.IsZero() {
			return lhs, p.syntaxErrors(start, "division by zero")
		} else if rhs.Degree() != 0 {
			return lhs, p.syntaxErrors(start, "division by non-constant expression")
		} else {
			inv := rhs.lead().Inverse().Unwrap()
			lhs = lhs.Scale(inv)
		}
	}
	//
	return lhs, errs
}

// unary ::= ('-' | '+') unary | power
func (p *parser) parseUnary() (Polynomial[qq.Rat], []source.SyntaxError) {
	switch {
	case p.match(SUB):
		arg, errs := p.parseUnary()
		return arg.Neg(), errs
	case p.match(ADD):
		return p.parseUnary()
	default:
		return p.parsePower()
	}
}

// power ::= atom ('^' number)?
func (p *parser) parsePower() (Polynomial[qq.Rat], []source.SyntaxError) {
	base, errs := p.parseAtom()
	//
	if len(errs) != 0 || !p.match(POW) {
		return base, errs
	} else if !p.follows(NUMBER) {
		return base, p.syntaxErrors(p.lookahead(), "expected exponent")
	}
	//
	token := p.expect(NUMBER)
	exponent := p.number(token)
	//
	if !exponent.IsUint64() || exponent.Uint64() > MAX_EXPONENT {
		return base, p.syntaxErrors(token, fmt.Sprintf("exponent exceeds %d", MAX_EXPONENT))
	}
	//
	return base.Pow(uint(exponent.Uint64())), nil
}

// atom ::= number | variable | '(' expr ')'
func (p *parser) parseAtom() (Polynomial[qq.Rat], []source.SyntaxError) {
	var (
		empty Polynomial[qq.Rat]
		token = p.lookahead()
	)
	//
	switch token.Kind {
	case LBRACE:
		return p.parseBracketedExpr()
	case IDENTIFIER:
		return p.parseVariable()
	case NUMBER:
		p.expect(NUMBER)
		return Constant(qq.FromBig(new(big.Rat).SetInt(p.number(token)))), nil
	case END_OF:
		return empty, p.syntaxErrors(token, "unexpected end of expression")
	}
	//
	return empty, p.syntaxErrors(token, "unknown expression")
}

func (p *parser) parseBracketedExpr() (Polynomial[qq.Rat], []source.SyntaxError) {
	p.expect(LBRACE)
	//
	expr, errs := p.parseExpr()
	//
	if len(errs) == 0 && !p.match(RBRACE) {
		return expr, p.syntaxErrors(p.lookahead(), "expected ')'")
	}
	//
	return expr, errs
}

func (p *parser) parseVariable() (Polynomial[qq.Rat], []source.SyntaxError) {
	var (
		id   = p.expect(IDENTIFIER)
		name = p.string(id)
	)
	//
	if name != p.variable {
		return Polynomial[qq.Rat]{}, p.syntaxErrors(id, fmt.Sprintf("unknown variable (expected \"%s\")", p.variable))
	}
	//
	return X[qq.Rat](), nil
}

// Get the text representing the given token as a string.
func (p *parser) string(token lex.Token) string {
	start, end := token.Span.Start(), token.Span.End()
	return string(p.srcfile.Contents()[start:end])
}

// Get the (decimal) integer represented by a given token.
func (p *parser) number(token lex.Token) *big.Int {
	var number big.Int
	//
	number.SetString(p.string(token), 10)
	//
	return &number
}

// Follows checks whether one of the given token kinds is next.
func (p *parser) follows(options ...uint) bool {
	return slices.Contains(options, p.lookahead().Kind)
}

// Lookahead returns the next token.  This must exist because EOF is always
// appended at the end of the token stream.
func (p *parser) lookahead() lex.Token {
	return p.tokens[p.index]
}

func (p *parser) expect(kind uint) lex.Token {
	if p.lookahead().Kind != kind {
		panic("internal failure")
	}
	//
	token := p.tokens[p.index]
	p.index++
	//
	return token
}

func (p *parser) match(kind uint) bool {
	if p.lookahead().Kind == kind {
		p.index++
		return true
	}
	//
	return false
}

func (p *parser) syntaxErrors(token lex.Token, msg string) []source.SyntaxError {
	return []source.SyntaxError{*p.srcfile.SyntaxError(token.Span, msg)}
}
