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
package cmd

import (
	"fmt"
	"math/big"
	"os"
	"strings"

	"github.com/consensys/go-polyfactor/pkg/algebra"
	"github.com/consensys/go-polyfactor/pkg/algebra/qq"
	"github.com/consensys/go-polyfactor/pkg/poly"
	"github.com/consensys/go-polyfactor/pkg/util"
	"github.com/consensys/go-polyfactor/pkg/util/source"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// GetFlag gets an expected flag, or exits if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetString gets an expected string, or exits if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetUint gets an expected unsigned int, or exits if an error arises.
func GetUint(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// FieldAgnosticCmd represents a command to be executed for a given field.
type FieldAgnosticCmd struct {
	Field    algebra.Config
	Function func(*cobra.Command, []string)
}

// Run a field agnostic top-level command.
func runFieldAgnosticCmd(cmd *cobra.Command, args []string, cmds []FieldAgnosticCmd) {
	var (
		fieldName = GetString(cmd, "field")
		// Field configuration
		config = algebra.GetConfig(fieldName)
	)
	// Sanity check
	if config == nil {
		fmt.Printf("unknown field \"%s\"\n", fieldName)
		os.Exit(3)
	}
	//
	log.Debugf("using field %s (%s)", config.Name, config.Description)
	// Find command to dispatch
	for _, c := range cmds {
		if c.Field == *config {
			c.Function(cmd, args)
			return
		}
	}
	//
	fmt.Printf("field %s unsupported for command '%s'\n", fieldName, cmd.Name())
	os.Exit(2)
}

// Parse polynomials given on the command line and embed them into the chosen
// coefficient field.  Syntax errors are reported, and cause the process to
// exit.
func parsePolynomials[F algebra.FieldElement[F]](variable string, args ...string) []poly.Polynomial[F] {
	var (
		polys = make([]poly.Polynomial[F], len(args))
		ok    = true
	)
	//
	for i, arg := range args {
		p, errs := poly.Parse(arg, variable)
		//
		for _, err := range errs {
			printSyntaxError(&err)
		}
		//
		if len(errs) > 0 {
			ok = false
		} else if q, err := embed[F](p); err != nil {
			fmt.Printf("%s: %s\n", arg, err)
			//
			ok = false
		} else {
			polys[i] = q
		}
	}
	//
	if !ok {
		os.Exit(2)
	}
	//
	return polys
}

// Embed a polynomial with rational coefficients into a given field.  This fails
// if some denominator vanishes in that field.
func embed[F algebra.FieldElement[F]](p poly.Polynomial[qq.Rat]) (poly.Polynomial[F], error) {
	var (
		coeffs = p.Coeffs()
		result = make([]F, len(coeffs))
	)
	//
	for i, c := range coeffs {
		v := fromRat[F](c)
		//
		if !v.HasValue() {
			return poly.Polynomial[F]{}, fmt.Errorf("coefficient %s undefined in chosen field", c)
		}
		//
		result[i] = v.Unwrap()
	}
	//
	return poly.New(result...), nil
}

// Map a rational number into a given field, returning None if its denominator
// vanishes in that field.
func fromRat[F algebra.FieldElement[F]](x qq.Rat) util.Option[F] {
	return algebra.Div(fromBig[F](x.Num().Big()), fromBig[F](x.Denom().Big()))
}

// Map an arbitrary integer into a given field by lifting it one byte at a time.
func fromBig[F algebra.FieldElement[F]](n *big.Int) F {
	var (
		acc  = algebra.Zero[F]()
		base = algebra.Lift[F](256)
	)
	// Bytes gives the big-endian magnitude
	for _, b := range n.Bytes() {
		acc = acc.Mul(base).Add(algebra.Lift[F](uint64(b)))
	}
	//
	if n.Sign() < 0 {
		return acc.Neg()
	}
	//
	return acc
}

// Format a polynomial in the conventional layout when its coefficients are
// rational, and generically otherwise.
func formatPolynomial[F algebra.FieldElement[F]](p poly.Polynomial[F], variable string) string {
	if q, ok := any(p).(poly.Polynomial[qq.Rat]); ok {
		return poly.Format(q, variable)
	}
	//
	return p.Text(variable)
}

// Print a syntax error with appropriate highlighting.
func printSyntaxError(err *source.SyntaxError) {
	var (
		span   = err.Span()
		line   = err.FirstEnclosingLine()
		indent = max(0, span.Start()-line.Start())
		length = max(1, min(line.Length()-indent, span.Length()))
	)
	// Print error + line number
	fmt.Printf("%s:%d:%d-%d %s\n", err.SourceFile().Filename(), line.Number(), span.Start(), span.End(), err.Message())
	// Print line
	fmt.Println(line.String())
	// Print indent
	fmt.Print(strings.Repeat(" ", indent))
	// Print highlight
	fmt.Println(strings.Repeat("^", length))
}

// Determine the width of the terminal attached to stdout, or a default if there
// is none.
func terminalWidth() uint {
	fd := int(os.Stdout.Fd())
	//
	if term.IsTerminal(fd) {
		if width, _, err := term.GetSize(fd); err == nil && width > 0 {
			return uint(width)
		}
	}
	//
	return 80
}
