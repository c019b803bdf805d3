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
	"os"

	"github.com/consensys/go-polyfactor/pkg/algebra"
	"github.com/consensys/go-polyfactor/pkg/algebra/bls12_377"
	"github.com/consensys/go-polyfactor/pkg/algebra/gf251"
	"github.com/consensys/go-polyfactor/pkg/algebra/qq"
	"github.com/consensys/go-polyfactor/pkg/poly"
	"github.com/spf13/cobra"
)

// divideCmd represents the divide command
var divideCmd = &cobra.Command{
	Use:   "divide [flags] dividend divisor",
	Short: "Divide one polynomial by another, giving quotient and remainder.",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 2 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		runFieldAgnosticCmd(cmd, args, divideCmds)
	},
}

// gcdCmd represents the gcd command
var gcdCmd = &cobra.Command{
	Use:   "gcd [flags] expression expression",
	Short: "Compute the greatest common divisor of two polynomials.",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 2 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		runFieldAgnosticCmd(cmd, args, gcdCmds)
	},
}

// deriveCmd represents the derive command
var deriveCmd = &cobra.Command{
	Use:   "derive [flags] expression",
	Short: "Compute the formal derivative of a polynomial.",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		runFieldAgnosticCmd(cmd, args, deriveCmds)
	},
}

// Available instances
var divideCmds = []FieldAgnosticCmd{
	{algebra.QQ, runDivideCmd[qq.Rat]},
	{algebra.GF_251, runDivideCmd[gf251.Element]},
	{algebra.BLS12_377, runDivideCmd[bls12_377.Element]},
}

// Available instances
var gcdCmds = []FieldAgnosticCmd{
	{algebra.QQ, runGcdCmd[qq.Rat]},
	{algebra.GF_251, runGcdCmd[gf251.Element]},
	{algebra.BLS12_377, runGcdCmd[bls12_377.Element]},
}

// Available instances
var deriveCmds = []FieldAgnosticCmd{
	{algebra.QQ, runDeriveCmd[qq.Rat]},
	{algebra.GF_251, runDeriveCmd[gf251.Element]},
	{algebra.BLS12_377, runDeriveCmd[bls12_377.Element]},
}

func runDivideCmd[F algebra.FieldElement[F]](cmd *cobra.Command, args []string) {
	var (
		variable = GetString(cmd, "var")
		polys    = parsePolynomials[F](variable, args...)
	)
	//
	if polys[1].IsZero() {
		fmt.Println("division by zero polynomial")
		os.Exit(2)
	}
	//
	q, r := poly.DivRem(polys[0], polys[1])
	//
	fmt.Printf("quotient:  %s\n", formatPolynomial(q, variable))
	fmt.Printf("remainder: %s\n", formatPolynomial(r, variable))
}

func runGcdCmd[F algebra.FieldElement[F]](cmd *cobra.Command, args []string) {
	var (
		variable = GetString(cmd, "var")
		monic    = GetFlag(cmd, "monic")
		polys    = parsePolynomials[F](variable, args...)
		gcd      poly.Polynomial[F]
	)
	//
	if monic {
		gcd = poly.MonicGCD(polys[0], polys[1])
	} else {
		gcd = poly.GCD(polys[0], polys[1])
	}
	//
	fmt.Println(formatPolynomial(gcd, variable))
}

func runDeriveCmd[F algebra.FieldElement[F]](cmd *cobra.Command, args []string) {
	var (
		variable = GetString(cmd, "var")
		p        = parsePolynomials[F](variable, args[0])[0]
	)
	//
	fmt.Println(formatPolynomial(p.Derivative(), variable))
}

func init() {
	rootCmd.AddCommand(divideCmd)
	rootCmd.AddCommand(gcdCmd)
	rootCmd.AddCommand(deriveCmd)
	gcdCmd.Flags().Bool("monic", true, "normalise the result to be monic")
}
