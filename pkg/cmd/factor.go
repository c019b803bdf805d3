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

	"github.com/consensys/go-polyfactor/pkg/algebra"
	"github.com/consensys/go-polyfactor/pkg/algebra/bls12_377"
	"github.com/consensys/go-polyfactor/pkg/algebra/gf251"
	"github.com/consensys/go-polyfactor/pkg/algebra/qq"
	"github.com/consensys/go-polyfactor/pkg/factor"
	"github.com/consensys/go-polyfactor/pkg/poly"
	"github.com/consensys/go-polyfactor/pkg/util"
	"github.com/consensys/go-polyfactor/pkg/util/termio"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// factorCmd represents the factor command
var factorCmd = &cobra.Command{
	Use:   "factor [flags] expression",
	Short: "Factor a polynomial into square-free components.",
	Long: `Factor a polynomial into a leading coefficient and a list of monic
	square-free factors with their multiplicities, using Yun's algorithm.  With
	--full (rationals only) each square-free factor is further decomposed into
	irreducible factors.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		runFieldAgnosticCmd(cmd, args, factorCmds)
	},
}

// Available instances
var factorCmds = []FieldAgnosticCmd{
	{algebra.QQ, runFactorCmd[qq.Rat]},
	{algebra.GF_251, runFactorCmd[gf251.Element]},
	{algebra.BLS12_377, runFactorCmd[bls12_377.Element]},
}

func runFactorCmd[F algebra.FieldElement[F]](cmd *cobra.Command, args []string) {
	var (
		variable = GetString(cmd, "var")
		full     = GetFlag(cmd, "full")
		table    = GetFlag(cmd, "table")
		p        = parsePolynomials[F](variable, args[0])[0]
		stats    = util.NewPerfStats()
		result   factor.Factorization[F]
	)
	//
	if c, ok := any(algebra.Zero[F]()).(algebra.Characteristic); ok {
		if big.NewInt(int64(p.Degree())).Cmp(c.Characteristic()) >= 0 {
			fmt.Printf("degree %d too large for characteristic %s\n", p.Degree(), c.Characteristic())
			os.Exit(2)
		}
	}
	//
	if full {
		q, ok := any(p).(poly.Polynomial[qq.Rat])
		//
		if !ok {
			fmt.Printf("full factorization requires field %s\n", algebra.QQ.Name)
			os.Exit(2)
		}
		//
		result = any(factor.Irreducible(q)).(factor.Factorization[F])
		//
		stats.Log("Irreducible factorization")
	} else {
		result = factor.SquareFree(p)
		//
		stats.Log("Square-free factorization")
	}
	//
	log.Debugf("found %d factor(s) of %s", result.Len(), formatPolynomial(p, variable))
	//
	if table {
		printFactorTable(result, variable, terminalWidth())
	} else {
		fmt.Println(formatFactorization(result, variable))
	}
}

// Format a factorization in the conventional layout when its coefficients are
// rational, and generically otherwise.
func formatFactorization[F algebra.FieldElement[F]](f factor.Factorization[F], variable string) string {
	if q, ok := any(f).(factor.Factorization[qq.Rat]); ok {
		return factor.Format(q, variable)
	}
	//
	return f.Text(variable)
}

// Print a factorization as a table with one row per factor, where the factor
// column is truncated to fit a terminal of the given width.
func printFactorTable[F algebra.FieldElement[F]](f factor.Factorization[F], variable string, width uint) {
	factorTable(f, variable, width).Print()
}

const multiplicityHeader = "multiplicity"

func factorTable[F algebra.FieldElement[F]](f factor.Factorization[F], variable string, width uint) *termio.TablePrinter {
	var (
		factors = f.Factors()
		table   = termio.NewTablePrinter(2, uint(len(factors))+2)
	)
	//
	table.AlignLeft(1, true)
	table.SetRow(0, multiplicityHeader, "factor")
	table.SetRow(1, "", formatPolynomial(poly.Constant(f.LeadingCoeff()), variable))
	//
	for i, ith := range factors {
		table.SetRow(uint(i)+2, ith.Multiplicity.String(), formatPolynomial(ith.Poly, variable))
	}
	// Leave room for the multiplicity column, and the padding around both.
	if fixed := uint(len(multiplicityHeader)) + 6; width > fixed {
		table.SetMaxWidth(1, width-fixed)
	}
	//
	return table
}

func init() {
	rootCmd.AddCommand(factorCmd)
	factorCmd.Flags().Bool("full", false, "decompose into irreducible factors (rationals only)")
	factorCmd.Flags().Bool("table", false, "print factors as a table")
}
