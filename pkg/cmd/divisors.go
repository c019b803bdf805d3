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

	"github.com/consensys/go-polyfactor/pkg/util"
	"github.com/consensys/go-polyfactor/pkg/util/math"
	"github.com/spf13/cobra"
)

// divisorsCmd represents the divisors command
var divisorsCmd = &cobra.Command{
	Use:   "divisors [flags] n",
	Short: "List the positive divisors of an integer.",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		n, ok := new(big.Int).SetString(args[0], 10)
		if !ok {
			fmt.Printf("invalid integer \"%s\"\n", args[0])
			os.Exit(2)
		} else if n.Sign() == 0 {
			fmt.Println("every integer divides zero")
			os.Exit(2)
		}
		//
		stats := util.NewPerfStats()
		//
		if GetFlag(cmd, "primes") {
			fmt.Println(formatPrimePowers(math.Factorise(n)))
		} else {
			fmt.Println(formatDivisors(math.Divisors(n)))
		}
		//
		stats.Log("Divisor enumeration")
	},
}

func formatDivisors(divisors []*big.Int) string {
	items := make([]string, len(divisors))
	//
	for i, d := range divisors {
		items[i] = d.String()
	}
	//
	return strings.Join(items, " ")
}

func formatPrimePowers(factors []math.PrimePower) string {
	if len(factors) == 0 {
		return "1"
	}
	//
	items := make([]string, len(factors))
	//
	for i, f := range factors {
		if f.Exponent == 1 {
			items[i] = f.Prime.String()
		} else {
			items[i] = fmt.Sprintf("%s^%d", f.Prime, f.Exponent)
		}
	}
	//
	return strings.Join(items, " * ")
}

func init() {
	rootCmd.AddCommand(divisorsCmd)
	divisorsCmd.Flags().Bool("primes", false, "show the prime factorisation instead")
}
