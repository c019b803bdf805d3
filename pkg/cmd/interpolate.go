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
	"strings"

	"github.com/consensys/go-polyfactor/pkg/algebra"
	"github.com/consensys/go-polyfactor/pkg/algebra/bls12_377"
	"github.com/consensys/go-polyfactor/pkg/algebra/gf251"
	"github.com/consensys/go-polyfactor/pkg/algebra/qq"
	"github.com/consensys/go-polyfactor/pkg/poly"
	"github.com/consensys/go-polyfactor/pkg/util"
	"github.com/spf13/cobra"
)

// interpolateCmd represents the interpolate command
var interpolateCmd = &cobra.Command{
	Use:   "interpolate [flags] x:y ...",
	Short: "Construct the polynomial of least degree through a set of points.",
	Long: `Construct the unique polynomial of degree less than n through n given
	points, using Lagrange interpolation.  Each point is given as "x:y", where
	both coordinates are rational numbers such as "3" or "-1/2".`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		runFieldAgnosticCmd(cmd, args, interpolateCmds)
	},
}

// Available instances
var interpolateCmds = []FieldAgnosticCmd{
	{algebra.QQ, runInterpolateCmd[qq.Rat]},
	{algebra.GF_251, runInterpolateCmd[gf251.Element]},
	{algebra.BLS12_377, runInterpolateCmd[bls12_377.Element]},
}

func runInterpolateCmd[F algebra.FieldElement[F]](cmd *cobra.Command, args []string) {
	var variable = GetString(cmd, "var")
	//
	xs, ys, err := parsePoints[F](args)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	stats := util.NewPerfStats()
	p, err := poly.Interpolate(xs, ys)
	//
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	stats.Log("Interpolation")
	fmt.Println(formatPolynomial(p, variable))
}

// Parse a sequence of points of the form "x:y", embedding both coordinates into
// the given field.
func parsePoints[F algebra.FieldElement[F]](args []string) ([]F, []F, error) {
	var (
		xs = make([]F, len(args))
		ys = make([]F, len(args))
	)
	//
	for i, arg := range args {
		split := strings.Split(arg, ":")
		//
		if len(split) != 2 {
			return nil, nil, fmt.Errorf("malformed point \"%s\" (expected x:y)", arg)
		}
		//
		for j, coord := range split {
			r, err := qq.Parse(strings.TrimSpace(coord))
			if err != nil {
				return nil, nil, fmt.Errorf("malformed point \"%s\" (%s)", arg, err)
			}
			//
			v := fromRat[F](r)
			if !v.HasValue() {
				return nil, nil, fmt.Errorf("point \"%s\" undefined in chosen field", arg)
			}
			//
			if j == 0 {
				xs[i] = v.Unwrap()
			} else {
				ys[i] = v.Unwrap()
			}
		}
	}
	//
	return xs, ys, nil
}

func init() {
	rootCmd.AddCommand(interpolateCmd)
}
