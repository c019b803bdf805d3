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
package algebra

// QQ is the field of rational numbers, and the default coefficient domain.
var QQ = Config{"QQ", "rational numbers (characteristic zero)"}

// GF_251 is a tiny prime field, mostly useful for testing.  Polynomials of
// degree 251 or more cannot be factored in it.
var GF_251 = Config{"GF_251", "prime field of order 251"}

// BLS12_377 is the scalar field of the BLS12-377 curve.
var BLS12_377 = Config{"BLS12_377", "scalar field of BLS12-377 (253-bit prime)"}

// CONFIGS determines the set of supported coefficient fields.
var CONFIGS = []Config{
	QQ,
	GF_251,
	BLS12_377,
}

// Config identifies a coefficient field which can be selected at runtime (e.g.
// from the command line).  Each config is mapped to a concrete instantiation of
// the generic algorithms by the caller.
type Config struct {
	// Name suitable for identifying the config.
	Name string
	// Short human-readable description.
	Description string
}

// GetConfig returns the configuration corresponding with the given name, or nil
// if no such config exists.
func GetConfig(name string) *Config {
	for i := range CONFIGS {
		if CONFIGS[i].Name == name {
			return &CONFIGS[i]
		}
	}
	//
	return nil
}
