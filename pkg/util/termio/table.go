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
package termio

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// TablePrinter is useful for printing tables to the terminal.
type TablePrinter struct {
	widths []uint
	left   []bool
	rows   [][]string
}

// NewTablePrinter constructs a new table with given dimensions.
func NewTablePrinter(width uint, height uint) *TablePrinter {
	widths := make([]uint, width)
	left := make([]bool, width)
	rows := make([][]string, height)
	// Construct the table
	for i := uint(0); i < height; i++ {
		rows[i] = make([]string, width)
	}

	return &TablePrinter{widths, left, rows}
}

// Set the contents of a given cell in this table
func (p *TablePrinter) Set(col uint, row uint, val string) {
	p.widths[col] = max(p.widths[col], cellWidth(val))
	p.rows[row][col] = val
}

// Get the contents of a given cell in this table
func (p *TablePrinter) Get(col uint, row uint) string {
	return p.rows[row][col]
}

// Height returns the height of this table.
func (p *TablePrinter) Height() uint {
	return uint(len(p.rows))
}

// Width returns the total number of characters occupied by a row of this table.
func (p *TablePrinter) Width() uint {
	var total uint
	//
	for _, w := range p.widths {
		// one space before and " |" after each cell
		total += w + 3
	}
	//
	return total
}

// AlignLeft determines whether the contents of a given column are left aligned
// (rather than the default of right aligned).
func (p *TablePrinter) AlignLeft(col uint, enable bool) {
	p.left[col] = enable
}

// SetRow sets the contents of an entire row in this table
func (p *TablePrinter) SetRow(row uint, vals ...string) {
	if len(vals) != len(p.widths) {
		panic("incorrect number of columns")
	}
	// Update column widths
	for i := 0; i < len(p.widths); i++ {
		p.widths[i] = max(p.widths[i], cellWidth(vals[i]))
	}
	// Done
	p.rows[row] = vals
}

// SetMaxWidths puts an upper bound on the width of any column.
func (p *TablePrinter) SetMaxWidths(width uint) {
	for i := uint(0); i < uint(len(p.widths)); i++ {
		p.SetMaxWidth(i, width)
	}
}

// SetMaxWidth puts an upper bound on the width of any column.  Widths below
// three are not permitted, since that leaves no room for truncated text.
func (p *TablePrinter) SetMaxWidth(col uint, width uint) {
	p.widths[col] = min(p.widths[col], max(width, 3))
}

// Print the table to stdout.
func (p *TablePrinter) Print() {
	for _, line := range p.Lines() {
		fmt.Println(line)
	}
}

// Write the table to a given writer.
func (p *TablePrinter) Write(w io.Writer) error {
	for _, line := range p.Lines() {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	//
	return nil
}

// Lines renders each row of the table, truncating any cell which is wider than
// its column.
func (p *TablePrinter) Lines() []string {
	lines := make([]string, len(p.rows))
	//
	for i, row := range p.rows {
		var builder strings.Builder
		//
		for j, col := range row {
			jth := col
			jth_width := int(p.widths[j])
			// Print data
			if int(cellWidth(col)) > jth_width {
				jth = string([]rune(col)[0:jth_width-2]) + ".."
			}
			//
			padding := strings.Repeat(" ", jth_width-int(cellWidth(jth)))
			//
			builder.WriteString(" ")
			//
			if p.left[j] {
				builder.WriteString(jth + padding)
			} else {
				builder.WriteString(padding + jth)
			}

			builder.WriteString(" |")
		}
		//
		lines[i] = builder.String()
	}
	//
	return lines
}

func cellWidth(val string) uint {
	return uint(utf8.RuneCountInString(val))
}
