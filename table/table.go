// Copyright 2023 Stock Parfait

// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at

//     http://www.apache.org/licenses/LICENSE-2.0

// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package table renders rows of API results as aligned text or CSV, for
// use by the command line apps.
package table

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/stockparfait/errors"
)

// Row is a single printable table row.
type Row interface {
	CSV() []string // an encoding/csv compatible representation
}

// Table is an ordered collection of rows with an optional header.
type Table struct {
	Header []string // optional, may be nil
	Rows   []Row
}

// NewTable creates a Table with optional column headers. When present, the
// number of headers is expected to match the number of elements in each
// Row.
func NewTable(header ...string) *Table {
	return &Table{Header: header}
}

// AddRow appends one or more rows to the table.
func (t *Table) AddRow(rows ...Row) {
	t.Rows = append(t.Rows, rows...)
}

// Params configure text or CSV output.
type Params struct {
	Rows     int  // max. number of rows to write; 0 = unlimited (default)
	NoHeader bool // whether to skip the header; default - print it
}

// cells yields the header (unless suppressed) followed by the row cells,
// respecting the row limit.
func (t *Table) cells(p Params) [][]string {
	var res [][]string
	if !p.NoHeader && len(t.Header) > 0 {
		res = append(res, t.Header)
	}
	for i, r := range t.Rows {
		if p.Rows > 0 && i >= p.Rows {
			break
		}
		res = append(res, r.CSV())
	}
	return res
}

// WriteCSV writes the table to w in CSV format.
func (t *Table) WriteCSV(w io.Writer, p Params) error {
	cw := csv.NewWriter(w)
	if err := cw.WriteAll(t.cells(p)); err != nil {
		return errors.Annotate(err, "failed to write CSV rows")
	}
	return nil
}

// WriteText writes the table to w as column-aligned text. When the header
// is printed, it is separated from the data by a dashed line.
func (t *Table) WriteText(w io.Writer, p Params) error {
	rows := t.cells(p)
	var widths []int
	for _, row := range rows {
		if widths == nil {
			widths = make([]int, len(row))
		}
		if len(row) != len(widths) {
			return errors.Reason("row size [%d] != expected size [%d]",
				len(row), len(widths))
		}
		for i, cell := range row {
			if widths[i] < len(cell) {
				widths[i] = len(cell)
			}
		}
	}
	write := func(row []string) error {
		padded := make([]string, len(row))
		for i, cell := range row {
			padded[i] = fmt.Sprintf("%[2]*[1]s", cell, widths[i])
		}
		_, err := fmt.Fprintf(w, "%s\n", strings.Join(padded, " | "))
		return err
	}
	for i, row := range rows {
		if err := write(row); err != nil {
			return errors.Annotate(err, "failed to write row")
		}
		if i == 0 && !p.NoHeader && len(t.Header) > 0 {
			dashed := make([]string, len(widths))
			for j, width := range widths {
				dashed[j] = strings.Repeat("-", width)
			}
			if err := write(dashed); err != nil {
				return errors.Annotate(err, "failed to write header separator")
			}
		}
	}
	return nil
}
