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

package table

import (
	"bytes"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

type TestRow struct {
	Symbol string
	Price  string
}

func (r TestRow) CSV() []string { return []string{r.Symbol, r.Price} }

func TestTable(t *testing.T) {
	t.Parallel()

	Convey("Table methods work", t, func() {
		tbl := NewTable("Symbol", "Price")
		tbl.AddRow(TestRow{"AAPL", "176.69"}, TestRow{"T", "19.25"})
		headless := NewTable()
		headless.AddRow(TestRow{"AAPL", "176.69"})

		Convey("WriteCSV", func() {
			var buf bytes.Buffer
			So(tbl.WriteCSV(&buf, Params{}), ShouldBeNil)
			So("\n"+buf.String(), ShouldEqual, `
Symbol,Price
AAPL,176.69
T,19.25
`)
		})

		Convey("WriteCSV without a header", func() {
			var buf bytes.Buffer
			So(headless.WriteCSV(&buf, Params{}), ShouldBeNil)
			So("\n"+buf.String(), ShouldEqual, `
AAPL,176.69
`)
		})

		Convey("WriteCSV with a row limit", func() {
			var buf bytes.Buffer
			So(tbl.WriteCSV(&buf, Params{Rows: 1, NoHeader: true}), ShouldBeNil)
			So("\n"+buf.String(), ShouldEqual, `
AAPL,176.69
`)
		})

		Convey("WriteText aligns columns", func() {
			var buf bytes.Buffer
			So(tbl.WriteText(&buf, Params{}), ShouldBeNil)
			So("\n"+buf.String(), ShouldEqual, `
Symbol |  Price
------ | ------
  AAPL | 176.69
     T |  19.25
`)
		})

		Convey("WriteText rejects ragged rows", func() {
			ragged := NewTable("One")
			ragged.AddRow(TestRow{"AAPL", "176.69"})
			var buf bytes.Buffer
			So(ragged.WriteText(&buf, Params{}), ShouldNotBeNil)
		})
	})
}
