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

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stockparfait/alpaca"
	"github.com/stockparfait/alpaca/marketdata"
	"github.com/stockparfait/logging"
	"github.com/stockparfait/testutil"

	. "github.com/smartystreets/goconvey/convey"
)

func TestMain(t *testing.T) {
	// No t.Parallel(): the test overwrites the market data URL.

	tmpdir, tmpdirErr := os.MkdirTemp("", "test_alpaca_trades")
	defer os.RemoveAll(tmpdir)

	Convey("Setup succeeded", t, func() {
		So(tmpdirErr, ShouldBeNil)
	})

	Convey("parseFlags", t, func() {
		flags, err := parseFlags([]string{
			"-config", "path/to/config", "-log-level", "warning", "-csv"})
		So(err, ShouldBeNil)
		So(flags.Config, ShouldEqual, "path/to/config")
		So(flags.LogLevel, ShouldEqual, logging.Warning)
		So(flags.CSV, ShouldBeTrue)

		_, err = parseFlags([]string{"-csv"})
		So(err, ShouldNotBeNil)
	})

	Convey("run works", t, func() {
		server := alpaca.NewTestServer()
		defer server.Close()
		defaultURL := marketdata.URL
		defer func() { marketdata.URL = defaultURL }()
		marketdata.URL = server.URL()

		ctx := logging.Use(context.Background(),
			logging.DefaultGoLogger(logging.Error))
		info, err := alpaca.NewApiInfo("testkey", "testsecret", server.URL())
		So(err, ShouldBeNil)
		client := alpaca.NewClient(info, alpaca.WithHTTPClient(server.Client()))

		configFile := filepath.Join(tmpdir, "config.toml")
		So(testutil.WriteFile(configFile, `
symbols = ["AAPL"]
start = "2018-12-03T21:47:00Z"
end = "2018-12-03T21:48:00Z"
limit = 10
parallel = 1
`), ShouldBeNil)

		Convey("prints trades and summary as CSV", func() {
			server.ResponseBody = []string{`{
  "trades": [
    {"t": "2018-12-03T21:47:00Z", "x": "J", "p": 10, "s": 1, "i": 1},
    {"t": "2018-12-03T21:47:30Z", "x": "J", "p": 20, "s": 3, "i": 2}
  ],
  "symbol": "AAPL",
  "next_page_token": null
}`}
			flags, err := parseFlags([]string{"-config", configFile, "-csv"})
			So(err, ShouldBeNil)
			var buf bytes.Buffer
			So(run(ctx, flags, client, &buf), ShouldBeNil)
			So("\n"+buf.String(), ShouldEqual, `
Symbol,Time,Exchange,Price,Size,ID
AAPL,2018-12-03T21:47:00Z,J,10,1,1
AAPL,2018-12-03T21:47:30Z,J,20,3,2

Symbol,Trades,Pages,VWAP,StdDev,Volume
AAPL,2,1,17.5000,7.0711,4
`)
			So(server.RequestPath, ShouldEqual, "/v2/stocks/AAPL/trades")
		})

		Convey("prints only the summary as text", func() {
			server.ResponseBody = []string{`{
  "trades": [
    {"t": "2018-12-03T21:47:00Z", "x": "J", "p": 10, "s": 1, "i": 1},
    {"t": "2018-12-03T21:47:30Z", "x": "J", "p": 20, "s": 3, "i": 2}
  ],
  "symbol": "AAPL",
  "next_page_token": null
}`}
			flags, err := parseFlags([]string{"-config", configFile, "-summary-only"})
			So(err, ShouldBeNil)
			var buf bytes.Buffer
			So(run(ctx, flags, client, &buf), ShouldBeNil)
			So("\n"+buf.String(), ShouldEqual, `
Symbol | Trades | Pages |    VWAP | StdDev | Volume
------ | ------ | ----- | ------- | ------ | ------
  AAPL |      2 |     1 | 17.5000 | 7.0711 |      4
`)
		})

		Convey("fails when all symbols fail", func() {
			server.ResponseBody = []string{
				`{"code": 42210000, "message": "invalid symbol"}`}
			server.ResponseStatus = []int{422}
			flags, err := parseFlags([]string{"-config", configFile})
			So(err, ShouldBeNil)
			var buf bytes.Buffer
			So(run(ctx, flags, client, &buf), ShouldNotBeNil)
		})

		Convey("fails on a missing config file", func() {
			flags, err := parseFlags([]string{
				"-config", filepath.Join(tmpdir, "no-such-config.toml")})
			So(err, ShouldBeNil)
			var buf bytes.Buffer
			So(run(ctx, flags, client, &buf), ShouldNotBeNil)
		})
	})
}
