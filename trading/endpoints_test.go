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

package trading

import (
	"context"
	"net/url"
	"testing"
	"time"

	"github.com/stockparfait/alpaca"

	. "github.com/smartystreets/goconvey/convey"
)

func testClient(server *alpaca.TestServer) *alpaca.Client {
	info, _ := alpaca.NewApiInfo("testkey", "testsecret", server.URL())
	return alpaca.NewClient(info, alpaca.WithHTTPClient(server.Client()))
}

func TestEndpoints(t *testing.T) {
	t.Parallel()

	Convey("GetCalendar works correctly", t, func() {
		server := alpaca.NewTestServer()
		defer server.Close()
		ctx := context.Background()
		client := testClient(server)

		Convey("retrieves open and close times for a date range", func() {
			server.ResponseBody = []string{`[
  {"date": "2020-04-06", "open": "09:30", "close": "16:00"},
  {"date": "2020-04-07", "open": "09:30", "close": "16:00"}
]`}
			req := CalendarRequest{Start: NewDate(2020, 4, 6), End: NewDate(2020, 4, 8)}
			calendar, err := alpaca.Issue(ctx, client, GetCalendar, req)
			So(err, ShouldBeNil)
			So(calendar, ShouldResemble, []OpenClose{
				{NewDate(2020, 4, 6), NewTimeOfDay(9, 30), NewTimeOfDay(16, 0)},
				{NewDate(2020, 4, 7), NewTimeOfDay(9, 30), NewTimeOfDay(16, 0)},
			})
			So(server.RequestPath, ShouldEqual, "/v2/calendar")
			So(server.RequestQuery, ShouldResemble, url.Values{
				"start": []string{"2020-04-06"},
				"end":   []string{"2020-04-08"},
			})
		})

		Convey("requires both dates before any request", func() {
			_, err := alpaca.Issue(ctx, client, GetCalendar,
				CalendarRequest{Start: NewDate(2020, 4, 6)})
			_, ok := err.(*alpaca.ConversionError)
			So(ok, ShouldBeTrue)
			So(server.NumRequests, ShouldEqual, 0)
		})
	})

	Convey("GetClock works correctly", t, func() {
		server := alpaca.NewTestServer()
		defer server.Close()
		client := testClient(server)

		server.ResponseBody = []string{`{
  "timestamp": "2022-04-28T14:07:04.0031-04:00",
  "is_open": true,
  "next_open": "2022-04-29T09:30:00-04:00",
  "next_close": "2022-04-28T16:00:00-04:00"
}`}
		clock, err := alpaca.Issue(context.Background(), client, GetClock, ClockRequest{})
		So(err, ShouldBeNil)
		So(clock.IsOpen, ShouldBeTrue)
		So(clock.NextClose.Sub(clock.Timestamp) < 2*time.Hour, ShouldBeTrue)
		So(server.RequestPath, ShouldEqual, "/v2/clock")
	})

	Convey("GetAsset works correctly", t, func() {
		server := alpaca.NewTestServer()
		defer server.Close()
		ctx := context.Background()
		client := testClient(server)

		Convey("retrieves a known asset", func() {
			server.ResponseBody = []string{`{
  "id": "904837e3-3b76-47ec-b432-046db621571b",
  "class": "us_equity",
  "exchange": "NASDAQ",
  "symbol": "AAPL",
  "name": "Apple Inc. Common Stock",
  "status": "active",
  "tradable": true,
  "fractionable": true
}`}
			asset, err := alpaca.Issue(ctx, client, GetAsset, AssetRequest{Symbol: "AAPL"})
			So(err, ShouldBeNil)
			So(asset.Symbol, ShouldEqual, "AAPL")
			So(asset.Exchange, ShouldEqual, "NASDAQ")
			So(asset.Tradable, ShouldBeTrue)
			So(server.RequestPath, ShouldEqual, "/v2/assets/AAPL")
		})

		Convey("an unknown symbol is an asset not found error", func() {
			server.ResponseBody = []string{
				`{"code": 40410000, "message": "asset not found"}`}
			server.ResponseStatus = []int{404}
			_, err := alpaca.Issue(ctx, client, GetAsset, AssetRequest{Symbol: "NOPE"})
			epErr, ok := err.(*alpaca.EndpointError)
			So(ok, ShouldBeTrue)
			So(epErr.Kind, ShouldEqual, ErrKindAssetNotFound)
			So(epErr.Status, ShouldEqual, 404)
			So(epErr.Payload.Code, ShouldEqual, 40410000)
		})
	})

	Convey("GetAssets works correctly", t, func() {
		server := alpaca.NewTestServer()
		defer server.Close()
		client := testClient(server)

		server.ResponseBody = []string{`[
  {"symbol": "AAPL", "status": "active", "tradable": true},
  {"symbol": "TSLA", "status": "active", "tradable": true}
]`}
		assets, err := alpaca.Issue(context.Background(), client, GetAssets,
			AssetsRequest{Status: "active", Class: "us_equity"})
		So(err, ShouldBeNil)
		So(len(assets), ShouldEqual, 2)
		So(server.RequestQuery, ShouldResemble, url.Values{
			"status":      []string{"active"},
			"asset_class": []string{"us_equity"},
		})
	})
}
