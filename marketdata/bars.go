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

package marketdata

import (
	"fmt"
	"net/url"
	"time"

	"github.com/stockparfait/alpaca"
	"github.com/stockparfait/errors"
)

// TimeFrame is the aggregation window of a bar.
type TimeFrame string

// Values for TimeFrame.
const (
	TimeFrameMinute = TimeFrame("1Min")
	TimeFrameHour   = TimeFrame("1Hour")
	TimeFrameDay    = TimeFrame("1Day")
)

// BarsRequest is the request of the GetBars endpoint.
type BarsRequest struct {
	Symbol string
	Start  time.Time
	End    time.Time
	// TimeFrame of the bars; TimeFrameDay when empty.
	TimeFrame TimeFrame
	// Limit is the maximum number of bars returned in one page, in
	// [1..MaxLimit]. 0 means the server default of 1000.
	Limit     int
	PageToken string
	Feed      Feed
}

// WithPageToken returns a copy of the request with the page token set.
func (r BarsRequest) WithPageToken(token string) BarsRequest {
	r.PageToken = token
	return r
}

func (r BarsRequest) values() (url.Values, error) {
	if r.Symbol == "" {
		return nil, errors.Reason("symbol is empty")
	}
	if r.Limit < 0 || r.Limit > MaxLimit {
		return nil, errors.Reason("limit [%d] must be in [0..%d]", r.Limit, MaxLimit)
	}
	if err := r.Feed.check(); err != nil {
		return nil, err
	}
	timeframe := r.TimeFrame
	if timeframe == "" {
		timeframe = TimeFrameDay
	}
	switch timeframe {
	case TimeFrameMinute, TimeFrameHour, TimeFrameDay:
	default:
		return nil, errors.Reason("invalid timeframe: '%s'", timeframe)
	}
	v := make(url.Values)
	v.Set("start", r.Start.UTC().Format(time.RFC3339))
	v.Set("end", r.End.UTC().Format(time.RFC3339))
	v.Set("timeframe", string(timeframe))
	if r.Limit != 0 {
		v.Set("limit", fmt.Sprintf("%d", r.Limit))
	}
	if r.PageToken != "" {
		v.Set("page_token", r.PageToken)
	}
	if r.Feed != "" {
		v.Set("feed", string(r.Feed))
	}
	return v, nil
}

// Bar is a single OHLC aggregate.
type Bar struct {
	Timestamp time.Time `json:"t"`
	Open      float64   `json:"o"`
	High      float64   `json:"h"`
	Low       float64   `json:"l"`
	Close     float64   `json:"c"`
	Volume    uint64    `json:"v"`
}

// Bars is one page of bars as returned by the API.
type Bars struct {
	Bars          []Bar  `json:"bars"`
	Symbol        string `json:"symbol"`
	NextPageToken string `json:"next_page_token"`
}

// NextPage implements alpaca.Paged.
func (b Bars) NextPage() string { return b.NextPageToken }

// GetBars is the GET /v2/stocks/{symbol}/bars endpoint retrieving
// historical OHLC bars for one symbol.
var GetBars = alpaca.Endpoint[BarsRequest, Bars]{
	Name:    "get bars",
	BaseURL: func() string { return URL },
	Path: func(req BarsRequest) string {
		return "/v2/stocks/" + req.Symbol + "/bars"
	},
	Query: func(req BarsRequest) (url.Values, error) {
		return req.values()
	},
	Errors: []alpaca.ErrorMapping{
		alpaca.MapAPIError(422, ErrKindInvalidInput),
	},
}
