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

// TradesRequest is the request of the GetTrades endpoint.
type TradesRequest struct {
	// Symbol for which to retrieve market data. Appears in the URL path, not
	// in the query.
	Symbol string
	// Start filters trades equal to or after this time.
	Start time.Time
	// End filters trades equal to or before this time.
	End time.Time
	// Limit is the maximum number of trades returned in one page, in
	// [1..MaxLimit]. 0 means the server default of 1000.
	Limit int
	// PageToken continues a paginated listing where the previous page left
	// off. Normally set by the page iterator, not by hand.
	PageToken string
	// Feed to pull the data from.
	Feed Feed
}

// WithPageToken returns a copy of the request with the page token set.
func (r TradesRequest) WithPageToken(token string) TradesRequest {
	r.PageToken = token
	return r
}

func (r TradesRequest) values() (url.Values, error) {
	if r.Symbol == "" {
		return nil, errors.Reason("symbol is empty")
	}
	if r.Limit < 0 || r.Limit > MaxLimit {
		return nil, errors.Reason("limit [%d] must be in [0..%d]", r.Limit, MaxLimit)
	}
	if err := r.Feed.check(); err != nil {
		return nil, err
	}
	v := make(url.Values)
	v.Set("start", r.Start.UTC().Format(time.RFC3339))
	v.Set("end", r.End.UTC().Format(time.RFC3339))
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

// Trade is a single market data trade.
type Trade struct {
	// Timestamp in RFC-3339 format with nanosecond precision.
	Timestamp time.Time `json:"t"`
	// Exchange where the trade happened.
	Exchange string  `json:"x"`
	Price    float64 `json:"p"`
	Size     uint64  `json:"s"`
	TradeID  uint64  `json:"i"`
}

// Trades is one page of trades as returned by the API. The server may
// return a JSON null for an empty trade list.
type Trades struct {
	Trades        []Trade `json:"trades"`
	Symbol        string  `json:"symbol"`
	NextPageToken string  `json:"next_page_token"`
}

// NextPage implements alpaca.Paged.
func (t Trades) NextPage() string { return t.NextPageToken }

// GetTrades is the GET /v2/stocks/{symbol}/trades endpoint retrieving
// historical trades for one symbol.
var GetTrades = alpaca.Endpoint[TradesRequest, Trades]{
	Name:    "get trades",
	BaseURL: func() string { return URL },
	Path: func(req TradesRequest) string {
		return "/v2/stocks/" + req.Symbol + "/trades"
	},
	Query: func(req TradesRequest) (url.Values, error) {
		return req.values()
	},
	Errors: []alpaca.ErrorMapping{
		alpaca.MapAPIError(422, ErrKindInvalidInput),
	},
}
