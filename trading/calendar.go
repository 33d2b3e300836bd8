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
	"net/url"

	"github.com/stockparfait/alpaca"
	"github.com/stockparfait/errors"
)

// CalendarRequest is the request of the GetCalendar endpoint.
type CalendarRequest struct {
	// Start is the inclusive start date of the range.
	Start Date
	// End is the exclusive end date of the range. NOTE: the service
	// documentation claims that the end date is inclusive. It is not.
	End Date
}

// OpenClose is the market open and close times for a specific date.
type OpenClose struct {
	Date  Date      `json:"date"`
	Open  TimeOfDay `json:"open"`
	Close TimeOfDay `json:"close"`
}

// GetCalendar is the GET /v2/calendar endpoint retrieving the market
// calendar for a range of dates.
var GetCalendar = alpaca.Endpoint[CalendarRequest, []OpenClose]{
	Name: "get calendar",
	Path: func(CalendarRequest) string { return "/v2/calendar" },
	Query: func(req CalendarRequest) (url.Values, error) {
		if req.Start.IsZero() || req.End.IsZero() {
			return nil, errors.Reason("both start and end dates must be set")
		}
		v := make(url.Values)
		v.Set("start", req.Start.String())
		v.Set("end", req.End.String())
		return v, nil
	},
}
