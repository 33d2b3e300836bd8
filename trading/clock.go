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
	"time"

	"github.com/stockparfait/alpaca"
)

// ClockRequest is the (empty) request of the GetClock endpoint.
type ClockRequest struct{}

// Clock is the current market timestamp and session state.
type Clock struct {
	Timestamp time.Time `json:"timestamp"`
	IsOpen    bool      `json:"is_open"`
	NextOpen  time.Time `json:"next_open"`
	NextClose time.Time `json:"next_close"`
}

// GetClock is the GET /v2/clock endpoint retrieving the market clock.
var GetClock = alpaca.Endpoint[ClockRequest, Clock]{
	Name: "get clock",
	Path: func(ClockRequest) string { return "/v2/clock" },
}
