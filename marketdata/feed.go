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

import "github.com/stockparfait/errors"

// Feed is the data feed to query. The default depends on the subscription:
// IEX for free accounts, SIP for unlimited ones.
type Feed string

// Values for Feed.
const (
	FeedIEX = Feed("iex") // Investors Exchange
	FeedSIP = Feed("sip") // Securities Information Processor, all US exchanges
	FeedOTC = Feed("otc") // over the counter exchanges
)

// check returns an error for a value outside of the closed set of feeds.
// The empty feed is valid and means the account's default.
func (f Feed) check() error {
	switch f {
	case "", FeedIEX, FeedSIP, FeedOTC:
		return nil
	}
	return errors.Reason("invalid feed: '%s'", f)
}
