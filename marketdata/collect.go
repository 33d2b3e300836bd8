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
	"context"
	"runtime"

	"github.com/stockparfait/alpaca"
	"github.com/stockparfait/errors"
	"github.com/stockparfait/iterator"
	"github.com/stockparfait/logging"
	"golang.org/x/exp/slices"
)

// SymbolTrades is the result of collecting all trade pages for one symbol.
// Err records a mid-pagination failure; the trades collected up to that
// point are kept.
type SymbolTrades struct {
	Symbol string
	Trades []Trade
	Pages  int
	Err    error
}

// collectSymbol drains the page iterator for a single symbol. Pages within
// one symbol are strictly sequential.
func collectSymbol(ctx context.Context, c *alpaca.Client, req TradesRequest) SymbolTrades {
	res := SymbolTrades{Symbol: req.Symbol}
	it := alpaca.Pages(ctx, c, GetTrades, req)
	var page Trades
	for {
		ok, err := it.Next(&page)
		if err != nil {
			res.Err = errors.Annotate(err, "failed to collect trades for %s", req.Symbol)
			return res
		}
		if !ok {
			res.Pages = it.PageCount()
			return res
		}
		res.Trades = append(res.Trades, page.Trades...)
	}
}

// CollectTrades downloads all trade pages for each of the symbols,
// querying up to parallel symbols at a time (2*NumCPU when parallel <= 0).
// The request's Symbol and PageToken fields are ignored. Results are
// sorted by symbol; per-symbol failures are recorded in the result rather
// than aborting the whole collection.
func CollectTrades(ctx context.Context, c *alpaca.Client, req TradesRequest, symbols []string, parallel int) []SymbolTrades {
	if parallel <= 0 {
		parallel = 2 * runtime.NumCPU()
	}
	f := func(symbol string) SymbolTrades {
		r := req
		r.Symbol = symbol
		r.PageToken = ""
		res := collectSymbol(ctx, c, r)
		if res.Err != nil {
			logging.Warningf(ctx, "failed to collect %s: %s", symbol, res.Err.Error())
		}
		return res
	}
	pm := iterator.ParallelMap(ctx, parallel, iterator.FromSlice(symbols), f)
	defer pm.Close()

	results := iterator.Reduce[SymbolTrades, []SymbolTrades](
		pm, []SymbolTrades{}, func(st SymbolTrades, acc []SymbolTrades) []SymbolTrades {
			return append(acc, st)
		})
	slices.SortFunc(results, func(a, b SymbolTrades) bool {
		return a.Symbol < b.Symbol
	})
	return results
}
