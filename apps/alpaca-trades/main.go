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

// Command alpaca-trades downloads historical trades for the configured
// symbols and prints them together with per-symbol summary statistics.
//
// Credentials are read from the APCA_API_KEY_ID and APCA_API_SECRET_KEY
// environment variables, optionally loaded from a .env file.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/stockparfait/alpaca"
	"github.com/stockparfait/alpaca/marketdata"
	"github.com/stockparfait/alpaca/table"
	"github.com/stockparfait/errors"
	"github.com/stockparfait/logging"
	"gonum.org/v1/gonum/stat"

	toml "github.com/pelletier/go-toml/v2"
)

type Flags struct {
	Config   string // path to the TOML config file (required)
	CSV      bool   // dump CSV format; default: text
	NoTrades bool   // print only the summary
	LogLevel logging.Level
}

func parseFlags(args []string) (*Flags, error) {
	var flags Flags
	fs := flag.NewFlagSet("alpaca-trades", flag.ExitOnError)
	fs.StringVar(&flags.Config, "config", "", "path to the TOML config file (required)")
	fs.BoolVar(&flags.CSV, "csv", false, "print tables in CSV format; default: text")
	fs.BoolVar(&flags.NoTrades, "summary-only", false, "print only the summary table")
	flags.LogLevel = logging.Info
	fs.Var(&flags.LogLevel, "log-level", "Log level: debug, info, warning, error")

	err := fs.Parse(args)
	if err != nil {
		return nil, err
	}
	if flags.Config == "" {
		return nil, errors.Reason("missing required -config argument")
	}
	return &flags, nil
}

// Config is the contents of the TOML config file.
type Config struct {
	Symbols  []string `toml:"symbols"`
	Start    string   `toml:"start"`    // RFC-3339 timestamp or YYYY-MM-DD
	End      string   `toml:"end"`
	Limit    int      `toml:"limit"`    // page size; 0 = server default
	Feed     string   `toml:"feed"`     // iex, sip or otc; "" = account default
	Parallel int      `toml:"parallel"` // symbols queried at a time; 0 = 2*NumCPU
}

func parseConfig(filePath string) (*Config, error) {
	f, err := os.Open(filePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			sample := `symbols = ["AAPL"]
start = "2018-12-03T21:47:00Z"
end = "2018-12-03T21:48:00Z"
limit = 4
`
			return nil, errors.Annotate(err,
				"config file '%s' does not exist.\nPlease create a config file containing:\n%s",
				filePath, sample)
		}
		return nil, errors.Annotate(err, "failed to open config file %s", filePath)
	}
	defer f.Close()

	d := toml.NewDecoder(f)
	var c Config
	if err := d.Decode(&c); err != nil {
		return nil, errors.Annotate(err, "failed to read config file %s", filePath)
	}
	if len(c.Symbols) == 0 {
		return nil, errors.Reason("config file %s lists no symbols", filePath)
	}
	return &c, nil
}

func parseTime(s string) (time.Time, error) {
	var err error
	for _, format := range []string{time.RFC3339, "2006-01-02"} {
		var tm time.Time
		if tm, err = time.Parse(format, s); err == nil {
			return tm, nil
		}
	}
	return time.Time{}, err
}

type tradeRow struct {
	symbol string
	trade  marketdata.Trade
}

func (r tradeRow) CSV() []string {
	return []string{
		r.symbol,
		r.trade.Timestamp.UTC().Format(time.RFC3339Nano),
		r.trade.Exchange,
		strconv.FormatFloat(r.trade.Price, 'f', -1, 64),
		strconv.FormatUint(r.trade.Size, 10),
		strconv.FormatUint(r.trade.TradeID, 10),
	}
}

type summaryRow struct {
	symbol string
	trades int
	pages  int
	vwap   float64
	stdDev float64
	volume uint64
}

func (r summaryRow) CSV() []string {
	return []string{
		r.symbol,
		strconv.Itoa(r.trades),
		strconv.Itoa(r.pages),
		fmt.Sprintf("%.4f", r.vwap),
		fmt.Sprintf("%.4f", r.stdDev),
		strconv.FormatUint(r.volume, 10),
	}
}

// summarize computes the per-symbol trade statistics.
func summarize(st marketdata.SymbolTrades) summaryRow {
	prices := make([]float64, len(st.Trades))
	sizes := make([]float64, len(st.Trades))
	row := summaryRow{symbol: st.Symbol, trades: len(st.Trades), pages: st.Pages}
	for i, trade := range st.Trades {
		prices[i] = trade.Price
		sizes[i] = float64(trade.Size)
		row.volume += trade.Size
	}
	if len(prices) > 0 {
		row.vwap = stat.Mean(prices, sizes)
		row.stdDev = stat.StdDev(prices, nil)
	}
	return row
}

func writeTable(tbl *table.Table, flags *Flags, w io.Writer) error {
	if flags.CSV {
		return tbl.WriteCSV(w, table.Params{})
	}
	return tbl.WriteText(w, table.Params{})
}

func run(ctx context.Context, flags *Flags, client *alpaca.Client, w io.Writer) error {
	config, err := parseConfig(flags.Config)
	if err != nil {
		return errors.Annotate(err, "failed to parse config")
	}
	start, err := parseTime(config.Start)
	if err != nil {
		return errors.Annotate(err, "failed to parse start time '%s'", config.Start)
	}
	end, err := parseTime(config.End)
	if err != nil {
		return errors.Annotate(err, "failed to parse end time '%s'", config.End)
	}
	req := marketdata.TradesRequest{
		Start: start,
		End:   end,
		Limit: config.Limit,
		Feed:  marketdata.Feed(config.Feed),
	}
	results := marketdata.CollectTrades(ctx, client, req, config.Symbols, config.Parallel)

	failed := 0
	trades := table.NewTable("Symbol", "Time", "Exchange", "Price", "Size", "ID")
	summary := table.NewTable("Symbol", "Trades", "Pages", "VWAP", "StdDev", "Volume")
	for _, st := range results {
		if st.Err != nil {
			failed++
			continue
		}
		for _, trade := range st.Trades {
			trades.AddRow(tradeRow{symbol: st.Symbol, trade: trade})
		}
		summary.AddRow(summarize(st))
	}
	if failed == len(results) {
		return errors.Reason("failed to download trades for all %d symbols", failed)
	}
	if !flags.NoTrades {
		if err := writeTable(trades, flags, w); err != nil {
			return errors.Annotate(err, "failed to print trades")
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return errors.Annotate(err, "failed to print separator")
		}
	}
	if err := writeTable(summary, flags, w); err != nil {
		return errors.Annotate(err, "failed to print summary")
	}
	return nil
}

func main() {
	ctx := context.Background()
	flags, err := parseFlags(os.Args[1:])
	if err != nil {
		ctx = logging.Use(ctx, logging.DefaultGoLogger(logging.Info))
		logging.Errorf(ctx, "failed to parse flags: %s", err.Error())
		os.Exit(1)
	}
	ctx = logging.Use(ctx, logging.DefaultGoLogger(flags.LogLevel))

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logging.Warningf(ctx, "failed to load .env file: %s", err.Error())
	}
	api, err := alpaca.NewApiInfoFromEnv()
	if err != nil {
		logging.Errorf(ctx, err.Error())
		os.Exit(1)
	}
	if err := run(ctx, flags, alpaca.NewClient(api), os.Stdout); err != nil {
		logging.Errorf(ctx, err.Error())
		os.Exit(1)
	}
}
