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

// Command alpaca-calendar prints the market calendar for a range of dates,
// or the current market clock with -clock.
package main

import (
	"context"
	"flag"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/stockparfait/alpaca"
	"github.com/stockparfait/alpaca/table"
	"github.com/stockparfait/alpaca/trading"
	"github.com/stockparfait/errors"
	"github.com/stockparfait/logging"
)

type Flags struct {
	Start    trading.Date // start of the calendar range, inclusive
	End      trading.Date // end of the calendar range, exclusive
	Clock    bool         // print the market clock instead of the calendar
	CSV      bool         // dump CSV format; default: text
	LogLevel logging.Level
}

func parseFlags(args []string) (*Flags, error) {
	var flags Flags
	fs := flag.NewFlagSet("alpaca-calendar", flag.ExitOnError)
	var start, end string
	fs.StringVar(&start, "start", "", "start date as YYYY-MM-DD, inclusive")
	fs.StringVar(&end, "end", "", "end date as YYYY-MM-DD, exclusive")
	fs.BoolVar(&flags.Clock, "clock", false, "print the market clock instead of the calendar")
	fs.BoolVar(&flags.CSV, "csv", false, "print the table in CSV format; default: text")
	flags.LogLevel = logging.Info
	fs.Var(&flags.LogLevel, "log-level", "Log level: debug, info, warning, error")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if flags.Clock {
		return &flags, nil
	}
	if start == "" || end == "" {
		return nil, errors.Reason("both -start and -end are required without -clock")
	}
	var err error
	if flags.Start, err = trading.NewDateFromString(start); err != nil {
		return nil, errors.Annotate(err, "failed to parse -start")
	}
	if flags.End, err = trading.NewDateFromString(end); err != nil {
		return nil, errors.Annotate(err, "failed to parse -end")
	}
	return &flags, nil
}

type calendarRow struct {
	openClose trading.OpenClose
}

func (r calendarRow) CSV() []string {
	return []string{
		r.openClose.Date.String(),
		r.openClose.Open.String(),
		r.openClose.Close.String(),
	}
}

type clockRow struct {
	clock trading.Clock
}

func (r clockRow) CSV() []string {
	return []string{
		r.clock.Timestamp.UTC().Format(time.RFC3339),
		strconv.FormatBool(r.clock.IsOpen),
		r.clock.NextOpen.UTC().Format(time.RFC3339),
		r.clock.NextClose.UTC().Format(time.RFC3339),
	}
}

func writeTable(tbl *table.Table, flags *Flags, w io.Writer) error {
	if flags.CSV {
		return tbl.WriteCSV(w, table.Params{})
	}
	return tbl.WriteText(w, table.Params{})
}

func run(ctx context.Context, flags *Flags, client *alpaca.Client, w io.Writer) error {
	if flags.Clock {
		clock, err := alpaca.Issue(ctx, client, trading.GetClock, trading.ClockRequest{})
		if err != nil {
			return errors.Annotate(err, "failed to retrieve the market clock")
		}
		tbl := table.NewTable("Timestamp", "IsOpen", "NextOpen", "NextClose")
		tbl.AddRow(clockRow{clock})
		return writeTable(tbl, flags, w)
	}
	req := trading.CalendarRequest{Start: flags.Start, End: flags.End}
	calendar, err := alpaca.Issue(ctx, client, trading.GetCalendar, req)
	if err != nil {
		return errors.Annotate(err, "failed to retrieve the market calendar")
	}
	tbl := table.NewTable("Date", "Open", "Close")
	for _, openClose := range calendar {
		tbl.AddRow(calendarRow{openClose})
	}
	return writeTable(tbl, flags, w)
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
