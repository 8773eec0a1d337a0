// Package main provides the aviation toolbox application
package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/micutio/airtoolbox/internal"
	"github.com/micutio/airtoolbox/tickerapp"
	"github.com/micutio/airtoolbox/tuiapp"
	"github.com/spf13/pflag"
)

const (
	// thisAppName is the name of this application as shown on notifications.
	thisAppName = "airtoolbox"
)

type cliArgs struct {
	isUseTicker bool
	airports    []string
	interval    time.Duration
	timeout     time.Duration
	isNotify    bool
	isDump      bool
	logLevel    string
	logDir      string
}

func main() {
	var args cliArgs

	setupCommandLineFlags(&args)

	// Parse all arguments provided to the program on launch.
	pflag.Parse()

	level, levelErr := internal.ParseLogLevel(args.logLevel)
	if levelErr != nil {
		fmt.Fprintln(os.Stderr, levelErr)
		os.Exit(2) //nolint:mnd // usage error
	}

	options := internal.RequestOptions{
		Airports: args.airports,
		Interval: args.interval,
		Timeout:  args.timeout,
	}
	if err := options.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2) //nolint:mnd // usage error
	}

	var runErr error
	if args.isUseTicker {
		logger := internal.NewLogger(internal.TickerLogParams(), level)
		slog.SetDefault(logger)
		runErr = tickerapp.Run(
			thisAppName,
			options,
			tickerapp.DisplayOptions{IsNotify: args.isNotify, IsDump: args.isDump},
			logger)
	} else {
		logParams, logFile := internal.TUILogParams(args.logDir)
		logger := internal.NewLogger(logParams, level)
		slog.SetDefault(logger)
		runErr = tuiapp.Run(thisAppName, options, logger)
		_ = logFile.Close()
	}

	if runErr != nil {
		fmt.Fprintln(os.Stderr, runErr)
		os.Exit(1)
	}
}

func setupCommandLineFlags(args *cliArgs) {
	// Whether to launch the Ticker or TUI app.
	pflag.BoolVarP(
		&args.isUseTicker,
		"ticker",
		"t",
		false,
		"print METAR and TAF updates on the command line without TUI")
	pflag.Lookup("ticker").NoOptDefVal = "true"

	// Airports to watch in ticker mode, the first one also prefills the TUI weather screen.
	pflag.StringSliceVarP(
		&args.airports,
		"airports",
		"a",
		[]string{},
		"ICAO codes of the airports to fetch weather for, e.g. KJFK,EDDF")

	pflag.DurationVarP(
		&args.interval,
		"interval",
		"i",
		internal.WeatherUpdateInterval,
		"how often the weather is fetched again")

	pflag.DurationVar(
		&args.timeout,
		"timeout",
		internal.WeatherRequestTimeout,
		"timeout of the weather requests for one round")

	pflag.BoolVar(
		&args.isNotify,
		"notify",
		false,
		"raise a desktop notification when a METAR changes (ticker mode)")

	pflag.BoolVar(
		&args.isDump,
		"dump",
		false,
		"dump every weather report with all its fields (ticker mode)")

	pflag.StringVar(
		&args.logLevel,
		"log-level",
		"info",
		"log level: debug, info, warn or error")

	pflag.StringVar(
		&args.logDir,
		"log-dir",
		"",
		"directory of the log file in TUI mode, defaults to the user config dir")
}
