// Package main implements an interactive simulator of frame based
// physical memory managed for simulated processes.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/retroenv/pagesim/internal/cli"
	"github.com/retroenv/pagesim/internal/config"
	"github.com/retroenv/pagesim/internal/console"
	"github.com/retroenv/pagesim/internal/options"
	"github.com/retroenv/pagesim/internal/shell"
	"github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	ctx := app.Context()

	opts, err := cli.ParseFlags()
	if err != nil {
		logger := config.CreateLogger(opts.Debug, opts.Quiet)
		var usageErr *cli.UsageError
		if errors.As(err, &usageErr) {
			printBanner(opts)
			usageErr.ShowUsage()
		} else {
			logger.Fatal(err.Error())
		}
		os.Exit(1)
	}

	logger := config.CreateLogger(opts.Debug, opts.Quiet)
	printBanner(opts)

	if err := runSession(ctx, logger, opts); err != nil {
		logger.Fatal("Session failed", log.Err(err))
	}
}

func runSession(ctx context.Context, logger *log.Logger, opts options.Program) error {
	cons, err := createConsole(opts)
	if err != nil {
		return fmt.Errorf("creating console: %w", err)
	}

	sh := shell.New(logger)
	runErr := sh.Run(ctx, cons)
	if errors.Is(runErr, context.Canceled) {
		logger.Info("Session cancelled")
		runErr = nil
	}

	if err := cons.Close(); err != nil {
		logger.Error("Closing console failed", log.Err(err))
	}
	return runErr
}

func createConsole(opts options.Program) (console.Console, error) {
	if opts.GUI {
		return console.NewGUI()
	}

	if opts.Script != "" {
		file, err := os.Open(opts.Script)
		if err != nil {
			return nil, fmt.Errorf("opening script file: %w", err)
		}
		return console.NewScript(file, os.Stdout), nil
	}
	return console.NewSimple(os.Stdin, os.Stdout, "> "), nil
}

func printBanner(opts options.Program) {
	if opts.Quiet || opts.GUI {
		return
	}
	fmt.Println("[ pagesim - paged memory simulator ]")
	fmt.Printf("version: %s\n\n", buildinfo.Version(version, commit, date))
}
