// Command wordsearch solves a word-search puzzle file.
//
// Usage:
//
//	wordsearch [flags] FILE
//
// Flags:
//
//	--no-output  do not write FILE's sibling .output file
//	--store      persist the run to PostgreSQL (requires DATABASE_DSN)
//	--config     path to YAML config file (default: $CONFIG_PATH or ./config.yaml)
//	--version    print version and exit
//
// Results are printed to stdout, one line per word. Diagnostics go to stderr.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/wordsearch/internal/app"
	"github.com/heartmarshall/wordsearch/internal/config"
	"github.com/heartmarshall/wordsearch/internal/domain"
)

const (
	msgMissingArg  = "Please provide input file"
	msgTooManyArgs = "Please provide exactly one input file"
	msgNoSuchFile  = "File does not exist"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("wordsearch", flag.ContinueOnError)
	flags.SetOutput(stderr)
	noOutput := flags.Bool("no-output", false, "do not write the result file next to the puzzle")
	store := flags.Bool("store", false, "persist the run to PostgreSQL (requires DATABASE_DSN)")
	configPath := flags.String("config", "", "path to YAML config file")
	version := flags.Bool("version", false, "print version and exit")

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 1
	}

	if *version {
		fmt.Fprintln(stdout, app.BuildVersion())
		return 0
	}

	switch flags.NArg() {
	case 0:
		fmt.Fprintln(stderr, msgMissingArg)
		return 1
	case 1:
	default:
		fmt.Fprintln(stderr, msgTooManyArgs)
		return 1
	}
	path := flags.Arg(0)

	if info, err := os.Stat(path); err != nil || info.IsDir() {
		fmt.Fprintln(stderr, msgNoSuchFile)
		return 1
	}

	var (
		cfg *config.Config
		err error
	)
	if *configPath != "" {
		cfg, err = config.LoadFrom(*configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		fmt.Fprintf(stderr, "load config: %v\n", err)
		return 1
	}

	logger := app.NewLoggerTo(stderr, cfg.Log)

	_, err = app.Run(ctx, cfg, logger, path, app.RunOptions{
		SkipOutputFile: *noOutput,
		Store:          *store,
		Stdout:         stdout,
	})
	if err != nil {
		var perr *domain.ParseError
		switch {
		case errors.As(err, &perr):
			fmt.Fprintln(stderr, perr.Error())
		case errors.Is(err, fs.ErrNotExist):
			fmt.Fprintln(stderr, msgNoSuchFile)
		default:
			logger.Error("wordsearch failed", slog.String("error", err.Error()))
		}
		return 1
	}

	return 0
}
