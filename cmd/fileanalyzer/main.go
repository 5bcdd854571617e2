package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"fileanalyzer/internal/cache"
	"fileanalyzer/internal/cancel"
	"fileanalyzer/internal/config"
	"fileanalyzer/internal/logging"
	"fileanalyzer/internal/orchestrator"
)

func main() {
	app := &cli.App{
		Name:  "fileanalyzer",
		Usage: "concurrently scans directories of text files and reports line, word, and character statistics",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "workers",
				Usage: "number of worker threads analyzing files concurrently",
				Value: 4,
			},
			&cli.StringSliceFlag{
				Name:  "dir",
				Usage: "directory to scan (may be repeated); prompted for interactively if omitted",
			},
			&cli.StringSliceFlag{
				Name:  "ext",
				Usage: "file extension to include, without the leading dot (may be repeated)",
			},
			&cli.IntFlag{
				Name:  "count",
				Usage: "number of files to analyze; prompted for interactively if omitted",
			},
			&cli.IntFlag{
				Name:  "display",
				Usage: "number of file results to print in the final report",
				Value: 10,
			},
			&cli.StringFlag{
				Name:  "results",
				Usage: "path to write the human-readable results report to",
				Value: "analysis_results.txt",
			},
			&cli.StringFlag{
				Name:  "books-dir",
				Usage: "directory the downloader saves Project Gutenberg books into when a run falls short of its requested file count",
				Value: config.DefaultBooksDir(),
			},
			&cli.BoolFlag{
				Name:  "no-download",
				Usage: "never download sample books to make up a shortfall",
			},
			&cli.BoolFlag{
				Name:  "dev",
				Usage: "use a human-readable, colorized development logger instead of the JSON file logger",
			},
			&cli.IntFlag{
				Name:  "cache-size",
				Usage: "number of analyses to memoize by path, size, and modification time",
				Value: cache.DefaultCapacity,
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	cancel.Listen()

	cfg := config.Config{
		Workers:      c.Int("workers"),
		Directories:  c.StringSlice("dir"),
		Extensions:   c.StringSlice("ext"),
		DisplayCount: c.Int("display"),
		ResultsPath:  c.String("results"),
		NoDownload:   c.Bool("no-download"),
		Development:  c.Bool("dev"),
	}
	if len(cfg.Extensions) == 0 {
		cfg.Extensions = config.DefaultExtensions
	}

	if err := config.FromEnv(&cfg); err != nil {
		return fmt.Errorf("loading environment overrides: %w", err)
	}

	logger, err := logging.New("./logs/fileanalyzer.log", cfg.Development)
	if err != nil {
		return fmt.Errorf("building logger: %w", err)
	}
	defer logger.Sync() //nolint:errcheck

	mirror, saved := logging.NewMirror(cfg.ResultsPath)
	if !saved {
		logging.Info(logger, "results file could not be opened; continuing with stdout only")
	}
	defer mirror.Close() //nolint:errcheck

	if len(cfg.Directories) == 0 {
		cfg.Directories = config.PromptDirectories(config.Stdin, mirror, cfg.Extensions)
	}

	requestedCount := c.Int("count")
	if requestedCount <= 0 {
		requestedCount = config.PromptDisplayCount(config.Stdin, mirror)
	}

	if err := config.ValidateDisplayCount(cfg.DisplayCount); err != nil {
		cfg.DisplayCount = 10
	}

	analysisCache := cache.NewAnalysisCache(c.Int("cache-size"))

	fmt.Fprintln(mirror, strings.Repeat("=", 80))
	fmt.Fprintln(mirror, "Parallel File Analyzer")
	fmt.Fprintln(mirror, strings.Repeat("=", 80))

	outcome := orchestrator.Run(orchestrator.Params{
		Directories:    cfg.Directories,
		Extensions:     cfg.Extensions,
		Workers:        cfg.Workers,
		RequestedCount: requestedCount,
		BooksDir:       c.String("books-dir"),
		NoDownload:     cfg.NoDownload,
		Cache:          analysisCache,
		Logger:         logger,
		Out:            mirror,
	})

	orchestrator.Render(mirror, outcome, cfg.DisplayCount, cfg.ResultsPath)

	return nil
}
