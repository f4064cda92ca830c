// Command extract reads word-list documents (PDF or plain text), detects
// their layout, segments lines into entries and writes each document to
// its own lexicon table.
//
// Flags:
//
//	-config    path to YAML config file (default: CONFIG_PATH or ./config.yaml)
//	-file      process a single document instead of extract.input_dir
//	-dry-run   analyse documents without writing to the database
//	-variant   force a layout variant instead of detecting it
//	-version   print version and exit
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/myenglish-lexicon/internal/adapter/store"
	"github.com/heartmarshall/myenglish-lexicon/internal/adapter/store/lexicon"
	"github.com/heartmarshall/myenglish-lexicon/internal/app"
	"github.com/heartmarshall/myenglish-lexicon/internal/app/loader"
	"github.com/heartmarshall/myenglish-lexicon/internal/config"
	"github.com/heartmarshall/myenglish-lexicon/internal/domain"
	"github.com/heartmarshall/myenglish-lexicon/internal/extract"
	"github.com/heartmarshall/myenglish-lexicon/internal/pdftext"
	"github.com/heartmarshall/myenglish-lexicon/pkg/ctxutil"
)

// Compile-time interface assertions.
var (
	_ loader.EntryWriter = (*lexicon.Repo)(nil)
	_ loader.Extractor   = (*extract.Extractor)(nil)
)

func main() {
	configFlag := flag.String("config", "", "path to YAML config file")
	fileFlag := flag.String("file", "", "process a single document")
	dryRunFlag := flag.Bool("dry-run", false, "analyse documents without writing to DB")
	variantFlag := flag.String("variant", "", "force layout variant (grouped_by_level, inline_level, complex_category, simple)")
	versionFlag := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *versionFlag {
		fmt.Println(app.BuildVersion())
		return
	}

	cfg, err := config.LoadFrom(*configFlag)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	// CLI flags override config.
	if *dryRunFlag {
		cfg.Extract.DryRun = true
	}
	if *variantFlag != "" {
		cfg.Extract.ForceVariant = *variantFlag
		if err := cfg.Validate(); err != nil {
			log.Fatalf("invalid -variant: %v", err)
		}
	}

	logger := app.NewLogger(cfg.Log)
	logger.Info("starting extract", slog.String("version", app.BuildVersion()))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()
	ctx = ctxutil.WithRunID(ctx, ctxutil.NewRunID())

	boilerplate := cfg.Extract.Boilerplate
	if len(boilerplate) == 0 {
		boilerplate = extract.DefaultBoilerplate
	}
	x := extract.New(extract.Options{
		SampleLines:    cfg.Extract.SampleLines,
		PageNumberMax:  cfg.Extract.PageNumberMax,
		SkippedSamples: cfg.Extract.SkippedSamples,
		SplitLines:     cfg.Extract.SplitLines,
		ForceVariant:   domain.Variant(cfg.Extract.ForceVariant),
		Boilerplate:    boilerplate,
	})

	var writer loader.EntryWriter
	if !cfg.Extract.DryRun {
		db, err := store.Open(ctx, cfg.Database)
		if err != nil {
			logger.Error("connect to database", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer db.Close()

		if cfg.Database.MigrateOnStart {
			if err := store.Migrate(ctx, db, logger); err != nil {
				logger.Error("migrate", slog.String("error", err.Error()))
				os.Exit(1)
			}
		}
		writer = lexicon.New(db, logger)
	}

	l := loader.New(logger, pdftext.Read, x, writer, loader.Config{
		InputDir: cfg.Extract.InputDir,
		File:     *fileFlag,
		DryRun:   cfg.Extract.DryRun,
	})

	results, err := l.Run(ctx)

	loader.PrintSummary(os.Stdout, results)
	if cfg.Extract.DryRun {
		for _, r := range results {
			loader.PrintAnalysis(os.Stdout, r)
		}
	} else {
		loader.PrintDistribution(os.Stdout, results)
	}

	if err != nil {
		logger.Error("extract failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if empty := countEmpty(results); empty > 0 {
		logger.Warn("documents without entries", slog.Int("count", empty))
	}
	if loader.HasErrors(results) {
		logger.Warn("extract completed with errors")
		os.Exit(1)
	}

	logger.Info("extract completed successfully", slog.Int("documents", len(results)))
}

func countEmpty(results []loader.DocumentResult) int {
	n := 0
	for _, r := range results {
		if r.IsEmpty() {
			n++
		}
	}
	return n
}
