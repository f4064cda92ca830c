// Command sync-levels copies CEFR levels from an extracted lexicon table
// into the words table of the target database. Existing words get their
// level updated, missing words are inserted. The whole merge runs in one
// transaction.
//
// Flags:
//
//	-config         path to YAML config file
//	--sourceDb      DSN of the store holding the lexicon table (default: sync.source_dsn, else the target database)
//	--sourceDriver  SQL driver of the source store (default: sync.source_driver)
//	--sourceTable   lexicon table to read (default: sync.source_table)
//	-dry-run        compute the report and roll back
//	-version        print version and exit
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
	"github.com/heartmarshall/myenglish-lexicon/internal/adapter/store/vocabulary"
	"github.com/heartmarshall/myenglish-lexicon/internal/app"
	"github.com/heartmarshall/myenglish-lexicon/internal/app/synchronizer"
	"github.com/heartmarshall/myenglish-lexicon/internal/config"
	"github.com/heartmarshall/myenglish-lexicon/pkg/ctxutil"
)

// Compile-time interface assertions.
var (
	_ synchronizer.Source   = (*lexicon.Repo)(nil)
	_ synchronizer.Target   = (*vocabulary.Repo)(nil)
	_ synchronizer.TxRunner = (*store.TxManager)(nil)
)

func main() {
	configFlag := flag.String("config", "", "path to YAML config file")
	sourceDBFlag := flag.String("sourceDb", "", "DSN of the source store")
	sourceDriverFlag := flag.String("sourceDriver", "", "SQL driver of the source store (sqlite3, pgx)")
	sourceTableFlag := flag.String("sourceTable", "", "lexicon table to read levels from")
	dryRunFlag := flag.Bool("dry-run", false, "compute the report without committing")
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
	if *sourceDBFlag != "" {
		cfg.Sync.SourceDSN = *sourceDBFlag
	}
	if *sourceDriverFlag != "" {
		cfg.Sync.SourceDriver = *sourceDriverFlag
	}
	if *sourceTableFlag != "" {
		cfg.Sync.SourceTable = *sourceTableFlag
	}
	if *dryRunFlag {
		cfg.Sync.DryRun = true
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}
	if cfg.Sync.SourceTable == "" {
		log.Fatal("--sourceTable (or sync.source_table) is required")
	}

	logger := app.NewLogger(cfg.Log)
	logger.Info("starting sync-levels", slog.String("version", app.BuildVersion()))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()
	ctx = ctxutil.WithRunID(ctx, ctxutil.NewRunID())

	target, err := store.Open(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to target database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer target.Close()

	if cfg.Database.MigrateOnStart {
		if err := store.Migrate(ctx, target, logger); err != nil {
			logger.Error("migrate", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	source, sourceName := target, "target"
	if cfg.Sync.SourceDSN != "" {
		source, err = store.OpenSource(ctx, cfg.Sync.SourceDriver, cfg.Sync.SourceDSN)
		if err != nil {
			logger.Error("connect to source database", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer source.Close()
		sourceName = string(source.Dialect)
	}

	s := synchronizer.New(
		logger,
		lexicon.New(source, logger),
		vocabulary.New(target),
		store.NewTxManager(target),
		synchronizer.Config{
			SourceName:  sourceName,
			Table:       cfg.Sync.SourceTable,
			LevelColumn: cfg.Sync.SourceLevelColumn,
			DryRun:      cfg.Sync.DryRun,
		},
	)

	report, err := s.Run(ctx)
	if err != nil {
		logger.Error("sync failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	report.Print(os.Stdout, cfg.Sync.ReportLimit)
	logger.Info("sync completed successfully")
}
