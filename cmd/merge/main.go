// Command merge loads the JSON arrays written by cmd/convert into the
// dict_entries table. Each source replaces its previous rows inside one
// transaction, so re-running it does not accumulate duplicates.
//
// Flags:
//
//	-config      path to YAML config file
//	-dir         directory holding <phase>.json files (default: convert.output_dir)
//	-phase       comma-separated list of sources to merge (default: all present)
//	-batch-size  entries per insert batch
//	-version     print version and exit
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
	"strings"
	"time"

	"github.com/heartmarshall/myenglish-lexicon/internal/adapter/store"
	"github.com/heartmarshall/myenglish-lexicon/internal/adapter/store/dictentry"
	"github.com/heartmarshall/myenglish-lexicon/internal/app"
	"github.com/heartmarshall/myenglish-lexicon/internal/app/converter"
	"github.com/heartmarshall/myenglish-lexicon/internal/config"
	"github.com/heartmarshall/myenglish-lexicon/pkg/ctxutil"
)

// Compile-time interface assertions.
var (
	_ converter.DictRepo = (*dictentry.Repo)(nil)
	_ converter.TxRunner = (*store.TxManager)(nil)
)

func main() {
	configFlag := flag.String("config", "", "path to YAML config file")
	dirFlag := flag.String("dir", "", "directory with <phase>.json files")
	phaseFlag := flag.String("phase", "", "comma-separated sources to merge (default: all present)")
	batchFlag := flag.Int("batch-size", 500, "entries per insert batch")
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

	dir := cfg.Convert.OutputDir
	if *dirFlag != "" {
		dir = *dirFlag
	}

	var phases []string
	if *phaseFlag != "" {
		phases = strings.Split(*phaseFlag, ",")
		for i := range phases {
			phases[i] = strings.TrimSpace(phases[i])
		}
	}

	logger := app.NewLogger(cfg.Log)

	sources, err := converter.SourcesIn(dir, phases)
	if err != nil {
		logger.Error("select sources", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if len(sources) == 0 {
		logger.Error("no JSON sources found", slog.String("dir", dir))
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()
	ctx = ctxutil.WithRunID(ctx, ctxutil.NewRunID())

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

	repo := dictentry.New(db)
	merger := converter.NewMerger(logger, repo, store.NewTxManager(db), *batchFlag)
	merger.Run(ctx, sources)

	converter.PrintResults(os.Stdout, merger.Results())

	if merger.HasErrors() {
		logger.Warn("merge completed with errors")
		os.Exit(1)
	}

	logger.Info("merge completed successfully", slog.Int("sources", len(sources)))
}
