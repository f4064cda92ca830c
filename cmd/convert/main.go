// Command convert turns dictionary datasets (GCIDE, WordNet Prolog, Open
// Multilingual WordNet, CSV word lists) into JSON arrays of entries, one
// file per phase in convert.output_dir. It does not touch the database;
// use cmd/merge to load the output.
//
// Flags:
//
//	-config    path to YAML config file
//	-phase     comma-separated list of phases to run (default: all)
//	-dry-run   parse datasets without writing JSON
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
	"strings"
	"time"

	"github.com/heartmarshall/myenglish-lexicon/internal/app"
	"github.com/heartmarshall/myenglish-lexicon/internal/app/converter"
	"github.com/heartmarshall/myenglish-lexicon/internal/config"
	"github.com/heartmarshall/myenglish-lexicon/pkg/ctxutil"
)

func main() {
	configFlag := flag.String("config", "", "path to YAML config file")
	phaseFlag := flag.String("phase", "", "comma-separated phases to run (default: all)")
	dryRunFlag := flag.Bool("dry-run", false, "parse datasets without writing JSON")
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

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()
	ctx = ctxutil.WithRunID(ctx, ctxutil.NewRunID())

	pipeline := converter.NewPipeline(logger, cfg.Convert, *dryRunFlag)
	if err := pipeline.Run(ctx, parsePhases(*phaseFlag)); err != nil {
		logger.Error("pipeline failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	converter.PrintResults(os.Stdout, pipeline.Results())

	if pipeline.HasErrors() {
		logger.Warn("conversion completed with errors")
		os.Exit(1)
	}

	logger.Info("conversion completed successfully")
}

func parsePhases(s string) []string {
	if s == "" {
		return nil
	}
	phases := strings.Split(s, ",")
	for i := range phases {
		phases[i] = strings.TrimSpace(phases[i])
	}
	return phases
}
