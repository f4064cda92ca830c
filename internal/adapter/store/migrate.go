package store

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pressly/goose/v3"

	"github.com/heartmarshall/myenglish-lexicon/migrations"
)

// Migrate applies the embedded goose migrations. It is a no-op when the
// schema is current.
func Migrate(ctx context.Context, db *DB, log *slog.Logger) error {
	provider, err := goose.NewProvider(db.Dialect.Goose(), db.DB, migrations.FS)
	if err != nil {
		return fmt.Errorf("goose new provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	for _, r := range results {
		log.Info("migration applied",
			slog.String("source", r.Source.Path),
			slog.Duration("duration", r.Duration),
		)
	}
	return nil
}
