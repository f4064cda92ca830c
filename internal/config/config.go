package config

import "time"

// Config is the root configuration shared by all commands.
type Config struct {
	Database DatabaseConfig `yaml:"database"`
	Log      LogConfig      `yaml:"log"`
	Extract  ExtractConfig  `yaml:"extract"`
	Sync     SyncConfig     `yaml:"sync"`
	Convert  ConvertConfig  `yaml:"convert"`
}

// DatabaseConfig selects the SQL driver and connection for the target store.
// Driver is "sqlite3" (default) or "pgx".
type DatabaseConfig struct {
	Driver          string        `yaml:"driver"            env:"DATABASE_DRIVER"            env-default:"sqlite3"`
	DSN             string        `yaml:"dsn"               env:"DATABASE_DSN"               env-default:"file:lexicon.db?_journal_mode=WAL&_busy_timeout=5000"`
	MaxOpenConns    int           `yaml:"max_open_conns"    env:"DATABASE_MAX_OPEN_CONNS"    env-default:"4"`
	MaxIdleConns    int           `yaml:"max_idle_conns"    env:"DATABASE_MAX_IDLE_CONNS"    env-default:"2"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" env:"DATABASE_CONN_MAX_LIFETIME" env-default:"1h"`
	MigrateOnStart  bool          `yaml:"migrate_on_start"  env:"DATABASE_MIGRATE_ON_START"  env-default:"true"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}

// ExtractConfig holds word-list extraction settings.
type ExtractConfig struct {
	InputDir       string   `yaml:"input_dir"       env:"EXTRACT_INPUT_DIR"       env-default:"data/pdf"`
	SampleLines    int      `yaml:"sample_lines"    env:"EXTRACT_SAMPLE_LINES"    env-default:"100"`
	PageNumberMax  int      `yaml:"page_number_max" env:"EXTRACT_PAGE_NUMBER_MAX" env-default:"1000"`
	SkippedSamples int      `yaml:"skipped_samples" env:"EXTRACT_SKIPPED_SAMPLES" env-default:"20"`
	SplitLines     bool     `yaml:"split_lines"     env:"EXTRACT_SPLIT_LINES"     env-default:"true"`
	ForceVariant   string   `yaml:"force_variant"   env:"EXTRACT_FORCE_VARIANT"`
	Boilerplate    []string `yaml:"boilerplate"     env:"EXTRACT_BOILERPLATE"     env-separator:"|"`
	DryRun         bool     `yaml:"dry_run"         env:"EXTRACT_DRY_RUN"`
}

// SyncConfig holds level synchronization settings. The source store is the
// one holding extracted lexicon tables; the target is Database.
type SyncConfig struct {
	SourceDriver      string `yaml:"source_driver"       env:"SYNC_SOURCE_DRIVER"       env-default:"sqlite3"`
	SourceDSN         string `yaml:"source_dsn"          env:"SYNC_SOURCE_DSN"`
	SourceTable       string `yaml:"source_table"        env:"SYNC_SOURCE_TABLE"`
	SourceLevelColumn string `yaml:"source_level_column" env:"SYNC_SOURCE_LEVEL_COLUMN" env-default:"level"`
	ReportLimit       int    `yaml:"report_limit"        env:"SYNC_REPORT_LIMIT"        env-default:"20"`
	DryRun            bool   `yaml:"dry_run"             env:"SYNC_DRY_RUN"`
}

// ConvertConfig holds dictionary conversion inputs and the JSON output dir.
type ConvertConfig struct {
	GCIDEDir     string `yaml:"gcide_dir"     env:"CONVERT_GCIDE_DIR"     env-default:"data/gcide"`
	WordNetDir   string `yaml:"wordnet_dir"   env:"CONVERT_WORDNET_DIR"   env-default:"data/wordnet/prolog"`
	OMWFile      string `yaml:"omw_file"      env:"CONVERT_OMW_FILE"      env-default:"data/omw/omw-en.tsv.gz"`
	WordlistFile string `yaml:"wordlist_file" env:"CONVERT_WORDLIST_FILE" env-default:"data/oxford3000.csv"`
	OutputDir    string `yaml:"output_dir"    env:"CONVERT_OUTPUT_DIR"    env-default:"data/json"`
}
