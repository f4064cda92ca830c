package config

import (
	"fmt"
	"regexp"

	"github.com/heartmarshall/myenglish-lexicon/internal/domain"
)

var identRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// SupportedDrivers lists the database/sql driver names the store can open.
var SupportedDrivers = []string{"sqlite3", "pgx"}

// Validate checks the loaded configuration and reports every problem found.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	var ve domain.ValidationError

	if !supportedDriver(c.Database.Driver) {
		ve.Add("database.driver", fmt.Sprintf("unsupported driver %q", c.Database.Driver))
	}
	if c.Database.DSN == "" {
		ve.Add("database.dsn", "required")
	}
	if c.Database.MaxOpenConns < 0 {
		ve.Add("database.max_open_conns", "must be >= 0")
	}

	if c.Extract.SampleLines <= 0 {
		ve.Add("extract.sample_lines", fmt.Sprintf("must be > 0 (got %d)", c.Extract.SampleLines))
	}
	if c.Extract.PageNumberMax < 0 {
		ve.Add("extract.page_number_max", "must be >= 0")
	}
	if c.Extract.SkippedSamples < 0 {
		ve.Add("extract.skipped_samples", "must be >= 0")
	}
	if v := domain.Variant(c.Extract.ForceVariant); v != "" && !v.IsValid() {
		ve.Add("extract.force_variant", fmt.Sprintf("unknown variant %q", v))
	}

	if c.Sync.SourceDSN != "" && !supportedDriver(c.Sync.SourceDriver) {
		ve.Add("sync.source_driver", fmt.Sprintf("unsupported driver %q", c.Sync.SourceDriver))
	}
	if c.Sync.SourceTable != "" && !identRe.MatchString(c.Sync.SourceTable) {
		ve.Add("sync.source_table", "must be a plain SQL identifier")
	}
	if !identRe.MatchString(c.Sync.SourceLevelColumn) {
		ve.Add("sync.source_level_column", "must be a plain SQL identifier")
	}
	if c.Sync.ReportLimit < 0 {
		ve.Add("sync.report_limit", "must be >= 0")
	}

	return ve.OrNil()
}

func supportedDriver(d string) bool {
	for _, s := range SupportedDrivers {
		if s == d {
			return true
		}
	}
	return false
}
