package store

import (
	"testing"

	"github.com/pressly/goose/v3"
)

func TestParseDialect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		driver  string
		want    Dialect
		wantErr bool
	}{
		{"sqlite3", DialectSQLite, false},
		{"pgx", DialectPostgres, false},
		{"postgres", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := ParseDialect(tt.driver)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseDialect(%q) error = %v, wantErr %v", tt.driver, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseDialect(%q) = %q, want %q", tt.driver, got, tt.want)
		}
	}
}

func TestDialect_Builder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		dialect Dialect
		want    string
	}{
		{DialectSQLite, "SELECT level FROM words WHERE word = ?"},
		{DialectPostgres, "SELECT level FROM words WHERE word = $1"},
	}
	for _, tt := range tests {
		sql, args, err := tt.dialect.Builder().
			Select("level").From("words").Where("word = ?", "apple").ToSql()
		if err != nil {
			t.Fatalf("%s: ToSql: %v", tt.dialect, err)
		}
		if sql != tt.want {
			t.Errorf("%s: sql = %q, want %q", tt.dialect, sql, tt.want)
		}
		if len(args) != 1 || args[0] != "apple" {
			t.Errorf("%s: args = %v", tt.dialect, args)
		}
	}
}

func TestDialect_Goose(t *testing.T) {
	t.Parallel()

	if got := DialectPostgres.Goose(); got != goose.DialectPostgres {
		t.Errorf("DialectPostgres.Goose() = %v", got)
	}
	if got := DialectSQLite.Goose(); got != goose.DialectSQLite3 {
		t.Errorf("DialectSQLite.Goose() = %v", got)
	}
}

func TestValidIdent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want bool
	}{
		{"the_oxford_3000_entries", true},
		{"_x", true},
		{"3000_entries", false},
		{"a-b", false},
		{"words; drop", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := ValidIdent(tt.in); got != tt.want {
			t.Errorf("ValidIdent(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
