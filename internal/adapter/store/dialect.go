package store

import (
	"fmt"
	"regexp"

	"github.com/Masterminds/squirrel"
	"github.com/pressly/goose/v3"
)

// Dialect names a supported SQL backend by its database/sql driver name.
type Dialect string

const (
	DialectSQLite   Dialect = "sqlite3"
	DialectPostgres Dialect = "pgx"
)

// ParseDialect maps a driver name to its Dialect.
func ParseDialect(driver string) (Dialect, error) {
	switch d := Dialect(driver); d {
	case DialectSQLite, DialectPostgres:
		return d, nil
	}
	return "", fmt.Errorf("unsupported database driver %q", driver)
}

// Builder returns a squirrel statement builder with the dialect's placeholders.
func (d Dialect) Builder() squirrel.StatementBuilderType {
	if d == DialectPostgres {
		return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	}
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)
}

// Goose returns the migration dialect.
func (d Dialect) Goose() goose.Dialect {
	if d == DialectPostgres {
		return goose.DialectPostgres
	}
	return goose.DialectSQLite3
}

// AutoIncrementPK returns the column definition of an auto-increment
// integer primary key.
func (d Dialect) AutoIncrementPK() string {
	if d == DialectPostgres {
		return "BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY"
	}
	return "INTEGER PRIMARY KEY AUTOINCREMENT"
}

var identRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// ValidIdent reports whether name can be used unquoted as a table or column.
func ValidIdent(name string) bool {
	return identRe.MatchString(name)
}
