package engine

import (
	"database/sql"

	_ "modernc.org/sqlite" // register pure-Go SQLite driver
)

// Open opens a SQLite database handle on the modernc.org/sqlite driver.
//
// Pass a filesystem path like "./vectors.sqlite" for a durable database,
// or ":memory:" for an in-memory one.
func Open(dsn string) (*sql.DB, error) { return sql.Open("sqlite", dsn) }
