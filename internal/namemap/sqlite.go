package namemap

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// Table layout expected in a SQLite name map:
//
//	CREATE TABLE columns (idx INTEGER PRIMARY KEY, name TEXT NOT NULL UNIQUE);
const selectColumnsSQL = `SELECT idx, name FROM columns ORDER BY idx ASC`

// OpenSQLite loads a name map from the columns table of a SQLite database.
// The database is opened read-only and closed before returning; the
// returned Table holds everything in memory.
func OpenSQLite(ctx context.Context, path string) (*Table, error) {
	dsn := "file:" + path + "?mode=ro"
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open name map database: %w", err)
	}
	defer db.Close()

	// A single connection is enough for one sequential scan.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to name map database: %w", err)
	}
	if _, err := db.ExecContext(ctx, "PRAGMA query_only = ON"); err != nil {
		return nil, fmt.Errorf("failed to execute %q: %w", "PRAGMA query_only = ON", err)
	}

	rows, err := db.QueryContext(ctx, selectColumnsSQL)
	if err != nil {
		return nil, fmt.Errorf("query name map: %w", err)
	}
	defer rows.Close()

	b := newBuilder(path)
	for rows.Next() {
		var (
			id   int
			name string
		)
		if err := rows.Scan(&id, &name); err != nil {
			return nil, fmt.Errorf("scan name map row: %w", err)
		}
		if err := b.add(0, id, name); err != nil {
			return nil, err
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate name map: %w", err)
	}
	return b.table(), nil
}
