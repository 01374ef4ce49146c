package table

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// ScanFunc converts one result row into a record.
type ScanFunc[R any] func(rows *sql.Rows) (R, error)

// LoadSQLite runs query against the SQLite database at path and scans
// every row into a record. The database is opened read-only and closed
// before returning; indices built over the result are independent of
// the file.
func LoadSQLite[R any](path, query string, scan ScanFunc[R]) ([]R, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	defer db.Close()

	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("query sqlite: %w", err)
	}
	defer rows.Close()

	var records []R
	for rows.Next() {
		r, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}
	return records, nil
}
