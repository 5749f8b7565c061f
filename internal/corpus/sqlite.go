package corpus

import (
	"database/sql"
	"fmt"
	"os"

	_ "github.com/mattn/go-sqlite3"
)

// LoadSQLite reads the record batch straight from a beads SQLite database,
// bypassing the `bd list --json` pipe. The database is opened read-only.
//
// Rows are returned in id order so repeated loads of the same database
// yield the same batch order.
func LoadSQLite(path string) ([]Record, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("database not found: %s", path)}
	}

	db, err := sql.Open("sqlite3", "file:"+path+"?mode=ro")
	if err != nil {
		return nil, &LoadError{Code: ErrCodeOpen, Message: "opening database", Err: err}
	}
	defer db.Close()

	// SQLite supports one writer; we are read-only but keep to a single
	// connection to avoid SQLITE_BUSY surprises.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := db.Ping(); err != nil {
		return nil, &LoadError{Code: ErrCodeOpen, Message: "connecting to database", Err: err}
	}

	rows, err := db.Query(`
		SELECT id,
		       COALESCE(title, ''),
		       COALESCE(issue_type, '')
		FROM issues
		ORDER BY id`)
	if err != nil {
		return nil, &LoadError{Code: ErrCodeQuery, Message: "querying issues", Err: err}
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var r Record
		if err := rows.Scan(&r.ID, &r.Title, &r.IssueType); err != nil {
			return nil, &LoadError{Code: ErrCodeQuery, Message: "scanning issue row", Err: err}
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, &LoadError{Code: ErrCodeQuery, Message: "iterating issues", Err: err}
	}
	return records, nil
}
