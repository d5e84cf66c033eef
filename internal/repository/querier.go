package repository

import "database/sql"

// Querier is satisfied by both *sql.DB and *sql.Tx, so every repository can run
// inside or outside a transaction.
type Querier interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
	Query(query string, args ...interface{}) (*sql.Rows, error)
	QueryRow(query string, args ...interface{}) *sql.Row
}
