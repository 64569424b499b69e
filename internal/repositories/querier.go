package repositories

import "database/sql"

// Querier is satisfied by *sql.DB and *sql.Tx, so the same repository code
// runs inside and outside a transaction.
type Querier interface {
	Exec(query string, args ...any) (sql.Result, error)
	Query(query string, args ...any) (*sql.Rows, error)
	QueryRow(query string, args ...any) *sql.Row
}
