package service

import (
	"database/sql"
	"strconv"
	"strings"
)

// sqlExecutor is satisfied by both *sql.DB and *sql.Tx. With a single open
// connection, every statement issued while a tx is open must go through it.
type sqlExecutor interface {
	Exec(query string, args ...any) (sql.Result, error)
	Query(query string, args ...any) (*sql.Rows, error)
	QueryRow(query string, args ...any) *sql.Row
}

func normalizeName(name string) string {
	return strings.TrimSpace(strings.ToLower(name))
}

func parseIDLoose(value string) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func boolToInt(v bool) int {
	if v {
		return 1
	}
	return 0
}
