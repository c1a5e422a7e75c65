/*
Package sqlite3adapter provides an implementation of the
Adapter interface in the sqlset package that works
over a SQLite3 database file.
*/
package sqlite3adapter

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	// Import of sqlite3 driver
	_ "github.com/mattn/go-sqlite3"
	"github.com/pbanos/sapling/dataset/sqlset"
)

const columnsQuery = `SELECT name FROM pragma_table_info('samples') ORDER BY cid`

type adapter struct {
	db *sql.DB
}

/*
New takes the path to a SQLite3 database file and a maximum number of open
connections (none if 0 or less) and returns an Adapter that works on the
database or an error if it cannot be opened.
*/
func New(path string, maxConns int) (sqlset.Adapter, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if maxConns > 0 {
		db.SetMaxOpenConns(maxConns)
	}
	return &adapter{db}, nil
}

func (a *adapter) ColumnName(attributeName string) (string, error) {
	if attributeName == "id" {
		return "", fmt.Errorf(`'%s' is reserved and cannot be used as attribute name`, attributeName)
	}
	if attributeName == "" {
		return "", fmt.Errorf("empty attribute names cannot be used as columns")
	}
	if strings.ContainsAny(attributeName, `"`) {
		return "", fmt.Errorf(`attribute name '%s' contains invalid character '"'`, attributeName)
	}
	return attributeName, nil
}

func (a *adapter) CreateSampleTable(ctx context.Context, columns []string) error {
	_, err := a.db.ExecContext(ctx, sqlset.CreateSampleTableStatement(columns, "INTEGER PRIMARY KEY AUTOINCREMENT"))
	if err != nil {
		return fmt.Errorf("ensuring samples table exists: %v", err)
	}
	return nil
}

func (a *adapter) ListColumns(ctx context.Context) ([]string, error) {
	return sqlset.ListColumns(ctx, a.db, columnsQuery)
}

func (a *adapter) AddSamples(ctx context.Context, columns []string, rows [][]string) (int, error) {
	return sqlset.AddSamples(ctx, a.db, columns, rows, func(int) string { return "?" })
}

func (a *adapter) IterateOnSamples(ctx context.Context, columns []string, lambda func(int, []string) (bool, error)) error {
	return sqlset.IterateOnSamples(ctx, a.db, columns, lambda)
}

func (a *adapter) CountSamples(ctx context.Context) (int, error) {
	return sqlset.CountSamples(ctx, a.db)
}

func (a *adapter) Close() error {
	return a.db.Close()
}
