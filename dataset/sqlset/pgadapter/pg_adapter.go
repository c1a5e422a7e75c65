/*
Package pgadapter provides an implementation of the
Adapter interface in the sqlset package that works
over a PostgreSQL database.
*/
package pgadapter

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/pbanos/sapling/dataset/sqlset"

	// Import of PostgreSQL driver
	_ "github.com/lib/pq"
)

const columnsQuery = `SELECT column_name FROM information_schema.columns
	WHERE table_schema = current_schema() AND table_name = 'samples'
	ORDER BY ordinal_position`

type adapter struct {
	db *sql.DB
}

/*
New takes a PostgreSQL database connection URL and returns
an Adapter that works on the database or an error if it fails to connect to it.
*/
func New(url string) (sqlset.Adapter, error) {
	db, err := sql.Open("postgres", url)
	if err != nil {
		return nil, err
	}
	return &adapter{db}, nil
}

func (a *adapter) ColumnName(attributeName string) (string, error) {
	return columnName(attributeName)
}

func (a *adapter) CreateSampleTable(ctx context.Context, columns []string) error {
	_, err := a.db.ExecContext(ctx, sqlset.CreateSampleTableStatement(columns, "SERIAL PRIMARY KEY"))
	if err != nil {
		return fmt.Errorf("ensuring samples table exists: %v", err)
	}
	return nil
}

func (a *adapter) ListColumns(ctx context.Context) ([]string, error) {
	return sqlset.ListColumns(ctx, a.db, columnsQuery)
}

func (a *adapter) AddSamples(ctx context.Context, columns []string, rows [][]string) (int, error) {
	return sqlset.AddSamples(ctx, a.db, columns, rows, placeholder)
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

func placeholder(i int) string {
	return fmt.Sprintf("$%d", i)
}

func columnName(attributeName string) (string, error) {
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
