package sqlset

import (
	"bytes"
	"context"
	"fmt"
)

/*
Adapter is an interface providing the methods
needed to store tables on a database backend.
*/
type Adapter interface {
	// ColumnName takes an attribute name and returns the name of the
	// column for it or an error if it cannot be used as a column name.
	ColumnName(string) (string, error)
	// CreateSampleTable ensures the samples table exists with the given
	// columns.
	CreateSampleTable(ctx context.Context, columns []string) error
	// ListColumns returns the attribute columns of the samples table in
	// table order.
	ListColumns(ctx context.Context) ([]string, error)
	// AddSamples inserts the rows, with a value for each of the given
	// columns, and returns the number of rows inserted.
	AddSamples(ctx context.Context, columns []string, rows [][]string) (int, error)
	// IterateOnSamples calls lambda with the index and values for the
	// given columns of every row in id order, stopping when it returns
	// false or an error.
	IterateOnSamples(ctx context.Context, columns []string, lambda func(int, []string) (bool, error)) error
	// CountSamples returns the number of rows in the samples table.
	CountSamples(ctx context.Context) (int, error)
	// Close releases the database connection.
	Close() error
}

/*
MaxSampleInsertionsPerStatement is the maximum number
of rows that adapters add with a single insert command.
Adding more results in making more insertion commands.
*/
const MaxSampleInsertionsPerStatement = 10

/*
ReadTable takes a context and an Adapter and returns the table stored
through the adapter: a header with the attribute columns followed by a row
for every sample in id order.
*/
func ReadTable(ctx context.Context, a Adapter) ([][]string, error) {
	columns, err := a.ListColumns(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading table: listing columns: %v", err)
	}
	if len(columns) == 0 {
		return nil, fmt.Errorf("reading table: samples table has no attribute columns")
	}
	table := [][]string{columns}
	err = a.IterateOnSamples(ctx, columns, func(_ int, row []string) (bool, error) {
		table = append(table, row)
		return true, nil
	})
	if err != nil {
		return nil, fmt.Errorf("reading table: %v", err)
	}
	return table, nil
}

/*
WriteTable takes a context, an Adapter and a table whose first row is the
header and stores its rows through the adapter, creating the samples table
if needed. It returns the number of rows written, header excluded, and an
error if the header cannot be used as columns, a row has a different number
of fields than the header or the rows cannot be inserted.
*/
func WriteTable(ctx context.Context, a Adapter, table [][]string) (int, error) {
	if len(table) == 0 {
		return 0, fmt.Errorf("writing table: no header")
	}
	columns := make([]string, len(table[0]))
	for i, name := range table[0] {
		c, err := a.ColumnName(name)
		if err != nil {
			return 0, fmt.Errorf("writing table: %v", err)
		}
		columns[i] = c
	}
	for i, row := range table[1:] {
		if len(row) != len(columns) {
			return 0, fmt.Errorf("writing table: row %d has %d fields, header has %d", i+1, len(row), len(columns))
		}
	}
	err := a.CreateSampleTable(ctx, columns)
	if err != nil {
		return 0, fmt.Errorf("writing table: %v", err)
	}
	n, err := a.AddSamples(ctx, columns, table[1:])
	if err != nil {
		return n, fmt.Errorf("writing table: %v", err)
	}
	return n, nil
}

/*
CreateSampleTableStatement returns the statement creating the samples table
with a TEXT column for each of the given columns and the given definition
for the id column.
*/
func CreateSampleTableStatement(columns []string, idDefinition string) string {
	var createStmtBuf bytes.Buffer
	createStmtBuf.WriteString("CREATE TABLE IF NOT EXISTS samples(")
	for _, c := range columns {
		createStmtBuf.WriteString(fmt.Sprintf(`"%s" TEXT NOT NULL, `, c))
	}
	createStmtBuf.WriteString(fmt.Sprintf(`"id" %s)`, idDefinition))
	return createStmtBuf.String()
}

/*
InsertSamplesStatement returns the statement inserting count rows for the
given columns, with the placeholder function providing the placeholder for
the i-th (from 1) value.
*/
func InsertSamplesStatement(columns []string, count int, placeholder func(int) string) string {
	var insertStmtBuf bytes.Buffer
	insertStmtBuf.WriteString("INSERT INTO samples(")
	for i, c := range columns {
		if i > 0 {
			insertStmtBuf.WriteString(", ")
		}
		insertStmtBuf.WriteString(fmt.Sprintf(`"%s"`, c))
	}
	insertStmtBuf.WriteString(") VALUES ")
	n := 1
	for r := 0; r < count; r++ {
		if r > 0 {
			insertStmtBuf.WriteString(", ")
		}
		insertStmtBuf.WriteString("(")
		for i := range columns {
			if i > 0 {
				insertStmtBuf.WriteString(", ")
			}
			insertStmtBuf.WriteString(placeholder(n))
			n++
		}
		insertStmtBuf.WriteString(")")
	}
	return insertStmtBuf.String()
}

// SelectSamplesStatement returns the query listing the given columns of every sample in id order.
func SelectSamplesStatement(columns []string) string {
	var queryBuf bytes.Buffer
	queryBuf.WriteString("SELECT ")
	for i, c := range columns {
		if i > 0 {
			queryBuf.WriteString(", ")
		}
		queryBuf.WriteString(fmt.Sprintf(`"%s"`, c))
	}
	queryBuf.WriteString(` FROM samples ORDER BY "id"`)
	return queryBuf.String()
}
