package sqlset

import (
	"context"
	"database/sql"
	"fmt"
)

/*
AddSamples takes a context, a *sql.DB, the target columns, the rows to
insert and a placeholder function for the database dialect and inserts the
rows in chunks of MaxSampleInsertionsPerStatement inside a transaction. It
returns the number of rows inserted.
*/
func AddSamples(ctx context.Context, db *sql.DB, columns []string, rows [][]string, placeholder func(int) string) (int, error) {
	if len(rows) == 0 {
		return 0, nil
	}
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("starting samples insertion: %v", err)
	}
	var inserted int
	for inserted < len(rows) {
		end := inserted + MaxSampleInsertionsPerStatement
		if end > len(rows) {
			end = len(rows)
		}
		chunk := rows[inserted:end]
		values := make([]interface{}, 0, len(chunk)*len(columns))
		for _, row := range chunk {
			for _, v := range row {
				values = append(values, v)
			}
		}
		_, err = tx.ExecContext(ctx, InsertSamplesStatement(columns, len(chunk), placeholder), values...)
		if err != nil {
			tx.Rollback()
			return 0, fmt.Errorf("inserting samples %d to %d: %v", inserted+1, end, err)
		}
		inserted = end
	}
	err = tx.Commit()
	if err != nil {
		return 0, fmt.Errorf("committing samples insertion: %v", err)
	}
	return inserted, nil
}

/*
IterateOnSamples takes a context, a *sql.DB, the columns to read and a lambda
function and calls the lambda with the index and values of every sample in
id order, until all samples are processed or the lambda returns false or an
error.
*/
func IterateOnSamples(ctx context.Context, db *sql.DB, columns []string, lambda func(int, []string) (bool, error)) error {
	rows, err := db.QueryContext(ctx, SelectSamplesStatement(columns))
	if err != nil {
		return fmt.Errorf("querying samples: %v", err)
	}
	defer rows.Close()
	for i := 0; rows.Next(); i++ {
		row := make([]string, len(columns))
		dest := make([]interface{}, len(columns))
		for j := range row {
			dest[j] = &row[j]
		}
		err = rows.Scan(dest...)
		if err != nil {
			return fmt.Errorf("scanning sample %d: %v", i+1, err)
		}
		ok, err := lambda(i, row)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
	}
	if err = rows.Err(); err != nil {
		return fmt.Errorf("iterating samples: %v", err)
	}
	return nil
}

// CountSamples returns the number of rows in the samples table of the database.
func CountSamples(ctx context.Context, db *sql.DB) (int, error) {
	var count int
	err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM samples`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting samples: %v", err)
	}
	return count, nil
}

// ListColumns runs the query and returns the names it yields, skipping the id column.
func ListColumns(ctx context.Context, db *sql.DB, query string, args ...interface{}) ([]string, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying samples columns: %v", err)
	}
	defer rows.Close()
	var columns []string
	for rows.Next() {
		var name string
		err = rows.Scan(&name)
		if err != nil {
			return nil, fmt.Errorf("scanning samples column: %v", err)
		}
		if name != "id" {
			columns = append(columns, name)
		}
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating samples columns: %v", err)
	}
	return columns, nil
}
