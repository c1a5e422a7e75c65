/*
Package csv provides methods to read tables of categorical tokens from
delimited text streams and to write them back.
*/
package csv

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

/*
Writer is an interface for a table to which rows
can be written to.
*/
type Writer interface {
	// Write will attempt to write the given rows
	// and will return the actually written number
	// of rows and an error (if not all rows could
	// be written)
	Write([][]string) (int, error)
	// Count returns the total number of rows written
	// to the writer, header excluded
	Count() int
	// Flush ensures any pending written operations finish
	// before returning. It returns an error if that cannot
	// be ensured.
	Flush() error
}

type csvWriter struct {
	count  int
	fields int
	w      *csv.Writer
}

/*
ReadTable takes an io.Reader for a delimited text stream and a delimiter
rune and returns the table of tokens read from it or an error. Rows are not
required to have the same number of fields, so that callers building
datasets from the table can report ragged rows themselves.
*/
func ReadTable(reader io.Reader, delimiter rune) ([][]string, error) {
	var table [][]string
	err := ReadTableByRow(reader, delimiter, func(_ int, row []string) (bool, error) {
		table = append(table, row)
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return table, nil
}

/*
ReadTableByRow takes an io.Reader for a delimited text stream, a delimiter
rune and a lambda function on an integer and a row that returns a boolean
value. It parses the rows from the reader and for each it calls the lambda
function with the row and its index (0 being the header) as parameters. If
the lambda function returns true, it will continue processing the next row,
otherwise it will stop. An error is returned if something goes wrong when
reading the stream.
*/
func ReadTableByRow(reader io.Reader, delimiter rune, lambda func(int, []string) (bool, error)) error {
	r := csv.NewReader(reader)
	r.Comma = delimiter
	r.FieldsPerRecord = -1
	for l := 0; ; l++ {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("reading line %d: %v", l+1, err)
		}
		ok, err := lambda(l, row)
		if err != nil {
			return err
		}
		if !ok {
			break
		}
	}
	return nil
}

/*
ReadTableFromFilePath takes a filepath string and a delimiter rune, opens
the file to which the filepath points to (os.Stdin if the filepath is "")
and uses ReadTable to return the table read from it or an error. It will
return an error if the given filepath cannot be opened for reading.
*/
func ReadTableFromFilePath(filepath string, delimiter rune) ([][]string, error) {
	var f *os.File
	var err error
	if filepath == "" {
		f = os.Stdin
	} else {
		f, err = os.Open(filepath)
		if err != nil {
			return nil, fmt.Errorf("reading table: %v", err)
		}
	}
	defer f.Close()
	table, err := ReadTable(f, delimiter)
	if err != nil {
		err = fmt.Errorf("parsing CSV file %s: %v", filepath, err)
	}
	return table, err
}

/*
NewWriter takes an io.Writer, a delimiter rune and a header and returns a
Writer that will write rows with as many fields as the header on the
io.Writer, after writing the header itself.
*/
func NewWriter(writer io.Writer, delimiter rune, header []string) (Writer, error) {
	w := csv.NewWriter(writer)
	w.Comma = delimiter
	err := w.Write(header)
	if err != nil {
		return nil, fmt.Errorf("writing CSV header: %v", err)
	}
	return &csvWriter{fields: len(header), w: w}, nil
}

/*
WriteTable takes a writer, a delimiter rune and a table whose first row is
the header and dumps the table to the writer. It returns an error if
something went wrong when writing to the writer or a row has a different
number of fields than the header.
*/
func WriteTable(writer io.Writer, delimiter rune, table [][]string) error {
	if len(table) == 0 {
		return fmt.Errorf("writing CSV table: no header")
	}
	cw, err := NewWriter(writer, delimiter, table[0])
	if err != nil {
		return err
	}
	_, err = cw.Write(table[1:])
	if err != nil {
		return err
	}
	return cw.Flush()
}

func (cw *csvWriter) Count() int {
	return cw.count
}

func (cw *csvWriter) Write(rows [][]string) (int, error) {
	for n, row := range rows {
		if len(row) != cw.fields {
			return n, fmt.Errorf("writing CSV row %d: row has %d fields, header has %d", cw.count+1, len(row), cw.fields)
		}
		err := cw.w.Write(row)
		if err != nil {
			return n, fmt.Errorf("writing CSV row %d: %v", cw.count+1, err)
		}
		cw.count++
	}
	return len(rows), nil
}

func (cw *csvWriter) Flush() error {
	cw.w.Flush()
	return cw.w.Error()
}
