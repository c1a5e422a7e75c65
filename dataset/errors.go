package dataset

import "fmt"

/*
MalformedDatasetError is returned when a table cannot be used as a dataset:
it has too few rows, rows of different widths or an attribute without
values.

Row is the index of the offending row in the raw table (0 being the header)
and Attribute the index of the offending attribute, -1 when the problem is
not specific to one attribute.
*/
type MalformedDatasetError struct {
	Row       int
	Attribute int
	Reason    string
}

func (e *MalformedDatasetError) Error() string {
	if e.Attribute >= 0 {
		return fmt.Sprintf("malformed dataset: attribute %d: %s", e.Attribute, e.Reason)
	}
	return fmt.Sprintf("malformed dataset: row %d: %s", e.Row, e.Reason)
}

func raggedReason(got, want int) string {
	return fmt.Sprintf("row has %d fields, header has %d", got, want)
}
