package csv

import (
	"bytes"
	"strings"
	"testing"
)

func TestReadTable(t *testing.T) {
	table, err := ReadTable(strings.NewReader("outlook;play\nsunny;no\nrain;yes\n"), ';')
	if err != nil {
		t.Fatal("unexpected error reading table:", err)
	}
	if len(table) != 3 {
		t.Fatal("expected 3 rows, got:", len(table))
	}
	if table[0][0] != "outlook" || table[2][1] != "yes" {
		t.Error("unexpected table:", table)
	}
}

func TestReadTableKeepsRaggedRows(t *testing.T) {
	table, err := ReadTable(strings.NewReader("a,b,class\nx,y,yes\nx,no\n"), ',')
	if err != nil {
		t.Fatal("unexpected error reading table:", err)
	}
	if len(table[2]) != 2 {
		t.Error("expected ragged row to keep its 2 fields, got:", table[2])
	}
}

func TestReadTableByRowStops(t *testing.T) {
	var read int
	err := ReadTableByRow(strings.NewReader("a,class\nx,yes\ny,no\n"), ',', func(i int, row []string) (bool, error) {
		read++
		return i < 1, nil
	})
	if err != nil {
		t.Fatal("unexpected error reading table:", err)
	}
	if read != 2 {
		t.Error("expected reading to stop after 2 rows, got:", read)
	}
}

func TestWriteTable(t *testing.T) {
	buf := &bytes.Buffer{}
	err := WriteTable(buf, ',', [][]string{{"outlook", "play"}, {"sunny", "no"}})
	if err != nil {
		t.Fatal("unexpected error writing table:", err)
	}
	if buf.String() != "outlook,play\nsunny,no\n" {
		t.Errorf("unexpected CSV output %q", buf.String())
	}
}

func TestWriterRejectsRaggedRows(t *testing.T) {
	w, err := NewWriter(&bytes.Buffer{}, ',', []string{"a", "class"})
	if err != nil {
		t.Fatal("unexpected error creating writer:", err)
	}
	n, err := w.Write([][]string{{"x", "yes"}, {"x"}})
	if err == nil {
		t.Error("expected error writing ragged row")
	}
	if n != 1 || w.Count() != 1 {
		t.Errorf("expected 1 row written, got %d and count %d", n, w.Count())
	}
}
