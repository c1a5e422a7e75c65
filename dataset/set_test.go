package dataset

import (
	"math"
	"testing"
)

func TestFromTable(t *testing.T) {
	ds, err := FromTable([][]string{
		{"outlook", "wind", "play"},
		{"sunny", "weak", "no"},
		{"rain", "strong", "yes"},
	})
	if err != nil {
		t.Fatal("unexpected error building dataset:", err)
	}
	if ds.Count() != 2 {
		t.Error("expected 2 examples, got:", ds.Count())
	}
	if ds.AttributeCount() != 3 {
		t.Error("expected 3 attributes, got:", ds.AttributeCount())
	}
	if ds.ClassIndex() != 2 {
		t.Error("expected class index 2, got:", ds.ClassIndex())
	}
	if ds.Examples()[1].Label() != "yes" {
		t.Error("expected second example label to be yes, got:", ds.Examples()[1].Label())
	}
}

func TestFromTableTooFewRows(t *testing.T) {
	for _, table := range [][][]string{nil, {{"a", "class"}}} {
		_, err := FromTable(table)
		if _, ok := err.(*MalformedDatasetError); !ok {
			t.Errorf("expected MalformedDatasetError for %d rows, got: %v", len(table), err)
		}
	}
}

func TestFromTableRagged(t *testing.T) {
	_, err := FromTable([][]string{
		{"a", "b", "class"},
		{"x", "y", "yes"},
		{"x", "no"},
	})
	mde, ok := err.(*MalformedDatasetError)
	if !ok {
		t.Fatal("expected MalformedDatasetError, got:", err)
	}
	if mde.Row != 2 {
		t.Error("expected error on row 2, got:", mde.Row)
	}
}

func TestEntropySingleLabel(t *testing.T) {
	examples := []Example{{"a", "yes"}, {"b", "yes"}, {"c", "yes"}}
	if e := Entropy(examples); e != 0 {
		t.Error("expected entropy 0 for a pure set, got:", e)
	}
}

func TestEntropyEvenSplit(t *testing.T) {
	examples := []Example{{"a", "yes"}, {"b", "no"}, {"c", "yes"}, {"d", "no"}}
	if e := Entropy(examples); math.Abs(e-1.0) > 1e-9 {
		t.Error("expected entropy 1 for a 50/50 split, got:", e)
	}
}

func TestEntropyWeather(t *testing.T) {
	// 9 yes, 5 no
	var examples []Example
	for i := 0; i < 9; i++ {
		examples = append(examples, Example{"yes"})
	}
	for i := 0; i < 5; i++ {
		examples = append(examples, Example{"no"})
	}
	if e := Entropy(examples); math.Abs(e-0.940286) > 1e-6 {
		t.Error("expected entropy to be 0.940286, got:", e)
	}
}

func TestEntropyEmpty(t *testing.T) {
	if e := Entropy(nil); e != 0 {
		t.Error("expected entropy 0 for no examples, got:", e)
	}
}

func TestXLogX(t *testing.T) {
	if v := XLogX(0); v != 0 {
		t.Error("expected xlogx(0) to be 0, got:", v)
	}
	if v := XLogX(0.5); v != -0.5 {
		t.Error("expected xlogx(0.5) to be -0.5, got:", v)
	}
}

func TestCountLabelsOrder(t *testing.T) {
	ds := New([]string{"a", "class"}, []Example{{"x", "no"}, {"y", "yes"}, {"z", "no"}})
	labels, counts := ds.CountLabels()
	if len(labels) != 2 || labels[0] != "no" || labels[1] != "yes" {
		t.Error("expected labels in first occurrence order [no yes], got:", labels)
	}
	if counts["no"] != 2 || counts["yes"] != 1 {
		t.Error("unexpected label counts:", counts)
	}
}

func TestExampleValue(t *testing.T) {
	e := Example{"sunny", "no"}
	v, err := e.Value(0)
	if err != nil || v != "sunny" {
		t.Errorf("expected sunny, nil; got %q, %v", v, err)
	}
	if _, err = e.Value(5); err == nil {
		t.Error("expected error for attribute out of range")
	}
}
