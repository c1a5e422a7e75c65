package sapling

import (
	"testing"

	"github.com/pbanos/sapling/dataset"
)

func TestTrainTableConsistency(t *testing.T) {
	m, err := TrainTable(weatherTable)
	if err != nil {
		t.Fatal("unexpected error training:", err)
	}
	c, err := m.Classify(weatherTable)
	if err != nil {
		t.Fatal("unexpected error classifying:", err)
	}
	if c.Len() != len(weatherTable)-1 {
		t.Fatalf("expected %d labels, got: %d", len(weatherTable)-1, c.Len())
	}
	for i, l := range c.Labels() {
		if l != weatherTable[i+1][4] {
			t.Errorf("expected row %d to be classified as %s, got: %s", i+1, weatherTable[i+1][4], l)
		}
	}
}

func TestTrainTableMalformed(t *testing.T) {
	_, err := TrainTable([][]string{{"outlook", "play"}})
	if _, ok := err.(*dataset.MalformedDatasetError); !ok {
		t.Error("expected MalformedDatasetError, got:", err)
	}
	_, err = TrainTable([][]string{{"outlook", "play"}, {"sunny", "no"}, {"rain"}})
	if _, ok := err.(*dataset.MalformedDatasetError); !ok {
		t.Error("expected MalformedDatasetError for ragged rows, got:", err)
	}
}

func TestClassifyUntrained(t *testing.T) {
	var m *Model
	if _, err := m.Classify(weatherTable); err != ErrUntrainedModel {
		t.Error("expected ErrUntrainedModel for nil model, got:", err)
	}
	if _, err := (&Model{}).Classify(weatherTable); err != ErrUntrainedModel {
		t.Error("expected ErrUntrainedModel for empty model, got:", err)
	}
	if _, err := (&Model{}).ClassifyExample(dataset.Example{"sunny"}); err != ErrUntrainedModel {
		t.Error("expected ErrUntrainedModel classifying example, got:", err)
	}
	if _, err := (&Model{}).Test(weatherTable); err != ErrUntrainedModel {
		t.Error("expected ErrUntrainedModel testing, got:", err)
	}
}

func TestClassifyWithoutClassColumn(t *testing.T) {
	m, err := TrainTable(weatherTable)
	if err != nil {
		t.Fatal("unexpected error training:", err)
	}
	c, err := m.Classify([][]string{
		{"outlook", "temperature", "humidity", "wind"},
		{"sunny", "mild", "normal", "weak"},
		{"rain", "cool", "high", "strong"},
	})
	if err != nil {
		t.Fatal("unexpected error classifying:", err)
	}
	labels := c.Labels()
	if len(labels) != 2 || labels[0] != "yes" || labels[1] != "no" {
		t.Error("expected labels [yes no], got:", labels)
	}
}

func TestClassifyOutOfVocabulary(t *testing.T) {
	m, err := TrainTable(weatherTable)
	if err != nil {
		t.Fatal("unexpected error training:", err)
	}
	table := [][]string{
		{"outlook", "temperature", "humidity", "wind"},
		{"fog", "mild", "high", "weak"},
	}
	// fog falls back to sunny, where high humidity means no
	for i := 0; i < 3; i++ {
		c, err := m.Classify(table)
		if err != nil {
			t.Fatal("unexpected error classifying:", err)
		}
		if labels := c.Labels(); labels[0] != "no" {
			t.Error("expected fallback prediction no, got:", labels[0])
		}
	}
}

func TestClassifyHeaderMismatch(t *testing.T) {
	m, err := TrainTable(weatherTable)
	if err != nil {
		t.Fatal("unexpected error training:", err)
	}
	_, err = m.Classify([][]string{{"outlook", "humidity"}, {"sunny", "high"}})
	if _, ok := err.(*dataset.MalformedDatasetError); !ok {
		t.Error("expected MalformedDatasetError, got:", err)
	}
	_, err = m.Classify([][]string{
		{"outlook", "temperature", "wind", "humidity"},
		{"sunny", "mild", "weak", "high"},
	})
	mde, ok := err.(*dataset.MalformedDatasetError)
	if !ok {
		t.Fatal("expected MalformedDatasetError, got:", err)
	}
	if mde.Attribute != 2 {
		t.Error("expected error on attribute 2, got:", mde.Attribute)
	}
}

func TestClassificationsRestartable(t *testing.T) {
	m, err := TrainTable(weatherTable)
	if err != nil {
		t.Fatal("unexpected error training:", err)
	}
	c, err := m.Classify(weatherTable)
	if err != nil {
		t.Fatal("unexpected error classifying:", err)
	}
	first := c.Labels()
	it := c.Iterator()
	for i := 0; it.Next(); i++ {
		if it.Val() != first[i] || it.Row() != i {
			t.Errorf("expected row %d to be %s, got row %d %s", i, first[i], it.Row(), it.Val())
		}
	}
	if it.Next() {
		t.Error("expected exhausted iterator to stay exhausted")
	}
}

func TestModelTest(t *testing.T) {
	m, err := TrainTable(weatherTable)
	if err != nil {
		t.Fatal("unexpected error training:", err)
	}
	rate, err := m.Test(weatherTable)
	if err != nil {
		t.Fatal("unexpected error testing:", err)
	}
	if rate != 1.0 {
		t.Error("expected success rate 1 on training data, got:", rate)
	}
	rate, err = m.Test([][]string{
		weatherTable[0],
		{"overcast", "hot", "high", "weak", "yes"},
		{"overcast", "hot", "high", "weak", "no"},
	})
	if err != nil {
		t.Fatal("unexpected error testing:", err)
	}
	if rate != 0.5 {
		t.Error("expected success rate 0.5, got:", rate)
	}
}

func TestClassifySample(t *testing.T) {
	m, err := TrainTable(weatherTable)
	if err != nil {
		t.Fatal("unexpected error training:", err)
	}
	// overcast only needs the outlook
	l, err := m.ClassifySample(dataset.Example{"overcast"})
	if err != nil || l != "yes" {
		t.Errorf("expected yes, nil; got %q, %v", l, err)
	}
}
