package dataset

import (
	"math"
)

/*
Dataset represents an ordered collection of examples sharing a header of
attribute names. The last attribute is the class attribute.

Datasets are never modified once built: Subset returns a new dataset sharing
the header of the original one.
*/
type Dataset struct {
	header   []string
	examples []Example
}

/*
FromTable takes a raw table whose first row is a header with the attribute
names and whose remaining rows are examples and returns a Dataset with them.

It returns a *MalformedDatasetError if the table has fewer than 2 rows or
if any row does not have the same number of fields as the header.
*/
func FromTable(table [][]string) (*Dataset, error) {
	if len(table) < 2 {
		return nil, &MalformedDatasetError{Row: len(table), Attribute: -1, Reason: "a header and at least one example row are required"}
	}
	header := table[0]
	if len(header) == 0 {
		return nil, &MalformedDatasetError{Row: 0, Attribute: -1, Reason: "header has no fields"}
	}
	examples := make([]Example, 0, len(table)-1)
	for i, row := range table[1:] {
		if len(row) != len(header) {
			return nil, &MalformedDatasetError{Row: i + 1, Attribute: -1, Reason: raggedReason(len(row), len(header))}
		}
		examples = append(examples, Example(row))
	}
	return &Dataset{header: header, examples: examples}, nil
}

/*
New takes a header and a slice of examples and returns a dataset with them
without validating their shape. It is meant for callers that already hold
validated examples, like the partitions of a dataset.
*/
func New(header []string, examples []Example) *Dataset {
	return &Dataset{header: header, examples: examples}
}

// Header returns the attribute names of the dataset.
func (d *Dataset) Header() []string {
	return d.header
}

// Examples returns the examples in the dataset in their original order.
func (d *Dataset) Examples() []Example {
	return d.examples
}

// Count returns the number of examples in the dataset.
func (d *Dataset) Count() int {
	return len(d.examples)
}

// AttributeCount returns the number of attributes, class included.
func (d *Dataset) AttributeCount() int {
	return len(d.header)
}

// ClassIndex returns the index of the class attribute.
func (d *Dataset) ClassIndex() int {
	return len(d.header) - 1
}

// Subset returns a dataset with the given examples and the same header.
func (d *Dataset) Subset(examples []Example) *Dataset {
	return &Dataset{header: d.header, examples: examples}
}

// Entropy returns the entropy of the class label distribution of the dataset.
func (d *Dataset) Entropy() float64 {
	return Entropy(d.examples)
}

/*
CountLabels returns the distinct class labels of the dataset in order of
first occurrence and the number of examples carrying each of them.
*/
func (d *Dataset) CountLabels() ([]string, map[string]int) {
	return countLabels(d.examples)
}

/*
Entropy takes a slice of examples and returns the entropy in bits of their
class label distribution: -Σ p·log2(p), with p being the number of examples
carrying a label divided by the number of examples.

Entropy of an empty slice or of examples sharing a single label is 0.
*/
func Entropy(examples []Example) float64 {
	if len(examples) == 0 {
		return 0.0
	}
	labels, counts := countLabels(examples)
	total := float64(len(examples))
	var result float64
	for _, l := range labels {
		result -= XLogX(float64(counts[l]) / total)
	}
	return result
}

// XLogX returns x·log2(x), taking 0·log2(0) to be 0.
func XLogX(x float64) float64 {
	if x == 0 {
		return 0
	}
	return x * math.Log2(x)
}

func countLabels(examples []Example) ([]string, map[string]int) {
	var labels []string
	counts := make(map[string]int)
	for _, e := range examples {
		l := e.Label()
		if _, ok := counts[l]; !ok {
			labels = append(labels, l)
		}
		counts[l]++
	}
	return labels, counts
}
