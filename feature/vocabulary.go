package feature

import (
	"fmt"

	"github.com/pbanos/sapling/dataset"
)

/*
Vocabulary holds a feature for each attribute of a dataset, in attribute
order. The last one is the class feature, whose vocabulary are the labels
a tree can predict.
*/
type Vocabulary struct {
	features []*Feature
}

/*
NewVocabulary takes a slice of features, the last being the class feature,
and returns a Vocabulary with them or an error if there are fewer than 2
features, two of them share a name, or any has an empty vocabulary.
*/
func NewVocabulary(features []*Feature) (*Vocabulary, error) {
	if len(features) < 2 {
		return nil, fmt.Errorf("a vocabulary needs at least one attribute and a class, got %d features", len(features))
	}
	names := make(map[string]bool, len(features))
	for i, f := range features {
		if f.Count() == 0 {
			return nil, &dataset.MalformedDatasetError{Row: -1, Attribute: i, Reason: fmt.Sprintf("feature %s has no values", f.Name())}
		}
		if names[f.Name()] {
			return nil, fmt.Errorf("feature name %s is repeated", f.Name())
		}
		names[f.Name()] = true
	}
	return &Vocabulary{features}, nil
}

/*
Index takes a dataset and returns the vocabulary of its attributes, class
included. For every attribute the examples are scanned top to bottom and
each token is added to the attribute's vocabulary the first time it is seen
in that attribute's column.
*/
func Index(d *dataset.Dataset) (*Vocabulary, error) {
	header := d.Header()
	features := make([]*Feature, len(header))
	for attr, name := range header {
		features[attr] = &Feature{name: name, indexes: make(map[string]int)}
	}
	for row, e := range d.Examples() {
		if len(e) != len(header) {
			return nil, &dataset.MalformedDatasetError{Row: row + 1, Attribute: -1, Reason: fmt.Sprintf("row has %d fields, header has %d", len(e), len(header))}
		}
		for attr, token := range e {
			features[attr].add(token)
		}
	}
	for attr, f := range features {
		if f.Count() == 0 {
			return nil, &dataset.MalformedDatasetError{Row: -1, Attribute: attr, Reason: fmt.Sprintf("no values for attribute %s", f.Name())}
		}
	}
	return &Vocabulary{features}, nil
}

/*
IndexTable takes a raw table, a header row followed by example rows, and
returns the dataset built from it and its vocabulary, or a
*dataset.MalformedDatasetError if the table cannot be used as a dataset.
*/
func IndexTable(table [][]string) (*dataset.Dataset, *Vocabulary, error) {
	d, err := dataset.FromTable(table)
	if err != nil {
		return nil, nil, err
	}
	v, err := Index(d)
	if err != nil {
		return nil, nil, err
	}
	return d, v, nil
}

// Features returns the features of the vocabulary in attribute order.
func (v *Vocabulary) Features() []*Feature {
	return v.features
}

// Feature returns the feature for the attribute at index i.
func (v *Vocabulary) Feature(i int) *Feature {
	return v.features[i]
}

// AttributeCount returns the number of attributes, class included.
func (v *Vocabulary) AttributeCount() int {
	return len(v.features)
}

// ClassIndex returns the index of the class attribute.
func (v *Vocabulary) ClassIndex() int {
	return len(v.features) - 1
}

// Label returns the class feature.
func (v *Vocabulary) Label() *Feature {
	return v.features[len(v.features)-1]
}

// Counts returns the number of tokens in the vocabulary of each attribute.
func (v *Vocabulary) Counts() []int {
	counts := make([]int, len(v.features))
	for i, f := range v.features {
		counts[i] = f.Count()
	}
	return counts
}
