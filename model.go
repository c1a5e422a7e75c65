package sapling

import (
	"fmt"

	"github.com/pbanos/sapling/dataset"
	"github.com/pbanos/sapling/feature"
	"github.com/pbanos/sapling/tree"
)

// UntrainedModelError represents an error related with using models that were never trained
type UntrainedModelError string

/*
ErrUntrainedModel is the error returned when trying to classify examples
with a model that has no tree or vocabulary.
*/
const ErrUntrainedModel = UntrainedModelError("model has not been trained")

func (ume UntrainedModelError) Error() string {
	return string(ume)
}

/*
Model is a trained classifier: the vocabulary of the training dataset and
the tree grown from it. Models are not modified once trained and can be
used to classify examples from several goroutines at once.
*/
type Model struct {
	Vocabulary *feature.Vocabulary
	Root       tree.Node
}

/*
TrainTable takes a raw table, a header row followed by example rows, and
returns the model trained on it. It returns a *dataset.MalformedDatasetError
if the table cannot be used as a dataset, before growing any tree.
*/
func TrainTable(table [][]string) (*Model, error) {
	d, v, err := feature.IndexTable(table)
	if err != nil {
		return nil, err
	}
	return Train(d, v)
}

/*
Train takes a dataset and a vocabulary for its attributes and returns the
model with the tree grown from the dataset. It returns an error if the
vocabulary does not describe the attributes of the dataset or an example
carries a token not in it.
*/
func Train(d *dataset.Dataset, v *feature.Vocabulary) (*Model, error) {
	if err := checkHeader(d.Header(), v, v.AttributeCount()); err != nil {
		return nil, err
	}
	root, err := Build(d, v, PathState{})
	if err != nil {
		return nil, fmt.Errorf("growing tree: %v", err)
	}
	return &Model{v, root}, nil
}

/*
ClassifyExample takes an example and returns the label the model predicts
for it. Unknown tokens follow the first branch of the node asking for them.
*/
func (m *Model) ClassifyExample(e dataset.Example) (string, error) {
	if !m.trained() {
		return "", ErrUntrainedModel
	}
	return m.Vocabulary.Label().Value(tree.Classify(m.Root, m.Vocabulary, e)), nil
}

/*
ClassifySample works like ClassifyExample but takes a dataset.Sample that is
only asked for the values on the path to the predicted leaf.
*/
func (m *Model) ClassifySample(s dataset.Sample) (string, error) {
	if !m.trained() {
		return "", ErrUntrainedModel
	}
	c, err := tree.ClassifyWith(m.Root, m.Vocabulary, s)
	if err != nil {
		return "", err
	}
	return m.Vocabulary.Label().Value(c), nil
}

/*
Classify takes a raw table of examples to classify, with the same header as
the training table, and returns the sequence of labels the model predicts
for its rows. The class column may be left out of the table; if present it
is ignored.

Labels are computed as the sequence is iterated, not by Classify itself.
It returns ErrUntrainedModel if the model has not been trained or a
*dataset.MalformedDatasetError if the table has fewer than 2 rows, ragged
rows or a header that does not match the vocabulary.
*/
func (m *Model) Classify(table [][]string) (*Classifications, error) {
	if !m.trained() {
		return nil, ErrUntrainedModel
	}
	d, err := dataset.FromTable(table)
	if err != nil {
		return nil, err
	}
	fields := d.AttributeCount()
	if fields != m.Vocabulary.ClassIndex() {
		fields = m.Vocabulary.AttributeCount()
	}
	if err = checkHeader(d.Header(), m.Vocabulary, fields); err != nil {
		return nil, err
	}
	return &Classifications{m, d.Examples()}, nil
}

/*
Test takes a raw table of labeled examples with the same header as the
training table and returns the rate of them whose label the model predicts
correctly.
*/
func (m *Model) Test(table [][]string) (float64, error) {
	if !m.trained() {
		return 0.0, ErrUntrainedModel
	}
	d, err := dataset.FromTable(table)
	if err != nil {
		return 0.0, err
	}
	if err = checkHeader(d.Header(), m.Vocabulary, m.Vocabulary.AttributeCount()); err != nil {
		return 0.0, err
	}
	var result float64
	label := m.Vocabulary.Label()
	for _, e := range d.Examples() {
		if label.Value(tree.Classify(m.Root, m.Vocabulary, e)) == e.Label() {
			result += 1.0
		}
	}
	return result / float64(d.Count()), nil
}

func (m *Model) trained() bool {
	return m != nil && m.Vocabulary != nil && m.Root != nil
}

// checkHeader returns an error unless header has fields names matching those of the vocabulary.
func checkHeader(header []string, v *feature.Vocabulary, fields int) error {
	if len(header) != fields {
		return &dataset.MalformedDatasetError{Row: 0, Attribute: -1, Reason: fmt.Sprintf("header has %d fields, expected %d", len(header), fields)}
	}
	for i, name := range header {
		if name != v.Feature(i).Name() {
			return &dataset.MalformedDatasetError{Row: 0, Attribute: i, Reason: fmt.Sprintf("header has %s where %s was expected", name, v.Feature(i).Name())}
		}
	}
	return nil
}

/*
Classifications is the finite sequence of labels predicted by a model for
the rows of a table, in row order. It can be iterated any number of times.
*/
type Classifications struct {
	model    *Model
	examples []dataset.Example
}

// Len returns the number of labels in the sequence.
func (c *Classifications) Len() int {
	return len(c.examples)
}

// Iterator returns an iterator positioned before the first label of the sequence.
func (c *Classifications) Iterator() *ClassificationIterator {
	return &ClassificationIterator{c: c, pos: -1}
}

// Labels returns all the labels of the sequence.
func (c *Classifications) Labels() []string {
	labels := make([]string, 0, len(c.examples))
	for it := c.Iterator(); it.Next(); {
		labels = append(labels, it.Val())
	}
	return labels
}

/*
ClassificationIterator iterates over a Classifications sequence, computing
each label when it is reached:

	for it := c.Iterator(); it.Next(); {
		fmt.Println(it.Val())
	}
*/
type ClassificationIterator struct {
	c   *Classifications
	pos int
	val string
}

// Next advances to the next label and returns false when the sequence is exhausted.
func (it *ClassificationIterator) Next() bool {
	if it.pos+1 >= len(it.c.examples) {
		it.pos = len(it.c.examples)
		return false
	}
	it.pos++
	m := it.c.model
	it.val = m.Vocabulary.Label().Value(tree.Classify(m.Root, m.Vocabulary, it.c.examples[it.pos]))
	return true
}

// Val returns the label the iterator is positioned at.
func (it *ClassificationIterator) Val() string {
	return it.val
}

// Row returns the index of the example the label was predicted for, 0 being the first one.
func (it *ClassificationIterator) Row() int {
	return it.pos
}
