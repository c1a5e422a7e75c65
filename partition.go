package sapling

import (
	"fmt"

	"github.com/pbanos/sapling/dataset"
	"github.com/pbanos/sapling/feature"
)

/*
Partition represents a partition of a dataset according to an attribute
into a subset per token in the attribute's vocabulary, with the
information gain it provides to predict the class
*/
type Partition struct {
	Attribute       int
	Subsets         []*dataset.Dataset
	informationGain float64
}

/*
NewPartition takes a dataset, the index of an attribute and the vocabulary
of the dataset and returns the partition of the dataset for the attribute.
Examples are grouped by their own value for the attribute, in the order they
appear on the dataset, into a subset per token of the attribute's vocabulary.
Subsets for tokens no example carries are empty.

The information gain of the partition is the entropy of the dataset minus
the entropy of each subset weighted by its share of the examples. It
returns an error if the attribute is the class or an example carries a token
not in the vocabulary.
*/
func NewPartition(d *dataset.Dataset, attribute int, v *feature.Vocabulary) (*Partition, error) {
	if attribute < 0 || attribute >= v.ClassIndex() {
		return nil, fmt.Errorf("cannot partition on attribute %d", attribute)
	}
	f := v.Feature(attribute)
	groups := make([][]dataset.Example, f.Count())
	for i, e := range d.Examples() {
		position, ok := f.Index(e[attribute])
		if !ok {
			return nil, fmt.Errorf("partitioning on %s: example %d has unknown value %q", f.Name(), i+1, e[attribute])
		}
		groups[position] = append(groups[position], e)
	}
	informationGain := d.Entropy()
	totalCount := float64(d.Count())
	subsets := make([]*dataset.Dataset, len(groups))
	for i, g := range groups {
		subsets[i] = d.Subset(g)
		if len(g) > 0 {
			informationGain -= dataset.Entropy(g) * float64(len(g)) / totalCount
		}
	}
	return &Partition{attribute, subsets, informationGain}, nil
}

// InformationGain returns the information gain of the partition.
func (p *Partition) InformationGain() float64 {
	return p.informationGain
}

/*
SelectBestAttribute takes a dataset, its vocabulary and a slice of candidate
attribute indexes and returns the partition on the candidate with the
highest information gain. Ties are resolved in favor of the candidate that
comes first in the slice. It returns nil if there are no candidates.
*/
func SelectBestAttribute(d *dataset.Dataset, v *feature.Vocabulary, candidates []int) (*Partition, error) {
	var selectedPartition *Partition
	for _, a := range candidates {
		p, err := NewPartition(d, a, v)
		if err != nil {
			return nil, err
		}
		if selectedPartition == nil || p.informationGain > selectedPartition.informationGain {
			selectedPartition = p
		}
	}
	return selectedPartition, nil
}
