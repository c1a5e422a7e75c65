package tree

import (
	"fmt"

	"github.com/pbanos/sapling/dataset"
	"github.com/pbanos/sapling/feature"
)

/*
Classify takes the root of a tree, the vocabulary it was grown with and an
example and returns the position of the predicted class in the label
vocabulary.

On every internal node the example's token for the node's attribute is
looked up in that attribute's vocabulary and the child at its position is
followed. Tokens that are not in the vocabulary, or missing because the
example is too short, follow the first child.
*/
func Classify(n Node, v *feature.Vocabulary, e dataset.Example) int {
	for {
		switch tn := n.(type) {
		case *Leaf:
			return tn.Class
		case *Internal:
			var i int
			if tn.Attribute < len(e) {
				if j, ok := v.Feature(tn.Attribute).Index(e[tn.Attribute]); ok {
					i = j
				}
			}
			n = tn.Children[i]
		default:
			panic(fmt.Sprintf("unexpected node %T", n))
		}
	}
}

/*
ClassifyWith works like Classify but takes a dataset.Sample, which is only
asked for the values of the attributes on the path to the leaf. It returns
an error if a value cannot be obtained from the sample.
*/
func ClassifyWith(n Node, v *feature.Vocabulary, s dataset.Sample) (int, error) {
	for {
		switch tn := n.(type) {
		case *Leaf:
			return tn.Class, nil
		case *Internal:
			token, err := s.Value(tn.Attribute)
			if err != nil {
				return -1, fmt.Errorf("classifying sample: obtaining value for %s: %v", v.Feature(tn.Attribute).Name(), err)
			}
			i, ok := v.Feature(tn.Attribute).Index(token)
			if !ok {
				i = 0
			}
			n = tn.Children[i]
		default:
			return -1, fmt.Errorf("classifying sample: unexpected node %T", n)
		}
	}
}
