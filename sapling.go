/*
Package sapling grows categorical decision trees from labeled examples
with the ID3 algorithm and uses them to classify new examples.

Every attribute of the examples is an opaque categorical token. The last
attribute is the class.
*/
package sapling

import (
	"fmt"

	"github.com/pbanos/sapling/dataset"
	"github.com/pbanos/sapling/feature"
	"github.com/pbanos/sapling/tree"
)

/*
Build takes a dataset, its vocabulary and the PathState of the attributes
already branched on above the node being built and returns the subtree
grown from the dataset:
 * a leaf for the class of the examples if all of them share it
 * a leaf for the majority class of the examples if there are no
   attributes left to branch on
 * otherwise an internal node on the attribute with the highest
   information gain, with a subtree per token of the attribute grown from
   the examples carrying it, or a leaf for the majority class of the
   examples if none does

It returns an error if the dataset is empty or carries a token not in the
vocabulary.
*/
func Build(d *dataset.Dataset, v *feature.Vocabulary, ps PathState) (tree.Node, error) {
	if d.Count() == 0 {
		return nil, fmt.Errorf("cannot grow a tree from an empty dataset")
	}
	labels, _ := d.CountLabels()
	if len(labels) == 1 {
		class, err := classIndex(v, labels[0])
		if err != nil {
			return nil, err
		}
		return &tree.Leaf{Class: class}, nil
	}
	majority, err := majorityClassIndex(d, v)
	if err != nil {
		return nil, err
	}
	candidates := ps.Candidates(v.ClassIndex())
	if len(candidates) == 0 {
		return &tree.Leaf{Class: majority}, nil
	}
	p, err := SelectBestAttribute(d, v, candidates)
	if err != nil {
		return nil, err
	}
	branchPS := ps.With(p.Attribute)
	children := make([]tree.Node, len(p.Subsets))
	for i, s := range p.Subsets {
		if s.Count() == 0 {
			children[i] = &tree.Leaf{Class: majority}
			continue
		}
		children[i], err = Build(s, v, branchPS)
		if err != nil {
			return nil, err
		}
	}
	return &tree.Internal{Attribute: p.Attribute, Children: children}, nil
}

/*
majorityClassIndex returns the position of the label carried by the most
examples in the dataset. Ties are resolved in favor of the label seen first.
*/
func majorityClassIndex(d *dataset.Dataset, v *feature.Vocabulary) (int, error) {
	labels, counts := d.CountLabels()
	var majority string
	var max int
	for _, l := range labels {
		if counts[l] > max {
			majority = l
			max = counts[l]
		}
	}
	return classIndex(v, majority)
}

func classIndex(v *feature.Vocabulary, label string) (int, error) {
	i, ok := v.Label().Index(label)
	if !ok {
		return -1, fmt.Errorf("label %q is not a value of %s", label, v.Label().Name())
	}
	return i, nil
}
