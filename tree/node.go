package tree

import (
	"fmt"

	"github.com/pbanos/sapling/feature"
)

/*
Node is a node of a decision tree: either a *Leaf holding the class it
predicts or an *Internal node branching on an attribute.
*/
type Node interface {
	isNode()
}

// Leaf is a node that predicts the class at position Class of the label vocabulary.
type Leaf struct {
	Class int
}

/*
Internal is a node that branches on the attribute at index Attribute.
Children holds a subtree for every token in the vocabulary of that
attribute, the subtree at position i being the one for the token at
position i.
*/
type Internal struct {
	Attribute int
	Children  []Node
}

func (*Leaf) isNode()     {}
func (*Internal) isNode() {}

/*
Equal takes two nodes and returns whether they are structurally identical:
same attribute on every internal node, same number and order of children
and same class on every leaf.
*/
func Equal(a, b Node) bool {
	switch an := a.(type) {
	case *Leaf:
		bn, ok := b.(*Leaf)
		return ok && an.Class == bn.Class
	case *Internal:
		bn, ok := b.(*Internal)
		if !ok || an.Attribute != bn.Attribute || len(an.Children) != len(bn.Children) {
			return false
		}
		for i := range an.Children {
			if !Equal(an.Children[i], bn.Children[i]) {
				return false
			}
		}
		return true
	}
	return a == nil && b == nil
}

// Depth returns the number of internal nodes on the longest path from n to a leaf.
func Depth(n Node) int {
	in, ok := n.(*Internal)
	if !ok {
		return 0
	}
	var max int
	for _, c := range in.Children {
		if d := Depth(c); d > max {
			max = d
		}
	}
	return max + 1
}

/*
Validate takes a node and a vocabulary and returns an error if the tree
under the node cannot be used with the vocabulary: an internal node
branches on the class or an unknown attribute, does not have a child per
token of its attribute or a leaf predicts an unknown class.
*/
func Validate(n Node, v *feature.Vocabulary) error {
	switch tn := n.(type) {
	case *Leaf:
		if tn.Class < 0 || tn.Class >= v.Label().Count() {
			return fmt.Errorf("leaf predicts class %d but the label %s has %d values", tn.Class, v.Label().Name(), v.Label().Count())
		}
	case *Internal:
		if tn.Attribute < 0 || tn.Attribute >= v.ClassIndex() {
			return fmt.Errorf("internal node branches on invalid attribute %d", tn.Attribute)
		}
		f := v.Feature(tn.Attribute)
		if len(tn.Children) != f.Count() {
			return fmt.Errorf("internal node on %s has %d children but the feature has %d values", f.Name(), len(tn.Children), f.Count())
		}
		for _, c := range tn.Children {
			if err := Validate(c, v); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("unexpected node %T", n)
	}
	return nil
}
