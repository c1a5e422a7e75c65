package tree

import (
	"fmt"
	"strings"

	"github.com/pbanos/sapling/feature"
)

/*
Render takes the root of a tree and the vocabulary it was grown with and
returns a human readable representation of the tree: the name of the
attribute on every internal node, the token for every branch below it and
the predicted label on every leaf.
*/
func Render(n Node, v *feature.Vocabulary) string {
	return subtreeString(n, v)
}

func subtreeString(n Node, v *feature.Vocabulary) string {
	var result string
	switch tn := n.(type) {
	case *Leaf:
		return fmt.Sprintf("=> %s\n", v.Label().Value(tn.Class))
	case *Internal:
		f := v.Feature(tn.Attribute)
		result = fmt.Sprintf("%s\n", f.Name())
		for i, c := range tn.Children {
			indent := "|  "
			if i == len(tn.Children)-1 {
				indent = "   "
			}
			result = fmt.Sprintf("%s|__%s\n", result, f.Value(i))
			for _, line := range strings.Split(subtreeString(c, v), "\n") {
				if len(line) > 0 {
					result = fmt.Sprintf("%s%s%s\n", result, indent, line)
				}
			}
		}
	}
	return result
}
