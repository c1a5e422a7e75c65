package dataset

import (
	"fmt"
	"strings"
)

/*
Sample represents an item to classify or from which to learn how to classify
them.

Its Value method returns the token of the sample for the attribute at the
given index, or an error if the token cannot be obtained.
*/
type Sample interface {
	Value(attribute int) (string, error)
}

/*
Example is an ordered sequence of categorical tokens, one per attribute.
On training data its last token is the class label.
*/
type Example []string

// Value returns the token at the given attribute index or an error if the
// example has no field at that index.
func (e Example) Value(attribute int) (string, error) {
	if attribute < 0 || attribute >= len(e) {
		return "", fmt.Errorf("example with %d fields has no value for attribute %d", len(e), attribute)
	}
	return e[attribute], nil
}

// Label returns the last token of the example.
func (e Example) Label() string {
	if len(e) == 0 {
		return ""
	}
	return e[len(e)-1]
}

func (e Example) String() string {
	return fmt.Sprintf("[%s]", strings.Join(e, ", "))
}
