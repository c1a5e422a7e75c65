package feature

import (
	"fmt"
)

/*
Feature represents an attribute of the examples that can only take a value
among a finite set of categorical tokens: its vocabulary.

Each token in the vocabulary has a stable position, the order in which it
was first observed, which is used by trees to index their branches.
*/
type Feature struct {
	name    string
	values  []string
	indexes map[string]int
}

/*
NewFeature takes a name string and a slice of unique value strings and
returns a feature with the given name and vocabulary. It returns an error
if a value is repeated.
*/
func NewFeature(name string, values []string) (*Feature, error) {
	f := &Feature{name: name, indexes: make(map[string]int, len(values))}
	for _, v := range values {
		if _, ok := f.indexes[v]; ok {
			return nil, fmt.Errorf("feature %s: value %q is repeated", name, v)
		}
		f.add(v)
	}
	return f, nil
}

/*
Name returns a string with the name of the feature
*/
func (f *Feature) Name() string {
	return f.name
}

/*
Values returns a string slice with the vocabulary of the feature in order of
position. The slice must not be modified.
*/
func (f *Feature) Values() []string {
	return f.values
}

// Count returns the number of tokens in the vocabulary.
func (f *Feature) Count() int {
	return len(f.values)
}

// Value returns the token at position i of the vocabulary.
func (f *Feature) Value(i int) string {
	return f.values[i]
}

/*
Index takes a token and returns its position in the vocabulary and true, or
-1 and false if the token is not in the vocabulary.
*/
func (f *Feature) Index(token string) (int, bool) {
	i, ok := f.indexes[token]
	if !ok {
		return -1, false
	}
	return i, true
}

func (f *Feature) String() string {
	return f.name
}

// add appends the token if it is not known yet and returns its position.
func (f *Feature) add(token string) int {
	if i, ok := f.indexes[token]; ok {
		return i
	}
	f.values = append(f.values, token)
	f.indexes[token] = len(f.values) - 1
	return len(f.values) - 1
}
