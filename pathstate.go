package sapling

import (
	"sort"

	"github.com/emirpasic/gods/sets/hashset"
)

/*
PathState holds the attributes already branched on from the root of a tree
down to a node. PathStates are never modified: With returns a new one, so
sibling branches never see each other's attributes.

The zero value is an empty PathState.
*/
type PathState struct {
	used *hashset.Set
}

// NewPathState returns a PathState with the given attributes.
func NewPathState(attributes ...int) PathState {
	used := hashset.New()
	for _, a := range attributes {
		used.Add(a)
	}
	return PathState{used}
}

// With returns a new PathState with the attributes of ps and the given one.
func (ps PathState) With(attribute int) PathState {
	return NewPathState(append(ps.Attributes(), attribute)...)
}

// Contains returns whether the attribute is in the PathState.
func (ps PathState) Contains(attribute int) bool {
	return ps.used != nil && ps.used.Contains(attribute)
}

// Len returns the number of attributes in the PathState.
func (ps PathState) Len() int {
	if ps.used == nil {
		return 0
	}
	return ps.used.Size()
}

// Attributes returns the attributes in the PathState in increasing order.
func (ps PathState) Attributes() []int {
	if ps.used == nil {
		return nil
	}
	attributes := make([]int, 0, ps.used.Size())
	for _, v := range ps.used.Values() {
		attributes = append(attributes, v.(int))
	}
	sort.Ints(attributes)
	return attributes
}

// Candidates returns the attributes below count that are not in the PathState, in increasing order.
func (ps PathState) Candidates(count int) []int {
	var candidates []int
	for a := 0; a < count; a++ {
		if !ps.Contains(a) {
			candidates = append(candidates, a)
		}
	}
	return candidates
}
