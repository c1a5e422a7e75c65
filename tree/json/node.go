package json

import (
	"encoding/json"
	"fmt"

	"github.com/pbanos/sapling/feature"
	"github.com/pbanos/sapling/tree"
)

type entryEncodeDecoder struct {
	vocabulary *feature.Vocabulary
}

type entry struct {
	ID       string   `json:"id"`
	ParentID string   `json:"pId,omitempty"`
	Branch   int      `json:"b"`
	Feature  *string  `json:"f,omitempty"`
	Class    *string  `json:"class,omitempty"`
	ChildIDs []string `json:"stIds,omitempty"`
}

/*
NewEntryEncodeDecoder returns a tree.EntryEncodeDecoder that encodes entries
as JSON objects referencing attributes by feature name and classes by label
value, resolving them back to positions with the given vocabulary.
*/
func NewEntryEncodeDecoder(v *feature.Vocabulary) tree.EntryEncodeDecoder {
	return &entryEncodeDecoder{v}
}

func (eed *entryEncodeDecoder) Encode(e *tree.Entry) ([]byte, error) {
	je := &entry{
		ID:       e.ID,
		ParentID: e.ParentID,
		Branch:   e.Branch,
	}
	if e.Leaf {
		label := eed.vocabulary.Label()
		if e.Class < 0 || e.Class >= label.Count() {
			return nil, fmt.Errorf("encoding node %v: unknown class %d", e.ID, e.Class)
		}
		class := label.Value(e.Class)
		je.Class = &class
	} else {
		if e.Attribute < 0 || e.Attribute >= eed.vocabulary.ClassIndex() {
			return nil, fmt.Errorf("encoding node %v: unknown attribute %d", e.ID, e.Attribute)
		}
		name := eed.vocabulary.Feature(e.Attribute).Name()
		je.Feature = &name
		je.ChildIDs = e.ChildIDs
	}
	return json.Marshal(je)
}

func (eed *entryEncodeDecoder) Decode(data []byte) (*tree.Entry, error) {
	je := &entry{}
	err := json.Unmarshal(data, je)
	if err != nil {
		return nil, err
	}
	e := &tree.Entry{ID: je.ID, ParentID: je.ParentID, Branch: je.Branch}
	switch {
	case je.Class != nil:
		var ok bool
		e.Leaf = true
		e.Class, ok = eed.vocabulary.Label().Index(*je.Class)
		if !ok {
			return nil, fmt.Errorf("unmarshalling node %v: unknown class %q", e.ID, *je.Class)
		}
	case je.Feature != nil:
		e.Attribute = -1
		for i, f := range eed.vocabulary.Features()[:eed.vocabulary.ClassIndex()] {
			if f.Name() == *je.Feature {
				e.Attribute = i
				break
			}
		}
		if e.Attribute < 0 {
			return nil, fmt.Errorf("unmarshalling node %v: unknown feature %v", e.ID, *je.Feature)
		}
		if len(je.ChildIDs) > 0 {
			e.ChildIDs = je.ChildIDs
		}
	default:
		return nil, fmt.Errorf("unmarshalling node %v: neither a class nor a feature", e.ID)
	}
	return e, nil
}
