package json

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/pbanos/sapling/tree"
)

/*
WriteJSONTree takes a context.Context, a pointer to a tree.Tree
a tree.EntryEncodeDecoder and an io.Writer and serializes the given
tree as JSON onto the io.Writer.
A tree is serialized as a JSON object with the following fields:
* "rootID": a string with the ID of the node at the root of the tree
* "label": a string with the name of the feature the tree predicts
* "nodes": an array containing the nodes that can be traversed on the tree
  serialized by the given EntryEncodeDecoder.
An error is returned if the tree cannot be traversed, serialized or written
onto the io.Writer.
*/
func WriteJSONTree(ctx context.Context, t *tree.Tree, eed tree.EntryEncodeDecoder, w io.Writer) error {
	err := marshalJSONTreeHeader(t, w)
	if err != nil {
		return err
	}
	var i int
	err = t.Traverse(ctx, false, func(ctx context.Context, e *tree.Entry) error {
		err := writeEntry(i, e, eed, w)
		i++
		return err
	})
	if err != nil {
		return err
	}
	return marshalJSONTreeFooter(w)
}

/*
ReadJSONTree takes a context.Context, a tree.NodeStore, a
tree.EntryEncodeDecoder and an io.Reader and unmarshals the contents of
the io.Reader onto the given store, returning the read tree.
A tree is expected to be a JSON object with the following fields:
* "rootID": a string with the ID of the node at the root of the tree
* "label": a string with the name of the feature the tree predicts
* "nodes": an array containing the nodes that can be traversed on the tree
  decoded by the given EntryEncodeDecoder.
An error is returned if the JSON cannot be read from the io.Reader or
its nodes cannot be stored.
*/
func ReadJSONTree(ctx context.Context, ns tree.NodeStore, eed tree.EntryEncodeDecoder, r io.Reader) (*tree.Tree, error) {
	dec := json.NewDecoder(r)
	jt := &struct {
		RootID string             `json:"rootID"`
		Label  string             `json:"label"`
		Nodes  []*json.RawMessage `json:"nodes"`
	}{}
	err := dec.Decode(jt)
	if err != nil {
		return nil, err
	}
	if jt.Label == "" {
		return nil, fmt.Errorf("no label feature defined")
	}
	if jt.RootID == "" {
		return nil, fmt.Errorf("no root node id available")
	}
	for _, jn := range jt.Nodes {
		if jn == nil {
			return nil, fmt.Errorf("null node in tree")
		}
		e, err := eed.Decode(*jn)
		if err != nil {
			return nil, err
		}
		err = ns.Store(ctx, e)
		if err != nil {
			return nil, err
		}
	}
	return tree.New(jt.RootID, ns, jt.Label), nil
}

func marshalJSONTreeHeader(t *tree.Tree, w io.Writer) error {
	jrootID, err := json.Marshal(t.RootID)
	if err != nil {
		return err
	}
	jLabel, err := json.Marshal(t.Label)
	if err != nil {
		return err
	}
	header := fmt.Sprintf(`{"rootID":%s,"label":%s,"nodes":[`, jrootID, jLabel)
	_, err = w.Write([]byte(header))
	return err
}

func writeEntry(i int, e *tree.Entry, eed tree.EntryEncodeDecoder, w io.Writer) error {
	if i != 0 {
		_, err := w.Write([]byte(","))
		if err != nil {
			return err
		}
	}
	je, err := eed.Encode(e)
	if err != nil {
		return err
	}
	_, err = w.Write(je)
	return err
}

func marshalJSONTreeFooter(w io.Writer) error {
	_, err := w.Write([]byte(`]}`))
	return err
}
