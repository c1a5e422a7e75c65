package tree

import (
	"context"
	"fmt"
)

// Tree represents a decision tree saved on a NodeStore.
// It is composed of the NodeStore where its entries are
// stored, the id for the root entry of the tree and the
// name of the label it is able to predict.
type Tree struct {
	NodeStore
	RootID string
	Label  string
}

// New takes the ID for the root entry, a NodeStore and a label name and
// returns a tree composed of the entries in the NodeStore connected to the
// entry with the given root ID that predicts the given label.
func New(rootID string, nodeStore NodeStore, label string) *Tree {
	return &Tree{nodeStore, rootID, label}
}

/*
Save takes a context, a NodeStore, the root node of a tree and the name of
the label it predicts and creates an entry on the store for every node of
the tree. It returns the saved Tree or an error if any entry cannot be
created or stored.

Entries are created parent first, so children can reference their parent's
ID, and the parent is stored again once the IDs of all its children are
known.
*/
func Save(ctx context.Context, ns NodeStore, root Node, label string) (*Tree, error) {
	e, err := save(ctx, ns, root, "", 0)
	if err != nil {
		return nil, err
	}
	return New(e.ID, ns, label), nil
}

func save(ctx context.Context, ns NodeStore, n Node, parentID string, branch int) (*Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	e := &Entry{ParentID: parentID, Branch: branch}
	switch tn := n.(type) {
	case *Leaf:
		e.Leaf = true
		e.Class = tn.Class
		if err := ns.Create(ctx, e); err != nil {
			return nil, fmt.Errorf("saving leaf under %q: %v", parentID, err)
		}
		return e, nil
	case *Internal:
		e.Attribute = tn.Attribute
		if err := ns.Create(ctx, e); err != nil {
			return nil, fmt.Errorf("saving node under %q: %v", parentID, err)
		}
		e.ChildIDs = make([]string, 0, len(tn.Children))
		for i, c := range tn.Children {
			ce, err := save(ctx, ns, c, e.ID, i)
			if err != nil {
				return nil, err
			}
			e.ChildIDs = append(e.ChildIDs, ce.ID)
		}
		if err := ns.Store(ctx, e); err != nil {
			return nil, fmt.Errorf("saving node %q: %v", e.ID, err)
		}
		return e, nil
	}
	return nil, fmt.Errorf("saving node under %q: unexpected node %T", parentID, n)
}

/*
Load takes a context and returns the root node of the tree rebuilt from
the entries on its NodeStore, or an error if an entry cannot be retrieved,
is missing or is inconsistent with its parent.
*/
func (t *Tree) Load(ctx context.Context) (Node, error) {
	if t == nil {
		return nil, fmt.Errorf("nil tree cannot be loaded")
	}
	return t.load(ctx, t.RootID, "", 0)
}

func (t *Tree) load(ctx context.Context, id, parentID string, branch int) (Node, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	e, err := t.NodeStore.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("loading tree: retrieving node %v: %v", id, err)
	}
	if e == nil {
		return nil, fmt.Errorf("loading tree: node %v not found", id)
	}
	if e.ParentID != parentID || e.Branch != branch {
		return nil, fmt.Errorf("loading tree: node %v is not branch %d of %q", id, branch, parentID)
	}
	if e.Leaf {
		return &Leaf{Class: e.Class}, nil
	}
	if len(e.ChildIDs) == 0 {
		return nil, fmt.Errorf("loading tree: internal node %v has no children", id)
	}
	in := &Internal{Attribute: e.Attribute, Children: make([]Node, len(e.ChildIDs))}
	for i, cID := range e.ChildIDs {
		in.Children[i], err = t.load(ctx, cID, id, i)
		if err != nil {
			return nil, err
		}
	}
	return in, nil
}

// Traverse takes a context, bottomup boolean and an
// error-returning function that takes a context and an
// entry as parameters, and goes through the tree running
// the function with the context and every traversed entry.
// Traverse will call the function with a parent entry before
// calling it for its children if bottomup is false, and
// call it after its children if bottomup is true.
// If the given context times out or is cancelled, the context
// error is returned. If an entry cannot be retrieved from the
// tree's node store, the obtained error is returned. If the
// call to the function returns an error, the traversing is
// aborted and the error is returned. Otherwise, when the
// traversing is over, nil is returned.
func (t *Tree) Traverse(ctx context.Context, bottomup bool, f func(context.Context, *Entry) error) error {
	e, err := t.NodeStore.Get(ctx, t.RootID)
	if err != nil {
		return err
	}
	if e == nil {
		return fmt.Errorf("root node %v not found", t.RootID)
	}
	return t.traverse(ctx, e, bottomup, f)
}

func (t *Tree) traverse(ctx context.Context, e *Entry, bottomup bool, f func(context.Context, *Entry) error) error {
	err := ctx.Err()
	if err != nil {
		return err
	}
	if !bottomup {
		err = f(ctx, e)
	}
	if err != nil {
		return err
	}
	for _, cID := range e.ChildIDs {
		ce, err := t.NodeStore.Get(ctx, cID)
		if err != nil {
			return err
		}
		if ce == nil {
			return fmt.Errorf("node %v not found", cID)
		}
		err = t.traverse(ctx, ce, bottomup, f)
		if err != nil {
			return err
		}
	}
	if bottomup {
		err = f(ctx, e)
	}
	return err
}

// Delete removes every entry of the tree from its NodeStore, children first.
func (t *Tree) Delete(ctx context.Context) error {
	return t.Traverse(ctx, true, func(ctx context.Context, e *Entry) error {
		return t.NodeStore.Delete(ctx, e)
	})
}
