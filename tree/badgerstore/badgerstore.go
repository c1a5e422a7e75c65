/*
Package badgerstore provides a tree.NodeStore that keeps entries on a
badger key-value database on the local filesystem.
*/
package badgerstore

import (
	"context"
	"fmt"

	badger "github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/pbanos/sapling/tree"
)

type badgerStore struct {
	db      *badger.DB
	prefix  string
	eencdec tree.EntryEncodeDecoder
}

/*
Open takes the path to a directory, a key prefix and a
tree.EntryEncodeDecoder and returns a tree.NodeStore backed by a badger
database on that directory, which is created if it does not exist.
*/
func Open(dir, prefix string, eencdec tree.EntryEncodeDecoder) (tree.NodeStore, error) {
	db, err := badger.Open(badger.DefaultOptions(dir).WithLogger(nil))
	if err != nil {
		return nil, fmt.Errorf("opening badger database at %s: %v", dir, err)
	}
	return New(db, prefix, eencdec), nil
}

// New builds a tree.NodeStore on an open badger database.
func New(db *badger.DB, prefix string, eencdec tree.EntryEncodeDecoder) tree.NodeStore {
	return &badgerStore{db, prefix, eencdec}
}

func (bs *badgerStore) Create(ctx context.Context, e *tree.Entry) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		e.ID = uuid.New().String()
		data, err := bs.eencdec.Encode(e)
		if err != nil {
			return fmt.Errorf("creating node: encoding node: %v", err)
		}
		var taken bool
		err = bs.db.Update(func(txn *badger.Txn) error {
			_, err := txn.Get(bs.keyFor(e.ID))
			if err == nil {
				taken = true
				return nil
			}
			if err != badger.ErrKeyNotFound {
				return err
			}
			return txn.Set(bs.keyFor(e.ID), data)
		})
		if err != nil {
			return fmt.Errorf("creating node in badger: %v", err)
		}
		if !taken {
			return nil
		}
	}
}

func (bs *badgerStore) Get(ctx context.Context, id string) (*tree.Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var data []byte
	err := bs.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(bs.keyFor(id))
		if err != nil {
			return err
		}
		data, err = item.ValueCopy(nil)
		return err
	})
	if err == badger.ErrKeyNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("retrieving node %q: %v", id, err)
	}
	e, err := bs.eencdec.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("retrieving node %q: decoding %q: %v", id, data, err)
	}
	return e, nil
}

func (bs *badgerStore) Store(ctx context.Context, e *tree.Entry) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := bs.eencdec.Encode(e)
	if err != nil {
		return fmt.Errorf("storing node %q: encoding node: %v", e.ID, err)
	}
	err = bs.db.Update(func(txn *badger.Txn) error {
		return txn.Set(bs.keyFor(e.ID), data)
	})
	if err != nil {
		return fmt.Errorf("storing node %q in badger: %v", e.ID, err)
	}
	return nil
}

func (bs *badgerStore) Delete(ctx context.Context, e *tree.Entry) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	err := bs.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(bs.keyFor(e.ID))
	})
	if err != nil {
		return fmt.Errorf("deleting node %q from badger: %v", e.ID, err)
	}
	return nil
}

func (bs *badgerStore) Close(ctx context.Context) error {
	return bs.db.Close()
}

func (bs *badgerStore) keyFor(id string) []byte {
	return []byte(fmt.Sprintf("%s:%s", bs.prefix, id))
}
