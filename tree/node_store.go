package tree

import (
	"context"
	"fmt"
	"sync"
)

/*
Entry is the record a NodeStore keeps for a
node of a tree. Entries reference their children
by ID so trees can be saved onto and loaded from
stores that keep every node apart.
*/
type Entry struct {
	// An ID to identify the entry
	ID string
	// The ID for the parent of the entry in the tree
	ParentID string
	// The position of the entry among the children
	// of its parent
	Branch int
	// Whether the entry is for a leaf
	Leaf bool
	// The class predicted by a leaf
	Class int
	// The attribute an internal node branches on
	Attribute int
	// The IDs of the children of an internal node
	// in order of branch
	ChildIDs []string
}

/*
EntryEncodeDecoder is an interface for objects
that allow encoding entries into slices of
bytes and decoding them back to entries.
*/
type EntryEncodeDecoder interface {
	// Encode receives an *Entry and returns a
	// slice of bytes with the entry encoded or an
	// error if the encoding could not be performed.
	Encode(*Entry) ([]byte, error)
	// Decode receives a slice of bytes and returns
	// an *Entry decoded from it or an error if the
	// decoding could not be performed.
	Decode([]byte) (*Entry, error)
}

/*
NodeStore is an interface to manage a store
where tree entries can be created, retrieved,
updated and deleted.

All it methods take a context that may allow
cancelling the operation (thus forcing the return
of an error) if the implementation allows it.
*/
type NodeStore interface {
	// Create takes an entry and stores it for the
	// first time in the store, creating an ID for
	// it and setting it for the entry. It returns
	// an error if the entry cannot be stored.
	Create(ctx context.Context, e *Entry) error
	// Get takes an id and returns the entry in the
	// store with that id (or nil if it cannot be
	// found) or an error if the store cannot be
	// queried
	Get(ctx context.Context, id string) (*Entry, error)
	// Store takes an entry already existing in the
	// store and updates it on the store. It expects
	// the entry to have an ID which it will not alter.
	// It returns an error if the update cannot be
	// performed.
	Store(ctx context.Context, e *Entry) error
	// Delete takes an entry already existing in the
	// store and deletes it on the store. It returns
	// an error if the entry exists but the deletion
	// cannot be performed.
	Delete(ctx context.Context, e *Entry) error
	// Close closes the store, implementations should
	// free any resources in use as well as ensure
	// any pending changes are applied before returning
	// (unless the context expires). It returns an error
	// if the Close cannot be completed (because of the
	// context or another error)
	Close(ctx context.Context) error
}

type memoryNodeStore struct {
	entries map[string]*Entry
	lock    *sync.RWMutex
	nextID  uint64
}

// NewMemoryNodeStore returns an implementation
// of NodeStore with the process memory space
// as underlying backend
func NewMemoryNodeStore() NodeStore {
	return &memoryNodeStore{
		entries: make(map[string]*Entry),
		lock:  &sync.RWMutex{},
	}
}

func (mns *memoryNodeStore) Create(ctx context.Context, e *Entry) error {
	return mns.withLock(ctx, func(ctx context.Context) error {
		taken := true
		for taken {
			if err := ctx.Err(); err != nil {
				return err
			}
			e.ID = mns.nextEntryID()
			_, taken = mns.entries[e.ID]
		}
		mns.entries[e.ID] = copyEntry(e)
		return nil
	})
}

func (mns *memoryNodeStore) Store(ctx context.Context, e *Entry) error {
	return mns.withLock(ctx, func(ctx context.Context) error {
		mns.entries[e.ID] = copyEntry(e)
		return nil
	})
}

func (mns *memoryNodeStore) Get(ctx context.Context, id string) (*Entry, error) {
	var e *Entry
	err := mns.withRLock(ctx, func(ctx context.Context) error {
		if se, ok := mns.entries[id]; ok {
			e = copyEntry(se)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (mns *memoryNodeStore) Delete(ctx context.Context, e *Entry) error {
	return mns.withLock(ctx, func(ctx context.Context) error {
		delete(mns.entries, e.ID)
		return nil
	})
}

func (mns *memoryNodeStore) Close(ctx context.Context) error {
	return nil
}

func (mns *memoryNodeStore) nextEntryID() string {
	mns.nextID++
	return fmt.Sprintf("%d", mns.nextID)
}

// copyEntry keeps callers from altering stored entries through shared slices.
func copyEntry(e *Entry) *Entry {
	c := *e
	if e.ChildIDs != nil {
		c.ChildIDs = append([]string(nil), e.ChildIDs...)
	}
	return &c
}

func (mns *memoryNodeStore) withLock(ctx context.Context, f func(ctx context.Context) error) error {
	gotLock := make(chan struct{})
	go func() {
		mns.lock.Lock()
		select {
		case <-ctx.Done():
			mns.lock.Unlock()
		case gotLock <- struct{}{}:
		}
	}()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-gotLock:
		defer mns.lock.Unlock()
	}
	return f(ctx)
}

func (mns *memoryNodeStore) withRLock(ctx context.Context, f func(ctx context.Context) error) error {
	gotLock := make(chan struct{})
	go func() {
		mns.lock.RLock()
		select {
		case <-ctx.Done():
			mns.lock.RUnlock()
		case gotLock <- struct{}{}:
		}
	}()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-gotLock:
		defer mns.lock.RUnlock()
	}
	return f(ctx)
}
