package json

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/pbanos/sapling/feature"
	"github.com/pbanos/sapling/tree"
)

var weatherTable = [][]string{
	{"outlook", "wind", "play"},
	{"sunny", "weak", "no"},
	{"overcast", "weak", "yes"},
	{"rain", "weak", "yes"},
	{"rain", "strong", "no"},
}

var weatherTree = &tree.Internal{Attribute: 0, Children: []tree.Node{
	&tree.Leaf{Class: 0},
	&tree.Leaf{Class: 1},
	&tree.Internal{Attribute: 1, Children: []tree.Node{
		&tree.Leaf{Class: 1},
		&tree.Leaf{Class: 0},
	}},
}}

func weatherVocabulary(t *testing.T) *feature.Vocabulary {
	_, v, err := feature.IndexTable(weatherTable)
	if err != nil {
		t.Fatal("unexpected error indexing table:", err)
	}
	return v
}

func TestJSONTreeRoundTrip(t *testing.T) {
	ctx := context.Background()
	eed := NewEntryEncodeDecoder(weatherVocabulary(t))
	saved, err := tree.Save(ctx, tree.NewMemoryNodeStore(), weatherTree, "play")
	if err != nil {
		t.Fatal("unexpected error saving tree:", err)
	}
	buf := &bytes.Buffer{}
	if err = WriteJSONTree(ctx, saved, eed, buf); err != nil {
		t.Fatal("unexpected error writing tree:", err)
	}
	if !strings.HasPrefix(buf.String(), `{"rootID":`) {
		t.Error("unexpected JSON tree:", buf.String())
	}
	read, err := ReadJSONTree(ctx, tree.NewMemoryNodeStore(), eed, buf)
	if err != nil {
		t.Fatal("unexpected error reading tree:", err)
	}
	if read.Label != "play" || read.RootID != saved.RootID {
		t.Errorf("expected label play and root %s, got %s and %s", saved.RootID, read.Label, read.RootID)
	}
	root, err := read.Load(ctx)
	if err != nil {
		t.Fatal("unexpected error loading read tree:", err)
	}
	if !tree.Equal(root, weatherTree) {
		t.Error("expected read tree to be equal to the written one")
	}
}

func TestEncodeReferencesNames(t *testing.T) {
	eed := NewEntryEncodeDecoder(weatherVocabulary(t))
	data, err := eed.Encode(&tree.Entry{ID: "2", ParentID: "1", Branch: 1, Leaf: true, Class: 1})
	if err != nil {
		t.Fatal("unexpected error encoding entry:", err)
	}
	expected := `{"id":"2","pId":"1","b":1,"class":"yes"}`
	if string(data) != expected {
		t.Errorf("expected %s, got: %s", expected, data)
	}
	data, err = eed.Encode(&tree.Entry{ID: "1", Attribute: 1, ChildIDs: []string{"2", "3"}})
	if err != nil {
		t.Fatal("unexpected error encoding entry:", err)
	}
	expected = `{"id":"1","b":0,"f":"wind","stIds":["2","3"]}`
	if string(data) != expected {
		t.Errorf("expected %s, got: %s", expected, data)
	}
}

func TestDecodeUnknownNames(t *testing.T) {
	eed := NewEntryEncodeDecoder(weatherVocabulary(t))
	for _, data := range []string{
		`{"id":"1","b":0,"f":"temperature","stIds":["2"]}`,
		`{"id":"1","b":0,"f":"play","stIds":["2"]}`,
		`{"id":"2","b":0,"class":"maybe"}`,
		`{"id":"3","b":0}`,
	} {
		if _, err := eed.Decode([]byte(data)); err == nil {
			t.Error("expected error decoding", data)
		}
	}
}

func TestReadJSONTreeWithoutRoot(t *testing.T) {
	eed := NewEntryEncodeDecoder(weatherVocabulary(t))
	_, err := ReadJSONTree(context.Background(), tree.NewMemoryNodeStore(), eed, strings.NewReader(`{"label":"play","nodes":[]}`))
	if err == nil {
		t.Error("expected error for tree without root id")
	}
}
