package tree

import (
	"context"
	"testing"

	"github.com/pbanos/sapling/dataset"
	"github.com/pbanos/sapling/feature"
)

var weatherTable = [][]string{
	{"outlook", "wind", "play"},
	{"sunny", "weak", "no"},
	{"overcast", "weak", "yes"},
	{"rain", "weak", "yes"},
	{"rain", "strong", "no"},
}

func weatherTree() Node {
	return &Internal{Attribute: 0, Children: []Node{
		&Leaf{Class: 0},
		&Leaf{Class: 1},
		&Internal{Attribute: 1, Children: []Node{
			&Leaf{Class: 1},
			&Leaf{Class: 0},
		}},
	}}
}

func weatherVocabulary(t *testing.T) *feature.Vocabulary {
	_, v, err := feature.IndexTable(weatherTable)
	if err != nil {
		t.Fatal("unexpected error indexing table:", err)
	}
	return v
}

func TestClassify(t *testing.T) {
	v := weatherVocabulary(t)
	root := weatherTree()
	for _, row := range weatherTable[1:] {
		c := Classify(root, v, dataset.Example(row))
		if v.Label().Value(c) != row[2] {
			t.Errorf("expected %v to be classified as %s, got: %s", row, row[2], v.Label().Value(c))
		}
	}
}

func TestClassifyOutOfVocabulary(t *testing.T) {
	v := weatherVocabulary(t)
	root := weatherTree()
	// fog is unknown and falls back to sunny
	e := dataset.Example{"fog", "weak"}
	for i := 0; i < 3; i++ {
		if c := Classify(root, v, e); c != 0 {
			t.Error("expected fallback to first branch predicting class 0, got:", c)
		}
	}
	// hurricane is unknown and falls back to weak
	if c := Classify(root, v, dataset.Example{"rain", "hurricane"}); c != 1 {
		t.Error("expected fallback to first branch predicting class 1, got:", c)
	}
}

func TestClassifyShortExample(t *testing.T) {
	v := weatherVocabulary(t)
	if c := Classify(weatherTree(), v, dataset.Example{"rain"}); c != 1 {
		t.Error("expected missing value to follow first branch predicting class 1, got:", c)
	}
}

func TestClassifyWith(t *testing.T) {
	v := weatherVocabulary(t)
	c, err := ClassifyWith(weatherTree(), v, dataset.Example{"rain", "strong"})
	if err != nil {
		t.Fatal("unexpected error classifying sample:", err)
	}
	if c != 0 {
		t.Error("expected class 0, got:", c)
	}
	if _, err = ClassifyWith(weatherTree(), v, dataset.Example{"rain"}); err == nil {
		t.Error("expected error for sample without value for wind")
	}
}

func TestRender(t *testing.T) {
	expected := `outlook
|__sunny
|  => no
|__overcast
|  => yes
|__rain
   wind
   |__weak
   |  => yes
   |__strong
      => no
`
	if r := Render(weatherTree(), weatherVocabulary(t)); r != expected {
		t.Errorf("expected rendered tree to be\n%s\ngot:\n%s", expected, r)
	}
}

func TestEqualAndDepth(t *testing.T) {
	if !Equal(weatherTree(), weatherTree()) {
		t.Error("expected identical trees to be equal")
	}
	other := weatherTree().(*Internal)
	other.Children[1] = &Leaf{Class: 0}
	if Equal(weatherTree(), other) {
		t.Error("expected trees with different leaves not to be equal")
	}
	if d := Depth(weatherTree()); d != 2 {
		t.Error("expected depth 2, got:", d)
	}
}

func TestValidate(t *testing.T) {
	v := weatherVocabulary(t)
	if err := Validate(weatherTree(), v); err != nil {
		t.Error("unexpected error validating tree:", err)
	}
	broken := &Internal{Attribute: 1, Children: []Node{&Leaf{Class: 0}}}
	if err := Validate(broken, v); err == nil {
		t.Error("expected error for internal node missing children")
	}
	if err := Validate(&Leaf{Class: 2}, v); err == nil {
		t.Error("expected error for leaf with unknown class")
	}
	if err := Validate(&Internal{Attribute: 2, Children: []Node{&Leaf{}, &Leaf{}}}, v); err == nil {
		t.Error("expected error for internal node on the class")
	}
}

func TestSaveLoad(t *testing.T) {
	ctx := context.Background()
	ns := NewMemoryNodeStore()
	saved, err := Save(ctx, ns, weatherTree(), "play")
	if err != nil {
		t.Fatal("unexpected error saving tree:", err)
	}
	if saved.Label != "play" || saved.RootID == "" {
		t.Errorf("unexpected saved tree %+v", saved)
	}
	root, err := saved.Load(ctx)
	if err != nil {
		t.Fatal("unexpected error loading tree:", err)
	}
	if !Equal(root, weatherTree()) {
		t.Error("expected loaded tree to be equal to the saved one")
	}
}

func TestTraverse(t *testing.T) {
	ctx := context.Background()
	saved, err := Save(ctx, NewMemoryNodeStore(), weatherTree(), "play")
	if err != nil {
		t.Fatal("unexpected error saving tree:", err)
	}
	var topdown, bottomup []*Entry
	err = saved.Traverse(ctx, false, func(ctx context.Context, e *Entry) error {
		topdown = append(topdown, e)
		return nil
	})
	if err != nil {
		t.Fatal("unexpected error traversing tree:", err)
	}
	err = saved.Traverse(ctx, true, func(ctx context.Context, e *Entry) error {
		bottomup = append(bottomup, e)
		return nil
	})
	if err != nil {
		t.Fatal("unexpected error traversing tree:", err)
	}
	if len(topdown) != 6 || len(bottomup) != 6 {
		t.Fatalf("expected 6 entries traversed, got: %d and %d", len(topdown), len(bottomup))
	}
	if topdown[0].ID != saved.RootID {
		t.Error("expected top down traversal to start at the root, got:", topdown[0].ID)
	}
	if bottomup[5].ID != saved.RootID {
		t.Error("expected bottom up traversal to end at the root, got:", bottomup[5].ID)
	}
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	ns := NewMemoryNodeStore()
	saved, err := Save(ctx, ns, weatherTree(), "play")
	if err != nil {
		t.Fatal("unexpected error saving tree:", err)
	}
	if err = saved.Delete(ctx); err != nil {
		t.Fatal("unexpected error deleting tree:", err)
	}
	e, err := ns.Get(ctx, saved.RootID)
	if err != nil || e != nil {
		t.Errorf("expected root entry to be gone, got %v, %v", e, err)
	}
}

func TestMemoryNodeStoreCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := NewMemoryNodeStore().Create(ctx, &Entry{Leaf: true}); err == nil {
		t.Error("expected error creating entry with cancelled context")
	}
}
