package main

import (
	"math/rand"
	"path/filepath"
	"testing"

	"github.com/pbanos/sapling"
	"github.com/pbanos/sapling/feature/yaml"
	"github.com/pbanos/sapling/tree"
)

var weatherTable = [][]string{
	{"outlook", "wind", "play"},
	{"sunny", "weak", "no"},
	{"overcast", "weak", "yes"},
	{"rain", "weak", "yes"},
	{"rain", "strong", "no"},
}

func TestTableFlagsValidate(t *testing.T) {
	for _, d := range []string{"", ",,", "ab"} {
		if err := (&tableFlags{delimiter: d}).Validate(); err == nil {
			t.Errorf("expected error for delimiter %q", d)
		}
	}
	tf := &tableFlags{delimiter: ";"}
	if err := tf.Validate(); err != nil || tf.delimiterRune() != ';' {
		t.Errorf("expected ; to be a valid delimiter, got %v", err)
	}
}

func TestModelFlagsValidate(t *testing.T) {
	for _, mf := range []*modelFlags{
		{treeInput: "tree.json"},
		{metadataInput: "features.yml"},
		{metadataInput: "features.yml", treeInput: "tree.json", store: "redis://localhost:6379/0"},
		{metadataInput: "features.yml", store: "redis://localhost:6379/0"},
	} {
		if err := mf.Validate(); err == nil {
			t.Errorf("expected error validating %+v", mf)
		}
	}
	if err := (&modelFlags{metadataInput: "features.yml", treeInput: "tree.json"}).Validate(); err != nil {
		t.Error("unexpected error validating tree flags:", err)
	}
}

func TestTableRoundTrip(t *testing.T) {
	rcc := &rootCmdConfig{}
	tf := &tableFlags{delimiter: ";"}
	for _, name := range []string{"weather.csv", "weather.db"} {
		location := filepath.Join(t.TempDir(), name)
		if err := rcc.writeTable(location, tf, weatherTable); err != nil {
			t.Fatalf("unexpected error writing %s: %v", name, err)
		}
		table, err := rcc.readTable(location, tf)
		if err != nil {
			t.Fatalf("unexpected error reading %s: %v", name, err)
		}
		if len(table) != len(weatherTable) || table[4][1] != "strong" {
			t.Errorf("unexpected table read from %s: %v", name, table)
		}
	}
}

func TestModelRoundTrip(t *testing.T) {
	m, err := sapling.TrainTable(weatherTable)
	if err != nil {
		t.Fatal("unexpected error training:", err)
	}
	dir := t.TempDir()
	gcc := &growCmdConfig{
		rootCmdConfig:  &rootCmdConfig{},
		metadataOutput: filepath.Join(dir, "features.yml"),
		output:         filepath.Join(dir, "tree.json"),
		store:          "badger://" + filepath.Join(dir, "nodes") + "?prefix=weather",
	}
	if err = writeTree(gcc.Context(), gcc.output, m); err != nil {
		t.Fatal("unexpected error writing tree:", err)
	}
	if err = yaml.WriteVocabularyToFile(gcc.metadataOutput, m.Vocabulary); err != nil {
		t.Fatal("unexpected error writing metadata:", err)
	}
	saved, err := gcc.saveTree(m)
	if err != nil {
		t.Fatal("unexpected error saving tree on store:", err)
	}
	for _, mf := range []*modelFlags{
		{metadataInput: gcc.metadataOutput, treeInput: gcc.output},
		{metadataInput: gcc.metadataOutput, store: gcc.store, rootID: saved.RootID},
	} {
		loaded, err := gcc.loadModel(mf)
		if err != nil {
			t.Fatalf("unexpected error loading model with %+v: %v", mf, err)
		}
		if !tree.Equal(loaded.Root, m.Root) {
			t.Errorf("expected tree loaded with %+v to be equal to the grown one", mf)
		}
	}
}

func TestOpenStoreUnknownScheme(t *testing.T) {
	m, err := sapling.TrainTable(weatherTable)
	if err != nil {
		t.Fatal("unexpected error training:", err)
	}
	if _, err = openStore("memcached://localhost", m.Vocabulary); err == nil {
		t.Error("expected error for unknown store scheme")
	}
}

func TestSplitTable(t *testing.T) {
	var table [][]string
	table = append(table, []string{"a", "class"})
	for i := 0; i < 100; i++ {
		table = append(table, []string{"x", "yes"})
	}
	output, split := splitTable(table, 20, rand.New(rand.NewSource(1)))
	if len(output)+len(split) != len(table)+1 {
		t.Error("expected every row in exactly one set, got:", len(output)-1, len(split)-1)
	}
	if output[0][0] != "a" || split[0][0] != "a" {
		t.Error("expected both sets to keep the header")
	}
	again, _ := splitTable(table, 20, rand.New(rand.NewSource(1)))
	if len(again) != len(output) {
		t.Error("expected the same seed to split the same way, got:", len(again), len(output))
	}
	all, none := splitTable(table, 100, rand.New(rand.NewSource(1)))
	if len(all) != 1 || len(none) != len(table) {
		t.Error("expected every row in the split set for probability 100, got:", len(all)-1)
	}
}

func TestSplitCmdConfigValidate(t *testing.T) {
	base := tableFlags{delimiter: ","}
	for _, c := range []*splitCmdConfig{
		{tableFlags: base, splitProbability: 20},
		{tableFlags: base, splitOutput: "a.csv", setOutput: "a.csv", splitProbability: 20},
		{tableFlags: base, splitOutput: "a.csv", splitProbability: 0},
		{tableFlags: base, splitOutput: "a.csv", splitProbability: 101},
	} {
		if err := c.Validate(); err == nil {
			t.Errorf("expected error for %+v", c)
		}
	}
	if err := (&splitCmdConfig{tableFlags: base, splitOutput: "a.csv", splitProbability: 20}).Validate(); err != nil {
		t.Error("expected valid config, got:", err)
	}
}
