package main

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/pbanos/sapling"
	"github.com/pbanos/sapling/feature"
	"github.com/pbanos/sapling/feature/yaml"
	"github.com/pbanos/sapling/tree"
	"github.com/pbanos/sapling/tree/badgerstore"
	"github.com/pbanos/sapling/tree/json"
	"github.com/pbanos/sapling/tree/redisstore"
	"github.com/spf13/cobra"
	"gopkg.in/redis.v5"
)

const defaultStorePrefix = "sapling"

// modelFlags are the flags shared by commands using a grown tree.
type modelFlags struct {
	treeInput     string
	metadataInput string
	store         string
	rootID        string
}

func (mf *modelFlags) Validate() error {
	if mf.metadataInput == "" {
		return fmt.Errorf("required metadata flag was not set")
	}
	if mf.treeInput == "" && mf.store == "" {
		return fmt.Errorf("either the tree or the store flag must be set")
	}
	if mf.treeInput != "" && mf.store != "" {
		return fmt.Errorf("cannot set both tree and store flags at the same time")
	}
	if mf.store != "" && mf.rootID == "" {
		return fmt.Errorf("required root flag was not set for the store")
	}
	return nil
}

/*
loadModel reads the vocabulary from the metadata file and the tree either
from a JSON file or from a node store, and checks they fit each other.
*/
func (rcc *rootCmdConfig) loadModel(mf *modelFlags) (*sapling.Model, error) {
	ctx := rcc.Context()
	rcc.Logf("Reading features from metadata at %s...", mf.metadataInput)
	v, err := yaml.ReadVocabularyFromFile(mf.metadataInput)
	if err != nil {
		return nil, err
	}
	var t *tree.Tree
	if mf.store != "" {
		rcc.Logf("Opening node store at %s...", mf.store)
		ns, err := openStore(mf.store, v)
		if err != nil {
			return nil, err
		}
		defer ns.Close(ctx)
		t = tree.New(mf.rootID, ns, v.Label().Name())
	} else {
		rcc.Logf("Reading tree from %s...", mf.treeInput)
		t, err = readTree(ctx, mf.treeInput, v)
		if err != nil {
			return nil, err
		}
	}
	if t.Label != v.Label().Name() {
		return nil, fmt.Errorf("tree predicts %s but the metadata class is %s", t.Label, v.Label().Name())
	}
	root, err := t.Load(ctx)
	if err != nil {
		return nil, err
	}
	if err = tree.Validate(root, v); err != nil {
		return nil, fmt.Errorf("tree does not fit metadata: %v", err)
	}
	return &sapling.Model{Vocabulary: v, Root: root}, nil
}

func readTree(ctx context.Context, filepath string, v *feature.Vocabulary) (*tree.Tree, error) {
	f, err := os.Open(filepath)
	if err != nil {
		return nil, fmt.Errorf("reading tree in JSON from %s: %v", filepath, err)
	}
	defer f.Close()
	t, err := json.ReadJSONTree(ctx, tree.NewMemoryNodeStore(), json.NewEntryEncodeDecoder(v), f)
	if err != nil {
		err = fmt.Errorf("parsing tree in JSON from %s: %v", filepath, err)
	}
	return t, err
}

func writeTree(ctx context.Context, outputPath string, m *sapling.Model) error {
	t, err := tree.Save(ctx, tree.NewMemoryNodeStore(), m.Root, m.Vocabulary.Label().Name())
	if err != nil {
		return err
	}
	var f *os.File
	if outputPath == "" {
		f = os.Stdout
	} else {
		f, err = os.Create(outputPath)
		if err != nil {
			return err
		}
		defer f.Close()
	}
	return json.WriteJSONTree(ctx, t, json.NewEntryEncodeDecoder(m.Vocabulary), f)
}

/*
openStore opens the node store at the given location: a
redis://[:password@]host:port/db URL or a badger://path to a directory.
Keys are prefixed with the prefix query parameter of the location, or
sapling if it has none.
*/
func openStore(location string, v *feature.Vocabulary) (tree.NodeStore, error) {
	u, err := url.Parse(location)
	if err != nil {
		return nil, fmt.Errorf("parsing store location %s: %v", location, err)
	}
	prefix := u.Query().Get("prefix")
	if prefix == "" {
		prefix = defaultStorePrefix
	}
	eed := json.NewEntryEncodeDecoder(v)
	switch u.Scheme {
	case "redis":
		opts := &redis.Options{Addr: u.Host}
		if u.User != nil {
			opts.Password, _ = u.User.Password()
		}
		if db := strings.TrimPrefix(u.Path, "/"); db != "" {
			opts.DB, err = strconv.Atoi(db)
			if err != nil {
				return nil, fmt.Errorf("parsing redis DB number %q: %v", db, err)
			}
		}
		return redisstore.New(redis.NewClient(opts), prefix, eed), nil
	case "badger":
		return badgerstore.Open(u.Host+u.Path, prefix, eed)
	}
	return nil, fmt.Errorf("unknown store scheme %q, expected redis or badger", u.Scheme)
}

func (mf *modelFlags) register(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&(mf.metadataInput), "metadata", "m", "", "path to a YML file with metadata describing the features used by the tree (required)")
	cmd.PersistentFlags().StringVarP(&(mf.treeInput), "tree", "t", "", "path to a file from which the tree will be read and parsed as JSON")
	cmd.PersistentFlags().StringVarP(&(mf.store), "store", "s", "", "redis:// URL or badger:// directory of a node store from which to load the tree instead")
	cmd.PersistentFlags().StringVarP(&(mf.rootID), "root", "r", "", "ID of the root node of the tree on the store")
}
