package main

import (
	"fmt"
	"os"

	"github.com/pbanos/sapling"
	"github.com/pbanos/sapling/dataset"
	"github.com/pbanos/sapling/feature/yaml"
	"github.com/pbanos/sapling/tree"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"
)

type growCmdConfig struct {
	*rootCmdConfig
	tableFlags
	dataInput      string
	metadataInput  string
	metadataOutput string
	output         string
	store          string
	profile        bool
}

func growCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &growCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "grow",
		Short: "Grow a tree from a set of data",
		Long:  `Grow a tree from a set of data to predict its last attribute.`,
		Run: func(cmd *cobra.Command, args []string) {
			err := config.Validate()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			if config.profile {
				defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.Quiet).Stop()
			}
			table, err := config.readTable(config.dataInput, &config.tableFlags)
			if err != nil {
				fmt.Fprintf(os.Stderr, "reading training set: %v\n", err)
				os.Exit(2)
			}
			model, err := config.train(table)
			if err != nil {
				fmt.Fprintf(os.Stderr, "growing the tree: %v\n", err)
				os.Exit(3)
			}
			config.Logf("Done")
			config.Logf("%s", tree.Render(model.Root, model.Vocabulary))
			err = writeTree(config.Context(), config.output, model)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(4)
			}
			if config.metadataOutput != "" {
				config.Logf("Writing features to metadata at %s...", config.metadataOutput)
				err = yaml.WriteVocabularyToFile(config.metadataOutput, model.Vocabulary)
				if err != nil {
					fmt.Fprintln(os.Stderr, err)
					os.Exit(5)
				}
			}
			if config.store != "" {
				t, err := config.saveTree(model)
				if err != nil {
					fmt.Fprintln(os.Stderr, err)
					os.Exit(6)
				}
				fmt.Fprintf(os.Stderr, "tree saved on %s with root %s\n", config.store, t.RootID)
			}
		},
	}
	cmd.PersistentFlags().StringVarP(&(config.dataInput), "input", "i", "", "path to "+tableLocations+" with data to use to grow the tree (defaults to STDIN, interpreted as CSV)")
	cmd.PersistentFlags().StringVarP(&(config.metadataInput), "metadata", "m", "", "path to a YML file with metadata describing the features on the input (defaults to the values found on the input)")
	cmd.PersistentFlags().StringVar(&(config.metadataOutput), "metadata-output", "", "path to a file to which the features used by the tree will be written in YML format")
	cmd.PersistentFlags().StringVarP(&(config.output), "output", "o", "", "path to a file to which the generated tree will be written in JSON format (defaults to STDOUT)")
	cmd.PersistentFlags().StringVarP(&(config.store), "store", "s", "", "redis:// URL or badger:// directory of a node store on which to also save the tree")
	cmd.PersistentFlags().StringVarP(&(config.delimiter), "delimiter", "d", ",", "field delimiter of CSV input")
	cmd.PersistentFlags().IntVar(&(config.maxDBConns), "max-db-conns", 0, "limit to DB connections opened at a time (defaults to 0: no limit)")
	cmd.PersistentFlags().BoolVar(&(config.profile), "profile", false, "write a CPU profile of the growth to the current directory")
	return cmd
}

func (gcc *growCmdConfig) Validate() error {
	return gcc.tableFlags.Validate()
}

func (gcc *growCmdConfig) train(table [][]string) (*sapling.Model, error) {
	if gcc.metadataInput == "" {
		gcc.Logf("Growing tree from a set with %d rows...", len(table)-1)
		return sapling.TrainTable(table)
	}
	gcc.Logf("Reading features from metadata at %s...", gcc.metadataInput)
	v, err := yaml.ReadVocabularyFromFile(gcc.metadataInput)
	if err != nil {
		return nil, err
	}
	d, err := dataset.FromTable(table)
	if err != nil {
		return nil, err
	}
	gcc.Logf("Growing tree from a set with %d samples and %d features to predict %s...", d.Count(), v.ClassIndex(), v.Label().Name())
	return sapling.Train(d, v)
}

func (gcc *growCmdConfig) saveTree(model *sapling.Model) (*tree.Tree, error) {
	ctx := gcc.Context()
	gcc.Logf("Opening node store at %s...", gcc.store)
	ns, err := openStore(gcc.store, model.Vocabulary)
	if err != nil {
		return nil, err
	}
	defer ns.Close(ctx)
	t, err := tree.Save(ctx, ns, model.Root, model.Vocabulary.Label().Name())
	if err != nil {
		return nil, fmt.Errorf("saving tree on %s: %v", gcc.store, err)
	}
	return t, nil
}
