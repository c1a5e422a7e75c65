package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

type classifyCmdConfig struct {
	*rootCmdConfig
	modelFlags
	tableFlags
	dataInput string
}

func classifyCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &classifyCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Classify the samples of a set of data",
		Long:  `Use a tree to classify every sample of a set of data, printing a label per sample in order`,
		Run: func(cmd *cobra.Command, args []string) {
			err := config.Validate()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			model, err := config.loadModel(&config.modelFlags)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
			table, err := config.readTable(config.dataInput, &config.tableFlags)
			if err != nil {
				fmt.Fprintf(os.Stderr, "reading set to classify: %v\n", err)
				os.Exit(3)
			}
			classifications, err := model.Classify(table)
			if err != nil {
				fmt.Fprintf(os.Stderr, "classifying set: %v\n", err)
				os.Exit(4)
			}
			config.Logf("Classifying %d samples...", classifications.Len())
			w := bufio.NewWriter(os.Stdout)
			for it := classifications.Iterator(); it.Next(); {
				fmt.Fprintln(w, it.Val())
			}
			err = w.Flush()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(5)
			}
			config.Logf("Done")
		},
	}
	cmd.PersistentFlags().StringVarP(&(config.dataInput), "input", "i", "", "path to "+tableLocations+" with data to classify (defaults to STDIN, interpreted as CSV)")
	config.modelFlags.register(cmd)
	cmd.PersistentFlags().StringVarP(&(config.delimiter), "delimiter", "d", ",", "field delimiter of CSV input")
	cmd.PersistentFlags().IntVar(&(config.maxDBConns), "max-db-conns", 0, "limit to DB connections opened at a time (defaults to 0: no limit)")
	return cmd
}

func (ccc *classifyCmdConfig) Validate() error {
	if err := ccc.modelFlags.Validate(); err != nil {
		return err
	}
	return ccc.tableFlags.Validate()
}
