package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

type testCmdConfig struct {
	*rootCmdConfig
	modelFlags
	tableFlags
	dataInput string
}

func testCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &testCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "test",
		Short: "Test the performance of a tree",
		Long:  `Test the performance of a tree against a test data set`,
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
				fmt.Fprintf(os.Stderr, "reading testing set: %v\n", err)
				os.Exit(3)
			}
			config.Logf("Testing tree against testset with %d samples...", len(table)-1)
			successRate, err := model.Test(table)
			if err != nil {
				fmt.Fprintf(os.Stderr, "testing tree: %v\n", err)
				os.Exit(4)
			}
			config.Logf("Done")
			fmt.Printf("%f success rate\n", successRate)
		},
	}
	cmd.PersistentFlags().StringVarP(&(config.dataInput), "input", "i", "", "path to "+tableLocations+" with data to test the tree against (defaults to STDIN, interpreted as CSV)")
	config.modelFlags.register(cmd)
	cmd.PersistentFlags().StringVarP(&(config.delimiter), "delimiter", "d", ",", "field delimiter of CSV input")
	cmd.PersistentFlags().IntVar(&(config.maxDBConns), "max-db-conns", 0, "limit to DB connections opened at a time (defaults to 0: no limit)")
	return cmd
}

func (tcc *testCmdConfig) Validate() error {
	if err := tcc.modelFlags.Validate(); err != nil {
		return err
	}
	return tcc.tableFlags.Validate()
}
