package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"
)

type splitCmdConfig struct {
	*rootCmdConfig
	tableFlags
	setInput         string
	setOutput        string
	splitOutput      string
	splitProbability int
	seed             int64
}

func splitCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &splitCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "split",
		Short: "Split a set into two sets",
		Long:  `Split a set into an output set and a split set, for instance to hold out samples to test a tree with`,
		Run: func(cmd *cobra.Command, args []string) {
			err := config.Validate()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			table, err := config.readTable(config.setInput, &config.tableFlags)
			if err != nil {
				fmt.Fprintf(os.Stderr, "reading input set: %v\n", err)
				os.Exit(2)
			}
			seed := config.seed
			if seed == 0 {
				seed = time.Now().UnixNano()
			}
			config.Logf("Splitting input set with seed %d...", seed)
			output, split := splitTable(table, config.splitProbability, rand.New(rand.NewSource(seed)))
			err = config.writeTable(config.setOutput, &config.tableFlags, output)
			if err != nil {
				fmt.Fprintf(os.Stderr, "writing output set: %v\n", err)
				os.Exit(3)
			}
			err = config.writeTable(config.splitOutput, &config.tableFlags, split)
			if err != nil {
				fmt.Fprintf(os.Stderr, "writing split set: %v\n", err)
				os.Exit(4)
			}
			config.Logf("Input set with %d samples was split into sets with %d and %d samples", len(table)-1, len(output)-1, len(split)-1)
		},
	}
	cmd.PersistentFlags().StringVarP(&(config.setInput), "input", "i", "", "path to "+tableLocations+" with the input set (defaults to STDIN, interpreted as CSV)")
	cmd.PersistentFlags().StringVarP(&(config.setOutput), "output", "o", "", "path to "+tableLocations+" to dump the output set (defaults to STDOUT in CSV)")
	cmd.PersistentFlags().StringVarP(&(config.splitOutput), "split-output", "s", "", "path to "+tableLocations+" to dump the split set (required)")
	cmd.PersistentFlags().IntVarP(&(config.splitProbability), "split-probability", "p", 20, "probability as percent integer that a sample of the set will be assigned to the split set")
	cmd.PersistentFlags().Int64Var(&(config.seed), "seed", 0, "seed for the random assignment of samples (defaults to 0: seeded from the clock)")
	cmd.PersistentFlags().StringVarP(&(config.delimiter), "delimiter", "d", ",", "field delimiter of CSV input and output")
	cmd.PersistentFlags().IntVar(&(config.maxDBConns), "max-db-conns", 0, "limit to DB connections opened at a time (defaults to 0: no limit)")
	return cmd
}

func (scc *splitCmdConfig) Validate() error {
	if scc.splitOutput == "" {
		return fmt.Errorf("required split-output flag was not set")
	}
	if scc.splitOutput == scc.setOutput {
		return fmt.Errorf("split-output and output flags must point to different sets")
	}
	if scc.splitProbability <= 0 || scc.splitProbability > 100 {
		return fmt.Errorf("split-probability flag was set to an invalid value: it must be set to an integer between 1 and 100")
	}
	return scc.tableFlags.Validate()
}

/*
splitTable takes a table, a percent probability and a source of randomness
and returns two tables with the header of the given one: the first with the
rows not drawn and the second with the rows drawn with the given
probability. Rows keep their relative order.
*/
func splitTable(table [][]string, probability int, r *rand.Rand) ([][]string, [][]string) {
	if len(table) == 0 {
		return nil, nil
	}
	output := [][]string{table[0]}
	split := [][]string{table[0]}
	for _, row := range table[1:] {
		if 100*r.Float32() > float32(probability) {
			output = append(output, row)
		} else {
			split = append(split, row)
		}
	}
	return output, split
}
