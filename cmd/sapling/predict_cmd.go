package main

import (
	"fmt"
	"os"

	"github.com/pbanos/sapling/dataset/inputsample"
	"github.com/pbanos/sapling/feature"
	"github.com/spf13/cobra"
)

type predictCmdConfig struct {
	*rootCmdConfig
	modelFlags
}

type stdoutValueRequester struct{}

func predictCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &predictCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Predict a label for a sample answering questions",
		Long:  `Use the loaded tree to predict the label for a sample answering a reduced set of questions about its attributes`,
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
			sample := inputsample.New(os.Stdin, model.Vocabulary, stdoutValueRequester{})
			label, err := model.ClassifySample(sample)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(3)
			}
			fmt.Printf("Predicted %s is %s\n", model.Vocabulary.Label().Name(), label)
		},
	}
	config.modelFlags.register(cmd)
	return cmd
}

func (pcc *predictCmdConfig) Validate() error {
	return pcc.modelFlags.Validate()
}

func (stdoutValueRequester) RequestValueFor(f *feature.Feature) error {
	fmt.Printf("Please provide the sample's %s:\n(known values are %v)\n", f.Name(), f.Values())
	return nil
}

func (stdoutValueRequester) RejectValueFor(f *feature.Feature, value string) error {
	fmt.Printf("%q is not a valid value for the sample's %s. Please provide one of %v or any other non-empty value.\n", value, f.Name(), f.Values())
	return nil
}
