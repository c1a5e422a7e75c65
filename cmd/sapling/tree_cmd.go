package main

import (
	"fmt"
	"os"

	"github.com/pbanos/sapling/tree"
	"github.com/spf13/cobra"
)

type treeCmdConfig struct {
	*rootCmdConfig
	modelFlags
}

func treeCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &treeCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Show a tree",
		Long:  `Show a tree with the attribute asked on every node, the value on every branch and the label on every leaf`,
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
			fmt.Print(tree.Render(model.Root, model.Vocabulary))
			config.Logf("%d levels deep", tree.Depth(model.Root))
		},
	}
	config.modelFlags.register(cmd)
	return cmd
}

func (tcc *treeCmdConfig) Validate() error {
	return tcc.modelFlags.Validate()
}
