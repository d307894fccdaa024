package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/arbor/internal/presentation/graph"
	"github.com/aretw0/arbor/pkg/domain"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph <topic>",
	Short: "Export a topic tree visualization",
	Long:  `Outputs a Mermaid diagram (graph TD) of the topic's knowledge tree, optionally highlighting the path of some answers.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		answers, _ := cmd.Flags().GetString("answers")

		_, _, engine, closeFn, err := setup(cmd.Context(), cmd, false)
		if err != nil {
			return err
		}
		defer closeFn()

		topic := args[0]
		if err := engine.LoadAll(cmd.Context(), topic); err != nil {
			return err
		}
		tree, err := engine.Tree(topic)
		if err != nil {
			return err
		}

		var overlay *graph.GraphOverlay
		if answers != "" {
			var path []domain.Step
			for _, token := range strings.Fields(strings.ReplaceAll(answers, ",", " ")) {
				path = append(path, domain.Step{Token: token})
			}
			overlay = graph.OverlayFromPath(tree, path)
		}

		fmt.Fprint(cmd.OutOrStdout(), graph.GenerateMermaid(tree, overlay))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
	graphCmd.Flags().String("answers", "", "Highlight the path taken by these answers (e.g. da,nu)")
}
