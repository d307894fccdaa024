package main

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

type titleLister interface {
	Titles(ctx context.Context) (map[string]string, error)
}

var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "List the loaded topics",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, _, engine, closeFn, err := setup(cmd.Context(), cmd, true)
		if err != nil {
			return err
		}
		defer closeFn()

		// Titles are optional metadata; only document stores carry them.
		var titles map[string]string
		if tl, ok := engine.Loader().(titleLister); ok {
			if titles, err = tl.Titles(cmd.Context()); err != nil {
				return fmt.Errorf("read titles: %w", err)
			}
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "TOPIC\tDEPTH\tNODES\tTITLE")
		for _, t := range engine.Topics() {
			fmt.Fprintf(w, "%s\t%d\t%d\t%s\n", t.Name, t.Depth, t.Nodes, titles[t.Name])
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(topicsCmd)
}
