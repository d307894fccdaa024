package main

import (
	"fmt"
	"sort"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/aretw0/arbor/internal/config"
)

var historyCmd = &cobra.Command{
	Use:   "history <topic>",
	Short: "Show the latest journaled plays of a topic",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		cfg, _, engine, closeFn, err := setup(cmd.Context(), cmd, false)
		if err != nil {
			return err
		}
		defer closeFn()
		if engine.Journal() == nil {
			return fmt.Errorf("no journal configured (set journal.driver in %s)", cfgFile(cmd))
		}

		topic := args[0]
		plays, err := engine.History(cmd.Context(), topic, limit)
		if err != nil {
			return err
		}
		tally, err := engine.Tally(cmd.Context(), topic)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "PLAYED AT\tSTATUS\tRESULT\tANSWERS")
		for _, p := range plays {
			result := p.Entity
			if result == "" {
				result = cfg.Unknown
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", p.PlayedAt.Local().Format(time.DateTime), p.Status, result, strings.Join(p.Answers, " "))
		}
		if err := w.Flush(); err != nil {
			return err
		}

		if len(tally) > 0 {
			names := make([]string, 0, len(tally))
			for name := range tally {
				names = append(names, name)
			}
			sort.Slice(names, func(i, j int) bool {
				if tally[names[i]] != tally[names[j]] {
					return tally[names[i]] > tally[names[j]]
				}
				return names[i] < names[j]
			})
			fmt.Fprintln(out, "\nguessed:")
			for _, name := range names {
				fmt.Fprintf(out, "  %s: %d\n", name, tally[name])
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntP("limit", "n", 10, "Number of plays to show (0 for all)")
}

func cfgFile(cmd *cobra.Command) string {
	if path := globalOptions(cmd).ConfigPath; path != "" {
		return path
	}
	return config.DefaultFile
}
