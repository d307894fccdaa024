package main

import (
	"errors"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/aretw0/arbor"
	"github.com/aretw0/arbor/internal/config"
	"github.com/aretw0/arbor/pkg/schema"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check every topic document for defects",
	Long:  `Decodes every topic document and reports all structural defects, not only the first one.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, engine, closeFn, err := setup(cmd.Context(), cmd, false)
		if err != nil {
			return err
		}
		defer closeFn()

		failed, err := runValidate(cmd, cfg, engine)
		if err != nil {
			return err
		}
		if failed > 0 {
			return fmt.Errorf("validation failed: %d topic(s) with defects", failed)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "All topics are valid! ✅")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, cfg config.Config, engine *arbor.Engine) (int, error) {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	sources := cfg.Sources()
	if len(sources) == 0 {
		listed, err := engine.Loader().ListTopics(ctx)
		if err != nil {
			return 0, fmt.Errorf("list topics: %w", err)
		}
		for _, t := range listed {
			sources[t] = t
		}
	}
	names := make([]string, 0, len(sources))
	for name := range sources {
		names = append(names, name)
	}
	sort.Strings(names)

	failed := 0
	for _, name := range names {
		doc, err := engine.Loader().GetDocument(ctx, sources[name])
		if err == nil {
			err = schema.Validate(sources[name], doc)
		}
		if err == nil {
			fmt.Fprintf(out, "ok    %s\n", name)
			continue
		}
		failed++
		fmt.Fprintf(out, "FAIL  %s\n", name)
		var agg *schema.AggregateError
		if errors.As(err, &agg) {
			for _, e := range agg.Errors {
				fmt.Fprintf(out, "      - %v\n", e)
			}
		} else {
			fmt.Fprintf(out, "      - %v\n", err)
		}
	}
	return failed, nil
}
