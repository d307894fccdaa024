package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/arbor"
	"github.com/aretw0/arbor/internal/cli"
	"github.com/aretw0/arbor/internal/presentation/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a guessing session",
	Long: `Reads whitespace-separated tokens: the topic first (unless --topic is set),
then one da/nu answer per question, then the confirmation of the candidate.
The guessed entity, or the unknown marker, is written to the output.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		inputPath, _ := cmd.Flags().GetString("input")
		outputPath, _ := cmd.Flags().GetString("output")
		topic, _ := cmd.Flags().GetString("topic")
		events, _ := cmd.Flags().GetBool("events")
		brief, _ := cmd.Flags().GetBool("brief")

		sc := cli.NewSignalContext(cmd.Context())
		defer sc.Cancel()

		opts := cli.PlayOptions{Topic: topic, Brief: brief}

		var input io.Reader = os.Stdin
		if inputPath != "" {
			f, err := os.Open(inputPath)
			if err != nil {
				return fmt.Errorf("open input: %w", err)
			}
			defer f.Close()
			input = f
		} else if tui.IsInteractive(os.Stdin) {
			opts.Prompt = os.Stderr
		}
		opts.Input = cli.NewContextReader(sc, input)

		opts.Output = cmd.OutOrStdout()
		if outputPath != "" {
			f, err := os.Create(outputPath)
			if err != nil {
				return fmt.Errorf("create output: %w", err)
			}
			defer f.Close()
			opts.Output = f
		}
		if events {
			opts.Events = cmd.OutOrStdout()
		}

		hooks, eventsHandler := cli.PlayHooks(opts)
		cfg, _, engine, closeFn, err := setup(sc, cmd, true, arbor.WithLifecycleHooks(hooks))
		if err != nil {
			return err
		}
		defer closeFn()

		opts.Sentinel = cfg.Unknown
		opts.Reason = globalOptions(cmd).Debug
		if opts.Prompt != nil {
			tui.PrintBanner(opts.Prompt)
		}

		if _, err := cli.Play(sc, engine, opts); err != nil {
			return err
		}
		if eventsHandler != nil {
			return eventsHandler.Err()
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(playCmd)
	playCmd.Flags().StringP("input", "i", "", "Read tokens from a file instead of stdin")
	playCmd.Flags().StringP("output", "o", "", "Write the result to a file instead of stdout")
	playCmd.Flags().StringP("topic", "t", "", "Preselect the topic; every token is then an answer")
	playCmd.Flags().Bool("events", false, "Emit traversal events as JSON lines on stdout")
	playCmd.Flags().Bool("brief", false, "Write only the result, without structure checks")
}
