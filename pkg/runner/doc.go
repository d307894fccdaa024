/*
Package runner connects the guessing engine to streams.

It turns readers into answer sources, prompts a human through lifecycle hooks,
and writes the final report.

# Key Components

  - TokenSource: whitespace-separated tokens from an io.Reader.
  - SliceSource: tokens from a fixed list.
  - TextHandler: prompts questions and candidates on a terminal.
  - JSONHandler: streams traversal events as JSON lines.
  - Report: writes the result surface followed by the structure checks.

# Usage

	src := runner.NewTokenSource(os.Stdin)
	prompts := runner.NewTextHandler(os.Stderr, runner.WithTextHandlerRenderer(tui.NewRenderer(0)))

	eng, _ := arbor.New("./topics", arbor.WithLifecycleHooks(prompts.Hooks()))
	out := eng.NewSession().Run(ctx, src)

	_ = runner.Report(os.Stdout, out, runner.ReportOptions{Topics: eng.Registry().Summary()})
*/
package runner
