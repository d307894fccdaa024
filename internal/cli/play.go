package cli

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/aretw0/arbor"
	"github.com/aretw0/arbor/internal/presentation/tui"
	"github.com/aretw0/arbor/pkg/domain"
	"github.com/aretw0/arbor/pkg/runner"
)

// PlayOptions contains the configuration of the play command.
type PlayOptions struct {
	Input  io.Reader
	Output io.Writer

	// Prompt receives the questions for a human player. Nil plays silently.
	Prompt io.Writer

	// Events receives one JSON line per traversal event. Nil disables them.
	Events io.Writer

	// Topic preselects the topic; otherwise the first input token names it.
	Topic string

	Sentinel string
	Brief    bool
	Reason   bool
}

// PlayHooks builds the prompting and event hooks for opts.
// They must be installed on the engine before it plays.
func PlayHooks(opts PlayOptions) (domain.LifecycleHooks, *runner.JSONHandler) {
	var hooks domain.LifecycleHooks
	if opts.Prompt != nil {
		text := runner.NewTextHandler(opts.Prompt, runner.WithTextHandlerRenderer(runner.ContentRenderer(tui.NewRenderer(0))))
		hooks = hooks.Merge(text.Hooks())
	}
	var events *runner.JSONHandler
	if opts.Events != nil {
		events = runner.NewJSONHandler(opts.Events)
		hooks = hooks.Merge(events.Hooks())
	}
	return hooks, events
}

// Play runs one guessing session and writes the report.
// A failed journal write is returned but does not prevent the report.
func Play(ctx context.Context, engine *arbor.Engine, opts PlayOptions) (domain.Outcome, error) {
	if opts.Prompt != nil && opts.Topic == "" {
		printSystemMessage(opts.Prompt, "Choose a topic: %s", strings.Join(engine.Registry().Topics(), ", "))
		io.WriteString(opts.Prompt, "> ")
	}

	source := runner.NewTokenSource(opts.Input)
	var (
		out  domain.Outcome
		jerr error
	)
	if opts.Topic != "" {
		out, jerr = engine.PlayTopic(ctx, opts.Topic, source)
	} else {
		out, jerr = engine.Play(ctx, source)
	}

	if opts.Prompt != nil && isInterrupted(out.Reason) {
		io.WriteString(opts.Prompt, "[CTRL+C]\n")
		printSystemMessage(opts.Prompt, "Interrupted.")
	}

	report := runner.ReportOptions{Sentinel: opts.Sentinel, Reason: opts.Reason}
	if !opts.Brief {
		report.Topics = engine.Topics()
	}
	return out, errors.Join(jerr, runner.Report(opts.Output, out, report))
}
