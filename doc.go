/*
Package arbor is a deterministic "20 questions" guessing engine.

A topic is a binary knowledge tree: every inner node asks a yes/no question and
every leaf names an entity. A play walks one tree from its root, consuming one
answer token per question, and ends by asking the player to confirm the candidate
entity. The result is either the confirmed entity or an inconclusive outcome with
a reason (unknown topic, exhausted input, unrecognized answer, rejected candidate).

# Concept

Topic documents are loaded from a Loam repository (Markdown frontmatter, JSON or
YAML files) or any other ports.TopicLoader, validated, and installed in a
registry. The traversal runtime is pure: given the same tree and the same tokens
the outcome is always the same. Side-effects (prompts, logs, metrics, the play
journal) are attached through lifecycle hooks and ports.

# Usage

	package main

	import (
		"context"
		"fmt"
		"os"

		"github.com/aretw0/arbor"
		"github.com/aretw0/arbor/pkg/runner"
	)

	func main() {
		eng, err := arbor.New("./topics")
		if err != nil {
			panic(err)
		}
		if err := eng.LoadAll(context.Background()); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}

		// The first token names the topic, the rest are answers.
		out, _ := eng.Play(context.Background(), runner.NewTokenSource(os.Stdin))
		fmt.Println(out.Result("unknown"))
	}

# Answers

Affirmative tokens are "da", "d", "y" and "yes"; negative tokens are "nu", "n"
and "no". Matching ignores case. Any other token ends the play as inconclusive.

A play whose input ends right after the candidate is proposed is inconclusive by
default. WithConfirmationPolicy(domain.ConfirmAccept) accepts the candidate instead.
*/
package arbor
