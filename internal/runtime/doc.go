// Package runtime implements the guessing traversal as a small state machine.
//
// A traversal starts at the root of a tree and consumes one answer token per
// question, then one confirmation token once a leaf is reached:
//
//	at_node --da/nu--> at_node | awaiting_confirmation
//	awaiting_confirmation --da--> resolved
//	awaiting_confirmation --nu/other--> inconclusive
//	any --unrecognized/exhausted--> inconclusive
//
// Start, Feed and Exhaust are pure transitions over *domain.State; Run drives
// them from a ports.AnswerSource and Replay from a finite token list. Prompting,
// logging and metrics hang off domain.LifecycleHooks and never change a result.
package runtime
