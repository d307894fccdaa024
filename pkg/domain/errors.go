package domain

import "errors"

// Load-time failures. They abort only the load that raised them.
var (
	// ErrSourceUnavailable is returned when a topic document cannot be obtained.
	ErrSourceUnavailable = errors.New("source unavailable")

	// ErrMalformedDocument is returned when a required key is absent or a node
	// matches neither the question shape nor the entity shape.
	ErrMalformedDocument = errors.New("malformed document")
)

// ErrUnknownTopic is returned for a topic with no registered tree.
var ErrUnknownTopic = errors.New("topic not found")

// ErrNoTopicSelected is returned when a session is asked to play before a topic was selected.
var ErrNoTopicSelected = errors.New("no topic selected")

// Run-time failures. They degrade to an inconclusive outcome and never escape a session.
var (
	ErrInputExhausted       = errors.New("input exhausted")
	ErrUnrecognizedAnswer   = errors.New("unrecognized answer")
	ErrConfirmationRejected = errors.New("confirmation rejected")
	ErrEmptyTree            = errors.New("empty tree")
)

// Structural failures.
var (
	ErrMalformedNode   = errors.New("malformed node")
	ErrEmptyEntityName = errors.New("entity name is empty")
)
