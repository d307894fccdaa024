/*
Package session implements the guess session: a handle on a registry plus the
currently selected topic.

Run reads the topic from the answer stream itself (the first token) and then
plays the selected tree with the rest of the stream. Failures never escape the
session; they come back as an inconclusive domain.Outcome whose Reason tells
what happened (domain.ErrUnknownTopic, domain.ErrInputExhausted, ...).
*/
package session
