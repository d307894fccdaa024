/*
Package observability provides lifecycle hooks for monitoring the arbor engine.

Metrics exposes Prometheus collectors fed by domain.LifecycleHooks; LogHooks
writes one structured log line per traversal event. Both are side channels and
can be merged with other hooks through domain.LifecycleHooks.Merge.
*/
package observability
