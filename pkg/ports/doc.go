/*
Package ports defines the driven ports (interfaces) of the arbor engine.

These interfaces decouple the guessing core from external implementations, so the
same trees can be loaded from a loam repository or from memory, answers can come
from a terminal, a file or an HTTP request, and finished plays can be journaled
to memory, SQLite or Redis.

# Key Interfaces

  - TopicLoader: Responsible for fetching topic documents (e.g., from Loam or Memory).
  - AnswerSource: An ordered stream of answer tokens consumed by a traversal.
  - Journal: Append-only record of finished plays.
  - GuessEngine: The read/play side consumed by the HTTP and MCP adapters.
*/
package ports
