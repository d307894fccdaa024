/*
Package domain contains the core model of the Arbor guessing engine.

It defines the decision tree (Nodes and Trees), the Entities that sit on its
leaves, the answer vocabulary accepted at each decision point and the runtime
snapshot of a traversal. This package is kept pure and free of external
dependencies like I/O or persistence.

# Key Entities

  - Entity: an immutable named answer record (name, domain, kind).
  - Node: a tagged variant, either a Question (text + yes/no children) or a Leaf (one Entity).
  - Tree: owns a root Node, or is empty. Supports Depth, NodeCount and a deep Clone.
  - State: the snapshot of a traversal (current node, phase, path taken).
  - Outcome: the terminal result of a traversal, resolved or inconclusive.
*/
package domain
