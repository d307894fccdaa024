// Package registry indexes knowledge trees by topic name.
//
// Installing a tree is atomic: a document is fully decoded before it replaces the
// previous tree of its topic, so a failed load never leaves a half-built tree
// behind. Installed trees are never mutated in place, which lets readers share
// them while a reload swaps in a new one.
package registry
