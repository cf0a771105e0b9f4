// SPDX-License-Identifier: MIT
//
// File: methods_replace.go
// Role: Node identity rewrites: ReplaceNode (rename) and MergeReplaceNode (fold).
// Invariants:
//   - Node values are never mutated in place; a rename inserts the new value,
//     redirects edges, then erases the old value.
//   - Edges touching the old node are collected before any of them is rewritten.
//   - Preconditions are checked before the first mutation.

package core

// ReplaceNode renames old to new across every edge.
//
// Steps:
//  1. Fail with ErrNodeNotFound if old is absent.
//  2. Return false if new already exists (no change).
//  3. Insert new, redirect every edge touching old, erase old.
//
// Complexity: O(log V + E + k log E) for k edges touching old.
func (g *Graph[N, E]) ReplaceNode(oldNode, newNode N) (bool, error) {
	oh, ok := g.nodes.lookup(oldNode)
	if !ok {
		return false, invalidArgf(methodReplaceNode, "old node does not exist")
	}
	if g.nodes.contains(newNode) {
		return false, nil
	}
	nh, _ := g.nodes.insert(newNode)
	g.edges.redirect(oh, nh)
	g.nodes.erase(oldNode)

	return true, nil
}

// MergeReplaceNode folds old into new: every edge touching old is redirected
// to touch new, and old is removed. A redirected edge identical to one that
// already exists is dropped, so the result never holds duplicates.
// Merging a node into itself changes nothing.
//
// Errors: ErrNodeNotFound if old or new is absent.
// Complexity: O(log V + E + k log E) for k edges touching old.
func (g *Graph[N, E]) MergeReplaceNode(oldNode, newNode N) error {
	oh, nh, ok := g.nodes.lookupPair(oldNode, newNode)
	if !ok {
		return invalidArgf(methodMergeReplaceNode, "old or new node does not exist")
	}
	if oh == nh {
		return nil
	}
	g.edges.redirect(oh, nh)
	g.nodes.erase(oldNode)

	return nil
}
