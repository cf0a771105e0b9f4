// SPDX-License-Identifier: MIT
//
// File: errors.go
// Role: Sentinel errors and the single wrapping helper for core.Graph.
// Policy:
//   - Only sentinel variables are exposed; callers branch with errors.Is.
//   - Operation context is attached with %w at the failure site (invalidArgf).
//   - Preconditions are validated before any mutation; an error never leaves
//     partial state behind.

package core

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is the only failure kind of the container: an operation
// referenced a node that is not part of the graph.
var ErrInvalidArgument = errors.New("core: invalid argument")

// ErrNodeNotFound indicates a precondition named a node that does not exist.
// It wraps ErrInvalidArgument, so errors.Is(err, ErrInvalidArgument) holds too.
var ErrNodeNotFound = fmt.Errorf("%w: node not found", ErrInvalidArgument)

// Method names used as error context.
const (
	methodInsertEdge       = "InsertEdge"
	methodReplaceNode      = "ReplaceNode"
	methodMergeReplaceNode = "MergeReplaceNode"
	methodEraseEdge        = "EraseEdge"
	methodIsConnected      = "IsConnected"
	methodWeights          = "Weights"
	methodConnections      = "Connections"
)

// invalidArgf wraps ErrNodeNotFound with the method name and the violated
// precondition: "core: <Method>: <msg>: core: invalid argument: node not found".
func invalidArgf(method, msg string) error {
	return fmt.Errorf("core: %s: %s: %w", method, msg, ErrNodeNotFound)
}
