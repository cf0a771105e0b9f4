// SPDX-License-Identifier: MIT
// Package: wdigraph/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Context is attached at the failure site with %w (builderErrorf).
//   • Constructors never panic; option constructors panic on nil input.

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewVertices indicates that n is below the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrConstructFailed indicates that construction could not proceed
// (e.g., a nil Constructor was passed to BuildGraph).
var ErrConstructFailed = errors.New("builder: construction failed")

// builderErrorf prefixes err with the constructor name and a formatted
// message: "<method>: <msg>: <err>". err stays reachable through errors.Is.
func builderErrorf(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
