// SPDX-License-Identifier: MIT
// Package: lvplanar/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context using `%w` and the constructor name.

package builder

import (
	"errors"
)

// ErrTooFewVertices indicates that a numeric parameter (n, rows, cols, degree)
// is smaller than the allowed minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates that a probability is outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor requires a non-nil
// *rand.Rand (WithSeed/WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that the builder exhausted permitted attempts
// (stub matching for RandomRegular) or received a nil constructor.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrOptionViolation indicates a meaningless parameter that is not a size,
// such as an unknown solid or a non-permutation passed to Relabel.
var ErrOptionViolation = errors.New("builder: invalid option value")

// ErrUnknownVertex indicates an edit referring to a vertex or edge that the
// graph does not contain yet.
var ErrUnknownVertex = errors.New("builder: unknown vertex or edge")
