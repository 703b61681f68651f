// SPDX-License-Identifier: MIT

package builder

import "fmt"

// validateMin ensures got ≥ min, reporting ErrTooFewVertices with context.
func validateMin(method string, got, min int) error {
	if got < min {
		return fmt.Errorf("%s: parameter must be ≥ %d, got %d: %w", method, min, got, ErrTooFewVertices)
	}

	return nil
}

// validateProbability ensures p ∈ [0,1].
func validateProbability(method string, p float64) error {
	if p < MinProbability || p > MaxProbability {
		return fmt.Errorf("%s: probability must be in [%.1f,%.1f], got %f: %w",
			method, MinProbability, MaxProbability, p, ErrInvalidProbability)
	}

	return nil
}

// validateVertex ensures v is an existing vertex of g.
func validateVertex(method string, g *Graph, v int) error {
	if v < 0 || v >= g.N {
		return fmt.Errorf("%s: vertex %d with N=%d: %w", method, v, g.N, ErrUnknownVertex)
	}

	return nil
}
