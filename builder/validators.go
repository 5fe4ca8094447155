package builder

import "fmt"

// validateMin returns "<method>: <name>=<got> < min=<min>: ErrTooFewVertices"
// when got < min.
func validateMin(method, name string, got, min int) error {
	if got < min {
		return fmt.Errorf("%s: %s=%d < min=%d: %w", method, name, got, min, ErrTooFewVertices)
	}

	return nil
}

// validateProbability enforces p ∈ [0,1].
func validateProbability(method string, p float64) error {
	if !(p >= 0 && p <= 1) {
		return fmt.Errorf("%s: p=%.6f not in [0,1]: %w", method, p, ErrInvalidProbability)
	}

	return nil
}
