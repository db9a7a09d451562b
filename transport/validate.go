package transport

import (
	"math"

	"github.com/katalvlaran/transport/matrix"
)

// validateInputs checks x, y and cost shapes before any allocation happens.
//
// Contract:
//   - len(x) >= 1 and len(y) >= 1.
//   - cost.Rows() == len(x) and cost.Cols() == len(y).
//
// Complexity: O(1).
func validateInputs(x, y []float64, cost matrix.Matrix) error {
	if len(x) == 0 || len(y) == 0 {
		return ErrInvalidLength
	}
	if cost == nil || cost.Rows() != len(x) || cost.Cols() != len(y) {
		return ErrDimensionMismatch
	}

	return nil
}

// validateCostEntry rejects NaN/Inf cost entries; the artificial-cost
// bound in initializeGraphStructures assumes every real cost is finite.
func validateCostEntry(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ErrInvalidCost
	}

	return nil
}
