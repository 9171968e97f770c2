package trophic

import (
	"fmt"

	"github.com/katalvlaran/trodiv/table"
)

// validateInputs verifies the structural invariants tying the two input
// tables together. It runs once, before any per-community work, and each
// check fails with its own sentinel so callers can tell exactly which
// contract was broken.
//
// Check order (fixed, first failure wins):
//  1. nil guards                          → ErrNilInput
//  2. species count agreement             → ErrDimensionMismatch
//  3. fully observed trophic levels       → ErrMissingLevel
//  4. species identifiers equal, in order → ErrNameMismatch
//
// Complexity: O(S) time, no allocations on the happy path.
func validateInputs(ab *AbundanceTable, tl *TrophicLevels) error {
	// Stage 1: nil guards.
	if ab == nil || tl == nil {
		return fmt.Errorf("validate: %w", ErrNilInput)
	}

	// Stage 2: dimensions. The abundance table's column count defines the
	// species count; the level vector must match it exactly.
	if ab.NumSpecies() != tl.Len() {
		return fmt.Errorf("validate: %d abundance columns vs %d trophic levels: %w",
			ab.NumSpecies(), tl.Len(), ErrDimensionMismatch)
	}

	// Stage 3: no missing levels. Abundances may be missing; levels may not.
	var j int
	for j = 0; j < tl.Len(); j++ {
		if table.IsMissing(tl.at(j)) {
			sp, _ := tl.v.Label(j)

			return fmt.Errorf("validate: species %q: %w", sp, ErrMissingLevel)
		}
	}

	// Stage 4: identifier alignment, positional. Label-based alignment is an
	// explicit contract here, never a silent reorder.
	abSpecies := ab.Species()
	tlSpecies := tl.Species()
	for j = 0; j < len(abSpecies); j++ {
		if abSpecies[j] != tlSpecies[j] {
			return fmt.Errorf("validate: position %d: abundance column %q vs trophic level %q: %w",
				j, abSpecies[j], tlSpecies[j], ErrNameMismatch)
		}
	}

	return nil
}
