// Package table provides labeled numeric containers for community ecology
// data: a dense row-major Matrix with row and column labels, and a labeled
// Vector.
//
// Both containers are plain float64 storage; a NaN cell is the canonical
// "missing / not observed" marker (see Missing and IsMissing). The package
// performs structural validation only — rectangularity, label/shape
// agreement, label uniqueness, index and label bounds — and leaves all
// domain interpretation (what a zero or a missing abundance means) to its
// callers.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/trodiv/table"
//
//	ab, err := table.NewMatrix(
//	  []string{"lagoonA", "lagoonB"},
//	  []string{"sp1", "sp2", "sp3"},
//	  [][]float64{{10, 0, 5}, {0, 20, 0}},
//	)
//
//	tl, err := table.NewVector(
//	  []string{"sp1", "sp2", "sp3"},
//	  []float64{2.0, 3.0, 4.0},
//	)
//
// All constructors copy their inputs; a constructed table never aliases
// caller memory and is safe for concurrent reads.
package table
