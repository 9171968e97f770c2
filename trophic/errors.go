package trophic

import "errors"

var (
	// ErrNilInput indicates a nil abundance table or trophic-level vector.
	ErrNilInput = errors.New("trophic: nil input table")

	// ErrDimensionMismatch indicates that the abundance table's species count
	// differs from the length of the trophic-level vector.
	ErrDimensionMismatch = errors.New("trophic: species count mismatch")

	// ErrMissingLevel indicates a missing (NaN) trophic-level value.
	// Trophic levels must be fully observed; abundances may be missing,
	// levels may not.
	ErrMissingLevel = errors.New("trophic: missing trophic level")

	// ErrNameMismatch indicates that the species identifiers of the abundance
	// table and the trophic-level vector differ in value or in order.
	ErrNameMismatch = errors.New("trophic: species identifier mismatch")

	// ErrNoSpeciesPresent marks a community whose abundances are all zero or
	// missing. It is reported per row (see ResultTable.Warnings) and never
	// aborts the computation of other communities.
	ErrNoSpeciesPresent = errors.New("trophic: no species present in community")

	// ErrNegativeAbundance indicates a negative abundance cell at table
	// construction. Abundances are non-negative or missing, never negative.
	ErrNegativeAbundance = errors.New("trophic: negative abundance")

	// ErrUnknownColumn indicates a result lookup by a column name outside the
	// ten fixed index columns.
	ErrUnknownColumn = errors.New("trophic: unknown result column")

	// ErrUnknownCommunity indicates a result lookup by a community label the
	// table does not carry.
	ErrUnknownCommunity = errors.New("trophic: unknown community label")

	// ErrRowOutOfRange indicates a result row index outside [0, Len).
	ErrRowOutOfRange = errors.New("trophic: result row index out of range")

	// ErrBadWorkers indicates a negative Options.Workers value.
	ErrBadWorkers = errors.New("trophic: Workers must be non-negative")
)
