package trophic

import "fmt"

// ResultTable holds one CommunityIndices row per input community, in input
// row order, plus the per-row warnings collected during computation. It is
// immutable after construction and safe for concurrent reads.
type ResultTable struct {
	rows     []CommunityIndices
	index    map[string]int // community label → row position
	warnings []Warning
}

// newResultTable assembles the table and collects degenerate-row warnings
// in row order.
func newResultTable(rows []CommunityIndices) *ResultTable {
	rt := &ResultTable{
		rows:  rows,
		index: make(map[string]int, len(rows)),
	}
	for i, row := range rows {
		rt.index[row.Community] = i
		if !row.Defined {
			rt.warnings = append(rt.warnings, Warning{
				Community: row.Community,
				Err:       fmt.Errorf("community %q: %w", row.Community, ErrNoSpeciesPresent),
			})
		}
	}

	return rt
}

// Len returns the number of rows (communities).
func (rt *ResultTable) Len() int { return len(rt.rows) }

// Labels returns the community labels in row order.
func (rt *ResultTable) Labels() []string {
	out := make([]string, len(rt.rows))
	for i, row := range rt.rows {
		out[i] = row.Community
	}

	return out
}

// Row returns the row at position i.
func (rt *ResultTable) Row(i int) (CommunityIndices, error) {
	if i < 0 || i >= len(rt.rows) {
		return CommunityIndices{}, fmt.Errorf("Row(%d): %w", i, ErrRowOutOfRange)
	}

	return rt.rows[i], nil
}

// RowByCommunity returns the row for the given community label.
func (rt *ResultTable) RowByCommunity(label string) (CommunityIndices, error) {
	i, ok := rt.index[label]
	if !ok {
		return CommunityIndices{}, fmt.Errorf("community %q: %w", label, ErrUnknownCommunity)
	}

	return rt.rows[i], nil
}

// Value reads one cell by community label and column name.
//
// Returns (value, defined, error): defined is false for every column of an
// undefined row (no species present) and for FROm when nbtl ≤ 2; the value
// is meaningless whenever defined is false. Integer columns (nbsp, nbtl)
// are returned as float64 for a uniform numeric surface.
func (rt *ResultTable) Value(community, column string) (float64, bool, error) {
	row, err := rt.RowByCommunity(community)
	if err != nil {
		return 0, false, err
	}

	var v float64
	defined := row.Defined
	switch column {
	case ColAbTot:
		v = row.AbTot
	case ColNbSp:
		v = float64(row.NbSp)
	case ColNbTL:
		v = float64(row.NbTL)
	case ColMinTL:
		v = row.MinTL
	case ColMaxTL:
		v = row.MaxTL
	case ColRgeTL:
		v = row.RgeTL
	case ColMeanTL:
		v = row.MeanTL
	case ColSdTL:
		v = row.SdTL
	case ColFDvar:
		v = row.FDvar
	case ColFROm:
		v = row.FROm
		defined = defined && row.HasFROm
	default:
		return 0, false, fmt.Errorf("column %q: %w", column, ErrUnknownColumn)
	}

	if !defined {
		return 0, false, nil
	}

	return v, true, nil
}

// Warnings returns the per-row degeneracy reports, in row order. Each entry
// wraps ErrNoSpeciesPresent and carries the community label.
func (rt *ResultTable) Warnings() []Warning {
	return append([]Warning(nil), rt.warnings...)
}
