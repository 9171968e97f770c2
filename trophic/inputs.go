package trophic

import (
	"fmt"

	"github.com/katalvlaran/trodiv/table"
)

// AbundanceTable holds species abundances per community: one row per
// community, one column per species. Cells are non-negative or missing
// (table.Missing()); a missing or zero cell means the species does not
// contribute to that community's indices.
type AbundanceTable struct {
	m *table.Matrix
}

// NewAbundanceTable builds an abundance table from per-community rows.
// Stage 1 (Shape): delegate rectangularity and label checks to table.NewMatrix.
// Stage 2 (Domain): reject negative cells — abundances are counts/biomass,
// non-negative or missing, never negative.
// Complexity: O(C*S).
func NewAbundanceTable(communities, species []string, cells [][]float64) (*AbundanceTable, error) {
	m, err := table.NewMatrix(communities, species, cells)
	if err != nil {
		return nil, err
	}

	var (
		i, j int
		v    float64
	)
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			v, _ = m.At(i, j) // bounds are loop-controlled
			if !table.IsMissing(v) && v < 0 {
				return nil, fmt.Errorf("community %q, species %q: %w",
					communities[i], species[j], ErrNegativeAbundance)
			}
		}
	}

	return &AbundanceTable{m: m}, nil
}

// Communities returns the community labels in row order.
func (ab *AbundanceTable) Communities() []string { return ab.m.RowLabels() }

// Species returns the species identifiers in column order.
func (ab *AbundanceTable) Species() []string { return ab.m.ColLabels() }

// NumCommunities returns the number of communities (rows).
func (ab *AbundanceTable) NumCommunities() int { return ab.m.Rows() }

// NumSpecies returns the number of species (columns).
func (ab *AbundanceTable) NumSpecies() int { return ab.m.Cols() }

// at reads cell (i,j); indices come from internal loops, so the bounds
// error path is unreachable and swallowed.
func (ab *AbundanceTable) at(i, j int) float64 {
	v, _ := ab.m.At(i, j)

	return v
}

// TrophicLevels holds one trophic level per species, in the same species
// order as the abundance table's columns. Missing values are rejected by
// Compute, not by the constructor, so a partially assembled vector can
// still be inspected.
type TrophicLevels struct {
	v *table.Vector
}

// NewTrophicLevels builds a trophic-level vector keyed by species identifier.
// Complexity: O(S).
func NewTrophicLevels(species []string, levels []float64) (*TrophicLevels, error) {
	v, err := table.NewVector(species, levels)
	if err != nil {
		return nil, err
	}

	return &TrophicLevels{v: v}, nil
}

// Species returns the species identifiers in storage order.
func (tl *TrophicLevels) Species() []string { return tl.v.Labels() }

// Levels returns the trophic levels in storage order.
func (tl *TrophicLevels) Levels() []float64 { return tl.v.Values() }

// Len returns the number of species.
func (tl *TrophicLevels) Len() int { return tl.v.Len() }

// at reads level j; loop-controlled indices, see AbundanceTable.at.
func (tl *TrophicLevels) at(j int) float64 {
	v, _ := tl.v.At(j)

	return v
}
