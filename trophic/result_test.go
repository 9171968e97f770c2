package trophic_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/trodiv/trophic"
)

// TestColumns pins the canonical column order the output contract promises.
func TestColumns(t *testing.T) {
	assert.Equal(t, []string{
		"abtot", "nbsp", "nbtl", "mintl", "maxtl",
		"rgetl", "meantl", "sdtl", "FDvar", "FROm",
	}, trophic.Columns())
}

// TestResultTable_Accessors covers label order, row access and cell lookup.
func TestResultTable_Accessors(t *testing.T) {
	res := mustCompute(t,
		[]string{"lagoonA", "lagoonB"},
		[]string{"sp1", "sp2", "sp3"},
		[][]float64{{10, 0, 5}, {0, 20, 0}},
		[]float64{2.0, 3.0, 4.0},
	)

	assert.Equal(t, 2, res.Len())
	assert.Equal(t, []string{"lagoonA", "lagoonB"}, res.Labels(), "input row order preserved")

	row0, err := res.Row(0)
	require.NoError(t, err)
	assert.Equal(t, "lagoonA", row0.Community)

	_, err = res.Row(2)
	assert.ErrorIs(t, err, trophic.ErrRowOutOfRange)
	_, err = res.Row(-1)
	assert.ErrorIs(t, err, trophic.ErrRowOutOfRange)

	_, err = res.RowByCommunity("atlantis")
	assert.ErrorIs(t, err, trophic.ErrUnknownCommunity)
}

// TestResultTable_Value reads every column by name for a defined row.
func TestResultTable_Value(t *testing.T) {
	res := mustCompute(t,
		[]string{"lagoonA"},
		[]string{"sp1", "sp2", "sp3"},
		[][]float64{{10, 0, 5}},
		[]float64{2.0, 3.0, 4.0},
	)

	want := map[string]float64{
		trophic.ColAbTot:  15,
		trophic.ColNbSp:   2,
		trophic.ColNbTL:   2,
		trophic.ColMinTL:  2,
		trophic.ColMaxTL:  4,
		trophic.ColRgeTL:  2,
		trophic.ColMeanTL: 2.667,
		trophic.ColSdTL:   0.942,
		trophic.ColFDvar:  0.312,
	}
	for col, expected := range want {
		v, ok, err := res.Value("lagoonA", col)
		require.NoErrorf(t, err, "column %s", col)
		require.Truef(t, ok, "column %s must be defined", col)
		assert.Equalf(t, expected, v, "column %s", col)
	}

	// FROm is the one undefined cell here (nbtl = 2).
	_, ok, err := res.Value("lagoonA", trophic.ColFROm)
	require.NoError(t, err)
	assert.False(t, ok, "FROm undefined at 2 distinct levels")

	// Unknown column and unknown community are distinct failures.
	_, _, err = res.Value("lagoonA", "shannon")
	assert.ErrorIs(t, err, trophic.ErrUnknownColumn)
	_, _, err = res.Value("atlantis", trophic.ColAbTot)
	assert.ErrorIs(t, err, trophic.ErrUnknownCommunity)
}

// TestResultTable_WarningsCopy ensures the warnings slice is not aliased.
func TestResultTable_WarningsCopy(t *testing.T) {
	res := mustCompute(t,
		[]string{"dead", "alive"},
		[]string{"sp1"},
		[][]float64{{0}, {1}},
		[]float64{2.0},
	)

	w := res.Warnings()
	require.Len(t, w, 1)
	w[0].Community = "mutated"

	again := res.Warnings()
	assert.Equal(t, "dead", again[0].Community, "Warnings must return a copy")
}
