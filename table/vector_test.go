package table_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/trodiv/table"
)

// TestNewVector_Valid verifies basic construction and accessors.
func TestNewVector_Valid(t *testing.T) {
	v, err := table.NewVector([]string{"sp1", "sp2"}, []float64{2.5, 3.0})
	require.NoError(t, err)

	assert.Equal(t, 2, v.Len())
	assert.Equal(t, []string{"sp1", "sp2"}, v.Labels())
	assert.Equal(t, []float64{2.5, 3.0}, v.Values())

	x, err := v.At(1)
	require.NoError(t, err)
	assert.Equal(t, 3.0, x)

	l, err := v.Label(0)
	require.NoError(t, err)
	assert.Equal(t, "sp1", l)
}

// TestNewVector_BadShape covers empty and mismatched inputs.
func TestNewVector_BadShape(t *testing.T) {
	_, err := table.NewVector(nil, nil)
	assert.ErrorIs(t, err, table.ErrBadShape, "empty vector must error")

	_, err = table.NewVector([]string{"sp1"}, []float64{1, 2})
	assert.ErrorIs(t, err, table.ErrBadShape, "label/value length mismatch must error")
}

// TestNewVector_BadLabels covers duplicate and empty labels.
func TestNewVector_BadLabels(t *testing.T) {
	_, err := table.NewVector([]string{"sp1", "sp1"}, []float64{1, 2})
	assert.ErrorIs(t, err, table.ErrDuplicateLabel)

	_, err = table.NewVector([]string{"sp1", ""}, []float64{1, 2})
	assert.ErrorIs(t, err, table.ErrEmptyLabel)
}

// TestVector_OutOfRange checks index bounds on both accessors.
func TestVector_OutOfRange(t *testing.T) {
	v, err := table.NewVector([]string{"sp1"}, []float64{1})
	require.NoError(t, err)

	_, err = v.At(1)
	assert.ErrorIs(t, err, table.ErrOutOfRange)
	_, err = v.Label(-1)
	assert.ErrorIs(t, err, table.ErrOutOfRange)
}

// TestVector_NoAliasing ensures constructor inputs and accessor outputs are copies.
func TestVector_NoAliasing(t *testing.T) {
	values := []float64{1, 2}
	v, err := table.NewVector([]string{"sp1", "sp2"}, values)
	require.NoError(t, err)

	values[0] = 42
	x, err := v.At(0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, x, "constructor must copy values")

	out := v.Values()
	out[1] = 42
	x, err = v.At(1)
	require.NoError(t, err)
	assert.Equal(t, 2.0, x, "Values must return a copy")
}
