package table

import "fmt"

// vectorErrorf wraps an underlying sentinel with Vector method context.
func vectorErrorf(method string, err error) error {
	return fmt.Errorf("Vector.%s: %w", method, err)
}

// Vector is a labeled float64 vector: one value per label, in fixed order.
// A NaN entry is the missing-value marker, exactly as in Matrix.
type Vector struct {
	labels []string
	values []float64
}

// NewVector builds a labeled vector.
// Stage 1 (Validate): len(labels)==len(values), n>0, unique non-empty labels.
// Stage 2 (Finalize): copy both slices; inputs are never aliased.
// Complexity: O(n) time and memory.
func NewVector(labels []string, values []float64) (*Vector, error) {
	if len(labels) == 0 || len(labels) != len(values) {
		return nil, vectorErrorf("New", ErrBadShape)
	}
	if err := validateLabels(labels); err != nil {
		return nil, vectorErrorf("New", err)
	}

	return &Vector{
		labels: append([]string(nil), labels...),
		values: append([]float64(nil), values...),
	}, nil
}

// Len returns the number of entries. Complexity: O(1).
func (v *Vector) Len() int { return len(v.values) }

// Labels returns a copy of the labels in storage order.
func (v *Vector) Labels() []string { return append([]string(nil), v.labels...) }

// Values returns a copy of the values in storage order.
func (v *Vector) Values() []float64 { return append([]float64(nil), v.values...) }

// At retrieves the value at position i, NaN included.
// Complexity: O(1).
func (v *Vector) At(i int) (float64, error) {
	if i < 0 || i >= len(v.values) {
		return 0, vectorErrorf("At", ErrOutOfRange)
	}

	return v.values[i], nil
}

// Label returns the label at position i.
func (v *Vector) Label(i int) (string, error) {
	if i < 0 || i >= len(v.labels) {
		return "", vectorErrorf("Label", ErrOutOfRange)
	}

	return v.labels[i], nil
}
