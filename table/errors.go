package table

import "errors"

var (
	// ErrBadShape indicates that labels and data disagree on dimensions,
	// a row has the wrong length, or a dimension is non-positive.
	ErrBadShape = errors.New("table: invalid shape")
	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("table: index out of range")
	// ErrUnknownLabel indicates a lookup by a label the table does not carry.
	ErrUnknownLabel = errors.New("table: unknown label")
	// ErrDuplicateLabel indicates two rows/columns/entries share one label.
	ErrDuplicateLabel = errors.New("table: duplicate label")
	// ErrEmptyLabel indicates an empty string used as a label.
	ErrEmptyLabel = errors.New("table: empty label")
)
