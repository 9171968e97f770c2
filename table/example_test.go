package table_test

import (
	"fmt"

	"github.com/katalvlaran/trodiv/table"
)

// ExampleNewMatrix builds a labeled abundance matrix with one missing cell
// and reads it back.
func ExampleNewMatrix() {
	m, err := table.NewMatrix(
		[]string{"siteA", "siteB"},
		[]string{"sp1", "sp2"},
		[][]float64{
			{10, table.Missing()},
			{0, 7},
		},
	)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	v, _ := m.At(0, 1)
	fmt.Println("rows:", m.Rows(), "cols:", m.Cols())
	fmt.Println("siteA/sp2 missing:", table.IsMissing(v))

	i, _ := m.RowIndex("siteB")
	row, _ := m.Row(i)
	fmt.Println("siteB:", row)

	// Output:
	// rows: 2 cols: 2
	// siteA/sp2 missing: true
	// siteB: [0 7]
}
