package trophic_test

import (
	"fmt"

	"github.com/katalvlaran/trodiv/trophic"
)

// ExampleCompute walks the smallest realistic survey: two lagoons, three
// species, one trophic level per species.
//
// Scenario:
//
//	         sp1  sp2  sp3          tl
//	lagoonA   10    0    5     sp1  2.0  (herbivore)
//	lagoonB    0   20    0     sp2  3.0
//	                           sp3  4.0  (top predator)
//
// lagoonA holds two present species at levels 2 and 4; lagoonB is a
// single-species community, so its spread indices collapse to zero.
func ExampleCompute() {
	ab, err := trophic.NewAbundanceTable(
		[]string{"lagoonA", "lagoonB"},
		[]string{"sp1", "sp2", "sp3"},
		[][]float64{
			{10, 0, 5},
			{0, 20, 0},
		},
	)
	if err != nil {
		fmt.Println("abundances:", err)

		return
	}
	tl, err := trophic.NewTrophicLevels(
		[]string{"sp1", "sp2", "sp3"},
		[]float64{2.0, 3.0, 4.0},
	)
	if err != nil {
		fmt.Println("levels:", err)

		return
	}

	res, err := trophic.Compute(ab, tl, nil)
	if err != nil {
		fmt.Println("compute:", err)

		return
	}

	for _, label := range res.Labels() {
		row, _ := res.RowByCommunity(label)
		fmt.Printf("%s: abtot=%g nbsp=%d meantl=%.3f rgetl=%g\n",
			label, row.AbTot, row.NbSp, row.MeanTL, row.RgeTL)
	}
	_, ok, _ := res.Value("lagoonA", trophic.ColFROm)
	fmt.Println("lagoonA FROm defined:", ok)

	// Output:
	// lagoonA: abtot=15 nbsp=2 meantl=2.667 rgetl=2
	// lagoonB: abtot=20 nbsp=1 meantl=3.000 rgetl=0
	// lagoonA FROm defined: false
}
