package trophic

import (
	"math"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/trodiv/table"
)

// Compute derives the ten trophic diversity indices for every community of
// ab, using the per-species trophic levels tl. Returns one ResultTable row
// per community, in input row order, with row labels copied from ab.
//
// Contract:
//   - ab columns and tl entries describe the same species, in the same order;
//     validateInputs enforces this before any per-community work.
//   - Within a community only strictly positive abundances count as present;
//     zero and missing cells are excluded from every index, including the
//     richness counts.
//   - A community with no present species yields an undefined row plus a
//     Warning (ErrNoSpeciesPresent); sibling communities compute normally.
//   - opts==nil ⇒ DefaultOptions(). Workers>1 evaluates communities
//     concurrently; each goroutine writes only its own row, so results are
//     identical to the sequential order.
//
// Errors:
//   - ErrNilInput, ErrDimensionMismatch, ErrMissingLevel, ErrNameMismatch
//     from validation; ErrBadWorkers for a negative worker count.
//
// Complexity: O(C·S) time plus O(n·log n) per community for the evenness
// sort (n = present species); O(C) output memory.
func Compute(ab *AbundanceTable, tl *TrophicLevels, opts *Options) (*ResultTable, error) {
	// Apply options or defaults.
	workers := 1
	if opts != nil {
		if opts.Workers < 0 {
			return nil, ErrBadWorkers
		}
		if opts.Workers > 1 {
			workers = opts.Workers
		}
	}

	// Validate the three structural invariants up front.
	if err := validateInputs(ab, tl); err != nil {
		return nil, err
	}

	communities := ab.Communities()
	rows := make([]CommunityIndices, ab.NumCommunities())

	if workers == 1 {
		// Sequential path, input row order.
		for k := range rows {
			rows[k] = communityRow(ab, tl, k, communities[k])
		}
	} else {
		// Rows are independent: bounded fan-out, each goroutine owns rows[k].
		var g errgroup.Group
		g.SetLimit(workers)
		for k := range rows {
			k := k // pre-Go 1.22 toolchain: pin the loop variable per iteration
			g.Go(func() error {
				rows[k] = communityRow(ab, tl, k, communities[k])

				return nil
			})
		}
		_ = g.Wait() // per-row degeneracies are warnings, never errors
	}

	return newResultTable(rows), nil
}

// communityRow computes one output row: filter the community's species to
// the present subset, then derive the ten indices from abundances and
// trophic levels restricted to it.
func communityRow(ab *AbundanceTable, tl *TrophicLevels, k int, label string) CommunityIndices {
	// Filter: present ⇔ abundance strictly positive (missing excluded).
	var (
		a []float64 // present abundances, column order
		t []float64 // matching trophic levels, same order
		v float64
	)
	for j := 0; j < ab.NumSpecies(); j++ {
		v = ab.at(k, j)
		if table.IsMissing(v) || v <= 0 {
			continue
		}
		a = append(a, v)
		t = append(t, tl.at(j))
	}

	if len(a) == 0 {
		// Degenerate community: min/max/mean of an empty set are undefined.
		// Policy: leave the whole row undefined; the caller records a Warning.
		return CommunityIndices{Community: label}
	}

	return indicesFor(label, a, t)
}

// indicesFor derives the ten indices for one community from the present
// abundances a and their trophic levels t (same order, len ≥ 1).
func indicesFor(label string, a, t []float64) CommunityIndices {
	n := len(a)
	out := CommunityIndices{Community: label, NbSp: n, Defined: true}

	// abtot and the relative abundances r_i = a_i/abtot (Σ r = 1).
	var abtot float64
	for _, v := range a {
		abtot += v
	}
	r := make([]float64, n)
	for i, v := range a {
		r[i] = v / abtot
	}
	out.AbTot = abtot

	// Level extremes and weighted moments in one pass.
	var (
		minT, maxT = t[0], t[0]
		sumTR      float64 // Σ t·r
		sumT2R     float64 // Σ t²·r
		sumLR      float64 // Σ ln(t)·r
		sumL2R     float64 // Σ ln(t)²·r
		lt         float64
	)
	for i, ti := range t {
		if ti < minT {
			minT = ti
		}
		if ti > maxT {
			maxT = ti
		}
		sumTR += ti * r[i]
		sumT2R += ti * ti * r[i]
		lt = math.Log(ti) // levels are expected strictly positive; NaN propagates otherwise
		sumLR += lt * r[i]
		sumL2R += lt * lt * r[i]
	}
	out.MinTL = minT
	out.MaxTL = maxT
	out.RgeTL = maxT - minT

	// Weighted mean, then the weighted sd. The sd radicand subtracts the
	// square of the mean as stored, i.e. already rounded to 3 decimals.
	out.MeanTL = round3(sumTR)
	rad := sumT2R - out.MeanTL*out.MeanTL
	if rad < 0 {
		rad = 0 // rounding of the mean can push the radicand slightly negative
	}
	out.SdTL = round3(math.Sqrt(rad))

	// FDvar: variance of log levels under r, squashed onto [0,1).
	vlog := sumL2R - sumLR*sumLR
	out.FDvar = round3((2 / math.Pi) * math.Atan(5*vlog))

	// Sorted view for distinct-level count and evenness. The sort is stable:
	// species sharing a level keep their input (column) order, which fixes
	// how abundances pair across tied levels.
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(p, q int) bool { return t[idx[p]] < t[idx[q]] })

	nbtl := 1
	for i := 1; i < n; i++ {
		if t[idx[i]] != t[idx[i-1]] {
			nbtl++
		}
	}
	out.NbTL = nbtl

	// FROm requires the spacing of at least three distinct levels.
	if nbtl > 2 {
		out.FROm = evenness(t, r, idx)
		out.HasFROm = true
	}

	return out
}

// evenness computes FROm over species sorted by ascending trophic level.
// idx is the stable sort order of t; r are relative abundances in input
// order. Requires len(t) ≥ 3 (guaranteed by the nbtl > 2 precondition).
//
// Pipeline: adjacent-pair weights EW_j = |to[j+1]−to[j]| / (bo[j+1]+bo[j]),
// normalized to PEW, capped at the perfect-evenness reference 1/(s−1),
// then rescaled onto [0,1].
func evenness(t, r []float64, idx []int) float64 {
	s := len(idx)
	ew := make([]float64, s-1)

	var sumEW float64
	for j := 0; j < s-1; j++ {
		hi, lo := idx[j+1], idx[j]
		ew[j] = math.Abs(t[hi]-t[lo]) / (r[hi] + r[lo])
		sumEW += ew[j]
	}

	// nbtl > 2 guarantees at least two non-zero gaps, so sumEW > 0.
	os := 1 / float64(s-1)
	var sumMin float64
	for j := 0; j < s-1; j++ {
		pew := ew[j] / sumEW
		if pew > os {
			pew = os
		}
		sumMin += pew
	}

	return round3((sumMin - os) / (1 - os))
}

// round3 rounds to 3 decimal places, halves away from zero.
func round3(x float64) float64 {
	return math.Round(x*1000) / 1000
}
