// Package trophic computes the Villéger et al. (2008) battery of trophic
// diversity indices: ten per-community statistics derived from species
// abundances and per-species trophic levels.
//
// 🚀 What does it compute?
//
//	For each community (one abundance row), restricted to the species with
//	strictly positive abundance (zero and missing cells are excluded):
//	  • abtot  — total present abundance
//	  • nbsp   — number of present species
//	  • nbtl   — number of distinct trophic levels present
//	  • mintl  — minimum trophic level
//	  • maxtl  — maximum trophic level
//	  • rgetl  — maxtl − mintl
//	  • meantl — abundance-weighted mean trophic level (MTI), 3 decimals
//	  • sdtl   — abundance-weighted standard deviation, 3 decimals
//	  • FDvar  — bounded divergence of log trophic levels, in [0,1)
//	  • FROm   — trophic evenness, in [0,1]; defined only when nbtl > 2
//
// ✨ Key guarantees:
//   - Inputs validated up front (species count, missing levels, label order)
//     with one sentinel per failed check — see errors.go and errors.Is.
//   - A community with no present species never aborts its siblings: its row
//     stays undefined and a Warning records the community label.
//   - Undefined cells stay undefined; nothing is coerced to zero.
//   - Per-community rows are independent; Options.Workers > 1 evaluates them
//     concurrently with identical results.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/trodiv/trophic"
//
//	ab, _ := trophic.NewAbundanceTable(communities, species, cells)
//	tl, _ := trophic.NewTrophicLevels(species, levels)
//
//	res, err := trophic.Compute(ab, tl, nil) // nil ⇒ DefaultOptions()
//	if err != nil {
//	  // ErrDimensionMismatch / ErrMissingLevel / ErrNameMismatch / ErrNilInput
//	}
//	mti, ok, _ := res.Value("lagoonA", trophic.ColMeanTL)
//
// Performance: O(C·S) time for C communities and S species, plus
// O(n·log n) per community for the evenness sort; O(C) output memory.
package trophic
