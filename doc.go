// Package trodiv computes trophic (food-web) diversity indices for
// collections of ecological communities — from raw abundance tables to
// the full Villéger-style index battery.
//
// 🚀 What is trodiv?
//
//	A small, deterministic library that turns two labeled tables —
//	species abundances per community and one trophic level per species —
//	into ten per-community statistics covering:
//		• Richness: present abundance, species count, distinct trophic levels
//		• Range: min / max / range of trophic level
//		• Central tendency: abundance-weighted mean trophic level (MTI)
//		• Dispersion: weighted standard deviation, bounded log-variance (FDvar)
//		• Evenness: spacing regularity of sorted trophic levels (FROm)
//
// ✨ Why choose trodiv?
//
//   - Deterministic – fixed traversal order, identical results run to run
//   - Strict – labeled inputs validated up front, sentinel errors via errors.Is
//   - Honest about gaps – undefined cells stay undefined, never silently zeroed
//   - Embarrassingly parallel – per-community rows are independent; opt in
//     with Options.Workers
//
// Everything is organized under two subpackages:
//
//	table/   — labeled dense matrix & vector value types (NaN = missing)
//	trophic/ — the index engine: Compute(ab, tl, opts) → ResultTable
//
// Quick sketch:
//
//	         sp1  sp2  sp3          tl
//	lagoonA   10    0    5     sp1  2.0
//	lagoonB    0   20    0     sp2  3.0
//	                           sp3  4.0
//
//	→ one output row per lagoon, ten named columns:
//	  abtot, nbsp, nbtl, mintl, maxtl, rgetl, meantl, sdtl, FDvar, FROm
//
//	go get github.com/katalvlaran/trodiv
package trodiv
