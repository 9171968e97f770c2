package trophic

// Result column names, fixed by the index battery. These are the exact
// identifiers a presentation layer should use with ResultTable.Value.
const (
	ColAbTot  = "abtot"  // total present abundance
	ColNbSp   = "nbsp"   // present species count
	ColNbTL   = "nbtl"   // distinct trophic levels present
	ColMinTL  = "mintl"  // minimum trophic level
	ColMaxTL  = "maxtl"  // maximum trophic level
	ColRgeTL  = "rgetl"  // maxtl − mintl
	ColMeanTL = "meantl" // abundance-weighted mean trophic level (MTI)
	ColSdTL   = "sdtl"   // abundance-weighted standard deviation
	ColFDvar  = "FDvar"  // bounded log-level divergence, [0,1)
	ColFROm   = "FROm"   // trophic evenness, [0,1]; needs nbtl > 2
)

// Columns returns the ten result column names in canonical output order.
func Columns() []string {
	return []string{
		ColAbTot, ColNbSp, ColNbTL, ColMinTL, ColMaxTL,
		ColRgeTL, ColMeanTL, ColSdTL, ColFDvar, ColFROm,
	}
}

// Options configures Compute.
//
// Fields:
//   - Workers — number of communities evaluated concurrently.
//     0 or 1 means sequential evaluation in input row order; results are
//     identical either way, since rows are independent.
//
// Example:
//
//	opts := trophic.DefaultOptions()
//	opts.Workers = 4
//	res, err := trophic.Compute(ab, tl, &opts)
type Options struct {
	Workers int
}

// DefaultOptions returns the default configuration: sequential evaluation.
func DefaultOptions() Options {
	return Options{Workers: 1}
}

// CommunityIndices is one output row: the ten indices for one community.
//
// Defined is false when the community had no present species; in that case
// every other field is meaningless and must not be read. HasFROm is false
// when fewer than three distinct trophic levels were present (FROm needs the
// spacing of at least three levels to be well defined).
type CommunityIndices struct {
	// Community is the row label, copied from the abundance table.
	Community string

	AbTot  float64 // abtot
	NbSp   int     // nbsp
	NbTL   int     // nbtl
	MinTL  float64 // mintl
	MaxTL  float64 // maxtl
	RgeTL  float64 // rgetl
	MeanTL float64 // meantl, rounded to 3 decimals
	SdTL   float64 // sdtl, rounded to 3 decimals
	FDvar  float64 // FDvar, rounded to 3 decimals

	FROm    float64 // FROm, rounded to 3 decimals; valid only if HasFROm
	HasFROm bool    // FROm precondition nbtl > 2 held

	Defined bool // false ⇒ no species present, whole row undefined
}

// Warning reports a per-community degenerate condition that did not abort
// the computation. Err wraps a package sentinel (currently always
// ErrNoSpeciesPresent) and matches it under errors.Is.
type Warning struct {
	Community string
	Err       error
}
