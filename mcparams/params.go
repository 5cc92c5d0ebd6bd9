// Package mcparams holds the tunable parameters of a synteny run, replacing
// what the original C++ kept as module-level globals. It does not hold the
// gene index or the chain store; those are separate values passed to each
// stage alongside the Parameters.
package mcparams

// Parameters controls the chainer and the POG weaver. Zero value is not
// valid; use DefaultParameters and override fields, then call Derive.
type Parameters struct {
	// MatchScore is the per-anchor bonus (flag -k).
	MatchScore int
	// MatchSize is the minimum number of anchors per chain, and the minimum
	// number of mapped genes a reference chromosome needs to be woven at all
	// (flag -s).
	MatchSize int
	// GapScore is the per-gap-unit penalty, typically negative (flag -g).
	GapScore int
	// EValue is a diagnostic ceiling only; the chainer itself accepts any
	// chain scoring at least CutoffScore (flag -e).
	EValue float64
	// Pivot restricts the POG weaver to chromosomes whose label contains
	// this prefix; "ALL" processes every chromosome (flag -p).
	Pivot string
	// UnitDist is the distance unit gap costs are measured in: 2 for rank
	// mode, 10000 for base-pair mode by convention (flag -u).
	UnitDist int
	// IsPairwise skips the POG/layout/block phase entirely (flag -a).
	IsPairwise bool
	// BuildMCL implies IsPairwise and switches the pairwise emitter to the
	// simplified MCL-feed format (flag -c in the original).
	BuildMCL bool
	// InSynteny skips intra-genome chromosome pairs during fusion, so only
	// cross-genome chains are woven (flag -b).
	InSynteny bool
	// UseBP uses the BED start coordinate rather than gene ranks as position
	// (flag -A).
	UseBP bool

	// Derived fields, computed once by Derive.
	OverlapWindow int
	ExtensionDist int
	CutoffScore   int
}

// DefaultParameters mirrors the newer of the two default sets documented in
// the original (k=50, s=6, g=-3); the older k=40/s=5/g=-2 set is not
// canonical and is not carried forward (spec open question). UnitDist here
// is the base-pair default; NewParameters picks the rank-mode default of 2
// when UseBP is false.
var DefaultParameters = Parameters{
	MatchScore: 50,
	MatchSize:  6,
	GapScore:   -3,
	EValue:     1e-5,
	Pivot:      "ALL",
	UnitDist:   10000,
}

// NewParameters returns a copy of DefaultParameters with UnitDist set to the
// mode-appropriate default (2 for gene-rank positions, 10000 for base-pair
// positions) and UseBP recorded. Callers still need to call Derive after
// applying any flag overrides.
func NewParameters(useBP bool) Parameters {
	p := DefaultParameters
	p.UseBP = useBP
	if !useBP {
		p.UnitDist = 2
	}
	return p
}

// Derive computes the parameters that follow mechanically from the others.
// Call once after all flags/overrides have been applied.
func (p *Parameters) Derive() {
	p.OverlapWindow = p.MatchScore * p.UnitDist / 10
	p.ExtensionDist = p.MatchScore * p.UnitDist / 2
	p.CutoffScore = p.MatchScore * p.MatchSize
}

// SumGaps is the gap cost between two anchors separated by dx, dy units
// along the two chromosomes: ceil((max(|dx|,|dy|)-1) / UnitDist). The -1
// means immediately adjacent anchors (distance 1, no intervening genes)
// cost nothing; the gap count only grows once something sits between them.
func (p *Parameters) SumGaps(dx, dy int) int {
	d := dx
	if dy > d {
		d = dy
	}
	d--
	if d <= 0 {
		return 0
	}
	return (d + p.UnitDist - 1) / p.UnitDist
}
