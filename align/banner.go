// Package align implements the pairwise and block emitters (spec component
// H): serializing the chain store and the woven per-chromosome views to the
// two output file formats.
package align

import (
	"fmt"

	"github.com/tanghaibao/mcscan/mcparams"
)

// Banner renders the parameter summary both output files open with. The
// original prints this same banner at the top of its pairwise output too,
// not only its block output (spec §12 supplemented feature); callers pass
// its result as the params argument of both WritePairwise and WriteBlocks.
func Banner(p *mcparams.Parameters) string {
	return fmt.Sprintf(
		"## MATCH_SCORE=%d MATCH_SIZE=%d GAP_SCORE=%d E_VALUE=%g PIVOT=%s UNIT_DIST=%d\n"+
			"## OVERLAP_WINDOW=%d EXTENSION_DIST=%d CUTOFF_SCORE=%d IN_SYNTENY=%t USE_BP=%t\n",
		p.MatchScore, p.MatchSize, p.GapScore, p.EValue, p.Pivot, p.UnitDist,
		p.OverlapWindow, p.ExtensionDist, p.CutoffScore, p.InSynteny, p.UseBP)
}
