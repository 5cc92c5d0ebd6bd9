package align

import (
	"fmt"
	"io"

	"github.com/tanghaibao/mcscan/match"
	"github.com/tanghaibao/mcscan/synteny"
)

// WritePairwise writes the parameter banner followed by one alignment
// record per Segment, in the order given (spec §4.8; callers pass
// Store.All(), which is already in the §5 chainer-discovery order). matches
// must be indexed by pair id, as match.Loader.Matches() is.
func WritePairwise(w io.Writer, segments []*synteny.Segment, matches []*match.Match, params string) error {
	if _, err := io.WriteString(w, params); err != nil {
		return err
	}
	for i, seg := range segments {
		strand := "plus"
		if !seg.SameStrand {
			strand = "minus"
		}
		if _, err := fmt.Fprintf(w, "## Alignment %d: score=%.1f e_value=%g N=%d %s %s\n",
			i, seg.Score, seg.EValue, len(seg.PairIDs), seg.ChromPair, strand); err != nil {
			return err
		}
		for j, pid := range seg.PairIDs {
			m := matches[pid]
			if _, err := fmt.Fprintf(w, "%d-%d:\t%s\t%s\t%g\n", i, j, m.Gene1.Name, m.Gene2.Name, m.Score); err != nil {
				return err
			}
		}
	}
	return nil
}

// WriteAlignsMCL writes the simplified MCL-feed pairwise format: bare
// gene1, gene2, score triples with no banner or per-alignment header (spec
// §12's -c / BUILD_MCL supplemented mode, meant to be fed back into an MCL
// clustering pass).
func WriteAlignsMCL(w io.Writer, segments []*synteny.Segment, matches []*match.Match) error {
	for _, seg := range segments {
		for _, pid := range seg.PairIDs {
			m := matches[pid]
			if _, err := fmt.Fprintf(w, "%s\t%s\t%g\n", m.Gene1.Name, m.Gene2.Name, m.Score); err != nil {
				return err
			}
		}
	}
	return nil
}
