/*
mcscan detects syntenic blocks between and within genome assemblies and
weaves per-chromosome pairwise chains into a multi-genome alignment anchored
on a reference chromosome (or set of chromosomes sharing a label prefix).
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/grail"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/vcontext"

	"github.com/tanghaibao/mcscan/align"
	"github.com/tanghaibao/mcscan/gene"
	"github.com/tanghaibao/mcscan/ioformats"
	"github.com/tanghaibao/mcscan/match"
	"github.com/tanghaibao/mcscan/mcparams"
	"github.com/tanghaibao/mcscan/pog"
	"github.com/tanghaibao/mcscan/synteny"
)

var (
	matchScore = flag.Int("k", 50, "MATCH_SCORE: per-anchor bonus")
	matchSize  = flag.Int("s", 6, "MATCH_SIZE: minimum anchors per chain and per chromosome for the POG weaver")
	gapScore   = flag.Int("g", -3, "GAP_SCORE: per-gap-unit penalty")
	eValue     = flag.Float64("e", 1e-5, "E_VALUE: e-value ceiling (diagnostic only)")
	pivot      = flag.String("p", "ALL", "PIVOT: chromosome-label prefix to restrict the POG weaver to")
	unitDist   = flag.Int("u", 0, "UNIT_DIST: distance unit for gap cost (default 2 for rank mode, 10000 for -A bp mode)")
	isPairwise = flag.Bool("a", false, "IS_PAIRWISE: skip the POG/layout/block phase")
	inSynteny  = flag.Bool("b", false, "IN_SYNTENY: skip intra-genome chromosome pairs in the POG weaver")
	useBP      = flag.Bool("A", false, "USE_BP: use base-pair positions rather than gene ranks")
	buildMCL   = flag.Bool("c", false, "BUILD_MCL: emit the simplified gene1/gene2/score MCL-feed format instead of .aligns; implies -a")
)

func mcscanUsage() {
	fmt.Printf("Usage: %s [OPTIONS] prefix\n", os.Args[0])
	fmt.Printf("Reads prefix.bed, prefix.mcl, prefix.blast; writes prefix.aligns (or prefix.aligns.mcl with -c) and, unless -a, prefix.blocks.\n")
	fmt.Printf("Other options:\n")
	flag.PrintDefaults()
}

func main() {
	flag.Usage = mcscanUsage
	shutdown := grail.Init()
	defer shutdown()

	if flag.NArg() != 1 {
		log.Fatalf("exactly one positional argument (the file prefix) required, got %d", flag.NArg())
	}
	prefix := flag.Arg(0)

	params := mcparams.NewParameters(*useBP)
	params.MatchScore = *matchScore
	params.MatchSize = *matchSize
	params.GapScore = *gapScore
	params.EValue = *eValue
	params.Pivot = *pivot
	if *unitDist != 0 {
		params.UnitDist = *unitDist
	}
	params.IsPairwise = *isPairwise
	params.InSynteny = *inSynteny
	params.BuildMCL = *buildMCL
	if params.BuildMCL {
		params.IsPairwise = true
	}
	params.Derive()

	ctx := vcontext.Background()
	if err := run(ctx, prefix, &params); err != nil {
		log.Fatalf("%v", err)
	}
}

func run(ctx context.Context, prefix string, params *mcparams.Parameters) error {
	bedRows, err := ioformats.ReadBED(ctx, prefix+".bed")
	if err != nil {
		return err
	}
	// The mcl cluster file is mandatory unless IsPairwise (-a/-c) is set, in
	// which case a pairwise-only run may precede the external MCL clustering
	// pass that would produce it (spec §6, §12's BUILD_MCL supplement).
	var families [][]string
	families, err = ioformats.ReadMCL(ctx, prefix+".mcl")
	if err != nil {
		if params.IsPairwise {
			if e, ok := err.(*errors.Error); ok && e.Kind == errors.NotExist {
				log.Printf("no mcl file at %s.mcl, proceeding without family clusters (pairwise mode)", prefix)
				families = nil
			} else {
				return err
			}
		} else {
			return err
		}
	}
	idx := gene.NewIndex(bedRows, families, params.UseBP)
	log.Printf("%d genes loaded on %d chromosomes", idx.NumGenes(), len(idx.ChromLabels()))

	blastRows, err := ioformats.ReadBLAST(ctx, prefix+".blast")
	if err != nil {
		return err
	}
	loader := match.NewLoader(idx)
	loader.LoadAll(blastRows)

	chainer := synteny.NewChainer(params)
	store := synteny.NewStore()
	for _, cp := range loader.ChromPairs() {
		for _, seg := range chainer.Chain(cp) {
			store.Add(seg)
		}
	}
	log.Printf("%d alignments generated", store.Len())

	matches := loader.Matches()
	segments := store.All()
	alignsPath := prefix + ".aligns"
	if params.BuildMCL {
		alignsPath = prefix + ".aligns.mcl"
	}
	if err := writeAligns(ctx, alignsPath, segments, matches, params); err != nil {
		return err
	}
	if params.IsPairwise {
		return nil
	}

	weaver := pog.NewWeaver(idx, store, params)
	var views []*pog.View
	for _, chrom := range idx.ChromLabels() {
		if params.Pivot != "ALL" && !strings.Contains(chrom, params.Pivot) {
			continue
		}
		view, ok := weaver.Weave(chrom)
		if !ok {
			continue
		}
		views = append(views, view)
	}
	log.Printf("%d views generated", len(views))
	return writeBlocks(ctx, prefix+".blocks", views, params)
}

func writeAligns(ctx context.Context, path string, segments []*synteny.Segment, matches []*match.Match, params *mcparams.Parameters) error {
	out, err := file.Create(ctx, path)
	if err != nil {
		return err
	}
	defer out.Close(ctx) // nolint:errcheck

	w := out.Writer(ctx)
	if params.BuildMCL {
		return align.WriteAlignsMCL(w, segments, matches)
	}
	return align.WritePairwise(w, segments, matches, align.Banner(params))
}

func writeBlocks(ctx context.Context, path string, views []*pog.View, params *mcparams.Parameters) error {
	out, err := file.Create(ctx, path)
	if err != nil {
		return err
	}
	defer out.Close(ctx) // nolint:errcheck

	return align.WriteBlocks(out.Writer(ctx), views, align.Banner(params))
}
