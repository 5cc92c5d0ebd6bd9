package ioformats

import (
	"bufio"
	"context"
	"strings"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/log"
)

// ReadMCL reads a one-cluster-per-line family partition table (spec §6's
// .mcl input): whitespace-separated gene names, with the zero-based line
// index the family id every gene on that line shares (spec §4.1). A blank
// line still consumes a family id, matching the original's line-number
// indexing exactly.
func ReadMCL(ctx context.Context, path string) ([][]string, error) {
	in, err := file.Open(ctx, path)
	if err != nil {
		return nil, errors.E(err, "opening mcl file", path)
	}
	defer in.Close(ctx) // nolint:errcheck

	var families [][]string
	scanner := bufio.NewScanner(in.Reader(ctx))
	scanner.Buffer(make([]byte, 64<<10), 1<<20)
	for scanner.Scan() {
		families = append(families, strings.Fields(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return families, errors.E(err, "reading mcl file", path)
	}
	log.Printf("%d family clusters loaded from %s", len(families), path)
	return families, nil
}
