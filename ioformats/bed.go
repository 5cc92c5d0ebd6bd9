// Package ioformats tokenizes the three flat input tables (spec §6:
// .bed/.mcl/.blast), the external collaborators spec.md §1 explicitly keeps
// outside the algorithmic core. It only reads; output files are created in
// cmd/mcscan.
package ioformats

import (
	"bufio"
	"context"
	"strconv"
	"strings"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/log"
	"github.com/tanghaibao/mcscan/gene"
)

// ReadBED reads a whitespace-separated chrom/start/end/name coordinate
// table (spec §6's .bed input, §4.1's source table). A row with too few
// fields or an unparsable coordinate is skipped with a progress line rather
// than aborting the file (spec §7's format-class handling).
func ReadBED(ctx context.Context, path string) ([]gene.Row, error) {
	in, err := file.Open(ctx, path)
	if err != nil {
		return nil, errors.E(err, "opening bed file", path)
	}
	defer in.Close(ctx) // nolint:errcheck

	var rows []gene.Row
	scanner := bufio.NewScanner(in.Reader(ctx))
	scanner.Buffer(make([]byte, 64<<10), 1<<20)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) < 4 {
			log.Error.Printf("%s:%d: malformed bed row, skipping", path, lineNo)
			continue
		}
		start, err := strconv.Atoi(fields[1])
		if err != nil {
			log.Error.Printf("%s:%d: bad start coordinate, skipping", path, lineNo)
			continue
		}
		end, err := strconv.Atoi(fields[2])
		if err != nil {
			log.Error.Printf("%s:%d: bad end coordinate, skipping", path, lineNo)
			continue
		}
		rows = append(rows, gene.Row{Chrom: fields[0], Start: start, End: end, Name: fields[3]})
	}
	if err := scanner.Err(); err != nil {
		return rows, errors.E(err, "reading bed file", path)
	}
	log.Printf("%d bed rows loaded from %s", len(rows), path)
	return rows, nil
}
