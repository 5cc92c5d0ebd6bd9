package ioformats

import (
	"bufio"
	"context"
	"strconv"
	"strings"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/log"
	"github.com/tanghaibao/mcscan/match"
)

// ReadBLAST reads whitespace-separated geneA/geneB/score triples (spec §6's
// .blast input). It only tokenizes; self-hits, unknown genes, and
// cross-family pairs are match.Loader's job (spec §4.2), not this reader's.
func ReadBLAST(ctx context.Context, path string) ([]match.Row, error) {
	in, err := file.Open(ctx, path)
	if err != nil {
		return nil, errors.E(err, "opening blast file", path)
	}
	defer in.Close(ctx) // nolint:errcheck

	var rows []match.Row
	scanner := bufio.NewScanner(in.Reader(ctx))
	scanner.Buffer(make([]byte, 64<<10), 1<<20)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) < 3 {
			log.Error.Printf("%s:%d: malformed blast row, skipping", path, lineNo)
			continue
		}
		score, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			log.Error.Printf("%s:%d: bad score, skipping", path, lineNo)
			continue
		}
		rows = append(rows, match.Row{Gene1: fields[0], Gene2: fields[1], Score: score})
	}
	if err := scanner.Err(); err != nil {
		return rows, errors.E(err, "reading blast file", path)
	}
	log.Printf("%d blast rows loaded from %s", len(rows), path)
	return rows, nil
}
