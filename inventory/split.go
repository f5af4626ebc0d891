package inventory

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/teranos/brickxml/am"
	"github.com/teranos/brickxml/errors"
	"github.com/teranos/brickxml/logger"
	"github.com/teranos/brickxml/report"
)

// SplitOptions configure Split
type SplitOptions struct {
	// MaxUnique bounds the number of records per output file
	MaxUnique int
	// OutputDir receives output_1.xml, output_2.xml, ...
	OutputDir string
	// Root names the container element of each output document
	Root    string
	DryRun  bool
	Verbose bool
	// Reporter defaults to report.Nop
	Reporter report.Reporter
}

// SplitResult describes what Split wrote, or would have written in dry-run
type SplitResult struct {
	OutputDir     string   `json:"output_dir"`
	Records       int      `json:"records"`
	UniqueRecords int      `json:"unique_records"`
	TotalQuantity int      `json:"total_quantity"`
	Files         []string `json:"files"`
	DryRun        bool     `json:"dry_run"`
}

// ChunkFileName returns the 1-based output file name for chunk i
func ChunkFileName(i int) string {
	return fmt.Sprintf("output_%d.xml", i)
}

// Split deduplicates m by Key and writes the unique records in chunks of at
// most opts.MaxUnique records, one document per chunk. A Key never spans two
// files. In dry-run nothing is created, not even the output directory.
func Split(ctx context.Context, m *Manifest, opts SplitOptions) (*SplitResult, error) {
	rep := opts.Reporter
	if rep == nil {
		rep = report.Nop{}
	}
	root := opts.Root
	if root == "" {
		root = DefaultSchema().RootTag
	}

	g := NewGrouper()
	g.AddAll(m)
	unique := g.Records()

	chunks, err := Partition(unique, opts.MaxUnique)
	if err != nil {
		return nil, err
	}

	if opts.Verbose {
		rep.Info("Total unique items: %d", len(unique))
		rep.Info("Will generate %d files.", len(chunks))
	}

	result := &SplitResult{
		OutputDir:     opts.OutputDir,
		Records:       g.Count(),
		UniqueRecords: len(unique),
		TotalQuantity: g.Total(),
		Files:         make([]string, 0, len(chunks)),
		DryRun:        opts.DryRun,
	}

	if !opts.DryRun {
		if err := os.MkdirAll(opts.OutputDir, am.DefaultDirPermissions); err != nil {
			return nil, errors.WrapWrite(err, opts.OutputDir)
		}
	}

	log := logger.LoggerFromContext(ctx).Named("inventory.split")
	for i, chunk := range chunks {
		if err := ctx.Err(); err != nil {
			return result, errors.Wrapf(err, "split interrupted after %d of %d files", i, len(chunks))
		}

		path := filepath.Join(opts.OutputDir, ChunkFileName(i+1))
		result.Files = append(result.Files, path)

		if opts.DryRun {
			if opts.Verbose {
				rep.Dry("Would write: %s", path)
			}
			continue
		}

		if err := WriteFile(path, NewManifest(root, chunk)); err != nil {
			return result, err
		}
		log.Debugw("Wrote chunk", logger.FieldFile, path, logger.FieldRecords, len(chunk))
		if opts.Verbose {
			rep.OK("Wrote %s", path)
		}
	}

	return result, nil
}
