package inventory

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/teranos/brickxml/am"
	"github.com/teranos/brickxml/errors"
	"github.com/teranos/brickxml/logger"
)

// MergeOptions configure Merge
type MergeOptions struct {
	InputDir string
	// Output is the merged document path
	Output string
	// Extension selects manifest files, compared case-insensitively (default ".xml")
	Extension string
	DryRun    bool
	Verbose   bool
	// Decode controls how each input is loaded; its Schema.RootTag names the output container
	Decode Options
}

// MergeResult describes the merged output
type MergeResult struct {
	InputDir      string   `json:"input_dir"`
	Output        string   `json:"output"`
	Files         []string `json:"files"`
	Records       int      `json:"records"`
	UniqueRecords int      `json:"unique_records"`
	TotalQuantity int      `json:"total_quantity"`
	DryRun        bool     `json:"dry_run"`
}

// ListManifests returns the regular files in dir whose extension matches ext
// case-insensitively, sorted by file name. exclude (if non-empty) is skipped.
func ListManifests(dir, ext, exclude string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.WrapLoad(err, dir)
	}

	var excludeAbs string
	if exclude != "" {
		excludeAbs, _ = filepath.Abs(exclude)
	}

	var names []string
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		if !strings.EqualFold(filepath.Ext(e.Name()), ext) {
			continue
		}
		names = append(names, e.Name())
	}
	slices.Sort(names)

	paths := make([]string, 0, len(names))
	for _, name := range names {
		path := filepath.Join(dir, name)
		if excludeAbs != "" {
			if abs, err := filepath.Abs(path); err == nil && abs == excludeAbs {
				continue
			}
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// Merge loads every manifest in opts.InputDir in file name order and folds
// all records into one document: a Key already seen in an earlier file
// absorbs the quantity of later records. The output file itself is never
// read as an input.
func Merge(ctx context.Context, opts MergeOptions) (*MergeResult, error) {
	rep := opts.Decode.reporter()
	ext := opts.Extension
	if ext == "" {
		ext = ".xml"
	}
	schema := opts.Decode.Schema
	if schema == (Schema{}) {
		schema = DefaultSchema()
		opts.Decode.Schema = schema
	}

	files, err := ListManifests(opts.InputDir, ext, opts.Output)
	if err != nil {
		return nil, err
	}

	result := &MergeResult{
		InputDir: opts.InputDir,
		Output:   opts.Output,
		Files:    files,
		DryRun:   opts.DryRun,
	}

	if len(files) == 0 {
		rep.Warn("No %s files found in %s", ext, opts.InputDir)
	} else if opts.Verbose {
		rep.Info("Found %d files to merge.", len(files))
	}

	log := logger.LoggerFromContext(ctx).Named("inventory.merge")
	g := NewGrouper()
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return nil, errors.Wrap(err, "merge interrupted")
		}
		m, err := Load(path, opts.Decode)
		if err != nil {
			return nil, err
		}
		g.AddAll(m)
		log.Debugw("Loaded manifest", logger.FieldPath, path, logger.FieldRecords, len(m.Records))
		if opts.Verbose {
			rep.Info("Loaded %s (%d records)", path, len(m.Records))
		}
	}

	unique := g.Records()
	result.Records = g.Count()
	result.UniqueRecords = len(unique)
	result.TotalQuantity = g.Total()

	if opts.Verbose {
		rep.Info("Total unique items: %d", len(unique))
	}

	if opts.DryRun {
		if opts.Verbose {
			rep.Dry("Would write: %s", opts.Output)
		}
		return result, nil
	}

	if err := os.MkdirAll(filepath.Dir(opts.Output), am.DefaultDirPermissions); err != nil {
		return nil, errors.WrapWrite(err, filepath.Dir(opts.Output))
	}
	if err := WriteFile(opts.Output, NewManifest(schema.RootTag, unique)); err != nil {
		return nil, err
	}
	if opts.Verbose {
		rep.OK("Wrote %s", opts.Output)
	}
	return result, nil
}
