package am

import (
	"os"
	"path/filepath"
	"time"
)

// MergedPrefix starts the default merge output file name
const MergedPrefix = "merged_"

// ResolveInput maps an --input value to a file path. An absolute path, or a
// relative one that exists from the working directory, is used as-is;
// anything else is taken relative to InputDir.
func (p PathsConfig) ResolveInput(input string) string {
	if filepath.IsAbs(input) {
		return input
	}
	if _, err := os.Stat(input); err == nil {
		return input
	}
	return filepath.Join(p.InputDir, input)
}

// Timestamp formats now with TimestampFormat
func (p PathsConfig) Timestamp(now time.Time) string {
	format := p.TimestampFormat
	if format == "" {
		format = DefaultTimestampFormat
	}
	return now.Format(format)
}

// RunDir returns the directory a split started at now writes into
func (p PathsConfig) RunDir(now time.Time) string {
	return filepath.Join(p.OutputDir, p.Timestamp(now))
}

// MergeOutput returns the default merge output path for a run started at now
func (p PathsConfig) MergeOutput(now time.Time, ext string) string {
	if ext == "" {
		ext = ".xml"
	}
	return filepath.Join(p.OutputDir, MergedPrefix+p.Timestamp(now)+ext)
}
