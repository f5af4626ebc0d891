package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/teranos/brickxml/am"
	"github.com/teranos/brickxml/inventory"
	"github.com/teranos/brickxml/logger"
)

// NewMergeCmd builds the merge command
func NewMergeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "merge",
		Short: "Merge every manifest in a directory into one",
		Long: `Read every manifest in --input-dir (sorted by file name), group all records by
part and color across files, summing quantities, and write one manifest.

Defaults: --input-dir is paths.input_dir, --output is
<paths.output_dir>/merged_<timestamp>.xml. Parent directories are created.

Examples:
  brickxml merge
  brickxml merge --input-dir assets/output/2024-03-09_14-05-07 --output all.xml
  brickxml merge --dry-run -v`,
		Args: cobra.NoArgs,
		RunE: runMerge,
	}

	cmd.Flags().String("input-dir", "", "Directory of manifests to merge (default paths.input_dir)")
	cmd.Flags().StringP("output", "o", "", "Merged manifest path (default <paths.output_dir>/merged_<timestamp>.xml)")
	cmd.Flags().Bool("dry-run", false, "Report what would be written without touching the filesystem")
	return cmd
}

func runMerge(cmd *cobra.Command, args []string) error {
	cfg, err := am.Load()
	if err != nil {
		return err
	}

	inputDir, _ := cmd.Flags().GetString("input-dir")
	if inputDir == "" {
		inputDir = cfg.Paths.InputDir
	}
	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		output = cfg.Paths.MergeOutput(now(), cfg.Inventory.Extension)
	}
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	rep := newReporter(cmd)
	start := now()
	result, err := inventory.Merge(cmd.Context(), inventory.MergeOptions{
		InputDir:  inputDir,
		Output:    output,
		Extension: cfg.Inventory.Extension,
		DryRun:    dryRun,
		Verbose:   verbosity(cmd) > 0,
		Decode:    decodeOptions(cmd, cfg, rep),
	})
	if err != nil {
		return err
	}
	logger.LoggerFromContext(cmd.Context()).Infow("Merge complete",
		logger.FieldInputDir, inputDir,
		logger.FieldFile, output,
		logger.FieldRecords, result.Records,
		logger.FieldUnique, result.UniqueRecords,
		logger.FieldDurationMS, now().Sub(start).Milliseconds())

	if done, err := emit(cmd, result); done || err != nil {
		return err
	}
	if !dryRun {
		fmt.Fprintf(cmd.OutOrStdout(), "Merged %d files (%d unique items) into %s\n",
			len(result.Files), result.UniqueRecords, output)
	}
	return nil
}
