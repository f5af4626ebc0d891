package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/teranos/brickxml/am"
	"github.com/teranos/brickxml/errors"
	"github.com/teranos/brickxml/inventory"
	"github.com/teranos/brickxml/logger"
)

// NewSplitCmd builds the split command
func NewSplitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "split",
		Short: "Split a manifest into files of at most --max unique items",
		Long: `Group a manifest by part and color, summing quantities, then write the unique
items in chunks of at most --max records to output_1.xml, output_2.xml, ...

Files go to a fresh timestamped directory under paths.output_dir unless
--output-dir is given. A part/color item is never split across two files.

Examples:
  brickxml split --input parts.xml
  brickxml split --input parts.xml --max 250 --dry-run -v`,
		Args: cobra.NoArgs,
		RunE: runSplit,
	}

	cmd.Flags().StringP("input", "i", "", "Manifest to split")
	cmd.Flags().IntP("max", "m", 0, "Maximum unique items per output file (default split.max_unique)")
	cmd.Flags().Bool("dry-run", false, "Report what would be written without touching the filesystem")
	cmd.Flags().String("output-dir", "", "Write into this directory instead of a timestamped one")
	return cmd
}

func runSplit(cmd *cobra.Command, args []string) error {
	cfg, err := am.Load()
	if err != nil {
		return err
	}
	input, err := requireInput(cmd, cfg)
	if err != nil {
		return err
	}

	maxUnique := cfg.Split.MaxUnique
	if cmd.Flags().Changed("max") {
		maxUnique, _ = cmd.Flags().GetInt("max")
	}
	if maxUnique < 1 {
		return errors.WithHint(
			errors.NewInvalidRequestError("--max must be at least 1, got %d", maxUnique),
			"pass --max 1 or greater")
	}

	outDir, _ := cmd.Flags().GetString("output-dir")
	if outDir == "" {
		outDir = cfg.Paths.RunDir(now())
	}
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	rep := newReporter(cmd)
	m, err := inventory.Load(input, decodeOptions(cmd, cfg, rep))
	if err != nil {
		return err
	}

	log := logger.LoggerFromContext(cmd.Context())
	start := now()
	result, err := inventory.Split(cmd.Context(), m, inventory.SplitOptions{
		MaxUnique: maxUnique,
		OutputDir: outDir,
		Root:      cfg.Inventory.RootTag,
		DryRun:    dryRun,
		Verbose:   verbosity(cmd) > 0,
		Reporter:  rep,
	})
	if err != nil {
		return err
	}
	log.Infow("Split complete",
		logger.FieldPath, input,
		logger.FieldOutputDir, outDir,
		logger.FieldUnique, result.UniqueRecords,
		logger.FieldChunks, len(result.Files),
		logger.FieldMax, maxUnique,
		logger.FieldDurationMS, now().Sub(start).Milliseconds())

	if done, err := emit(cmd, result); done || err != nil {
		return err
	}
	if !dryRun {
		fmt.Fprintf(cmd.OutOrStdout(), "Generated %d files in %s\n", len(result.Files), outDir)
	}
	return nil
}
