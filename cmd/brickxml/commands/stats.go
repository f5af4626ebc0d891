package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/teranos/brickxml/am"
	"github.com/teranos/brickxml/export"
	"github.com/teranos/brickxml/inventory"
	"github.com/teranos/brickxml/logger"
)

// NewStatsCmd builds the stats command
func NewStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show totals for a manifest",
		Long: `Show the total number of pieces, distinct part/color items and distinct colors
in a manifest.

A relative --input that does not exist from the working directory is looked up
under paths.input_dir.

Examples:
  brickxml stats --input parts.xml
  brickxml stats --input parts.xml --json
  brickxml stats --input parts.xml --export parts.xlsx`,
		Args: cobra.NoArgs,
		RunE: runStats,
	}

	cmd.Flags().StringP("input", "i", "", "Manifest to read")
	cmd.Flags().String("export", "", "Also write the per-item breakdown to a .csv or .xlsx file")
	cmd.Flags().Bool("yaml", false, "Output stats as YAML")
	return cmd
}

func runStats(cmd *cobra.Command, args []string) error {
	cfg, err := am.Load()
	if err != nil {
		return err
	}
	input, err := requireInput(cmd, cfg)
	if err != nil {
		return err
	}

	rep := newReporter(cmd)
	m, err := inventory.Load(input, decodeOptions(cmd, cfg, rep))
	if err != nil {
		return err
	}
	stats := inventory.Aggregate(m)

	logger.LoggerFromContext(cmd.Context()).Debugw("Computed stats",
		logger.FieldPath, input,
		logger.FieldRecords, stats.Records,
		logger.FieldUnique, stats.UniqueKeys)

	if path, _ := cmd.Flags().GetString("export"); path != "" {
		if err := export.WriteStats(path, stats); err != nil {
			return err
		}
		rep.OK("Exported %d items to %s", len(stats.Buckets), path)
	}

	if done, err := emit(cmd, stats); done || err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Total physical pieces: %d\n", stats.TotalQuantity)
	fmt.Fprintf(out, "Unique items: %d\n", stats.UniqueKeys)
	fmt.Fprintf(out, "Unique colors: %d\n", stats.UniqueColors)
	return nil
}
