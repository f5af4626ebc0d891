package commands

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/teranos/brickxml/am"
	"github.com/teranos/brickxml/errors"
	"github.com/teranos/brickxml/logger"
)

// now is the clock used for run directories and default merge outputs
var now = time.Now

// NewRootCmd builds the brickxml command tree
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "brickxml",
		Short: "brickxml - BrickLink inventory manifest tool",
		Long: `brickxml - Inspect, split and merge BrickLink inventory manifests (XML).

Records are grouped by part and color; quantities of duplicates are summed.

Available commands:
  stats    - Show totals for a manifest
  split    - Split a manifest into files of at most --max unique items
  merge    - Merge every manifest in a directory into one
  am       - Manage brickxml configuration ("I am")
  version  - Show version information

Examples:
  brickxml stats --input parts.xml
  brickxml split --input parts.xml --max 500 --dry-run -v
  brickxml merge --input-dir assets/output/2024-03-09_14-05-07`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setup,
	}

	root.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv, -vvv)")
	root.PersistentFlags().String("config", "", "Config file (default: am.toml cascade)")
	root.PersistentFlags().Bool("json", false, "Output results and messages as JSON")

	root.AddCommand(NewStatsCmd())
	root.AddCommand(NewSplitCmd())
	root.AddCommand(NewMergeCmd())
	root.AddCommand(NewAmCmd())
	root.AddCommand(NewVersionCmd())
	return root
}

// setup loads configuration, initializes logging and tags the command
// context with a fresh run ID before any command runs
func setup(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger.SetTheme(cfg.Log.Theme)
	if err := logger.Initialize(cfg.Log.JSON, verbosity(cmd)); err != nil {
		return errors.Wrap(err, "failed to initialize logger")
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	runID := logger.NewRunID()
	cmd.SetContext(logger.WithRunID(ctx, runID))

	logger.LoggerFromContext(cmd.Context()).Debugw("Starting command",
		logger.FieldCommand, cmd.CommandPath(),
		"verbosity", logger.LevelName(verbosity(cmd)))
	return nil
}

// loadConfig reads --config when given, otherwise the am.toml cascade
func loadConfig(cmd *cobra.Command) (*am.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		return am.Load()
	}
	cfg, err := am.LoadFromFile(path)
	if err != nil {
		return nil, errors.WithHint(err, "check the path passed to --config")
	}
	return cfg, nil
}

func verbosity(cmd *cobra.Command) int {
	v, _ := cmd.Flags().GetCount("verbose")
	return v
}
