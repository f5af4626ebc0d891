package commands

import (
	"github.com/spf13/cobra"

	"github.com/teranos/brickxml/am"
	"github.com/teranos/brickxml/display"
	"github.com/teranos/brickxml/errors"
	"github.com/teranos/brickxml/inventory"
	"github.com/teranos/brickxml/logger"
	"github.com/teranos/brickxml/report"
)

// newReporter returns JSON line events on stderr in --json mode, pterm
// prefixed lines otherwise
func newReporter(cmd *cobra.Command) report.Reporter {
	if display.ShouldOutputJSON(cmd) {
		return report.NewJSONReporterTo(cmd.ErrOrStderr(), logger.RunIDFromContext(cmd.Context()))
	}
	return report.NewCLIReporterTo(cmd.OutOrStdout(), cmd.ErrOrStderr())
}

// decodeOptions maps the inventory config section onto loader options.
// -vvv adds per-record decode logging.
func decodeOptions(cmd *cobra.Command, cfg *am.Config, rep report.Reporter) inventory.Options {
	return inventory.Options{
		Schema:   inventory.SchemaFromConfig(cfg.Inventory),
		Lenient:  cfg.Inventory.QuantityPolicy == am.QuantityLenient,
		Trace:    logger.ShouldLogTrace(verbosity(cmd)),
		Reporter: rep,
	}
}

// requireInput returns the --input value resolved against paths.input_dir
func requireInput(cmd *cobra.Command, cfg *am.Config) (string, error) {
	input, _ := cmd.Flags().GetString("input")
	if input == "" {
		return "", errors.WithHintf(
			errors.NewInvalidRequestError("--input is required"),
			"pass a manifest path, e.g. %s --input parts.xml", cmd.CommandPath())
	}
	return cfg.Paths.ResolveInput(input), nil
}

// emit writes v as JSON or YAML when requested and reports whether it did
func emit(cmd *cobra.Command, v interface{}) (bool, error) {
	switch {
	case display.ShouldOutputJSON(cmd):
		return true, display.OutputJSON(cmd.OutOrStdout(), v)
	case display.ShouldOutputYAML(cmd):
		return true, display.OutputYAML(cmd.OutOrStdout(), v)
	}
	return false, nil
}
