package commands

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/teranos/brickxml/am"
	"github.com/teranos/brickxml/display"
	"github.com/teranos/brickxml/errors"
)

// NewAmCmd builds the am (configuration) command
func NewAmCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "am",
		Short: "Manage brickxml configuration",
		Long: `am - Manage brickxml configuration ("I am")

Configuration sources (in order of precedence):
1. Command line flags
2. Environment variables (BRICKXML_* prefix, e.g. BRICKXML_SPLIT_MAX_UNIQUE)
3. --config file, or the nearest am.toml walking up from the working directory
4. User config (~/.brickxml/am.toml)
5. System config (/etc/brickxml/am.toml)
6. Default values

Examples:
  brickxml am show                 # Show current configuration
  brickxml am show --format json   # Show configuration in JSON format
  brickxml am validate             # Validate current configuration
  brickxml am init                 # Write defaults to ./am.toml`,
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  "Display the brickxml configuration resolved from all sources",
		Args:  cobra.NoArgs,
		RunE:  runAmShow,
	}
	show.Flags().String("format", "toml", "Output format: toml, json, yaml")

	validate := &cobra.Command{
		Use:   "validate",
		Short: "Validate current configuration",
		Args:  cobra.NoArgs,
		RunE:  runAmValidate,
	}

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration to a file",
		Long: `Write the built-in defaults as TOML, ready to edit.

The target is ./am.toml unless --user or --path is given. An existing file is
only replaced with --force, and is backed up to <file>.back1 first.`,
		Args: cobra.NoArgs,
		RunE: runAmInit,
	}
	initCmd.Flags().Bool("force", false, "Overwrite an existing file")
	initCmd.Flags().Bool("user", false, "Write ~/.brickxml/am.toml instead of ./am.toml")
	initCmd.Flags().String("path", "", "Write to this file")

	cmd.AddCommand(show, validate, initCmd)
	return cmd
}

func runAmShow(cmd *cobra.Command, args []string) error {
	cfg, err := am.Load()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}

	format, _ := cmd.Flags().GetString("format")
	if display.ShouldOutputJSON(cmd) {
		format = "json"
	}

	out := cmd.OutOrStdout()
	switch format {
	case "json":
		return display.OutputJSON(out, cfg)
	case "yaml":
		fmt.Fprintln(out, "# brickxml configuration")
		return display.OutputYAML(out, cfg)
	case "toml":
		data, err := cfg.Marshal()
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "# brickxml configuration\n%s", data)
		return nil
	default:
		return errors.WithHint(
			errors.NewInvalidRequestError("unsupported format: %s", format),
			"supported: toml, json, yaml")
	}
}

func runAmValidate(cmd *cobra.Command, args []string) error {
	cfg, err := am.Load()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}
	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "configuration validation failed")
	}

	newReporter(cmd).OK("Configuration is valid")
	return nil
}

func runAmInit(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("path")
	if user, _ := cmd.Flags().GetBool("user"); user && path == "" {
		path = am.UserConfigPath()
	}
	if path == "" {
		path = am.ProjectConfigName
	}
	force, _ := cmd.Flags().GetBool("force")

	if err := am.Save(path, am.Defaults(), force); err != nil {
		return err
	}

	rep := newReporter(cmd)
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	rep.OK("Wrote default configuration to %s", abs)
	return nil
}
