package display

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// ShouldOutputJSON determines if a command should output JSON based on its
// own --json flag, falling back to the root persistent --json flag
func ShouldOutputJSON(cmd *cobra.Command) bool {
	if cmd == nil {
		return false
	}

	// Check if --json flag was explicitly set
	if cmd.Flags().Changed("json") {
		jsonFlag, _ := cmd.Flags().GetBool("json")
		return jsonFlag
	}

	// Check global --json flag
	globalFlag, _ := cmd.Root().PersistentFlags().GetBool("json")
	return globalFlag
}

// ShouldOutputYAML reports whether the command's --yaml flag is set
func ShouldOutputYAML(cmd *cobra.Command) bool {
	if cmd == nil || cmd.Flags().Lookup("yaml") == nil {
		return false
	}
	yamlFlag, _ := cmd.Flags().GetBool("yaml")
	return yamlFlag
}

// OutputJSON marshals v with MarshalJSON and prints it to w
func OutputJSON(w io.Writer, v interface{}) error {
	data, err := MarshalJSON(v)
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// OutputYAML marshals v with MarshalYAML and prints it to w
func OutputYAML(w io.Writer, v interface{}) error {
	data, err := MarshalYAML(v)
	if err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}
	_, err = w.Write(data)
	return err
}
