package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/teranos/brickxml/display"
	"github.com/teranos/brickxml/errors"
	"github.com/teranos/brickxml/logger"
	"github.com/teranos/brickxml/report"
)

// ReportError writes a failed command's error and hints to its stderr:
// a single ERROR event in --json mode, a prefixed line plus hint lines otherwise.
func ReportError(cmd *cobra.Command, err error) {
	if err == nil {
		return
	}
	if cmd == nil {
		cmd = NewRootCmd()
	}

	if display.ShouldOutputJSON(cmd) {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		report.NewJSONReporterTo(cmd.ErrOrStderr(), logger.RunIDFromContext(ctx)).Fail(err)
		return
	}

	report.NewCLIReporterTo(cmd.OutOrStdout(), cmd.ErrOrStderr()).Error("%v", err)
	for _, hint := range errors.GetAllHints(err) {
		fmt.Fprintf(cmd.ErrOrStderr(), "  hint: %s\n", hint)
	}
}
