package report

import (
	"io"
	"os"

	"github.com/pterm/pterm"
)

// CLIReporter prints leveled messages to a terminal using pterm.
// INFO is blue, DRY yellow, OK green, ERROR red.
type CLIReporter struct {
	info  *pterm.PrefixPrinter
	dry   *pterm.PrefixPrinter
	ok    *pterm.PrefixPrinter
	warn  *pterm.PrefixPrinter
	error *pterm.PrefixPrinter
}

// NewCLIReporter creates a reporter writing to stdout (errors to stderr)
func NewCLIReporter() *CLIReporter {
	return NewCLIReporterTo(os.Stdout, os.Stderr)
}

// NewCLIReporterTo creates a reporter with explicit writers
func NewCLIReporterTo(out, errOut io.Writer) *CLIReporter {
	return &CLIReporter{
		info:  prefixed(LevelInfo, pterm.FgBlue, out),
		dry:   prefixed(LevelDry, pterm.FgYellow, out),
		ok:    prefixed(LevelOK, pterm.FgGreen, out),
		warn:  prefixed(LevelWarn, pterm.FgLightYellow, errOut),
		error: prefixed(LevelError, pterm.FgRed, errOut),
	}
}

func prefixed(level Level, color pterm.Color, w io.Writer) *pterm.PrefixPrinter {
	p := pterm.PrefixPrinter{
		Prefix: pterm.Prefix{
			Text:  string(level),
			Style: pterm.NewStyle(pterm.Bold, color),
		},
		MessageStyle: pterm.NewStyle(pterm.FgDefault),
	}
	return p.WithWriter(w)
}

func (r *CLIReporter) Info(format string, args ...interface{})  { r.info.Printfln(format, args...) }
func (r *CLIReporter) Dry(format string, args ...interface{})   { r.dry.Printfln(format, args...) }
func (r *CLIReporter) OK(format string, args ...interface{})    { r.ok.Printfln(format, args...) }
func (r *CLIReporter) Warn(format string, args ...interface{})  { r.warn.Printfln(format, args...) }
func (r *CLIReporter) Error(format string, args ...interface{}) { r.error.Printfln(format, args...) }
