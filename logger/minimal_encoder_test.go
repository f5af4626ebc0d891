package logger

import (
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// stripANSI removes ANSI color codes from a string for testing
func stripANSI(str string) string {
	ansiRegex := regexp.MustCompile(`\x1b\[[0-9;]*m`)
	return ansiRegex.ReplaceAllString(str, "")
}

func encode(t *testing.T, enc zapcore.Encoder, ent zapcore.Entry, fields ...zapcore.Field) string {
	t.Helper()
	buf, err := enc.EncodeEntry(ent, fields)
	if err != nil {
		t.Fatalf("EncodeEntry() error = %v", err)
	}
	defer buf.Free()
	return stripANSI(buf.String())
}

// The console encoder must never silently discard a field.
func TestMinimalEncoderNeverDiscardsFields(t *testing.T) {
	enc := newMinimalEncoder()
	ent := zapcore.Entry{
		Level:      zapcore.InfoLevel,
		Time:       time.Now(),
		LoggerName: "inventory.split",
		Message:    "Wrote chunk",
	}

	out := encode(t, enc, ent,
		zap.String("file", "output_1.xml"),
		zap.Int("records", 1000),
		zap.Bool("dry_run", false),
		zap.Float64("ratio", 0.5),
		zap.Strings("keys", []string{"3001", "3002"}),
		zap.String("field.with.dots", "ok"),
	)

	for _, want := range []string{
		"inventory.split",
		"Wrote chunk",
		"file=output_1.xml",
		"records=1000",
		"dry_run=false",
		"ratio=0.5",
		"keys=",
		"field.with.dots=ok",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in %q", want, out)
		}
	}
	if !strings.HasSuffix(out, "\n") {
		t.Error("entry should end with newline")
	}
}

func TestMinimalEncoderContextFields(t *testing.T) {
	enc := newMinimalEncoder()
	enc.AddString(FieldRunID, "abc")
	clone := enc.Clone()

	out := encode(t, clone, zapcore.Entry{Level: zapcore.InfoLevel, Time: time.Now(), Message: "hi"}, zap.Int("n", 1))
	if !strings.Contains(out, "run_id=abc") {
		t.Errorf("context field lost on Clone: %q", out)
	}
	if strings.Index(out, "run_id=abc") > strings.Index(out, "n=1") {
		t.Errorf("context fields should precede entry fields: %q", out)
	}
}

func TestMinimalEncoderLevels(t *testing.T) {
	enc := newMinimalEncoder()
	now := time.Now()

	info := encode(t, enc, zapcore.Entry{Level: zapcore.InfoLevel, Time: now, Message: "m"})
	if strings.Contains(info, "INFO") {
		t.Errorf("info level should not be printed: %q", info)
	}

	warn := encode(t, enc, zapcore.Entry{Level: zapcore.WarnLevel, Time: now, Message: "m"})
	if !strings.Contains(warn, "WARN") {
		t.Errorf("warn level missing: %q", warn)
	}

	errOut := encode(t, enc, zapcore.Entry{Level: zapcore.ErrorLevel, Time: now, Message: "m"},
		zap.Error(errors.New("disk full")))
	if !strings.Contains(errOut, "ERROR") || !strings.Contains(errOut, "error=disk full") {
		t.Errorf("error entry incomplete: %q", errOut)
	}
}

func TestSetTheme(t *testing.T) {
	t.Cleanup(func() { currentTheme = "everforest" })

	SetTheme("gruvbox")
	if currentTheme != "gruvbox" {
		t.Errorf("currentTheme = %q, want gruvbox", currentTheme)
	}
	SetTheme("solarized")
	if currentTheme != "gruvbox" {
		t.Errorf("unknown theme should be ignored, got %q", currentTheme)
	}
}
