package am

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveInput(t *testing.T) {
	cwd := t.TempDir()
	t.Chdir(cwd)
	require.NoError(t, os.WriteFile("local.xml", []byte("<INVENTORY/>"), 0644))

	p := PathsConfig{InputDir: "assets/input"}
	abs := filepath.Join(cwd, "elsewhere.xml")

	assert.Equal(t, abs, p.ResolveInput(abs), "absolute paths are kept even when missing")
	assert.Equal(t, "local.xml", p.ResolveInput("local.xml"))
	assert.Equal(t, filepath.Join("assets/input", "bricks.xml"), p.ResolveInput("bricks.xml"))
}

func TestRunDirAndMergeOutput(t *testing.T) {
	now := time.Date(2024, 3, 9, 14, 5, 7, 0, time.UTC)
	p := PathsConfig{OutputDir: "out", TimestampFormat: DefaultTimestampFormat}

	assert.Equal(t, filepath.Join("out", "2024-03-09_14-05-07"), p.RunDir(now))
	assert.Equal(t, filepath.Join("out", "merged_2024-03-09_14-05-07.xml"), p.MergeOutput(now, ""))
	assert.Equal(t, filepath.Join("out", "merged_2024-03-09_14-05-07.XML"), p.MergeOutput(now, ".XML"))
}

func TestTimestamp_DefaultsFormat(t *testing.T) {
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	assert.Equal(t, "2024-01-02_03-04-05", PathsConfig{}.Timestamp(now))
	assert.Equal(t, "20240102", PathsConfig{TimestampFormat: "20060102"}.Timestamp(now))
}
