package inventory

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/brickxml/errors"
	bxtest "github.com/teranos/brickxml/internal/testing"
	"github.com/teranos/brickxml/report"
)

func TestMerge_FoldsAcrossFiles(t *testing.T) {
	in := t.TempDir()
	bxtest.WriteManifest(t, in, "a.xml", bxtest.Items("A", "red", "5"))
	bxtest.WriteManifest(t, in, "b.xml", bxtest.Items("A", "red", "5", "C", "green", "1"))
	out := filepath.Join(t.TempDir(), "merged.xml")

	res, err := Merge(context.Background(), MergeOptions{InputDir: in, Output: out})
	require.NoError(t, err)

	assert.Len(t, res.Files, 2)
	assert.Equal(t, 3, res.Records)
	assert.Equal(t, 2, res.UniqueRecords)
	assert.Equal(t, 11, res.TotalQuantity)

	merged, err := Load(out, DefaultOptions())
	require.NoError(t, err)
	require.Len(t, merged.Records, 2)
	assert.Equal(t, Key{"A", "red"}, merged.Records[0].Key)
	assert.Equal(t, 10, merged.Records[0].Quantity)
	assert.Equal(t, Key{"C", "green"}, merged.Records[1].Key)
	assert.Equal(t, 1, merged.Records[1].Quantity)
}

func TestMerge_FileOrderIsByName(t *testing.T) {
	in := t.TempDir()
	bxtest.WriteManifest(t, in, "b.xml", bxtest.Items("B", "blue", "1"))
	bxtest.WriteManifest(t, in, "a.xml", bxtest.Items("A", "red", "1"))
	out := filepath.Join(t.TempDir(), "merged.xml")

	res, err := Merge(context.Background(), MergeOptions{InputDir: in, Output: out})
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(in, "a.xml"), filepath.Join(in, "b.xml")}, res.Files)

	merged, err := Load(out, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, "A", merged.Records[0].Key.PartID)
	assert.Equal(t, "B", merged.Records[1].Key.PartID)
}

func TestMerge_SplitOutputRoundTrip(t *testing.T) {
	m := mustDecode(t, bxtest.Items(
		"A", "red", "5",
		"B", "blue", "2",
		"A", "red", "3",
		"C", "green", "1",
		"B", "white", "4",
	))
	chunkDir := filepath.Join(t.TempDir(), "run")
	_, err := Split(context.Background(), m, SplitOptions{MaxUnique: 2, OutputDir: chunkDir})
	require.NoError(t, err)

	out := filepath.Join(t.TempDir(), "merged.xml")
	_, err = Merge(context.Background(), MergeOptions{InputDir: chunkDir, Output: out})
	require.NoError(t, err)

	merged, err := Load(out, DefaultOptions())
	require.NoError(t, err)

	want := Deduplicate(m.Records)
	require.Len(t, merged.Records, len(want))
	for i := range want {
		assert.Equal(t, want[i].Key, merged.Records[i].Key)
		assert.Equal(t, want[i].Quantity, merged.Records[i].Quantity)
	}
}

func TestMerge_ExtensionFilter(t *testing.T) {
	in := t.TempDir()
	bxtest.WriteManifest(t, in, "a.xml", bxtest.Items("A", "red", "1"))
	bxtest.WriteManifest(t, in, "b.XML", bxtest.Items("B", "red", "1"))
	bxtest.WriteFile(t, in, "notes.txt", "not xml")
	require.NoError(t, os.Mkdir(filepath.Join(in, "dir.xml"), 0755))

	files, err := ListManifests(in, ".xml", "")
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(in, "a.xml"), filepath.Join(in, "b.XML")}, files)
}

func TestMerge_SkipsOwnOutput(t *testing.T) {
	in := t.TempDir()
	bxtest.WriteManifest(t, in, "a.xml", bxtest.Items("A", "red", "2"))
	out := filepath.Join(in, "merged.xml")

	for i := 0; i < 2; i++ {
		res, err := Merge(context.Background(), MergeOptions{InputDir: in, Output: out})
		require.NoError(t, err)
		assert.Len(t, res.Files, 1)
	}

	merged, err := Load(out, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 2, merged.TotalQuantity())
}

func TestMerge_NoFiles(t *testing.T) {
	in := t.TempDir()
	out := filepath.Join(t.TempDir(), "merged.xml")
	rec := report.NewRecorder()

	res, err := Merge(context.Background(), MergeOptions{
		InputDir: in,
		Output:   out,
		Decode:   Options{Reporter: rec},
	})
	require.NoError(t, err)
	assert.Empty(t, res.Files)
	assert.True(t, rec.Contains(report.LevelWarn, "No .xml files"))

	merged, err := Load(out, DefaultOptions())
	require.NoError(t, err)
	assert.Empty(t, merged.Records)
	assert.Equal(t, "INVENTORY", merged.Root)
}

func TestMerge_DryRun(t *testing.T) {
	in := t.TempDir()
	bxtest.WriteManifest(t, in, "a.xml", bxtest.Items("A", "red", "2"))
	out := filepath.Join(t.TempDir(), "nested", "merged.xml")
	rec := report.NewRecorder()

	res, err := Merge(context.Background(), MergeOptions{
		InputDir: in,
		Output:   out,
		DryRun:   true,
		Verbose:  true,
		Decode:   Options{Reporter: rec},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, res.TotalQuantity)

	_, statErr := os.Stat(filepath.Dir(out))
	assert.True(t, os.IsNotExist(statErr))
	assert.True(t, rec.Contains(report.LevelDry, out))
	assert.True(t, rec.Contains(report.LevelInfo, "Found 1 files to merge."))
	assert.True(t, rec.Contains(report.LevelInfo, "Total unique items: 1"))
}

func TestMerge_BadInputFails(t *testing.T) {
	in := t.TempDir()
	bxtest.WriteManifest(t, in, "a.xml", bxtest.Items("A", "red", "2"))
	bxtest.WriteFile(t, in, "b.xml", "<INVENTORY><ITEM>")
	out := filepath.Join(t.TempDir(), "merged.xml")

	_, err := Merge(context.Background(), MergeOptions{InputDir: in, Output: out})
	require.Error(t, err)
	assert.True(t, errors.IsLoadError(err))
	assert.Contains(t, err.Error(), "b.xml")

	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr), "nothing written on failure")
}

func TestMerge_MissingInputDir(t *testing.T) {
	_, err := Merge(context.Background(), MergeOptions{
		InputDir: filepath.Join(t.TempDir(), "missing"),
		Output:   filepath.Join(t.TempDir(), "merged.xml"),
	})
	require.Error(t, err)
	assert.True(t, errors.IsLoadError(err))
}
