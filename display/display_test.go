package display

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  string `json:"name" yaml:"name"`
	Count int    `json:"count" yaml:"count"`
}

func newCommands() (*cobra.Command, *cobra.Command) {
	root := &cobra.Command{Use: "brickxml"}
	root.PersistentFlags().Bool("json", false, "")
	child := &cobra.Command{Use: "stats", Run: func(*cobra.Command, []string) {}}
	child.Flags().Bool("yaml", false, "")
	root.AddCommand(child)
	return root, child
}

func TestShouldOutputJSON(t *testing.T) {
	assert.False(t, ShouldOutputJSON(nil))

	root, child := newCommands()
	assert.False(t, ShouldOutputJSON(child))

	require.NoError(t, root.PersistentFlags().Set("json", "true"))
	assert.True(t, ShouldOutputJSON(child))
}

func TestShouldOutputJSON_LocalFlagWins(t *testing.T) {
	root, child := newCommands()
	child.Flags().Bool("json", false, "")
	require.NoError(t, root.PersistentFlags().Set("json", "true"))
	require.NoError(t, child.Flags().Set("json", "false"))

	assert.False(t, ShouldOutputJSON(child))
}

func TestShouldOutputYAML(t *testing.T) {
	assert.False(t, ShouldOutputYAML(nil))
	assert.False(t, ShouldOutputYAML(&cobra.Command{Use: "bare"}))

	_, child := newCommands()
	assert.False(t, ShouldOutputYAML(child))
	require.NoError(t, child.Flags().Set("yaml", "true"))
	assert.True(t, ShouldOutputYAML(child))
}

func TestOutputJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, OutputJSON(&buf, sample{Name: "parts.xml", Count: 3}))
	assert.Equal(t, "{\n  \"name\": \"parts.xml\",\n  \"count\": 3\n}\n", buf.String())
}

func TestOutputYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, OutputYAML(&buf, sample{Name: "parts.xml", Count: 3}))
	assert.Equal(t, "name: parts.xml\ncount: 3\n", buf.String())
}
