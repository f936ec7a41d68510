package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talentsift/resume-parser/internal/types"
)

func execute(t *testing.T, args ...string) error {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func TestNewRuntime_Defaults(t *testing.T) {
	rt, err := newRuntime("", "")

	require.NoError(t, err)
	assert.NotNil(t, rt.parser)
	assert.InDelta(t, 0.3, rt.cfg.Scoring.TFIDFWeight, 1e-9)
}

func TestNewRuntime_MissingConfigFile(t *testing.T) {
	_, err := newRuntime(filepath.Join(t.TempDir(), "absent.json"), "")
	assert.Error(t, err)
}

func TestNewRuntime_MissingTaxonomyFile(t *testing.T) {
	_, err := newRuntime("", filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

func TestNewRuntime_CustomTaxonomy(t *testing.T) {
	path := filepath.Join(t.TempDir(), "taxonomy.json")
	content := `{"categories": {"languages": ["Go", "Python"]}}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	rt, err := newRuntime("", path)

	require.NoError(t, err)
	assert.NotNil(t, rt.parser)
}

func TestParseCommand_RequiresFileArgument(t *testing.T) {
	assert.Error(t, execute(t, "parse"))
}

func TestParseCommand_MissingFile(t *testing.T) {
	err := execute(t, "parse", filepath.Join(t.TempDir(), "absent.txt"))
	assert.Error(t, err)
}

func TestMatchCommand_RequiresTwoArguments(t *testing.T) {
	assert.Error(t, execute(t, "match", "only-one.txt"))
}

func TestWriteJSON_RoundTrips(t *testing.T) {
	var buf bytes.Buffer
	in := types.MatchResult{OverallScore: 0.42, Recommendation: types.WeakMatch}

	require.NoError(t, writeJSON(&buf, in))

	var out types.MatchResult
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, in, out)
}

func TestReadTextFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.txt")
	require.NoError(t, os.WriteFile(path, []byte("Jane Smith"), 0o644))

	text, err := readTextFile(path)

	require.NoError(t, err)
	assert.Equal(t, "Jane Smith", text)
}
