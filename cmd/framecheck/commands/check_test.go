package commands

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dwikygilang/framecheck/internal/render"
	"github.com/dwikygilang/framecheck/pkg/sequence"
)

func writeFrames(t *testing.T, names ...string) string {
	t.Helper()

	dir := t.TempDir()
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("frame"), 0o600))
	}

	return dir
}

func decodeEntries(t *testing.T, raw []byte) []render.Entry {
	t.Helper()

	var entries []render.Entry

	require.NoError(t, json.Unmarshal(raw, &entries))

	return entries
}

func TestCheckCommand_ReportsMissingFrames(t *testing.T) {
	t.Parallel()

	dir := writeFrames(t, "shot_0001.png", "shot_0002.png", "shot_0004.png")

	command := newCheckCommandWithDeps(analyzeFolder)

	var out bytes.Buffer
	command.SetOut(&out)
	command.SetErr(io.Discard)
	command.SetArgs([]string{dir, "--format", "json"})

	err := command.Execute()
	require.NoError(t, err)

	entries := decodeEntries(t, out.Bytes())
	require.Len(t, entries, 1)
	assert.Equal(t, dir, entries[0].Folder)
	assert.Equal(t, "shot_", entries[0].Report.Pattern.Prefix)
	assert.Equal(t, []int{3}, entries[0].Report.Missing)
	assert.Equal(t, 3, entries[0].Report.FoundCount)
	assert.Equal(t, 4, entries[0].Report.ExpectedCount)
}

func TestCheckCommand_PreservesArgumentOrder(t *testing.T) {
	t.Parallel()

	fake := func(_ string, _ sequence.Options) (sequence.Report, error) {
		return sequence.Analyze(nil, sequence.Options{}), nil
	}

	command := newCheckCommandWithDeps(fake)

	var out bytes.Buffer
	command.SetOut(&out)
	command.SetErr(io.Discard)
	command.SetArgs([]string{"charlie", "alpha", "bravo", "--format", "json"})

	err := command.Execute()
	require.NoError(t, err)

	entries := decodeEntries(t, out.Bytes())
	require.Len(t, entries, 3)
	assert.Equal(t, "charlie", entries[0].Folder)
	assert.Equal(t, "alpha", entries[1].Folder)
	assert.Equal(t, "bravo", entries[2].Folder)
}

func TestCheckCommand_NoFolders(t *testing.T) {
	t.Parallel()

	command := newCheckCommandWithDeps(analyzeFolder)
	command.SetOut(io.Discard)
	command.SetErr(io.Discard)
	command.SetArgs([]string{})

	err := command.Execute()
	require.ErrorIs(t, err, ErrNoFolders)
}

func TestCheckCommand_FolderErrorFailsBatch(t *testing.T) {
	t.Parallel()

	errOffline := errors.New("device offline")

	fake := func(folder string, _ sequence.Options) (sequence.Report, error) {
		if strings.HasSuffix(folder, "bad") {
			return sequence.Report{}, errOffline
		}

		return sequence.Analyze(nil, sequence.Options{}), nil
	}

	command := newCheckCommandWithDeps(fake)
	command.SetOut(io.Discard)
	command.SetErr(io.Discard)
	command.SetArgs([]string{"good", "bad"})

	err := command.Execute()
	require.ErrorIs(t, err, errOffline)
}

func TestCheckCommand_MissingFolder(t *testing.T) {
	t.Parallel()

	command := newCheckCommandWithDeps(analyzeFolder)
	command.SetOut(io.Discard)
	command.SetErr(io.Discard)
	command.SetArgs([]string{filepath.Join(t.TempDir(), "does-not-exist")})

	err := command.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "listing folder")
}

func TestCheckCommand_UnknownFormat(t *testing.T) {
	t.Parallel()

	dir := writeFrames(t, "shot_0001.png")

	command := newCheckCommandWithDeps(analyzeFolder)
	command.SetOut(io.Discard)
	command.SetErr(io.Discard)
	command.SetArgs([]string{dir, "--format", "html"})

	err := command.Execute()
	require.ErrorIs(t, err, render.ErrUnknownFormat)
}

func TestCheckCommand_ForwardsAnalysisOptions(t *testing.T) {
	t.Parallel()

	var seenOpts sequence.Options

	fake := func(_ string, opts sequence.Options) (sequence.Report, error) {
		seenOpts = opts

		return sequence.Analyze(nil, sequence.Options{}), nil
	}

	command := newCheckCommandWithDeps(fake)
	command.SetOut(io.Discard)
	command.SetErr(io.Discard)
	command.SetArgs([]string{"shots", "--formats", "exr,png", "--auto-detect=false", "--format", "json"})

	err := command.Execute()
	require.NoError(t, err)
	assert.Equal(t, []string{"exr", "png"}, seenOpts.Formats)
	assert.True(t, seenOpts.DisableDetection)
}

func TestCheckCommand_FormatsFilter(t *testing.T) {
	t.Parallel()

	dir := writeFrames(t, "shot_0001.exr", "shot_0002.exr", "shot_0004.png", "notes.txt")

	command := newCheckCommandWithDeps(analyzeFolder)

	var out bytes.Buffer
	command.SetOut(&out)
	command.SetErr(io.Discard)
	command.SetArgs([]string{dir, "--formats", "exr", "--format", "json"})

	err := command.Execute()
	require.NoError(t, err)

	entries := decodeEntries(t, out.Bytes())
	require.Len(t, entries, 1)
	assert.Equal(t, 2, entries[0].Report.FoundCount)
	assert.Empty(t, entries[0].Report.Missing)
}

func TestCheckCommand_AutoDetectDisabled(t *testing.T) {
	t.Parallel()

	dir := writeFrames(t, "a_1.png", "b_2.png", "c_4.png")

	command := newCheckCommandWithDeps(analyzeFolder)

	var out bytes.Buffer
	command.SetOut(&out)
	command.SetErr(io.Discard)
	command.SetArgs([]string{dir, "--auto-detect=false", "--format", "json"})

	err := command.Execute()
	require.NoError(t, err)

	entries := decodeEntries(t, out.Bytes())
	require.Len(t, entries, 1)
	assert.Empty(t, entries[0].Report.Pattern.Prefix)
	assert.Equal(t, []int{3}, entries[0].Report.Missing)
	assert.Equal(t, 3, entries[0].Report.FoundCount)
}

func TestCheckCommand_ProgressOutput_DefaultEnabled(t *testing.T) {
	t.Parallel()

	dir := writeFrames(t, "shot_0001.png")

	command := newCheckCommandWithDeps(analyzeFolder)

	var errOut bytes.Buffer
	command.SetOut(io.Discard)
	command.SetErr(&errOut)
	command.SetArgs([]string{dir, "--format", "json"})

	err := command.Execute()
	require.NoError(t, err)
	require.Contains(t, errOut.String(), "progress: checking 1 folder(s)")
	require.Contains(t, errOut.String(), "progress: check completed")
}

func TestCheckCommand_ProgressOutput_Quiet(t *testing.T) {
	t.Parallel()

	dir := writeFrames(t, "shot_0001.png")

	command := newCheckCommandWithDeps(analyzeFolder)
	command.PersistentFlags().BoolP("quiet", "q", false, "suppress progress output")

	var errOut bytes.Buffer
	command.SetOut(io.Discard)
	command.SetErr(&errOut)
	command.SetArgs([]string{dir, "--format", "json", "-q"})

	err := command.Execute()
	require.NoError(t, err)
	require.Empty(t, errOut.String())
}

func TestCheckCommand_ConfigFileProvidesDefaults(t *testing.T) {
	t.Parallel()

	dir := writeFrames(t, "shot_0001.png", "shot_0003.png")

	cfgPath := filepath.Join(t.TempDir(), "framecheck.yaml")
	cfgBody := fmt.Sprintf("folders:\n  - %q\noutput:\n  format: json\n", dir)
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfgBody), 0o600))

	command := newCheckCommandWithDeps(analyzeFolder)
	command.PersistentFlags().String("config", "", "path to config file")

	var out bytes.Buffer
	command.SetOut(&out)
	command.SetErr(io.Discard)
	command.SetArgs([]string{"--config", cfgPath})

	err := command.Execute()
	require.NoError(t, err)

	entries := decodeEntries(t, out.Bytes())
	require.Len(t, entries, 1)
	assert.Equal(t, dir, entries[0].Folder)
	assert.Equal(t, []int{2}, entries[0].Report.Missing)
}

func TestCheckCommand_FlagOverridesConfig(t *testing.T) {
	t.Parallel()

	dir := writeFrames(t, "shot_0001.png")

	cfgPath := filepath.Join(t.TempDir(), "framecheck.yaml")
	cfgBody := fmt.Sprintf("folders:\n  - %q\noutput:\n  format: yaml\n", dir)
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfgBody), 0o600))

	command := newCheckCommandWithDeps(analyzeFolder)
	command.PersistentFlags().String("config", "", "path to config file")

	var out bytes.Buffer
	command.SetOut(&out)
	command.SetErr(io.Discard)
	command.SetArgs([]string{"--config", cfgPath, "--format", "json"})

	err := command.Execute()
	require.NoError(t, err)

	entries := decodeEntries(t, out.Bytes())
	require.Len(t, entries, 1)
	assert.Equal(t, 1, entries[0].Report.FoundCount)
}

func TestCheckCommand_ArgumentsReplaceConfiguredFolders(t *testing.T) {
	t.Parallel()

	configured := writeFrames(t, "plate_0001.exr")
	requested := writeFrames(t, "shot_0001.png", "shot_0002.png")

	cfgPath := filepath.Join(t.TempDir(), "framecheck.yaml")
	cfgBody := fmt.Sprintf("folders:\n  - %q\noutput:\n  format: json\n", configured)
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfgBody), 0o600))

	command := newCheckCommandWithDeps(analyzeFolder)
	command.PersistentFlags().String("config", "", "path to config file")

	var out bytes.Buffer
	command.SetOut(&out)
	command.SetErr(io.Discard)
	command.SetArgs([]string{"--config", cfgPath, requested})

	err := command.Execute()
	require.NoError(t, err)

	entries := decodeEntries(t, out.Bytes())
	require.Len(t, entries, 1)
	assert.Equal(t, requested, entries[0].Folder)
}
