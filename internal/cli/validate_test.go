package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const cleanCorpusJSON = `[
  {"id": "gt-100", "title": "Implement semantic identifiers", "issue_type": "epic"},
  {"id": "gt-101", "title": "Fix login redirect loop", "issue_type": "bug"},
  {"id": "gt-102", "title": "Port the analyzer pipeline", "issue_type": "task"},
  {"id": "gt-103", "title": "Add report rendering layer", "issue_type": "feature"}
]`

const collidingCorpusJSON = `[
  {"id": "gt-200", "title": "Fix login bug", "issue_type": "bug"},
  {"id": "gt-201", "title": "Fix login bug", "issue_type": "bug"}
]`

func writeCorpus(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "corpus.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestValidateCommand_CleanCorpusPasses(t *testing.T) {
	path := writeCorpus(t, cleanCorpusJSON)

	out, _, err := execute(t, "", "validate", path, "--seed", "42")
	require.NoError(t, err)

	assert.Contains(t, out, "# Semantic ID Validation Report")
	assert.Contains(t, out, "PROCEED WITH IMPLEMENTATION")
	assert.NotContains(t, out, "REVIEW NEEDED")
}

func TestValidateCommand_FailingCorpusExitsOne(t *testing.T) {
	path := writeCorpus(t, collidingCorpusJSON)

	out, _, err := execute(t, "", "validate", path, "--seed", "42")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))

	// Report is still rendered in full before the failure exit.
	assert.Contains(t, out, "# Semantic ID Validation Report")
	assert.Contains(t, out, "REVIEW NEEDED")
}

func TestValidateCommand_SeededRunsAreIdentical(t *testing.T) {
	path := writeCorpus(t, cleanCorpusJSON)

	first, _, err := execute(t, "", "validate", path, "--seed", "7")
	require.NoError(t, err)
	second, _, err := execute(t, "", "validate", path, "--seed", "7")
	require.NoError(t, err)

	// Generated-at timestamps differ across runs, so compare from the
	// first section onward.
	assert.Equal(t, reportBody(t, first), reportBody(t, second))
}

func reportBody(t *testing.T, report string) string {
	t.Helper()
	i := strings.Index(report, "## Summary Statistics")
	require.GreaterOrEqual(t, i, 0)
	return report[i:]
}

func TestValidateCommand_ReadsStdin(t *testing.T) {
	out, _, err := execute(t, cleanCorpusJSON, "validate", "-", "--seed", "42")
	require.NoError(t, err)
	assert.Contains(t, out, "PROCEED WITH IMPLEMENTATION")
}

func TestValidateCommand_MalformedCorpus(t *testing.T) {
	path := writeCorpus(t, `{"not": "an array"}`)

	out, _, err := execute(t, "", "validate", path)
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, out, "Error [E003]")
}

func TestValidateCommand_MissingFile(t *testing.T) {
	out, _, err := execute(t, "", "validate", filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, out, "Error [E002]")
}

func TestValidateCommand_DBConflictsWithFileArg(t *testing.T) {
	path := writeCorpus(t, cleanCorpusJSON)

	out, _, err := execute(t, "", "validate", path, "--db", "beads.db")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, out, "Error [E001]")
}

func TestValidateCommand_JSONFormat(t *testing.T) {
	path := writeCorpus(t, cleanCorpusJSON)

	out, _, err := execute(t, "", "--format", "json", "validate", path, "--seed", "42")
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.EqualValues(t, 4, data["total"])
}

func TestValidateCommand_ConfigOverridesThresholds(t *testing.T) {
	corpusPath := writeCorpus(t, cleanCorpusJSON)
	configPath := filepath.Join(t.TempDir(), "options.yaml")
	// Impossible length window forces a REVIEW NEEDED verdict.
	require.NoError(t, os.WriteFile(configPath, []byte("min_avg_slug_len: 90\nmax_avg_slug_len: 99\n"), 0o644))

	out, _, err := execute(t, "", "validate", corpusPath, "--config", configPath, "--seed", "42")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "REVIEW NEEDED")
}
