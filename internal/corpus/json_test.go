package corpus

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadJSON(t *testing.T) {
	input := `[
		{"id": "gt-abc", "title": "Fix login", "issue_type": "bug"},
		{"id": "gt-def", "title": "Ship it", "type": "task"},
		{"title": "No id at all"}
	]`
	records, err := LoadJSON(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, "gt-abc", records[0].ID)
	assert.Equal(t, "Fix login", records[0].Title)
	assert.Equal(t, "bug", records[0].ResolvedType())

	assert.Equal(t, "task", records[1].ResolvedType(), "type is honored when issue_type is absent")

	assert.Empty(t, records[2].ID)
	assert.Equal(t, DefaultType, records[2].ResolvedType())
}

func TestLoadJSON_IssueTypePrecedence(t *testing.T) {
	input := `[{"id": "x", "title": "t", "issue_type": "epic", "type": "bug"}]`
	records, err := LoadJSON(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, "epic", records[0].ResolvedType())
}

func TestLoadJSON_EmptyBatch(t *testing.T) {
	records, err := LoadJSON(strings.NewReader(`[]`))
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestLoadJSON_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"not json", "definitely not json"},
		{"object not array", `{"id": "x"}`},
		{"truncated", `[{"id": "x"`},
		{"trailing garbage", `[] []`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadJSON(strings.NewReader(tt.input))
			require.Error(t, err)

			var loadErr *LoadError
			require.ErrorAs(t, err, &loadErr)
			assert.Equal(t, ErrCodeDecode, loadErr.Code)
		})
	}
}

func TestLoadJSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corpus.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"id":"gt-1","title":"A","issue_type":"epic"}]`), 0o644))

	records, err := LoadJSONFile(path)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "epic", records[0].ResolvedType())
}

func TestLoadJSONFile_NotFound(t *testing.T) {
	_, err := LoadJSONFile(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)

	var loadErr *LoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Equal(t, ErrCodeNotFound, loadErr.Code)
}
