package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sevigo/reposcope/internal/repolocation"
)

func writeRepoList(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "reposcope.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoadRepoList(t *testing.T) {
	path := writeRepoList(t, `
repos:
  - https://github.com/acme/widgets.git
  - https://example.com/mirrors/widgets.git
`)

	locations, err := LoadRepoList(path, repolocation.NewRegistry())
	require.NoError(t, err)
	require.Len(t, locations, 2)

	assert.Equal(t, "widgets", locations[0].Name())
	assert.Equal(t, "acme", locations[0].Organization())
	assert.Equal(t, "widgets", locations[1].Name())
	assert.Empty(t, locations[1].Organization())
}

func TestLoadRepoList_MissingKeyVsEmptyList(t *testing.T) {
	reg := repolocation.NewRegistry()

	// No `repos` key at all: the option was not supplied.
	none, err := LoadRepoList(writeRepoList(t, "report: {}\n"), reg)
	require.NoError(t, err)
	assert.Nil(t, none)

	// An explicit empty list: zero repositories.
	empty, err := LoadRepoList(writeRepoList(t, "repos: []\n"), reg)
	require.NoError(t, err)
	require.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestLoadRepoList_InvalidEntryFailsWhole(t *testing.T) {
	path := writeRepoList(t, `
repos:
  - https://github.com/acme/widgets.git
  - ./no/such/path/here
`)

	locations, err := LoadRepoList(path, repolocation.NewRegistry())
	assert.ErrorIs(t, err, repolocation.ErrInvalidLocation)
	assert.Nil(t, locations)
}

func TestLoadRepoList_FileNotFound(t *testing.T) {
	_, err := LoadRepoList(filepath.Join(t.TempDir(), "absent.yml"), repolocation.NewRegistry())
	assert.ErrorIs(t, err, ErrRepoListNotFound)
}

func TestLoadRepoList_Unparseable(t *testing.T) {
	path := writeRepoList(t, "repos: [unclosed\n")

	_, err := LoadRepoList(path, repolocation.NewRegistry())
	assert.ErrorIs(t, err, ErrRepoListParsing)
}
