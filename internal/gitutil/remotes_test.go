package gitutil

import (
	"testing"

	"github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sevigo/reposcope/internal/repolocation"
)

func initRepoWithRemotes(t *testing.T, urls map[string]string) string {
	t.Helper()

	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	for name, url := range urls {
		_, err := repo.CreateRemote(&gitconfig.RemoteConfig{
			Name: name,
			URLs: []string{url},
		})
		require.NoError(t, err)
	}
	return dir
}

func TestRemoteLocations(t *testing.T) {
	dir := initRepoWithRemotes(t, map[string]string{
		"origin": "https://github.com/acme/widgets.git",
	})

	locations, err := RemoteLocations(dir, repolocation.NewRegistry())
	require.NoError(t, err)
	require.Len(t, locations, 1)

	assert.Equal(t, "widgets", locations[0].Name())
	assert.Equal(t, "acme", locations[0].Organization())
	assert.Equal(t, "https://github.com/acme/widgets.git", locations[0].String())
}

func TestRemoteLocations_SkipsUnresolvableRemotes(t *testing.T) {
	dir := initRepoWithRemotes(t, map[string]string{
		"origin": "git@github.com:acme/widgets.git",
		"mirror": "https://example.com/mirrors/widgets.git",
	})

	locations, err := RemoteLocations(dir, repolocation.NewRegistry())
	require.NoError(t, err)
	require.Len(t, locations, 1)
	assert.Equal(t, "widgets", locations[0].Name())
}

func TestRemoteLocations_NoUsableRemote(t *testing.T) {
	dir := initRepoWithRemotes(t, map[string]string{
		"origin": "git@github.com:acme/widgets.git",
	})

	_, err := RemoteLocations(dir, repolocation.NewRegistry())
	assert.ErrorIs(t, err, ErrNoRemoteLocation)
}

func TestRemoteLocations_NotARepository(t *testing.T) {
	_, err := RemoteLocations(t.TempDir(), repolocation.NewRegistry())
	assert.Error(t, err)
}
