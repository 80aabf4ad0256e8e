// Package gitutil reads metadata from local git repositories.
package gitutil

import (
	"errors"
	"fmt"

	"github.com/go-git/go-git/v5"

	"github.com/sevigo/reposcope/internal/repolocation"
)

var ErrNoRemoteLocation = errors.New("cannot resolve a location from repository remotes")

// RemoteLocations opens the repository at path and resolves the first
// URL of each remote into a Location. Remotes whose URL is not a valid
// location (SSH remotes, for example) are skipped; the error is raised
// only when no remote yields one. The repository is only read, never
// fetched from.
func RemoteLocations(path string, reg *repolocation.Registry) ([]repolocation.Location, error) {
	repo, err := git.PlainOpen(path)
	if err != nil {
		return nil, fmt.Errorf("open repository %s: %w", path, err)
	}

	remotes, err := repo.Remotes()
	if err != nil {
		return nil, fmt.Errorf("remotes: %w", err)
	}

	var locations []repolocation.Location
	for _, r := range remotes {
		urls := r.Config().URLs
		if len(urls) == 0 {
			continue
		}
		loc, err := repolocation.NewLocation(urls[0], reg)
		if err != nil {
			continue
		}
		locations = append(locations, loc)
	}
	if len(locations) == 0 {
		return nil, ErrNoRemoteLocation
	}
	return locations, nil
}
