package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sevigo/reposcope/internal/repolocation"
)

var (
	ErrRepoListNotFound = errors.New("repo list file not found")
	ErrRepoListParsing  = errors.New("repo list parsing failed")
)

type repoListFile struct {
	Repos []string `yaml:"repos"`
}

// LoadRepoList reads the YAML repo list at path and converts its
// entries into Locations through reg. A file without a `repos` key
// yields a nil slice ("option not supplied"), while an explicit
// `repos: []` yields an empty one; callers can tell the two apart.
func LoadRepoList(path string, reg *repolocation.Registry) ([]repolocation.Location, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrRepoListNotFound, path)
		}
		return nil, fmt.Errorf("failed to read repo list %s: %w", path, err)
	}

	var file repoListFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRepoListParsing, err)
	}

	return repolocation.ConvertLocations(file.Repos, reg)
}
