// Package repolocation resolves raw repository location strings (local
// paths or hosted git URLs) into named, run-unique Location records.
package repolocation

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

const gitSuffix = ".git"

// Matches hosted GitHub clone URLs of the form
// .../github.com/{org}/{repo}.git, anchored over the whole string.
var hostedPattern = regexp.MustCompile(`^.*github\.com/(?P<org>.+?)/(?P<name>.+?)\.git$`)

// Location is the immutable record for one raw repository location.
// Its identity is the raw string alone: two Locations built from the
// same input are equal even when their resolved names differ because
// the registry was in a different state at construction time.
type Location struct {
	raw          string
	name         string
	organization string
}

// NewLocation validates raw and resolves its display name and, when
// the hosted pattern matches, its organization. Fallback names go
// through reg for deduplication; hosted-pattern names do not, so the
// same registry must be shared across the whole run.
func NewLocation(raw string, reg *Registry) (Location, error) {
	if err := validate(raw); err != nil {
		return Location{}, err
	}

	loc := Location{raw: raw}
	if m := hostedPattern.FindStringSubmatch(raw); m != nil {
		loc.organization = m[hostedPattern.SubexpIndex("org")]
		loc.name = m[hostedPattern.SubexpIndex("name")]
		return loc, nil
	}

	base := strings.TrimSuffix(filepath.Base(raw), gitSuffix)
	loc.name = reg.Register(base)
	return loc, nil
}

// validate accepts raw when it is an existing filesystem path or a
// well-formed absolute URL ending in ".git". A failure on one branch
// only means that branch did not hold; the error is raised when both
// miss. The path check runs against the filesystem at call time.
func validate(raw string) error {
	if _, err := os.Stat(raw); err == nil {
		return nil
	}
	if u, err := url.Parse(raw); err == nil && u.IsAbs() && strings.HasSuffix(raw, gitSuffix) {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrInvalidLocation, raw)
}

// Name returns the resolved display name, unique among fallback-derived
// names registered through the same registry. Never empty.
func (l Location) Name() string {
	return l.name
}

// Organization returns the hosting organization, or "" when the raw
// string did not match the hosted pattern.
func (l Location) Organization() string {
	return l.organization
}

func (l Location) IsEmpty() bool {
	return l.raw == ""
}

// String returns the original raw location string.
func (l Location) String() string {
	return l.raw
}

// Equal compares by raw string only; the resolved name and organization
// take no part in identity.
func (l Location) Equal(other Location) bool {
	return l.raw == other.raw
}

// Key returns the value to use when a Location serves as a map key or
// set member. It is the raw string, consistent with Equal.
func (l Location) Key() string {
	return l.raw
}
