package repolocation

import "errors"

// ErrInvalidLocation reports a raw string that is neither an existing
// filesystem path nor a git-suffixed URL.
var ErrInvalidLocation = errors.New("invalid repository location")
