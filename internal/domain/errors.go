package domain

import "errors"

// ErrNotFound is returned by article lookups when no content exists for
// the requested page id.
var ErrNotFound = errors.New("article not found")
