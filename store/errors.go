package store

import "errors"

// ErrNotFound is returned by status-transition commands when the target id
// does not exist. The collection is left untouched in that case.
var ErrNotFound = errors.New("record not found")
