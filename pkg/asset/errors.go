package asset

import "errors"

// ErrGroupNotFound is returned when a variant accessor expects a child group
// (e.g. a character's geo group) that does not exist under the asset root.
var ErrGroupNotFound = errors.New("expected child group not found")
