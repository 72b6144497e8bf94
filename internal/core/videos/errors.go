package videos

import "errors"

// ErrVideoNotFound is returned when a referenced video record is absent
var ErrVideoNotFound = errors.New("video not found")
