package engine

import "errors"

// ErrInternalConsistency reports a chain whose shapes or positions no longer describe a
// connected path; it indicates a bug or out-of-band mutation and ends the session
var ErrInternalConsistency = errors.New("internal consistency failure")
