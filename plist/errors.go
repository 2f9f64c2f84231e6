package plist

import "errors"

// Sentinel error kinds, per the taxonomy of §7. ErrOutOfMemory from the
// original C taxonomy has no Go analogue: allocation failure is a runtime
// condition here, not a value a caller can recover from, so it is not
// modeled as a sentinel.
var (
	ErrInvalidArgument = errors.New("plist: invalid argument")
	ErrInvalidKind     = errors.New("plist: invalid kind")
	ErrAlreadyAttached = errors.New("plist: already attached")
	ErrOutOfRange      = errors.New("plist: out of range")
	ErrNotFound        = errors.New("plist: not found")
	ErrInvalid         = errors.New("plist: invalid")
)
