package errs

import "errors"

// Error kinds shared across layers. Concrete sentinels are marked with one of
// these so the transport layer can map failures without knowing every package.
var (
	ErrNotFound          = errors.New("kind: not found")
	ErrForbidden         = errors.New("kind: forbidden")
	ErrInvalidTransition = errors.New("kind: invalid transition")
	ErrUnavailable       = errors.New("kind: unavailable")
	ErrValidation        = errors.New("kind: validation")
	ErrConflict          = errors.New("kind: conflict")
)
