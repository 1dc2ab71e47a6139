package world

import "errors"

// Sentinel errors for authoring and navigation failures. Creation-time
// errors are fatal to the authoring step; navigation errors surface to the
// caller as values and never abort the session.
var (
	ErrMissingParameters = errors.New("missing required parameters")
	ErrInvalidParameters = errors.New("invalid parameters")
	ErrUnknownEntity     = errors.New("unknown entity")
	ErrAlreadyExists     = errors.New("entity already exists")
	ErrNotLinked         = errors.New("rooms are not linked")
	ErrNoPreviousRoom    = errors.New("no previous room")
)
