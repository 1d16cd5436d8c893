package wizard

import "errors"

// Validation errors for the interactive wizard.
var (
	errStackNameRequired = errors.New("stack name is required")
	errStackNameInvalid  = errors.New("stack name must start with a letter and contain only letters, digits and hyphens")
	errZoneIDRequired    = errors.New("hosted zone ID is required")
	errZoneIDInvalid     = errors.New("hosted zone ID must look like Z0123456789ABCDEFGHIJ")
	errZoneNameRequired  = errors.New("hosted zone name is required")
)

func errRequired(msg string) error { return errors.New(msg) }
