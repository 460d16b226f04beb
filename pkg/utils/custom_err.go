package utils

import (
	"errors"
	"fmt"
)

// Error kinds every service failure is wrapped in. Controllers dispatch
// on these with errors.Is; the wrapped message is what the caller sees.
var (
	ErrValidation   = errors.New("invalid input")
	ErrPrecondition = errors.New("precondition failed")
	ErrNotFound     = errors.New("not found")
	ErrCollaborator = errors.New("store operation failed")
)

func ValidationError(msg string) error {
	return fmt.Errorf("%w: %s", ErrValidation, msg)
}

func PreconditionError(msg string) error {
	return fmt.Errorf("%w: %s", ErrPrecondition, msg)
}

func NotFoundError(what string) error {
	return fmt.Errorf("%w: %s", ErrNotFound, what)
}

func CollaboratorError(err error) error {
	return fmt.Errorf("%w: %v", ErrCollaborator, err)
}
