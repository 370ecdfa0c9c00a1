package domain

import "errors"

// Domain errors.
var (
	ErrLaunchFailed          = errors.New("launch failed")
	ErrEmptyCommand          = errors.New("command cannot be empty")
	ErrUnknownPackageManager = errors.New("unknown package manager")
	ErrConfigExists          = errors.New("config file already exists")
	ErrNoConfigDir           = errors.New("global config directory not available")
)

// LaunchError marks a failure to start the dev server.
// It prints as the underlying cause and matches ErrLaunchFailed.
type LaunchError struct {
	Err error
}

// NewLaunchError wraps err as a launch failure.
func NewLaunchError(err error) error {
	return &LaunchError{Err: err}
}

func (e *LaunchError) Error() string {
	return e.Err.Error()
}

func (e *LaunchError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrLaunchFailed.
func (e *LaunchError) Is(target error) bool {
	return target == ErrLaunchFailed
}
