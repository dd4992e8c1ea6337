package sim

import "errors"

var (
	// ErrUnsupportedCommand indicates that the simulator does not implement the command.
	ErrUnsupportedCommand = errors.New("unsupported command")

	// ErrInvalidCommand indicates that a supported command has malformed arguments.
	ErrInvalidCommand = errors.New("invalid command")

	// ErrNotInstalled indicates that a command addresses a channel that is not installed.
	ErrNotInstalled = errors.New("channel is not installed")
)
