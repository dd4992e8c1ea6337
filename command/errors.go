package command

import "errors"

var (
	// ErrEmptyMessage indicates that no command was added to the builder.
	ErrEmptyMessage = errors.New("message has no command")

	// ErrInvalidChannel indicates that a channel number is not addressable.
	// Valid channel numbers are 1 to 10, and slot*100 + sub channel for sub channel 1 or 2.
	ErrInvalidChannel = errors.New("invalid channel number")

	// ErrTooManyChannels indicates that a command was given more channels than it accepts.
	ErrTooManyChannels = errors.New("too many channels")

	// ErrInvalidLRNType indicates that an unsupported learn query type was provided.
	ErrInvalidLRNType = errors.New("invalid LRN type")
)
